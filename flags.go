// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

// Flags is the raw 32-bit flag word shared by every DNSService* call and
// callback (spec §6 "Flag bits"). The typed flag sets below are aliases of
// this word: a set that contains only one named flag converts to exactly
// that flag's numeric value. Converting a numeric value back keeps every
// bit, including bits this package does not name; no masking is applied.
type Flags uint32

// Recognized flag bits (spec §6).
const (
	FlagMoreComing         Flags = 0x01
	FlagAdd                Flags = 0x02
	FlagDefault            Flags = 0x04
	FlagNoAutoRename       Flags = 0x08
	FlagShared             Flags = 0x10
	FlagUnique             Flags = 0x20
	FlagBrowseDomains      Flags = 0x40
	FlagRegistrationDomains Flags = 0x80
	FlagLongLivedQuery     Flags = 0x100
)

// Has reports whether f contains all bits of other.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// BrowseFlags is the flag set emitted by a browse callback: [FlagMoreComing]
// and [FlagAdd] (clear means the entry is being removed).
type BrowseFlags = Flags

// EnumerateFlags is the flag set emitted by an enumerate-domains callback:
// [FlagMoreComing], [FlagAdd], [FlagDefault].
type EnumerateFlags = Flags

// RegisterFlags configures a registration request, e.g. [FlagNoAutoRename].
type RegisterFlags = Flags

// RegisteredFlags is the flag set delivered by a register callback. Per
// spec §9's open question, this package follows the newest daemon variant
// and may report [FlagAdd]; avahi-compat does not emit this bit.
type RegisteredFlags = Flags

// QueryFlags configures a query-record request, e.g. [FlagLongLivedQuery].
type QueryFlags = Flags

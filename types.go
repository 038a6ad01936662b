// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

// BrowseResult is a single item from a [Browse] stream (spec §4.4).
// [Flags] containing [FlagAdd] indicates the service appeared; absent
// means it disappeared.
type BrowseResult struct {
	Flags       BrowseFlags
	Interface   Interface
	ServiceName string
	RegType     string
	Domain      string
}

// ResolveResult is a single item from a [Resolve] stream.
type ResolveResult struct {
	Flags      Flags
	Interface  Interface
	FullName   string
	HostTarget string
	// Port is in host byte order (spec §8 "Port byte-order").
	Port uint16
	TXT  []byte
}

// RegisterResult is a single item from a [Register] stream: a status
// update for the registration, most commonly the chosen (possibly
// renamed) name.
type RegisterResult struct {
	Flags   RegisteredFlags
	Name    string
	RegType string
	Domain  string
}

// QueryRecordResult is a single item from a [QueryRecord] stream.
type QueryRecordResult struct {
	Flags     QueryFlags
	Interface Interface
	FullName  string
	Type      Type
	Class     Class
	RDATA     []byte
	TTL       uint32
}

// EnumerateDomainsResult is a single item from an [EnumerateDomains]
// stream.
type EnumerateDomainsResult struct {
	Flags       EnumerateFlags
	Interface   Interface
	ReplyDomain string
}

// AddressFamily distinguishes [Address] variants.
type AddressFamily int

const (
	AddressV4 AddressFamily = iota
	AddressV6
)

// Address is a resolved host address from [ResolveHostAddresses] (spec
// §4.5): a tagged union of an IPv4 or IPv6 address plus its scope id,
// taken from the interface the record was queried on.
type Address struct {
	Family  AddressFamily
	IP      [16]byte // first 4 bytes valid when Family == AddressV4
	ScopeID Interface
}

// HostAddressResult is a single item from [ResolveHostAddresses].
type HostAddressResult struct {
	Flags   Flags
	Address Address
}

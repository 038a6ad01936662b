// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "github.com/miekg/dns"

// Interface identifies a network interface the way the daemon does: 0 for
// any interface, or one of the three reserved sentinel values below, or an
// OS interface index (spec §6 "Interface encoding").
type Interface uint32

// Reserved [Interface] sentinel values.
const (
	InterfaceAny        Interface = 0
	InterfaceLocalOnly  Interface = ^Interface(0)
	InterfaceUnicast    Interface = ^Interface(1)
	InterfaceP2P        Interface = ^Interface(2)
)

// InterfaceFromRaw returns the [Interface] for a raw 32-bit value. The conversion is
// lossless: InterfaceFromRaw(x).Raw() == x for every x (spec §8).
func InterfaceFromRaw(x uint32) Interface {
	return Interface(x)
}

// Raw returns the underlying 32-bit value.
func (i Interface) Raw() uint32 {
	return uint32(i)
}

// String renders the reserved sentinels by name and anything else as a
// plain interface index.
func (i Interface) String() string {
	switch i {
	case InterfaceAny:
		return "any"
	case InterfaceLocalOnly:
		return "local-only"
	case InterfaceUnicast:
		return "unicast"
	case InterfaceP2P:
		return "p2p"
	default:
		return uint32String(uint32(i))
	}
}

func uint32String(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	pos := len(buf)
	for v > 0 {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[pos:])
}

// Class is a DNS CLASS code point (spec §6 "DNS code points").
type Class uint16

// Recognized [Class] values.
const (
	ClassIN   Class = 1
	ClassCH   Class = 3
	ClassHS   Class = 4
	ClassNONE Class = 254
	ClassANY  Class = 255
)

// String renders the class using miekg/dns's class name table, falling back
// to a numeric rendering for anything it doesn't recognize.
func (c Class) String() string {
	if name, ok := dns.ClassToString[uint16(c)]; ok {
		return name
	}
	return uint32String(uint32(c))
}

// Type is a DNS RR TYPE code point (spec §6 "DNS code points").
type Type uint16

// Recognized [Type] values (spec §6: "at least A=1, NS=2, CNAME=5, SOA=6,
// PTR=12, TXT=16, AAAA=28, SRV=33, ANY=255").
const (
	TypeA     Type = 1
	TypeNS    Type = 2
	TypeCNAME Type = 5
	TypeSOA   Type = 6
	TypePTR   Type = 12
	TypeTXT   Type = 16
	TypeAAAA  Type = 28
	TypeSRV   Type = 33
	TypeANY   Type = 255
)

// String renders the type using miekg/dns's RR type name table, falling
// back to a numeric rendering for anything it doesn't recognize.
func (t Type) String() string {
	if name, ok := dns.TypeToString[uint16(t)]; ok {
		return name
	}
	return uint32String(uint32(t))
}

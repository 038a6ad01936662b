// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

// Unit is a type not containing any value (analogous to an
// explicit `void` type in C and C++).
//
// Use this type as the element type of a stream that carries
// no payload.
type Unit struct{}

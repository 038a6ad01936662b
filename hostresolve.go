// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// HostAddressStream is the result of [ResolveHostAddresses]: a single
// stream merging concurrent A and AAAA lookups (spec §4.5).
type HostAddressStream struct {
	queue   *streamQueue[hostAddrItem]
	a, aaaa *Stream[QueryRecordResult]
	ended   bool
}

type hostAddrItem struct {
	val HostAddressResult
	err error
	end bool
}

// ResolveHostAddresses resolves hostname to a stream of typed socket
// addresses by issuing simultaneous A and AAAA [QueryRecord] operations and
// merging their results (spec §4.5 "Host address resolution"). Records
// outside class IN, of the wrong type, or with an unexpected RDATA length
// (anything but 4 bytes for A or 16 for AAAA) are silently dropped.
func ResolveHostAddresses(ctx context.Context, cfg *Config, ifIndex Interface, hostname string) (*HostAddressStream, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	aStream, err := QueryRecord(ctx, cfg, 0, ifIndex, hostname, TypeA, ClassIN)
	if err != nil {
		return nil, err
	}
	aaaaStream, err := QueryRecord(ctx, cfg, 0, ifIndex, hostname, TypeAAAA, ClassIN)
	if err != nil {
		aStream.Close()
		return nil, err
	}

	q := newStreamQueue[hostAddrItem]()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(pumpHostAddresses(gctx, aStream, q))
	g.Go(pumpHostAddresses(gctx, aaaaStream, q))
	go func() {
		_ = g.Wait()
		q.push(hostAddrItem{end: true})
	}()

	return &HostAddressStream{queue: q, a: aStream, aaaa: aaaaStream}, nil
}

func pumpHostAddresses(ctx context.Context, s *Stream[QueryRecordResult], q *streamQueue[hostAddrItem]) func() error {
	return func() error {
		for {
			item, ok, err := s.Next(ctx)
			if err != nil {
				q.push(hostAddrItem{err: err})
				return err
			}
			if !ok {
				return nil
			}
			if addr, match := decodeHostAddress(item); match {
				q.push(hostAddrItem{val: HostAddressResult{Flags: item.Flags, Address: addr}})
			}
		}
	}
}

func decodeHostAddress(item QueryRecordResult) (Address, bool) {
	if item.Class != ClassIN {
		return Address{}, false
	}
	switch item.Type {
	case TypeA:
		if len(item.RDATA) != 4 {
			return Address{}, false
		}
		var ip [16]byte
		copy(ip[:4], item.RDATA)
		return Address{Family: AddressV4, IP: ip, ScopeID: item.Interface}, true
	case TypeAAAA:
		if len(item.RDATA) != 16 {
			return Address{}, false
		}
		var ip [16]byte
		copy(ip[:], item.RDATA)
		return Address{Family: AddressV6, IP: ip, ScopeID: item.Interface}, true
	default:
		return Address{}, false
	}
}

// Next blocks until the next address is available, both inner queries end,
// or ctx is done.
func (s *HostAddressStream) Next(ctx context.Context) (HostAddressResult, bool, error) {
	if s.ended {
		return HostAddressResult{}, false, nil
	}
	for {
		if item, ok := s.queue.pop(); ok {
			if item.end {
				s.ended = true
				return HostAddressResult{}, false, nil
			}
			if item.err != nil {
				s.ended = true
				return HostAddressResult{}, false, item.err
			}
			return item.val, true, nil
		}
		if err := s.queue.wait(ctx); err != nil {
			return HostAddressResult{}, false, err
		}
	}
}

// Close abandons both inner queries.
func (s *HostAddressStream) Close() error {
	err1 := s.a.Close()
	err2 := s.aaaa.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

var _ streamSource[HostAddressResult] = (*HostAddressStream)(nil)

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "sync"

// Record is a resource record added via [Register.AddRecord] or obtained
// from [Connection.RegisterRecord]. Its lifetime nests inside its parent
// handle (spec §9 "Cyclic handle/record lifetime"): closing the record
// removes it from the daemon unless [Record.Keep] was called first, in
// which case it is leaked to the parent's lifetime instead (spec §4.4
// "Record update/remove").
type Record struct {
	api   api
	sdRef serviceRef
	rec   recordRef

	shared *SharedHandle // non-nil only for records obtained via Connect

	mu     sync.Mutex
	keep   bool
	closed bool
}

func newRecord(a api, sdRef serviceRef, rec recordRef, shared *SharedHandle) *Record {
	return &Record{api: a, sdRef: sdRef, rec: rec, shared: shared}
}

// Update replaces the record's RDATA (spec §8 scenario 4 "update_record").
func (r *Record) Update(rdata []byte, ttl uint32) error {
	if len(rdata) > 0xffff {
		return NewInputError(InputErrorRDATATooLong, "")
	}
	call := func() error { return r.api.updateRecord(r.sdRef, r.rec, rdata, ttl) }
	if r.shared != nil {
		return AsIOError(r.shared.withLock(call))
	}
	return AsIOError(call())
}

// Keep leaks this record to its parent handle's lifetime: a subsequent
// [Record.Close] becomes a no-op instead of sending DNSServiceRemoveRecord
// (spec §8 scenario 4 "calling keep on a fresh record instead suppresses
// the remove").
func (r *Record) Keep() {
	r.mu.Lock()
	r.keep = true
	r.mu.Unlock()
}

// Close removes the record from the daemon, unless [Record.Keep] was
// called. Safe to call more than once.
func (r *Record) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	keep := r.keep
	r.mu.Unlock()

	if keep {
		if r.shared != nil {
			r.shared.release()
		}
		return nil
	}

	call := func() error { return r.api.removeRecord(r.sdRef, r.rec) }
	var err error
	if r.shared != nil {
		err = r.shared.withLock(call)
		r.shared.release()
	} else {
		err = call()
	}
	return AsIOError(err)
}

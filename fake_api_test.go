// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
)

// fakeEvent is one unit of work replayed by processResult: either an
// invocation of the callback captured when the operation started, or a
// terminal processing error simulating a dead daemon connection.
type fakeEvent struct {
	fn  func()
	err error
}

// fakeConn backs a single serviceRef. Readiness is signaled through a real
// pipe so the production [ready.Source] implementations (epoll on unix,
// select on windows) drive it exactly as they would a real daemon socket.
type fakeConn struct {
	r, w *os.File

	mu     sync.Mutex
	events []fakeEvent
	closed bool

	browseCB  browseCallback
	resolveCB resolveCallback
	registerCB registerCallback
	domainCB  domainCallback
	queryCB   queryRecordCallback
	records   map[recordRef]registerRecordCallback
}

func newFakeConn() (*fakeConn, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &fakeConn{r: r, w: w, records: map[recordRef]registerRecordCallback{}}, nil
}

func (c *fakeConn) push(ev fakeEvent) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.events = append(c.events, ev)
	c.mu.Unlock()
	c.w.Write([]byte{0})
}

// process consumes one readiness byte and replays the oldest queued event.
func (c *fakeConn) process() error {
	buf := make([]byte, 1)
	if _, err := c.r.Read(buf); err != nil {
		return err
	}
	c.mu.Lock()
	if len(c.events) == 0 {
		c.mu.Unlock()
		return nil
	}
	ev := c.events[0]
	c.events = c.events[1:]
	c.mu.Unlock()
	if ev.err != nil {
		return ev.err
	}
	if ev.fn != nil {
		ev.fn()
	}
	return nil
}

func (c *fakeConn) close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()
	c.r.Close()
	c.w.Close()
}

// fakeAPI is a pure-Go test double for [api] (spec §8: every end-to-end
// scenario runs against a fake library, never a live daemon). It records
// calls and lets a test queue callbacks with its emit* helpers;
// processResult replays queued events in FIFO order.
type fakeAPI struct {
	mu      sync.Mutex
	conns   map[serviceRef]*fakeConn
	next    uint64
	nextRec uint64

	browseErr, resolveErr, registerErr, enumerateErr, connectErr, queryErr error
	registerRecordErr, addRecordErr, updateRecordErr, removeRecordErr      error

	reconfirmed []reconfirmCall
}

type reconfirmCall struct {
	ifIndex  Interface
	fullname string
	rrtype   Type
	rrclass  Class
	rdata    []byte
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{conns: map[serviceRef]*fakeConn{}}
}

func (f *fakeAPI) newRef() (serviceRef, *fakeConn, error) {
	conn, err := newFakeConn()
	if err != nil {
		return 0, nil, err
	}
	ref := serviceRef(atomic.AddUint64(&f.next, 1))
	f.mu.Lock()
	f.conns[ref] = conn
	f.mu.Unlock()
	return ref, conn, nil
}

func (f *fakeAPI) conn(ref serviceRef) *fakeConn {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conns[ref]
}

func (f *fakeAPI) browse(ctx context.Context, ifIndex Interface, regType, domain string, cb browseCallback) (serviceRef, error) {
	if f.browseErr != nil {
		return 0, f.browseErr
	}
	ref, conn, err := f.newRef()
	if err != nil {
		return 0, err
	}
	conn.browseCB = cb
	return ref, nil
}

func (f *fakeAPI) resolve(ctx context.Context, ifIndex Interface, serviceName, regType, domain string, cb resolveCallback) (serviceRef, error) {
	if f.resolveErr != nil {
		return 0, f.resolveErr
	}
	ref, conn, err := f.newRef()
	if err != nil {
		return 0, err
	}
	conn.resolveCB = cb
	return ref, nil
}

func (f *fakeAPI) register(ctx context.Context, flags RegisterFlags, ifIndex Interface, name, regType, domain string, port uint16, txt []byte, cb registerCallback) (serviceRef, error) {
	if f.registerErr != nil {
		return 0, f.registerErr
	}
	ref, conn, err := f.newRef()
	if err != nil {
		return 0, err
	}
	conn.registerCB = cb
	return ref, nil
}

func (f *fakeAPI) enumerateDomains(ctx context.Context, flags EnumerateFlags, ifIndex Interface, cb domainCallback) (serviceRef, error) {
	if f.enumerateErr != nil {
		return 0, f.enumerateErr
	}
	ref, conn, err := f.newRef()
	if err != nil {
		return 0, err
	}
	conn.domainCB = cb
	return ref, nil
}

func (f *fakeAPI) createConnection() (serviceRef, error) {
	if f.connectErr != nil {
		return 0, f.connectErr
	}
	ref, _, err := f.newRef()
	return ref, err
}

func (f *fakeAPI) registerRecord(conn serviceRef, ifIndex Interface, fullname string, rrtype Type, rrclass Class, rdata []byte, ttl uint32, cb registerRecordCallback) (recordRef, error) {
	if f.registerRecordErr != nil {
		return 0, f.registerRecordErr
	}
	c := f.conn(conn)
	if c == nil {
		return 0, errors.New("fakeAPI: unknown connection")
	}
	rec := recordRef(atomic.AddUint64(&f.nextRec, 1))
	c.mu.Lock()
	c.records[rec] = cb
	c.mu.Unlock()
	return rec, nil
}

func (f *fakeAPI) addRecord(sdRef serviceRef, rrtype Type, rdata []byte, ttl uint32) (recordRef, error) {
	if f.addRecordErr != nil {
		return 0, f.addRecordErr
	}
	return recordRef(atomic.AddUint64(&f.nextRec, 1)), nil
}

func (f *fakeAPI) updateRecord(sdRef serviceRef, rec recordRef, rdata []byte, ttl uint32) error {
	return f.updateRecordErr
}

func (f *fakeAPI) removeRecord(sdRef serviceRef, rec recordRef) error {
	return f.removeRecordErr
}

func (f *fakeAPI) queryRecord(ctx context.Context, flags QueryFlags, ifIndex Interface, fullname string, rrtype Type, rrclass Class, cb queryRecordCallback) (serviceRef, error) {
	if f.queryErr != nil {
		return 0, f.queryErr
	}
	ref, conn, err := f.newRef()
	if err != nil {
		return 0, err
	}
	conn.queryCB = cb
	return ref, nil
}

func (f *fakeAPI) reconfirmRecord(flags Flags, ifIndex Interface, fullname string, rrtype Type, rrclass Class, rdata []byte) {
	f.mu.Lock()
	f.reconfirmed = append(f.reconfirmed, reconfirmCall{ifIndex: ifIndex, fullname: fullname, rrtype: rrtype, rrclass: rrclass, rdata: rdata})
	f.mu.Unlock()
}

func (f *fakeAPI) refSockFD(sdRef serviceRef) int {
	c := f.conn(sdRef)
	return int(c.r.Fd())
}

func (f *fakeAPI) processResult(sdRef serviceRef) error {
	c := f.conn(sdRef)
	if c == nil {
		return errors.New("fakeAPI: unknown ref")
	}
	return c.process()
}

func (f *fakeAPI) refDeallocate(sdRef serviceRef) {
	c := f.conn(sdRef)
	if c == nil {
		return
	}
	c.close()
	f.mu.Lock()
	delete(f.conns, sdRef)
	f.mu.Unlock()
}

var _ api = (*fakeAPI)(nil)

// emitBrowse queues a browse reply to be delivered on the next processResult.
func (f *fakeAPI) emitBrowse(ref serviceRef, flags Flags, ifIndex Interface, errCode int32, serviceName, regType, domain string) {
	c := f.conn(ref)
	cb := c.browseCB
	c.push(fakeEvent{fn: func() { cb(flags, ifIndex, errCode, serviceName, regType, domain) }})
}

// emitResolve queues a resolve reply.
func (f *fakeAPI) emitResolve(ref serviceRef, flags Flags, ifIndex Interface, errCode int32, fullname, hosttarget string, port uint16, txt []byte) {
	c := f.conn(ref)
	cb := c.resolveCB
	c.push(fakeEvent{fn: func() { cb(flags, ifIndex, errCode, fullname, hosttarget, port, txt) }})
}

// emitRegister queues a register reply.
func (f *fakeAPI) emitRegister(ref serviceRef, flags Flags, errCode int32, name, regType, domain string) {
	c := f.conn(ref)
	cb := c.registerCB
	c.push(fakeEvent{fn: func() { cb(flags, errCode, name, regType, domain) }})
}

// emitDomain queues an enumerate-domains reply.
func (f *fakeAPI) emitDomain(ref serviceRef, flags Flags, ifIndex Interface, errCode int32, replyDomain string) {
	c := f.conn(ref)
	cb := c.domainCB
	c.push(fakeEvent{fn: func() { cb(flags, ifIndex, errCode, replyDomain) }})
}

// emitQueryRecord queues a query-record reply.
func (f *fakeAPI) emitQueryRecord(ref serviceRef, flags Flags, ifIndex Interface, errCode int32, fullname string, rrtype Type, rrclass Class, rdata []byte, ttl uint32) {
	c := f.conn(ref)
	cb := c.queryCB
	c.push(fakeEvent{fn: func() { cb(flags, ifIndex, errCode, fullname, rrtype, rrclass, rdata, ttl) }})
}

// emitRegisterRecord queues a register-record reply for rec on conn's ref.
func (f *fakeAPI) emitRegisterRecord(ref serviceRef, rec recordRef, flags Flags, errCode int32) {
	c := f.conn(ref)
	c.mu.Lock()
	cb := c.records[rec]
	c.mu.Unlock()
	c.push(fakeEvent{fn: func() { cb(flags, errCode) }})
}

// emitProcessError queues a terminal processResult failure, simulating a
// dead daemon connection (spec §4.8).
func (f *fakeAPI) emitProcessError(ref serviceRef, err error) {
	c := f.conn(ref)
	c.push(fakeEvent{err: err})
}

// lastRecordRef returns the most recently allocated recordRef.
func (f *fakeAPI) lastRecordRef() recordRef {
	return recordRef(atomic.LoadUint64(&f.nextRec))
}

// newTestConfig builds a [Config] backed by a fake [api] and a discard
// logger, used throughout the end-to-end scenarios in this package's test
// files (spec §8).
func newTestConfig(a *fakeAPI) *Config {
	cfg := NewConfig()
	cfg.API = a
	return cfg
}

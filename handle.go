// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"context"
	"sync"

	"github.com/dnssd-go/dnssd/ready"
)

// Handle owns a single [serviceRef] and drives it with exactly one
// goroutine at a time (spec §9 "Single-task-per-handle"). It is used by
// every non-shared operation (Browse, Resolve, Register, QueryRecord,
// EnumerateDomains).
type Handle struct {
	api    api
	ref    serviceRef
	source ready.Source

	once sync.Once
}

// newHandle wraps ref, opening a readiness [ready.Source] on its socket.
func newHandle(a api, ref serviceRef) (*Handle, error) {
	fd := a.refSockFD(ref)
	src, err := ready.New(fd)
	if err != nil {
		a.refDeallocate(ref)
		return nil, err
	}
	return &Handle{api: a, ref: ref, source: src}, nil
}

// Drive blocks until the handle's descriptor becomes readable, then calls
// processResult exactly once, dispatching whatever callback is pending.
// Returns ctx.Err() on cancellation.
func (h *Handle) Drive(ctx context.Context) error {
	if err := h.source.Wait(ctx); err != nil {
		return err
	}
	return h.api.processResult(h.ref)
}

// Close releases the native handle. Safe to call more than once; only the
// first call has an effect (spec §8 "Cancellation releases resources").
func (h *Handle) Close() error {
	h.once.Do(func() {
		h.source.Close()
		h.api.refDeallocate(h.ref)
	})
	return nil
}

// SharedHandle wraps a serviceRef created via DNSServiceCreateConnection.
// Multiple dependent records may be registered against the same connection
// (spec §4.2, §9 "Cyclic handle/record lifetime"); FFI calls are serialized
// behind a short-held mutex, and a single background goroutine drives
// readiness so callers never race on processResult themselves.
type SharedHandle struct {
	api  api
	ref  serviceRef
	mu   sync.Mutex
	wg   sync.WaitGroup
	refs int // outstanding records sharing this connection, parent counts as 1

	source ready.Source
	cancel context.CancelFunc

	closeOnce sync.Once
	lastErr   error
	lastErrMu sync.Mutex
	failed    chan struct{}
	failOnce  sync.Once
}

// newSharedHandle wraps ref and starts the background driver goroutine.
func newSharedHandle(ctx context.Context, a api, ref serviceRef) (*SharedHandle, error) {
	fd := a.refSockFD(ref)
	src, err := ready.New(fd)
	if err != nil {
		a.refDeallocate(ref)
		return nil, err
	}
	driveCtx, cancel := context.WithCancel(ctx)
	sh := &SharedHandle{api: a, ref: ref, refs: 1, source: src, cancel: cancel, failed: make(chan struct{})}
	sh.wg.Add(1)
	go sh.drive(driveCtx)
	return sh, nil
}

func (sh *SharedHandle) drive(ctx context.Context) {
	defer sh.wg.Done()
	for {
		if err := sh.source.Wait(ctx); err != nil {
			sh.latch(err)
			return
		}
		sh.mu.Lock()
		err := sh.api.processResult(sh.ref)
		sh.mu.Unlock()
		if err != nil {
			sh.latch(err)
			return
		}
	}
}

// latch records the terminal failure once; subsequent pollers observe it
// on their next poll (spec §7 "On a shared connection, a processing
// failure is latched once and returned to every observer on next poll").
func (sh *SharedHandle) latch(err error) {
	sh.lastErrMu.Lock()
	if sh.lastErr == nil {
		sh.lastErr = err
	}
	sh.lastErrMu.Unlock()
	sh.failOnce.Do(func() { close(sh.failed) })
}

// Err returns the latched background-driver error, if any.
func (sh *SharedHandle) Err() error {
	sh.lastErrMu.Lock()
	defer sh.lastErrMu.Unlock()
	return sh.lastErr
}

// Done returns a channel that closes once the background driver has
// latched a terminal error.
func (sh *SharedHandle) Done() <-chan struct{} {
	return sh.failed
}

// withLock runs fn with the shared connection's mutex held, serializing FFI
// calls made through the shared connection.
func (sh *SharedHandle) withLock(fn func() error) error {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return fn()
}

// addRef increments the dependent-record count.
func (sh *SharedHandle) addRef() {
	sh.mu.Lock()
	sh.refs++
	sh.mu.Unlock()
}

// release decrements the dependent-record count and, on last release,
// deallocates the connection (spec §9 "last-drop on the parent frees the
// handle").
func (sh *SharedHandle) release() {
	sh.mu.Lock()
	sh.refs--
	last := sh.refs == 0
	sh.mu.Unlock()
	if last {
		sh.closeOnce.Do(func() {
			sh.cancel()
			sh.wg.Wait()
			sh.source.Close()
			sh.api.refDeallocate(sh.ref)
		})
	}
}

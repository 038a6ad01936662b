// SPDX-License-Identifier: GPL-3.0-or-later

// Package ready adapts a DNS-SD connection's file descriptor into a
// context-aware "wait until readable" primitive, so that the rest of the
// library never polls a raw fd itself.
//
// The implementation is platform-split (ready_unix.go / ready_windows.go)
// because no single primitive gives readable notifications for an
// arbitrary daemon-owned socket on both epoll-based and IOCP-based
// platforms (spec §9 "Windows readiness").
package ready

import "context"

// Source waits for a single file descriptor to become readable.
type Source interface {
	// Wait blocks until the descriptor is readable, ctx is done, or Close
	// is called concurrently from another goroutine. A readable return
	// with a nil error means the caller should read/process and call Wait
	// again; ctx.Err() is returned verbatim on cancellation.
	Wait(ctx context.Context) error

	// Close releases adapter-owned resources. It does not close fd itself,
	// since fd is owned by the native handle, not the readiness adapter.
	Close() error
}

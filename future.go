// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "context"

// futureResult is the single value delivered through a future-style
// callback context (spec §4.3: "the sender is consumed out of the context
// on first invocation").
type futureResult[T any] struct {
	val T
	err error
}

// Future is a single-shot result of a RegisterRecord-style operation. It
// owns a native [Handle] only when one was given to it (see [Future.Close]).
type Future[T any] struct {
	handle *Handle
	result chan futureResult[T]
}

func newFuture[T any](handle *Handle) (*Future[T], chan<- futureResult[T]) {
	ch := make(chan futureResult[T], 1)
	return &Future[T]{handle: handle, result: ch}, ch
}

// runFutureDriver drives handle until it delivers a result or errors.
func runFutureDriver[T any](ctx context.Context, handle *Handle, ch chan<- futureResult[T]) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if err := handle.Drive(ctx); err != nil {
			select {
			case ch <- futureResult[T]{err: err}:
			default:
			}
			return
		}
	}
}

// Wait blocks until the result is available or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case r := <-f.result:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Close abandons the future, releasing its native handle, if any. A future
// whose result rides on a [SharedHandle] it does not own (e.g.
// [Connection.RegisterRecord]) has no handle of its own; closing it is a
// no-op, and callers should close the resulting [Record] instead.
func (f *Future[T]) Close() error {
	if f.handle == nil {
		return nil
	}
	return f.handle.Close()
}

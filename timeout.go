// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"context"
	"time"
)

// TimeoutStream wraps any [streamSource] with bounded-inactivity
// cancellation (spec §4.6). Errors from the inner stream pass through
// unchanged; idle timeout ends the stream without an error.
type TimeoutStream[T any] struct {
	inner streamSource[T]
	d     time.Duration
	ended bool
}

// Timeout wraps inner so that it ends (with no error) after d of
// inactivity; every item emitted by inner resets the idle timer (spec §8
// "Timeout combinator").
func Timeout[T any](inner streamSource[T], d time.Duration) *TimeoutStream[T] {
	return &TimeoutStream[T]{inner: inner, d: d}
}

// Next implements [streamSource].
func (t *TimeoutStream[T]) Next(ctx context.Context) (T, bool, error) {
	if t.ended {
		var zero T
		return zero, false, nil
	}
	idleCtx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()

	value, ok, err := t.inner.Next(idleCtx)
	if err != nil {
		if idleCtx.Err() != nil && ctx.Err() == nil {
			t.ended = true
			var zero T
			return zero, false, nil
		}
		return value, ok, err
	}
	return value, ok, err
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource is a minimal [streamSource] fake used to exercise the
// [Timeout] combinator directly, without a native handle.
type countingSource struct {
	interval time.Duration // zero means "never emits"
	n        int
}

func (s *countingSource) Next(ctx context.Context) (Unit, bool, error) {
	if s.interval == 0 {
		<-ctx.Done()
		return Unit{}, false, ctx.Err()
	}
	select {
	case <-time.After(s.interval):
		s.n++
		return Unit{}, true, nil
	case <-ctx.Done():
		return Unit{}, false, ctx.Err()
	}
}

func TestTimeoutEndsWhenInnerNeverEmits(t *testing.T) {
	inner := &countingSource{}
	wrapped := Timeout[Unit](inner, 20*time.Millisecond)

	_, ok, err := wrapped.Next(t.Context())
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestTimeoutForwardsItemsFasterThanDeadline(t *testing.T) {
	inner := &countingSource{interval: 10 * time.Millisecond}
	wrapped := Timeout[Unit](inner, 50*time.Millisecond)

	for i := 0; i < 3; i++ {
		_, ok, err := wrapped.Next(t.Context())
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestTimeoutPropagatesInnerError(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	inner := &countingSource{interval: time.Millisecond}
	wrapped := Timeout[Unit](inner, time.Second)

	_, ok, err := wrapped.Next(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

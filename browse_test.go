// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseDeliversResults(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	stream, err := Browse(t.Context(), cfg, InterfaceAny, "_ssh._tcp", "local.")
	require.NoError(t, err)
	defer stream.Close()

	ref := lastRef(fake)
	fake.emitBrowse(ref, FlagAdd|FlagMoreComing, InterfaceAny, 0, "alice", "_ssh._tcp.", "local.")
	fake.emitBrowse(ref, FlagAdd, InterfaceAny, 0, "bob", "_ssh._tcp.", "local.")

	first, ok, err := stream.Next(t.Context())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", first.ServiceName)
	assert.True(t, first.Flags.Has(FlagAdd))

	second, ok, err := stream.Next(t.Context())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "bob", second.ServiceName)
}

func TestBrowseCallbackError(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	stream, err := Browse(t.Context(), cfg, InterfaceAny, "_ssh._tcp", "local.")
	require.NoError(t, err)
	defer stream.Close()

	ref := lastRef(fake)
	fake.emitBrowse(ref, 0, InterfaceAny, int32(CodeTimeout), "", "", "")

	_, ok, err := stream.Next(t.Context())
	require.Error(t, err)
	assert.False(t, ok)

	// the stream is latched ended after a terminal error
	_, ok, err = stream.Next(t.Context())
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestBrowseProcessResultFailure(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	stream, err := Browse(t.Context(), cfg, InterfaceAny, "_ssh._tcp", "local.")
	require.NoError(t, err)
	defer stream.Close()

	ref := lastRef(fake)
	boom := errors.New("boom")
	fake.emitProcessError(ref, boom)

	_, ok, err := stream.Next(t.Context())
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestBrowseCloseIsIdempotent(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	stream, err := Browse(t.Context(), cfg, InterfaceAny, "_ssh._tcp", "local.")
	require.NoError(t, err)

	require.NoError(t, stream.Close())
	require.NoError(t, stream.Close())
}

// lastRef returns the highest serviceRef allocated by fake so far. Tests in
// this package only ever have one live ref per fakeAPI when they call this.
func lastRef(fake *fakeAPI) serviceRef {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	var max serviceRef
	for ref := range fake.conns {
		if ref > max {
			max = ref
		}
	}
	return max
}

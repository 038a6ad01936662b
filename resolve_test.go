// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDeliversResult(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	stream, err := Resolve(t.Context(), cfg, InterfaceAny, "alice", "_ssh._tcp", "local.")
	require.NoError(t, err)
	defer stream.Close()

	ref := lastRef(fake)
	fake.emitResolve(ref, 0, InterfaceAny, 0, "alice._ssh._tcp.local.", "alice.local.", 22, []byte{0x00})

	result, ok, err := stream.Next(t.Context())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice.local.", result.HostTarget)
	assert.Equal(t, uint16(22), result.Port)
}

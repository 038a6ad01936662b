// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHostAddressesMergesAAndAAAA(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	stream, err := ResolveHostAddresses(t.Context(), cfg, InterfaceAny, "alice.local.")
	require.NoError(t, err)
	defer stream.Close()

	refs := allRefs(fake)
	require.Len(t, refs, 2)

	fake.emitQueryRecord(refs[0], 0, InterfaceAny, 0, "alice.local.", TypeA, ClassIN, []byte{192, 0, 2, 1}, 120)
	fake.emitQueryRecord(refs[1], 0, InterfaceAny, 0, "alice.local.", TypeAAAA, ClassIN,
		[]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, 120)

	var families []AddressFamily
	for i := 0; i < 2; i++ {
		result, ok, err := stream.Next(t.Context())
		require.NoError(t, err)
		require.True(t, ok)
		families = append(families, result.Address.Family)
	}
	assert.ElementsMatch(t, []AddressFamily{AddressV4, AddressV6}, families)
}

func TestResolveHostAddressesDropsWrongClass(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	stream, err := ResolveHostAddresses(t.Context(), cfg, InterfaceAny, "alice.local.")
	require.NoError(t, err)
	defer stream.Close()

	refs := allRefs(fake)
	require.Len(t, refs, 2)

	fake.emitQueryRecord(refs[0], 0, InterfaceAny, 0, "alice.local.", TypeA, ClassCH, []byte{192, 0, 2, 1}, 120)
	fake.emitQueryRecord(refs[0], 0, InterfaceAny, 0, "alice.local.", TypeA, ClassIN, []byte{192, 0, 2, 2}, 120)

	result, ok, err := stream.Next(t.Context())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, AddressV4, result.Address.Family)
	assert.Equal(t, byte(192), result.Address.IP[0])
	assert.Equal(t, byte(2), result.Address.IP[3])
}

// allRefs returns every serviceRef currently tracked by fake, in ascending
// order.
func allRefs(fake *fakeAPI) []serviceRef {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	refs := make([]serviceRef, 0, len(fake.conns))
	for ref := range fake.conns {
		refs = append(refs, ref)
	}
	for i := 1; i < len(refs); i++ {
		for j := i; j > 0 && refs[j-1] > refs[j]; j-- {
			refs[j-1], refs[j] = refs[j], refs[j-1]
		}
	}
	return refs
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateDomainsModeFlags(t *testing.T) {
	assert.Equal(t, FlagBrowseDomains, BrowseDomains.flags())
	assert.Equal(t, FlagRegistrationDomains, RegistrationDomains.flags())
}

func TestEnumerateDomainsDeliversResult(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	stream, err := EnumerateDomains(t.Context(), cfg, BrowseDomains, InterfaceAny)
	require.NoError(t, err)
	defer stream.Close()

	ref := lastRef(fake)
	fake.emitDomain(ref, FlagDefault, InterfaceAny, 0, "local.")

	result, ok, err := stream.Next(t.Context())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "local.", result.ReplyDomain)
	assert.True(t, result.Flags.Has(FlagDefault))
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconfirmRecord(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	ReconfirmRecord(cfg, InterfaceAny, "alice.local.", TypeA, ClassIN, []byte{192, 0, 2, 1})

	require.Len(t, fake.reconfirmed, 1)
	call := fake.reconfirmed[0]
	assert.Equal(t, "alice.local.", call.fullname)
	assert.Equal(t, TypeA, call.rrtype)
	assert.Equal(t, ClassIN, call.rrclass)
}

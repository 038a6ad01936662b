// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterServiceDeliversName(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	reg, err := RegisterService(t.Context(), cfg, 0, InterfaceAny, "alice", "_ssh._tcp", "", 22, nil)
	require.NoError(t, err)
	defer reg.Close()

	ref := lastRef(fake)
	fake.emitRegister(ref, FlagAdd, 0, "alice", "_ssh._tcp.", "local.")

	result, ok, err := reg.Next(t.Context())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", result.Name)
}

func TestRegisterServiceNameConflict(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	reg, err := RegisterService(t.Context(), cfg, 0, InterfaceAny, "alice", "_ssh._tcp", "", 22, nil)
	require.NoError(t, err)
	defer reg.Close()

	ref := lastRef(fake)
	fake.emitRegister(ref, 0, int32(CodeNameConflict), "", "", "")

	_, ok, err := reg.Next(t.Context())
	require.Error(t, err)
	assert.False(t, ok)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNameConflict, apiErr.Code)
}

func TestRegisterAddRecordKeepSuppressesRemove(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	reg, err := RegisterService(t.Context(), cfg, 0, InterfaceAny, "alice", "_ssh._tcp", "", 22, nil)
	require.NoError(t, err)
	defer reg.Close()

	rec, err := reg.AddRecord(TypeTXT, []byte{0x00}, 120)
	require.NoError(t, err)

	// any DNSServiceRemoveRecord call would now surface as a Close error
	fake.removeRecordErr = errors.New("remove called")
	rec.Keep()
	require.NoError(t, rec.Close())
	// closing again must stay a no-op
	require.NoError(t, rec.Close())
}

func TestRegisterAddRecordUpdateAndRemove(t *testing.T) {
	fake := newFakeAPI()
	cfg := newTestConfig(fake)

	reg, err := RegisterService(t.Context(), cfg, 0, InterfaceAny, "alice", "_ssh._tcp", "", 22, nil)
	require.NoError(t, err)
	defer reg.Close()

	rec, err := reg.AddRecord(TypeTXT, []byte{0x00}, 120)
	require.NoError(t, err)

	require.NoError(t, rec.Update([]byte{0x04, 't', 'e', 's', 't'}, 120))
	require.NoError(t, rec.Close())
}

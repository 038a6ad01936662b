// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	require.NotNil(t, cfg)

	// API should be set to a working engine
	require.NotNil(t, cfg.API)

	// Logger should default to the discard logger
	assert.Equal(t, DefaultSLogger(), cfg.Logger)

	// ErrClassifier should default to DefaultErrClassifier
	assert.Equal(t, "", cfg.ErrClassifier.Classify(nil))
	assert.Equal(t, "NameConflict", cfg.ErrClassifier.Classify(NewAPIError(int32(CodeNameConflict))))

	// TimeNow should be set and return a valid time
	now := cfg.TimeNow()
	assert.False(t, now.IsZero())
}

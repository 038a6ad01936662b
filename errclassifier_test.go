// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultErrClassifier(t *testing.T) {
	// Should return empty string for nil error
	result := DefaultErrClassifier.Classify(nil)
	assert.Equal(t, "", result)

	// Should classify an API error by its code name
	result = DefaultErrClassifier.Classify(NewAPIError(int32(CodeNameConflict)))
	assert.Equal(t, "NameConflict", result)

	// Should classify a wrapped API error by unwrapping to it
	result = DefaultErrClassifier.Classify(AsIOError(NewAPIError(int32(CodeTimeout))))
	assert.Equal(t, "Timeout", result)

	// Should return "" for unrecognized errors
	result = DefaultErrClassifier.Classify(errors.New("unknown error"))
	assert.Equal(t, "", result)
}

func TestCodeStringUnknown(t *testing.T) {
	c := Code(-1)
	assert.Equal(t, fmt.Sprintf("UnknownError(%d)", int32(c)), c.String())
}

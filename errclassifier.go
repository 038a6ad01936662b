// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

// ErrClassifier classifies errors into categorical strings for structured logs.
//
// Implementations map errors to short, descriptive labels (e.g. "NameConflict",
// "Timeout") that facilitate grepping operation logs for a specific failure mode.
type ErrClassifier interface {
	Classify(err error) string
}

// ErrClassifierFunc adapts a function to the [ErrClassifier] interface.
//
// This allows using simple functions as classifiers:
//
//	cfg.ErrClassifier = ErrClassifierFunc(myClassify)
type ErrClassifierFunc func(error) string

var _ ErrClassifier = ErrClassifierFunc(nil)

// Classify implements [ErrClassifier].
func (f ErrClassifierFunc) Classify(err error) string {
	return f(err)
}

// DefaultErrClassifier classifies using the DNS-SD error variant's name.
//
// A nil error classifies to "". An error wrapping an [*APIError] classifies
// to that error's [Code] name (e.g. "NameConflict"). Anything else falls
// back to "".
var DefaultErrClassifier = ErrClassifierFunc(func(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if asAPIError(err, &apiErr) {
		return apiErr.Code.String()
	}
	return ""
})

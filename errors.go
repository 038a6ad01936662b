// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"fmt"
)

// Code is a negative error code returned by the underlying DNSService* C ABI.
type Code int32

// Recognized DNSService* error codes (see spec §7).
const (
	CodeUnknown                    Code = -65537
	CodeNoSuchName                 Code = -65538
	CodeNoMemory                   Code = -65539
	CodeBadParam                   Code = -65540
	CodeBadReference                Code = -65541
	CodeBadState                   Code = -65542
	CodeBadFlags                   Code = -65543
	CodeUnsupported                Code = -65544
	CodeNotInitialized             Code = -65545
	CodeAlreadyRegistered          Code = -65547
	CodeNameConflict               Code = -65548
	CodeInvalid                    Code = -65549
	CodeFirewall                   Code = -65550
	CodeIncompatible               Code = -65551
	CodeBadInterfaceIndex          Code = -65552
	CodeRefused                    Code = -65553
	CodeNoSuchRecord               Code = -65554
	CodeNoAuth                     Code = -65555
	CodeNoSuchKey                  Code = -65556
	CodeNATTraversal               Code = -65557
	CodeDoubleNAT                  Code = -65558
	CodeBadTime                    Code = -65559
	CodeBadSig                     Code = -65560
	CodeBadKey                     Code = -65561
	CodeTransient                  Code = -65562
	CodeServiceNotRunning          Code = -65563
	CodeNATPortMappingUnsupported  Code = -65564
	CodeNATPortMappingDisabled     Code = -65565
	CodeNoRouter                   Code = -65566
	CodePollingMode                Code = -65567
	CodeTimeout                    Code = -65568
	CodeDefunctConnection          Code = -65569
	CodePolicyDenied               Code = -65570
	CodeNotPermitted               Code = -65571
	CodeStaleData                  Code = -65572
	CodeNoValue                    Code = -65790
	CodeBufferTooSmall             Code = -65791
)

var codeNames = map[Code]string{
	CodeUnknown:                   "Unknown",
	CodeNoSuchName:                "NoSuchName",
	CodeNoMemory:                  "NoMemory",
	CodeBadParam:                  "BadParam",
	CodeBadReference:              "BadReference",
	CodeBadState:                  "BadState",
	CodeBadFlags:                  "BadFlags",
	CodeUnsupported:               "Unsupported",
	CodeNotInitialized:            "NotInitialized",
	CodeAlreadyRegistered:         "AlreadyRegistered",
	CodeNameConflict:              "NameConflict",
	CodeInvalid:                   "Invalid",
	CodeFirewall:                  "Firewall",
	CodeIncompatible:              "Incompatible",
	CodeBadInterfaceIndex:         "BadInterfaceIndex",
	CodeRefused:                   "Refused",
	CodeNoSuchRecord:              "NoSuchRecord",
	CodeNoAuth:                    "NoAuth",
	CodeNoSuchKey:                 "NoSuchKey",
	CodeNoValue:                   "NoValue",
	CodeNATTraversal:              "NATTraversal",
	CodeDoubleNAT:                 "DoubleNAT",
	CodeBadTime:                   "BadTime",
	CodeBadSig:                    "BadSig",
	CodeBadKey:                    "BadKey",
	CodeTransient:                 "Transient",
	CodeServiceNotRunning:         "ServiceNotRunning",
	CodeNATPortMappingUnsupported: "NATPortMappingUnsupported",
	CodeNATPortMappingDisabled:    "NATPortMappingDisabled",
	CodeNoRouter:                  "NoRouter",
	CodePollingMode:               "PollingMode",
	CodeTimeout:                   "Timeout",
	CodeDefunctConnection:         "DefunctConnection",
	CodePolicyDenied:              "PolicyDenied",
	CodeNotPermitted:              "NotPermitted",
	CodeStaleData:                 "StaleData",
	CodeBufferTooSmall:            "BufferTooSmall",
}

// String returns the named variant for a recognized code, or
// "UnknownError(<code>)" for an unrecognized one.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UnknownError(%d)", int32(c))
}

// APIError wraps a negative code returned by the daemon.
type APIError struct {
	Code Code
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("dnssd: daemon error: %s", e.Code)
}

// NewAPIError converts a raw C ABI error code into an [*APIError].
//
// Zero is not a valid input: callers must check for success before calling this.
func NewAPIError(raw int32) *APIError {
	return &APIError{Code: Code(raw)}
}

// InputErrorKind classifies a wrapper-side input validation failure.
type InputErrorKind int

const (
	// InputErrorInvalidNUL indicates a string argument contained an embedded NUL byte.
	InputErrorInvalidNUL InputErrorKind = iota
	// InputErrorRDATATooLong indicates RDATA exceeded the protocol's 16-bit length limit,
	// or a name built by [ConstructFullName] exceeded 1009 bytes.
	InputErrorRDATATooLong
	// InputErrorTXTEntryTooLong indicates a single TXT chunk would exceed 255 bytes,
	// or a parsed chunk's length byte runs past the end of the RDATA.
	InputErrorTXTEntryTooLong
	// InputErrorInvalidTXTKey indicates a TXT key was empty, too long, or contained '='.
	InputErrorInvalidTXTKey
)

var inputErrorKindNames = [...]string{
	"invalid NUL in string",
	"RDATA too long",
	"TXT entry too long",
	"invalid TXT key",
}

// String returns a human-readable description of the kind.
func (k InputErrorKind) String() string {
	if int(k) < 0 || int(k) >= len(inputErrorKindNames) {
		return "unknown input error"
	}
	return inputErrorKindNames[k]
}

// InputError indicates the wrapper rejected an argument before reaching the daemon.
type InputError struct {
	Kind InputErrorKind
	// Detail carries additional context (e.g. the offending key).
	Detail string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("dnssd: %s", e.Kind)
	}
	return fmt.Sprintf("dnssd: %s: %s", e.Kind, e.Detail)
}

// NewInputError constructs an [*InputError].
func NewInputError(kind InputErrorKind, detail string) *InputError {
	return &InputError{Kind: kind, Detail: detail}
}

// AsIOError converts any error produced by this package into a standard
// I/O error, preserving the original error as the source chain (spec §7:
// "every error converts into a standard I/O error via an Other kind with
// a descriptive message; the typed error is preserved as the source chain").
func AsIOError(err error) error {
	if err == nil {
		return nil
	}
	return &ioError{cause: err}
}

type ioError struct {
	cause error
}

func (e *ioError) Error() string {
	return fmt.Sprintf("dnssd: %s", e.cause.Error())
}

func (e *ioError) Unwrap() error {
	return e.cause
}

func (e *ioError) Timeout() bool {
	var apiErr *APIError
	if asAPIError(e.cause, &apiErr) {
		return apiErr.Code == CodeTimeout
	}
	return false
}

var _ error = (*ioError)(nil)

// asAPIError is a small local errors.As helper: it follows the
// Unwrap() error chain of err and reports the first [*APIError] it finds.
func asAPIError(err error, target **APIError) bool {
	for err != nil {
		if apiErr, ok := err.(*APIError); ok {
			*target = apiErr
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

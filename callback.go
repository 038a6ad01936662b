// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"runtime/cgo"
	"unsafe"
)

// newCallbackContext boxes v so that its address survives a round trip
// through C, and a C-held opaque pointer can recover it (spec §4.3, §9
// "Callback context as raw pointer"). Grounded on the registry pattern in
// databricks-zerobus-sdk-go/sdk-ffi.go: a [runtime/cgo.Handle] replaces a
// hand-rolled map[unsafe.Pointer]any + mutex, since cgo.Handle already
// pins the value and gives a stable, comparable token.
//
// release must be called exactly once, after the native handle that knows
// ptr has been deallocated (spec §9: "drop only after the handle that
// knows the pointer is deallocated").
func newCallbackContext(v any) (ptr unsafe.Pointer, release func()) {
	h := cgo.NewHandle(v)
	return unsafe.Pointer(uintptr(h)), func() { h.Delete() }
}

// callbackContextValue recovers the value boxed by [newCallbackContext].
func callbackContextValue(ptr unsafe.Pointer) any {
	return cgo.Handle(uintptr(ptr)).Value()
}

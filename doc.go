// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnssd is an asynchronous, cancellation-safe client for
// DNS-Service-Discovery (DNS-SD / mDNS / Bonjour / avahi-compat).
//
// # Core Abstraction
//
// The hard engineering here is not the DNS-SD wire protocol — that is
// delegated to a platform-provided C library (Bonjour's dnssd, or
// avahi-compat-libdns_sd on Linux) exposing the `DNSService*` C ABI. This
// package is the async adapter that turns that callback/file-descriptor C
// API into cooperative Go streams and futures with correct resource
// ownership. See [Handle] and [SharedHandle] for native-handle ownership,
// and [Stream] and [Future] for the callback-to-channel bridge.
//
// # Operations
//
// Single-shot (futures): [Connection.RegisterRecord].
//
// Long-lived (streams): [Browse], [Resolve], [RegisterService] (whose
// [Register] result also hosts added records), [QueryRecord],
// [EnumerateDomains], [ResolveHostAddresses].
//
// Fire-and-forget: [ReconfirmRecord].
//
// [Timeout] wraps any stream with bounded-inactivity cancellation.
//
// # Resource ownership
//
// Every stream returned by this package owns its native handle ([Handle])
// until it is closed. Cancel by calling [Stream.Close]: this deallocates
// the native handle, which instructs the daemon to stop delivering
// callbacks. Cancelling the context passed to the operation's constructor
// stops the goroutine that drives the handle but does not deallocate it,
// and a stream that merely falls out of scope is not closed. Records obtained from [Register.AddRecord] or
// [Connection.RegisterRecord] nest their lifetime inside their parent
// handle; call [Record.Keep] to leak a record to the parent's lifetime
// instead of removing it on [Record.Close].
//
// # Observability
//
// All operations support structured logging via [SLogger] (compatible with
// [log/slog.Logger]). By default, logging is disabled; set [Config.Logger]
// to enable it. Error classification is configurable via [ErrClassifier];
// by default, [DefaultErrClassifier] classifies using the DNS-SD error
// variant's name.
//
// Every operation except [ReconfirmRecord] (a single Info event) emits a
// *Start/*Done span pair at [slog.LevelInfo] and
// per-callback events at [slog.LevelDebug], tagged with a spanID from
// [NewSpanID] so that a single operation's log lines correlate.
//
// # Concurrency model
//
// Each stream/future is driven by exactly one goroutine at a time — see
// [Handle.Drive]. A [SharedHandle] (used by [Connect] to host dependent
// records) serializes FFI calls behind a short-held mutex and
// drives readiness from a single background goroutine; callers only observe
// that goroutine's health, they never drive it directly.
package dnssd

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "context"

// serviceRef is the Go mirror of a DNSServiceRef: an opaque handle owned by
// the daemon connection. Zero is never a valid, live reference.
type serviceRef uintptr

// recordRef is the Go mirror of a DNSRecordRef returned by AddRecord/
// RegisterRecord.
type recordRef uintptr

// browseCallback mirrors DNSServiceBrowseReply (spec §6).
type browseCallback func(flags Flags, ifIndex Interface, errCode int32, serviceName, regType, replyDomain string)

// resolveCallback mirrors DNSServiceResolveReply.
type resolveCallback func(flags Flags, ifIndex Interface, errCode int32, fullname, hosttarget string, port uint16, txt []byte)

// registerCallback mirrors DNSServiceRegisterReply.
type registerCallback func(flags Flags, errCode int32, name, regType, domain string)

// domainCallback mirrors DNSServiceEnumerateDomainsReply (shared by
// EnumerateDomains; spec §4.4).
type domainCallback func(flags Flags, ifIndex Interface, errCode int32, replyDomain string)

// queryRecordCallback mirrors DNSServiceQueryRecordReply.
type queryRecordCallback func(flags Flags, ifIndex Interface, errCode int32, fullname string, rrtype Type, rrclass Class, rdata []byte, ttl uint32)

// registerRecordCallback mirrors DNSServiceRegisterRecordReply.
type registerRecordCallback func(flags Flags, errCode int32)

// api is the Go mirror of the DNSService* C ABI (spec §6). Production code
// is backed by [newCgoAPI]; tests are backed by a fake that records calls
// and invokes callbacks synchronously (see fake_api_test.go).
//
// Every constructor method returns a [serviceRef] synchronously; delivery
// of results happens later, out of band, via the supplied callback, driven
// by [api.processResult] once the ref's descriptor becomes readable
// (spec §4.1, §4.3).
type api interface {
	// browse starts a DNSServiceBrowse operation.
	browse(ctx context.Context, ifIndex Interface, regType, domain string, cb browseCallback) (serviceRef, error)

	// resolve starts a DNSServiceResolve operation.
	resolve(ctx context.Context, ifIndex Interface, serviceName, regType, domain string, cb resolveCallback) (serviceRef, error)

	// register starts a DNSServiceRegister operation.
	register(ctx context.Context, flags RegisterFlags, ifIndex Interface, name, regType, domain string, port uint16, txt []byte, cb registerCallback) (serviceRef, error)

	// enumerateDomains starts a DNSServiceEnumerateDomains operation.
	enumerateDomains(ctx context.Context, flags EnumerateFlags, ifIndex Interface, cb domainCallback) (serviceRef, error)

	// createConnection starts a DNSServiceCreateConnection shared connection.
	createConnection() (serviceRef, error)

	// registerRecord registers an additional resource record on a shared connection.
	registerRecord(conn serviceRef, ifIndex Interface, fullname string, rrtype Type, rrclass Class, rdata []byte, ttl uint32, cb registerRecordCallback) (recordRef, error)

	// addRecord adds an additional resource record to an existing registration.
	addRecord(sdRef serviceRef, rrtype Type, rdata []byte, ttl uint32) (recordRef, error)

	// updateRecord replaces the RDATA of an existing record (the primary
	// TXT record when rec is zero).
	updateRecord(sdRef serviceRef, rec recordRef, rdata []byte, ttl uint32) error

	// removeRecord deregisters a record previously added with addRecord or registerRecord.
	removeRecord(sdRef serviceRef, rec recordRef) error

	// queryRecord starts a DNSServiceQueryRecord operation.
	queryRecord(ctx context.Context, flags QueryFlags, ifIndex Interface, fullname string, rrtype Type, rrclass Class, cb queryRecordCallback) (serviceRef, error)

	// reconfirmRecord fires a one-shot DNSServiceReconfirmRecord request; it has no reply.
	reconfirmRecord(flags Flags, ifIndex Interface, fullname string, rrtype Type, rrclass Class, rdata []byte)

	// refSockFD returns the file descriptor to watch for readability.
	refSockFD(sdRef serviceRef) int

	// processResult reads and dispatches exactly one unit of work for sdRef,
	// invoking whichever callback is pending.
	processResult(sdRef serviceRef) error

	// refDeallocate releases a serviceRef and everything nested under it.
	refDeallocate(sdRef serviceRef)
}

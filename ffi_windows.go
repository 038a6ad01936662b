// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows

package dnssd

/*
#cgo LDFLAGS: -ldnssd

#include <dns_sd.h>
#include <stdlib.h>
#include <string.h>

extern void goBrowseReply(DNSServiceRef sdRef, DNSServiceFlags flags, uint32_t ifIndex,
	DNSServiceErrorType errorCode, const char *serviceName, const char *regType,
	const char *replyDomain, void *context);

extern void goResolveReply(DNSServiceRef sdRef, DNSServiceFlags flags, uint32_t ifIndex,
	DNSServiceErrorType errorCode, const char *fullname, const char *hosttarget,
	uint16_t port, uint16_t txtLen, const unsigned char *txtRecord, void *context);

extern void goRegisterReply(DNSServiceRef sdRef, DNSServiceFlags flags,
	DNSServiceErrorType errorCode, const char *name, const char *regType,
	const char *domain, void *context);

extern void goDomainReply(DNSServiceRef sdRef, DNSServiceFlags flags, uint32_t ifIndex,
	DNSServiceErrorType errorCode, const char *replyDomain, void *context);

extern void goQueryRecordReply(DNSServiceRef sdRef, DNSServiceFlags flags, uint32_t ifIndex,
	DNSServiceErrorType errorCode, const char *fullname, uint16_t rrtype, uint16_t rrclass,
	uint16_t rdlen, const void *rdata, uint32_t ttl, void *context);

extern void goRegisterRecordReply(DNSServiceRef sdRef, DNSRecordRef recordRef,
	DNSServiceFlags flags, DNSServiceErrorType errorCode, void *context);
*/
import "C"

import (
	"context"
	"sync"
	"unsafe"
)

// cgoAPI is the real [api] implementation on Windows, backed by Bonjour's
// dnssd.dll. The Windows port never sets AVAHI_COMPAT_NOWARN (that is an
// avahi-compat-on-Unix-only workaround, spec §6 "Process-wide environment
// side effect").
type cgoAPI struct {
	mu   sync.Mutex
	refs map[serviceRef]C.DNSServiceRef
	next serviceRef
}

// newCgoAPI returns the production [api].
func newCgoAPI() api {
	return &cgoAPI{refs: make(map[serviceRef]C.DNSServiceRef)}
}

func (a *cgoAPI) store(cref C.DNSServiceRef) serviceRef {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next++
	a.refs[a.next] = cref
	return a.next
}

func (a *cgoAPI) lookup(ref serviceRef) C.DNSServiceRef {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.refs[ref]
}

func (a *cgoAPI) forget(ref serviceRef) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.refs, ref)
}

func cString(s string) (*C.char, error) {
	if len(s) == 0 {
		return nil, nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return nil, NewInputError(InputErrorInvalidNUL, s)
		}
	}
	return C.CString(s), nil
}

func freeCString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func htons(v uint16) uint16 {
	return v<<8 | v>>8
}

func (a *cgoAPI) browse(ctx context.Context, ifIndex Interface, regType, domain string, cb browseCallback) (serviceRef, error) {
	cRegType, err := cString(regType)
	if err != nil {
		return 0, err
	}
	defer freeCString(cRegType)
	cDomain, err := cString(domain)
	if err != nil {
		return 0, err
	}
	defer freeCString(cDomain)

	ctxPtr, release := newCallbackContext(browseCallback(cb))

	var cref C.DNSServiceRef
	rc := C.DNSServiceBrowse(&cref, 0, C.uint32_t(ifIndex), cRegType, cDomain,
		(C.DNSServiceBrowseReply)(unsafe.Pointer(C.goBrowseReply)), ctxPtr)
	if rc != C.kDNSServiceErr_NoError {
		release()
		return 0, NewAPIError(int32(rc))
	}
	return a.store(cref), nil
}

func (a *cgoAPI) resolve(ctx context.Context, ifIndex Interface, serviceName, regType, domain string, cb resolveCallback) (serviceRef, error) {
	cName, err := cString(serviceName)
	if err != nil {
		return 0, err
	}
	defer freeCString(cName)
	cRegType, err := cString(regType)
	if err != nil {
		return 0, err
	}
	defer freeCString(cRegType)
	cDomain, err := cString(domain)
	if err != nil {
		return 0, err
	}
	defer freeCString(cDomain)

	ctxPtr, release := newCallbackContext(resolveCallback(cb))

	var cref C.DNSServiceRef
	rc := C.DNSServiceResolve(&cref, 0, C.uint32_t(ifIndex), cName, cRegType, cDomain,
		(C.DNSServiceResolveReply)(unsafe.Pointer(C.goResolveReply)), ctxPtr)
	if rc != C.kDNSServiceErr_NoError {
		release()
		return 0, NewAPIError(int32(rc))
	}
	return a.store(cref), nil
}

func (a *cgoAPI) register(ctx context.Context, flags RegisterFlags, ifIndex Interface, name, regType, domain string, port uint16, txt []byte, cb registerCallback) (serviceRef, error) {
	if len(txt) > 0xffff {
		return 0, NewInputError(InputErrorRDATATooLong, "")
	}
	cName, err := cString(name)
	if err != nil {
		return 0, err
	}
	defer freeCString(cName)
	cRegType, err := cString(regType)
	if err != nil {
		return 0, err
	}
	defer freeCString(cRegType)
	cDomain, err := cString(domain)
	if err != nil {
		return 0, err
	}
	defer freeCString(cDomain)

	var txtPtr unsafe.Pointer
	if len(txt) > 0 {
		txtPtr = unsafe.Pointer(&txt[0])
	}

	ctxPtr, release := newCallbackContext(registerCallback(cb))

	var cref C.DNSServiceRef
	rc := C.DNSServiceRegister(&cref, C.DNSServiceFlags(flags), C.uint32_t(ifIndex), cName, cRegType, cDomain,
		nil, C.uint16_t(htons(port)), C.uint16_t(len(txt)), txtPtr,
		(C.DNSServiceRegisterReply)(unsafe.Pointer(C.goRegisterReply)), ctxPtr)
	if rc != C.kDNSServiceErr_NoError {
		release()
		return 0, NewAPIError(int32(rc))
	}
	return a.store(cref), nil
}

func (a *cgoAPI) enumerateDomains(ctx context.Context, flags EnumerateFlags, ifIndex Interface, cb domainCallback) (serviceRef, error) {
	ctxPtr, release := newCallbackContext(domainCallback(cb))

	var cref C.DNSServiceRef
	rc := C.DNSServiceEnumerateDomains(&cref, C.DNSServiceFlags(flags), C.uint32_t(ifIndex),
		(C.DNSServiceDomainEnumReply)(unsafe.Pointer(C.goDomainReply)), ctxPtr)
	if rc != C.kDNSServiceErr_NoError {
		release()
		return 0, NewAPIError(int32(rc))
	}
	return a.store(cref), nil
}

func (a *cgoAPI) createConnection() (serviceRef, error) {
	var cref C.DNSServiceRef
	rc := C.DNSServiceCreateConnection(&cref)
	if rc != C.kDNSServiceErr_NoError {
		return 0, NewAPIError(int32(rc))
	}
	return a.store(cref), nil
}

func (a *cgoAPI) registerRecord(conn serviceRef, ifIndex Interface, fullname string, rrtype Type, rrclass Class, rdata []byte, ttl uint32, cb registerRecordCallback) (recordRef, error) {
	if len(rdata) > 0xffff {
		return 0, NewInputError(InputErrorRDATATooLong, "")
	}
	cFullname, err := cString(fullname)
	if err != nil {
		return 0, err
	}
	defer freeCString(cFullname)

	var rdataPtr unsafe.Pointer
	if len(rdata) > 0 {
		rdataPtr = unsafe.Pointer(&rdata[0])
	}

	ctxPtr, release := newCallbackContext(registerRecordCallback(cb))

	cref := a.lookup(conn)
	var crecord C.DNSRecordRef
	rc := C.DNSServiceRegisterRecord(cref, &crecord, 0, C.uint32_t(ifIndex), cFullname,
		C.uint16_t(rrtype), C.uint16_t(rrclass), C.uint16_t(len(rdata)), rdataPtr, C.uint32_t(ttl),
		(C.DNSServiceRegisterRecordReply)(unsafe.Pointer(C.goRegisterRecordReply)), ctxPtr)
	if rc != C.kDNSServiceErr_NoError {
		release()
		return 0, NewAPIError(int32(rc))
	}
	return recordRef(uintptr(unsafe.Pointer(crecord))), nil
}

func (a *cgoAPI) addRecord(sdRef serviceRef, rrtype Type, rdata []byte, ttl uint32) (recordRef, error) {
	if len(rdata) > 0xffff {
		return 0, NewInputError(InputErrorRDATATooLong, "")
	}
	var rdataPtr unsafe.Pointer
	if len(rdata) > 0 {
		rdataPtr = unsafe.Pointer(&rdata[0])
	}
	cref := a.lookup(sdRef)
	var crecord C.DNSRecordRef
	rc := C.DNSServiceAddRecord(cref, &crecord, 0, C.uint16_t(rrtype), C.uint16_t(len(rdata)), rdataPtr, C.uint32_t(ttl))
	if rc != C.kDNSServiceErr_NoError {
		return 0, NewAPIError(int32(rc))
	}
	return recordRef(uintptr(unsafe.Pointer(crecord))), nil
}

func (a *cgoAPI) updateRecord(sdRef serviceRef, rec recordRef, rdata []byte, ttl uint32) error {
	if len(rdata) > 0xffff {
		return NewInputError(InputErrorRDATATooLong, "")
	}
	var rdataPtr unsafe.Pointer
	if len(rdata) > 0 {
		rdataPtr = unsafe.Pointer(&rdata[0])
	}
	cref := a.lookup(sdRef)
	crecord := C.DNSRecordRef(unsafe.Pointer(uintptr(rec)))
	rc := C.DNSServiceUpdateRecord(cref, crecord, 0, C.uint16_t(len(rdata)), rdataPtr, C.uint32_t(ttl))
	if rc != C.kDNSServiceErr_NoError {
		return NewAPIError(int32(rc))
	}
	return nil
}

func (a *cgoAPI) removeRecord(sdRef serviceRef, rec recordRef) error {
	cref := a.lookup(sdRef)
	crecord := C.DNSRecordRef(unsafe.Pointer(uintptr(rec)))
	rc := C.DNSServiceRemoveRecord(cref, crecord, 0)
	if rc != C.kDNSServiceErr_NoError {
		return NewAPIError(int32(rc))
	}
	return nil
}

func (a *cgoAPI) queryRecord(ctx context.Context, flags QueryFlags, ifIndex Interface, fullname string, rrtype Type, rrclass Class, cb queryRecordCallback) (serviceRef, error) {
	cFullname, err := cString(fullname)
	if err != nil {
		return 0, err
	}
	defer freeCString(cFullname)

	ctxPtr, release := newCallbackContext(queryRecordCallback(cb))

	var cref C.DNSServiceRef
	rc := C.DNSServiceQueryRecord(&cref, C.DNSServiceFlags(flags), C.uint32_t(ifIndex), cFullname,
		C.uint16_t(rrtype), C.uint16_t(rrclass),
		(C.DNSServiceQueryRecordReply)(unsafe.Pointer(C.goQueryRecordReply)), ctxPtr)
	if rc != C.kDNSServiceErr_NoError {
		release()
		return 0, NewAPIError(int32(rc))
	}
	return a.store(cref), nil
}

func (a *cgoAPI) reconfirmRecord(flags Flags, ifIndex Interface, fullname string, rrtype Type, rrclass Class, rdata []byte) {
	cFullname, err := cString(fullname)
	if err != nil || cFullname == nil {
		return
	}
	defer freeCString(cFullname)
	var rdataPtr unsafe.Pointer
	if len(rdata) > 0 {
		rdataPtr = unsafe.Pointer(&rdata[0])
	}
	C.DNSServiceReconfirmRecord(C.DNSServiceFlags(flags), C.uint32_t(ifIndex), cFullname,
		C.uint16_t(rrtype), C.uint16_t(rrclass), C.uint16_t(len(rdata)), rdataPtr)
}

func (a *cgoAPI) refSockFD(sdRef serviceRef) int {
	cref := a.lookup(sdRef)
	return int(C.DNSServiceRefSockFD(cref))
}

func (a *cgoAPI) processResult(sdRef serviceRef) error {
	cref := a.lookup(sdRef)
	rc := C.DNSServiceProcessResult(cref)
	if rc != C.kDNSServiceErr_NoError {
		return NewAPIError(int32(rc))
	}
	return nil
}

func (a *cgoAPI) refDeallocate(sdRef serviceRef) {
	cref := a.lookup(sdRef)
	if cref != nil {
		C.DNSServiceRefDeallocate(cref)
	}
	a.forget(sdRef)
}

//export goBrowseReply
func goBrowseReply(sdRef C.DNSServiceRef, flags C.DNSServiceFlags, ifIndex C.uint32_t,
	errorCode C.DNSServiceErrorType, serviceName, regType, replyDomain *C.char, context unsafe.Pointer) {
	cb, ok := callbackContextValue(context).(browseCallback)
	if !ok {
		return
	}
	cb(Flags(flags), Interface(ifIndex), int32(errorCode), C.GoString(serviceName), C.GoString(regType), C.GoString(replyDomain))
}

//export goResolveReply
func goResolveReply(sdRef C.DNSServiceRef, flags C.DNSServiceFlags, ifIndex C.uint32_t,
	errorCode C.DNSServiceErrorType, fullname, hosttarget *C.char, port C.uint16_t,
	txtLen C.uint16_t, txtRecord unsafe.Pointer, context unsafe.Pointer) {
	cb, ok := callbackContextValue(context).(resolveCallback)
	if !ok {
		return
	}
	var txt []byte
	if txtLen > 0 {
		txt = C.GoBytes(txtRecord, C.int(txtLen))
	}
	// port arrives in network byte order; swap it back to host order.
	cb(Flags(flags), Interface(ifIndex), int32(errorCode), C.GoString(fullname), C.GoString(hosttarget), htons(uint16(port)), txt)
}

//export goRegisterReply
func goRegisterReply(sdRef C.DNSServiceRef, flags C.DNSServiceFlags,
	errorCode C.DNSServiceErrorType, name, regType, domain *C.char, context unsafe.Pointer) {
	cb, ok := callbackContextValue(context).(registerCallback)
	if !ok {
		return
	}
	cb(Flags(flags), int32(errorCode), C.GoString(name), C.GoString(regType), C.GoString(domain))
}

//export goDomainReply
func goDomainReply(sdRef C.DNSServiceRef, flags C.DNSServiceFlags, ifIndex C.uint32_t,
	errorCode C.DNSServiceErrorType, replyDomain *C.char, context unsafe.Pointer) {
	cb, ok := callbackContextValue(context).(domainCallback)
	if !ok {
		return
	}
	cb(Flags(flags), Interface(ifIndex), int32(errorCode), C.GoString(replyDomain))
}

//export goQueryRecordReply
func goQueryRecordReply(sdRef C.DNSServiceRef, flags C.DNSServiceFlags, ifIndex C.uint32_t,
	errorCode C.DNSServiceErrorType, fullname *C.char, rrtype, rrclass, rdlen C.uint16_t,
	rdata unsafe.Pointer, ttl C.uint32_t, context unsafe.Pointer) {
	cb, ok := callbackContextValue(context).(queryRecordCallback)
	if !ok {
		return
	}
	var rd []byte
	if rdlen > 0 {
		rd = C.GoBytes(rdata, C.int(rdlen))
	}
	cb(Flags(flags), Interface(ifIndex), int32(errorCode), C.GoString(fullname), Type(rrtype), Class(rrclass), rd, uint32(ttl))
}

//export goRegisterRecordReply
func goRegisterRecordReply(sdRef C.DNSServiceRef, recordRef C.DNSRecordRef, flags C.DNSServiceFlags,
	errorCode C.DNSServiceErrorType, context unsafe.Pointer) {
	cb, ok := callbackContextValue(context).(registerRecordCallback)
	if !ok {
		return
	}
	cb(Flags(flags), int32(errorCode))
}

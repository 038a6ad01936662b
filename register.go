// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "context"

// Register is the result of [RegisterService]: a stream of registration
// status updates that also serves as a handle for adding further resource
// records to the registration (spec §4.4 "Register" — "the returned object
// doubles as a handle exposing add_record").
type Register struct {
	*Stream[RegisterResult]
	api   api
	sdRef serviceRef
}

// AddRecord adds an additional resource record to this registration (e.g.
// a second TXT, SRV, or custom record). The record is removed when its
// [Record.Close] is called, unless [Record.Keep] is called first.
func (r *Register) AddRecord(rrtype Type, rdata []byte, ttl uint32) (*Record, error) {
	if len(rdata) > 0xffff {
		return nil, NewInputError(InputErrorRDATATooLong, "")
	}
	rec, err := r.api.addRecord(r.sdRef, rrtype, rdata, ttl)
	if err != nil {
		return nil, AsIOError(err)
	}
	return newRecord(r.api, r.sdRef, rec, nil), nil
}

// RegisterService starts a DNSServiceRegister operation (spec §4.4
// "Register"). port is in host byte order; it is converted to network
// byte order before being handed to the daemon (spec §8 "Port
// byte-order"). txt is the raw TXT RDATA for the primary TXT record; pass
// [TXTRecord.RDATA] or nil for an empty record.
func RegisterService(ctx context.Context, cfg *Config, flags RegisterFlags, ifIndex Interface, name, regType, domain string, port uint16, txt []byte) (*Register, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if len(txt) > 0xffff {
		return nil, NewInputError(InputErrorRDATATooLong, "")
	}
	spanID := NewSpanID()
	logger := cfg.Logger
	logger.Info("registerStart", "spanID", spanID, "name", name, "regType", regType, "port", port)

	var q *streamQueue[streamItem[RegisterResult]]
	cb := func(flags RegisteredFlags, errCode int32, rname, rtype, rdomain string) {
		if errCode != 0 {
			logger.Debug("registerCallbackError", "spanID", spanID, "errClass", cfg.ErrClassifier.Classify(NewAPIError(errCode)))
			q.push(streamItem[RegisterResult]{err: AsIOError(NewAPIError(errCode))})
			return
		}
		logger.Debug("registerCallback", "spanID", spanID, "name", rname, "flags", uint32(flags))
		q.push(streamItem[RegisterResult]{val: RegisterResult{
			Flags:   flags,
			Name:    rname,
			RegType: rtype,
			Domain:  rdomain,
		}})
	}

	ref, err := cfg.API.register(ctx, flags, ifIndex, name, regType, domain, port, txt, cb)
	if err != nil {
		logger.Info("registerDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	handle, err := newHandle(cfg.API, ref)
	if err != nil {
		logger.Info("registerDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	var stream *Stream[RegisterResult]
	stream, q = newStream[RegisterResult](handle)
	go runDriver(ctx, handle, q)

	logger.Info("registerDone", "spanID", spanID)
	return &Register{Stream: stream, api: cfg.API, sdRef: ref}, nil
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "context"

// QueryRecord starts a DNSServiceQueryRecord operation for a specific
// fullname/type/class (spec §4.4 "QueryRecord"). flags (e.g.
// [FlagLongLivedQuery]) are passed to the daemon unchanged; whatever they
// are, the returned stream does not end by itself after an answer, only on
// an error or when it is closed.
func QueryRecord(ctx context.Context, cfg *Config, flags QueryFlags, ifIndex Interface, fullname string, rrtype Type, rrclass Class) (*Stream[QueryRecordResult], error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	spanID := NewSpanID()
	logger := cfg.Logger
	logger.Info("queryStart", "spanID", spanID, "fullname", fullname, "type", rrtype.String(), "class", rrclass.String())

	var q *streamQueue[streamItem[QueryRecordResult]]
	cb := func(flags Flags, iface Interface, errCode int32, fn string, rt Type, rc Class, rdata []byte, ttl uint32) {
		if errCode != 0 {
			logger.Debug("queryCallbackError", "spanID", spanID, "errClass", cfg.ErrClassifier.Classify(NewAPIError(errCode)))
			q.push(streamItem[QueryRecordResult]{err: AsIOError(NewAPIError(errCode))})
			return
		}
		logger.Debug("queryCallback", "spanID", spanID, "fullname", fn, "ttl", ttl)
		q.push(streamItem[QueryRecordResult]{val: QueryRecordResult{
			Flags:     flags,
			Interface: iface,
			FullName:  fn,
			Type:      rt,
			Class:     rc,
			RDATA:     rdata,
			TTL:       ttl,
		}})
	}

	ref, err := cfg.API.queryRecord(ctx, flags, ifIndex, fullname, rrtype, rrclass, cb)
	if err != nil {
		logger.Info("queryDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	handle, err := newHandle(cfg.API, ref)
	if err != nil {
		logger.Info("queryDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	var stream *Stream[QueryRecordResult]
	stream, q = newStream[QueryRecordResult](handle)
	go runDriver(ctx, handle, q)

	logger.Info("queryDone", "spanID", spanID)
	return stream, nil
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import (
	"context"
)

// Browse starts a DNSServiceBrowse operation, returning a stream of
// service appearances/disappearances for regType (e.g. "_ssh._tcp") in
// domain (empty for the default domain set) on ifIndex (spec §4.4
// "Browse").
func Browse(ctx context.Context, cfg *Config, ifIndex Interface, regType, domain string) (*Stream[BrowseResult], error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	spanID := NewSpanID()
	logger := cfg.Logger
	logger.Info("browseStart", "spanID", spanID, "regType", regType, "domain", domain, "interface", ifIndex.String())

	var q *streamQueue[streamItem[BrowseResult]]
	cb := func(flags Flags, iface Interface, errCode int32, serviceName, rt, replyDomain string) {
		if errCode != 0 {
			err := AsIOError(NewAPIError(errCode))
			logger.Debug("browseCallbackError", "spanID", spanID, "errClass", cfg.ErrClassifier.Classify(NewAPIError(errCode)))
			q.push(streamItem[BrowseResult]{err: err})
			return
		}
		logger.Debug("browseCallback", "spanID", spanID, "serviceName", serviceName, "flags", uint32(flags))
		q.push(streamItem[BrowseResult]{val: BrowseResult{
			Flags:       flags,
			Interface:   iface,
			ServiceName: serviceName,
			RegType:     rt,
			Domain:      replyDomain,
		}})
	}

	ref, err := cfg.API.browse(ctx, ifIndex, regType, domain, cb)
	if err != nil {
		logger.Info("browseDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	handle, err := newHandle(cfg.API, ref)
	if err != nil {
		logger.Info("browseDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	var stream *Stream[BrowseResult]
	stream, q = newStream[BrowseResult](handle)
	go runDriver(ctx, handle, q)

	logger.Info("browseDone", "spanID", spanID)
	return stream, nil
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "context"

// Resolve starts a DNSServiceResolve operation for a specific service
// instance, typically one previously observed via [Browse] (spec §4.4
// "Resolve").
func Resolve(ctx context.Context, cfg *Config, ifIndex Interface, serviceName, regType, domain string) (*Stream[ResolveResult], error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	spanID := NewSpanID()
	logger := cfg.Logger
	logger.Info("resolveStart", "spanID", spanID, "serviceName", serviceName, "regType", regType, "domain", domain)

	var q *streamQueue[streamItem[ResolveResult]]
	cb := func(flags Flags, iface Interface, errCode int32, fullname, hosttarget string, port uint16, txt []byte) {
		if errCode != 0 {
			logger.Debug("resolveCallbackError", "spanID", spanID, "errClass", cfg.ErrClassifier.Classify(NewAPIError(errCode)))
			q.push(streamItem[ResolveResult]{err: AsIOError(NewAPIError(errCode))})
			return
		}
		logger.Debug("resolveCallback", "spanID", spanID, "fullname", fullname, "port", port)
		q.push(streamItem[ResolveResult]{val: ResolveResult{
			Flags:      flags,
			Interface:  iface,
			FullName:   fullname,
			HostTarget: hosttarget,
			Port:       port,
			TXT:        txt,
		}})
	}

	ref, err := cfg.API.resolve(ctx, ifIndex, serviceName, regType, domain, cb)
	if err != nil {
		logger.Info("resolveDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	handle, err := newHandle(cfg.API, ref)
	if err != nil {
		logger.Info("resolveDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	var stream *Stream[ResolveResult]
	stream, q = newStream[ResolveResult](handle)
	go runDriver(ctx, handle, q)

	logger.Info("resolveDone", "spanID", spanID)
	return stream, nil
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "context"

// EnumerateDomainMode selects which domain set to enumerate.
type EnumerateDomainMode int

const (
	// BrowseDomains enumerates domains recommended for browsing.
	BrowseDomains EnumerateDomainMode = iota
	// RegistrationDomains enumerates domains recommended for registration.
	RegistrationDomains
)

func (m EnumerateDomainMode) flags() EnumerateFlags {
	if m == RegistrationDomains {
		return FlagRegistrationDomains
	}
	return FlagBrowseDomains
}

// EnumerateDomains starts a DNSServiceEnumerateDomains operation (spec
// §4.4 "EnumerateDomains").
func EnumerateDomains(ctx context.Context, cfg *Config, mode EnumerateDomainMode, ifIndex Interface) (*Stream[EnumerateDomainsResult], error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	spanID := NewSpanID()
	logger := cfg.Logger
	logger.Info("enumerateStart", "spanID", spanID, "interface", ifIndex.String())

	var q *streamQueue[streamItem[EnumerateDomainsResult]]
	cb := func(flags EnumerateFlags, iface Interface, errCode int32, replyDomain string) {
		if errCode != 0 {
			logger.Debug("enumerateCallbackError", "spanID", spanID, "errClass", cfg.ErrClassifier.Classify(NewAPIError(errCode)))
			q.push(streamItem[EnumerateDomainsResult]{err: AsIOError(NewAPIError(errCode))})
			return
		}
		logger.Debug("enumerateCallback", "spanID", spanID, "domain", replyDomain, "flags", uint32(flags))
		q.push(streamItem[EnumerateDomainsResult]{val: EnumerateDomainsResult{
			Flags:       flags,
			Interface:   iface,
			ReplyDomain: replyDomain,
		}})
	}

	ref, err := cfg.API.enumerateDomains(ctx, mode.flags(), ifIndex, cb)
	if err != nil {
		logger.Info("enumerateDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	handle, err := newHandle(cfg.API, ref)
	if err != nil {
		logger.Info("enumerateDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	var stream *Stream[EnumerateDomainsResult]
	stream, q = newStream[EnumerateDomainsResult](handle)
	go runDriver(ctx, handle, q)

	logger.Info("enumerateDone", "spanID", spanID)
	return stream, nil
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

// ReconfirmRecord fires a one-shot DNSServiceReconfirmRecord request: a
// hint to the daemon that a record it believes is stale should be
// reconfirmed. There is no future, no stream, and no result (spec §4.4
// "ReconfirmRecord").
func ReconfirmRecord(cfg *Config, ifIndex Interface, fullname string, rrtype Type, rrclass Class, rdata []byte) {
	if cfg == nil {
		cfg = NewConfig()
	}
	spanID := NewSpanID()
	cfg.Logger.Info("reconfirmRecord", "spanID", spanID, "fullname", fullname, "type", rrtype.String())
	cfg.API.reconfirmRecord(0, ifIndex, fullname, rrtype, rrclass, rdata)
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "strings"

// ConstructFullName builds the fully qualified service instance name from
// its parts, mirroring DNSServiceConstructFullName (spec §4.7, §6 "Full-name
// buffer"). service may be empty to construct a registration-type-only name
// (e.g. for [Browse]/[EnumerateDomains]). Label separators ('.' and '\')
// within service are escaped with a leading backslash, since they are
// label content rather than label separators (spec §8 "Full-name
// construction").
func ConstructFullName(service, regType, domain string) (string, error) {
	if strings.IndexByte(regType, 0) >= 0 || strings.IndexByte(domain, 0) >= 0 || strings.IndexByte(service, 0) >= 0 {
		return "", NewInputError(InputErrorInvalidNUL, "")
	}
	var b strings.Builder
	if service != "" {
		b.WriteString(escapeLabel(service))
		b.WriteByte('.')
	}
	b.WriteString(strings.TrimSuffix(regType, "."))
	b.WriteByte('.')
	b.WriteString(domain)
	full := b.String()
	if len(full)+1 > 1009 {
		return "", NewInputError(InputErrorRDATATooLong, "full name exceeds 1009 bytes")
	}
	return full, nil
}

func escapeLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

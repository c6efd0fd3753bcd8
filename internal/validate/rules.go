// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"fmt"
	"net/netip"
	"regexp"
	"slices"
	"strings"
	"time"
)

// Kind identifies the format rule applied to a column.
type Kind int

const (
	// KindNonEmpty accepts any non-null value.
	KindNonEmpty Kind = iota
	// KindTimestamp requires an ISO 8601 date-time with a Z designator.
	KindTimestamp
	// KindIP requires an IPv4 or IPv6 literal.
	KindIP
	// KindCountry requires two uppercase ASCII letters.
	KindCountry
	// KindEnum requires membership in Rule.Allowed.
	KindEnum
	// KindDecimal requires a non-negative decimal number.
	KindDecimal
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNonEmpty:
		return "non-empty"
	case KindTimestamp:
		return "timestamp"
	case KindIP:
		return "ip"
	case KindCountry:
		return "country code"
	case KindEnum:
		return "enum"
	case KindDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Rule is the validation policy for one column.
type Rule struct {
	Column  string
	Kind    Kind
	Allowed []string // only for KindEnum
}

// rules is ordered to match the expected schema. Callers only ever see it
// through Rules, which copies every Allowed slice.
var rules = []Rule{
	{Column: "event_id", Kind: KindNonEmpty},
	{Column: "timestamp", Kind: KindTimestamp},
	{Column: "user_id", Kind: KindNonEmpty},
	{Column: "ip", Kind: KindIP},
	{Column: "country", Kind: KindCountry},
	{Column: "event_type", Kind: KindEnum, Allowed: []string{"login", "change_password", "payment"}},
	{Column: "amount", Kind: KindDecimal},
}

// Rules returns a copy of the rule table in column order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Allowed = slices.Clone(r.Allowed)
		out[i] = r
	}
	return out
}

var (
	errBadTimestamp = errors.New("not an ISO 8601 UTC timestamp")
	errBadIP        = errors.New("not an IP address")
	errBadCountry   = errors.New("not a 2-letter uppercase country code")
	errBadDecimal   = errors.New("not a non-negative decimal number")
)

var (
	countryRe = regexp.MustCompile(`^[A-Z]{2}$`)
	decimalRe = regexp.MustCompile(`^(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)
)

// checkFormat applies the type/format half of the rule. Enum membership is
// left to checkAllowed.
func (r Rule) checkFormat(v string) error {
	switch r.Kind {
	case KindTimestamp:
		if !strings.HasSuffix(v, "Z") {
			return errBadTimestamp
		}
		if _, err := time.Parse(time.RFC3339Nano, v); err != nil {
			return errBadTimestamp
		}
	case KindIP:
		if _, err := netip.ParseAddr(v); err != nil {
			return errBadIP
		}
	case KindCountry:
		if !countryRe.MatchString(v) {
			return errBadCountry
		}
	case KindDecimal:
		if !decimalRe.MatchString(v) {
			return errBadDecimal
		}
	}
	return nil
}

// checkAllowed applies the allowed-values half of the rule. It reports
// applies=false for columns without a fixed value set.
func (r Rule) checkAllowed(v string) (applies bool, err error) {
	if r.Kind != KindEnum {
		return false, nil
	}
	if slices.Contains(r.Allowed, v) {
		return true, nil
	}
	return true, fmt.Errorf("value must be one of: %s", strings.Join(r.Allowed, ", "))
}

// nullTokens are literal placeholders treated the same as an empty cell.
var nullTokens = []string{"null", "<null>", `\n`}

// IsNull reports whether a trimmed cell value represents a missing value.
func IsNull(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	return slices.Contains(nullTokens, strings.ToLower(v))
}

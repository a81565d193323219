package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Rule is a single named predicate over one field of a record.
type Rule struct {
	// Field is the name of the checked field, used for logging only.
	Field string
	// Valid reports whether the field satisfied the predicate.
	Valid bool
}

// Check evaluates every rule and reports whether all of them passed.
func Check(rules ...Rule) bool {
	ok := true
	for _, r := range rules {
		ok = ok && r.Valid
	}
	return ok
}

// FirstFailure returns the field name of the first failed rule, or "" if all passed.
func FirstFailure(rules ...Rule) string {
	for _, r := range rules {
		if !r.Valid {
			return r.Field
		}
	}
	return ""
}

// Required fails for empty or whitespace-only strings.
func Required(field, value string) Rule {
	return Rule{Field: field, Valid: strings.TrimSpace(value) != ""}
}

// Length checks the rune count of value lies in [lo, hi].
func Length(field, value string, lo, hi int) Rule {
	n := utf8.RuneCountInString(value)
	return Rule{Field: field, Valid: n >= lo && n <= hi}
}

// MaxLength checks the rune count of value does not exceed hi.
func MaxLength(field, value string, hi int) Rule {
	return Rule{Field: field, Valid: utf8.RuneCountInString(value) <= hi}
}

// Range checks lo <= value <= hi.
func Range(field string, value, lo, hi int) Rule {
	return Rule{Field: field, Valid: value >= lo && value <= hi}
}

// NonNegative fails for amounts below zero.
func NonNegative(field string, value decimal.Decimal) Rule {
	return Rule{Field: field, Valid: !value.IsNegative()}
}

// Matches checks value against pattern. An empty value passes; pair it with
// Required when the field is mandatory.
func Matches(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{Field: field, Valid: value == "" || pattern.MatchString(value)}
}

// Present fails when a collection was absent from the payload.
func Present[T any](field string, value []T) Rule {
	return Rule{Field: field, Valid: value != nil}
}

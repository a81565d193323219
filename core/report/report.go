// Package report builds the per-record status text returned by every import.
//
// One line is appended per input record, in input order, whether the record
// was accepted or rejected. Rejected records always produce the literal
// InvalidData line; no field-level detail ever reaches the report.
package report

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// InvalidData is the line emitted for any rejected record.
	InvalidData = "Invalid Data"
	// GameAdded formats an accepted game: name, genre, tag count.
	GameAdded = "Added %s (%s) with %d tags"
	// UserImported formats an accepted user: username, card count.
	UserImported = "Imported %s with %d cards"
	// PurchaseImported formats an accepted purchase: game name, username.
	PurchaseImported = "Imported %s for %s"
)

// Builder accumulates report lines.
type Builder struct {
	lines    []string
	accepted int
	rejected int
}

// Invalid records a rejected record.
func (b *Builder) Invalid() {
	b.lines = append(b.lines, InvalidData)
	b.rejected++
}

// Addf records an accepted record using one of the success formats.
func (b *Builder) Addf(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
	b.accepted++
}

// Accepted returns the number of accepted records.
func (b *Builder) Accepted() int {
	return b.accepted
}

// Rejected returns the number of rejected records.
func (b *Builder) Rejected() int {
	return b.rejected
}

// Lines returns a copy of the recorded lines.
func (b *Builder) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String joins the lines with newlines, trailing whitespace trimmed.
func (b *Builder) String() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace)
}

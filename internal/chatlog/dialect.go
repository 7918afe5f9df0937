package chatlog

import "strings"

// Dialect identifies one of the recognized chat-export layouts.
type Dialect int

const (
	DialectUnknown Dialect = iota

	// DialectBracketed covers exports with the timestamp enclosed in (or at
	// least terminated by) a square bracket: `[12/03/21, 14:05:10] Alice: hi`.
	DialectBracketed

	// DialectDashed covers exports with a leading timestamp followed by a
	// comma-dash separator: `12/03/21, 14:05 - Alice: hi`.
	DialectDashed

	// DialectPreNormalized covers delimited tabular exports that already carry
	// a `year` column and bypass text parsing entirely.
	DialectPreNormalized
)

// String returns the dialect tag handed to downstream analytics. The tag is
// part of the output contract and selects locale-specific phrase lists.
func (d Dialect) String() string {
	switch d {
	case DialectBracketed:
		return "bracketed"
	case DialectDashed:
		return "dashed"
	case DialectPreNormalized:
		return "prenormalized"
	default:
		return "unknown"
	}
}

// HeaderTemplate describes how one dialect encodes the per-message header.
// Format uses a small token syntax (%d, %m, %y, %H, %M, %S, %p, %name) plus
// literal separators, e.g. `[%d/%m/%y, %H:%M:%S] %name:`. Templates are
// immutable once built by the format detector.
type HeaderTemplate struct {
	Format string
}

// SwapDayMonth returns a copy of the template with the day and month token
// positions exchanged. Used by the single disambiguation retry when the
// default day-first reading produced an out-of-range month.
func (t HeaderTemplate) SwapDayMonth() HeaderTemplate {
	f := strings.ReplaceAll(t.Format, "%d", "\x00")
	f = strings.ReplaceAll(f, "%m", "%d")
	f = strings.ReplaceAll(f, "\x00", "%m")
	return HeaderTemplate{Format: f}
}

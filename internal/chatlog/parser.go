package chatlog

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

// MessageRecord is one logical chat message. The body never contains a raw
// boundary match of the next message's header; continuation lines are fully
// absorbed into it with their interior newlines preserved.
type MessageRecord struct {
	Timestamp time.Time
	Author    string
	Body      string
}

// Result is the parser output handed to the schema normalizer.
type Result struct {
	Dialect Dialect
	Records []MessageRecord
}

// Options tunes a single parse. The zero value is usable.
type Options struct {
	// ScanWindow bounds format detection; <= 0 selects DefaultScanWindow.
	ScanWindow int

	// AlertPhrases are locale-specific system-notification phrases. A body is
	// truncated at the first phrase found at a line start, in addition to the
	// boundary-prefix truncation that always applies.
	AlertPhrases []string
}

// Parse runs the full pipeline over one raw export: encoding check, format
// detection, boundary compilation, line parsing with the single day/month
// disambiguation retry, and notification stripping.
//
// An empty or boundary-free text is valid and yields zero records.
func Parse(raw []byte, opts Options) (*Result, error) {
	if !utf8.Valid(raw) {
		return nil, ErrInvalidEncoding
	}
	text := string(raw)

	// An empty chat file is valid; it produces an empty table downstream.
	if strings.TrimSpace(text) == "" {
		return &Result{Dialect: DialectUnknown}, nil
	}

	det, err := DetectFormat(text, opts.ScanWindow)
	if err != nil {
		return nil, err
	}

	if det.Dialect == DialectPreNormalized {
		recs, err := parsePreNormalized(text)
		if err != nil {
			return nil, err
		}
		return &Result{Dialect: det.Dialect, Records: recs}, nil
	}

	pats, err := CompileTemplate(det.Template)
	if err != nil {
		return nil, fmt.Errorf("compile header template: %w", err)
	}

	recs, err := parseLines(text, pats)
	if err != nil {
		var dre *dateRangeError
		if !errors.As(err, &dre) {
			return nil, err
		}
		// One retry with day and month swapped. A second failure means the
		// export's date order cannot be resolved either way.
		slog.Debug("date out of range, retrying with day/month swapped",
			"template", det.Template.Format, "cause", dre.Error())
		swapped, cerr := CompileTemplate(det.Template.SwapDayMonth())
		if cerr != nil {
			return nil, fmt.Errorf("compile swapped template: %w", cerr)
		}
		recs, err = parseLines(text, swapped)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAmbiguousDateFormat, err)
		}
		pats = swapped
	}

	for i := range recs {
		recs[i].Body = removeAlerts(recs[i].Body, pats.Prefix, opts.AlertPhrases)
	}

	return &Result{Dialect: det.Dialect, Records: recs}, nil
}

// parseLines walks every boundary match in the text. The body of each message
// is the text between the end of its header and the start of the next header
// (or end of text), with outer whitespace trimmed.
func parseLines(text string, pats BoundaryPatterns) ([]MessageRecord, error) {
	matches := pats.Header.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	groups := newGroupIndex(pats.Header)
	records := make([]MessageRecord, 0, len(matches))
	for i, m := range matches {
		ts, author, err := groups.extract(text, m)
		if err != nil {
			var dre *dateRangeError
			if errors.As(err, &dre) {
				return nil, err
			}
			// Partially matched headers are skipped, never fatal.
			slog.Debug("skipping partial header match", "offset", m[0], "cause", err)
			continue
		}

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		records = append(records, MessageRecord{
			Timestamp: ts,
			Author:    author,
			Body:      strings.TrimSpace(text[m[1]:end]),
		})
	}
	return records, nil
}

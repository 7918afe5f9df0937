package chatlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Accepted datetime layouts for the pre-normalized dialect, tried in order.
var preNormalizedLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parsePreNormalized ingests a delimited tabular export that already carries
// an author/message/date shape. Derived columns in the file are ignored; the
// schema normalizer recomputes them from the timestamp so the canonical-table
// invariants hold regardless of what the exporter wrote.
func parsePreNormalized(text string) ([]MessageRecord, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable table header", ErrUnrecognizedFormat)
	}

	dateCol, authorCol, bodyCol := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "date", "datetime":
			dateCol = i
		case "author", "username":
			authorCol = i
		case "body", "message":
			bodyCol = i
		}
	}
	if dateCol < 0 || authorCol < 0 || bodyCol < 0 {
		return nil, fmt.Errorf("%w: table is missing date, author or body columns", ErrUnrecognizedFormat)
	}

	var records []MessageRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Debug("skipping malformed table row", "cause", err)
			continue
		}
		if dateCol >= len(row) || authorCol >= len(row) || bodyCol >= len(row) {
			slog.Debug("skipping short table row", "columns", len(row))
			continue
		}

		ts, ok := parsePreNormalizedTime(strings.TrimSpace(row[dateCol]))
		if !ok {
			slog.Debug("skipping row with unreadable timestamp", "value", row[dateCol])
			continue
		}
		records = append(records, MessageRecord{
			Timestamp: ts,
			Author:    strings.TrimSpace(row[authorCol]),
			Body:      row[bodyCol],
		})
	}
	return records, nil
}

func parsePreNormalizedTime(value string) (time.Time, bool) {
	for _, layout := range preNormalizedLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

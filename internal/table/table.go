// Package table holds the canonical typed output of the parsing pipeline.
// Every derived column is a pure function of the record timestamp, computed
// on a fixed Gregorian calendar with English names regardless of the source
// file's language.
package table

import (
	"sort"
	"time"

	"github.com/natworks/chatdash/internal/chatlog"
)

// Weekdays is the fixed Monday-first weekday label order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Months is the fixed January-first month label order.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Record is one normalized message with its derived calendar columns.
type Record struct {
	Datetime     time.Time `json:"datetime"`
	Author       string    `json:"author"`
	Body         string    `json:"body"`
	DayOfMonth   int       `json:"day_of_month"`
	Weekday      string    `json:"weekday"`
	Month        string    `json:"month"`
	Year         int       `json:"year"`
	HourOfDay    int       `json:"hour_of_day"`
	MinuteOfHour int       `json:"minute_of_hour"`
}

// Table is the canonical table handed to all downstream analytics. Records
// keep the chronological order of the source text; the table is never
// re-sorted. Source is the dialect tag of the export that produced it.
type Table struct {
	Source  string   `json:"source"`
	Records []Record `json:"records"`
}

// Normalize builds the canonical table from parsed message records.
func Normalize(recs []chatlog.MessageRecord, source string) *Table {
	t := &Table{
		Source:  source,
		Records: make([]Record, len(recs)),
	}
	for i, r := range recs {
		t.Records[i] = newRecord(r.Timestamp, r.Author, r.Body)
	}
	return t
}

func newRecord(ts time.Time, author, body string) Record {
	return Record{
		Datetime:     ts,
		Author:       author,
		Body:         body,
		DayOfMonth:   ts.Day(),
		Weekday:      weekdayName(ts.Weekday()),
		Month:        Months[int(ts.Month())-1],
		Year:         ts.Year(),
		HourOfDay:    ts.Hour(),
		MinuteOfHour: ts.Minute(),
	}
}

// weekdayName maps time.Weekday (Sunday=0) onto the Monday-first label order.
func weekdayName(wd time.Weekday) string {
	return Weekdays[(int(wd)+6)%7]
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Authors returns the unique author identifiers in first-seen order.
func (t *Table) Authors() []string {
	seen := make(map[string]bool)
	var authors []string
	for _, r := range t.Records {
		if !seen[r.Author] {
			seen[r.Author] = true
			authors = append(authors, r.Author)
		}
	}
	return authors
}

// Years returns the distinct years present, ascending.
func (t *Table) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range t.Records {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

// FilterYear returns a new table holding only the records of one year, in the
// original order. The receiver is not modified.
func (t *Table) FilterYear(year int) *Table {
	out := &Table{Source: t.Source}
	for _, r := range t.Records {
		if r.Year == year {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

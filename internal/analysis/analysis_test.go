package analysis

import (
	"reflect"
	"testing"
	"time"

	"github.com/natworks/chatdash/internal/chatlog"
	"github.com/natworks/chatdash/internal/table"
)

// newTable builds a canonical table from (timestamp, author, body) rows.
func newTable(t *testing.T, rows ...chatlog.MessageRecord) *table.Table {
	t.Helper()
	return table.Normalize(rows, "dashed")
}

func msg(ts time.Time, author, body string) chatlog.MessageRecord {
	return chatlog.MessageRecord{Timestamp: ts, Author: author, Body: body}
}

func at(day, hour int) time.Time {
	return time.Date(2021, time.March, day, hour, 0, 0, 0, time.UTC)
}

func TestBuildTotals(t *testing.T) {
	tbl := newTable(t,
		msg(time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC), "Bob", "a"),
		msg(at(12, 10), "Alice", "b"),
		msg(at(12, 11), "Alice", "c"),
		msg(at(12, 12), "Bob", "d"),
		msg(at(13, 9), "Alice", "e"),
	)

	totals := BuildTotals(tbl)
	if totals.Messages != 5 {
		t.Errorf("messages = %d", totals.Messages)
	}
	wantAuthors := []AuthorCount{{Author: "Alice", Count: 3}, {Author: "Bob", Count: 2}}
	if !reflect.DeepEqual(totals.PerAuthor, wantAuthors) {
		t.Errorf("per author = %v", totals.PerAuthor)
	}
	wantYears := []YearCount{{Year: 2020, Count: 1}, {Year: 2021, Count: 4}}
	if !reflect.DeepEqual(totals.PerYear, wantYears) {
		t.Errorf("per year = %v", totals.PerYear)
	}
}

func TestHourFrequency(t *testing.T) {
	tbl := newTable(t,
		msg(at(12, 14), "Alice", "a"),
		msg(at(13, 14), "Bob", "b"),
		msg(at(14, 9), "Alice", "c"),
	)

	f := HourFrequency(tbl)
	if f.Column != "hour_of_day" || len(f.Labels) != 24 || len(f.Counts) != 24 {
		t.Fatalf("shape = %q %d/%d", f.Column, len(f.Labels), len(f.Counts))
	}
	if f.Counts[14] != 2 || f.Counts[9] != 1 {
		t.Errorf("counts = %v", f.Counts)
	}
	if f.Top != "14" {
		t.Errorf("top = %q", f.Top)
	}
	if got := f.PerAuthor["Alice"][14]; got != 1 {
		t.Errorf("alice@14 = %d", got)
	}
}

func TestWeekdayFrequency_MondayFirst(t *testing.T) {
	// 2021-03-08 Monday, 2021-03-14 Sunday.
	tbl := newTable(t,
		msg(at(8, 10), "Alice", "a"),
		msg(at(8, 11), "Bob", "b"),
		msg(at(14, 10), "Alice", "c"),
	)

	f := WeekdayFrequency(tbl)
	if !reflect.DeepEqual(f.Labels, table.Weekdays) {
		t.Fatalf("labels = %v", f.Labels)
	}
	if f.Counts[0] != 2 || f.Counts[6] != 1 {
		t.Errorf("counts = %v", f.Counts)
	}
	if f.Top != "Monday" {
		t.Errorf("top = %q", f.Top)
	}
}

func TestMonthFrequency(t *testing.T) {
	tbl := newTable(t,
		msg(time.Date(2021, time.January, 5, 0, 0, 0, 0, time.UTC), "A", ""),
		msg(time.Date(2021, time.March, 5, 0, 0, 0, 0, time.UTC), "A", ""),
		msg(time.Date(2021, time.March, 6, 0, 0, 0, 0, time.UTC), "B", ""),
	)

	f := MonthFrequency(tbl)
	if f.Counts[0] != 1 || f.Counts[2] != 2 {
		t.Errorf("counts = %v", f.Counts)
	}
	if f.Top != "March" {
		t.Errorf("top = %q", f.Top)
	}
}

func TestFrequency_EmptyTableHasNoTop(t *testing.T) {
	f := HourFrequency(newTable(t))
	if f.Top != "" {
		t.Errorf("top = %q, want empty", f.Top)
	}
	if len(f.Counts) != 24 {
		t.Errorf("counts len = %d", len(f.Counts))
	}
}

func TestBuildReport(t *testing.T) {
	tbl := newTable(t,
		msg(at(12, 14), "Alice", "hello 😂"),
		msg(at(12, 15), "Bob", "see https://example.com/x"),
	)

	rep := BuildReport(tbl, testPhraseSet())
	if rep.Source != "dashed" {
		t.Errorf("source = %q", rep.Source)
	}
	if rep.Totals.Messages != 2 {
		t.Errorf("messages = %d", rep.Totals.Messages)
	}
	if rep.Links.TotalLinks != 1 {
		t.Errorf("links = %d", rep.Links.TotalLinks)
	}
	if len(rep.TopEmojis) != 1 || rep.TopEmojis[0].Emoji != "😂" {
		t.Errorf("emojis = %v", rep.TopEmojis)
	}
	if rep.BusiestDay == nil || rep.BusiestDay.Date != "2021-03-12" {
		t.Errorf("busiest day = %v", rep.BusiestDay)
	}
}

package analysis

import (
	"testing"
	"time"
)

func TestBusiestDay(t *testing.T) {
	tbl := newTable(t,
		msg(at(12, 10), "Alice", "a"),
		msg(at(12, 11), "Bob", "b"),
		msg(at(12, 12), "Alice", "c"),
		msg(at(13, 10), "Bob", "d"),
	)

	got := BusiestDay(tbl)
	if got == nil || got.Date != "2021-03-12" || got.Count != 3 {
		t.Errorf("busiest = %+v", got)
	}
}

func TestBusiestDay_TieResolvesToEarliest(t *testing.T) {
	tbl := newTable(t,
		msg(at(12, 10), "Alice", "a"),
		msg(at(13, 10), "Bob", "b"),
	)

	got := BusiestDay(tbl)
	if got == nil || got.Date != "2021-03-12" {
		t.Errorf("busiest = %+v", got)
	}
}

func TestBusiestDay_Empty(t *testing.T) {
	if got := BusiestDay(newTable(t)); got != nil {
		t.Errorf("busiest = %+v", got)
	}
}

func TestBiggestGap(t *testing.T) {
	tbl := newTable(t,
		msg(at(12, 10), "Alice", "before"),
		msg(at(12, 11), "Bob", "quiet starts"),
		msg(at(14, 12), "Alice", "quiet ends"),
	)

	gap := BiggestGap(tbl)
	if gap == nil {
		t.Fatal("expected a gap")
	}
	if want := 49 * time.Hour; gap.Duration != want {
		t.Errorf("duration = %v, want %v", gap.Duration, want)
	}
	if gap.Days != 2 {
		t.Errorf("days = %d, want 2", gap.Days)
	}
	if gap.Start.Body != "quiet starts" || gap.End.Body != "quiet ends" {
		t.Errorf("bounds = %q -> %q", gap.Start.Body, gap.End.Body)
	}
}

func TestBiggestGap_TooFewRecords(t *testing.T) {
	if got := BiggestGap(newTable(t, msg(at(12, 10), "Alice", "only"))); got != nil {
		t.Errorf("gap = %+v", got)
	}
}

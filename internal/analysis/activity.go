package analysis

import (
	"time"

	"github.com/natworks/chatdash/internal/table"
)

// DayCount is the message count of one calendar day.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Gap is the longest silence between two consecutive messages.
type Gap struct {
	Duration time.Duration `json:"duration"`
	Days     int           `json:"days"`
	Start    table.Record  `json:"start"`
	End      table.Record  `json:"end"`
}

// BusiestDay finds the calendar day with the most messages. Returns nil for
// an empty table; ties resolve to the earliest day.
func BusiestDay(t *table.Table) *DayCount {
	counts := make(map[string]int)
	for _, r := range t.Records {
		counts[r.Datetime.Format("2006-01-02")]++
	}
	if len(counts) == 0 {
		return nil
	}

	best := DayCount{}
	for d, c := range counts {
		if c > best.Count || (c == best.Count && d < best.Date) {
			best = DayCount{Date: d, Count: c}
		}
	}
	return &best
}

// BiggestGap finds the longest quiet period between consecutive messages,
// relying on the table's chronological order. Returns nil when the table has
// fewer than two records.
func BiggestGap(t *table.Table) *Gap {
	if len(t.Records) < 2 {
		return nil
	}

	var gap Gap
	for i := 1; i < len(t.Records); i++ {
		d := t.Records[i].Datetime.Sub(t.Records[i-1].Datetime)
		if d > gap.Duration {
			gap = Gap{
				Duration: d,
				Start:    t.Records[i-1],
				End:      t.Records[i],
			}
		}
	}
	gap.Days = int(gap.Duration.Hours() / 24)
	return &gap
}

// Package analysis derives analytics over a canonical chat table: message
// counts, temporal activity, first-responder relationships, emoji usage,
// link sharing and media-sharing behavior. Everything here is a pure
// function of the table (and, for media, the locale phrase set).
package analysis

import (
	"sort"
	"strconv"

	"github.com/natworks/chatdash/internal/phrases"
	"github.com/natworks/chatdash/internal/table"
)

// AuthorCount pairs an author with a message (or event) count.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// YearCount pairs a calendar year with a message count.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// Totals summarizes message volume.
type Totals struct {
	Messages  int           `json:"messages"`
	PerAuthor []AuthorCount `json:"per_author"`
	PerYear   []YearCount   `json:"per_year"`
}

// Report bundles every analysis over one table.
type Report struct {
	Source          string          `json:"source"`
	Totals          Totals          `json:"totals"`
	Months          Frequency       `json:"months"`
	Weekdays        Frequency       `json:"weekdays"`
	Hours           Frequency       `json:"hours"`
	FirstResponders ResponderMatrix `json:"first_responders"`
	TopEmojis       []EmojiCount    `json:"top_emojis"`
	Links           LinkStats       `json:"links"`
	Media           MediaStats      `json:"media"`
	BusiestDay      *DayCount       `json:"busiest_day,omitempty"`
	BiggestGap      *Gap            `json:"biggest_gap,omitempty"`
}

// topEmojiCount is how many emoji the report surfaces.
const topEmojiCount = 5

// BuildReport runs every analysis over the table. The phrase set drives media
// detection and should match the export's language.
func BuildReport(t *table.Table, set phrases.PhraseSet) *Report {
	return &Report{
		Source:          t.Source,
		Totals:          BuildTotals(t),
		Months:          MonthFrequency(t),
		Weekdays:        WeekdayFrequency(t),
		Hours:           HourFrequency(t),
		FirstResponders: FirstResponders(t),
		TopEmojis:       TopEmojis(t, topEmojiCount),
		Links:           CountLinks(t),
		Media:           CountMedia(t, set.Media),
		BusiestDay:      BusiestDay(t),
		BiggestGap:      BiggestGap(t),
	}
}

// BuildTotals counts messages overall, per author (descending) and per year
// (ascending year).
func BuildTotals(t *table.Table) Totals {
	perAuthor := make(map[string]int)
	perYear := make(map[int]int)
	for _, r := range t.Records {
		perAuthor[r.Author]++
		perYear[r.Year]++
	}

	totals := Totals{Messages: len(t.Records)}
	for _, a := range t.Authors() {
		totals.PerAuthor = append(totals.PerAuthor, AuthorCount{Author: a, Count: perAuthor[a]})
	}
	sort.SliceStable(totals.PerAuthor, func(i, j int) bool {
		return totals.PerAuthor[i].Count > totals.PerAuthor[j].Count
	})
	for _, y := range t.Years() {
		totals.PerYear = append(totals.PerYear, YearCount{Year: y, Count: perYear[y]})
	}
	return totals
}

// Frequency is a label-ordered activity histogram with per-author series.
// Counts and every PerAuthor series align with Labels index-for-index.
type Frequency struct {
	Column    string           `json:"column"`
	Labels    []string         `json:"labels"`
	Counts    []int            `json:"counts"`
	Top       string           `json:"top"`
	PerAuthor map[string][]int `json:"per_author"`
}

// MonthFrequency counts messages per calendar month, January first.
func MonthFrequency(t *table.Table) Frequency {
	return frequency(t, "month", table.Months, func(r table.Record) string { return r.Month })
}

// WeekdayFrequency counts messages per weekday, Monday first.
func WeekdayFrequency(t *table.Table) Frequency {
	return frequency(t, "weekday", table.Weekdays, func(r table.Record) string { return r.Weekday })
}

// HourFrequency counts messages per hour of day, 0 through 23.
func HourFrequency(t *table.Table) Frequency {
	labels := make([]string, 24)
	for h := range labels {
		labels[h] = strconv.Itoa(h)
	}
	return frequency(t, "hour_of_day", labels, func(r table.Record) string {
		return strconv.Itoa(r.HourOfDay)
	})
}

func frequency(t *table.Table, column string, labels []string, key func(table.Record) string) Frequency {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	f := Frequency{
		Column:    column,
		Labels:    labels,
		Counts:    make([]int, len(labels)),
		PerAuthor: make(map[string][]int),
	}
	for _, r := range t.Records {
		i, ok := index[key(r)]
		if !ok {
			continue
		}
		f.Counts[i]++
		series, ok := f.PerAuthor[r.Author]
		if !ok {
			series = make([]int, len(labels))
			f.PerAuthor[r.Author] = series
		}
		series[i]++
	}

	top, best := 0, -1
	for i, c := range f.Counts {
		if c > best {
			top, best = i, c
		}
	}
	if best > 0 {
		f.Top = labels[top]
	}
	return f
}

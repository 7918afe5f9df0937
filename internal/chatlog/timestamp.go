package chatlog

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var errMissingGroup = errors.New("header match missing expected group")

// groupIndex caches the capture-group positions of a compiled boundary
// pattern so record construction never does dynamic name lookups.
type groupIndex struct {
	year, month, day, hour, minutes, seconds, ampm, author int
}

func newGroupIndex(re *regexp.Regexp) groupIndex {
	return groupIndex{
		year:    re.SubexpIndex("year"),
		month:   re.SubexpIndex("month"),
		day:     re.SubexpIndex("day"),
		hour:    re.SubexpIndex("hour"),
		minutes: re.SubexpIndex("minutes"),
		seconds: re.SubexpIndex("seconds"),
		ampm:    re.SubexpIndex("ampm"),
		author:  re.SubexpIndex("author"),
	}
}

// group returns the submatch text for capture group idx, and whether the
// group exists and participated in the match.
func group(text string, m []int, idx int) (string, bool) {
	if idx < 0 || 2*idx+1 >= len(m) || m[2*idx] < 0 {
		return "", false
	}
	return text[m[2*idx]:m[2*idx+1]], true
}

// extract builds the timestamp and author from one boundary match.
// Returns errMissingGroup for recoverable per-record anomalies and
// *dateRangeError when a numeric component is outside its calendar range.
func (g groupIndex) extract(text string, m []int) (time.Time, string, error) {
	yearStr, ok := group(text, m, g.year)
	if !ok {
		return time.Time{}, "", errMissingGroup
	}
	monthStr, ok := group(text, m, g.month)
	if !ok {
		return time.Time{}, "", errMissingGroup
	}
	dayStr, ok := group(text, m, g.day)
	if !ok {
		return time.Time{}, "", errMissingGroup
	}
	hourStr, ok := group(text, m, g.hour)
	if !ok {
		return time.Time{}, "", errMissingGroup
	}
	minStr, ok := group(text, m, g.minutes)
	if !ok {
		return time.Time{}, "", errMissingGroup
	}
	author, ok := group(text, m, g.author)
	if !ok {
		return time.Time{}, "", errMissingGroup
	}

	year, _ := strconv.Atoi(yearStr)
	if len(yearStr) == 2 {
		year += 2000
	}
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	hour, _ := strconv.Atoi(hourStr)
	minutes, _ := strconv.Atoi(minStr)

	seconds := 0
	if s, ok := group(text, m, g.seconds); ok {
		seconds, _ = strconv.Atoi(s)
	}

	if ap, ok := group(text, m, g.ampm); ok && ap != "" {
		hour = to24Hour(hour, ap)
	}

	ts, err := buildTimestamp(year, month, day, hour, minutes, seconds)
	if err != nil {
		return time.Time{}, "", err
	}
	return ts, strings.TrimSpace(author), nil
}

// to24Hour adjusts a 1-12 hour value using the am/pm marker:
// 12am maps to 0, 12pm stays 12, other pm hours gain 12.
func to24Hour(hour int, marker string) int {
	pm := strings.HasPrefix(strings.ToLower(strings.TrimSpace(marker)), "p")
	switch {
	case hour == 12 && !pm:
		return 0
	case hour != 12 && pm:
		return hour + 12
	default:
		return hour
	}
}

// buildTimestamp validates the numeric components against the Gregorian
// calendar. time.Date silently normalizes overflow (Feb 30 becomes Mar 2), so
// the round-trip check below is what actually catches reversed day/month.
func buildTimestamp(year, month, day, hour, minutes, seconds int) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, &dateRangeError{field: "month", value: month}
	}
	if day < 1 || day > 31 {
		return time.Time{}, &dateRangeError{field: "day", value: day}
	}
	if hour > 23 {
		return time.Time{}, &dateRangeError{field: "hour", value: hour}
	}
	ts := time.Date(year, time.Month(month), day, hour, minutes, seconds, 0, time.UTC)
	if ts.Day() != day || ts.Month() != time.Month(month) {
		return time.Time{}, &dateRangeError{field: "day", value: day}
	}
	return ts, nil
}

package chatlog

import (
	"fmt"
	"regexp"
	"strings"
)

// BoundaryPatterns holds the two compiled patterns derived from one header
// template: the full message boundary (including the author capture) and the
// stripped boundary prefix used to spot embedded system notifications.
type BoundaryPatterns struct {
	Header *regexp.Regexp
	Prefix *regexp.Regexp
}

// Token-to-subpattern mapping is fixed: 2-4 digit years, 1-2 digit
// month/day/hour, exactly 2-digit minute/second, an optional case-insensitive
// am/pm marker, and a single-line non-colon author capture.
var tokenPatterns = map[string]string{
	"%Y":    `(?P<year>\d{2,4})`,
	"%y":    `(?P<year>\d{2,4})`,
	"%m":    `(?P<month>\d{1,2})`,
	"%d":    `(?P<day>\d{1,2})`,
	"%H":    `(?P<hour>\d{1,2})`,
	"%I":    `(?P<hour>\d{1,2})`,
	"%M":    `(?P<minutes>\d{2})`,
	"%S":    `(?P<seconds>\d{2})`,
	"%p":    `(?P<ampm>[AaPp]\.? ?[Mm]\.?)?`,
	"%name": `(?P<author>[^:\n]*)`,
}

var tokenRe = regexp.MustCompile(`%(?:name|[YymdHIMSp])`)

// CompileTemplate translates a header template into boundary patterns.
// Literal separators are quoted, so templates may freely contain regex
// metacharacters such as the opening bracket. A well-formed template cannot
// fail to compile; the error return guards against malformed token syntax.
func CompileTemplate(t HeaderTemplate) (BoundaryPatterns, error) {
	var full, prefix strings.Builder
	sawAuthor := false

	emit := func(s string) {
		full.WriteString(s)
		if !sawAuthor {
			prefix.WriteString(s)
		}
	}

	rest := t.Format
	for len(rest) > 0 {
		loc := tokenRe.FindStringIndex(rest)
		if loc == nil {
			emit(regexp.QuoteMeta(rest))
			break
		}
		if loc[0] > 0 {
			emit(regexp.QuoteMeta(rest[:loc[0]]))
		}
		tok := rest[loc[0]:loc[1]]
		if tok == "%name" {
			sawAuthor = true
			full.WriteString(tokenPatterns[tok])
		} else {
			emit(tokenPatterns[tok])
		}
		rest = rest[loc[1]:]
	}

	// The trailing space keeps the boundary from matching mid-body colons and
	// marks where the message body starts.
	full.WriteString(" ")

	header, err := regexp.Compile(full.String())
	if err != nil {
		return BoundaryPatterns{}, fmt.Errorf("compile boundary pattern: %w", err)
	}
	pre, err := regexp.Compile(prefix.String())
	if err != nil {
		return BoundaryPatterns{}, fmt.Errorf("compile boundary prefix: %w", err)
	}
	return BoundaryPatterns{Header: header, Prefix: pre}, nil
}

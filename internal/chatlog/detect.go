package chatlog

import (
	"bufio"
	"encoding/csv"
	"regexp"
	"strings"
)

// DefaultScanWindow bounds how many leading lines the format detector will
// inspect before giving up. Malformed files must fail fast, not scan to EOF.
const DefaultScanWindow = 128

var (
	dateRe = regexp.MustCompile(`\d+/\d+/\d+`)

	// Timestamp tail cues, anchored right after the numeric date.
	bracketedHeadRe = regexp.MustCompile(`^(,)? ?(\d{1,2}):(\d{2})(:\d{2})?( ?[AaPp]\.? ?[Mm]\.?)?\]`)
	dashedHeadRe    = regexp.MustCompile(`^, ?(\d{1,2}):(\d{2})(:\d{2})?( ?[AaPp]\.? ?[Mm]\.?)? ?- `)
)

// Detection is the format detector's verdict for one raw export.
type Detection struct {
	Dialect  Dialect
	Template HeaderTemplate // zero for DialectPreNormalized
}

// DetectFormat classifies raw decoded text into one of the known export
// dialects and derives the header template describing its date/time/author
// encoding. A scanWindow <= 0 selects DefaultScanWindow.
//
// Returns ErrUnrecognizedFormat when no date-bearing line is found within the
// window and the content is not a delimited table with a year column.
func DetectFormat(text string, scanWindow int) (Detection, error) {
	if scanWindow <= 0 {
		scanWindow = DefaultScanWindow
	}

	var dateLine string
	found := false
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 0; i < scanWindow && sc.Scan(); i++ {
		if dateRe.MatchString(sc.Text()) {
			dateLine = sc.Text()
			found = true
			break
		}
	}

	if !found {
		if isDelimitedTable(text) {
			return Detection{Dialect: DialectPreNormalized}, nil
		}
		return Detection{}, ErrUnrecognizedFormat
	}

	loc := dateRe.FindStringIndex(dateLine)
	before, rest := dateLine[:loc[0]], dateLine[loc[1]:]

	if m := bracketedHeadRe.FindStringSubmatch(rest); m != nil {
		return Detection{
			Dialect:  DialectBracketed,
			Template: buildTemplate(DialectBracketed, strings.HasSuffix(before, "["), m[1] != "", m[4] != "", m[5] != ""),
		}, nil
	}
	if m := dashedHeadRe.FindStringSubmatch(rest); m != nil {
		return Detection{
			Dialect:  DialectDashed,
			Template: buildTemplate(DialectDashed, false, true, m[3] != "", m[4] != ""),
		}, nil
	}

	return Detection{}, ErrUnrecognizedFormat
}

// buildTemplate assembles the header template from the cues observed on the
// first date-bearing line. Date order defaults to day-first; the parser's
// disambiguation retry corrects the cases where that guess was wrong.
func buildTemplate(d Dialect, openBracket, comma, seconds, ampm bool) HeaderTemplate {
	var b strings.Builder
	if openBracket {
		b.WriteString("[")
	}
	b.WriteString("%d/%m/%y")
	if comma {
		b.WriteString(",")
	}
	b.WriteString(" ")
	if ampm {
		b.WriteString("%I:%M")
	} else {
		b.WriteString("%H:%M")
	}
	if seconds {
		b.WriteString(":%S")
	}
	if ampm {
		b.WriteString(" %p")
	}
	if d == DialectBracketed {
		b.WriteString("] %name:")
	} else {
		b.WriteString(" - %name:")
	}
	return HeaderTemplate{Format: b.String()}
}

// isDelimitedTable reports whether the content looks like a pre-normalized
// tabular export: a parseable delimited header row carrying a year column.
func isDelimitedTable(text string) bool {
	r := csv.NewReader(strings.NewReader(text))
	header, err := r.Read()
	if err != nil || len(header) < 2 {
		return false
	}
	for _, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), "year") {
			return true
		}
	}
	return false
}

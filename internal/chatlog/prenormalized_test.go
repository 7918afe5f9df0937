package chatlog

import (
	"errors"
	"testing"
	"time"
)

func TestParse_PreNormalizedTable(t *testing.T) {
	text := "datetime,author,body,year\n" +
		"2021-03-12 14:05:10,Alice,Hello there,2021\n" +
		"2021-03-12T14:06:00Z,Bob,Hi,2021\n" +
		"2021-03-13,Alice,next day,2021\n"

	res := mustParse(t, text, Options{})
	if res.Dialect != DialectPreNormalized {
		t.Errorf("dialect = %v, want prenormalized", res.Dialect)
	}
	if len(res.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(res.Records))
	}

	want := time.Date(2021, time.March, 12, 14, 5, 10, 0, time.UTC)
	if !res.Records[0].Timestamp.Equal(want) {
		t.Errorf("timestamp[0] = %v, want %v", res.Records[0].Timestamp, want)
	}
	if res.Records[1].Author != "Bob" || res.Records[1].Body != "Hi" {
		t.Errorf("record[1] = %q %q", res.Records[1].Author, res.Records[1].Body)
	}
	if got := res.Records[2].Timestamp; got.Hour() != 0 || got.Day() != 13 {
		t.Errorf("date-only timestamp = %v", got)
	}
}

func TestParsePreNormalized_SkipsBadRows(t *testing.T) {
	text := "year,date,username,message\n" +
		"2021,2021-03-12 14:05,Alice,hi\n" +
		"2021,not-a-date,Bob,dropped\n" +
		"2021,2021-03-12 14:07,Carol,bye\n"

	recs, err := parsePreNormalized(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Author != "Alice" || recs[1].Author != "Carol" {
		t.Errorf("authors = %q %q", recs[0].Author, recs[1].Author)
	}
}

func TestParsePreNormalized_MissingColumns(t *testing.T) {
	_, err := parsePreNormalized("year,foo,bar\n2021,a,b\n")
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("err = %v, want ErrUnrecognizedFormat", err)
	}
}

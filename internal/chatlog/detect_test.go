package chatlog

import (
	"errors"
	"strings"
	"testing"
)

func TestDetectFormat_BracketedDialect(t *testing.T) {
	text := "[12/03/21, 14:05:10] Alice: Hello there\n[12/03/21, 14:06:00] Bob: Hi Alice\n"

	det, err := DetectFormat(text, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Dialect != DialectBracketed {
		t.Errorf("dialect = %v, want bracketed", det.Dialect)
	}
	if det.Template.Format != "[%d/%m/%y, %H:%M:%S] %name:" {
		t.Errorf("template = %q", det.Template.Format)
	}
}

func TestDetectFormat_BracketedWithoutComma(t *testing.T) {
	text := "12/03/21 14:05:10] Alice: Hello\n"

	det, err := DetectFormat(text, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Dialect != DialectBracketed {
		t.Errorf("dialect = %v, want bracketed", det.Dialect)
	}
	if det.Template.Format != "%d/%m/%y %H:%M:%S] %name:" {
		t.Errorf("template = %q", det.Template.Format)
	}
}

func TestDetectFormat_DashedDialect(t *testing.T) {
	text := "12/03/21, 14:05 - Alice: Hello there\n"

	det, err := DetectFormat(text, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Dialect != DialectDashed {
		t.Errorf("dialect = %v, want dashed", det.Dialect)
	}
	if det.Template.Format != "%d/%m/%y, %H:%M - %name:" {
		t.Errorf("template = %q", det.Template.Format)
	}
}

func TestDetectFormat_DashedWithAmPm(t *testing.T) {
	text := "12/03/21, 2:05 PM - Alice: afternoon\n"

	det, err := DetectFormat(text, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Dialect != DialectDashed {
		t.Errorf("dialect = %v, want dashed", det.Dialect)
	}
	if det.Template.Format != "%d/%m/%y, %I:%M %p - %name:" {
		t.Errorf("template = %q", det.Template.Format)
	}
}

func TestDetectFormat_SkipsPreambleLines(t *testing.T) {
	text := "exported chat\n\nsome preamble\n12/03/21, 14:05 - Alice: hi\n"

	det, err := DetectFormat(text, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Dialect != DialectDashed {
		t.Errorf("dialect = %v, want dashed", det.Dialect)
	}
}

func TestDetectFormat_PreNormalizedTable(t *testing.T) {
	text := "datetime,author,body,year\n2021-03-12 14:05:10,Alice,Hello,2021\n"

	det, err := DetectFormat(text, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Dialect != DialectPreNormalized {
		t.Errorf("dialect = %v, want prenormalized", det.Dialect)
	}
}

func TestDetectFormat_Unrecognized(t *testing.T) {
	_, err := DetectFormat("just some prose\nwith no dates at all\n", 0)
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("err = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestDetectFormat_BoundedScanWindow(t *testing.T) {
	// The date line sits beyond the window, so detection must fail fast
	// instead of scanning to it.
	text := strings.Repeat("filler line\n", 50) + "12/03/21, 14:05 - Alice: hi\n"

	_, err := DetectFormat(text, 10)
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("err = %v, want ErrUnrecognizedFormat", err)
	}

	if _, err := DetectFormat(text, 100); err != nil {
		t.Fatalf("wide window should find the date line: %v", err)
	}
}

// Package identity separates human display names from raw phone-number
// identifiers in the author column and applies caller-confirmed renames.
package identity

import (
	"regexp"
	"strings"

	"github.com/natworks/chatdash/internal/table"
)

// phoneRe matches a `+` followed by digits, allowing the spaces, dots,
// dashes and parentheses that exporters embed in phone numbers. The match
// must end on a digit so trailing punctuation stays out.
var phoneRe = regexp.MustCompile(`\+[0-9](?:[0-9 ().-]*[0-9])?`)

// Phone is one raw-phone-number author. Canonical is the `+digits` identifier
// with every non-digit stripped; it is the key of the rename mapping. Author
// keeps the identifier exactly as found in the chat.
type Phone struct {
	Canonical string `json:"canonical"`
	Author    string `json:"author"`
}

// Partition splits the unique authors of a table into display names and
// phone-number identifiers.
type Partition struct {
	Names  []string `json:"names"`
	Phones []Phone  `json:"phone_numbers"`
}

// Canonical extracts the canonical phone identifier from an author string.
// Returns false when the author does not contain a phone number.
func Canonical(author string) (string, bool) {
	m := phoneRe.FindString(author)
	if m == "" {
		return "", false
	}
	var b strings.Builder
	b.WriteByte('+')
	for _, r := range m[1:] {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String(), true
}

// Split partitions author identifiers. Input order is preserved within each
// side of the partition.
func Split(authors []string) Partition {
	var p Partition
	for _, a := range authors {
		if canonical, ok := Canonical(a); ok {
			p.Phones = append(p.Phones, Phone{Canonical: canonical, Author: a})
		} else {
			p.Names = append(p.Names, a)
		}
	}
	return p
}

// Rename rewrites, in place, the author of every record whose canonical phone
// identifier appears in the mapping. The pass is a pure substitution over the
// author column: applied once per session, not reversible, and it touches
// nothing else in the table.
func Rename(t *table.Table, mapping map[string]string) {
	if len(mapping) == 0 {
		return
	}
	for i := range t.Records {
		canonical, ok := Canonical(t.Records[i].Author)
		if !ok {
			continue
		}
		if name, ok := mapping[canonical]; ok && name != "" {
			t.Records[i].Author = name
		}
	}
}

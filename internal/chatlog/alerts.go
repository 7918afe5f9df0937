package chatlog

import (
	"regexp"
	"strings"
)

// removeAlerts strips trailing system-notification fragments from a body.
//
// A notification line carries a timestamp but no author delimiter, so the
// line parser absorbs it as a continuation of the previous message. The
// stripped boundary prefix locates it inside the body; the body is truncated
// exactly at the match start. Locale alert phrases catch notification
// fragments that arrive without their own timestamp: the body is truncated at
// the first phrase found at the start of a line.
func removeAlerts(body string, prefix *regexp.Regexp, phrases []string) string {
	if loc := prefix.FindStringIndex(body); loc != nil {
		body = body[:loc[0]]
	}
	for _, p := range phrases {
		if p == "" {
			continue
		}
		if i := strings.Index(body, p); i >= 0 && (i == 0 || body[i-1] == '\n') {
			body = body[:i]
		}
	}
	return body
}

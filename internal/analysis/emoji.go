package analysis

import (
	"sort"

	"github.com/natworks/chatdash/internal/table"
)

// EmojiCount pairs an emoji with its total occurrence count.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// TopEmojis returns the n most used emoji across all bodies, most frequent
// first; ties break on code point for deterministic output.
func TopEmojis(t *table.Table, n int) []EmojiCount {
	counts := make(map[rune]int)
	for _, r := range t.Records {
		for _, c := range r.Body {
			if isEmoji(c) {
				counts[c]++
			}
		}
	}

	out := make([]EmojiCount, 0, len(counts))
	for r, c := range counts {
		out = append(out, EmojiCount{Emoji: string(r), Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Emoji < out[j].Emoji
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// isEmoji covers the pictographic Unicode blocks that chat emoji live in.
// Modifier code points (skin tones, variation selectors, joiners) are not
// counted on their own.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols & pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport & map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // extended-A
		return true
	case r >= 0x2600 && r <= 0x26FF: // miscellaneous symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	default:
		return false
	}
}

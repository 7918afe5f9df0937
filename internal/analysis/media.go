package analysis

import (
	"sort"
	"strings"

	"github.com/natworks/chatdash/internal/phrases"
	"github.com/natworks/chatdash/internal/table"
)

// MediaStats aggregates media-placeholder messages per author, bucketed the
// way exports label them: gifs, audio/voice notes, and everything else that
// was stripped out of the export ("media omitted" and friends).
type MediaStats struct {
	GIF      []AuthorCount `json:"gif"`
	Audio    []AuthorCount `json:"audio"`
	Other    []AuthorCount `json:"other"`
	TopGIF   string        `json:"top_gif"`
	TopAudio string        `json:"top_audio"`
}

// CountMedia scans every body for the locale's media markers. A body counts
// toward the first bucket whose marker it contains, checked gif, audio, then
// other, so a single message never lands in two buckets.
func CountMedia(t *table.Table, markers phrases.MediaMarkers) MediaStats {
	gif := make(map[string]int)
	audio := make(map[string]int)
	other := make(map[string]int)

	otherMarkers := append(append([]string{}, markers.Omitted...), markers.Sticker...)

	for _, r := range t.Records {
		switch {
		case containsAny(r.Body, markers.GIF):
			gif[r.Author]++
		case containsAny(r.Body, markers.Audio):
			audio[r.Author]++
		case containsAny(r.Body, otherMarkers):
			other[r.Author]++
		}
	}

	stats := MediaStats{
		GIF:   authorCounts(t, gif),
		Audio: authorCounts(t, audio),
		Other: authorCounts(t, other),
	}
	if len(stats.GIF) > 0 {
		stats.TopGIF = stats.GIF[0].Author
	}
	if len(stats.Audio) > 0 {
		stats.TopAudio = stats.Audio[0].Author
	}
	return stats
}

func containsAny(body string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(body, m) {
			return true
		}
	}
	return false
}

func authorCounts(t *table.Table, counts map[string]int) []AuthorCount {
	var out []AuthorCount
	for _, a := range t.Authors() {
		if counts[a] > 0 {
			out = append(out, AuthorCount{Author: a, Count: counts[a]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

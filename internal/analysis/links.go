package analysis

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/natworks/chatdash/internal/table"
)

var urlRe = regexp.MustCompile(`https?://[^\s<>"]+`)

// LinkStats describes link-sharing behavior: who shares the most links and
// which site they share most.
type LinkStats struct {
	TotalLinks      int           `json:"total_links"`
	PerAuthor       []AuthorCount `json:"per_author"`
	TopSharer       string        `json:"top_sharer"`
	FavouriteDomain string        `json:"favourite_domain"`
	DomainShares    int           `json:"domain_shares"`
}

// CountLinks extracts URLs from every body and aggregates them per author.
// FavouriteDomain is the domain the top sharer posted most often.
func CountLinks(t *table.Table) LinkStats {
	perAuthor := make(map[string]int)
	domains := make(map[string]map[string]int) // author -> domain -> count
	total := 0

	for _, r := range t.Records {
		for _, raw := range urlRe.FindAllString(r.Body, -1) {
			total++
			perAuthor[r.Author]++
			if d := domainOf(raw); d != "" {
				if domains[r.Author] == nil {
					domains[r.Author] = make(map[string]int)
				}
				domains[r.Author][d]++
			}
		}
	}

	stats := LinkStats{TotalLinks: total}
	for _, a := range t.Authors() {
		if perAuthor[a] > 0 {
			stats.PerAuthor = append(stats.PerAuthor, AuthorCount{Author: a, Count: perAuthor[a]})
		}
	}
	sort.SliceStable(stats.PerAuthor, func(i, j int) bool {
		return stats.PerAuthor[i].Count > stats.PerAuthor[j].Count
	})
	if len(stats.PerAuthor) == 0 {
		return stats
	}

	stats.TopSharer = stats.PerAuthor[0].Author
	best := ""
	for d, c := range domains[stats.TopSharer] {
		if c > stats.DomainShares || (c == stats.DomainShares && d < best) {
			best, stats.DomainShares = d, c
		}
	}
	stats.FavouriteDomain = best
	return stats
}

func domainOf(raw string) string {
	raw = strings.TrimRight(raw, ".,;:!?)")
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

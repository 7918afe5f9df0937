package analysis

import "github.com/natworks/chatdash/internal/table"

// ResponderMatrix reports, for every sender, what share of their messages was
// first answered by each other member. Percent[i][j] is the percentage of
// Authors[i]'s messages whose next message from a different author came from
// Authors[j]. Rows of members who were never answered are all zero.
type ResponderMatrix struct {
	Authors []string    `json:"authors"`
	Percent [][]float64 `json:"percent"`
}

// FirstResponders scans the table once, back to front. The responder of a
// message is the author of the first later message written by someone else;
// within a run of consecutive messages from one author every message shares
// the run's responder. Trailing unanswered messages contribute nothing.
func FirstResponders(t *table.Table) ResponderMatrix {
	authors := t.Authors()
	index := make(map[string]int, len(authors))
	for i, a := range authors {
		index[a] = i
	}

	counts := make([][]int, len(authors))
	replied := make([]int, len(authors))
	for i := range counts {
		counts[i] = make([]int, len(authors))
	}

	responder := -1 // responder index for record i, filled back to front
	for i := len(t.Records) - 1; i >= 0; i-- {
		sender := index[t.Records[i].Author]
		if i+1 < len(t.Records) {
			if next := index[t.Records[i+1].Author]; next != sender {
				responder = next
			}
			// Same author as the next record: the run's responder carries over.
		} else {
			responder = -1
		}
		if responder >= 0 && responder != sender {
			counts[sender][responder]++
			replied[sender]++
		}
	}

	m := ResponderMatrix{Authors: authors, Percent: make([][]float64, len(authors))}
	for i := range authors {
		m.Percent[i] = make([]float64, len(authors))
		if replied[i] == 0 {
			continue
		}
		for j := range authors {
			m.Percent[i][j] = 100 * float64(counts[i][j]) / float64(replied[i])
		}
	}
	return m
}

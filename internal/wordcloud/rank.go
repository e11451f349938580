package wordcloud

import (
	"github.com/heartmarshall/wordcloud/internal/domain"
	"github.com/heartmarshall/wordcloud/pkg/bst"
	"github.com/heartmarshall/wordcloud/pkg/mergesort"
)

// Total returns the number of word tokens folded into the table.
func (t Table) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Ranked returns every entry ordered by count descending, ties broken by word
// ascending.
func (t Table) Ranked() []domain.WordCount {
	// Stable sort over an alphabetical input keeps ties alphabetical.
	return mergesort.Sort(t.Alphabetical(), func(a, b domain.WordCount) bool {
		return a.Count > b.Count
	})
}

// Alphabetical returns every entry ordered by word (byte order).
func (t Table) Alphabetical() []domain.WordCount {
	words := bst.New(t.keys()...).InOrder()

	counts := make([]domain.WordCount, len(words))
	for i, w := range words {
		counts[i] = domain.WordCount{Word: w, Count: t[w]}
	}
	return counts
}

// Sorted returns the entries in the requested order, truncated to top when
// top > 0.
func (t Table) Sorted(order domain.SortOrder, top int) []domain.WordCount {
	var counts []domain.WordCount
	if order == domain.SortAlpha {
		counts = t.Alphabetical()
	} else {
		counts = t.Ranked()
	}
	if top > 0 && len(counts) > top {
		counts = counts[:top]
	}
	return counts
}

func (t Table) keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	return keys
}

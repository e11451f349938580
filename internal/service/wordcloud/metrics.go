package wordcloud

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// tablesBuiltTotal counts frequency tables built, by operation.
	tablesBuiltTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordcloud_tables_built_total",
			Help: "Total number of frequency tables built",
		},
		[]string{"operation"}, // preview | batch | create
	)

	// wordsProcessedTotal counts word tokens folded into tables.
	wordsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wordcloud_words_processed_total",
			Help: "Total number of word tokens counted",
		},
	)

	// textBytesProcessed tracks the size of texts submitted for counting.
	textBytesProcessed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordcloud_text_bytes",
			Help:    "Size of texts submitted for counting in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
	)
)

func recordTable(operation string, textBytes, words int) {
	tablesBuiltTotal.WithLabelValues(operation).Inc()
	wordsProcessedTotal.Add(float64(words))
	textBytesProcessed.Observe(float64(textBytes))
}

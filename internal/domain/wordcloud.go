package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordCount is one row of a frequency table.
type WordCount struct {
	Word  string `json:"word"  yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// WordCloud is a frequency table built from one text, optionally persisted.
// Words holds at most the requested top-N rows; UniqueWords always counts the
// full table.
type WordCloud struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	SourceSlug  string
	TotalWords  int
	UniqueWords int
	CreatedAt   time.Time
	Words       []WordCount
}

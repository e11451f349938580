package domain

// SortOrder selects how frequency table rows are ordered.
type SortOrder string

const (
	// SortCount orders by count descending, ties by word ascending.
	SortCount SortOrder = "count"
	// SortAlpha orders by word ascending.
	SortAlpha SortOrder = "alpha"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	switch o {
	case SortCount, SortAlpha:
		return true
	}
	return false
}

// OrDefault returns SortCount for the empty value.
func (o SortOrder) OrDefault() SortOrder {
	if o == "" {
		return SortCount
	}
	return o
}

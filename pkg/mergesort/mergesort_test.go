package mergesort

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func intLess(a, b int) bool { return a < b }

func TestSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"nil", nil, []int{}},
		{"single", []int{7}, []int{7}},
		{"two reversed", []int{2, 1}, []int{1, 2}},
		{"odd length", []int{5, 3, 9, 1, 4}, []int{1, 3, 4, 5, 9}},
		{"duplicates", []int{3, 1, 3, 2, 1}, []int{1, 1, 2, 3, 3}},
		{"already sorted", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Sort(tt.input, intLess))
		})
	}
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := []int{3, 2, 1}
	_ = Sort(in, intLess)
	assert.Equal(t, []int{3, 2, 1}, in)
}

func TestSort_Stable(t *testing.T) {
	t.Parallel()

	type pair struct {
		key   int
		label string
	}
	in := []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {2, "e"}}
	got := Sort(in, func(x, y pair) bool { return x.key < y.key })

	want := []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "e"}}
	assert.Equal(t, want, got)
}

func TestProperty_MatchesSlicesSort(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(rt, "in")

		want := slices.Clone(in)
		slices.Sort(want)
		if want == nil {
			want = []int{}
		}

		assert.Equal(rt, want, Sort(in, intLess))
	})
}

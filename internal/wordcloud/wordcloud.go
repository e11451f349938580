// Package wordcloud turns raw text into a word-frequency table.
// Pure functions: string in, table out. No I/O, no shared state between calls.
package wordcloud

import "strings"

const emDash = '—'

// Table maps a word to the number of times any of its case variants was seen.
type Table map[string]int

// BuildFrequencyTable scans text once, left to right, and folds every word
// token into a fresh Table. Empty input yields an empty table.
func BuildFrequencyTable(text string) Table {
	table := make(Table)
	scan(text, table.add)
	return table
}

// Tokenize returns the word tokens of text in the order the scanner emits them,
// exactly as cut from the input (no case folding).
func Tokenize(text string) []string {
	var tokens []string
	scan(text, func(word string) {
		tokens = append(tokens, word)
	})
	return tokens
}

// scan splits text into word tokens and calls emit for each one.
//
// The cursor is a start position and a length in runes. A letter or an
// apostrophe opens a word (sets start) when none is open and adds one to the
// length. A hyphen adds one only when both neighbours are letters. Spaces,
// em-dashes, two periods in a row and unflanked hyphens emit the rune slice
// [start, start+length) and close the word. Anything else, a single period
// included, is skipped: it neither closes the word nor counts toward its
// length, yet stays inside the slice when more word runes follow it. So
// "a,b c" yields "a," and "c", and "end.Next" yields "end.Nex".
func scan(text string, emit func(string)) {
	runes := []rune(text)
	last := len(runes) - 1

	start, length := 0, 0
	flush := func() {
		if length > 0 {
			emit(string(runes[start : start+length]))
			length = 0
		}
	}
	extend := func(i int) {
		if length == 0 {
			start = i
		}
		length++
	}

	for i, r := range runes {
		switch {
		case i == last:
			// Only a letter survives as the final character; an apostrophe does not.
			// A final letter after a boundary opens its own one-rune word.
			if isLetter(r) {
				extend(i)
			}
			flush()

		case r == ' ' || r == emDash:
			flush()

		case r == '.':
			if runes[i+1] == '.' {
				flush()
			}

		case isLetter(r) || r == '\'':
			extend(i)

		case r == '-':
			// The left neighbour is a letter, so a word is already open.
			if i > 0 && isLetter(runes[i-1]) && isLetter(runes[i+1]) {
				length++
			} else {
				flush()
			}
		}
	}
}

// add folds one token into the table. Rule order matters:
// exact key, then lowercase key, then capitalized key (demoted to lowercase),
// then a new key written as observed.
func (t Table) add(word string) {
	if _, ok := t[word]; ok {
		t[word]++
		return
	}

	lower := strings.ToLower(word)
	if _, ok := t[lower]; ok {
		t[lower]++
		return
	}

	capitalized := capitalize(word)
	if n, ok := t[capitalized]; ok {
		delete(t, capitalized)
		t[lower] = n + 1
		return
	}

	t[word] = 1
}

// capitalize upper-cases the first character and leaves the rest untouched.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// isLetter reports whether r is one of the 52 ASCII Latin letters.
func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

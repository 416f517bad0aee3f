// Package pattern matches file names against sets of literal substrings.
//
// A Matcher holds every include and exclude pattern of a search in a single
// Aho-Corasick automaton, so testing a name costs one pass over its bytes no
// matter how many patterns were given.
package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is returned when a pattern set is empty or contains an empty pattern.
var ErrInvalidPattern = errors.New("invalid pattern")

// Matcher tests names against include and exclude patterns.
// It is immutable after construction and safe for concurrent use.
type Matcher struct {
	ac *automaton
}

// Span is one piece of a highlighted name.
type Span struct {
	Text  string
	Match bool
}

// New builds a Matcher. include must hold at least one pattern and no pattern
// in either set may be empty. When caseSensitive is false, ASCII letters are
// folded on both the patterns and every tested name.
func New(include, exclude []string, caseSensitive bool) (*Matcher, error) {
	if len(include) == 0 {
		return nil, fmt.Errorf("%w: no include pattern given", ErrInvalidPattern)
	}
	if err := checkPatterns("include", include); err != nil {
		return nil, err
	}
	if err := checkPatterns("exclude", exclude); err != nil {
		return nil, err
	}

	return &Matcher{ac: newAutomaton(include, exclude, !caseSensitive)}, nil
}

func checkPatterns(set string, patterns []string) error {
	for i, p := range patterns {
		if p == "" {
			return fmt.Errorf("%w: %s pattern %d is empty", ErrInvalidPattern, set, i+1)
		}
	}
	return nil
}

// Matches reports whether name contains at least one include pattern and no
// exclude pattern. The scan stops at the first exclude hit.
func (m *Matcher) Matches(name string) bool {
	var state int32
	included := false
	for i := 0; i < len(name); i++ {
		state = m.ac.step(state, name[i])
		n := &m.ac.nodes[state]
		if n.exclude {
			return false
		}
		if n.include > 0 {
			included = true
		}
	}
	return included
}

// Highlight splits name around the leftmost include occurrence, preferring
// the longest pattern when several start at the same offset. A name without
// any occurrence comes back as a single unmatched span.
func (m *Matcher) Highlight(name string) []Span {
	start, length := m.leftmost(name)
	if length == 0 {
		return []Span{{Text: name}}
	}

	spans := make([]Span, 0, 3)
	if start > 0 {
		spans = append(spans, Span{Text: name[:start]})
	}
	spans = append(spans, Span{Text: name[start : start+length], Match: true})
	if start+length < len(name) {
		spans = append(spans, Span{Text: name[start+length:]})
	}
	return spans
}

// leftmost returns the offset and length of the leftmost include occurrence,
// or a zero length when there is none.
func (m *Matcher) leftmost(name string) (int, int) {
	bestStart, bestLen := -1, 0
	var state int32
	for i := 0; i < len(name); i++ {
		state = m.ac.step(state, name[i])
		l := m.ac.nodes[state].include
		if l == 0 {
			continue
		}
		// The longest pattern ending here starts the furthest left.
		start := i + 1 - l
		if bestStart < 0 || start < bestStart || (start == bestStart && l > bestLen) {
			bestStart, bestLen = start, l
		}
	}
	if bestStart < 0 {
		return 0, 0
	}
	return bestStart, bestLen
}

package search

import (
	"time"

	"github.com/harrison/sf/internal/models"
)

// Stats accumulates the counters of one traversal. It belongs to a single
// invocation and is not safe for concurrent use.
type Stats struct {
	visited int64
	matches int64
	start   time.Time
	now     func() time.Time
	err     error
	final   *models.Summary
}

// NewStats starts an accumulator at the current time.
func NewStats() *Stats {
	return newStats(time.Now)
}

func newStats(now func() time.Time) *Stats {
	return &Stats{
		start: now(),
		now:   now,
	}
}

// Visited returns the number of entries seen so far.
func (s *Stats) Visited() int64 {
	return s.visited
}

// Matches returns the number of matches found so far.
func (s *Stats) Matches() int64 {
	return s.matches
}

// Err returns the error that ended the traversal early, if any.
func (s *Stats) Err() error {
	return s.err
}

// Finalize freezes the counters into a Summary. Later calls return the same
// Summary.
func (s *Stats) Finalize() models.Summary {
	if s.final == nil {
		s.final = &models.Summary{
			Visited: s.visited,
			Matches: s.matches,
			Elapsed: s.now().Sub(s.start),
		}
	}
	return *s.final
}

func (s *Stats) visit() int64 {
	s.visited++
	return s.visited
}

func (s *Stats) match() {
	s.matches++
}

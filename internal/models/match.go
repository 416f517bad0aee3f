package models

import (
	"path/filepath"
	"time"
)

// Match is a single reported entry
type Match struct {
	Parent string // Directory containing the entry
	Name   string // File or directory name
}

// Path returns the full path of the matched entry.
func (m Match) Path() string {
	return filepath.Join(m.Parent, m.Name)
}

// Summary is the finalized result of one traversal
type Summary struct {
	Visited int64         // Entries visited, including pruned and filtered ones
	Matches int64         // Entries that passed every filter and matched
	Elapsed time.Duration // Wall-clock time of the traversal
}

package search

import "errors"

var (
	// ErrRootUnresolvable means the search root is missing, unreadable or not a directory.
	ErrRootUnresolvable = errors.New("search root unresolvable")
	// ErrSubtreeUnreadable wraps the failure of a single directory below the root.
	ErrSubtreeUnreadable = errors.New("subtree unreadable")
	// ErrNotDirectory is the cause attached to a root that is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

package models

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxDepth is the descent limit used when none is configured.
const DefaultMaxDepth = 250

// ErrInvalidRequest is returned by SearchRequest.Validate.
var ErrInvalidRequest = errors.New("invalid search request")

// KindFilter restricts which entry kinds are reported.
type KindFilter int

const (
	// KindAny reports files and directories.
	KindAny KindFilter = iota
	// KindFilesOnly reports files only. Directories are still descended into.
	KindFilesOnly
	// KindDirsOnly reports directories only.
	KindDirsOnly
)

// String returns the string representation of KindFilter.
func (k KindFilter) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindFilesOnly:
		return "files"
	case KindDirsOnly:
		return "dirs"
	default:
		return "unknown"
	}
}

// OutputMode selects how matches are reported.
type OutputMode int

const (
	// ModeVerbose streams every match as it is found.
	ModeVerbose OutputMode = iota
	// ModeCountOnly prints only the final tally.
	ModeCountOnly
	// ModeSilentStats prints no matches, only the tally with full statistics.
	ModeSilentStats
)

// String returns the string representation of OutputMode.
func (m OutputMode) String() string {
	switch m {
	case ModeVerbose:
		return "verbose"
	case ModeCountOnly:
		return "count"
	case ModeSilentStats:
		return "stats"
	default:
		return "unknown"
	}
}

// StreamsMatches reports whether matches are emitted one by one.
func (m OutputMode) StreamsMatches() bool {
	return m == ModeVerbose
}

// SearchRequest is the immutable description of one search invocation.
type SearchRequest struct {
	Root                string     // Root path, "." means the working directory
	Include             []string   // Include patterns, at least one
	Exclude             []string   // Exclude patterns, may be empty
	CaseSensitive       bool       // Compare names byte for byte
	Kind                KindFilter // Which entry kinds are reported
	Extensions          []string   // Extension allow-list without leading dot, empty = no filter
	ShowHidden          bool       // Report and descend into hidden entries
	HiddenPrunesSubtree bool       // A suppressed hidden directory prunes its whole subtree
	MaxDepth            int        // Deepest directory level that is descended into
	Mode                OutputMode // How matches are reported
	Stats               bool       // Print summary statistics in verbose mode
}

// NewSearchRequest returns a request for pattern under root with default settings.
func NewSearchRequest(pattern, root string) SearchRequest {
	return SearchRequest{
		Root:                root,
		Include:             []string{pattern},
		HiddenPrunesSubtree: true,
		MaxDepth:            DefaultMaxDepth,
		Mode:                ModeVerbose,
	}
}

// Validate checks the request for values no search can run with.
// Empty patterns are rejected by the pattern package.
func (r SearchRequest) Validate() error {
	if strings.TrimSpace(r.Root) == "" {
		return fmt.Errorf("%w: root path is required", ErrInvalidRequest)
	}
	if len(r.Include) == 0 {
		return fmt.Errorf("%w: at least one pattern is required", ErrInvalidRequest)
	}
	if r.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must be >= 0, got %d", ErrInvalidRequest, r.MaxDepth)
	}
	switch r.Kind {
	case KindAny, KindFilesOnly, KindDirsOnly:
	default:
		return fmt.Errorf("%w: unknown kind filter %d", ErrInvalidRequest, r.Kind)
	}
	switch r.Mode {
	case ModeVerbose, ModeCountOnly, ModeSilentStats:
	default:
		return fmt.Errorf("%w: unknown output mode %d", ErrInvalidRequest, r.Mode)
	}
	for _, ext := range r.Extensions {
		if ext == "" {
			return fmt.Errorf("%w: empty extension in allow-list", ErrInvalidRequest)
		}
	}
	return nil
}

// WantsSummary reports whether a summary is printed after the walk.
func (r SearchRequest) WantsSummary() bool {
	return r.Stats || r.Mode != ModeVerbose
}

// FullSummary reports whether the summary includes visited entries and elapsed time.
func (r SearchRequest) FullSummary() bool {
	return r.Stats || r.Mode == ModeSilentStats
}

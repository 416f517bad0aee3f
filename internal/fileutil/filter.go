package fileutil

import (
	"github.com/harrison/sf/internal/models"
)

// EntryFilter decides per entry whether a walk descends into it and whether
// it is handed to the matcher. It holds no state between calls.
type EntryFilter struct {
	Kind                models.KindFilter
	Extensions          map[string]struct{}
	ShowHidden          bool
	HiddenPrunesSubtree bool
	MaxDepth            int
}

// NewEntryFilter builds the filter for a search request.
func NewEntryFilter(req models.SearchRequest) *EntryFilter {
	var exts map[string]struct{}
	if len(req.Extensions) > 0 {
		exts = make(map[string]struct{}, len(req.Extensions))
		for _, ext := range req.Extensions {
			exts[ext] = struct{}{}
		}
	}

	return &EntryFilter{
		Kind:                req.Kind,
		Extensions:          exts,
		ShowHidden:          req.ShowHidden,
		HiddenPrunesSubtree: req.HiddenPrunesSubtree,
		MaxDepth:            req.MaxDepth,
	}
}

// ShouldDescend reports whether the walk reads the directory e.
// Symlinks are terminal. A directory at depth d is read only while d <= MaxDepth.
func (f *EntryFilter) ShouldDescend(e Entry) bool {
	if e.Kind != KindDir {
		return false
	}
	if f.suppressed(e) && f.HiddenPrunesSubtree {
		return false
	}
	return e.Depth <= f.MaxDepth
}

// ShouldConsider reports whether a visited entry is a match candidate.
func (f *EntryFilter) ShouldConsider(e Entry) bool {
	if e.Kind == KindSymlink {
		return false
	}
	if f.suppressed(e) {
		return false
	}

	switch f.Kind {
	case models.KindFilesOnly:
		if e.Kind == KindDir {
			return false
		}
	case models.KindDirsOnly:
		if e.Kind != KindDir {
			return false
		}
	}

	if len(f.Extensions) == 0 {
		return true
	}
	// An extension allow-list implies files only, unless directories were asked for.
	if e.Kind == KindDir {
		return f.Kind == models.KindDirsOnly
	}
	_, ok := f.Extensions[Extension(e.Name)]
	return ok
}

func (f *EntryFilter) suppressed(e Entry) bool {
	return e.Hidden && !f.ShowHidden
}

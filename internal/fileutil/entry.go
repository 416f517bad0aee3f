package fileutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Kind is the type of a filesystem entry
type Kind int

const (
	// KindFile is any non-directory, non-symlink entry.
	KindFile Kind = iota
	// KindDir is a directory.
	KindDir
	// KindSymlink is a symbolic link. Links are never followed.
	KindSymlink
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// HiddenFunc reports whether the entry at path with the given base name is hidden.
type HiddenFunc func(path, name string) bool

// Entry is one filesystem node visited during a walk
type Entry struct {
	Path   string // Full path of the entry
	Name   string // Base name
	Parent string // Directory holding the entry
	Kind   Kind   // File, directory or symlink
	Hidden bool   // Result of the HiddenFunc
	Depth  int    // Descent steps from the search root, root children are 1
}

// NewEntry builds an Entry for a directory listing item of parent.
// A nil hidden func treats nothing as hidden.
func NewEntry(parent string, d fs.DirEntry, depth int, hidden HiddenFunc) Entry {
	name := d.Name()
	path := filepath.Join(parent, name)

	kind := KindFile
	switch {
	case d.Type()&fs.ModeSymlink != 0:
		kind = KindSymlink
	case d.IsDir():
		kind = KindDir
	}

	return Entry{
		Path:   path,
		Name:   name,
		Parent: parent,
		Kind:   kind,
		Hidden: hidden != nil && hidden(path, name),
		Depth:  depth,
	}
}

// IsDir reports whether the entry is a directory (not a link to one).
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// Extension returns the text after the last dot of name, without the dot.
// A name whose only dot is the leading one has no extension.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

// HasDotPrefix reports whether name follows the Unix hidden-file convention.
func HasDotPrefix(name string) bool {
	return len(name) > 1 && name[0] == '.' && name != ".."
}

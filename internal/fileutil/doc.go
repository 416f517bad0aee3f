// Package fileutil describes filesystem entries met during a search and
// decides, per entry, whether the walk descends into it and whether it is a
// match candidate.
//
// # Pruning versus filtering
//
// EntryFilter answers two separate questions:
//
//   - ShouldDescend: is the directory read at all? A false answer hides the
//     whole subtree from the walk.
//   - ShouldConsider: is an entry that was already visited handed to the
//     pattern matcher?
//
// The two are orthogonal. With KindFilesOnly a directory is never a
// candidate but its children are still visited.
//
// # Hidden entries
//
// Whether an entry is hidden is platform specific: a leading dot on
// Unix-like systems, the hidden attribute (or a leading dot) on Windows. The
// decision goes through a single HiddenFunc so the filter itself stays
// platform neutral; IsHidden is the default for the running platform.
//
// # Symlinks
//
// Symbolic links are never followed and never reported.
package fileutil

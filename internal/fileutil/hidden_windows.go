//go:build windows

package fileutil

import (
	"golang.org/x/sys/windows"
)

// IsHidden reports entries carrying FILE_ATTRIBUTE_HIDDEN, and dot-prefixed
// names created by Unix tooling.
func IsHidden(path string, name string) bool {
	if HasDotPrefix(name) {
		return true
	}
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

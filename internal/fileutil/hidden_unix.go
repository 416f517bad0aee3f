//go:build !windows

package fileutil

// IsHidden treats dot-prefixed names as hidden.
func IsHidden(_ string, name string) bool {
	return HasDotPrefix(name)
}

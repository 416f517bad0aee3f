// Package models defines the value types shared by the sf packages: the
// search request, reported matches, the final summary and per-directory
// warnings.
package models

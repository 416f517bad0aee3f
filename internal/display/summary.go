package display

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harrison/sf/internal/models"
)

// SummaryOptions controls WriteSummary.
type SummaryOptions struct {
	Full     bool // Add visited entries and elapsed time
	Color    bool
	Separate bool // Print a blank line first, to set the summary apart from matches
}

// formatTally returns "found 0 matches", "found 1 match" or "found N matches",
// with count standing in for n.
func formatTally(count string, n int64) string {
	return fmt.Sprintf("found %s %s", count, pluralize(n, "match", "matches"))
}

// WriteSummary prints the result of a search.
func WriteSummary(w io.Writer, s models.Summary, opts SummaryOptions) error {
	count := humanize.Comma(s.Matches)
	if opts.Color {
		countClr := color.New(color.FgGreen, color.Bold)
		if s.Matches == 0 {
			countClr = color.New(color.FgRed, color.Bold)
		}
		countClr.EnableColor()
		count = countClr.Sprint(count)
	}

	if opts.Separate && s.Matches > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, formatTally(count, s.Matches)); err != nil {
		return err
	}
	if !opts.Full {
		return nil
	}

	elapsed := FormatDuration(s.Elapsed)
	if opts.Color {
		elapsedClr := color.New(color.FgCyan)
		elapsedClr.EnableColor()
		elapsed = elapsedClr.Sprint(elapsed)
	}
	_, err := fmt.Fprintf(w, "searched %s %s in %s\n",
		humanize.Comma(s.Visited), pluralize(s.Visited, "entry", "entries"), elapsed)
	return err
}

func pluralize(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatDuration converts a time.Duration to a short human-readable string.
// Examples: "350ms", "4.2s", "1m30s", "2h15m"
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		remainder := d % time.Hour
		if remainder == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		minutes := remainder / time.Minute
		remainder = remainder % time.Minute
		if remainder < time.Second {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder < time.Second {
			return fmt.Sprintf("%dm", minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

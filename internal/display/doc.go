// Package display renders search output on the terminal.
//
// It provides three groups of functionality:
//
// # Result sinks
//
// PrintSink streams one line per match through a bounded buffer, optionally
// highlighting the matched part of the name:
//
//	sink := display.NewPrintSink(os.Stdout, matcher, display.PrintOptions{Color: true})
//	summary, err := engine.Run(ctx, sink)
//
// CountSink discards matches for count-only output; the engine keeps the
// counters either way.
//
// # Summaries
//
// WriteSummary prints the tally ("found 1 match", "found 12 matches") and,
// when asked, the number of visited entries and the elapsed time.
//
// # Status
//
// Spinner animates a status line on its own goroutine until Stop is called.
// NoopStatus stands in when the spinner is disabled. Both satisfy
// StatusReporter.
//
// All writers are plain io.Writer values so output can be captured in tests.
package display

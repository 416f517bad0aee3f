package display

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/sf/internal/models"
	"github.com/harrison/sf/internal/pattern"
	"github.com/sourcegraph/conc"
)

const (
	// DefaultBufferSize bounds the memory held by a PrintSink.
	DefaultBufferSize = 64 * 1024
	// DefaultFlushInterval is how often buffered matches are written out.
	DefaultFlushInterval = 100 * time.Millisecond
)

// Highlighter splits a name into matched and unmatched spans.
type Highlighter interface {
	Highlight(name string) []pattern.Span
}

// Pauser runs fn while its own terminal output is cleared.
type Pauser interface {
	Pause(fn func())
}

// PrintOptions configures a PrintSink.
type PrintOptions struct {
	Color         bool             // Highlight the matched span
	Pauser        Pauser           // Spinner to clear around each flush (optional)
	BufferSize    int              // Defaults to DefaultBufferSize
	FlushInterval time.Duration    // Defaults to DefaultFlushInterval
	Now           func() time.Time // Defaults to time.Now
}

// PrintSink writes one line per match, buffered. A background goroutine
// flushes the buffer once per interval until Flush is called.
type PrintSink struct {
	mu       sync.Mutex
	out      *bufio.Writer
	size     int
	hl       Highlighter
	color    bool
	matchClr *color.Color
	pauser   Pauser
	interval time.Duration
	now      func() time.Time
	last     time.Time
	err      error // First background flush failure

	stop     chan struct{}
	stopOnce sync.Once
	wg       conc.WaitGroup
}

// NewPrintSink creates a PrintSink writing to w. hl may be nil when Color is off.
func NewPrintSink(w io.Writer, hl Highlighter, opts PrintOptions) *PrintSink {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = DefaultFlushInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	matchClr := color.New(color.FgGreen, color.Bold)
	if opts.Color {
		// The caller already decided on color, don't second-guess it from the TTY check.
		matchClr.EnableColor()
	}

	s := &PrintSink{
		out:      bufio.NewWriterSize(w, opts.BufferSize),
		size:     opts.BufferSize,
		hl:       hl,
		color:    opts.Color && hl != nil,
		matchClr: matchClr,
		pauser:   opts.Pauser,
		interval: opts.FlushInterval,
		now:      opts.Now,
		last:     opts.Now(),
		stop:     make(chan struct{}),
	}
	s.wg.Go(s.flushLoop)
	return s
}

func (s *PrintSink) flushLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.out.Buffered() > 0 && s.now().Sub(s.last) >= s.interval {
				if err := s.flushLocked(); err != nil && s.err == nil {
					s.err = err
				}
			}
			s.mu.Unlock()
		}
	}
}

// Emit buffers the line for m and flushes when the buffer is full or the
// flush interval has passed.
func (s *PrintSink) Emit(m models.Match) error {
	line := s.format(m)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	// Flush ourselves instead of letting bufio do it, so the spinner is
	// cleared first.
	if len(line) > s.out.Available() && s.out.Buffered() > 0 {
		if err := s.flushLocked(); err != nil {
			return err
		}
	}

	if len(line) > s.size {
		var err error
		s.paused(func() { _, err = s.out.WriteString(line) })
		return err
	}
	if _, err := s.out.WriteString(line); err != nil {
		return err
	}

	if s.now().Sub(s.last) >= s.interval {
		return s.flushLocked()
	}
	return nil
}

// Flush stops the background flusher and writes everything buffered so far.
// After Flush, buffered lines are written only by Emit's own checks or by the
// next Flush.
func (s *PrintSink) Flush() error {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.flushLocked(); err != nil {
		return err
	}
	return s.err
}

func (s *PrintSink) flushLocked() error {
	var err error
	if s.out.Buffered() > 0 {
		s.paused(func() { err = s.out.Flush() })
	}
	s.last = s.now()
	return err
}

func (s *PrintSink) paused(fn func()) {
	if s.pauser != nil {
		s.pauser.Pause(fn)
		return
	}
	fn()
}

// format renders "parent/name\n", highlighting the matched span of name.
func (s *PrintSink) format(m models.Match) string {
	var b strings.Builder
	b.Grow(len(m.Parent) + len(m.Name) + 16)

	b.WriteString(m.Parent)
	if m.Parent != "" && !strings.HasSuffix(m.Parent, string(filepath.Separator)) {
		b.WriteByte(filepath.Separator)
	}

	if s.color {
		for _, span := range s.hl.Highlight(m.Name) {
			if span.Match {
				b.WriteString(s.matchClr.Sprint(span.Text))
			} else {
				b.WriteString(span.Text)
			}
		}
	} else {
		b.WriteString(m.Name)
	}

	b.WriteByte('\n')
	return b.String()
}

// CountSink ignores matches. The engine's counters carry the result.
type CountSink struct{}

// Emit is a no-op.
func (CountSink) Emit(models.Match) error {
	return nil
}

// Flush is a no-op.
func (CountSink) Flush() error {
	return nil
}

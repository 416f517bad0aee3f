package display

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/sourcegraph/conc"
	"golang.org/x/term"
)

// DefaultSpinnerInterval is the time between two spinner frames.
const DefaultSpinnerInterval = 120 * time.Millisecond

var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r\x1b[K"

// StatusReporter accepts status text while a search runs.
type StatusReporter interface {
	SetStatus(text string)
	Stop()
}

// NoopStatus discards status text.
type NoopStatus struct{}

// SetStatus is a no-op.
func (NoopStatus) SetStatus(string) {}

// Stop is a no-op.
func (NoopStatus) Stop() {}

// Pause runs fn directly.
func (NoopStatus) Pause(fn func()) { fn() }

// SpinnerOptions configures a Spinner.
type SpinnerOptions struct {
	Interval time.Duration // Defaults to DefaultSpinnerInterval
	Frames   []string      // Defaults to a Braille dot animation
	Color    bool
	Width    func() int // Terminal columns, 0 = unknown; defaults to the width of w
}

// Spinner draws an animated status line on a terminal. A background
// goroutine redraws it every interval until Stop. All methods are safe for
// concurrent use.
type Spinner struct {
	w        io.Writer
	frames   []string
	interval time.Duration
	width    func() int
	frameClr *color.Color

	mu     sync.Mutex
	status string
	frame  int
	drawn  bool

	stopOnce sync.Once
	stop     chan struct{}
	wg       conc.WaitGroup
}

// NewSpinner starts a spinner showing text on w.
func NewSpinner(w io.Writer, text string, opts SpinnerOptions) *Spinner {
	if opts.Interval <= 0 {
		opts.Interval = DefaultSpinnerInterval
	}
	if len(opts.Frames) == 0 {
		opts.Frames = defaultFrames
	}
	if opts.Width == nil {
		opts.Width = terminalWidth(w)
	}

	frameClr := color.New(color.FgMagenta, color.Bold)
	if opts.Color {
		frameClr.EnableColor()
	} else {
		frameClr.DisableColor()
	}

	s := &Spinner{
		w:        w,
		frames:   opts.Frames,
		interval: opts.Interval,
		width:    opts.Width,
		frameClr: frameClr,
		status:   text,
		stop:     make(chan struct{}),
	}
	s.wg.Go(s.loop)
	return s
}

func (s *Spinner) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.draw()
		}
	}
}

func (s *Spinner) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := s.frames[s.frame%len(s.frames)]
	s.frame++

	text := s.status
	if cols := s.width(); cols > 0 {
		// frame, space, and one spare column so the terminal never wraps
		text = truncate(text, cols-3)
	}
	fmt.Fprintf(s.w, "%s%s %s", clearLine, s.frameClr.Sprint(frame), text)
	s.drawn = true
}

// SetStatus replaces the status text shown from the next frame on.
func (s *Spinner) SetStatus(text string) {
	s.mu.Lock()
	s.status = text
	s.mu.Unlock()
}

// Pause clears the spinner line and runs fn before the next frame is drawn.
func (s *Spinner) Pause(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	fn()
}

// Stop ends the animation, waits for the goroutine and clears the line.
// It is safe to call more than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()

		s.mu.Lock()
		s.clear()
		s.mu.Unlock()
	})
}

func (s *Spinner) clear() {
	if s.drawn {
		fmt.Fprint(s.w, clearLine)
		s.drawn = false
	}
}

func truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// terminalWidth returns a width probe for w, reporting 0 when w is not a terminal.
func terminalWidth(w io.Writer) func() int {
	f, ok := w.(*os.File)
	if !ok {
		return func() int { return 0 }
	}
	return func() int {
		cols, _, err := term.GetSize(int(f.Fd()))
		if err != nil {
			return 0
		}
		return cols
	}
}

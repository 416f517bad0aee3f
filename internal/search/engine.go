// Package search walks a directory tree and reports the entries whose names
// match a request.
//
// The walk is depth first over an explicit stack, runs on the calling
// goroutine and never follows symbolic links. Unreadable directories are
// reported through a warning handler and skipped; the rest of the tree is
// still searched.
package search

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/harrison/sf/internal/fileutil"
	"github.com/harrison/sf/internal/models"
	"github.com/harrison/sf/internal/pattern"
)

// statusEvery is how many visited entries pass between status updates.
const statusEvery = 1024

// Sink consumes matches as they are found.
type Sink interface {
	Emit(m models.Match) error
	Flush() error
}

// StatusReporter receives progress text. Implementations must be cheap, the
// engine calls them from the walk loop.
type StatusReporter interface {
	SetStatus(text string)
}

// ReadDirFunc lists a directory.
type ReadDirFunc func(path string) ([]fs.DirEntry, error)

// Engine runs one search request. An Engine may be run any number of times;
// every run owns its own Stats.
type Engine struct {
	req     models.SearchRequest
	matcher *pattern.Matcher
	filter  *fileutil.EntryFilter
	readDir ReadDirFunc
	hidden  fileutil.HiddenFunc
	warn    func(models.Warning)
	status  StatusReporter
	now     func() time.Time
}

type frame struct {
	path  string
	depth int
}

// New validates req and builds its matcher and filter. Pattern errors
// surface here, before any filesystem access.
func New(req models.SearchRequest) (*Engine, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	matcher, err := pattern.New(req.Include, req.Exclude, req.CaseSensitive)
	if err != nil {
		return nil, err
	}

	return &Engine{
		req:     req,
		matcher: matcher,
		filter:  fileutil.NewEntryFilter(req),
		readDir: os.ReadDir,
		hidden:  fileutil.IsHidden,
		warn:    func(models.Warning) {},
		now:     time.Now,
	}, nil
}

// WithWarningHandler sets the receiver of per-directory warnings.
func (e *Engine) WithWarningHandler(fn func(models.Warning)) *Engine {
	if fn != nil {
		e.warn = fn
	}
	return e
}

// WithStatus attaches a progress reporter.
func (e *Engine) WithStatus(s StatusReporter) *Engine {
	e.status = s
	return e
}

// WithReadDir replaces os.ReadDir.
func (e *Engine) WithReadDir(fn ReadDirFunc) *Engine {
	if fn != nil {
		e.readDir = fn
	}
	return e
}

// WithHiddenFunc replaces the platform hidden-entry predicate.
func (e *Engine) WithHiddenFunc(fn fileutil.HiddenFunc) *Engine {
	e.hidden = fn
	return e
}

// WithClock replaces time.Now for elapsed time measurement.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	if now != nil {
		e.now = now
	}
	return e
}

// Matcher returns the compiled pattern matcher.
func (e *Engine) Matcher() *pattern.Matcher {
	return e.matcher
}

// Run walks the tree and hands every match to sink, unless the request's
// output mode does not stream matches. The sink is flushed before Run
// returns. A root that cannot be read yields one warning, an empty summary
// and an error wrapping ErrRootUnresolvable.
func (e *Engine) Run(ctx context.Context, sink Sink) (models.Summary, error) {
	stats := newStats(e.now)
	stream := sink != nil && e.req.Mode.StreamsMatches()

	var sinkErr error
	err := e.walk(ctx, stats, func(m models.Match) bool {
		if !stream {
			return true
		}
		if err := sink.Emit(m); err != nil {
			sinkErr = err
			return false
		}
		return true
	})

	if sink != nil {
		if ferr := sink.Flush(); ferr != nil && sinkErr == nil {
			sinkErr = ferr
		}
	}

	summary := stats.Finalize()
	if err != nil {
		return summary, err
	}
	if sinkErr != nil {
		return summary, fmt.Errorf("failed to write match: %w", sinkErr)
	}
	return summary, nil
}

// Matches returns the matches as a lazy sequence. The walk happens while the
// sequence is ranged over and stops when the consumer stops. stats receives
// the counters and any terminating error; call stats.Finalize once the
// sequence is exhausted.
func (e *Engine) Matches(ctx context.Context, stats *Stats) iter.Seq[models.Match] {
	return func(yield func(models.Match) bool) {
		if err := e.walk(ctx, stats, yield); err != nil {
			stats.err = err
		}
	}
}

// walk is the traversal shared by Run and Matches. It returns nil when yield
// asks to stop.
func (e *Engine) walk(ctx context.Context, stats *Stats, yield func(models.Match) bool) error {
	root, err := e.resolveRoot()
	if err != nil {
		e.warn(models.NewWarning(e.req.Root, err))
		return fmt.Errorf("%w: %w", ErrRootUnresolvable, err)
	}

	stack := []frame{{path: root, depth: 0}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		items, err := e.readDir(cur.path)
		if err != nil {
			if cur.depth == 0 {
				e.warn(models.NewWarning(cur.path, err))
				return fmt.Errorf("%w: %w", ErrRootUnresolvable, err)
			}
			e.warn(models.NewWarning(cur.path, fmt.Errorf("%w: %w", ErrSubtreeUnreadable, err)))
			// os.ReadDir may return the entries read before the failure.
			if len(items) == 0 {
				continue
			}
		}

		for _, d := range items {
			entry := fileutil.NewEntry(cur.path, d, cur.depth+1, e.hidden)
			if entry.Kind == fileutil.KindSymlink {
				continue
			}

			if n := stats.visit(); e.status != nil && n%statusEvery == 0 {
				e.status.SetStatus(fmt.Sprintf("searching %s entries", humanize.Comma(n)))
			}

			if e.filter.ShouldDescend(entry) {
				stack = append(stack, frame{path: entry.Path, depth: entry.Depth})
			}

			if !e.filter.ShouldConsider(entry) || !e.matcher.Matches(entry.Name) {
				continue
			}
			stats.match()
			if !yield(models.Match{Parent: entry.Parent, Name: entry.Name}) {
				return nil
			}
		}
	}
	return nil
}

// resolveRoot turns the request root into an absolute directory path.
func (e *Engine) resolveRoot() (string, error) {
	root := e.req.Root
	if root == "." {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		root = wd
	} else {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", root, err)
		}
		root = abs
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}
	return root, nil
}

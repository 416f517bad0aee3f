package display

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// lockedBuffer is a bytes.Buffer safe for the spinner goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsAndStops(t *testing.T) {
	out := &lockedBuffer{}
	s := NewSpinner(out, "searching", SpinnerOptions{Interval: 5 * time.Millisecond, Frames: []string{"-", "+"}})

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "- searching")
	}, time.Second, 5*time.Millisecond)

	s.SetStatus("searching 1,024 entries")
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "searching 1,024 entries")
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	stopped := out.String()
	assert.True(t, strings.HasSuffix(stopped, clearLine), "line cleared on stop")

	// No frame after Stop, and a second Stop is harmless.
	time.Sleep(20 * time.Millisecond)
	s.Stop()
	assert.Equal(t, stopped, out.String())
}

func TestSpinnerPause(t *testing.T) {
	out := &lockedBuffer{}
	s := NewSpinner(out, "searching", SpinnerOptions{Interval: 5 * time.Millisecond})
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "searching")
	}, time.Second, 5*time.Millisecond)

	s.Pause(func() {
		out.Write([]byte("match line\n"))
	})
	assert.Contains(t, out.String(), clearLine+"match line\n")
}

func TestSpinnerTruncatesToWidth(t *testing.T) {
	out := &lockedBuffer{}
	s := NewSpinner(out, strings.Repeat("x", 50), SpinnerOptions{
		Interval: 5 * time.Millisecond,
		Frames:   []string{"*"},
		Width:    func() int { return 13 },
	})

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "* xxxxxxxxx…")
	}, time.Second, 5*time.Millisecond)
	s.Stop()

	assert.NotContains(t, out.String(), strings.Repeat("x", 11))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "…", truncate("abcdef", 1))
	assert.Equal(t, "", truncate("abcdef", 0))
	assert.Equal(t, "äö…", truncate("äöüß", 3))
}

func TestNoopStatus(t *testing.T) {
	var s NoopStatus
	s.SetStatus("x")
	ran := false
	s.Pause(func() { ran = true })
	s.Stop()
	assert.True(t, ran)
}

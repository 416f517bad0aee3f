package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/harrison/sf/internal/display"
	"github.com/sourcegraph/conc"
)

// interruptMessage is printed when the user aborts a search.
const interruptMessage = "Received Ctrl-C! => Exit program!"

// osExit is replaced in tests.
var osExit = os.Exit

// interruptSignals subscribes to SIGINT and SIGTERM. The subscription ends
// when the returned channel's watcher is stopped.
func interruptSignals() chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	return ch
}

// watchInterrupt terminates the process with status 0 when a signal arrives
// on sig, after stopping the status line and printing interruptMessage.
// Buffered matches that were not flushed yet are lost. The returned function
// ends the watch and waits for the watcher goroutine.
func watchInterrupt(sig chan os.Signal, out io.Writer, status display.StatusReporter, useColor bool, exit func(int)) func() {
	done := make(chan struct{})
	var wg conc.WaitGroup

	wg.Go(func() {
		select {
		case <-sig:
			status.Stop()
			msg := interruptMessage
			if useColor {
				c := color.New(color.FgYellow, color.Bold)
				c.EnableColor()
				msg = c.Sprint(msg)
			}
			fmt.Fprintln(out, msg)
			exit(0)
		case <-done:
		}
	})

	return func() {
		signal.Stop(sig)
		close(done)
		wg.Wait()
	}
}

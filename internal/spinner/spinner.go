// Package spinner draws a one-line progress animation on a terminal while a
// slow operation, such as a table download, runs.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Interval is the time between two frames.
var Interval = 80 * time.Millisecond

// Start draws message with an animated frame on w until the returned function
// is called. stop clears the line and may be called more than once.
func Start(w io.Writer, message string) (stop func()) {
	done := make(chan struct{})
	cleared := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(Interval)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-done:
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", len(message)+2)) //nolint:errcheck
				close(cleared)
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], message) //nolint:errcheck
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
		<-cleared
	}
}

// Run calls fn, showing the spinner on w while it runs when w is a terminal.
// On other writers fn runs without any output.
func Run(ctx context.Context, w io.Writer, message string, fn func(context.Context) error) error {
	if !IsTerminal(w) {
		return fn(ctx)
	}
	stop := Start(w, message)
	defer stop()
	return fn(ctx)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

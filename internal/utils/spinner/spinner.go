package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// StartSpinner starts a spinner with the given message on w.
// Returns a stop function to halt and clear the spinner.
//
// Nothing is drawn when w is not a terminal, so piped or redirected output
// stays clean.
//
//	stop := spinner.StartSpinner(os.Stderr, "Encoding...")
//	res, err := svc.Sweep(req)
//	stop()
func StartSpinner(w *os.File, message string) func() {
	if !term.IsTerminal(int(w.Fd())) {
		return func() {}
	}

	// CharSets[14] is a braille dot spinner.
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(w))
	s.Suffix = " " + message
	s.Start()

	return func() {
		s.Stop()
	}
}

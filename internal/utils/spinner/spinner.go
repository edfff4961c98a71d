package spinner

import (
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts a terminal spinner with the given message and returns
// a stop function to halt and clear it.
//
// Usage:
//
//	stop := spinner.StartSpinner("Scanning keys...")
//	keys, err := ring.List()
//	stop()
//	if err != nil { return err }
func StartSpinner(message string) func() {
	// CharSets[14] is a good default.
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()

	return func() {
		s.Stop()
	}
}

package wizard

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner is the progress indicator shown while project setup loads.
type Spinner interface {
	Start()
	Stop()
}

const spinnerRefreshRate = 120 * time.Millisecond

var newSpinner = func(w io.Writer, suffix string) Spinner {
	s := spinner.New(spinner.CharSets[14], spinnerRefreshRate, spinner.WithWriter(w))
	s.Suffix = suffix
	return s
}

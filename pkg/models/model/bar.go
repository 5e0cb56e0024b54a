package model

import (
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar is the terminal spinner shown while the engine thinks; the search has
// no progress notion, so the bar is indeterminate.
type Bar struct {
	*progressbar.ProgressBar
}

func NewSpinner(description string) Bar {
	return Bar{progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(50),
	)}
}

// Spin ticks the spinner until done closes.
func (b Bar) Spin(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-time.After(120 * time.Millisecond):
			_ = b.Add(1)
		}
	}
}

// Done clears the spinner line.
func (b Bar) Done() {
	_ = b.Finish()
	_ = b.Clear()
}

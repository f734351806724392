package internal

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// quietLevel is set once from the -q/--quiet repeat count; 0 shows
// progress, >=1 suppresses it.
var quietLevel int

func SetQuietLevel(level int) {
	quietLevel = level
}

func QuietLevel() int {
	return quietLevel
}

// Bar wraps the progress bar library, a no-op when quiet.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar creates a progress bar over max steps, suppressed at any quiet
// level >= 1.
func NewBar(max int64, description string) *Bar {
	if quietLevel >= 1 {
		return &Bar{}
	}
	bar := progressbar.NewOptions64(
		max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100),
		progressbar.OptionOnCompletion(func() { io.WriteString(os.Stderr, "\n") }),
	)
	return &Bar{bar: bar}
}

func (b *Bar) Add(n int) {
	if b.bar != nil {
		b.bar.Add(n)
	}
}

func (b *Bar) Finish() {
	if b.bar != nil {
		b.bar.Finish()
	}
}

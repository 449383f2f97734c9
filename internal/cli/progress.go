package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// progressReporter renders per-stage progress bars while the dataset
// builder walks the package tree. It satisfies the Progress hook of
// dataset.Builder.
type progressReporter struct {
	quiet bool
	stage string
	bar   *progressbar.ProgressBar
}

func newProgressReporter(quiet bool) *progressReporter {
	return &progressReporter{quiet: quiet}
}

// Report advances the bar for the current stage, starting a fresh bar
// whenever the builder moves to the next stage.
func (p *progressReporter) Report(stage string, completed, total int) {
	if p.quiet {
		return
	}
	if stage != p.stage {
		if p.bar != nil {
			p.bar.Finish()
		}
		p.stage = stage
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription(fmt.Sprintf("Generating %s datasets", stage)),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
	}
	if p.bar != nil {
		p.bar.Set(completed)
	}
}

// Finish closes the active bar, if any.
func (p *progressReporter) Finish() {
	if p.quiet {
		return
	}
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}

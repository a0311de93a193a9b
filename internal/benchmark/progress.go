package benchmark

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// ProgressSink receives coarse progress for each cipher pass. Calls happen
// while the pass timer is stopped.
type ProgressSink interface {
	Start(algorithm string, records int)
	Decile(algorithm string, percent int)
	Finish(algorithm string)
}

// LineProgress prints `=====AES 10%=====` style lines.
type LineProgress struct {
	w io.Writer
}

func NewLineProgress(w io.Writer) *LineProgress {
	return &LineProgress{w: w}
}

func (p *LineProgress) Start(string, int) {}

func (p *LineProgress) Decile(algorithm string, percent int) {
	fmt.Fprintf(p.w, "=====%s %d%%=====\n", strings.ToUpper(algorithm), percent)
}

func (p *LineProgress) Finish(string) {}

// BarProgress renders one progress bar per pass.
type BarProgress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func NewBarProgress(w io.Writer) *BarProgress {
	return &BarProgress{w: w}
}

func (p *BarProgress) Start(algorithm string, records int) {
	p.bar = progressbar.NewOptions(100,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s %d records]", strings.ToUpper(algorithm), records)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(p.w)
		}),
	)
}

func (p *BarProgress) Decile(_ string, percent int) {
	if p.bar != nil {
		p.bar.Set(percent)
	}
}

func (p *BarProgress) Finish(string) {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}

type discardProgress struct{}

func (discardProgress) Start(string, int)  {}
func (discardProgress) Decile(string, int) {}
func (discardProgress) Finish(string)      {}

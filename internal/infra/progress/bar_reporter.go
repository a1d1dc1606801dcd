package progress

import (
	"fmt"
	"io"
	"sync"

	"storeradar/internal/domain/service"

	"github.com/schollz/progressbar/v3"
)

// BarReporter draws one terminal progress bar per step.
type BarReporter struct {
	out io.Writer

	mu   sync.Mutex
	step string
	bar  *progressbar.ProgressBar
}

func NewBarReporter(out io.Writer) *BarReporter {
	return &BarReporter{out: out}
}

var _ service.ProgressReporter = (*BarReporter)(nil)

func (r *BarReporter) Report(p service.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bar := r.barFor(p)
	bar.Describe(describe(p))
	_ = bar.Set(p.Processed)
}

func (r *BarReporter) Done(p service.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bar := r.barFor(p)
	bar.Describe(describe(p))
	_ = bar.Set(p.Processed)
	_ = bar.Finish()
	fmt.Fprintln(r.out)

	r.bar = nil
	r.step = ""
}

// barFor starts a fresh bar whenever the step changes.
func (r *BarReporter) barFor(p service.Progress) *progressbar.ProgressBar {
	if r.bar != nil && r.step == p.Step {
		return r.bar
	}

	total := p.Total
	if total <= 0 {
		total = -1
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(p.Step),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(0),
	)
	r.step = p.Step

	return r.bar
}

func describe(p service.Progress) string {
	return fmt.Sprintf("%s ok=%d failed=%d", p.Step, p.Succeeded, p.Failed)
}

package cli

import (
	"fmt"
	"io"
	"time"
)

// Progress prints one line when a pipeline stage starts and one when it
// finishes. A disabled or nil Progress prints nothing.
type Progress struct {
	out     io.Writer
	enabled bool
	stage   string
	started time.Time
	now     func() time.Time
}

// NewProgress creates a stage reporter writing to out.
func NewProgress(out io.Writer, enabled bool) *Progress {
	return &Progress{out: out, enabled: enabled, now: time.Now}
}

// Start announces stage, e.g. "Parsing".
func (p *Progress) Start(stage string) {
	if p == nil {
		return
	}
	p.stage = stage
	p.started = p.now()
	if p.enabled {
		fmt.Fprintln(p.out, Info(stage+"..."))
	}
}

// Done reports the current stage as finished.
func (p *Progress) Done() {
	if p == nil || !p.enabled || p.stage == "" {
		return
	}
	elapsed := p.now().Sub(p.started).Round(time.Millisecond)
	fmt.Fprintf(p.out, "%s %s\n", Success(p.stage+" done"), Muted(fmt.Sprintf("(%s)", elapsed)))
	p.stage = ""
}

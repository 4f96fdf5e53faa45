// Package progress renders byte-level transfer progress.
//
// A Tracker accumulates bytes from any number of goroutines and redraws a
// single bar line. On a terminal the line is rewritten in place; on any
// other writer a plain line is emitted at every 10% step so logs stay
// readable.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	minBarWidth  = 10
)

// isTerminal and terminalWidth are test seams for golang.org/x/term.
var (
	isTerminal    = term.IsTerminal
	terminalWidth = func(fd int) (int, error) {
		w, _, err := term.GetSize(fd)
		return w, err
	}
)

var doneColor = color.New(color.FgGreen)

// Tracker counts transferred bytes against a known total.
type Tracker struct {
	label string
	total int64
	done  atomic.Int64

	mu       sync.Mutex
	out      io.Writer
	tty      bool
	width    int
	lastStep int64
	finished bool
}

// New returns a Tracker writing to out. A zero total is treated as already
// complete.
func New(out io.Writer, label string, total int64) *Tracker {
	t := &Tracker{label: label, total: total, out: out, width: defaultWidth, lastStep: -1}

	if f, ok := out.(*os.File); ok && isTerminal(int(f.Fd())) {
		t.tty = true
		if w, err := terminalWidth(int(f.Fd())); err == nil && w > 0 {
			t.width = w
		}
	}
	return t
}

// Add records n more transferred bytes. Safe for concurrent use.
func (t *Tracker) Add(n int64) {
	if n <= 0 {
		return
	}
	t.done.Add(n)
	t.render(false)
}

// Current returns the bytes recorded so far.
func (t *Tracker) Current() int64 {
	return t.done.Load()
}

// Done draws the final state and ends the line. Later calls are no-ops.
func (t *Tracker) Done() {
	t.render(true)
}

func (t *Tracker) percent(done int64) int64 {
	if t.total <= 0 {
		return 100
	}
	p := done * 100 / t.total
	if p > 100 {
		p = 100
	}
	return p
}

func (t *Tracker) render(final bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return
	}

	done := t.done.Load()
	pct := t.percent(done)

	if !t.tty && !final {
		step := pct / 10
		if step <= t.lastStep {
			return
		}
		t.lastStep = step
	}

	line := t.line(done, pct)
	if final {
		t.finished = true
		if pct == 100 {
			line = doneColor.Sprint(line)
		}
	}

	switch {
	case t.tty && final:
		fmt.Fprintf(t.out, "\r%s\n", line)
	case t.tty:
		fmt.Fprintf(t.out, "\r%s", line)
	default:
		fmt.Fprintln(t.out, line)
	}
}

// line formats "<label> [=====>    ]  45% 1.2/3.0 GB" to fit the width.
func (t *Tracker) line(done, pct int64) string {
	stats := fmt.Sprintf(" %3d%% %s/%s GB", pct, gb(done), gb(t.total))

	label := t.label
	bar := t.width - len(stats) - 2
	if bar < minBarWidth+len(label)+1 {
		label = ""
	} else {
		bar -= len(label) + 1
	}
	if bar < minBarWidth {
		bar = minBarWidth
	}

	filled := int(int64(bar) * pct / 100)
	var b strings.Builder
	if label != "" {
		b.WriteString(label)
		b.WriteByte(' ')
	}
	b.WriteByte('[')
	b.WriteString(strings.Repeat("=", filled))
	if filled < bar {
		b.WriteByte('>')
		b.WriteString(strings.Repeat(" ", bar-filled-1))
	}
	b.WriteByte(']')
	b.WriteString(stats)
	return b.String()
}

func gb(n int64) string {
	return fmt.Sprintf("%.1f", float64(n)/1e9)
}

package display

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Status renders a single-line busy indicator with a live tail of agent
// output. The line is rewritten in place on a TTY and suppressed otherwise,
// so supervised output never corrupts piped logs.
type Status struct {
	d      *Display
	label  string
	frame  int
	tty    bool
	active bool
}

// StartStatus begins a live status line with the given label
func (d *Display) StartStatus(label string) *Status {
	s := &Status{
		d:      d,
		label:  label,
		tty:    term.IsTerminal(int(os.Stdout.Fd())),
		active: true,
	}
	s.render("")
	return s
}

// Update redraws the status line with the latest output tail
func (s *Status) Update(tail string) {
	if !s.active {
		return
	}
	s.frame = (s.frame + 1) % len(spinnerFrames)
	s.render(tail)
}

// Done clears the status line and stops rendering
func (s *Status) Done() {
	if !s.active {
		return
	}
	s.active = false
	if s.tty {
		fmt.Print("\r\033[K")
	}
}

func (s *Status) render(tail string) {
	if !s.tty {
		return
	}
	line := s.d.theme.Info(spinnerFrames[s.frame]) + " " + s.d.theme.Bold(s.label)
	if tail != "" {
		// One line of the most recent output, clipped to the terminal width.
		room := s.d.termWidth - len(s.label) - 4
		if room > 10 {
			line += " " + s.d.theme.Dim(Truncate(tail, room))
		}
	}
	fmt.Print("\r\033[K" + line)
}

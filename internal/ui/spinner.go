package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress for a blocking step. On a terminal it animates;
// otherwise Start and Stop each print a single line.
type Spinner struct {
	out io.Writer
	s   *spinner.Spinner
}

// Spinner returns a new, stopped spinner bound to the prompter's output.
func (p *Prompter) Spinner() *Spinner {
	sp := &Spinner{out: p.out}
	if p.tty {
		sp.s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(p.out))
	}
	return sp
}

// Start begins the spinner with msg.
func (s *Spinner) Start(msg string) {
	if s.s == nil {
		fmt.Fprintf(s.out, "%s  %s\n", Cyan(askMark), msg)
		return
	}
	s.s.Prefix = Cyan(bar) + "  "
	s.s.Suffix = " " + msg
	s.s.Start()
}

// Stop halts the spinner and prints msg as the step result.
func (s *Spinner) Stop(msg string) {
	if s.s != nil && s.s.Active() {
		s.s.Stop()
	}
	fmt.Fprintf(s.out, "%s  %s\n%s\n", Green(stepMark), msg, Dim(bar))
}

// Fail halts the spinner and prints msg as a failed step.
func (s *Spinner) Fail(msg string) {
	if s.s != nil && s.s.Active() {
		s.s.Stop()
	}
	fmt.Fprintf(s.out, "%s  %s\n%s\n", Red("■"), msg, Dim(bar))
}

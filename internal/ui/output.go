package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	Bold    = color.New(color.Bold).SprintFunc()
	Dim     = color.New(color.Faint).SprintFunc()
	Green   = color.New(color.FgGreen).SprintFunc()
	Cyan    = color.New(color.FgCyan).SprintFunc()
	Yellow  = color.New(color.FgYellow).SprintFunc()
	Red     = color.New(color.FgRed).SprintFunc()
	Inverse = color.New(color.ReverseVideo).SprintFunc()
	BgBlue  = color.New(color.BgBlue, color.FgWhite).SprintFunc()
	BgGreen = color.New(color.BgGreen, color.FgBlack).SprintFunc()
)

const (
	barStart = "┌"
	bar      = "│"
	barEnd   = "└"
	stepMark = "◇"
	askMark  = "◆"
	warnMark = "▲"
)

// Intro prints the opening line of a session.
func (p *Prompter) Intro(title string) {
	fmt.Fprintf(p.out, "%s  %s\n%s\n", Dim(barStart), title, Dim(bar))
}

// Outro prints the closing line of a session.
func (p *Prompter) Outro(msg string) {
	fmt.Fprintf(p.out, "%s  %s\n\n", Dim(barEnd), msg)
}

// Cancel prints a closing line in red.
func (p *Prompter) Cancel(msg string) {
	fmt.Fprintf(p.out, "%s  %s\n\n", Dim(barEnd), Red(msg))
}

// Step prints a completed step.
func (p *Prompter) Step(msg string) {
	fmt.Fprintf(p.out, "%s  %s\n%s\n", Green(stepMark), msg, Dim(bar))
}

// Warn prints a warning inside the session frame.
func (p *Prompter) Warn(msg string) {
	fmt.Fprintf(p.out, "%s  %s\n%s\n", Yellow(warnMark), msg, Dim(bar))
}

// Note prints body as an indented block. Leading and trailing blank lines
// and common indentation are removed.
func (p *Prompter) Note(body string) {
	fmt.Fprintf(p.out, "%s\n", Dim(bar))
	for _, line := range dedent(body) {
		if line == "" {
			fmt.Fprintf(p.out, "%s\n", Dim(bar))
			continue
		}
		fmt.Fprintf(p.out, "%s  %s\n", Dim(bar), line)
	}
	fmt.Fprintf(p.out, "%s\n", Dim(bar))
}

func dedent(body string) []string {
	lines := strings.Split(strings.Trim(body, "\n"), "\n")
	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimRight(l[indent:], " \t")
	}
	return lines
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package ui

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCanceled is returned by prompts when the user aborts.
var ErrCanceled = errors.New("prompt canceled")

// Prompter reads answers from in and renders to out.
type Prompter struct {
	src io.Reader
	in  *bufio.Reader
	out io.Writer
	tty bool
}

// New returns a Prompter over r and w. Animations are enabled only when w
// is a terminal.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		src: r,
		in:  bufio.NewReader(r),
		out: w,
		tty: isTerminal(w),
	}
}

// Stdin hands the rest of the input to a child process. Bytes already read
// ahead by the prompts come first. When nothing is buffered the original
// reader is returned as is, so a terminal stays a terminal for the child.
// The prompter must not be used after Stdin.
func (p *Prompter) Stdin() io.Reader {
	n := p.in.Buffered()
	if n == 0 {
		return p.src
	}
	ahead, _ := p.in.Peek(n)
	pending := bytes.Clone(ahead)
	_, _ = p.in.Discard(n)
	return io.MultiReader(bytes.NewReader(pending), p.src)
}

// TextPrompt describes a free-text question.
type TextPrompt struct {
	Message     string
	Placeholder string
	// Validate is called with the raw line. A non-nil error is shown and
	// the question is asked again.
	Validate func(string) error
}

// Text asks tp until Validate accepts the answer and returns the raw line.
// An empty answer is returned as "" so the caller can apply its default.
func (p *Prompter) Text(ctx context.Context, tp TextPrompt) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s  %s\n", Cyan(askMark), tp.Message)
		if tp.Placeholder != "" {
			fmt.Fprintf(p.out, "%s  %s ", Cyan(bar), Dim("("+tp.Placeholder+")"))
		} else {
			fmt.Fprintf(p.out, "%s  ", Cyan(bar))
		}

		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}

		if tp.Validate != nil {
			if verr := tp.Validate(line); verr != nil {
				fmt.Fprintf(p.out, "%s  %s\n", Yellow(warnMark), Yellow(verr.Error()))
				continue
			}
		}

		fmt.Fprintf(p.out, "%s\n", Dim(bar))
		return line, nil
	}
}

// Option is one choice of a SelectPrompt.
type Option struct {
	Label string
	Value string
}

// SelectPrompt describes a single-choice question.
type SelectPrompt struct {
	Message string
	Options []Option
	// Initial is the Value picked on an empty answer.
	Initial string
}

// Select asks sp until the answer names an option and returns its Value.
// Options can be picked by number or by label, case-insensitively.
func (p *Prompter) Select(ctx context.Context, sp SelectPrompt) (string, error) {
	if len(sp.Options) == 0 {
		return "", fmt.Errorf("select %q has no options", sp.Message)
	}

	for {
		fmt.Fprintf(p.out, "%s  %s\n", Cyan(askMark), sp.Message)
		for i, opt := range sp.Options {
			mark := "○"
			if opt.Value == sp.Initial {
				mark = Green("●")
			}
			fmt.Fprintf(p.out, "%s  %s %d) %s\n", Cyan(bar), mark, i+1, opt.Label)
		}
		fmt.Fprintf(p.out, "%s  Enter number [1-%d]: ", Cyan(bar), len(sp.Options))

		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}

		if v, ok := matchOption(sp, strings.TrimSpace(line)); ok {
			fmt.Fprintf(p.out, "%s\n", Dim(bar))
			return v, nil
		}
		fmt.Fprintf(p.out, "%s  %s\n", Yellow(warnMark),
			Yellow(fmt.Sprintf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), len(sp.Options))))
	}
}

func matchOption(sp SelectPrompt, answer string) (string, bool) {
	if answer == "" {
		for _, opt := range sp.Options {
			if opt.Value == sp.Initial {
				return opt.Value, true
			}
		}
		return sp.Options[0].Value, true
	}

	if num, err := strconv.Atoi(answer); err == nil {
		if num < 1 || num > len(sp.Options) {
			return "", false
		}
		return sp.Options[num-1].Value, true
	}

	for _, opt := range sp.Options {
		if strings.EqualFold(opt.Label, answer) || strings.EqualFold(opt.Value, answer) {
			return opt.Value, true
		}
	}
	return "", false
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line without its terminator. EOF with nothing read and
// a cancelled ctx both yield ErrCanceled. The read runs in its own goroutine
// so a blocked terminal read does not hold up cancellation; after a cancel
// the prompter must not be used again.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrCanceled
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ErrCanceled
	case res := <-ch:
		line := strings.TrimRight(res.line, "\r\n")
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && line != "" {
				return line, nil
			}
			if errors.Is(res.err, io.EOF) {
				fmt.Fprintln(p.out)
				return "", ErrCanceled
			}
			return "", fmt.Errorf("reading answer: %w", res.err)
		}
		return line, nil
	}
}

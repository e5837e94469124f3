// Package ui renders the interactive scaffold session in the terminal.
//
// A Prompter wraps an input reader and an output writer and provides:
//   - Intro, Outro, Note and Cancel framing lines
//   - Text and Select prompts that re-ask until the answer is valid
//   - a Spinner for long-running steps
//
// Every prompt returns ErrCanceled when input reaches EOF or the context is
// cancelled, so callers can unwind without exiting the process themselves.
package ui

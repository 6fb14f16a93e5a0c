package highline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"sync"
)

// stdio is the process binding used by Run. The reader is shared so that
// bytes buffered by one prompt are seen by the next.
var stdio = struct {
	sync.Mutex
	in  *bufio.Reader
	out io.Writer
}{
	in:  bufio.NewReader(os.Stdin),
	out: os.Stdout,
}

type flusher interface {
	Flush() error
}

// Run prompts on standard output and reads from standard input until the
// pipeline produces an answer or an exit.
//
// Standard input and output are held exclusively for the whole call, so
// prompts issued from several goroutines never interleave.
func (p Pipeline[T]) Run() (T, bool, error) {
	stdio.Lock()
	defer stdio.Unlock()
	return p.RunTo(stdio.in, stdio.out)
}

// RunTo writes the prompt message to out and reads a line from in,
// repeating until the pipeline produces an answer or an exit.
//
// An answer is returned as (v, true, nil). An exit sentinel returns
// (zero, false, nil) without writing anything further. A rejected line
// prints the error message and prompts again, with no retry limit.
//
// Read and write failures end the loop with a non-nil error. Reaching the
// end of in without reading anything returns ErrInputClosed; a final line
// without a trailing newline is still evaluated.
//
// Pass a *bufio.Reader to keep buffered input across several prompts over
// the same stream. Any other reader is wrapped for the duration of the call.
func (p Pipeline[T]) RunTo(in io.Reader, out io.Writer) (T, bool, error) {
	var zero T
	br := lineReader(in)

	for attempt := 1; ; attempt++ {
		if err := writeFlush(out, p.message, " "); err != nil {
			return zero, false, fmt.Errorf("highline: write prompt: %w", err)
		}

		line, err := readLine(br)
		if err != nil {
			p.log.Debug().Err(err).Str("prompt", p.message).Int("attempt", attempt).Msg("prompt input failed")
			return zero, false, err
		}

		res := p.Evaluate(line)
		p.log.Debug().
			Str("prompt", p.message).
			Int("attempt", attempt).
			Stringer("outcome", res.Outcome()).
			Msg("prompt evaluated line")

		switch res.Outcome() {
		case OutcomeAnswer:
			v, _ := res.Value()
			return v, true, nil
		case OutcomeExit:
			return zero, false, nil
		}

		if err := writeFlush(out, p.errorMessage, "\n"); err != nil {
			return zero, false, fmt.Errorf("highline: write error message: %w", err)
		}
	}
}

// Prompt is Run for callers that cannot recover from broken standard I/O.
// It panics on a read or write failure and returns the zero T on exit.
func (p Pipeline[T]) Prompt() T {
	v, _ := Must(p.Run())
	return v
}

// Each prompts repeatedly, yielding every answer, until an exit sentinel is
// entered. A read or write failure is yielded once as the error and ends the
// sequence.
//
//	for n, err := range highline.AskAs("Number (q to quit)?", highline.Unsigned).ExitOn("q").Each(in, out) {
//	    if err != nil {
//	        return err
//	    }
//	    numbers = append(numbers, n)
//	}
func (p Pipeline[T]) Each(in io.Reader, out io.Writer) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		br := lineReader(in)
		for {
			v, ok, err := p.RunTo(br, out)
			if err != nil {
				yield(v, err)
				return
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Must panics if err is non-nil and otherwise returns v and ok unchanged.
// It is meant to wrap Run and RunTo:
//
//	name, _ := highline.Must(highline.Ask("Name?").Run())
func Must[T any](v T, ok bool, err error) (T, bool) {
	if err != nil {
		panic(err)
	}
	return v, ok
}

func lineReader(in io.Reader) *bufio.Reader {
	if br, ok := in.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(in)
}

// readLine reads up to and including the next '\n' and strips the line
// ending: one '\n' and, before it, one '\r'.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("highline: read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
		return line, nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func writeFlush(out io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(out, part); err != nil {
			return err
		}
	}
	if f, ok := out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

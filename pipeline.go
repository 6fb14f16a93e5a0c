package highline

import (
	"slices"

	"github.com/rs/zerolog"
)

// Pipeline is a prompt message together with the conversion that turns a
// raw line of input into a T.
//
// Pipelines are values. Every builder function and method returns a new
// Pipeline and leaves its input untouched, so a partially built Pipeline can
// be shared and extended in different directions.
type Pipeline[T any] struct {
	message      string
	errorMessage string
	rules        []sentinel
	convert      func(line string) Result[T]
	log          zerolog.Logger
}

// sentinel short-circuits the conversion when the raw line equals literal.
type sentinel struct {
	literal string
	outcome Outcome
}

// Ask starts a Pipeline that accepts any non-empty line.
//
// It is shorthand for AskAs(message, Text).
func Ask(message string) Pipeline[string] {
	return AskAs(message, Text)
}

// AskAs starts a Pipeline that parses input with kind and re-prompts with
// the kind's error message.
func AskAs[T any](message string, kind Kind[T]) Pipeline[T] {
	return Pipeline[T]{
		message:      message,
		errorMessage: kind.ErrorMessage(),
		convert:      fromKind(kind),
		log:          zerolog.Nop(),
	}
}

// As replaces the conversion of p with kind and adopts the kind's error
// message. Sentinels already registered on p are kept.
func As[T any](p Pipeline[string], kind Kind[T]) Pipeline[T] {
	out := derive(p, fromKind(kind))
	out.errorMessage = kind.ErrorMessage()
	return out
}

// Message returns the text printed before each read.
func (p Pipeline[T]) Message() string { return p.message }

// ErrorMessage returns the text printed after a rejected line.
func (p Pipeline[T]) ErrorMessage() string { return p.errorMessage }

// WithError returns a copy of p that prints msg after a rejected line.
func (p Pipeline[T]) WithError(msg string) Pipeline[T] {
	p.errorMessage = msg
	return p
}

// WithLogger returns a copy of p that reports every attempt to log at debug
// level. Raw input is never logged.
func (p Pipeline[T]) WithLogger(log zerolog.Logger) Pipeline[T] {
	p.log = log
	return p
}

// DefaultOn returns a copy of p that answers with the zero T when the line
// equals literal. No stage runs for that line.
func (p Pipeline[T]) DefaultOn(literal string) Pipeline[T] {
	return p.withSentinel(literal, OutcomeAnswer)
}

// ExitOn returns a copy of p that stops prompting when the line equals
// literal. Run reports this as ok == false with a nil error.
func (p Pipeline[T]) ExitOn(literal string) Pipeline[T] {
	return p.withSentinel(literal, OutcomeExit)
}

// AndOn adds literal as another sentinel with the same effect as the one
// registered last, as in
//
//	highline.AskAs("Number (q to quit)?", highline.Unsigned).ExitOn("q").AndOn("Q")
//
// Without a previous sentinel AndOn behaves like DefaultOn.
func (p Pipeline[T]) AndOn(literal string) Pipeline[T] {
	outcome := OutcomeAnswer
	if n := len(p.rules); n > 0 {
		outcome = p.rules[n-1].outcome
	}
	return p.withSentinel(literal, outcome)
}

func (p Pipeline[T]) withSentinel(literal string, outcome Outcome) Pipeline[T] {
	// clone so sibling pipelines never share a backing array
	p.rules = append(slices.Clip(p.rules), sentinel{literal: literal, outcome: outcome})
	return p
}

// Evaluate runs the conversion of p against one raw line, without any I/O.
//
// Sentinels are checked first, in the order they were added; the first
// match wins. Otherwise the line flows through the stages in the order they
// were chained, stopping at the first one that does not produce an answer.
func (p Pipeline[T]) Evaluate(line string) Result[T] {
	for _, s := range p.rules {
		if s.literal != line {
			continue
		}
		if s.outcome == OutcomeExit {
			return Exit[T]()
		}
		var zero T
		return Answer(zero)
	}
	if p.convert == nil {
		return Reject[T]()
	}
	return p.convert(line)
}

// derive carries everything but the conversion over to a pipeline of a new
// output type.
func derive[T, U any](p Pipeline[T], convert func(string) Result[U]) Pipeline[U] {
	return Pipeline[U]{
		message:      p.message,
		errorMessage: p.errorMessage,
		rules:        p.rules,
		convert:      convert,
		log:          p.log,
	}
}

package highline

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind parses raw input into a T and knows what to tell the user when it
// cannot.
//
// The exported kinds cover the common cases; implement Kind for your own
// types to use them with AskAs and As.
type Kind[T any] interface {
	Parse(line string) (T, bool)
	ErrorMessage() string
}

// Default error messages of the built-in kinds.
const (
	TextError         = "Please enter a value."
	OptionalTextError = "<Can't Fail>"
	UnsignedError     = "Please enter a non-negative number."
	UUIDError         = "Please enter a valid UUID."
	DateError         = "Please enter a date as YYYY-MM-DD."
)

// DateLayout is the layout accepted by Date.
const DateLayout = time.DateOnly

var (
	// Text accepts any non-empty line as is.
	Text Kind[string] = textKind{}

	// OptionalText accepts every line, including the empty one.
	OptionalText Kind[Optional[string]] = optionalTextKind{}

	// Unsigned accepts a base-10 integer in the uint64 range.
	Unsigned Kind[uint64] = unsignedKind{}

	// UUID accepts any form understood by uuid.Parse.
	UUID Kind[uuid.UUID] = uuidKind{}

	// Date accepts a calendar date in DateLayout, interpreted in UTC.
	Date Kind[time.Time] = dateKind{}
)

// KindFunc adapts a plain function and an error message into a Kind.
func KindFunc[T any](errorMessage string, parse func(line string) (T, bool)) Kind[T] {
	return funcKind[T]{parse: parse, message: errorMessage}
}

type funcKind[T any] struct {
	parse   func(string) (T, bool)
	message string
}

func (k funcKind[T]) Parse(line string) (T, bool) { return k.parse(line) }
func (k funcKind[T]) ErrorMessage() string        { return k.message }

type textKind struct{}

func (textKind) Parse(line string) (string, bool) { return line, line != "" }
func (textKind) ErrorMessage() string             { return TextError }

type optionalTextKind struct{}

func (optionalTextKind) Parse(line string) (Optional[string], bool) { return Some(line), true }
func (optionalTextKind) ErrorMessage() string                       { return OptionalTextError }

type unsignedKind struct{}

func (unsignedKind) Parse(line string) (uint64, bool) {
	// a single leading plus sign is accepted, strconv.ParseUint rejects it
	digits, _ := strings.CutPrefix(line, "+")
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (unsignedKind) ErrorMessage() string { return UnsignedError }

type uuidKind struct{}

func (uuidKind) Parse(line string) (uuid.UUID, bool) {
	id, err := uuid.Parse(line)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (uuidKind) ErrorMessage() string { return UUIDError }

type dateKind struct{}

func (dateKind) Parse(line string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, line)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (dateKind) ErrorMessage() string { return DateError }

func fromKind[T any](kind Kind[T]) func(string) Result[T] {
	return func(line string) Result[T] {
		v, ok := kind.Parse(line)
		if !ok {
			return Reject[T]()
		}
		return Answer(v)
	}
}

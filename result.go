package highline

// Outcome tells the retry loop what to do with a line of input.
type Outcome int

const (
	// OutcomeError asks the loop to print the error message and prompt again.
	OutcomeError Outcome = iota
	// OutcomeAnswer carries a valid value and ends the loop.
	OutcomeAnswer
	// OutcomeExit ends the loop without a value.
	OutcomeExit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAnswer:
		return "answer"
	case OutcomeExit:
		return "exit"
	default:
		return "error"
	}
}

// Result is the outcome of converting one line of input.
//
// The zero Result is a rejection, so a stage that forgets to fill one in
// re-prompts rather than returning a bogus value.
type Result[T any] struct {
	value   T
	outcome Outcome
}

// Answer returns a successful Result holding v.
func Answer[T any](v T) Result[T] {
	return Result[T]{value: v, outcome: OutcomeAnswer}
}

// Reject returns a Result that makes the loop re-prompt.
func Reject[T any]() Result[T] {
	return Result[T]{outcome: OutcomeError}
}

// Exit returns a Result that stops the loop without a value.
func Exit[T any]() Result[T] {
	return Result[T]{outcome: OutcomeExit}
}

// Outcome reports which of the three cases r is.
func (r Result[T]) Outcome() Outcome { return r.outcome }

// Value returns the answer and whether r is an answer at all.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.outcome == OutcomeAnswer
}

// then feeds an answer into fn. Rejections and exits pass through untouched.
func then[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.outcome != OutcomeAnswer {
		return Result[U]{outcome: r.outcome}
	}
	return fn(r.value)
}

// Optional is a value that may be absent.
type Optional[T any] struct {
	value T
	valid bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.valid }

// OrElse returns the value if present, fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.valid {
		return fallback
	}
	return o.value
}

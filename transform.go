package highline

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type (

	// ParseFunc converts a value and may fail. Any non-nil error rejects the
	// line; the error itself is discarded because the user only ever sees the
	// pipeline's error message.
	ParseFunc[In, Out any] func(in In) (Out, error)

	// TransformFunc converts a value, reporting false when the value cannot
	// be converted.
	TransformFunc[In, Out any] func(in In) (Out, bool)

	// Predicate returns true when the value is acceptable.
	Predicate[T any] func(item T) bool
)

// Parse applies fn to every answer produced by p.
//
// Rejections and exits from earlier stages are preserved and fn is not
// called for them.
func Parse[In, Out any](p Pipeline[In], fn ParseFunc[In, Out]) Pipeline[Out] {
	prev := p.convert
	return derive(p, func(line string) Result[Out] {
		return then(evalStage(prev, line), func(in In) Result[Out] {
			out, err := fn(in)
			if err != nil {
				return Reject[Out]()
			}
			return Answer(out)
		})
	})
}

// Transform applies fn to every answer produced by p.
//
// Rejections and exits from earlier stages are preserved and fn is not
// called for them.
func Transform[In, Out any](p Pipeline[In], fn TransformFunc[In, Out]) Pipeline[Out] {
	prev := p.convert
	return derive(p, func(line string) Result[Out] {
		return then(evalStage(prev, line), func(in In) Result[Out] {
			out, ok := fn(in)
			if !ok {
				return Reject[Out]()
			}
			return Answer(out)
		})
	})
}

// Validate rejects every answer for which predicate returns false.
//
// For example, to only accept adults:
//
//	age := highline.Validate(ages, func(years int) bool {
//	    return years >= 18
//	})
func Validate[T any](p Pipeline[T], predicate Predicate[T]) Pipeline[T] {
	prev := p.convert
	return derive(p, func(line string) Result[T] {
		return then(evalStage(prev, line), func(v T) Result[T] {
			if !predicate(v) {
				return Reject[T]()
			}
			return Answer(v)
		})
	})
}

// Check rejects every answer that does not satisfy the validator tag
// expression, using the same syntax as `validate:"..."` struct tags:
//
//	email := highline.Check(highline.Ask("E-mail?"), "email")
//	handle := highline.Check(highline.Ask("Handle?"), "alphanum,min=3,max=20")
//
// Check panics if tag is not a valid expression, so mistakes surface while
// the pipeline is built rather than on the first line of input.
func Check[T any](p Pipeline[T], tag string) Pipeline[T] {
	v := getValidator()
	if err := checkTag[T](v, tag); err != nil {
		panic("highline.Check: " + err.Error())
	}
	return Validate(p, func(value T) bool {
		return v.Var(value, tag) == nil
	})
}

func evalStage[T any](convert func(string) Result[T], line string) Result[T] {
	if convert == nil {
		return Reject[T]()
	}
	return convert(line)
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// checkTag dry-runs tag against the zero T. The validator panics on unknown
// tags instead of returning an error, so the panic is converted.
func checkTag[T any](v *validator.Validate, tag string) (err error) {
	if strings.TrimSpace(tag) == "" {
		return errEmptyTag
	}
	defer func() {
		if r := recover(); r != nil {
			err = tagError{tag: tag, reason: r}
		}
	}()
	var zero T
	_ = v.Var(zero, tag)
	return nil
}

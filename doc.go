/*
Package highline builds typed, self-correcting prompts for line-oriented
terminals.

A prompt is a Pipeline[T]: a message plus a conversion from the raw line the
user typed into a T. The conversion starts from a Kind (Text, Unsigned,
OptionalText, UUID, Date or your own) and is refined by chaining stages.
Each stage is a package-level function that returns a new Pipeline, so
stages compose by simple nesting and the output type may change at every
step.

Every line ends in one of three outcomes. An answer returns the value to the
caller. A rejection prints the pipeline's error message and asks again, as
many times as it takes. An exit stops asking without a value; it is produced
by sentinels registered with ExitOn.

Example of a prompt with a custom pipeline:

	// Start from the raw text the user typed.
	birth := highline.Ask("Enter your birth date (YYYY-MM-DD):")

	// Parse applies conversions that may fail with an error.
	dates := highline.Parse(birth, func(s string) (time.Time, error) {
	    return time.Parse(time.DateOnly, s)
	})

	// Transform applies conversions that report failure with a bool.
	ages := highline.Transform(dates, func(d time.Time) (int, bool) {
	    years := age(d, time.Now())
	    return years, years >= 0
	})

	// Validate keeps only the values the predicate accepts.
	adults := highline.Validate(ages, func(years int) bool {
	    return years >= 21
	})

	years, _, err := adults.WithError("Must be of legal drinking age").Run()

Sentinels are literal lines that bypass the stages entirely. DefaultOn
answers with the zero value, ExitOn stops prompting, and AndOn repeats the
previous sentinel for another literal:

	n, ok, err := highline.AskAs("Give me a number (q to quit):", highline.Unsigned).
	    ExitOn("q").
	    AndOn("Q").
	    RunTo(in, out)

Rejections never surface as Go errors; only failing I/O does.
*/
package highline

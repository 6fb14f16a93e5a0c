package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/KasperOmsK/highline"
	"github.com/KasperOmsK/highline/internal/iterx"
)

type answers struct {
	Name        string
	LuckyNumber uint64
	Age         int
	Password    highline.Optional[string]
	Numbers     []uint64
}

type survey struct {
	in    io.Reader
	out   io.Writer
	cfg   PromptConfig
	log   zerolog.Logger
	today time.Time
}

func (s *survey) run() (answers, error) {
	var a answers
	// one reader for every question, so piped input is not lost between them
	in := bufio.NewReader(s.in)

	name, _, err := highline.Ask("What is your name?").
		WithLogger(s.log).
		RunTo(in, s.out)
	if err != nil {
		return a, err
	}
	a.Name = name

	lucky, _, err := highline.AskAs("What is your lucky number?", highline.Unsigned).
		WithLogger(s.log).
		RunTo(in, s.out)
	if err != nil {
		return a, err
	}
	a.LuckyNumber = lucky

	age, _, err := s.agePrompt().RunTo(in, s.out)
	if err != nil {
		return a, err
	}
	a.Age = age

	password, _, err := highline.AskAs("What is your password?", highline.OptionalText).
		WithLogger(s.log).
		RunTo(in, s.out)
	if err != nil {
		return a, err
	}
	a.Password = password

	numbers, err := iterx.Collect(s.numbersPrompt().Each(in, s.out))
	if err != nil {
		return a, err
	}
	a.Numbers = numbers

	s.log.Info().Int("numbers", len(numbers)).Msg("survey complete")
	return a, nil
}

func (s *survey) agePrompt() highline.Pipeline[int] {
	birthDates := highline.AskAs("Enter your birth date (YYYY-MM-DD):", highline.Date)
	ages := highline.Transform(birthDates, func(birth time.Time) (int, bool) {
		if !birth.Before(s.today) {
			return 0, false
		}
		return yearsBetween(birth, s.today), true
	})
	return highline.Validate(ages, func(age int) bool {
		return age >= s.cfg.LegalAge
	}).
		WithError("Must be of legal drinking age").
		WithLogger(s.log)
}

func (s *survey) numbersPrompt() highline.Pipeline[uint64] {
	key := s.cfg.ExitKey
	p := highline.AskAs(fmt.Sprintf("Give me a number (%s to quit):", key), highline.Unsigned).
		ExitOn(key)
	if upper := strings.ToUpper(key); upper != key {
		p = p.AndOn(upper)
	}
	return p.
		WithError(fmt.Sprintf("Enter a number or '%s' to exit", key)).
		WithLogger(s.log)
}

// yearsBetween returns the number of whole years from birth to today.
func yearsBetween(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years
}

func report(w io.Writer, a answers) error {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Nice to meet you %s\n", a.Name)
	fmt.Fprintf(&b, "How does it feel to be %d?\n", a.Age)
	if !slices.Contains(a.Numbers, a.LuckyNumber) {
		fmt.Fprintf(&b, "If %d is your lucky number, why didn't you include it in the numbers you gave me?\n", a.LuckyNumber)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Your lucky number %d was chosen!\n", a.LuckyNumber)
	b.WriteString("Maybe that wasn't so lucky, you've been chosen to hack.\n")
	fmt.Fprintf(&b, "You just gave us your password: %s\n", a.Password.OrElse(""))

	_, err := io.WriteString(w, b.String())
	return err
}

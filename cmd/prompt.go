package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/msallak/tharwa"
	"github.com/msallak/tharwa/date"
)

// Prompter reads interactive answers from in and writes prompts and
// dialog messages to out. Every typed prompt loops until the answer is
// valid: the caller always receives a usable value, or an error only
// when the input stream itself fails or ends.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	v   *validator.Validate
}

// NewPrompter returns a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	v := validator.New()
	// The password policy needs checks that RE2 cannot express in a
	// single pattern (no lookaheads), hence dedicated rules.
	rules := map[string]validator.Func{
		"hasupper": func(fl validator.FieldLevel) bool {
			return strings.ContainsAny(fl.Field().String(), "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		},
		"hasdigit": func(fl validator.FieldLevel) bool {
			return strings.ContainsAny(fl.Field().String(), "0123456789")
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return &Prompter{in: bufio.NewScanner(in), out: out, v: v}
}

// Say writes one dialog line.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Line prompts for one line of text, trimmed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// NonEmpty prompts until the answer is not blank.
func (p *Prompter) NonEmpty(label string) (string, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		p.Say("%s cannot be empty!", label)
	}
}

// Positive prompts for a strictly positive number. The input is parsed
// as a decimal so values like "0.5" or "20000.00" are read exactly
// before the conversion to float64.
func (p *Prompter) Positive(label string) (float64, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		d, derr := decimal.NewFromString(s)
		if derr != nil || !d.IsPositive() {
			p.Say("Invalid %s! Enter a positive number.", strings.ToLower(label))
			continue
		}
		return d.InexactFloat64(), nil
	}
}

// Date prompts for a date in the YYYY-MM-DD format.
func (p *Prompter) Date(label string) (date.Date, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return date.Date{}, err
		}
		on, perr := date.Parse(s)
		if perr != nil {
			p.Say("Invalid date format! Use YYYY-MM-DD.")
			continue
		}
		return on, nil
	}
}

// Category prompts for one of the closed asset category set.
func (p *Prompter) Category(label string) (tharwa.Category, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return "", err
		}
		c, perr := tharwa.ParseCategory(s)
		if perr != nil {
			p.Say("Invalid asset type!")
			continue
		}
		return c, nil
	}
}

// Valid prompts until the answer passes the validator rules (a
// validator tag expression such as "required,min=8"). hint is the
// message shown on a rejected answer.
func (p *Prompter) Valid(label, rules, hint string) (string, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if verr := p.v.Var(s, rules); verr != nil {
			p.Say("%s", hint)
			continue
		}
		return s, nil
	}
}

// Package prompt reads validated field values from an interactive
// operator, one line at a time. Every reader loops until it gets a valid
// value, and every raw input passes through the cancellation gate first:
// the reserved token "End" asks for a quit confirmation, and a confirmed
// quit propagates as ErrQuitRequested through all open readers up to the
// menu loop.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"payrolldesk/payroll-processor/models"
)

// ErrQuitRequested signals that the operator entered "End" and confirmed
// they want to quit. Callers check it with errors.Is and pass it along;
// only the top-level menu absorbs it.
var ErrQuitRequested = errors.New("quit requested")

const (
	endToken = "end"
	allToken = "all"
)

// Prompter reads from an injected input source and writes prompts and
// validation messages to an injected writer, so tests can script a whole
// session.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Line prints the prompt and returns the next trimmed input line. An
// exhausted input source counts as a confirmed quit so piped sessions
// terminate cleanly.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrQuitRequested
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// YesNo keeps asking until the operator answers y/yes/n/no.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		fmt.Fprintln(p.out, "Please enter 'y' or 'n'.")
	}
}

// checkEnd is the cancellation gate. It reports whether s was the
// reserved quit token. A confirmed quit comes back as ErrQuitRequested;
// a declined one as (true, nil) so the caller re-prompts the same field.
func (p *Prompter) checkEnd(s string) (bool, error) {
	if strings.ToLower(strings.TrimSpace(s)) != endToken {
		return false, nil
	}

	quit, err := p.YesNo("You entered 'End'. Do you want to quit? (y/n): ")
	if err != nil {
		return true, err
	}
	if quit {
		return true, ErrQuitRequested
	}

	return true, nil
}

// Date reads a pay period date in the canonical mm/dd/yyyy form.
func (p *Prompter) Date(prompt string) (string, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if s == "" {
			fmt.Fprintln(p.out, "Please enter a date.")
			continue
		}

		if cancelled, gateErr := p.checkEnd(s); gateErr != nil {
			return "", gateErr
		} else if cancelled {
			continue
		}

		if !models.ValidDate(s) {
			fmt.Fprintln(p.out, "Invalid date. Use mm/dd/yyyy (for example 04/20/2025).")
			continue
		}

		return s, nil
	}
}

// ReportDate reads a report target: a literal date, or the wildcard
// token "All" covering every stored record.
func (p *Prompter) ReportDate(prompt string) (models.ReportDate, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return models.ReportDate{}, err
		}
		if s == "" {
			fmt.Fprintln(p.out, "Please enter a date or 'All'.")
			continue
		}

		if strings.ToLower(s) == allToken {
			return models.AllDates(), nil
		}

		if cancelled, gateErr := p.checkEnd(s); gateErr != nil {
			return models.ReportDate{}, gateErr
		} else if cancelled {
			continue
		}

		if !models.ValidDate(s) {
			fmt.Fprintln(p.out, "Invalid date. Use mm/dd/yyyy (for example 04/20/2025).")
			continue
		}

		return models.ExactDate(s), nil
	}
}

// Name reads any non-empty trimmed text.
func (p *Prompter) Name(prompt string) (string, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if s == "" {
			fmt.Fprintln(p.out, "Name cannot be blank.")
			continue
		}

		if cancelled, gateErr := p.checkEnd(s); gateErr != nil {
			return "", gateErr
		} else if cancelled {
			continue
		}

		return s, nil
	}
}

func (p *Prompter) Hours(prompt string) (float64, error) {
	return p.nonNegative(prompt,
		"Please enter hours.",
		"Hours must be non-negative.",
		"Enter a valid number for hours.")
}

func (p *Prompter) Rate(prompt string) (float64, error) {
	return p.nonNegative(prompt,
		"Please enter hourly rate.",
		"Hourly rate must be non-negative.",
		"Enter a valid number for hourly rate.")
}

// TaxRate reads a percent in [0,100] and returns it as a fraction.
func (p *Prompter) TaxRate(prompt string) (float64, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		if s == "" {
			fmt.Fprintln(p.out, "Please enter a tax rate.")
			continue
		}

		if cancelled, gateErr := p.checkEnd(s); gateErr != nil {
			return 0, gateErr
		} else if cancelled {
			continue
		}

		pct, parseErr := strconv.ParseFloat(s, 64)
		if parseErr != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
			fmt.Fprintln(p.out, "Enter a valid percentage for tax rate.")
			continue
		}
		if pct < 0 || pct > 100 {
			fmt.Fprintln(p.out, "Tax rate must be between 0 and 100.")
			continue
		}

		return pct / 100.0, nil
	}
}

func (p *Prompter) nonNegative(prompt, blankMsg, negativeMsg, invalidMsg string) (float64, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		if s == "" {
			fmt.Fprintln(p.out, blankMsg)
			continue
		}

		if cancelled, gateErr := p.checkEnd(s); gateErr != nil {
			return 0, gateErr
		} else if cancelled {
			continue
		}

		v, parseErr := strconv.ParseFloat(s, 64)
		if parseErr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(p.out, invalidMsg)
			continue
		}
		if v < 0 {
			fmt.Fprintln(p.out, negativeMsg)
			continue
		}

		return v, nil
	}
}

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cory-johannsen/initracker/internal/game/dice"
	"github.com/cory-johannsen/initracker/internal/records"
)

// Retry prompts shown after invalid numeric input.
const (
	RetryUint8  = "Enter a number between 0-255: "
	RetryUint16 = "Enter a number between 0-65535: "
)

// Prompter asks the user for values and re-prompts until the input is valid.
// It only returns an error when input ends or cannot be read.
type Prompter struct {
	in        *bufio.Reader
	out       io.Writer
	roller    *dice.Roller
	scoreDice dice.Expression
}

// NewPrompter creates a Prompter reading lines from in and writing prompts to
// out. A nil roller disables dice input at score prompts.
func NewPrompter(in io.Reader, out io.Writer, roller *dice.Roller, scoreDice dice.Expression) *Prompter {
	return &Prompter{
		in:        bufio.NewReader(in),
		out:       out,
		roller:    roller,
		scoreDice: scoreDice,
	}
}

// Line prints label and returns the next input line with surrounding
// whitespace removed.
//
// Lines have no length limit. A final line without a newline is still returned.
//
// Postcondition: Returns io.EOF when input is exhausted.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

// Text prompts until a non-empty line is entered.
func (p *Prompter) Text(label string) (string, error) {
	text, err := p.Line(label)
	for err == nil && text == "" {
		text, err = p.Line(label)
	}
	return text, err
}

// Uint8 prompts for a number in 0-255.
func (p *Prompter) Uint8(label string) (uint8, error) {
	n, err := p.number(label, RetryUint8, 8)
	return uint8(n), err
}

// Uint16 prompts for a number in 0-65535.
func (p *Prompter) Uint16(label string) (uint16, error) {
	n, err := p.number(label, RetryUint16, 16)
	return uint16(n), err
}

func (p *Prompter) number(label, retry string, bits int) (uint64, error) {
	text, err := p.Line(label)
	for err == nil {
		n, perr := strconv.ParseUint(text, 10, bits)
		if perr == nil {
			return n, nil
		}
		text, err = p.Line(retry)
	}
	return 0, err
}

// Score prompts for an initiative score in 0-255. Besides a plain number it
// accepts "r" or "roll", which rolls the configured score dice, or any dice
// expression such as "d20+3". Rolled totals are clamped to 0-255.
func (p *Prompter) Score(label string) (uint8, error) {
	text, err := p.Line(label)
	for err == nil {
		if n, perr := strconv.ParseUint(text, 10, 8); perr == nil {
			return uint8(n), nil
		}
		if score, ok := p.roll(text); ok {
			return score, nil
		}
		text, err = p.Line(RetryUint8)
	}
	return 0, err
}

// ScoreFor prompts for the score of an imported record, labelled with its name.
func (p *Prompter) ScoreFor(rec records.Record) (uint8, error) {
	return p.Score(rec.Name + ": ")
}

func (p *Prompter) roll(text string) (uint8, bool) {
	if p.roller == nil {
		return 0, false
	}
	var res dice.RollResult
	switch strings.ToLower(text) {
	case "r", "roll":
		res = p.roller.Roll(p.scoreDice)
	default:
		var err error
		if res, err = p.roller.RollExpr(text); err != nil {
			return 0, false
		}
	}
	fmt.Fprintf(p.out, "rolled %s\n", res)
	return uint8(min(max(res.Total(), 0), 255)), true
}

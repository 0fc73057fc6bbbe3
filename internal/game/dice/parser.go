package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	maxCount = 100
	maxSides = 1000
)

// Keep selects which dice count toward the total.
type Keep int

const (
	KeepAll Keep = iota
	KeepHighest
	KeepLowest
)

// Expression is a parsed dice expression.
//
// Invariant: 1 <= Count <= 100, 2 <= Sides <= 1000, and 1 <= KeepN < Count
// unless Keep == KeepAll.
type Expression struct {
	Raw      string
	Count    int
	Sides    int
	Modifier int
	Keep     Keep
	KeepN    int
}

var exprPattern = regexp.MustCompile(`^(\d*)d(\d+)(?:(kh|kl)(\d+))?([+-]\d+)?$`)

// Parse parses expressions of the form [N]dS[khK|klK][+M|-M], for example
// "d20", "d20+2", "2d20kh1" (advantage) and "2d20kl1-1" (disadvantage).
// Whitespace and letter case are ignored.
//
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	s := strings.ToLower(strings.Join(strings.Fields(expr), ""))
	if s == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}
	m := exprPattern.FindStringSubmatch(s)
	if m == nil {
		return Expression{}, fmt.Errorf("dice: cannot parse %q", expr)
	}

	e := Expression{Raw: s, Count: 1}
	var err error
	if m[1] != "" {
		if e.Count, err = strconv.Atoi(m[1]); err != nil || e.Count < 1 || e.Count > maxCount {
			return Expression{}, fmt.Errorf("dice: die count in %q must be 1-%d", expr, maxCount)
		}
	}
	if e.Sides, err = strconv.Atoi(m[2]); err != nil || e.Sides < 2 || e.Sides > maxSides {
		return Expression{}, fmt.Errorf("dice: die sides in %q must be 2-%d", expr, maxSides)
	}
	if m[3] != "" {
		e.Keep = KeepHighest
		if m[3] == "kl" {
			e.Keep = KeepLowest
		}
		if e.KeepN, err = strconv.Atoi(m[4]); err != nil || e.KeepN < 1 || e.KeepN >= e.Count {
			return Expression{}, fmt.Errorf("dice: keep count in %q must be at least 1 and below the die count", expr)
		}
	}
	if m[5] != "" {
		if e.Modifier, err = strconv.Atoi(m[5]); err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", expr, err)
		}
	}
	return e, nil
}

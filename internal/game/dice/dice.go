// Package dice rolls dice expressions such as "d20+3" or "2d20kh1+2".
// The console uses it to roll initiative scores on request.
package dice

import (
	"fmt"
	"strings"
)

// RollResult holds every die rolled for one expression and the ones that count.
//
// Postcondition: Total() == sum(Kept) + Modifier.
type RollResult struct {
	Expression string // original expression string, e.g. "2d20kh1+3"
	Rolled     []int  // every die in roll order
	Kept       []int  // dice counted toward the total
	Modifier   int
}

// Total returns the sum of the kept dice plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Kept {
		total += d
	}
	return total
}

// String returns an audit line such as "2d20kh1+3 → [4 17] +3 = 20".
func (r RollResult) String() string {
	parts := make([]string, len(r.Rolled))
	for i, d := range r.Rolled {
		parts[i] = fmt.Sprint(d)
	}
	return fmt.Sprintf("%s → [%s] %+d = %d", r.Expression, strings.Join(parts, " "), r.Modifier, r.Total())
}

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

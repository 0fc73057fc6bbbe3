package dice

import (
	"slices"
)

// Roll evaluates expr using src.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Rolled) == expr.Count; len(result.Kept) == expr.KeepN
// when a keep rule is set, expr.Count otherwise.
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}

	kept := slices.Clone(rolled)
	switch expr.Keep {
	case KeepHighest:
		slices.Sort(kept)
		slices.Reverse(kept)
		kept = kept[:expr.KeepN]
	case KeepLowest:
		slices.Sort(kept)
		kept = kept[:expr.KeepN]
	}

	return RollResult{
		Expression: expr.Raw,
		Rolled:     rolled,
		Kept:       kept,
		Modifier:   expr.Modifier,
	}
}

// Package initiative implements the initiative order: a roster of characters
// kept sorted by descending score, with a turn cursor that cycles through it.
package initiative

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/initracker/internal/game/character"
	"github.com/cory-johannsen/initracker/internal/records"
)

// ErrEmptyRoster is returned by operations that need at least one character.
var ErrEmptyRoster = errors.New("initiative order is empty")

// noCursor marks the cursor of an empty roster.
const noCursor = -1

// ScoreSource supplies the initiative score for an imported record, which the
// record schema does not carry.
type ScoreSource interface {
	// Score returns a score for rec. It may block on user input.
	Score(rec records.Record) (uint8, error)
}

// ScoreFunc adapts a function to ScoreSource.
type ScoreFunc func(rec records.Record) (uint8, error)

// Score calls f(rec).
func (f ScoreFunc) Score(rec records.Record) (uint8, error) { return f(rec) }

// Roster owns the characters in initiative order.
// Not safe for concurrent use; one interactive session drives it.
//
// Invariant: entries is non-increasing by Score; among equal scores, earlier
// insertions come first.
// Invariant: cursor == noCursor iff entries is empty; otherwise 0 <= cursor < len(entries).
type Roster struct {
	entries []character.Character
	cursor  int
	logger  *zap.Logger
}

// NewRoster creates an empty Roster. A nil logger disables logging.
//
// Postcondition: Len() == 0 and Current() reports false.
func NewRoster(logger *zap.Logger) *Roster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roster{cursor: noCursor, logger: logger}
}

// Len returns the number of characters in the roster.
func (r *Roster) Len() int { return len(r.entries) }

// CursorIndex returns the position of the current turn, or -1 when empty.
func (r *Roster) CursorIndex() int { return r.cursor }

// Characters returns copies of all characters, head to tail.
func (r *Roster) Characters() []character.Character {
	return slices.Clone(r.entries)
}

// Insert adds c before the first character with a strictly lower score and
// returns its position. A character with an empty ID is given one.
//
// Postcondition: the sort invariant holds; the cursor still refers to the
// character it referred to before, or to c if the roster was empty.
func (r *Roster) Insert(c character.Character) int {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	pos := len(r.entries)
	for i, e := range r.entries {
		if e.Score < c.Score {
			pos = i
			break
		}
	}
	r.entries = slices.Insert(r.entries, pos, c)

	switch {
	case r.cursor == noCursor:
		r.cursor = 0
	case pos <= r.cursor:
		r.cursor++
	}

	r.logger.Debug("character added",
		zap.String("name", c.Name),
		zap.String("id", c.ID),
		zap.Uint8("score", c.Score),
		zap.Int("position", pos),
	)
	return pos
}

// indexOf returns the position of the first character named name, or -1.
func (r *Roster) indexOf(name string) int {
	return slices.IndexFunc(r.entries, func(c character.Character) bool {
		return c.Name == name
	})
}

// Find returns a copy of the first character whose name matches exactly.
//
// Postcondition: Returns (character, true) if found, or (zero, false).
func (r *Roster) Find(name string) (character.Character, bool) {
	i := r.indexOf(name)
	if i < 0 {
		return character.Character{}, false
	}
	return r.entries[i], true
}

// Remove deletes the first character named name. Removing the character under
// the cursor moves the cursor to its successor, or to the head when it was the
// tail. A name that is not present is ignored.
//
// Postcondition: Returns ErrEmptyRoster iff the roster had no characters.
func (r *Roster) Remove(name string) error {
	if len(r.entries) == 0 {
		return ErrEmptyRoster
	}
	i := r.indexOf(name)
	if i < 0 {
		r.logger.Debug("remove: character not found", zap.String("name", name))
		return nil
	}
	id := r.entries[i].ID
	r.entries = slices.Delete(r.entries, i, i+1)

	switch {
	case len(r.entries) == 0:
		r.cursor = noCursor
	case i < r.cursor:
		r.cursor--
	case i == r.cursor && r.cursor >= len(r.entries):
		r.cursor = 0
	}

	r.logger.Debug("character removed", zap.String("name", name), zap.String("id", id), zap.Int("position", i))
	return nil
}

// Advance moves the cursor to the next character, wrapping to the head after
// the tail. No-op when empty.
func (r *Roster) Advance() {
	if len(r.entries) == 0 {
		return
	}
	r.cursor = (r.cursor + 1) % len(r.entries)
}

// ResetToHead moves the cursor to the first character. No-op when empty.
func (r *Roster) ResetToHead() {
	if len(r.entries) == 0 {
		return
	}
	r.cursor = 0
}

// Current returns a copy of the character whose turn it is.
//
// Postcondition: Returns (character, true), or (zero, false) when empty.
func (r *Roster) Current() (character.Character, bool) {
	if r.cursor == noCursor {
		return character.Character{}, false
	}
	return r.entries[r.cursor], true
}

// Damage applies amount damage to the named character.
//
// Postcondition: Returns true iff a character named name was found.
func (r *Roster) Damage(name string, amount uint16) bool {
	return r.mutate("damage", name, amount, (*character.Character).Damage)
}

// Heal restores amount hit points to the named character.
//
// Postcondition: Returns true iff a character named name was found.
func (r *Roster) Heal(name string, amount uint16) bool {
	return r.mutate("heal", name, amount, (*character.Character).Heal)
}

// GrantTemp replaces the named character's temporary hit points with amount.
//
// Postcondition: Returns true iff a character named name was found.
func (r *Roster) GrantTemp(name string, amount uint16) bool {
	return r.mutate("temp", name, amount, (*character.Character).GrantTemp)
}

func (r *Roster) mutate(op, name string, amount uint16, apply func(*character.Character, uint16)) bool {
	i := r.indexOf(name)
	if i < 0 {
		r.logger.Debug(op+": character not found", zap.String("name", name))
		return false
	}
	c := &r.entries[i]
	apply(c, amount)
	r.logger.Debug(op,
		zap.String("name", c.Name),
		zap.String("id", c.ID),
		zap.Uint16("amount", amount),
		zap.Uint16("current_hp", c.CurrentHP),
		zap.Uint16("temp_hp", c.TempHP),
	)
	return true
}

// Import asks scores for every record, in record order, and then inserts the
// resulting characters at full health.
//
// Postcondition: on error no character has been inserted.
func (r *Roster) Import(recs []records.Record, scores ScoreSource) error {
	chars := make([]character.Character, 0, len(recs))
	for _, rec := range recs {
		score, err := scores.Score(rec)
		if err != nil {
			return fmt.Errorf("scoring %q: %w", rec.Name, err)
		}
		chars = append(chars, character.New(rec.Name, rec.AC, rec.HP, score))
	}
	for _, c := range chars {
		r.Insert(c)
	}
	r.logger.Info("characters imported", zap.Int("count", len(chars)))
	return nil
}

// Export returns the roster head to tail as persisted records. Only name, AC
// and maximum HP are kept.
//
// Postcondition: Returns ErrEmptyRoster when empty.
func (r *Roster) Export() ([]records.Record, error) {
	if len(r.entries) == 0 {
		return nil, ErrEmptyRoster
	}
	recs := make([]records.Record, 0, len(r.entries))
	for _, c := range r.entries {
		recs = append(recs, records.Record{Name: c.Name, AC: c.AC, HP: c.MaxHP})
	}
	return recs, nil
}

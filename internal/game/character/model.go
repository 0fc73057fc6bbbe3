// Package character defines the combatant tracked in the initiative order and
// its hit point arithmetic.
package character

// Character represents one combatant in the initiative order.
//
// Invariant: CurrentHP <= MaxHP.
type Character struct {
	// ID is assigned by the roster on insertion and ties together the log
	// lines for one character. Lookups go by Name; ID is never exported.
	ID string

	Name string
	AC   uint8
	// Score is the initiative score. Higher acts first.
	Score uint8

	MaxHP     uint16
	CurrentHP uint16
	// TempHP absorbs damage before CurrentHP. Replaced, not stacked, by GrantTemp.
	TempHP uint16
}

// New creates a Character at full health with no temporary hit points.
//
// Postcondition: CurrentHP == maxHP and TempHP == 0.
func New(name string, ac uint8, maxHP uint16, score uint8) Character {
	return Character{
		Name:      name,
		AC:        ac,
		Score:     score,
		MaxHP:     maxHP,
		CurrentHP: maxHP,
	}
}

// Damage applies amount to temporary hit points first, then to CurrentHP.
//
// Postcondition: if TempHP > amount on entry, only TempHP is reduced;
// otherwise TempHP == 0 and CurrentHP is reduced by the remainder, flooring at zero.
func (c *Character) Damage(amount uint16) {
	if c.TempHP > amount {
		c.TempHP -= amount
		return
	}
	amount -= c.TempHP
	c.TempHP = 0

	if c.CurrentHP < amount {
		c.CurrentHP = 0
		return
	}
	c.CurrentHP -= amount
}

// Heal restores amount hit points, capped at MaxHP. TempHP is untouched.
//
// Postcondition: CurrentHP == min(MaxHP, CurrentHP + amount).
func (c *Character) Heal(amount uint16) {
	healed := uint32(c.CurrentHP) + uint32(amount)
	if healed > uint32(c.MaxHP) {
		healed = uint32(c.MaxHP)
	}
	c.CurrentHP = uint16(healed)
}

// GrantTemp replaces the temporary hit point buffer with amount.
//
// Postcondition: TempHP == amount.
func (c *Character) GrantTemp(amount uint16) {
	c.TempHP = amount
}

// IsDown reports whether the character has no hit points left.
func (c Character) IsDown() bool { return c.CurrentHP == 0 }

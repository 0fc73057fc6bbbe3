package console

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cory-johannsen/initracker/internal/game/character"
)

// EmptyRosterText is printed in place of panels when nobody is tracked.
const EmptyRosterText = "Initiative order is empty"

// Renderer draws characters as boxed text panels.
type Renderer struct {
	// MinWidth is the smallest inner width of a panel.
	MinWidth int
	// Color enables ANSI colors; padding is computed on the uncolored text.
	Color bool
}

// Panel renders c as a box showing name, HP (with temporary HP when nonzero),
// AC and initiative score.
//
// Postcondition: Every line has the same display width; the result ends with a newline.
func (r Renderer) Panel(c character.Character) string {
	hp := fmt.Sprintf(" HP %d/%d", c.CurrentHP, c.MaxHP)
	if c.TempHP > 0 {
		hp += fmt.Sprintf(" + %d", c.TempHP)
	}
	ac := fmt.Sprintf(" AC %d", c.AC)
	score := fmt.Sprintf(" Init %d", c.Score)
	nameLen := utf8.RuneCountInString(c.Name)

	width := max(r.MinWidth, nameLen+2, len(hp)+1, len(ac)+1, len(score)+1)
	left := (width - nameLen) / 2
	right := width - nameLen - left

	name, hpText := c.Name, hp
	if r.Color {
		name = Colorize(BrightYellow, name)
		if c.IsDown() {
			hpText = Colorize(Red, hp)
		}
	}

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", width) + "┐\n")
	b.WriteString("│" + strings.Repeat(" ", left) + name + strings.Repeat(" ", right) + "│\n")
	b.WriteString("│" + hpText + strings.Repeat(" ", width-len(hp)) + "│\n")
	b.WriteString("│" + ac + strings.Repeat(" ", width-len(ac)) + "│\n")
	b.WriteString("│" + score + strings.Repeat(" ", width-len(score)) + "│\n")
	b.WriteString("└" + strings.Repeat("─", width) + "┘\n")
	return b.String()
}

// Roster renders every character head to tail, separated by blank lines, or
// EmptyRosterText when chars is empty.
func (r Renderer) Roster(chars []character.Character) string {
	if len(chars) == 0 {
		return EmptyRosterText + "\n"
	}
	panels := make([]string, len(chars))
	for i, c := range chars {
		panels[i] = r.Panel(c)
	}
	return strings.Join(panels, "\n")
}

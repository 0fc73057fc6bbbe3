package console_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/initracker/internal/console"
	"github.com/cory-johannsen/initracker/internal/game/character"
)

func TestRenderer_Panel(t *testing.T) {
	r := console.Renderer{MinWidth: 15}
	want := "" +
		"┌───────────────┐\n" +
		"│    Goblin     │\n" +
		"│ HP 7/7        │\n" +
		"│ AC 15         │\n" +
		"│ Init 12       │\n" +
		"└───────────────┘\n"
	assert.Equal(t, want, r.Panel(character.New("Goblin", 15, 7, 12)))
}

func TestRenderer_Panel_ShowsTemp(t *testing.T) {
	r := console.Renderer{MinWidth: 15}
	c := character.New("Goblin", 15, 7, 12)
	c.GrantTemp(3)
	assert.Contains(t, r.Panel(c), "│ HP 7/7 + 3    │")
}

func TestRenderer_Panel_GrowsForLongName(t *testing.T) {
	r := console.Renderer{MinWidth: 15}
	p := r.Panel(character.New("Ancient Red Dragon Wyrm", 22, 546, 20))
	lines := strings.Split(strings.TrimSuffix(p, "\n"), "\n")
	assert.Equal(t, "┌"+strings.Repeat("─", 25)+"┐", lines[0])
	assert.Equal(t, "│ Ancient Red Dragon Wyrm │", lines[1])
}

func TestRenderer_Panel_Color(t *testing.T) {
	r := console.Renderer{MinWidth: 15, Color: true}
	c := character.New("Goblin", 15, 7, 12)
	c.Damage(7)
	p := r.Panel(c)
	assert.Contains(t, p, console.Colorize(console.BrightYellow, "Goblin"))
	assert.Contains(t, p, console.Colorize(console.Red, " HP 0/7")+strings.Repeat(" ", 8)+"│")
}

func TestRenderer_Roster(t *testing.T) {
	r := console.Renderer{MinWidth: 15}
	assert.Equal(t, console.EmptyRosterText+"\n", r.Roster(nil))

	a := character.New("A", 10, 10, 2)
	b := character.New("B", 10, 10, 1)
	assert.Equal(t, r.Panel(a)+"\n"+r.Panel(b), r.Roster([]character.Character{a, b}))
}

func TestRenderer_Property_LinesHaveEqualWidth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := console.Renderer{MinWidth: rapid.IntRange(0, 40).Draw(rt, "min_width")}
		c := character.New(
			rapid.StringMatching(`[A-Za-zé ]{0,30}`).Draw(rt, "name"),
			rapid.Uint8().Draw(rt, "ac"),
			rapid.Uint16().Draw(rt, "hp"),
			rapid.Uint8().Draw(rt, "score"),
		)
		c.GrantTemp(rapid.Uint16().Draw(rt, "temp"))

		lines := strings.Split(strings.TrimSuffix(r.Panel(c), "\n"), "\n")
		assert.Len(rt, lines, 6)
		width := utf8.RuneCountInString(lines[0])
		for i, l := range lines {
			assert.Equal(rt, width, utf8.RuneCountInString(l), "line %d: %q", i, l)
		}
	})
}

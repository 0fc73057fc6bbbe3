package command

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	result := Parse("   ")
	assert.Equal(t, "", result.Command)
	assert.Nil(t, result.Args)
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("next")
	assert.Equal(t, "next", result.Command)
	assert.Nil(t, result.Args)
	assert.Equal(t, "", result.RawArgs)
}

func TestParse_Lowercase(t *testing.T) {
	result := Parse("DISPLAY")
	assert.Equal(t, "display", result.Command)
}

func TestParse_ArgsKeepCase(t *testing.T) {
	result := Parse("Show Goblin Boss")
	assert.Equal(t, "show", result.Command)
	assert.Equal(t, []string{"Goblin", "Boss"}, result.Args)
	assert.Equal(t, "Goblin Boss", result.RawArgs)
}

func TestParse_ExtraWhitespace(t *testing.T) {
	result := Parse("  import   my   party.json  ")
	assert.Equal(t, "import", result.Command)
	assert.Equal(t, []string{"my", "party.json"}, result.Args)
	assert.Equal(t, "my   party.json", result.RawArgs)
}

func TestNameAmount(t *testing.T) {
	tests := []struct {
		line   string
		name   string
		amount uint16
		ok     bool
	}{
		{"damage Goblin 5", "Goblin", 5, true},
		{"damage Goblin  Boss 12", "Goblin  Boss", 12, true},
		{"heal Aria 65535", "Aria", 65535, true},
		{"heal Aria 65536", "", 0, false},
		{"heal Aria -1", "", 0, false},
		{"heal Aria", "", 0, false},
		{"heal", "", 0, false},
		{"temp Aria five", "", 0, false},
	}
	for _, tc := range tests {
		name, amount, ok := Parse(tc.line).NameAmount()
		assert.Equal(t, tc.ok, ok, "line=%q", tc.line)
		assert.Equal(t, tc.name, name, "line=%q", tc.line)
		assert.Equal(t, tc.amount, amount, "line=%q", tc.line)
	}
}

func TestPropertyParseAlwaysLowercasesCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[A-Za-z]{1,20}`).Draw(t, "word")
		result := Parse(word)
		for _, c := range result.Command {
			if c >= 'A' && c <= 'Z' {
				t.Fatalf("command %q contains uppercase char in Parse result %q", word, result.Command)
			}
		}
	})
}

func TestPropertyNameAmountRecoversInputs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z]{1,8}( [A-Za-z]{1,8}){0,2}`).Draw(t, "name")
		amount := rapid.Uint16().Draw(t, "amount")
		line := "damage " + name + " " + strconv.Itoa(int(amount))

		gotName, gotAmount, ok := Parse(line).NameAmount()
		assert.True(t, ok)
		assert.Equal(t, name, gotName)
		assert.Equal(t, amount, gotAmount)
	})
}

package console_test

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/initracker/internal/console"
	"github.com/cory-johannsen/initracker/internal/game/dice"
	"github.com/cory-johannsen/initracker/internal/records"
)

func TestPrompter_Line(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("  hello world  \n"), &out, nil, dice.Expression{})

	got, err := p.Line("Say: ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Say: ", out.String())

	_, err = p.Line("Again: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Line_FinalLineWithoutNewline(t *testing.T) {
	p := console.NewPrompter(strings.NewReader("first\nlast"), io.Discard, nil, dice.Expression{})

	got, err := p.Line("")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
	got, err = p.Line("")
	require.NoError(t, err)
	assert.Equal(t, "last", got)
	_, err = p.Line("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Line_NoLengthLimit(t *testing.T) {
	long := strings.Repeat("a", 200000)
	p := console.NewPrompter(strings.NewReader(long+"\nnext\n"), io.Discard, nil, dice.Expression{})

	got, err := p.Line("")
	require.NoError(t, err)
	assert.Len(t, got, len(long))
	got, err = p.Line("")
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestPrompter_Score_RollsTypedExpression(t *testing.T) {
	var out bytes.Buffer
	roller := dice.NewLoggedRoller(constSource(4), zap.NewNop())
	p := console.NewPrompter(strings.NewReader("2d6+1\n"), &out, roller, mustDice("d20"))
	score, err := p.Score("Score: ")
	require.NoError(t, err)
	assert.Equal(t, uint8(11), score)
	assert.Contains(t, out.String(), "rolled 2d6+1")
}

func TestPrompter_Uint16_EOFWhileRetrying(t *testing.T) {
	p := console.NewPrompter(strings.NewReader("nope\n"), io.Discard, nil, dice.Expression{})
	_, err := p.Uint16("HP: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Score_DiceDisabledWithoutRoller(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("roll\n7\n"), &out, nil, mustDice("d20"))
	score, err := p.Score("Score: ")
	require.NoError(t, err)
	assert.Equal(t, uint8(7), score)
	assert.Contains(t, out.String(), console.RetryUint8)
}

func TestPrompter_Score_ClampsHighRolls(t *testing.T) {
	roller := dice.NewLoggedRoller(constSource(999), zap.NewNop())
	p := console.NewPrompter(strings.NewReader("3d1000\n"), io.Discard, roller, mustDice("d20"))
	score, err := p.Score("Score: ")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), score)
}

func TestPrompter_ScoreFor_LabelsWithName(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("11\n"), &out, nil, dice.Expression{})
	score, err := p.ScoreFor(records.Record{Name: "Goblin"})
	require.NoError(t, err)
	assert.Equal(t, uint8(11), score)
	assert.Equal(t, "Goblin: ", out.String())
}

func TestPrompter_Property_Uint8AcceptsOnlyValidRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(-300, 600).Draw(rt, "n")
		input := strings.NewReader(strings.Join([]string{strconv.Itoa(n), "42"}, "\n") + "\n")
		p := console.NewPrompter(input, io.Discard, nil, dice.Expression{})

		got, err := p.Uint8("AC: ")
		require.NoError(rt, err)
		if n >= 0 && n <= 255 {
			assert.Equal(rt, uint8(n), got)
		} else {
			assert.Equal(rt, uint8(42), got)
		}
	})
}

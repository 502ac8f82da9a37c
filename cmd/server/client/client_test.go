package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-session-api/internal/dice"
)

func TestParseSpec(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    dice.Spec
		wantErr bool
	}{
		{name: "empty", input: "", want: dice.Spec{}},
		{name: "single die", input: "d20", want: dice.Spec{Dice: []dice.Die{dice.D20}}},
		{name: "die plus modifier", input: "d20+5", want: dice.Spec{Dice: []dice.Die{dice.D20}, Modifier: 5}},
		{name: "counted dice", input: "2d6+3", want: dice.Spec{Dice: []dice.Die{dice.D6, dice.D6}, Modifier: 3}},
		{name: "mixed dice", input: "d8+d6", want: dice.Spec{Dice: []dice.Die{dice.D8, dice.D6}}},
		{name: "negative modifier", input: "D20-1", want: dice.Spec{Dice: []dice.Die{dice.D20}, Modifier: -1}},
		{name: "modifier only", input: "4", want: dice.Spec{Modifier: 4}},
		{name: "unsupported die", input: "d7", wantErr: true},
		{name: "bad count", input: "0d6", wantErr: true},
		{name: "garbage", input: "fireball", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSpec(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Package dice resolves dice specs (a list of dice plus a flat modifier)
// on top of the rpg-toolkit roller.
package dice

import (
	"fmt"
	"strings"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// Die is one of the supported dice kinds, written as "d20"
type Die string

// Supported dice
const (
	D4   Die = "d4"
	D6   Die = "d6"
	D8   Die = "d8"
	D10  Die = "d10"
	D12  Die = "d12"
	D20  Die = "d20"
	D100 Die = "d100"
)

var faces = map[Die]int{
	D4:   4,
	D6:   6,
	D8:   8,
	D10:  10,
	D12:  12,
	D20:  20,
	D100: 100,
}

// Faces returns the face count, or false for an unsupported die
func (d Die) Faces() (int, bool) {
	n, ok := faces[d]
	return n, ok
}

// ParseDie accepts "d20", "D20" or "20"
func ParseDie(s string) (Die, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(normalized, "d") {
		normalized = "d" + normalized
	}
	d := Die(normalized)
	if _, ok := d.Faces(); !ok {
		return "", errors.InvalidDiceSpec(fmt.Sprintf("unsupported die %q", s))
	}
	return d, nil
}

// Spec is an ordered list of dice plus a modifier that may be negative
type Spec struct {
	Dice     []Die `json:"dice"`
	Modifier int32 `json:"modifier"`
}

// Validate rejects an empty list or an unsupported die
func (s Spec) Validate() error {
	if len(s.Dice) == 0 {
		return errors.InvalidDiceSpec("at least one die is required")
	}
	for i, d := range s.Dice {
		if _, ok := d.Faces(); !ok {
			return errors.InvalidDiceSpec(fmt.Sprintf("unsupported die %q at position %d", d, i))
		}
	}
	return nil
}

// String renders a Spec as "d20+d6+3"
func (s Spec) String() string {
	parts := make([]string, 0, len(s.Dice))
	for _, d := range s.Dice {
		parts = append(parts, string(d))
	}
	out := strings.Join(parts, "+")
	switch {
	case s.Modifier > 0:
		out += fmt.Sprintf("+%d", s.Modifier)
	case s.Modifier < 0:
		out += fmt.Sprintf("%d", s.Modifier)
	}
	return out
}

// DieResult is the outcome of a single die
type DieResult struct {
	Die   Die   `json:"die"`
	Value int32 `json:"value"`
}

// Result is a resolved spec: every individual die, the modifier, and the total
type Result struct {
	Rolls    []DieResult `json:"rolls"`
	Modifier int32       `json:"modifier"`
	Total    int32       `json:"total"`
}

// Values returns the individual die values in roll order
func (r *Result) Values() []int32 {
	out := make([]int32, len(r.Rolls))
	for i, roll := range r.Rolls {
		out[i] = roll.Value
	}
	return out
}

// Roll resolves spec with one independent roll per die
func Roll(roller toolkitdice.Roller, spec Spec) (*Result, error) {
	if roller == nil {
		return nil, errors.Internal("dice roller is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Rolls:    make([]DieResult, 0, len(spec.Dice)),
		Modifier: spec.Modifier,
		Total:    spec.Modifier,
	}

	for _, d := range spec.Dice {
		n, _ := d.Faces()
		value, err := roller.Roll(n)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", d)
		}
		if value < 1 || value > n {
			return nil, errors.Internalf("roller returned %d for %s", value, d)
		}
		result.Rolls = append(result.Rolls, DieResult{Die: d, Value: int32(value)})
		result.Total += int32(value)
	}

	return result, nil
}

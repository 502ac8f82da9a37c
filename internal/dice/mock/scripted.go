// Package mockdice provides a roller that replays predetermined results
package mockdice

import (
	"fmt"
	"sync"
)

// ScriptedRoller replays queued values in order. It errors once the script
// runs out or when a value does not fit the requested die.
type ScriptedRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewScriptedRoller creates a roller primed with rolls
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// SetRolls replaces the script and rewinds it
func (m *ScriptedRoller) SetRolls(rolls ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Remaining reports how many scripted values are still unused
func (m *ScriptedRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ScriptedRoller) next(size int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	if roll < 1 || roll > size {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, size)
	}
	m.rollIndex++
	return roll, nil
}

// Roll returns the next scripted value
func (m *ScriptedRoller) Roll(size int) (int, error) {
	return m.next(size)
}

// RollN returns the next count scripted values
func (m *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := m.next(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

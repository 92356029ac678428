package dice

import (
	"fmt"
	"sync"
)

// MockRoller implements Roller for testing with predetermined results
type MockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewMockRoller creates a new mock dice roller
func NewMockRoller() *MockRoller {
	return &MockRoller{
		rolls: []int{},
	}
}

// SetRolls sets the predetermined roll results
func (m *MockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *MockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

func (m *MockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements Roller.Roll using predetermined results
func (m *MockRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid dice count")
	}

	out := make([]int, count)
	total := 0
	highest, lowest := 0, 0
	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		out[i] = roll
		total += roll
		if i == 0 {
			highest, lowest = roll, roll
		}
		if roll > highest {
			highest = roll
		}
		if roll < lowest {
			lowest = roll
		}
	}

	return &RollResult{
		Total:   total + bonus,
		Highest: highest,
		Lowest:  lowest,
		Rolls:   out,
		Bonus:   bonus,
	}, nil
}

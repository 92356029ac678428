package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

type RollResult struct {
	Total   int
	Highest int
	Lowest  int
	Rolls   []int
	Bonus   int
}

func Roll(count, size, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if size < 1 {
		return nil, errors.New("invalid dice size")
	}

	maxValue, minValue, total := 0, 0, 0

	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(size) + 1
		total += roll
		if i == 0 {
			minValue = roll
			maxValue = roll
		}

		if minValue > roll {
			minValue = roll
		}

		if maxValue < roll {
			maxValue = roll
		}

		out[i] = roll
	}

	return &RollResult{
		Total:   total + bonus,
		Highest: maxValue,
		Lowest:  minValue,
		Rolls:   out,
		Bonus:   bonus,
	}, nil
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}

package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Split labels one tuning document's subset membership.
type Split string

const (
	SplitTrain      Split = "train"
	SplitValidation Split = "validation"
	SplitTest       Split = "test"
)

// validSplits is the closed label set accepted on load.
var validSplits = map[Split]bool{
	SplitTrain:      true,
	SplitValidation: true,
	SplitTest:       true,
}

// ErrInvalidProportions is returned when split proportions are out of range
// or do not sum to 1.
var ErrInvalidProportions = errors.New("invalid split proportions")

// proportionSumTolerance absorbs float accumulation noise when checking that
// proportions sum to 1.
const proportionSumTolerance = 1e-9

// Proportions holds the train/validation/test allocation weights. Each must
// be strictly between 0 and 1 and together they must sum to 1.
type Proportions struct {
	Train      float64
	Validation float64
	Test       float64
}

// DefaultProportions is the 60/20/20 split used when none is configured.
func DefaultProportions() Proportions {
	return Proportions{Train: 0.6, Validation: 0.2, Test: 0.2}
}

// Validate checks the range and sum constraints.
func (p Proportions) Validate() error {
	for _, part := range []struct {
		name  string
		value float64
	}{
		{"train", p.Train},
		{"validation", p.Validation},
		{"test", p.Test},
	} {
		if part.value <= 0 || part.value >= 1 {
			return fmt.Errorf("%w: %s proportion %v must be in (0, 1)", ErrInvalidProportions, part.name, part.value)
		}
	}
	if math.Abs(p.Train+p.Validation+p.Test-1) > proportionSumTolerance {
		return fmt.Errorf("%w: proportions must sum up to 1, got %v", ErrInvalidProportions, p.Train+p.Validation+p.Test)
	}
	return nil
}

// Allocator draws split labels from a seeded source. One allocator serves one
// corpus build; reusing the same seed reproduces the same label sequence.
type Allocator struct {
	rng         *rand.Rand
	proportions Proportions
}

// NewAllocator builds an allocator over validated proportions. Seed 0 is the
// conventional default for reproducible corpora.
func NewAllocator(seed int64, proportions Proportions) (*Allocator, error) {
	if err := proportions.Validate(); err != nil {
		return nil, err
	}
	return &Allocator{
		rng:         rand.New(rand.NewSource(seed)),
		proportions: proportions,
	}, nil
}

// Draw returns the next split label, weighted by the proportions. Draws are
// independent; nothing guarantees exact subset sizes.
func (a *Allocator) Draw() Split {
	roll := a.rng.Float64()
	switch {
	case roll < a.proportions.Train:
		return SplitTrain
	case roll < a.proportions.Train+a.proportions.Validation:
		return SplitValidation
	default:
		return SplitTest
	}
}

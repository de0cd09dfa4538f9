package registry

import (
	"errors"
	"fmt"
	"sort"
)

// ErrPercentOutOfRange is returned when a percent cannot be placed on a
// variant's grade scale.
var ErrPercentOutOfRange = errors.New("percent out of range")

// GradeIndex returns the largest i such that boundaries[i] <= percent.
// Boundaries are inclusive: a percent exactly on a boundary gets that tier.
func GradeIndex(boundaries []float64, percent float64) (int, error) {
	if !isFinite(percent) || len(boundaries) == 0 || percent < boundaries[0] {
		return -1, fmt.Errorf("%w: %v", ErrPercentOutOfRange, percent)
	}
	// first index strictly above percent, minus one
	i := sort.Search(len(boundaries), func(i int) bool {
		return boundaries[i] > percent
	})
	return i - 1, nil
}

func percentError(percent, max float64) error {
	return fmt.Errorf("%w: %v exceeds maximum %v", ErrPercentOutOfRange, percent, max)
}

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultCapacity is the capacity of every edge when no WithCapacityFn is given.
	DefaultCapacity int64 = 1
	// DefaultCost is the cost of every edge when no WithCostFn is given.
	DefaultCost int64 = 1
)

// WeightFn produces an integer edge attribute (capacity or cost) from an
// optional *rand.Rand. It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always yields value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max] inclusive.
// Panics if max < min. With a nil rng it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

package npn

import (
	"math"

	"github.com/samber/lo"
)

type permutationGenerator interface {
	// Builds every assignment of the domains that holds all the constraints, in lexicographic order.
	// Constraints must take into account that if permutation[i] is math.MaxUint64 then position i is not assigned yet.
	//
	// Example:
	//
	//	generator := newPermutationGenerator(3)
	//
	//	permutations := generator.ConstrainedPermutations([]func(permutation []uint64) bool{
	//				func(permutation []uint64) bool {
	//					// Keep variable 2 away from position 0
	//					return permutation[0] == math.MaxUint64 || permutation[0] != 2
	//				},
	//			})
	ConstrainedPermutations(constraints []func(permutation []uint64) bool) [][]uint64
}

type permutationGeneratorImplementation struct {
	domains []uint64
}

// Returns a generator over size positions, each one ranging over {0, ..., size-1}
func newPermutationGenerator(size uint64) permutationGenerator {
	return &permutationGeneratorImplementation{
		domains: lo.Times(int(size), func(_ int) uint64 { return size }),
	}
}

func (generator *permutationGeneratorImplementation) ConstrainedPermutations(constraints []func(permutation []uint64) bool) [][]uint64 {
	permutations := make([][]uint64, 0)
	permutation := lo.Times(len(generator.domains), func(_ int) uint64 { return math.MaxUint64 })
	generator.constrainedPermutations(constraints, 0, permutation, &permutations)
	return permutations
}

func (generator *permutationGeneratorImplementation) constrainedPermutations(
	constraints []func(permutation []uint64) bool,
	currentDomain uint64,
	permutation []uint64,
	permutations *[][]uint64) {

	if currentDomain >= uint64(len(generator.domains)) {
		permutationCopy := make([]uint64, len(permutation))
		copy(permutationCopy, permutation)
		*permutations = append(*permutations, permutationCopy)
		return
	}

	for i := uint64(0); i < generator.domains[currentDomain]; i++ {
		permutation[currentDomain] = i
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(permutation) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		generator.constrainedPermutations(constraints, currentDomain+1, permutation, permutations)
	}

	permutation[currentDomain] = math.MaxUint64
}

// Holds while no two assigned positions share a value
func distinct(permutation []uint64) bool {
	assigned := lo.Filter(permutation, func(value uint64, _ int) bool { return value != math.MaxUint64 })
	return len(lo.Uniq(assigned)) == len(assigned)
}

// Permutations returns all n! bijections on {0, ..., n-1} in lexicographic order
func Permutations(n int) [][]int {
	generator := newPermutationGenerator(uint64(n))
	permutations := generator.ConstrainedPermutations([]func(permutation []uint64) bool{distinct})
	return lo.Map(permutations, func(permutation []uint64, _ int) []int {
		return lo.Map(permutation, func(value uint64, _ int) int { return int(value) })
	})
}

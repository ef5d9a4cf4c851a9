package npn

import (
	"errors"
	"fmt"
	"slices"

	"github.com/limaJavier/npnclass/pkg/truthtable"
	"github.com/samber/lo"
)

var ErrInvalidTransform = errors.New("invalid transform")

// Transform is one element of the NPN group.
//
// Applied to t it yields the function r with r(x) = OutputNegation XOR t(y),
// where y[Permutation[j]] = x[j] XOR InputNegations[Permutation[j]] for every position j.
type Transform struct {
	// Bit v set means variable v of the source function is complemented
	InputNegations uint32
	// Position j of the result reads variable Permutation[j] of the source function
	Permutation    []int
	OutputNegation bool
}

// Identity returns the transform that maps every n-variable function onto itself
func Identity(numVars int) Transform {
	return Transform{Permutation: lo.Range(numVars)}
}

func (g Transform) NumVars() int {
	return len(g.Permutation)
}

// Validate checks that the permutation is a bijection on {0, ..., numVars-1} and that
// no negation bit refers to a missing variable
func (g Transform) Validate(numVars int) error {
	if len(g.Permutation) != numVars {
		return fmt.Errorf("permutation of %d elements for %d variables: %w", len(g.Permutation), numVars, ErrInvalidTransform)
	}
	if numVars < 32 && g.InputNegations>>numVars != 0 {
		return fmt.Errorf("negation mask %#b for %d variables: %w", g.InputNegations, numVars, ErrInvalidTransform)
	}
	seen := make([]bool, numVars)
	for _, v := range g.Permutation {
		if v < 0 || v >= numVars || seen[v] {
			return fmt.Errorf("permutation %v is not a bijection: %w", g.Permutation, ErrInvalidTransform)
		}
		seen[v] = true
	}
	return nil
}

// Inverse returns h such that Apply(Apply(t, g), h) == t
func (g Transform) Inverse() Transform {
	inverse := Transform{
		Permutation:    make([]int, len(g.Permutation)),
		OutputNegation: g.OutputNegation,
	}
	for j, v := range g.Permutation {
		inverse.Permutation[v] = j
	}
	for m, v := range g.Permutation {
		if (g.InputNegations>>v)&1 == 1 {
			inverse.InputNegations |= 1 << m
		}
	}
	return inverse
}

func (g Transform) Equal(h Transform) bool {
	return g.InputNegations == h.InputNegations &&
		g.OutputNegation == h.OutputNegation &&
		slices.Equal(g.Permutation, h.Permutation)
}

func (g Transform) String() string {
	return fmt.Sprintf("neg=%0*b perm=%v out=%v", max(1, len(g.Permutation)), g.InputNegations, g.Permutation, lo.Ternary(g.OutputNegation, 1, 0))
}

// Apply computes the image of t under g; t is left untouched
func Apply(t truthtable.TruthTable, g Transform) (truthtable.TruthTable, error) {
	if err := g.Validate(t.NumVars()); err != nil {
		return nil, err
	}

	source := truthtable.Words(t)
	image := make([]uint64, len(source))
	permutation := permutationMap(g.Permutation)
	negations := uint64(g.InputNegations)
	for x := range t.NumBits() {
		y := permutation[x] ^ negations
		if (source[y/truthtable.WordBits]>>(y%truthtable.WordBits))&1 == 1 {
			image[x/truthtable.WordBits] |= 1 << (x % truthtable.WordBits)
		}
	}

	result := t.Blank()
	for i, word := range image {
		if g.OutputNegation {
			word = ^word
		}
		result.SetWord(i, word)
	}
	return result, nil
}

// permutationMap returns, for every input assignment x, the assignment y with y[permutation[j]] = x[j]
func permutationMap(permutation []int) []uint64 {
	size := uint64(1) << len(permutation)
	mapping := make([]uint64, size)
	for x := range size {
		var y uint64
		for j, v := range permutation {
			y |= ((x >> j) & 1) << v
		}
		mapping[x] = y
	}
	return mapping
}

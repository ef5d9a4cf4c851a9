package npn

import (
	"fmt"
	"slices"
	"sync"

	"github.com/limaJavier/npnclass/pkg/truthtable"
	"github.com/samber/lo"
)

// Mode selects the transform group searched by a Canonicalizer
type Mode int

const (
	// Input negations x permutations x output negation (2^n * n! * 2 elements)
	ModeNPN Mode = iota
	// Permutations only (n! elements)
	ModeP
)

func (mode Mode) String() string {
	switch mode {
	case ModeNPN:
		return "npn"
	case ModeP:
		return "p"
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

// Widest function the exhaustive search accepts. Index maps are stored as uint8, which caps it at 8.
const MaxCanonicalVars = truthtable.MaxStaticVars

const canonicalWords = 1 << (MaxCanonicalVars - 6)

// CanonicalResult pairs the class representative with the transform mapping the input onto it
type CanonicalResult struct {
	Representative truthtable.TruthTable
	Transform      Transform
}

// Canonicalizer searches a transform group exhaustively for the smallest image of a function.
//
// Images are compared as unsigned integers (truthtable.Compare). Among equal images the earliest
// transform wins, in the order: input negation mask ascending, then permutation in lexicographic
// order, then output polarity (positive first).
//
// A Canonicalizer is immutable once built and safe for concurrent use.
type Canonicalizer struct {
	numVars      int
	mode         Mode
	permutations [][]int
	maps         [][]uint8 // maps[k][x] is the assignment read by position x under permutations[k]
	polarities   uint64
	outputs      uint64
	indexer      indexer
}

func NewCanonicalizer(numVars int, mode Mode) (*Canonicalizer, error) {
	if numVars < 0 || numVars > MaxCanonicalVars {
		return nil, fmt.Errorf("exhaustive canonization of %d variables (limit %d): %w", numVars, MaxCanonicalVars, truthtable.ErrTooManyVars)
	}
	if mode != ModeNPN && mode != ModeP {
		return nil, fmt.Errorf("unknown canonization mode %v", mode)
	}

	permutations := Permutations(numVars)
	canonicalizer := &Canonicalizer{
		numVars:      numVars,
		mode:         mode,
		permutations: permutations,
		maps: lo.Map(permutations, func(permutation []int, _ int) []uint8 {
			return lo.Map(permutationMap(permutation), func(y uint64, _ int) uint8 { return uint8(y) })
		}),
		polarities: 1,
		outputs:    1,
	}
	if mode == ModeNPN {
		canonicalizer.polarities = uint64(1) << numVars
		canonicalizer.outputs = 2
	}
	canonicalizer.indexer = newIndexer(canonicalizer.polarities, uint64(len(permutations)), canonicalizer.outputs)
	return canonicalizer, nil
}

func (c *Canonicalizer) NumVars() int {
	return c.numVars
}

func (c *Canonicalizer) Mode() Mode {
	return c.mode
}

// Size returns the number of transforms in the searched group
func (c *Canonicalizer) Size() uint64 {
	return c.polarities * uint64(len(c.permutations)) * c.outputs
}

// TransformAt returns the index-th transform of the search order
func (c *Canonicalizer) TransformAt(index uint64) Transform {
	polarity, permutation, output := c.indexer.Attributes(index)
	return Transform{
		InputNegations: uint32(polarity),
		Permutation:    slices.Clone(c.permutations[permutation]),
		OutputNegation: output == 1,
	}
}

// Canonicalize returns the class representative of t and the transform producing it from t.
// A 0-variable function is its own representative (identity transform).
func (c *Canonicalizer) Canonicalize(t truthtable.TruthTable) (CanonicalResult, error) {
	if t.NumVars() != c.numVars {
		return CanonicalResult{}, fmt.Errorf("%d-variable canonicalizer got %d variables: %w", c.numVars, t.NumVars(), truthtable.ErrDimensionMismatch)
	}
	if c.numVars == 0 {
		return CanonicalResult{Representative: t.Clone(), Transform: Identity(0)}, nil
	}

	words := t.NumWords()
	var source, candidate, image, best [canonicalWords]uint64
	for i := range words {
		source[i] = t.Word(i)
	}
	mask := ^uint64(0)
	if c.numVars < 6 {
		mask = (uint64(1) << (uint64(1) << c.numVars)) - 1
	}

	var bestIndex uint64
	found := false
	size := t.NumBits()
	for polarity := range c.polarities {
		for k, mapping := range c.maps {
			candidate = [canonicalWords]uint64{}
			for x := range size {
				y := uint64(mapping[x]) ^ polarity
				candidate[x/truthtable.WordBits] |= ((source[y/truthtable.WordBits] >> (y % truthtable.WordBits)) & 1) << (x % truthtable.WordBits)
			}

			for output := range c.outputs {
				image = candidate
				if output == 1 {
					for i := range words {
						image[i] = ^image[i]
					}
					image[words-1] &= mask
				}
				if !found || less(image[:words], best[:words]) {
					best = image
					bestIndex = c.indexer.Index(polarity, uint64(k), output)
					found = true
				}
			}
		}
	}

	representative := t.Blank()
	for i := range words {
		representative.SetWord(i, best[i])
	}
	return CanonicalResult{Representative: representative, Transform: c.TransformAt(bestIndex)}, nil
}

// Unsigned comparison, most significant word first
func less(a, b []uint64) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

type canonicalizerKey struct {
	numVars int
	mode    Mode
}

var canonicalizers sync.Map

func cachedCanonicalizer(numVars int, mode Mode) (*Canonicalizer, error) {
	key := canonicalizerKey{numVars, mode}
	if c, ok := canonicalizers.Load(key); ok {
		return c.(*Canonicalizer), nil
	}
	c, err := NewCanonicalizer(numVars, mode)
	if err != nil {
		return nil, err
	}
	actual, _ := canonicalizers.LoadOrStore(key, c)
	return actual.(*Canonicalizer), nil
}

// ExactNPN canonicalizes t over the full NPN group
func ExactNPN(t truthtable.TruthTable) (CanonicalResult, error) {
	c, err := cachedCanonicalizer(t.NumVars(), ModeNPN)
	if err != nil {
		return CanonicalResult{}, err
	}
	return c.Canonicalize(t)
}

// ExactP canonicalizes t over input permutations only
func ExactP(t truthtable.TruthTable) (CanonicalResult, error) {
	c, err := cachedCanonicalizer(t.NumVars(), ModeP)
	if err != nil {
		return CanonicalResult{}, err
	}
	return c.Canonicalize(t)
}

// Equivalent reports whether a and b belong to the same class of the given group
func Equivalent(a, b truthtable.TruthTable, mode Mode) (bool, error) {
	if a.NumVars() != b.NumVars() {
		return false, nil
	}
	c, err := cachedCanonicalizer(a.NumVars(), mode)
	if err != nil {
		return false, err
	}
	first, err := c.Canonicalize(a)
	if err != nil {
		return false, err
	}
	second, err := c.Canonicalize(b)
	if err != nil {
		return false, err
	}
	return truthtable.Equal(first.Representative, second.Representative), nil
}

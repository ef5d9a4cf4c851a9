package truthtable

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange    = errors.New("bit index out of range")
	ErrDimensionMismatch  = errors.New("truth tables have a different number of variables")
	ErrVariableOutOfRange = errors.New("variable index out of range")
	ErrTooManyVars        = errors.New("too many variables")
)

const (
	WordBits = 64
	// Widest table that Static holds inline.
	MaxStaticVars = 8
	// Widest table that Dynamic accepts (2^24 bits, 2 MiB of words).
	MaxVars = 24

	staticWords = 1 << (MaxStaticVars - 6)
)

// TruthTable is a complete truth table of a Boolean function over NumVars() variables.
// Output bit i holds the value of the function for the input assignment whose binary expansion is i,
// i.e. bit v of i is the value of variable v.
//
// Bits above NumBits()-1 inside the last word are always zero.
type TruthTable interface {
	NumVars() int
	NumBits() uint64
	NumWords() int

	// Returns the i-th storage word (word 0 holds output bits 0..63)
	Word(i int) uint64
	// Overwrites the i-th storage word, masking the padding bits away
	SetWord(i int, word uint64)

	Bit(i uint64) (bool, error)
	SetBit(i uint64) error
	ClearBit(i uint64) error

	// Returns a deep copy with the same representation
	Clone() TruthTable
	// Returns an all-zero table with the same representation and width
	Blank() TruthTable
}

// New returns an all-zero table, inline when it fits and heap-backed otherwise
func New(numVars int) (TruthTable, error) {
	if numVars >= 0 && numVars <= MaxStaticVars {
		return NewStatic(numVars)
	}
	return NewDynamic(numVars)
}

// NewLike returns an all-zero table of numVars variables using the representation of t when it can hold that width
func NewLike(t TruthTable, numVars int) (TruthTable, error) {
	if _, ok := t.(*Static); ok && numVars <= MaxStaticVars {
		return NewStatic(numVars)
	}
	return NewDynamic(numVars)
}

// FromUint64 builds a table whose first word is value (only meaningful bits are kept)
func FromUint64(numVars int, value uint64) (TruthTable, error) {
	t, err := New(numVars)
	if err != nil {
		return nil, err
	}
	t.SetWord(0, value)
	return t, nil
}

// FromWords builds a table from its storage words, word 0 first
func FromWords(numVars int, words []uint64) (TruthTable, error) {
	t, err := New(numVars)
	if err != nil {
		return nil, err
	}
	if len(words) != t.NumWords() {
		return nil, fmt.Errorf("%d variables need %d words, got %d: %w", numVars, t.NumWords(), len(words), ErrDimensionMismatch)
	}
	for i, word := range words {
		t.SetWord(i, word)
	}
	return t, nil
}

// NthVar returns the table of the projection on variable v
func NthVar(numVars, v int) (TruthTable, error) {
	t, err := New(numVars)
	if err != nil {
		return nil, err
	}
	if err := CreateNthVar(t, v); err != nil {
		return nil, err
	}
	return t, nil
}

// Projection patterns of the first six variables inside a single word
var projections = [6]uint64{
	0xaaaaaaaaaaaaaaaa,
	0xcccccccccccccccc,
	0xf0f0f0f0f0f0f0f0,
	0xff00ff00ff00ff00,
	0xffff0000ffff0000,
	0xffffffff00000000,
}

// CreateNthVar overwrites t with the projection on variable v: bit i is set exactly when bit v of i is set
func CreateNthVar(t TruthTable, v int) error {
	if v < 0 || v >= t.NumVars() {
		return fmt.Errorf("variable %d of a %d-variable table: %w", v, t.NumVars(), ErrVariableOutOfRange)
	}

	if v < 6 {
		for i := range t.NumWords() {
			t.SetWord(i, projections[v])
		}
		return nil
	}

	for i := range t.NumWords() {
		if (i>>(v-6))&1 == 1 {
			t.SetWord(i, ^uint64(0))
		} else {
			t.SetWord(i, 0)
		}
	}
	return nil
}

func numBits(numVars int) uint64 {
	return uint64(1) << uint(numVars)
}

func numWords(numVars int) int {
	if numVars <= 6 {
		return 1
	}
	return 1 << (numVars - 6)
}

// Valid bits of the last word
func lastWordMask(numVars int) uint64 {
	if numVars >= 6 {
		return ^uint64(0)
	}
	return (uint64(1) << numBits(numVars)) - 1
}

func checkVars(numVars, limit int) error {
	if numVars < 0 || numVars > limit {
		return fmt.Errorf("%d variables (limit %d): %w", numVars, limit, ErrTooManyVars)
	}
	return nil
}

func checkIndex(t TruthTable, i uint64) error {
	if i >= t.NumBits() {
		return fmt.Errorf("bit %d of a %d-bit table: %w", i, t.NumBits(), ErrIndexOutOfRange)
	}
	return nil
}

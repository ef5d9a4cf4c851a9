package truthtable

import (
	"fmt"
	"math/bits"

	"github.com/samber/lo"
)

func And(a, b TruthTable) (TruthTable, error) {
	return bitwise(a, b, func(x, y uint64) uint64 { return x & y })
}

func Or(a, b TruthTable) (TruthTable, error) {
	return bitwise(a, b, func(x, y uint64) uint64 { return x | y })
}

func Xor(a, b TruthTable) (TruthTable, error) {
	return bitwise(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// Not complements every output bit; padding is re-masked by SetWord
func Not(t TruthTable) TruthTable {
	result := t.Blank()
	for i := range t.NumWords() {
		result.SetWord(i, ^t.Word(i))
	}
	return result
}

// Majority3 sets output bit i when at least two of a, b and c have bit i set
func Majority3(a, b, c TruthTable) (TruthTable, error) {
	if err := sameWidth(a, b, c); err != nil {
		return nil, err
	}
	result := a.Blank()
	for i := range a.NumWords() {
		x, y, z := a.Word(i), b.Word(i), c.Word(i)
		result.SetWord(i, (x&y)|(x&z)|(y&z))
	}
	return result, nil
}

// Extend returns a table over numVars variables whose bit i equals bit i mod 2^t.NumVars() of t
func Extend(t TruthTable, numVars int) (TruthTable, error) {
	if numVars < t.NumVars() {
		return nil, fmt.Errorf("cannot extend %d variables to %d: %w", t.NumVars(), numVars, ErrDimensionMismatch)
	}
	result, err := NewLike(t, numVars)
	if err != nil {
		return nil, err
	}

	if t.NumVars() >= 6 {
		for i := range result.NumWords() {
			result.SetWord(i, t.Word(i%t.NumWords()))
		}
		return result, nil
	}

	// Replicate the sub-word block until it fills a whole word
	word := t.Word(0)
	for shift := numBits(t.NumVars()); shift < WordBits; shift <<= 1 {
		word |= word << shift
	}
	for i := range result.NumWords() {
		result.SetWord(i, word)
	}
	return result, nil
}

func Equal(a, b TruthTable) bool {
	if a.NumVars() != b.NumVars() {
		return false
	}
	for i := range a.NumWords() {
		if a.Word(i) != b.Word(i) {
			return false
		}
	}
	return true
}

// Compare orders tables by width first and then as unsigned integers (most significant word first)
func Compare(a, b TruthTable) int {
	if a.NumVars() != b.NumVars() {
		if a.NumVars() < b.NumVars() {
			return -1
		}
		return 1
	}
	for i := a.NumWords() - 1; i >= 0; i-- {
		x, y := a.Word(i), b.Word(i)
		if x < y {
			return -1
		} else if x > y {
			return 1
		}
	}
	return 0
}

func IsConst0(t TruthTable) bool {
	return !lo.SomeBy(Words(t), func(word uint64) bool { return word != 0 })
}

func CountOnes(t TruthTable) int {
	return lo.SumBy(Words(t), func(word uint64) int { return bits.OnesCount64(word) })
}

// Words returns a copy of the storage words, word 0 first
func Words(t TruthTable) []uint64 {
	return lo.Map(lo.Range(t.NumWords()), func(i int, _ int) uint64 { return t.Word(i) })
}

// Next increments t in place as a 2^n-bit unsigned counter.
// It reports true when the counter wrapped around to the all-zero table.
func Next(t TruthTable) bool {
	for i := range t.NumWords() {
		t.SetWord(i, t.Word(i)+1)
		if t.Word(i) != 0 {
			return false
		}
	}
	return true
}

func bitwise(a, b TruthTable, op func(x, y uint64) uint64) (TruthTable, error) {
	if err := sameWidth(a, b); err != nil {
		return nil, err
	}
	result := a.Blank()
	for i := range a.NumWords() {
		result.SetWord(i, op(a.Word(i), b.Word(i)))
	}
	return result, nil
}

func sameWidth(tables ...TruthTable) error {
	for _, t := range tables[1:] {
		if t.NumVars() != tables[0].NumVars() {
			return fmt.Errorf("%d vs %d variables: %w", tables[0].NumVars(), t.NumVars(), ErrDimensionMismatch)
		}
	}
	return nil
}

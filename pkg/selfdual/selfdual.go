// Package selfdual tests self-duality and folds arbitrary functions into self-dual ones.
//
// The dual of f is f^d(x) = NOT f(NOT x); f is self-dual when f == f^d. Every function t of n variables
// lifts to the self-dual function of n+1 variables
//
//	g = (t AND v) OR (NOT v AND t^d)
//
// where v is the new variable, which is how self-dual classes of width n+1 are reached from all functions of width n.
package selfdual

import (
	"fmt"
	"math/bits"

	"github.com/limaJavier/npnclass/pkg/truthtable"
)

// Dual returns NOT t(NOT x). Complementing every input reverses the bit order, so this is a reversed complement.
func Dual(t truthtable.TruthTable) truthtable.TruthTable {
	result := t.Blank()
	if t.NumVars() < 6 {
		shift := truthtable.WordBits - t.NumBits()
		result.SetWord(0, ^(bits.Reverse64(t.Word(0)) >> shift))
		return result
	}

	words := t.NumWords()
	for i := range words {
		result.SetWord(i, ^bits.Reverse64(t.Word(words-1-i)))
	}
	return result
}

func IsSelfDual(t truthtable.TruthTable) bool {
	return truthtable.Equal(t, Dual(t))
}

// Extend replicates t over one more variable
func Extend(t truthtable.TruthTable) (truthtable.TruthTable, error) {
	return truthtable.Extend(t, t.NumVars()+1)
}

// Lift returns the self-dual function (extend(t) AND v) OR (NOT v AND dual(extend(t))) of t.NumVars()+1 variables,
// v being the new last variable. A self-dual t lifts to its own extension.
func Lift(t truthtable.TruthTable) (truthtable.TruthTable, error) {
	extended, err := Extend(t)
	if err != nil {
		return nil, fmt.Errorf("cannot lift %d variables: %w", t.NumVars(), err)
	}
	v, err := truthtable.NewLike(extended, extended.NumVars())
	if err != nil {
		return nil, err
	}
	if err := truthtable.CreateNthVar(v, t.NumVars()); err != nil {
		return nil, err
	}

	positive, err := truthtable.And(extended, v)
	if err != nil {
		return nil, err
	}
	negative, err := truthtable.And(truthtable.Not(v), Dual(extended))
	if err != nil {
		return nil, err
	}
	return truthtable.Or(positive, negative)
}

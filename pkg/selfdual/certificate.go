package selfdual

import (
	"fmt"

	"github.com/limaJavier/npnclass/pkg/sat"
	"github.com/limaJavier/npnclass/pkg/truthtable"
)

// Encoding emits 2^(n+1) clauses, keep it small
const MaxCertifyVars = 16

// Certificate is the outcome of a SAT-based self-duality check
type Certificate struct {
	SelfDual bool
	// Assignment x with t(x) == t(NOT x); meaningful only when SelfDual is false
	Witness uint64
}

// Encode builds a CNF that is satisfiable iff some assignment x has t(x) == t(NOT x), i.e. iff t is not self-dual.
//
// Variables 1..n are the inputs x, n+1 holds t(x) and n+2 holds t(NOT x).
func Encode(t truthtable.TruthTable) (sat.SAT, error) {
	numVars := t.NumVars()
	if numVars > MaxCertifyVars {
		return sat.SAT{}, fmt.Errorf("certifying %d variables (limit %d): %w", numVars, MaxCertifyVars, truthtable.ErrTooManyVars)
	}

	y, z := int64(numVars+1), int64(numVars+2)
	instance := sat.SAT{
		Variables: uint64(numVars + 2),
		Clauses:   make([][]int64, 0, 2*t.NumBits()+2),
	}

	for i := range t.NumBits() {
		value, err := t.Bit(i)
		if err != nil {
			return sat.SAT{}, err
		}

		// x != i OR y == t(i)
		direct := make([]int64, 0, numVars+1)
		// x != NOT i OR z == t(i)
		complemented := make([]int64, 0, numVars+1)
		for j := range numVars {
			literal := int64(j + 1)
			if (i>>j)&1 == 1 {
				direct = append(direct, -literal)
				complemented = append(complemented, literal)
			} else {
				direct = append(direct, literal)
				complemented = append(complemented, -literal)
			}
		}
		if value {
			direct = append(direct, y)
			complemented = append(complemented, z)
		} else {
			direct = append(direct, -y)
			complemented = append(complemented, -z)
		}
		instance.Clauses = append(instance.Clauses, direct, complemented)
	}

	// y == z
	instance.Clauses = append(instance.Clauses, []int64{-y, z}, []int64{y, -z})
	return instance, nil
}

// Certify decides self-duality with the given solver and, for a function that is not self-dual,
// returns an input on which t and its dual disagree
func Certify(t truthtable.TruthTable, solver sat.SATSolver) (Certificate, error) {
	instance, err := Encode(t)
	if err != nil {
		return Certificate{}, err
	}

	solution, err := solver.Solve(instance)
	if err != nil {
		return Certificate{}, fmt.Errorf("cannot solve self-duality instance: %w", err)
	} else if solution == nil {
		return Certificate{SelfDual: true}, nil
	}

	var witness uint64
	for j := range t.NumVars() {
		if solution.Value(uint64(j + 1)) {
			witness |= 1 << j
		}
	}
	return Certificate{Witness: witness}, nil
}

package sat

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLiteral = errors.New("invalid literal")

// SATSolution lists one DIMACS literal per variable: v when variable v is true and -v otherwise
type SATSolution []int64

// Value reports the assignment of the 1-based variable v
func (s SATSolution) Value(v uint64) bool {
	return v >= 1 && v <= uint64(len(s)) && s[v-1] > 0
}

// SAT is a CNF formula over the variables 1..Variables, each clause being a disjunction of DIMACS literals
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) Validate() error {
	for i, clause := range s.Clauses {
		for _, literal := range clause {
			if literal == 0 || uint64(max(literal, -literal)) > s.Variables {
				return fmt.Errorf("literal %d in clause %d (variables 1..%d): %w", literal, i, s.Variables, ErrInvalidLiteral)
			}
		}
	}
	return nil
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// SATSolver returns a model of a satisfiable formula and (nil, nil) for an unsatisfiable one
type SATSolver interface {
	Solve(SAT) (SATSolution, error)
}

package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver, so no external executable or config.json is involved
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	if err := sat.Validate(); err != nil {
		return nil, err
	}

	g := gini.NewVc(int(sat.Variables), len(sat.Clauses))
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull)
	}

	// 1 stands for satisfiable and -1 for unsatisfiable
	switch result := g.Solve(); result {
	case 1:
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("gini finished without an answer: %d", result)
	}

	solution := make(SATSolution, 0, sat.Variables)
	for v := int64(1); v <= int64(sat.Variables); v++ {
		if g.Value(z.Dimacs2Lit(int(v))) {
			solution = append(solution, v)
		} else {
			solution = append(solution, -v)
		}
	}
	return solution, nil
}

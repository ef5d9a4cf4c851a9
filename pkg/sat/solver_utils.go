package sat

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// GenerateSATInstance builds a random CNF where every variable enters each clause with probability 1/2
func GenerateSATInstance(literals uint64, clauses int) SAT {
	satInstance := SAT{
		Variables: literals,
		Clauses:   make([][]int64, clauses),
	}

	randomSign := func() int64 {
		return lo.Ternary[int64](rand.Float32() < 0.5, -1, 1)
	}

	for i := range clauses {
		satInstance.Clauses[i] = make([]int64, 0, literals)
		for j := range literals {
			if rand.Float32() < 0.5 {
				satInstance.Clauses[i] = append(satInstance.Clauses[i], randomSign()*(1+int64(j)))
			}
		}

		if len(satInstance.Clauses[i]) == 0 {
			satInstance.Clauses[i] = append(satInstance.Clauses[i], randomSign()*(1+rand.Int64N(int64(literals))))
		}
	}

	return satInstance
}

// Satisfies checks that the solution is consistent and satisfies every clause
func Satisfies(satInstance SAT, satSolution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	return lo.EveryBy(satInstance.Clauses, func(clause []int64) bool {
		return lo.SomeBy(clause, func(literal int64) bool { return literals[literal] })
	})
}

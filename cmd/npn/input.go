package main

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/limaJavier/npnclass/pkg/truthtable"
)

// parseTable reads "0b"-prefixed binary or hexadecimal. numVars < 0 infers the width from the digits,
// which is ambiguous for a single hex digit.
func parseTable(s string, numVars int) (truthtable.TruthTable, error) {
	if strings.HasPrefix(s, "0b") {
		table, err := truthtable.FromBinary(s)
		if err != nil {
			return nil, err
		}
		if numVars >= 0 && table.NumVars() != numVars {
			return nil, fmt.Errorf("%v has %d variables, expected %d: %w", s, table.NumVars(), numVars, truthtable.ErrDimensionMismatch)
		}
		return table, nil
	}

	s = strings.TrimPrefix(s, "0x")
	if numVars < 0 {
		if len(s) < 2 || len(s)&(len(s)-1) != 0 {
			return nil, fmt.Errorf("cannot infer the number of variables of %q, use --vars", s)
		}
		numVars = bits.TrailingZeros(uint(len(s))) + 2
	}
	return truthtable.FromHex(numVars, s)
}

package enumerate

import (
	"github.com/limaJavier/npnclass/pkg/truthtable"
)

// Cursor walks every function of n variables in numeric order, treating the truth table as a 2^n-bit counter.
// It starts at the all-zero function and is done once the counter wraps back to it.
type Cursor struct {
	table truthtable.TruthTable
	steps uint64
	done  bool
}

func NewCursor(numVars int) (*Cursor, error) {
	table, err := truthtable.New(numVars)
	if err != nil {
		return nil, err
	}
	return &Cursor{table: table}, nil
}

// NewCursorAt starts a cursor at a copy of start; it is still done only after wrapping to zero
func NewCursorAt(start truthtable.TruthTable) *Cursor {
	return &Cursor{table: start.Clone()}
}

// Current returns a copy of the function under the cursor
func (c *Cursor) Current() truthtable.TruthTable {
	return c.table.Clone()
}

func (c *Cursor) Done() bool {
	return c.done
}

// Steps returns how many times the cursor advanced
func (c *Cursor) Steps() uint64 {
	return c.steps
}

// Advance moves to the next function and reports whether the cursor is still iterating
func (c *Cursor) Advance() bool {
	if c.done {
		return false
	}
	c.steps++
	c.done = truthtable.Next(c.table)
	return !c.done
}

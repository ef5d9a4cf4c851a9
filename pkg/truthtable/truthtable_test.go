package truthtable

import (
	"math/rand/v2"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionXor(t *testing.T) {
	//** Arrange
	a := lo.Must(New(3))
	b := lo.Must(New(3))
	require.NoError(t, CreateNthVar(a, 0))
	require.NoError(t, CreateNthVar(b, 1))

	//** Act
	result, err := Xor(a, b)

	//** Assert
	require.NoError(t, err)
	expected := []bool{false, true, true, false, false, true, true, false} // inputs 000..111
	for i, value := range expected {
		bit, err := result.Bit(uint64(i))
		require.NoError(t, err)
		assert.Equal(t, value, bit, "bit %d", i)
	}
	assert.Equal(t, "01100110", Binary(result))
	assert.Equal(t, "66", Hex(result))
}

func TestNthVarMatchesDefinition(t *testing.T) {
	for _, numVars := range []int{0, 1, 3, 6, 7, 9} {
		for v := range numVars {
			//** Act
			projection := lo.Must(NthVar(numVars, v))

			//** Assert
			for i := range projection.NumBits() {
				bit := lo.Must(projection.Bit(i))
				assert.Equal(t, (i>>v)&1 == 1, bit, "n=%d v=%d i=%d", numVars, v, i)
			}
		}
	}

	t.Run("Variable out of range", func(t *testing.T) {
		table := lo.Must(New(3))
		assert.ErrorIs(t, CreateNthVar(table, 3), ErrVariableOutOfRange)
		assert.ErrorIs(t, CreateNthVar(table, -1), ErrVariableOutOfRange)
	})
}

func TestBitAccessors(t *testing.T) {
	for _, table := range []TruthTable{lo.Must(NewStatic(4)), lo.Must(NewDynamic(4)), lo.Must(NewDynamic(8))} {
		//** Act
		require.NoError(t, table.SetBit(3))
		require.NoError(t, table.SetBit(table.NumBits()-1))
		require.NoError(t, table.ClearBit(3))

		//** Assert
		assert.False(t, lo.Must(table.Bit(3)))
		assert.True(t, lo.Must(table.Bit(table.NumBits()-1)))
		assert.Equal(t, 1, CountOnes(table))

		_, err := table.Bit(table.NumBits())
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, table.SetBit(table.NumBits()), ErrIndexOutOfRange)
		assert.ErrorIs(t, table.ClearBit(1<<40), ErrIndexOutOfRange)
	}
}

func TestRepresentationLimits(t *testing.T) {
	_, err := NewStatic(MaxStaticVars + 1)
	assert.ErrorIs(t, err, ErrTooManyVars)
	_, err = NewDynamic(MaxVars + 1)
	assert.ErrorIs(t, err, ErrTooManyVars)
	_, err = New(-1)
	assert.ErrorIs(t, err, ErrTooManyVars)

	wide := lo.Must(New(MaxStaticVars + 1))
	_, ok := wide.(*Dynamic)
	assert.True(t, ok)
}

func TestPaddingIsMasked(t *testing.T) {
	for numVars := range 6 {
		//** Arrange
		table := lo.Must(New(numVars))

		//** Act
		table.SetWord(0, ^uint64(0))
		negated := Not(lo.Must(New(numVars)))

		//** Assert
		assert.Equal(t, int(table.NumBits()), CountOnes(table))
		assert.True(t, Equal(table, negated))
		assert.True(t, IsConst0(Not(table)))
	}
}

func TestOperatorsArePure(t *testing.T) {
	//** Arrange
	a := lo.Must(NthVar(7, 0))
	b := lo.Must(NthVar(7, 6))
	c := lo.Must(NthVar(7, 3))
	aCopy, bCopy := a.Clone(), b.Clone()

	//** Act
	and := lo.Must(And(a, b))
	or := lo.Must(Or(a, b))
	majority := lo.Must(Majority3(a, b, c))

	//** Assert
	assert.True(t, Equal(a, aCopy))
	assert.True(t, Equal(b, bCopy))
	for i := range a.NumBits() {
		x, y, z := lo.Must(a.Bit(i)), lo.Must(b.Bit(i)), lo.Must(c.Bit(i))
		assert.Equal(t, x && y, lo.Must(and.Bit(i)))
		assert.Equal(t, x || y, lo.Must(or.Bit(i)))
		assert.Equal(t, lo.Ternary(x, 1, 0)+lo.Ternary(y, 1, 0)+lo.Ternary(z, 1, 0) >= 2, lo.Must(majority.Bit(i)))
	}
}

func TestDimensionMismatch(t *testing.T) {
	a := lo.Must(New(3))
	b := lo.Must(New(4))

	_, err := And(a, b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = Or(a, b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = Xor(b, a)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = Majority3(a, a, b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = Extend(b, 3)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestEqualIgnoresRepresentation(t *testing.T) {
	static := lo.Must(NthVar(5, 2))
	dynamic := lo.Must(NewDynamic(5))
	require.NoError(t, CreateNthVar(dynamic, 2))

	assert.True(t, Equal(static, dynamic))
	assert.Equal(t, 0, Compare(static, dynamic))
	assert.Equal(t, Key(static), Key(dynamic))
	assert.False(t, Equal(static, lo.Must(NthVar(6, 2))))
}

func TestExtend(t *testing.T) {
	for _, scenario := range [][2]int{{0, 3}, {2, 2}, {3, 4}, {5, 7}, {6, 9}, {7, 8}} {
		//** Arrange
		from, to := scenario[0], scenario[1]
		table := lo.Must(New(from))
		for i := range table.NumBits() {
			if rand.IntN(2) == 1 {
				require.NoError(t, table.SetBit(i))
			}
		}

		//** Act
		extended := lo.Must(Extend(table, to))

		//** Assert
		require.Equal(t, to, extended.NumVars())
		for i := range extended.NumBits() {
			assert.Equal(t, lo.Must(table.Bit(i%table.NumBits())), lo.Must(extended.Bit(i)))
		}
	}
}

func TestNextCyclesThroughAllFunctions(t *testing.T) {
	for numVars := range 5 {
		//** Arrange
		table := lo.Must(New(numVars))
		expected := uint64(1) << (uint64(1) << numVars)
		seen := make(map[string]bool)

		//** Act
		var steps uint64
		for {
			seen[string(Key(table))] = true
			steps++
			if Next(table) {
				break
			}
			require.Less(t, steps, expected, "short cycle for %d variables", numVars)
		}

		//** Assert
		assert.Equal(t, expected, steps)
		assert.Equal(t, int(expected), len(seen))
		assert.True(t, IsConst0(table))
	}

	t.Run("Carry across words", func(t *testing.T) {
		table := lo.Must(FromWords(7, []uint64{^uint64(0), 0}))
		assert.False(t, Next(table))
		assert.Equal(t, []uint64{0, 1}, Words(table))

		table = lo.Must(FromWords(7, []uint64{^uint64(0), ^uint64(0)}))
		assert.True(t, Next(table))
		assert.True(t, IsConst0(table))
	})
}

func TestCompareIsUnsignedOrder(t *testing.T) {
	small := lo.Must(FromWords(7, []uint64{^uint64(0), 0}))
	large := lo.Must(FromWords(7, []uint64{0, 1}))

	assert.Equal(t, -1, Compare(small, large))
	assert.Equal(t, 1, Compare(large, small))
	assert.Equal(t, -1, Compare(lo.Must(New(2)), lo.Must(New(3))))
}

package enumerate

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/limaJavier/npnclass/pkg/truthtable"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorVisitsEveryFunctionOnce(t *testing.T) {
	for numVars := range 5 {
		//** Arrange
		cursor, err := NewCursor(numVars)
		require.NoError(t, err)
		visited := mapset.NewThreadUnsafeSet[string]()

		//** Act
		for !cursor.Done() {
			assert.True(t, visited.Add(truthtable.Hex(cursor.Current())))
			cursor.Advance()
		}

		//** Assert
		total := uint64(1) << (uint64(1) << numVars)
		assert.Equal(t, total, cursor.Steps())
		assert.Equal(t, int(total), visited.Cardinality())
		assert.False(t, cursor.Advance())
		assert.True(t, truthtable.IsConst0(cursor.Current()))
	}
}

func TestCursorCarriesAcrossWords(t *testing.T) {
	start := lo.Must(truthtable.FromWords(7, []uint64{^uint64(0), 0}))
	cursor := NewCursorAt(start)

	assert.True(t, cursor.Advance())

	assert.Equal(t, []uint64{0, 1}, truthtable.Words(cursor.Current()))
	// The start table is copied
	assert.Equal(t, ^uint64(0), start.Word(0))
}

func TestCursorStartingAtLastFunction(t *testing.T) {
	cursor := NewCursorAt(truthtable.Not(lo.Must(truthtable.New(2))))

	assert.False(t, cursor.Advance())
	assert.True(t, cursor.Done())
	assert.Equal(t, uint64(1), cursor.Steps())
}

func TestNewCursorLimits(t *testing.T) {
	_, err := NewCursor(truthtable.MaxVars + 1)
	assert.ErrorIs(t, err, truthtable.ErrTooManyVars)
}

func TestClassSet(t *testing.T) {
	//** Arrange
	set := NewClassSet()
	and := lo.Must(truthtable.FromHex(2, "1"))
	xor := lo.Must(truthtable.FromHex(2, "6"))
	wideAnd := lo.Must(truthtable.FromHex(3, "01"))

	//** Act
	assert.True(t, set.Insert(xor))
	assert.True(t, set.Insert(and))
	assert.False(t, set.Insert(lo.Must(truthtable.FromHex(2, "1"))))
	assert.True(t, set.Insert(wideAnd))

	//** Assert
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(and))
	assert.False(t, set.Contains(lo.Must(truthtable.FromHex(2, "3"))))
	assert.Equal(t, []string{"1", "6", "01"}, lo.Map(set.Representatives(), func(representative truthtable.TruthTable, _ int) string {
		return truthtable.Hex(representative)
	}))

	// Stored tables are owned by the set
	and.SetWord(0, 0xf)
	assert.True(t, set.Contains(lo.Must(truthtable.FromHex(2, "1"))))
	set.Representatives()[0].SetWord(0, 0)
	assert.Equal(t, "1", truthtable.Hex(set.Representatives()[0]))
}

func TestClassSetUnion(t *testing.T) {
	left, right := NewClassSet(), NewClassSet()
	left.Insert(lo.Must(truthtable.FromHex(2, "1")))
	left.Insert(lo.Must(truthtable.FromHex(2, "3")))
	right.Insert(lo.Must(truthtable.FromHex(2, "3")))
	right.Insert(lo.Must(truthtable.FromHex(2, "6")))

	left.Union(right)

	assert.Equal(t, 3, left.Len())
	assert.Equal(t, 2, right.Len())
	assert.True(t, left.Contains(lo.Must(truthtable.FromHex(2, "6"))))
}

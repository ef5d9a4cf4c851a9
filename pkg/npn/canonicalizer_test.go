package npn

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/limaJavier/npnclass/pkg/truthtable"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classCount(t *testing.T, numVars int, mode Mode) int {
	canonicalizer := lo.Must(NewCanonicalizer(numVars, mode))
	classes := mapset.NewThreadUnsafeSet[string]()
	table := lo.Must(truthtable.New(numVars))
	for {
		result, err := canonicalizer.Canonicalize(table)
		require.NoError(t, err)
		classes.Add(string(truthtable.Key(result.Representative)))
		if truthtable.Next(table) {
			break
		}
	}
	return classes.Cardinality()
}

func TestClassCounts(t *testing.T) {
	assert.Equal(t, 4, classCount(t, 1, ModeP))
	assert.Equal(t, 12, classCount(t, 2, ModeP))
	assert.Equal(t, 80, classCount(t, 3, ModeP))

	assert.Equal(t, 2, classCount(t, 1, ModeNPN))
	assert.Equal(t, 4, classCount(t, 2, ModeNPN))
	assert.Equal(t, 14, classCount(t, 3, ModeNPN))
}

func TestGroupSize(t *testing.T) {
	assert.Equal(t, uint64(2*1*2), lo.Must(NewCanonicalizer(1, ModeNPN)).Size())
	assert.Equal(t, uint64(16*24*2), lo.Must(NewCanonicalizer(4, ModeNPN)).Size())
	assert.Equal(t, uint64(24), lo.Must(NewCanonicalizer(4, ModeP)).Size())

	_, err := NewCanonicalizer(MaxCanonicalVars+1, ModeNPN)
	assert.ErrorIs(t, err, truthtable.ErrTooManyVars)
}

func TestGroupInvariance(t *testing.T) {
	for _, mode := range []Mode{ModeNPN, ModeP} {
		for _, numVars := range []int{1, 2, 3, 4} {
			canonicalizer := lo.Must(NewCanonicalizer(numVars, mode))
			for range 3 {
				//** Arrange
				table := randomTable(t, numVars)
				expected := lo.Must(canonicalizer.Canonicalize(table)).Representative

				for index := range canonicalizer.Size() {
					//** Act
					image := lo.Must(Apply(table, canonicalizer.TransformAt(index)))
					result, err := canonicalizer.Canonicalize(image)

					//** Assert
					require.NoError(t, err)
					require.True(t, truthtable.Equal(expected, result.Representative),
						"mode %v: %v and its image %v under %v have different representatives", mode, table, image, canonicalizer.TransformAt(index))
				}
			}
		}
	}
}

func TestIdempotenceAndRoundTrip(t *testing.T) {
	for _, numVars := range []int{1, 3, 5, 6} {
		for range 5 {
			//** Arrange
			table := randomTable(t, numVars)

			//** Act
			result, err := ExactNPN(table)
			require.NoError(t, err)
			again, err := ExactNPN(result.Representative)
			require.NoError(t, err)
			image, err := Apply(table, result.Transform)
			require.NoError(t, err)

			//** Assert
			assert.True(t, truthtable.Equal(result.Representative, again.Representative))
			assert.True(t, truthtable.Equal(result.Representative, image))
			assert.True(t, truthtable.Equal(table, lo.Must(Apply(result.Representative, result.Transform.Inverse()))))
			assert.Equal(t, table.NumVars(), result.Representative.NumVars())
		}
	}
}

func TestCanonicalIsMinimumWithEarliestTransform(t *testing.T) {
	for _, mode := range []Mode{ModeNPN, ModeP} {
		canonicalizer := lo.Must(NewCanonicalizer(3, mode))
		table := lo.Must(truthtable.New(3))
		for {
			//** Act
			result := lo.Must(canonicalizer.Canonicalize(table))

			//** Assert
			first := true
			for index := range canonicalizer.Size() {
				image := lo.Must(Apply(table, canonicalizer.TransformAt(index)))
				assert.LessOrEqual(t, truthtable.Compare(result.Representative, image), 0)
				if first && truthtable.Equal(image, result.Representative) {
					assert.True(t, result.Transform.Equal(canonicalizer.TransformAt(index)), "%v: %v is not the earliest transform", table, result.Transform)
					first = false
				}
			}

			if truthtable.Next(table) {
				break
			}
		}
	}
}

func TestKnownRepresentatives(t *testing.T) {
	scenarios := []struct {
		hex            string
		representative string
	}{
		{"e8", "17"}, // majority
		{"96", "69"}, // parity
		{"80", "01"}, // and3
		{"fe", "01"}, // or3
		{"00", "00"},
		{"ff", "00"},
	}

	for _, scenario := range scenarios {
		table := lo.Must(truthtable.FromHex(3, scenario.hex))
		result := lo.Must(ExactNPN(table))
		assert.Equal(t, scenario.representative, truthtable.Hex(result.Representative), "class of %v", scenario.hex)
	}
}

func TestOrbitClosure(t *testing.T) {
	scenarios := []struct {
		hex   string
		orbit int
	}{
		{"e8", 8}, // majority: 8 input negations, all symmetric
		{"96", 2}, // parity and its complement
		{"aa", 6}, // projections and their complements
		{"00", 2}, // constants
	}

	canonicalizer := lo.Must(NewCanonicalizer(3, ModeNPN))
	for _, scenario := range scenarios {
		//** Arrange
		table := lo.Must(truthtable.FromHex(3, scenario.hex))
		representative := lo.Must(canonicalizer.Canonicalize(table)).Representative

		//** Act
		orbit := mapset.NewThreadUnsafeSet[string]()
		for index := range canonicalizer.Size() {
			image := lo.Must(Apply(table, canonicalizer.TransformAt(index)))
			orbit.Add(truthtable.Hex(image))
		}

		//** Assert
		assert.Equal(t, scenario.orbit, orbit.Cardinality(), "orbit of %v", scenario.hex)
		orbit.Each(func(hex string) bool {
			member := lo.Must(truthtable.FromHex(3, hex))
			assert.True(t, lo.Must(Equivalent(table, member, ModeNPN)))
			assert.True(t, truthtable.Equal(representative, lo.Must(canonicalizer.Canonicalize(member)).Representative))
			return false
		})
	}
}

func TestDegenerateInput(t *testing.T) {
	for _, constant := range []truthtable.TruthTable{lo.Must(truthtable.New(0)), truthtable.Not(lo.Must(truthtable.New(0)))} {
		for _, mode := range []Mode{ModeNPN, ModeP} {
			canonicalizer := lo.Must(NewCanonicalizer(0, mode))
			result, err := canonicalizer.Canonicalize(constant)
			require.NoError(t, err)
			assert.True(t, truthtable.Equal(constant, result.Representative))
			assert.True(t, result.Transform.Equal(Identity(0)))
		}
	}
}

func TestCanonicalizeDimensionMismatch(t *testing.T) {
	canonicalizer := lo.Must(NewCanonicalizer(3, ModeNPN))
	_, err := canonicalizer.Canonicalize(lo.Must(truthtable.New(4)))
	assert.ErrorIs(t, err, truthtable.ErrDimensionMismatch)

	equivalent, err := Equivalent(lo.Must(truthtable.New(3)), lo.Must(truthtable.New(4)), ModeNPN)
	assert.NoError(t, err)
	assert.False(t, equivalent)
}

func TestDynamicRepresentationIsPreserved(t *testing.T) {
	table := lo.Must(truthtable.NewDynamic(4))
	require.NoError(t, truthtable.CreateNthVar(table, 3))

	result := lo.Must(ExactNPN(table))

	_, ok := result.Representative.(*truthtable.Dynamic)
	assert.True(t, ok)
	assert.Equal(t, "00ff", truthtable.Hex(result.Representative))
}

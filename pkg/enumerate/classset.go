package enumerate

import (
	"slices"

	"github.com/limaJavier/npnclass/pkg/truthtable"
	"github.com/samber/lo"
)

// ClassSet holds one representative per equivalence class, hashed by its canonical key.
// It owns copies of the tables inserted into it.
type ClassSet struct {
	classes map[string]truthtable.TruthTable
}

func NewClassSet() *ClassSet {
	return &ClassSet{classes: make(map[string]truthtable.TruthTable)}
}

// Insert adds the representative and reports whether it was new
func (s *ClassSet) Insert(representative truthtable.TruthTable) bool {
	key := string(truthtable.Key(representative))
	if _, ok := s.classes[key]; ok {
		return false
	}
	s.classes[key] = representative.Clone()
	return true
}

func (s *ClassSet) Contains(representative truthtable.TruthTable) bool {
	_, ok := s.classes[string(truthtable.Key(representative))]
	return ok
}

func (s *ClassSet) Len() int {
	return len(s.classes)
}

// Union inserts every representative of other
func (s *ClassSet) Union(other *ClassSet) {
	for key, representative := range other.classes {
		if _, ok := s.classes[key]; !ok {
			s.classes[key] = representative.Clone()
		}
	}
}

// Representatives returns copies of the stored representatives in ascending truthtable.Compare order
func (s *ClassSet) Representatives() []truthtable.TruthTable {
	representatives := lo.Map(lo.Values(s.classes), func(representative truthtable.TruthTable, _ int) truthtable.TruthTable {
		return representative.Clone()
	})
	slices.SortFunc(representatives, truthtable.Compare)
	return representatives
}

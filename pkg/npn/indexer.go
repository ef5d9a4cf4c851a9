package npn

// indexer gives a unique index to every (input polarity, permutation, output polarity) combination and vice versa.
// Indices follow the canonical search order: input polarity ascending, then permutation index, then output polarity.
type indexer interface {
	// Returns the unique index of the combination
	Index(polarity, permutation, output uint64) uint64
	// Returns the combination behind an index
	Attributes(index uint64) (polarity uint64, permutation uint64, output uint64)
}

func newIndexer(polarities, permutations, outputs uint64) indexer {
	return &indexerImplementation{
		polarities:   polarities,
		permutations: permutations,
		outputs:      outputs,
	}
}

type indexerImplementation struct {
	polarities   uint64
	permutations uint64
	outputs      uint64
}

func (indexer *indexerImplementation) Index(polarity, permutation, output uint64) uint64 {
	return output + indexer.outputs*permutation + indexer.outputs*indexer.permutations*polarity
}

func (indexer *indexerImplementation) Attributes(index uint64) (polarity, permutation, output uint64) {
	output = index % indexer.outputs
	index = index / indexer.outputs

	permutation = index % indexer.permutations
	index = index / indexer.permutations

	polarity = index % indexer.polarities

	return polarity, permutation, output
}

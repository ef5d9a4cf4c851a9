package truthtable

// Dynamic stores its words on the heap and accepts up to MaxVars variables
type Dynamic struct {
	numVars int
	words   []uint64
}

func NewDynamic(numVars int) (*Dynamic, error) {
	if err := checkVars(numVars, MaxVars); err != nil {
		return nil, err
	}
	return &Dynamic{
		numVars: numVars,
		words:   make([]uint64, numWords(numVars)),
	}, nil
}

func (d *Dynamic) NumVars() int {
	return d.numVars
}

func (d *Dynamic) NumBits() uint64 {
	return numBits(d.numVars)
}

func (d *Dynamic) NumWords() int {
	return len(d.words)
}

func (d *Dynamic) Word(i int) uint64 {
	return d.words[i]
}

func (d *Dynamic) SetWord(i int, word uint64) {
	if i == len(d.words)-1 {
		word &= lastWordMask(d.numVars)
	}
	d.words[i] = word
}

func (d *Dynamic) Bit(i uint64) (bool, error) {
	if err := checkIndex(d, i); err != nil {
		return false, err
	}
	return (d.words[i/WordBits]>>(i%WordBits))&1 == 1, nil
}

func (d *Dynamic) SetBit(i uint64) error {
	if err := checkIndex(d, i); err != nil {
		return err
	}
	d.words[i/WordBits] |= 1 << (i % WordBits)
	return nil
}

func (d *Dynamic) ClearBit(i uint64) error {
	if err := checkIndex(d, i); err != nil {
		return err
	}
	d.words[i/WordBits] &^= 1 << (i % WordBits)
	return nil
}

func (d *Dynamic) Clone() TruthTable {
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	return &Dynamic{numVars: d.numVars, words: words}
}

func (d *Dynamic) Blank() TruthTable {
	return &Dynamic{numVars: d.numVars, words: make([]uint64, len(d.words))}
}

func (d *Dynamic) String() string {
	return Hex(d)
}

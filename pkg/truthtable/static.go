package truthtable

// Static stores up to MaxStaticVars variables in an inline array, so copying the struct copies the table
type Static struct {
	numVars int
	words   [staticWords]uint64
}

func NewStatic(numVars int) (*Static, error) {
	if err := checkVars(numVars, MaxStaticVars); err != nil {
		return nil, err
	}
	return &Static{numVars: numVars}, nil
}

func (s *Static) NumVars() int {
	return s.numVars
}

func (s *Static) NumBits() uint64 {
	return numBits(s.numVars)
}

func (s *Static) NumWords() int {
	return numWords(s.numVars)
}

func (s *Static) Word(i int) uint64 {
	return s.words[:s.NumWords()][i]
}

func (s *Static) SetWord(i int, word uint64) {
	if i == s.NumWords()-1 {
		word &= lastWordMask(s.numVars)
	}
	s.words[:s.NumWords()][i] = word
}

func (s *Static) Bit(i uint64) (bool, error) {
	if err := checkIndex(s, i); err != nil {
		return false, err
	}
	return (s.words[i/WordBits]>>(i%WordBits))&1 == 1, nil
}

func (s *Static) SetBit(i uint64) error {
	if err := checkIndex(s, i); err != nil {
		return err
	}
	s.words[i/WordBits] |= 1 << (i % WordBits)
	return nil
}

func (s *Static) ClearBit(i uint64) error {
	if err := checkIndex(s, i); err != nil {
		return err
	}
	s.words[i/WordBits] &^= 1 << (i % WordBits)
	return nil
}

func (s *Static) Clone() TruthTable {
	clone := *s
	return &clone
}

func (s *Static) Blank() TruthTable {
	return &Static{numVars: s.numVars}
}

func (s *Static) String() string {
	return Hex(s)
}

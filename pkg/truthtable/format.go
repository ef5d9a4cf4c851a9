package truthtable

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed truth table string")

// Binary renders the table most significant bit first, i.e. the last character is output bit 0
func Binary(t TruthTable) string {
	var builder strings.Builder
	builder.Grow(int(t.NumBits()))
	for i := t.NumBits(); i > 0; i-- {
		if (t.Word(int((i-1)/WordBits))>>((i-1)%WordBits))&1 == 1 {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

// FromBinary parses a string produced by Binary; its length must be a power of two
func FromBinary(s string) (TruthTable, error) {
	s = strings.TrimPrefix(s, "0b")
	if len(s) == 0 || len(s)&(len(s)-1) != 0 {
		return nil, fmt.Errorf("length %d is not a power of two: %w", len(s), ErrMalformed)
	}
	t, err := New(bits.TrailingZeros(uint(len(s))))
	if err != nil {
		return nil, err
	}
	for k, char := range s {
		index := uint64(len(s) - 1 - k)
		switch char {
		case '1':
			if err := t.SetBit(index); err != nil {
				return nil, err
			}
		case '0':
		default:
			return nil, fmt.Errorf("unexpected character %q: %w", char, ErrMalformed)
		}
	}
	return t, nil
}

// Hex renders the table as hexadecimal digits, most significant first
func Hex(t TruthTable) string {
	if t.NumVars() <= 6 {
		digits := max(1, int(t.NumBits()/4))
		return fmt.Sprintf("%0*x", digits, t.Word(0))
	}
	var builder strings.Builder
	for i := t.NumWords() - 1; i >= 0; i-- {
		fmt.Fprintf(&builder, "%016x", t.Word(i))
	}
	return builder.String()
}

// FromHex parses a string produced by Hex (an optional 0x prefix is accepted)
func FromHex(numVars int, s string) (TruthTable, error) {
	t, err := New(numVars)
	if err != nil {
		return nil, err
	}
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	if expected := max(1, int(t.NumBits()/4)); len(s) != expected {
		return nil, fmt.Errorf("%d variables need %d hex digits, got %d: %w", numVars, expected, len(s), ErrMalformed)
	}

	for i := range t.NumWords() {
		end := len(s) - 16*i
		chunk := s[max(0, end-16):end]
		word, err := strconv.ParseUint(chunk, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", chunk, ErrMalformed)
		}
		if i == t.NumWords()-1 && word&^lastWordMask(numVars) != 0 {
			return nil, fmt.Errorf("%q sets bits above %d: %w", s, t.NumBits(), ErrMalformed)
		}
		t.SetWord(i, word)
	}
	return t, nil
}

// Key serializes the table as one byte holding the number of variables followed by the words
// (word 0 first, little-endian). Two tables have the same key iff they are Equal.
func Key(t TruthTable) []byte {
	key := make([]byte, 1, 1+8*t.NumWords())
	key[0] = byte(t.NumVars())
	for i := range t.NumWords() {
		key = binary.LittleEndian.AppendUint64(key, t.Word(i))
	}
	return key
}

// FromKey is the inverse of Key
func FromKey(key []byte) (TruthTable, error) {
	if len(key) < 1 {
		return nil, fmt.Errorf("empty key: %w", ErrMalformed)
	}
	numVars := int(key[0])
	if len(key) != 1+8*numWords(numVars) {
		return nil, fmt.Errorf("key of %d bytes for %d variables: %w", len(key), numVars, ErrMalformed)
	}
	words := make([]uint64, numWords(numVars))
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(key[1+8*i:])
	}
	return FromWords(numVars, words)
}

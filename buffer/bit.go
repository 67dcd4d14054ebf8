package buffer

import "github.com/bits-and-blooms/bitset"

// bitStorage packs one boolean sample per bit. It implements storage[bool]
// and is selected automatically by New for the bit sample type.
type bitStorage struct {
	n    int
	bits *bitset.BitSet
}

func newBitStorage(n int) *bitStorage {
	return &bitStorage{n: n, bits: bitset.New(uint(n))}
}

func (s *bitStorage) len() int { return s.n }

func (s *bitStorage) at(i int) bool { return s.bits.Test(uint(i)) }

func (s *bitStorage) put(i int, v bool) { s.bits.SetTo(uint(i), v) }

func (s *bitStorage) fill(v bool) {
	if v {
		s.bits.SetAll()
	} else {
		s.bits.ClearAll()
	}
}

func (s *bitStorage) equal(o storage[bool]) bool {
	if s.n != o.len() {
		return false
	}
	if ob, ok := o.(*bitStorage); ok {
		return s.bits.Equal(ob.bits)
	}
	for i := 0; i < s.n; i++ {
		if s.at(i) != o.at(i) {
			return false
		}
	}
	return true
}

func (s *bitStorage) clone() storage[bool] {
	return &bitStorage{n: s.n, bits: s.bits.Clone()}
}

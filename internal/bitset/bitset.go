// Package bitset provides a fixed-capacity bit vector for voxel
// deduplication.
//
// The grid for b quantization bits has 2^(3b) cells, one bit per cell.
// A flat word array keeps the O(1) fixed-memory guarantee a hash set
// cannot give; a dirty list allows O(K) reset where K is the number of
// set bits.
package bitset

import (
	"math/bits"
)

// VoxelSet is a non-thread-safe bit vector sized at construction.
// The pipeline is single-threaded, so no atomics are needed.
type VoxelSet struct {
	words []uint64
	size  uint64
	dirty []uint64
}

// New creates a VoxelSet holding size bits.
func New(size uint64) *VoxelSet {
	return &VoxelSet{
		words: make([]uint64, (size+63)/64),
		size:  size,
		dirty: make([]uint64, 0, 128),
	}
}

// TestAndSet sets the bit at i and returns true if it was ALREADY set.
// Out-of-range indices report as set so callers drop them.
func (s *VoxelSet) TestAndSet(i uint64) bool {
	if i >= s.size {
		return true
	}
	wordIdx := i >> 6
	bitMask := uint64(1) << (i & 63)

	if s.words[wordIdx]&bitMask != 0 {
		return true
	}
	s.words[wordIdx] |= bitMask
	s.dirty = append(s.dirty, i)
	return false
}

// Test returns true if the bit at i is set.
func (s *VoxelSet) Test(i uint64) bool {
	if i >= s.size {
		return false
	}
	return s.words[i>>6]&(uint64(1)<<(i&63)) != 0
}

// Count returns the number of set bits.
func (s *VoxelSet) Count() int {
	count := 0
	for _, w := range s.words {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// Keys appends the indices of all set bits to dst in ascending order
// and returns the extended slice.
func (s *VoxelSet) Keys(dst []uint32) []uint32 {
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			dst = append(dst, uint32(wi*64+b))
			w &= w - 1
		}
	}
	return dst
}

// Reset clears all set bits without releasing the word array.
func (s *VoxelSet) Reset() {
	for _, i := range s.dirty {
		s.words[i>>6] &^= uint64(1) << (i & 63)
	}
	s.dirty = s.dirty[:0]
}

// Len returns the capacity of the set in bits.
func (s *VoxelSet) Len() uint64 {
	return s.size
}

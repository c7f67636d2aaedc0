// Package hilbert maps 3D grid coordinates to a 1D curve index and back.
//
// The mapping processes one bit per axis per level, starting at the most
// significant bit. Each level contributes a 3-bit octant to the index and
// advances an axis-permutation state drawn from a fixed 8-entry table.
// Every step is invertible, so the mapping is a bijection between
// order-bit coordinates and 3*order-bit indices for any table; the table
// below is tuned so that sibling octants share low-order index prefixes.
package hilbert

// rotations maps each octant to the axis permutation applied before the
// next level. rotations[oct][i] selects which current axis becomes axis i.
var rotations = [8][3]int{
	{2, 1, 0},
	{1, 2, 0},
	{0, 1, 2},
	{0, 2, 1},
	{0, 2, 1},
	{0, 1, 2},
	{1, 2, 0},
	{2, 1, 0},
}

// MaxOrder is the largest supported curve order (bits per axis).
// 3*MaxOrder index bits must fit well inside a uint64.
const MaxOrder = 16

// Encode maps order-bit coordinates (x, y, z) to a curve index in
// [0, 2^(3*order)). Coordinate bits above the order are ignored.
func Encode(x, y, z uint32, order int) uint64 {
	c := [3]uint32{x, y, z}
	axes := [3]int{0, 1, 2}

	var idx uint64
	for level := order - 1; level >= 0; level-- {
		bx := (c[axes[0]] >> uint(level)) & 1
		by := (c[axes[1]] >> uint(level)) & 1
		bz := (c[axes[2]] >> uint(level)) & 1
		oct := bx<<2 | by<<1 | bz

		idx = idx<<3 | uint64(oct)
		axes = permute(axes, rotations[oct])
	}
	return idx
}

// Decode maps a curve index back to order-bit coordinates. It replays
// the encoder's octant sequence most-significant-first, so it is the
// exact inverse of Encode.
func Decode(idx uint64, order int) (x, y, z uint32) {
	var c [3]uint32
	axes := [3]int{0, 1, 2}

	for level := order - 1; level >= 0; level-- {
		oct := uint32(idx>>uint(3*level)) & 7
		c[axes[0]] |= ((oct >> 2) & 1) << uint(level)
		c[axes[1]] |= ((oct >> 1) & 1) << uint(level)
		c[axes[2]] |= (oct & 1) << uint(level)

		axes = permute(axes, rotations[oct])
	}
	return c[0], c[1], c[2]
}

func permute(axes [3]int, rot [3]int) [3]int {
	return [3]int{axes[rot[0]], axes[rot[1]], axes[rot[2]]}
}

package ascon

import "math/bits"

// EntropyPool4 is the caller-owned randomness buffer consumed by
// PermuteMasked4: 6 fresh 32-bit words (24 bytes total), one per
// unordered pair of the four shares. The caller fills it before each
// call; PermuteMasked4 refreshes it in place on return so the caller
// can feed the same buffer back in as the seed for the next call
// rather than re-keying a fresh source every invocation.
type EntropyPool4 [6]uint32

// rotTable4 selects, for each unordered share pair (i, j), the amount
// by which that pair's drawn word is rotated before use. The table is
// symmetric and zero on the diagonal; the off-diagonal amounts are
// distinct so that no two pairs consume the pool in the same way.
var rotTable4 = [4][4]int{
	{0, 7, 13, 29},
	{7, 0, 17, 23},
	{13, 17, 0, 31},
	{29, 23, 31, 0},
}

// draw derives a 64-bit value for the unordered pair (i, j) from two
// of the pool's six 32-bit words, decorrelated per pair by rotTable4.
func (p *EntropyPool4) draw(i, j, slot int) uint64 {
	a := uint64(p[slot])
	b := uint64(p[(slot+1)%6])
	v := a | (b << 32)
	return bits.RotateLeft64(v, rotTable4[i][j])
}

// refresh folds t0 (the round's accumulated reshare word) into the
// pool and rotates each channel by a fixed amount (7, 13 or 29 bits) so
// consecutive rounds draw different-looking values from the same
// caller-supplied seed.
func (p *EntropyPool4) refresh(t0 uint64) {
	shift := [6]uint{7, 13, 29, 7, 13, 29}
	for i := range p {
		p[i] = bits.RotateLeft32(p[i]^uint32(t0>>(8*i)), int(shift[i]))
	}
}

// EntropyPool2 is the analogous caller-owned randomness buffer for
// PermuteMasked2: two 32-bit words, combined into the single 64-bit
// value drawn for the one share pair.
type EntropyPool2 [2]uint32

var rotTable2 = [2][2]int{
	{0, 19},
	{19, 0},
}

func (p *EntropyPool2) draw() uint64 {
	a := uint64(p[0])
	b := uint64(p[1])
	v := a | (b << 32)
	return bits.RotateLeft64(v, rotTable2[0][1])
}

func (p *EntropyPool2) refresh(t0 uint64) {
	p[0] = bits.RotateLeft32(p[0]^uint32(t0), 19)
	p[1] = bits.RotateLeft32(p[1]^uint32(t0>>8), 11)
}

package ascon

import "math/bits"

// round applies one round of the ASCON permutation: round-constant
// addition, the 5-bit S-box applied bitwise across the five words, and
// the linear diffusion layer.
func round(s *State, c uint64) {
	x0, x1, x2, x3, x4 := s.x0, s.x1, s.x2, s.x3, s.x4

	// Round constant addition.
	x2 ^= c

	// Substitution layer: a chi-like 5-bit S-box, applied bitwise
	// across the five words.
	x0 ^= x4
	x4 ^= x3
	x2 ^= x1

	t0 := x0 ^ (^x1 & x2)
	t1 := x1 ^ (^x2 & x3)
	t2 := x2 ^ (^x3 & x4)
	t3 := x3 ^ (^x4 & x0)
	t4 := x4 ^ (^x0 & x1)

	t1 ^= t0
	t0 ^= t4
	t3 ^= t2
	t2 = ^t2

	// Linear diffusion layer.
	s.x0 = t0 ^ rotr(t0, 19) ^ rotr(t0, 28)
	s.x1 = t1 ^ rotr(t1, 61) ^ rotr(t1, 39)
	s.x2 = t2 ^ rotr(t2, 1) ^ rotr(t2, 6)
	s.x3 = t3 ^ rotr(t3, 10) ^ rotr(t3, 17)
	s.x4 = t4 ^ rotr(t4, 7) ^ rotr(t4, 41)
}

func rotr(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, -n)
}

package ascon

// Share2 is a word represented as the XOR of two share-words, the
// first-order masked analog of Share4.
type Share2 [2]uint64

// Unshare recombines a share representation into its logical word.
func (s Share2) Unshare() uint64 {
	return s[0] ^ s[1]
}

// Reshare2 produces a fresh representation of w given one fresh
// entropy word.
func Reshare2(w uint64, e uint64) Share2 {
	return Share2{e, w ^ e}
}

// Masked2State is the 2-share masked representation of a State.
type Masked2State struct {
	x [5]Share2
}

// NewMasked2State shares an unmasked state using one fresh entropy
// word per logical word (X0..X4 order).
func NewMasked2State(s State, e [5]uint64) *Masked2State {
	m := &Masked2State{}
	words := [5]uint64{s.x0, s.x1, s.x2, s.x3, s.x4}
	for i, w := range words {
		m.x[i] = Reshare2(w, e[i])
	}
	return m
}

// Unshare recombines the masked state into a regular State.
func (m *Masked2State) Unshare() State {
	return State{
		x0: m.x[0].Unshare(),
		x1: m.x[1].Unshare(),
		x2: m.x[2].Unshare(),
		x3: m.x[3].Unshare(),
		x4: m.x[4].Unshare(),
	}
}

// Clear zeros both shares of every word.
func (m *Masked2State) Clear() {
	*m = Masked2State{}
}

// PermuteMasked2 applies rounds firstRound..11 of the ASCON
// permutation to a 2-share masked state, the first-order analog of
// PermuteMasked4.
func PermuteMasked2(m *Masked2State, firstRound int, pool *EntropyPool2) {
	for r := firstRound; r < 12; r++ {
		maskedRound2(m, rc[r], pool)
	}
}

func maskedRound2(m *Masked2State, c uint64, pool *EntropyPool2) {
	x0, x1, x2, x3, x4 := m.x[0], m.x[1], m.x[2], m.x[3], m.x[4]

	x2[0] ^= c

	for k := 0; k < 2; k++ {
		x0[k] ^= x4[k]
		x4[k] ^= x3[k]
		x2[k] ^= x1[k]
	}

	t0 := andNot2(x1, x2, pool)
	t1 := andNot2(x2, x3, pool)
	t2 := andNot2(x3, x4, pool)
	t3 := andNot2(x4, x0, pool)
	t4 := andNot2(x0, x1, pool)

	for k := 0; k < 2; k++ {
		x0[k] ^= t0[k]
		x1[k] ^= t1[k]
		x2[k] ^= t2[k]
		x3[k] ^= t3[k]
		x4[k] ^= t4[k]
	}

	for k := 0; k < 2; k++ {
		x1[k] ^= x0[k]
		x0[k] ^= x4[k]
		x3[k] ^= x2[k]
	}
	x2[0] = ^x2[0]

	for k := 0; k < 2; k++ {
		x0[k] = x0[k] ^ rotr(x0[k], 19) ^ rotr(x0[k], 28)
		x1[k] = x1[k] ^ rotr(x1[k], 61) ^ rotr(x1[k], 39)
		x2[k] = x2[k] ^ rotr(x2[k], 1) ^ rotr(x2[k], 6)
		x3[k] = x3[k] ^ rotr(x3[k], 10) ^ rotr(x3[k], 17)
		x4[k] = x4[k] ^ rotr(x4[k], 7) ^ rotr(x4[k], 41)
	}

	m.x[0], m.x[1], m.x[2], m.x[3], m.x[4] = x0, x1, x2, x3, x4

	pool.refresh(t0[0] ^ t1[0] ^ t2[0] ^ t3[0] ^ t4[0])
}

func andNot2(a, b Share2, pool *EntropyPool2) Share2 {
	prod := iswAnd2(a, b, pool)
	prod[0] ^= b[0]
	prod[1] ^= b[1]
	return prod
}

// iswAnd2 is the two-share ISW gadget: a single random word masks the
// one cross-share pair.
func iswAnd2(a, b Share2, pool *EntropyPool2) Share2 {
	var c Share2
	c[0] = a[0] & b[0]
	c[1] = a[1] & b[1]

	r := pool.draw()
	tmp := r ^ (a[0] & b[1]) ^ (a[1] & b[0])
	c[0] ^= tmp
	c[1] ^= r
	return c
}

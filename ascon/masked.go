package ascon

// Share4 is a word represented as the XOR of four share-words.
type Share4 [4]uint64

// Unshare recombines a share representation into its logical word.
func (s Share4) Unshare() uint64 {
	return s[0] ^ s[1] ^ s[2] ^ s[3]
}

// Reshare4 produces a fresh representation of the logical word w,
// statistically independent of any earlier one given fresh entropy e
// (three 64-bit masks, typically drawn from the caller's wider randomness source —
// unrelated to the EntropyPool4 consumed internally by
// PermuteMasked4).
func Reshare4(w uint64, e [3]uint64) Share4 {
	var s Share4
	s[0] = e[0]
	s[1] = e[1]
	s[2] = e[2]
	s[3] = w ^ e[0] ^ e[1] ^ e[2]
	return s
}

// Masked4State is the 4-share masked representation of a State: five
// logical words, each held as the XOR of four share-words.
type Masked4State struct {
	x [5]Share4
}

// NewMasked4State shares an unmasked state using the supplied fresh
// entropy (one [3]uint64 per word, in X0..X4 order).
func NewMasked4State(s State, e [5][3]uint64) *Masked4State {
	m := &Masked4State{}
	words := [5]uint64{s.x0, s.x1, s.x2, s.x3, s.x4}
	for i, w := range words {
		m.x[i] = Reshare4(w, e[i])
	}
	return m
}

// Unshare recombines the masked state into a regular State.
func (m *Masked4State) Unshare() State {
	return State{
		x0: m.x[0].Unshare(),
		x1: m.x[1].Unshare(),
		x2: m.x[2].Unshare(),
		x3: m.x[3].Unshare(),
		x4: m.x[4].Unshare(),
	}
}

// Clear zeros every share of every word.
func (m *Masked4State) Clear() {
	*m = Masked4State{}
}

// PermuteMasked4 applies rounds firstRound..11 of the ASCON
// permutation to a 4-share masked state, consuming and refreshing
// pool in place. The functional contract matches Permute: unshared
// output equals Permute applied to the unshared input.
func PermuteMasked4(m *Masked4State, firstRound int, pool *EntropyPool4) {
	for r := firstRound; r < 12; r++ {
		maskedRound4(m, rc[r], pool)
	}
}

func maskedRound4(m *Masked4State, c uint64, pool *EntropyPool4) {
	x0, x1, x2, x3, x4 := m.x[0], m.x[1], m.x[2], m.x[3], m.x[4]

	// Round constant addition: the constant is public, so it is safe
	// to fold into a single share.
	x2[0] ^= c

	// Substitution pre-mix: linear, applied share-wise.
	for k := 0; k < 4; k++ {
		x0[k] ^= x4[k]
		x4[k] ^= x3[k]
		x2[k] ^= x1[k]
	}

	// Masked Keccak-style S-box: each AND gate (~a)&b is computed as
	// b ^ ISW-AND(a, b), using the ISW secure-multiplication gadget
	// (Ishai-Sahai-Wagner) to combine the shares without ever forming
	// an unmasked intermediate. See SPEC_FULL.md / DESIGN.md for why
	// this replaces the rotation-indexed formula sketched in the
	// source notes.
	t0 := andNot4(x1, x2, pool)
	t1 := andNot4(x2, x3, pool)
	t2 := andNot4(x3, x4, pool)
	t3 := andNot4(x4, x0, pool)
	t4 := andNot4(x0, x1, pool)

	for k := 0; k < 4; k++ {
		x0[k] ^= t0[k]
		x1[k] ^= t1[k]
		x2[k] ^= t2[k]
		x3[k] ^= t3[k]
		x4[k] ^= t4[k]
	}

	// Substitution post-mix, same shape as the unmasked round.
	for k := 0; k < 4; k++ {
		x1[k] ^= x0[k]
		x0[k] ^= x4[k]
		x3[k] ^= x2[k]
	}
	// x2 = ^x2 logically; flipping a single share inverts the XOR of
	// all four, so fold the negation into share 0 alone.
	x2[0] = ^x2[0]

	// Linear diffusion layer, applied share-wise.
	for k := 0; k < 4; k++ {
		x0[k] = x0[k] ^ rotr(x0[k], 19) ^ rotr(x0[k], 28)
		x1[k] = x1[k] ^ rotr(x1[k], 61) ^ rotr(x1[k], 39)
		x2[k] = x2[k] ^ rotr(x2[k], 1) ^ rotr(x2[k], 6)
		x3[k] = x3[k] ^ rotr(x3[k], 10) ^ rotr(x3[k], 17)
		x4[k] = x4[k] ^ rotr(x4[k], 7) ^ rotr(x4[k], 41)
	}

	m.x[0], m.x[1], m.x[2], m.x[3], m.x[4] = x0, x1, x2, x3, x4

	// Fold the round's accumulated reshare material (share 0 of each
	// AND-gate output, never an unshared value) back into the entropy
	// pool so the caller can reuse the same buffer as the seed for the
	// next invocation.
	pool.refresh(t0[0] ^ t1[0] ^ t2[0] ^ t3[0] ^ t4[0])
}

// andNot4 computes shares of (~A)&B, where A and B are the logical
// words represented by a and b, without ever materializing A or B.
// (~A)&B == B ^ (A&B) in the boolean ring (linear in B), so this is
// the ISW product of a and b with b XOR'd in share-wise.
func andNot4(a, b Share4, pool *EntropyPool4) Share4 {
	prod := iswAnd4(a, b, pool)
	prod[0] ^= b[0]
	prod[1] ^= b[1]
	prod[2] ^= b[2]
	prod[3] ^= b[3]
	return prod
}

// iswAnd4 is the Ishai-Sahai-Wagner secure-multiplication gadget for
// four shares: it computes shares of A&B using one fresh random word
// per unordered share pair (six in total), so that no single
// intermediate value is a deterministic function of the unshared A
// or B.
func iswAnd4(a, b Share4, pool *EntropyPool4) Share4 {
	var c Share4
	for i := 0; i < 4; i++ {
		c[i] = a[i] & b[i]
	}
	slot := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			r := pool.draw(i, j, slot)
			slot++
			tmp := r ^ (a[i] & b[j]) ^ (a[j] & b[i])
			c[i] ^= tmp
			c[j] ^= r
		}
	}
	return c
}

package ascon

import "encoding/binary"

// Rate is the sponge rate, in bytes, shared by every construction in
// this package (the XOF family and ASCON-80pq-SIV both absorb and
// squeeze through the top 8 bytes of the permutation state).
const Rate = 8

// direction indicates which way bytes are currently flowing through a
// sponge.
type direction int

const (
	absorbing direction = iota
	squeezing
)

// Sponge is the incremental absorb/squeeze interface shared by the
// XOF and XOFA constructions. It mirrors the shape of a classic
// Keccak-style sponge API (SpongeSize, Rate, SecurityStrength, Absorb,
// Squeeze, Pad) plus the operations this package's secret-hygiene
// contract requires (ClearRate, Copy, Free).
type Sponge interface {
	// SpongeSize returns the size, in bytes, of the permutation state
	// underlying the sponge (always 40 for ASCON).
	SpongeSize() int
	// Rate returns the number of bytes absorbed or squeezed per
	// permutation call.
	Rate() int
	// SecurityStrength returns the generic security strength, in
	// bits, of this sponge instance: 8 * (SpongeSize()-Rate()) / 2.
	SecurityStrength() int

	// Absorb XORs input into the sponge's rate, permuting as each
	// block fills. It panics if called after the sponge has
	// transitioned to squeezing.
	Absorb(p []byte) int
	// Squeeze reads n bytes of output, permuting as each block is
	// exhausted. The first call pads and permutes once to transition
	// the sponge from absorbing to squeezing; the transition is
	// one-way.
	Squeeze(dst []byte, n int) []byte

	// Pad applies one domain-padding byte and one permutation if the
	// rate buffer holds any unpermuted data; it is a no-op on an
	// empty (block-aligned) buffer.
	Pad()
	// ClearRate pads, zeros the rate portion of the state, and
	// permutes once, destroying the ability to run the permutation
	// backward from the current state to recover prior input.
	ClearRate()

	// Copy returns an independent clone of the sponge.
	Copy() Sponge
	// Free scrubs all sensitive bytes held by the sponge.
	Free()
}

// spongeState is the shared implementation backing the XOF and XOFA
// constructions: a permutation state, a rate-sized input/output
// buffer, a byte position within that buffer, and an absorb/squeeze
// direction flag.
type spongeState struct {
	s          State
	startRound int
	buf        [Rate]byte
	count      int
	dir        direction
}

func (sp *spongeState) SpongeSize() int { return 40 }
func (sp *spongeState) Rate() int       { return Rate }
func (sp *spongeState) SecurityStrength() int {
	return 8 * (sp.SpongeSize() - sp.Rate()) / 2
}

// absorbBlock XORs a full rate-sized block into the state's rate word
// and permutes.
func (sp *spongeState) absorbBlock(b [Rate]byte) {
	sp.s.x0 ^= binary.BigEndian.Uint64(b[:])
	Permute(&sp.s, sp.startRound)
}

// squeezeBlock permutes to refresh the rate word, then captures the
// new block of output bytes.
func (sp *spongeState) squeezeBlock() [Rate]byte {
	Permute(&sp.s, sp.startRound)
	return squeezeBufOf(sp.s)
}

func (sp *spongeState) Absorb(p []byte) int {
	if sp.dir == squeezing {
		panic("ascon: Absorb called after the sponge has begun squeezing")
	}
	written := 0
	for len(p) > 0 {
		n := min(len(p), Rate-sp.count)
		copy(sp.buf[sp.count:sp.count+n], p[:n])
		sp.count += n
		p = p[n:]
		written += n
		if sp.count == Rate {
			sp.absorbBlock(sp.buf)
			sp.buf = [Rate]byte{}
			sp.count = 0
		}
	}
	return written
}

// transitionToSqueeze pads the partial block unconditionally (even an
// empty one) and permutes once, per the absorb->squeeze mode
// transition in the sponge's construction.
func (sp *spongeState) transitionToSqueeze() {
	sp.buf[sp.count] ^= 0x80
	sp.absorbBlock(sp.buf)
	sp.buf = squeezeBufOf(sp.s)
	sp.count = 0
	sp.dir = squeezing
}

func squeezeBufOf(s State) [Rate]byte {
	var b [Rate]byte
	binary.BigEndian.PutUint64(b[:], s.x0)
	return b
}

func (sp *spongeState) Squeeze(dst []byte, n int) []byte {
	if sp.dir == absorbing {
		sp.transitionToSqueeze()
	}
	out := make([]byte, n)
	written := 0
	for written < n {
		avail := Rate - sp.count
		take := min(n-written, avail)
		copy(out[written:written+take], sp.buf[sp.count:sp.count+take])
		sp.count += take
		written += take
		if sp.count == Rate {
			sp.buf = sp.squeezeBlock()
			sp.count = 0
		}
	}
	return append(dst, out...)
}

func (sp *spongeState) Pad() {
	if sp.count == 0 {
		return
	}
	sp.buf[sp.count] ^= 0x80
	sp.absorbBlock(sp.buf)
	sp.buf = [Rate]byte{}
	sp.count = 0
}

func (sp *spongeState) ClearRate() {
	sp.Pad()
	sp.s.x0 = 0
	Permute(&sp.s, sp.startRound)
}

// Copy returns an independent clone of sp.
func (sp *spongeState) Copy() Sponge {
	return sp.clone()
}

func (sp *spongeState) clone() *spongeState {
	c := *sp
	return &c
}

// Free scrubs all sensitive bytes held by sp.
func (sp *spongeState) Free() {
	sp.scrub()
}

func (sp *spongeState) scrub() {
	sp.s.Clear()
	sp.buf = [Rate]byte{}
	sp.count = 0
}

// spongeState is the package's baseline Sponge implementation; XOF
// layers fixed-output bookkeeping on top of an embedded spongeState
// and satisfies Sponge itself (see xof.go).
var _ Sponge = (*spongeState)(nil)

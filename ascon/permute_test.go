package ascon

import (
	"testing"

	"github.com/go-quicktest/qt"
)

// reference applies round() directly from firstRound..11, independent
// of Permute's own loop, as a cross-check that Permute's loop bounds
// match the single-round function's contract.
func reference(s State, firstRound int) State {
	for r := firstRound; r < 12; r++ {
		round(&s, rc[r])
	}
	return s
}

func TestPermuteMatchesReferenceLoop(t *testing.T) {
	for _, firstRound := range []int{0, 1, 6, 11, 12} {
		firstRound := firstRound
		t.Run("", func(t *testing.T) {
			s := State{x0: 1, x1: 2, x2: 3, x3: 4, x4: 5}
			got := s
			Permute(&got, firstRound)
			want := reference(s, firstRound)
			qt.Assert(t, qt.Equals(got, want))
		})
	}
}

func TestPermuteFullRoundsIsNoopAtTwelve(t *testing.T) {
	s := State{x0: 0xdead, x1: 0xbeef, x2: 1, x3: 2, x4: 3}
	got := s
	Permute(&got, 12)
	qt.Assert(t, qt.Equals(got, s))
}

func TestPermuteDeterministic(t *testing.T) {
	s := State{x0: 0x123456789abcdef0, x1: 1, x2: 2, x3: 3, x4: 4}
	a := s
	b := s
	Permute(&a, 0)
	Permute(&b, 0)
	qt.Assert(t, qt.Equals(a, b))
}

func TestPermuteChangesAllZeroState(t *testing.T) {
	var s State
	Permute(&s, 0)
	if s == (State{}) {
		t.Fatal("Permute(0^320, 0) must not be the fixed point zero")
	}
}

func TestStateBytesRoundTrip(t *testing.T) {
	s := State{
		x0: 0x0001020304050607,
		x1: 0x08090a0b0c0d0e0f,
		x2: 0x1011121314151617,
		x3: 0x18191a1b1c1d1e1f,
		x4: 0x2021222324252627,
	}
	var got State
	got.SetBytes(s.Bytes())
	qt.Assert(t, qt.Equals(got, s))
}

func TestStateClear(t *testing.T) {
	s := State{x0: 1, x1: 2, x2: 3, x3: 4, x4: 5}
	s.Clear()
	qt.Assert(t, qt.Equals(s, State{}))
}

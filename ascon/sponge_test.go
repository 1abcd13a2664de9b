package ascon

import (
	"bytes"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestSpongeAbsorbPanicsAfterSqueezeBegins(t *testing.T) {
	sp := &spongeState{}
	sp.Absorb([]byte("hello"))
	sp.Squeeze(nil, 8)

	defer func() {
		if recover() == nil {
			t.Fatal("Absorb after Squeeze has begun did not panic")
		}
	}()
	sp.Absorb([]byte("late"))
}

func TestSpongePadNoopOnAlignedBuffer(t *testing.T) {
	sp := &spongeState{}
	sp.Absorb(bytes.Repeat([]byte{0x42}, Rate))
	before := sp.s
	sp.Pad()
	qt.Assert(t, qt.Equals(sp.s, before))
	qt.Assert(t, qt.Equals(sp.count, 0))
}

func TestSpongePadPermutesOnPartialBuffer(t *testing.T) {
	sp := &spongeState{}
	sp.Absorb([]byte{0x01, 0x02, 0x03})
	before := sp.s
	sp.Pad()
	if sp.s == before {
		t.Fatal("Pad on a partial buffer did not change the state")
	}
	qt.Assert(t, qt.Equals(sp.count, 0))
}

func TestSpongeCopyIsIndependent(t *testing.T) {
	sp := &spongeState{}
	sp.Absorb([]byte("shared prefix"))
	clone := sp.Copy()

	sp.Absorb([]byte("-original"))
	clone.Absorb([]byte("-clone"))

	outOriginal := sp.Squeeze(nil, 32)
	outClone := clone.Squeeze(nil, 32)
	if bytes.Equal(outOriginal, outClone) {
		t.Fatal("spongeState.Copy shared state with the original after diverging")
	}
}

func TestSpongeFreeScrubsState(t *testing.T) {
	sp := &spongeState{}
	sp.Absorb([]byte("secret"))
	sp.Free()
	qt.Assert(t, qt.Equals(sp.s, State{}))
	qt.Assert(t, qt.Equals(sp.count, 0))
}

func TestSpongeClearRateLeavesSpongeAbsorbing(t *testing.T) {
	sp := &spongeState{}
	sp.Absorb([]byte("seed"))
	sp.ClearRate()
	// x0 is zeroed immediately before the final permute, so it need not
	// be zero afterward, but ClearRate must still leave the sponge
	// absorbing and ready for further input.
	qt.Assert(t, qt.Equals(sp.dir, absorbing))
	qt.Assert(t, qt.Equals(sp.count, 0))
}

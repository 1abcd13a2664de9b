package ascon

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestXOFDeterministic(t *testing.T) {
	a := NewXOF()
	a.Absorb([]byte("abc"))
	outA := a.Squeeze(nil, 32)

	b := NewXOF()
	b.Absorb([]byte("abc"))
	outB := b.Squeeze(nil, 32)

	qt.Assert(t, qt.DeepEquals(outA, outB))
}

func TestXOFDistinctInputsDistinctOutput(t *testing.T) {
	a := NewXOF()
	a.Absorb([]byte("abc"))
	outA := a.Squeeze(nil, 32)

	b := NewXOF()
	b.Absorb([]byte("abd"))
	outB := b.Squeeze(nil, 32)

	if bytes.Equal(outA, outB) {
		t.Fatal("distinct inputs produced identical XOF output")
	}
}

func TestXOFIncrementalAbsorbMatchesSingleShot(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")

	a := NewXOF()
	a.Absorb(msg)
	outA := a.Squeeze(nil, 64)

	b := NewXOF()
	b.Absorb(msg[:10])
	b.Absorb(msg[10:20])
	b.Absorb(msg[20:])
	outB := b.Squeeze(nil, 64)

	qt.Assert(t, qt.DeepEquals(outA, outB))
}

func TestXOFIncrementalSqueezeMatchesSingleShot(t *testing.T) {
	a := NewXOF()
	a.Absorb([]byte("data"))
	outA := a.Squeeze(nil, 40)

	b := NewXOF()
	b.Absorb([]byte("data"))
	outB := append(b.Squeeze(nil, 16), b.Squeeze(nil, 24)...)

	qt.Assert(t, qt.DeepEquals(outA, outB))
}

func TestSumMatchesIncrementalXOF(t *testing.T) {
	msg := []byte("sum-equivalence")

	out := make([]byte, 32)
	Sum(out, msg)

	x := NewXOF()
	x.Absorb(msg)
	want := x.Squeeze(nil, 32)

	qt.Assert(t, qt.DeepEquals(out, want))
}

func TestSumADistinctFromSum(t *testing.T) {
	msg := []byte("variant-separation")
	out := make([]byte, 32)
	Sum(out, msg)
	outA := make([]byte, 32)
	SumA(outA, msg)

	if bytes.Equal(out, outA) {
		t.Fatal("ASCON-XOF and ASCON-XOFA produced identical output")
	}
}

// TestXOFKnownAnswerPrefix checks the leading bytes of ASCON-XOF("")
// and ASCON-XOF("abc") against the published reference digests.
func TestXOFKnownAnswerPrefix(t *testing.T) {
	cases := []struct {
		name       string
		in         []byte
		wantPrefix []byte
	}{
		{"empty", nil, []byte{0x02, 0x19, 0x6b, 0x5d, 0x55, 0x18, 0xe5, 0x92}},
		{"abc", []byte("abc"), []byte{0xb9, 0x8a, 0x31, 0xff, 0x15, 0x0c, 0x68, 0x77}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out := make([]byte, 32)
			Sum(out, tc.in)
			qt.Assert(t, qt.DeepEquals(out[:len(tc.wantPrefix)], tc.wantPrefix))
		})
	}
}

func TestNewXOFFixedRejectsOverLongOutput(t *testing.T) {
	_, err := NewXOFFixed(maxFixedOutputBytes + 1)
	if !errors.Is(err, ErrOutputTooLong) {
		t.Fatalf("got err %v, want ErrOutputTooLong", err)
	}
}

func TestNewXOFFixedTruncatesOutput(t *testing.T) {
	x, err := NewXOFFixed(16)
	qt.Assert(t, qt.IsNil(err))
	x.Absorb([]byte("fixed"))
	out := x.Squeeze(nil, 64)
	qt.Assert(t, qt.Equals(len(out), 16))
}

func TestXOFSatisfiesSponge(t *testing.T) {
	var s Sponge = NewXOF()
	qt.Assert(t, qt.Equals(s.SpongeSize(), 40))
	qt.Assert(t, qt.Equals(s.Rate(), Rate))
	qt.Assert(t, qt.Equals(s.SecurityStrength(), 128))

	s.Absorb([]byte("via the Sponge interface"))
	clone := s.Copy()

	s.Squeeze(nil, 8)
	out1 := clone.Squeeze(nil, 8)
	out2 := clone.Squeeze(nil, 8)
	if bytes.Equal(out1, out2) {
		t.Fatal("Copy returned an aliased Sponge that didn't advance independently")
	}
}

func TestXOFCloneDivergesIndependently(t *testing.T) {
	a := NewXOF()
	a.Absorb([]byte("shared prefix"))
	b := a.Clone()

	a.Absorb([]byte("-a"))
	b.Absorb([]byte("-b"))

	outA := a.Squeeze(nil, 32)
	outB := b.Squeeze(nil, 32)
	if bytes.Equal(outA, outB) {
		t.Fatal("clones that diverged before squeezing produced identical output")
	}
}

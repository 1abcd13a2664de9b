// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ascon implements the ASCON permutation and the sponge-mode
// constructions built on it: the ASCON-XOF/ASCON-XOFA extensible-output
// functions and the ASCON-80pq-SIV AEAD, together with a masked
// (side-channel-resistant) permutation backend.
//
// For a detailed specification, see https://ascon.iaik.tugraz.at
package ascon

import "encoding/binary"

// rc holds the twelve round constants used by the full twelve-round
// permutation, indexed by round number (0 is the first of p^12).
var rc = [12]uint64{
	0xf0, 0xe1, 0xd2, 0xc3,
	0xb4, 0xa5, 0x96, 0x87,
	0x78, 0x69, 0x5a, 0x4b,
}

// State is the 320-bit ASCON permutation state, viewed as five 64-bit
// words in regular (big-endian) form.
type State struct {
	x0, x1, x2, x3, x4 uint64
}

// Permute applies rounds firstRound..11 of the ASCON permutation.
// firstRound must be in [0, 12]; firstRound == 12 is a no-op, matching
// p^0.
func Permute(s *State, firstRound int) {
	for r := firstRound; r < 12; r++ {
		round(s, rc[r])
	}
}

// Clear zeros the state, scrubbing any secret material it held.
func (s *State) Clear() {
	*s = State{}
}

// Bytes serializes the state into a 40-byte regular (big-endian)
// encoding, as used by the sponge and SIV layers to address the state
// byte-wise.
func (s *State) Bytes() [40]byte {
	var b [40]byte
	binary.BigEndian.PutUint64(b[0:8], s.x0)
	binary.BigEndian.PutUint64(b[8:16], s.x1)
	binary.BigEndian.PutUint64(b[16:24], s.x2)
	binary.BigEndian.PutUint64(b[24:32], s.x3)
	binary.BigEndian.PutUint64(b[32:40], s.x4)
	return b
}

// SetBytes loads the state from a 40-byte regular (big-endian)
// encoding, the inverse of Bytes.
func (s *State) SetBytes(b [40]byte) {
	s.x0 = binary.BigEndian.Uint64(b[0:8])
	s.x1 = binary.BigEndian.Uint64(b[8:16])
	s.x2 = binary.BigEndian.Uint64(b[16:24])
	s.x3 = binary.BigEndian.Uint64(b[24:32])
	s.x4 = binary.BigEndian.Uint64(b[32:40])
}

// xorAt XORs b (up to 8 bytes) into the state at the given byte
// offset, left-aligned within the touched word. offset must be a
// multiple of 8 and in [0, 40).
func (s *State) xorAt(offset int, b []byte) {
	var buf [8]byte
	copy(buf[:], b)
	v := binary.BigEndian.Uint64(buf[:])
	if len(b) < 8 {
		// left-align a short tail within the word: shift the loaded
		// bytes (which copy placed at the low end of buf) up to the
		// high end.
		v = bigEndianLeftAlign(buf[:], len(b))
	}
	s.xorWordAt(offset, v)
}

// bigEndianLeftAlign interprets only the first n bytes of buf as a
// big-endian value left-aligned within a 64-bit word (i.e. the bytes
// occupy the high-order end), matching the ASCON padding convention
// for partial blocks.
func bigEndianLeftAlign(buf []byte, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(buf[i]) << (56 - 8*i)
	}
	return v
}

func (s *State) xorWordAt(offset int, v uint64) {
	switch offset {
	case 0:
		s.x0 ^= v
	case 8:
		s.x1 ^= v
	case 16:
		s.x2 ^= v
	case 24:
		s.x3 ^= v
	case 32:
		s.x4 ^= v
	default:
		panic("ascon: xorWordAt: offset out of range")
	}
}

// xorByteAt XORs a single byte into the state at an arbitrary absolute
// byte offset in [0, 40).
func (s *State) xorByteAt(offset int, v byte) {
	buf := s.Bytes()
	buf[offset] ^= v
	s.SetBytes(buf)
}

// xorBytesAt XORs b into the state starting at an arbitrary absolute
// byte offset, which may span a word boundary. offset+len(b) must be
// at most 40.
func (s *State) xorBytesAt(offset int, b []byte) {
	buf := s.Bytes()
	for i, v := range b {
		buf[offset+i] ^= v
	}
	s.SetBytes(buf)
}

func (s *State) wordAt(offset int) uint64 {
	switch offset {
	case 0:
		return s.x0
	case 8:
		return s.x1
	case 16:
		return s.x2
	case 24:
		return s.x3
	case 32:
		return s.x4
	default:
		panic("ascon: wordAt: offset out of range")
	}
}

package ascon

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"

	"github.com/coruus/go-ascon/ascon/internal/subtlebuf"
)

// KeySize is the byte length of an ASCON-80pq-SIV key.
const KeySize = 20

// NonceSize is the byte length of an ASCON-80pq-SIV nonce.
const NonceSize = 16

// TagSize is the byte length of the authentication tag, which also
// serves as the synthetic nonce for the encryption phase.
const TagSize = 16

const (
	ivAuth uint32 = 0xa1400c06
	ivEnc  uint32 = 0xa2400c06
)

// ErrAuthFailed is returned by Open when the supplied ciphertext and
// tag do not verify under the given key, nonce and associated data.
var ErrAuthFailed = errors.New("ascon: message authentication failed")

// SIV is an ASCON-80pq-SIV AEAD instance bound to a single 20-byte
// key. It has the same shape as crypto/cipher.AEAD, deliberately: Seal
// and Open take a dst buffer, a nonce, a plaintext or ciphertext, and
// associated data, and may operate in place when dst and the input
// buffer overlap exactly.
type SIV struct {
	key [KeySize]byte
}

// NewSIV binds an ASCON-80pq-SIV instance to key, which must be
// exactly KeySize bytes.
func NewSIV(key []byte) (*SIV, error) {
	if len(key) != KeySize {
		return nil, errors.New("ascon: ASCON-80pq-SIV key must be 20 bytes")
	}
	c := &SIV{}
	copy(c.key[:], key)
	return c, nil
}

// NonceSize returns the required nonce length.
func (c *SIV) NonceSize() int { return NonceSize }

// Overhead returns the number of bytes Seal adds to the plaintext.
func (c *SIV) Overhead() int { return TagSize }

// initState loads iv (big-endian, 4 bytes) || key (20 bytes) || nonce
// (16 bytes) into the first 40 bytes of a fresh permutation state,
// permutes once, then folds the key a second time into the capacity
// region at byte offset 20.
func initState(iv uint32, key [KeySize]byte, nonce [NonceSize]byte) State {
	var block [40]byte
	binary.BigEndian.PutUint32(block[0:4], iv)
	copy(block[4:24], key[:])
	copy(block[24:40], nonce[:])

	var s State
	s.SetBytes(block)
	Permute(&s, 0)
	s.xorBytesAt(20, key[:])
	return s
}

// adptRounds is the permutation's start-round parameter used between
// blocks while absorbing associated data and plaintext in the
// authentication phase, and while generating OFB keystream blocks in
// the encryption phase.
const adptRounds = 6

// deriveTag runs the authentication phase: absorb associated data then
// plaintext (domain-separated, each padded independently with the
// trailing-bit sponge padding), fold the key back in, and squeeze a
// 16-byte tag.
func deriveTag(key [KeySize]byte, nonce [NonceSize]byte, ad, pt []byte) [TagSize]byte {
	s := initState(ivAuth, key, nonce)

	if len(ad) > 0 {
		absorbDomain(&s, ad)
	}
	// Domain separation between associated data and plaintext: flip
	// the low bit of the last byte of the state (X4 low byte).
	s.xorByteAt(39, 0x01)
	absorbDomain(&s, pt)

	// Fold key bytes 0..7 into X1, permute the full 12 rounds, fold
	// key bytes 4..19 into the last 16 bytes of the state, and read
	// the tag from those same 16 bytes.
	s.xorWordAt(8, binary.BigEndian.Uint64(key[0:8]))
	Permute(&s, 0)
	s.xorBytesAt(24, key[4:20])

	var tag [TagSize]byte
	b := s.Bytes()
	copy(tag[:], b[24:40])
	return tag
}

// absorbDomain absorbs p into s using the rate-8 sponge block schedule,
// permuting with adptRounds between blocks and on the final, padded
// block even when p is empty. The final block uses pad10star1 padding
// (a leading 1 bit after the data and a trailing 1 bit in the last
// byte of the block) rather than the plain pad10star the XOF family
// uses, matching the AD/plaintext absorption rule distinct from
// ordinary sponge absorption.
func absorbDomain(s *State, p []byte) {
	for len(p) >= Rate {
		s.xorWordAt(0, binary.BigEndian.Uint64(p[:Rate]))
		Permute(s, adptRounds)
		p = p[Rate:]
	}
	var last [Rate]byte
	copy(last[:], p)
	last[len(p)] ^= 0x80
	last[Rate-1] ^= 0x01
	s.xorWordAt(0, binary.BigEndian.Uint64(last[:]))
	Permute(s, adptRounds)
}

// keystreamBlock derives the next 8-byte OFB-style keystream block by
// permuting the running state and reading X0.
func keystreamBlock(s *State) [Rate]byte {
	Permute(s, adptRounds)
	var b [Rate]byte
	binary.BigEndian.PutUint64(b[:], s.x0)
	return b
}

// xorStream XORs an OFB-style keystream, generated from s seeded with
// the tag-as-nonce, over src into dst. dst and src may be the same
// slice.
func xorStream(s *State, dst, src []byte) {
	for len(src) >= Rate {
		ks := keystreamBlock(s)
		for i := 0; i < Rate; i++ {
			dst[i] = src[i] ^ ks[i]
		}
		dst = dst[Rate:]
		src = src[Rate:]
	}
	if len(src) > 0 {
		ks := keystreamBlock(s)
		for i := range src {
			dst[i] = src[i] ^ ks[i]
		}
	}
}

// Seal encrypts and authenticates plaintext and authenticates (but
// does not encrypt) ad, appending the result to dst. nonce must be
// NonceSize bytes. The returned slice's last TagSize bytes are the
// synthetic-IV tag; the bytes before that are the ciphertext.
func (c *SIV) Seal(dst, nonce, plaintext, ad []byte) []byte {
	if len(nonce) != NonceSize {
		panic("ascon: incorrect nonce length for ASCON-80pq-SIV")
	}
	var n [NonceSize]byte
	copy(n[:], nonce)

	ret, out := subtlebuf.SliceForAppend(dst, len(plaintext)+TagSize)
	if subtlebuf.InexactOverlap(out, plaintext) {
		panic("ascon: invalid buffer overlap in Seal")
	}

	tag := deriveTag(c.key, n, ad, plaintext)

	s := initState(ivEnc, c.key, tag)
	xorStream(&s, out[:len(plaintext)], plaintext)
	copy(out[len(plaintext):], tag[:])

	return ret
}

// Open decrypts and verifies ciphertext (which must include the
// trailing TagSize-byte tag) against ad, appending the recovered
// plaintext to dst. If authentication fails it returns nil and
// ErrAuthFailed, after zeroing any plaintext it had written past dst's
// original length.
func (c *SIV) Open(dst, nonce, ciphertext, ad []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("ascon: incorrect nonce length for ASCON-80pq-SIV")
	}
	if len(ciphertext) < TagSize {
		return nil, ErrAuthFailed
	}
	var n [NonceSize]byte
	copy(n[:], nonce)

	ct := ciphertext[:len(ciphertext)-TagSize]
	var wantTag [TagSize]byte
	copy(wantTag[:], ciphertext[len(ciphertext)-TagSize:])

	ret, out := subtlebuf.SliceForAppend(dst, len(ct))
	if subtlebuf.InexactOverlap(out, ct) {
		panic("ascon: invalid buffer overlap in Open")
	}

	s := initState(ivEnc, c.key, wantTag)
	xorStream(&s, out, ct)

	gotTag := deriveTag(c.key, n, ad, out)
	if subtle.ConstantTimeCompare(gotTag[:], wantTag[:]) != 1 {
		for i := range out {
			out[i] = 0
		}
		return nil, ErrAuthFailed
	}
	return ret, nil
}

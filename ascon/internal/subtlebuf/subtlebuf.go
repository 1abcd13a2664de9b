// Package subtlebuf provides the buffer-aliasing helpers that AEAD
// implementations need to support the in-place and dst==nil calling
// conventions of crypto/cipher.AEAD.
package subtlebuf

import "unsafe"

// SliceForAppend extends in by n bytes, returning both the full slice
// and the tail that was appended. It reuses in's backing array when
// there's enough capacity, matching the pattern used throughout
// crypto/cipher and the AEAD constructions it inspired.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}

// InexactOverlap reports whether x and y share memory at any offset
// other than the start of both slices. Disjoint slices and slices
// that are identical from the start (the normal in-place case) return
// false; partial overlaps, which would corrupt output, return true.
func InexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	xp := unsafe.Pointer(&x[0])
	yp := unsafe.Pointer(&y[0])
	if xp == yp {
		return false
	}
	xEnd := unsafe.Add(xp, len(x))
	yEnd := unsafe.Add(yp, len(y))
	return uintptr(xp) < uintptr(yEnd) && uintptr(yp) < uintptr(xEnd)
}

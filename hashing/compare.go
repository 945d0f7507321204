package hashing

import "crypto/subtle"

// ConstantTimeEqual reports whether a and b hold the same bytes.
//
// Unlike [subtle.ConstantTimeCompare] it does not return early when the
// lengths differ: every position up to the longer length is visited, and the
// length difference is folded into the same accumulator as the byte
// differences.  Running time depends only on max(len(a), len(b)).
func ConstantTimeEqual(a, b []byte) bool {
	eq, _ := compareBytes(a, b)
	return eq
}

// compareBytes is ConstantTimeEqual plus the number of byte pairs visited.
func compareBytes(a, b []byte) (bool, int) {
	n := max(len(a), len(b))
	acc := uint64(len(a) ^ len(b))
	for i := 0; i < n; i++ {
		var x, y byte
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		acc |= uint64(x ^ y)
	}
	folded := uint32(acc) | uint32(acc>>32)
	return subtle.ConstantTimeEq(int32(folded), 0) == 1, n
}

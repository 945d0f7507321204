package hashing

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// strictStd rejects non-zero trailing bits so every byte sequence has exactly
// one accepted encoding.
var strictStd = base64.StdEncoding.Strict()

// Encode returns the standard, padded base64 encoding of b on a single line.
// It is the text form of both fields of a [Record].
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Decode reverses [Encode].  Input containing characters outside the
// standard alphabet, line breaks, missing or misplaced padding, or
// non-canonical trailing bits fails with [ErrDecoding].
func Decode(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: line breaks are not allowed", ErrDecoding)
	}
	b, err := strictStd.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return b, nil
}

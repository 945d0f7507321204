package hashing

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm names a PBKDF2 variant by its pseudorandom function.  The values
// are the JCA SecretKeyFactory identifiers, so configuration written for a
// JVM deployment can be reused as is.
type Algorithm string

const (
	PBKDF2WithHmacSHA1       Algorithm = "PBKDF2WithHmacSHA1"
	PBKDF2WithHmacSHA224     Algorithm = "PBKDF2WithHmacSHA224"
	PBKDF2WithHmacSHA256     Algorithm = "PBKDF2WithHmacSHA256"
	PBKDF2WithHmacSHA384     Algorithm = "PBKDF2WithHmacSHA384"
	PBKDF2WithHmacSHA512     Algorithm = "PBKDF2WithHmacSHA512"
	PBKDF2WithHmacSHA512_224 Algorithm = "PBKDF2WithHmacSHA512/224"
	PBKDF2WithHmacSHA512_256 Algorithm = "PBKDF2WithHmacSHA512/256"
)

// DriverName identifies a hashing driver in PHC strings and in a [Manager].
type DriverName string

const (
	DriverPBKDF2SHA1       DriverName = "pbkdf2-sha1"
	DriverPBKDF2SHA224     DriverName = "pbkdf2-sha224"
	DriverPBKDF2SHA256     DriverName = "pbkdf2-sha256"
	DriverPBKDF2SHA384     DriverName = "pbkdf2-sha384"
	DriverPBKDF2SHA512     DriverName = "pbkdf2-sha512"
	DriverPBKDF2SHA512_224 DriverName = "pbkdf2-sha512-224"
	DriverPBKDF2SHA512_256 DriverName = "pbkdf2-sha512-256"
)

type variant struct {
	algorithm Algorithm
	driver    DriverName
	newHash   func() hash.Hash
}

// variants is ordered by digest strength; SupportedAlgorithms preserves it.
var variants = []variant{
	{PBKDF2WithHmacSHA1, DriverPBKDF2SHA1, sha1.New},
	{PBKDF2WithHmacSHA224, DriverPBKDF2SHA224, sha256.New224},
	{PBKDF2WithHmacSHA256, DriverPBKDF2SHA256, sha256.New},
	{PBKDF2WithHmacSHA384, DriverPBKDF2SHA384, sha512.New384},
	{PBKDF2WithHmacSHA512, DriverPBKDF2SHA512, sha512.New},
	{PBKDF2WithHmacSHA512_224, DriverPBKDF2SHA512_224, sha512.New512_224},
	{PBKDF2WithHmacSHA512_256, DriverPBKDF2SHA512_256, sha512.New512_256},
}

// SupportedAlgorithms returns every algorithm identifier accepted by
// [NewConfig], weakest digest first.
func SupportedAlgorithms() []Algorithm {
	out := make([]Algorithm, len(variants))
	for i, v := range variants {
		out[i] = v.algorithm
	}
	return out
}

// ParseAlgorithm resolves s to an [Algorithm].  Both the JCA identifier
// ("PBKDF2WithHmacSHA512") and the PHC driver name ("pbkdf2-sha512") are
// accepted.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, v := range variants {
		if s == string(v.algorithm) || s == string(v.driver) {
			return v.algorithm, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Driver returns the PHC driver name for a.  The second return value is
// false when a is not supported.
func (a Algorithm) Driver() (DriverName, bool) {
	v, ok := lookupAlgorithm(a)
	return v.driver, ok
}

// Supported reports whether a names a known PBKDF2 variant.
func (a Algorithm) Supported() bool {
	_, ok := lookupAlgorithm(a)
	return ok
}

func lookupAlgorithm(a Algorithm) (variant, bool) {
	for _, v := range variants {
		if v.algorithm == a {
			return v, true
		}
	}
	return variant{}, false
}

func lookupDriver(d DriverName) (variant, bool) {
	for _, v := range variants {
		if v.driver == d {
			return v, true
		}
	}
	return variant{}, false
}

package hashing

import "strings"

// Hasher is the interface satisfied by self-describing password-hash
// drivers.  [PasswordHasher] implements it for every PBKDF2 variant, and a
// [Manager] dispatches across several of them.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string.
	// A fresh cryptographic salt is generated for every call, so two calls
	// with the same password will produce different outputs.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid.
	Check(password, hash string) (bool, error)

	// NeedsRehash returns true when the hash was produced with parameters
	// weaker than the hasher's current configuration.  Callers should
	// re-hash the password on the next successful login when this returns
	// true.
	NeedsRehash(hash string) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying it.
	Info(hash string) (HashInfo, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	// Driver is the variant that produced the hash.
	Driver DriverName

	// Params holds the parameters extracted from the hash string:
	// "algorithm", "iterations", "salt_len" and "key_len".
	Params map[string]any
}

// DetectDriver inspects a hash string and returns the [DriverName] named in
// its first segment.  It does not validate the rest of the string.
//
// The second return value is false when the hash format is not recognised.
func DetectDriver(hash string) (DriverName, bool) {
	rest, ok := strings.CutPrefix(hash, "$")
	if !ok {
		return "", false
	}
	name, _, ok := strings.Cut(rest, "$")
	if !ok {
		return "", false
	}
	if _, known := lookupDriver(DriverName(name)); !known {
		return "", false
	}
	return DriverName(name), true
}

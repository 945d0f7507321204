package hashing

import "io"

// ResetGlobal clears the process-wide configuration so Init can be exercised
// more than once in a test binary.
func ResetGlobal() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.cfg = Config{}
}

// SetRandom replaces the salt source of h.
func SetRandom(h *PasswordHasher, r io.Reader) { h.rand = r }

// CompareBytes exposes the step count of ConstantTimeEqual.
var CompareBytes = compareBytes

package hashing

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Record is a stored credential: the salt and the derived key, each in the
// text form produced by [Encode].  Callers persist both fields together and
// pass them back to [PasswordHasher.Authenticate].
type Record struct {
	Salt string `json:"salt" yaml:"salt"`
	Key  string `json:"key" yaml:"key"`
}

// PasswordHasher derives and verifies salted PBKDF2 password hashes.
//
// Password arguments are taken as byte slices and zeroed before the method
// returns, whether or not it succeeds.  Callers that need to keep the
// plaintext must pass a copy.
//
// # Thread safety
//
// PasswordHasher is immutable after construction and safe for concurrent use.
// Derivation is CPU bound and has no internal limit; run concurrent
// derivations on separate goroutines.
type PasswordHasher struct {
	cfg  Config
	v    variant
	rand io.Reader
}

// New returns a PasswordHasher bound to cfg.  A zero cfg fails with
// [ErrNotInitialized].
func New(cfg Config) (*PasswordHasher, error) {
	if cfg.IsZero() {
		return nil, ErrNotInitialized
	}
	v, ok := lookupAlgorithm(cfg.algorithm)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.algorithm)
	}
	return &PasswordHasher{cfg: cfg, v: v, rand: rand.Reader}, nil
}

// Config returns the configuration the hasher was built with.
func (h *PasswordHasher) Config() Config { return h.cfg }

// Driver returns the PHC driver name of the configured variant.
func (h *PasswordHasher) Driver() DriverName { return h.v.driver }

// GenerateSalt returns [Config.SaltSize] fresh bytes from crypto/rand.
func (h *PasswordHasher) GenerateSalt() ([]byte, error) {
	return randomSalt(h.rand, h.cfg.SaltSize())
}

// DeriveKey runs PBKDF2 over password and salt with the configured PRF,
// iteration count, and [Config.KeySize] output length.  The same inputs
// always yield the same key.  password is zeroed before DeriveKey returns.
func (h *PasswordHasher) DeriveKey(password, salt []byte) ([]byte, error) {
	defer clear(password)
	return deriveKey(h.v, password, salt, h.cfg.iterations, h.cfg.KeySize())
}

// ComputeHash generates a fresh salt, derives the key, and returns both as a
// [Record].  It is the only way to create a new record.  password is zeroed
// before ComputeHash returns.
func (h *PasswordHasher) ComputeHash(password []byte) (Record, error) {
	salt, key, err := h.compute(password)
	if err != nil {
		return Record{}, err
	}
	return Record{Salt: Encode(salt), Key: Encode(key)}, nil
}

// Authenticate reports whether password matches the stored salt and key.
//
// It returns (true, nil) on a match and (false, nil) on a wrong password.
// Malformed stored text returns (false, err) with err wrapping [ErrDecoding];
// the derivation and comparison still run, against a zero salt, so the
// malformed path takes as long as a wrong password.  password is zeroed
// before Authenticate returns.
func (h *PasswordHasher) Authenticate(password []byte, storedSalt, storedKey string) (bool, error) {
	defer clear(password)

	salt, saltErr := Decode(storedSalt)
	if saltErr != nil {
		salt = make([]byte, h.cfg.SaltSize())
		saltErr = fmt.Errorf("salt: %w", saltErr)
	}
	stored, keyErr := Decode(storedKey)
	if keyErr != nil {
		keyErr = fmt.Errorf("key: %w", keyErr)
	}

	computed, err := deriveKey(h.v, password, salt, h.cfg.iterations, h.cfg.KeySize())
	if err != nil {
		return false, err
	}
	ok := ConstantTimeEqual(computed, stored)

	if err := errors.Join(saltErr, keyErr); err != nil {
		return false, err
	}
	return ok, nil
}

// compute is the shared body of ComputeHash and Make.
func (h *PasswordHasher) compute(password []byte) (salt, key []byte, err error) {
	defer clear(password)
	salt, err = h.GenerateSalt()
	if err != nil {
		return nil, nil, err
	}
	key, err = deriveKey(h.v, password, salt, h.cfg.iterations, h.cfg.KeySize())
	if err != nil {
		return nil, nil, err
	}
	return salt, key, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

// maxBlocks is the PBKDF2 block counter limit from RFC 8018 §5.2.
const maxBlocks = 1<<32 - 1

func deriveKey(v variant, password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if v.newHash == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, v.algorithm)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be ≥ 1, got %d", ErrInvalidParameter, iterations)
	}
	if keyLen < 1 {
		return nil, fmt.Errorf("%w: key length must be ≥ 1 byte, got %d", ErrInvalidParameter, keyLen)
	}
	if uint64(keyLen) > maxBlocks*uint64(v.newHash().Size()) {
		return nil, fmt.Errorf("%w: key length %d bytes exceeds the %s limit",
			ErrInvalidParameter, keyLen, v.algorithm)
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, v.newHash), nil
}

// randomSalt returns n cryptographically random bytes read from r.
func randomSalt(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("hashing: failed to generate salt: %w", err)
	}
	return b, nil
}

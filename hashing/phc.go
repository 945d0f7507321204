package hashing

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ──────────────────────────────────────────────────────────────────────────────
// PHC string format
// ──────────────────────────────────────────────────────────────────────────────

// PHC is a self-describing password hash: the parameters travel with the
// salt and key, so a record can be verified (and migrated) without
// out-of-band configuration.  Its text form is
//
//	$pbkdf2-sha512$i=210000$<salt>$<key>
//
// where salt and key use standard base64 without padding, the convention of
// PHC strings produced by other libraries.
type PHC struct {
	Driver     DriverName
	Iterations int
	Salt       []byte
	Key        []byte
}

// String serialises p.
func (p PHC) String() string {
	return fmt.Sprintf("$%s$i=%d$%s$%s",
		string(p.Driver),
		p.Iterations,
		base64.RawStdEncoding.EncodeToString(p.Salt),
		base64.RawStdEncoding.EncodeToString(p.Key),
	)
}

// FormatPHC renders rec, produced under cfg, as a PHC string.  A zero cfg
// fails with [ErrNotInitialized].
func FormatPHC(rec Record, cfg Config) (string, error) {
	if cfg.IsZero() {
		return "", ErrNotInitialized
	}
	driver, ok := cfg.algorithm.Driver()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.algorithm)
	}
	salt, err := Decode(rec.Salt)
	if err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}
	key, err := Decode(rec.Key)
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	return PHC{Driver: driver, Iterations: cfg.iterations, Salt: salt, Key: key}.String(), nil
}

// ParsePHC parses a PHC string produced by [PHC.String].
//
// Expected format (5 dollar-delimited segments, first is empty):
//
//	$pbkdf2-sha512$i=210000$<salt>$<key>
func ParsePHC(encoded string) (PHC, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "" {
		return PHC{}, fmt.Errorf("%w: expected 4-segment PHC string, got %d segments",
			ErrInvalidHash, len(parts)-1)
	}

	driver := DriverName(parts[1])
	if _, ok := lookupDriver(driver); !ok {
		return PHC{}, fmt.Errorf("%w: unknown driver %q", ErrInvalidHash, parts[1])
	}

	iterations, err := parseKV(parts[2], "i")
	if err != nil {
		return PHC{}, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if iterations < 1 || iterations > math.MaxInt32 {
		return PHC{}, fmt.Errorf("%w: iterations %d out of range", ErrInvalidHash, iterations)
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[3])
	if err != nil || len(salt) == 0 {
		return PHC{}, fmt.Errorf("%w: invalid salt base64", ErrInvalidHash)
	}
	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil || len(key) == 0 {
		return PHC{}, fmt.Errorf("%w: invalid key base64", ErrInvalidHash)
	}

	return PHC{
		Driver:     driver,
		Iterations: int(iterations),
		Salt:       salt,
		Key:        key,
	}, nil
}

// parseKV parses a "key=value" string and returns the uint64 value.
func parseKV(s, key string) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	return strconv.ParseUint(s[len(prefix):], 10, 64)
}

// ──────────────────────────────────────────────────────────────────────────────
// Hasher implementation
// ──────────────────────────────────────────────────────────────────────────────

// Make hashes password and returns a PHC string.  A fresh salt is generated
// for every call.
func (h *PasswordHasher) Make(password string) (string, error) {
	salt, key, err := h.compute([]byte(password))
	if err != nil {
		return "", err
	}
	return PHC{Driver: h.v.driver, Iterations: h.cfg.iterations, Salt: salt, Key: key}.String(), nil
}

// Check verifies password against a PHC string.  The iteration count, salt,
// and key length are read from the string itself, so hashes made before a
// configuration change still verify.
func (h *PasswordHasher) Check(password, hash string) (bool, error) {
	p, err := h.parseOwn(hash)
	if err != nil {
		return false, err
	}
	pw := []byte(password)
	defer clear(pw)
	computed, err := deriveKey(h.v, pw, p.Salt, p.Iterations, len(p.Key))
	if err != nil {
		return false, err
	}
	return ConstantTimeEqual(computed, p.Key), nil
}

// NeedsRehash returns true if the iteration count, salt length, or key length
// stored in hash is below the hasher's configuration.  Records that already
// meet or exceed every parameter are left alone.
func (h *PasswordHasher) NeedsRehash(hash string) (bool, error) {
	p, err := h.parseOwn(hash)
	if err != nil {
		return false, err
	}
	return p.Iterations < h.cfg.iterations ||
		len(p.Salt) < h.cfg.SaltSize() ||
		len(p.Key) < h.cfg.KeySize(), nil
}

// Info parses the PHC string and returns the encoded parameters.
//
// Returned [HashInfo].Params:
//   - "algorithm"  → Algorithm
//   - "iterations" → int
//   - "salt_len"   → int (bytes)
//   - "key_len"    → int (bytes)
func (h *PasswordHasher) Info(hash string) (HashInfo, error) {
	p, err := h.parseOwn(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return phcInfo(p), nil
}

func (h *PasswordHasher) parseOwn(hash string) (PHC, error) {
	p, err := ParsePHC(hash)
	if err != nil {
		return PHC{}, err
	}
	if p.Driver != h.v.driver {
		return PHC{}, fmt.Errorf("%w: hash is %s, not %s", ErrAlgorithmMismatch, p.Driver, h.v.driver)
	}
	return p, nil
}

func phcInfo(p PHC) HashInfo {
	v, _ := lookupDriver(p.Driver)
	return HashInfo{
		Driver: p.Driver,
		Params: map[string]any{
			"algorithm":  v.algorithm,
			"iterations": p.Iterations,
			"salt_len":   len(p.Salt),
			"key_len":    len(p.Key),
		},
	}
}

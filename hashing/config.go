package hashing

import (
	"fmt"
	"math"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultAlgorithm is the PBKDF2 variant used by [DefaultOptions].
	DefaultAlgorithm = PBKDF2WithHmacSHA512

	// DefaultKeyLength is the default requested key length in bits.
	DefaultKeyLength = 512

	// DefaultSaltLength is the default random salt length in bits.
	DefaultSaltLength = 128

	// DefaultIterations is the default PBKDF2 work factor.
	// OWASP's 2023 guidance for PBKDF2-HMAC-SHA512 is 210 000 iterations.
	DefaultIterations = 210_000
)

// Options are the inputs to [NewConfig] and [Init].
//
// Lengths are in bits and must be multiples of 8.  The derived key is
// KeyLength + SaltLength bits long: existing records were produced that way
// and must keep verifying, so [Config.KeyLength] reports the sum.
type Options struct {
	// Algorithm selects the HMAC pseudorandom function.
	// Default: [DefaultAlgorithm].
	Algorithm Algorithm

	// KeyLength is the requested key length in bits, before the salt length
	// is added.  Default: [DefaultKeyLength] (512).
	KeyLength int

	// SaltLength is the random salt length in bits.
	// Default: [DefaultSaltLength] (128).
	SaltLength int

	// Iterations is the PBKDF2 iteration count.
	// Default: [DefaultIterations] (210 000).
	Iterations int
}

// DefaultOptions returns Options with the recommended defaults.
func DefaultOptions() Options {
	return Options{
		Algorithm:  DefaultAlgorithm,
		KeyLength:  DefaultKeyLength,
		SaltLength: DefaultSaltLength,
		Iterations: DefaultIterations,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Config
// ──────────────────────────────────────────────────────────────────────────────

// Config is a validated, immutable hashing configuration.  Construct it once
// with [NewConfig] and share it by value; there are no setters.
//
// The zero Config is the "not initialized" state and is rejected by [New].
type Config struct {
	algorithm        Algorithm
	saltLength       int
	derivedKeyLength int
	iterations       int
}

// NewConfig validates opts and freezes them into a Config.
//
// Returns [ErrUnsupportedAlgorithm] for an unknown algorithm identifier and
// [ErrInvalidParameter] for non-positive lengths or iterations, lengths that
// are not whole bytes, or a derived key longer than the variant can produce.
func NewConfig(opts Options) (Config, error) {
	v, ok := lookupAlgorithm(opts.Algorithm)
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, opts.Algorithm)
	}
	if err := validateLength("key length", opts.KeyLength); err != nil {
		return Config{}, err
	}
	if err := validateLength("salt length", opts.SaltLength); err != nil {
		return Config{}, err
	}
	if opts.Iterations < 1 {
		return Config{}, fmt.Errorf("%w: iterations must be ≥ 1, got %d",
			ErrInvalidParameter, opts.Iterations)
	}
	if opts.KeyLength > math.MaxInt-opts.SaltLength {
		return Config{}, fmt.Errorf("%w: key length %d + salt length %d overflows",
			ErrInvalidParameter, opts.KeyLength, opts.SaltLength)
	}
	derived := opts.KeyLength + opts.SaltLength
	if limit := maxBlocks * uint64(v.newHash().Size()); uint64(derived/8) > limit {
		return Config{}, fmt.Errorf("%w: derived key of %d bytes exceeds the %s limit of %d bytes",
			ErrInvalidParameter, derived/8, opts.Algorithm, limit)
	}
	return Config{
		algorithm:        opts.Algorithm,
		saltLength:       opts.SaltLength,
		derivedKeyLength: derived,
		iterations:       opts.Iterations,
	}, nil
}

func validateLength(name string, bits int) error {
	if bits < 8 {
		return fmt.Errorf("%w: %s must be ≥ 8 bits, got %d", ErrInvalidParameter, name, bits)
	}
	if bits%8 != 0 {
		return fmt.Errorf("%w: %s must be a multiple of 8 bits, got %d", ErrInvalidParameter, name, bits)
	}
	return nil
}

// Algorithm returns the configured PBKDF2 variant.
func (c Config) Algorithm() Algorithm { return c.algorithm }

// SaltLength returns the salt length in bits.
func (c Config) SaltLength() int { return c.saltLength }

// KeyLength returns the derived key length in bits.  This already includes
// the salt length: Options{KeyLength: 512, SaltLength: 64} yields 576.
func (c Config) KeyLength() int { return c.derivedKeyLength }

// Iterations returns the PBKDF2 iteration count.
func (c Config) Iterations() int { return c.iterations }

// SaltSize returns the salt length in bytes.
func (c Config) SaltSize() int { return c.saltLength / 8 }

// KeySize returns the derived key length in bytes.
func (c Config) KeySize() int { return c.derivedKeyLength / 8 }

// IsZero reports whether c is the zero Config.
func (c Config) IsZero() bool { return c == Config{} }

// Options returns options that reproduce c through [NewConfig].
func (c Config) Options() Options {
	return Options{
		Algorithm:  c.algorithm,
		KeyLength:  c.derivedKeyLength - c.saltLength,
		SaltLength: c.saltLength,
		Iterations: c.iterations,
	}
}

// String renders c without any secret material, for logs and diagnostics.
func (c Config) String() string {
	if c.IsZero() {
		return "hashing.Config{}"
	}
	return fmt.Sprintf("%s(iterations=%d, salt=%d bits, key=%d bits)",
		c.algorithm, c.iterations, c.saltLength, c.derivedKeyLength)
}

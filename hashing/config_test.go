package hashing_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hasbyte1/go-securepass/hashing"
)

// ──────────────────────────────────────────────────────────────────────────────
// NewConfig
// ──────────────────────────────────────────────────────────────────────────────

func TestNewConfig_StoresParameters(t *testing.T) {
	cfg, err := hashing.NewConfig(hashing.Options{
		Algorithm:  hashing.PBKDF2WithHmacSHA512,
		KeyLength:  512,
		SaltLength: 64,
		Iterations: 50000,
	})
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Algorithm() != hashing.PBKDF2WithHmacSHA512 {
		t.Errorf("Algorithm = %q", cfg.Algorithm())
	}
	if cfg.Iterations() != 50000 {
		t.Errorf("Iterations = %d, want 50000", cfg.Iterations())
	}
	if cfg.SaltLength() != 64 {
		t.Errorf("SaltLength = %d, want 64", cfg.SaltLength())
	}
	if cfg.SaltSize() != 8 {
		t.Errorf("SaltSize = %d, want 8", cfg.SaltSize())
	}
}

func TestNewConfig_KeyLengthIncludesSaltLength(t *testing.T) {
	cfg, err := hashing.NewConfig(hashing.Options{
		Algorithm:  hashing.PBKDF2WithHmacSHA512,
		KeyLength:  512,
		SaltLength: 64,
		Iterations: 1,
	})
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.KeyLength() != 576 {
		t.Errorf("KeyLength = %d bits, want 576", cfg.KeyLength())
	}
	if cfg.KeySize() != 72 {
		t.Errorf("KeySize = %d bytes, want 72", cfg.KeySize())
	}
}

func TestNewConfig_InvalidParameters(t *testing.T) {
	valid := hashing.Options{Algorithm: hashing.PBKDF2WithHmacSHA256, KeyLength: 256, SaltLength: 64, Iterations: 1}
	tests := []struct {
		name   string
		mutate func(*hashing.Options)
	}{
		{"iterations=0", func(o *hashing.Options) { o.Iterations = 0 }},
		{"iterations<0", func(o *hashing.Options) { o.Iterations = -5 }},
		{"key_len=0", func(o *hashing.Options) { o.KeyLength = 0 }},
		{"key_len<0", func(o *hashing.Options) { o.KeyLength = -256 }},
		{"key_len not whole bytes", func(o *hashing.Options) { o.KeyLength = 257 }},
		{"salt_len=0", func(o *hashing.Options) { o.SaltLength = 0 }},
		{"salt_len not whole bytes", func(o *hashing.Options) { o.SaltLength = 60 }},
		{"derived length overflows", func(o *hashing.Options) { o.KeyLength, o.SaltLength = math.MaxInt-7, 8 }},
		{"derived length above PBKDF2 limit", func(o *hashing.Options) {
			// sha1 tops out at (2^32-1) 20-byte blocks.
			sha1Max := uint64(1<<32-1) * 20
			o.Algorithm = hashing.PBKDF2WithHmacSHA1
			o.KeyLength = int(sha1Max+1) * 8
			o.SaltLength = 8
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			_, err := hashing.NewConfig(opts)
			if !errors.Is(err, hashing.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestNewConfig_UnsupportedAlgorithm(t *testing.T) {
	for _, alg := range []hashing.Algorithm{"", "PBKDF2WithHmacMD5", "bcrypt", "pbkdf2-sha512"} {
		opts := hashing.DefaultOptions()
		opts.Algorithm = alg
		_, err := hashing.NewConfig(opts)
		if !errors.Is(err, hashing.ErrUnsupportedAlgorithm) {
			t.Errorf("algorithm %q: expected ErrUnsupportedAlgorithm, got %v", alg, err)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := hashing.DefaultOptions()
	if opts.Algorithm != hashing.DefaultAlgorithm {
		t.Errorf("Algorithm = %q, want %q", opts.Algorithm, hashing.DefaultAlgorithm)
	}
	if opts.KeyLength != hashing.DefaultKeyLength {
		t.Errorf("KeyLength = %d, want %d", opts.KeyLength, hashing.DefaultKeyLength)
	}
	if opts.SaltLength != hashing.DefaultSaltLength {
		t.Errorf("SaltLength = %d, want %d", opts.SaltLength, hashing.DefaultSaltLength)
	}
	if opts.Iterations != hashing.DefaultIterations {
		t.Errorf("Iterations = %d, want %d", opts.Iterations, hashing.DefaultIterations)
	}
	if _, err := hashing.NewConfig(opts); err != nil {
		t.Errorf("DefaultOptions must validate: %v", err)
	}
}

func TestConfig_OptionsReproducesConfig(t *testing.T) {
	cfg, _ := hashing.NewConfig(hashing.DefaultOptions())
	again, err := hashing.NewConfig(cfg.Options())
	if err != nil {
		t.Fatalf("NewConfig(cfg.Options()): %v", err)
	}
	if again != cfg {
		t.Errorf("round trip changed config: %v != %v", again, cfg)
	}
}

func TestConfig_ZeroValue(t *testing.T) {
	var cfg hashing.Config
	if !cfg.IsZero() {
		t.Error("zero Config must report IsZero")
	}
	valid, _ := hashing.NewConfig(hashing.DefaultOptions())
	if valid.IsZero() {
		t.Error("validated Config must not report IsZero")
	}
}

func TestConfig_String(t *testing.T) {
	cfg, _ := hashing.NewConfig(hashing.DefaultOptions())
	s := cfg.String()
	if !strings.Contains(s, string(hashing.PBKDF2WithHmacSHA512)) || !strings.Contains(s, "iterations=210000") {
		t.Errorf("unexpected String(): %q", s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Algorithms
// ──────────────────────────────────────────────────────────────────────────────

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want hashing.Algorithm
	}{
		{"PBKDF2WithHmacSHA1", hashing.PBKDF2WithHmacSHA1},
		{"PBKDF2WithHmacSHA512/256", hashing.PBKDF2WithHmacSHA512_256},
		{"pbkdf2-sha256", hashing.PBKDF2WithHmacSHA256},
		{"pbkdf2-sha512-224", hashing.PBKDF2WithHmacSHA512_224},
	}
	for _, tt := range tests {
		got, err := hashing.ParseAlgorithm(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAlgorithm_Unknown(t *testing.T) {
	_, err := hashing.ParseAlgorithm("PBKDF2WithHmacSHA3-256")
	if !errors.Is(err, hashing.ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestSupportedAlgorithms(t *testing.T) {
	algs := hashing.SupportedAlgorithms()
	if len(algs) != 7 {
		t.Fatalf("got %d algorithms, want 7", len(algs))
	}
	for _, a := range algs {
		if !a.Supported() {
			t.Errorf("%q listed but not Supported()", a)
		}
		if _, ok := a.Driver(); !ok {
			t.Errorf("%q has no driver name", a)
		}
	}
}

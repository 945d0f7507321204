package hashing_test

import (
	"bytes"
	"testing"

	"github.com/hasbyte1/go-securepass/hashing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Derivation benchmarks
// ──────────────────────────────────────────────────────────────────────────────
//
// BenchmarkComputeHash_Default is the real-world cost; the Fast variants use
// test parameters and measure framework overhead only.

func BenchmarkComputeHash_Fast(b *testing.B) {
	h := newTestHasher(b, hashing.PBKDF2WithHmacSHA512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.ComputeHash([]byte("bench-password"))
	}
}

func BenchmarkAuthenticate_Fast(b *testing.B) {
	h := newTestHasher(b, hashing.PBKDF2WithHmacSHA512)
	rec, _ := h.ComputeHash([]byte("bench-password"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Authenticate([]byte("bench-password"), rec.Salt, rec.Key)
	}
}

func BenchmarkComputeHash_Default(b *testing.B) {
	cfg, _ := hashing.NewConfig(hashing.DefaultOptions())
	h, _ := hashing.New(cfg)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.ComputeHash([]byte("bench-password"))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Comparison benchmarks
// ──────────────────────────────────────────────────────────────────────────────
//
// The two results should match within noise.

func BenchmarkConstantTimeEqual_FirstByteDiffers(b *testing.B) {
	x := bytes.Repeat([]byte{0x5A}, 72)
	y := bytes.Clone(x)
	y[0] ^= 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hashing.ConstantTimeEqual(x, y)
	}
}

func BenchmarkConstantTimeEqual_LastByteDiffers(b *testing.B) {
	x := bytes.Repeat([]byte{0x5A}, 72)
	y := bytes.Clone(x)
	y[len(y)-1] ^= 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hashing.ConstantTimeEqual(x, y)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Manager benchmarks
// ──────────────────────────────────────────────────────────────────────────────

func BenchmarkManager_CheckWithDetect(b *testing.B) {
	m := newTestManager(b)
	hash, _ := m.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.CheckWithDetect("bench-password", hash)
	}
}

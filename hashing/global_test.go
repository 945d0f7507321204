package hashing_test

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hasbyte1/go-securepass/hashing"
)

// useGlobal gives the test a clean process-wide slot and clears it again
// afterwards.  Tests using it must not run in parallel.
func useGlobal(t *testing.T) {
	t.Helper()
	hashing.ResetGlobal()
	t.Cleanup(hashing.ResetGlobal)
}

func TestInit_SecondCallFails(t *testing.T) {
	useGlobal(t)

	first := fastOptions(hashing.PBKDF2WithHmacSHA512)
	if err := hashing.Init(first); err != nil {
		t.Fatalf("first Init: %v", err)
	}

	second := fastOptions(hashing.PBKDF2WithHmacSHA1)
	second.Iterations = 7
	if err := hashing.Init(second); !errors.Is(err, hashing.ErrAlreadyInitialized) {
		t.Fatalf("second Init: expected ErrAlreadyInitialized, got %v", err)
	}

	cfg, err := hashing.GlobalConfig()
	if err != nil {
		t.Fatalf("GlobalConfig: %v", err)
	}
	if cfg.Algorithm() != first.Algorithm || cfg.Iterations() != first.Iterations {
		t.Errorf("config changed after failed Init: %v", cfg)
	}
}

func TestInit_InvalidOptionsDoNotConsumeSlot(t *testing.T) {
	useGlobal(t)

	zeroIterations := fastOptions(hashing.PBKDF2WithHmacSHA256)
	zeroIterations.Iterations = 0
	overflow := fastOptions(hashing.PBKDF2WithHmacSHA512)
	overflow.KeyLength, overflow.SaltLength = math.MaxInt-7, 8

	for _, bad := range []hashing.Options{zeroIterations, overflow} {
		if err := hashing.Init(bad); !errors.Is(err, hashing.ErrInvalidParameter) {
			t.Fatalf("expected ErrInvalidParameter, got %v", err)
		}
		if hashing.Initialized() {
			t.Fatal("failed Init must not mark the package initialized")
		}
	}
	if err := hashing.Init(fastOptions(hashing.PBKDF2WithHmacSHA256)); err != nil {
		t.Fatalf("Init after failed Init: %v", err)
	}
}

func TestInit_ConcurrentFirstCall(t *testing.T) {
	useGlobal(t)

	const goroutines = 32
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		already   atomic.Int32
	)
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			opts := fastOptions(hashing.PBKDF2WithHmacSHA256)
			opts.Iterations = 100 + i
			switch err := hashing.Init(opts); {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, hashing.ErrAlreadyInitialized):
				already.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if successes.Load() != 1 {
		t.Errorf("successes = %d, want exactly 1", successes.Load())
	}
	if already.Load() != goroutines-1 {
		t.Errorf("ErrAlreadyInitialized = %d, want %d", already.Load(), goroutines-1)
	}
}

func TestNewDefault_BeforeInit(t *testing.T) {
	useGlobal(t)

	if _, err := hashing.NewDefault(); !errors.Is(err, hashing.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if _, err := hashing.GlobalConfig(); !errors.Is(err, hashing.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestNewDefault_AfterInit(t *testing.T) {
	useGlobal(t)

	if err := hashing.Init(fastOptions(hashing.PBKDF2WithHmacSHA512)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	h, err := hashing.NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	rec, err := h.ComputeHash([]byte("Test_Password"))
	if err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}

	other, _ := hashing.NewDefault()
	ok, err := other.Authenticate([]byte("Test_Password"), rec.Salt, rec.Key)
	if err != nil || !ok {
		t.Fatalf("hashers sharing the global config must agree: ok=%v err=%v", ok, err)
	}
}

package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe registry of named [Hasher]s with a default.
//
// It exists for parameter migration: records made under an older variant
// (say pbkdf2-sha1) keep verifying through [Manager.CheckWithDetect] while
// [Manager.NeedsRehash] flags them for re-hashing under the current default.
//
//	ok, _ := m.CheckWithDetect(password, stored)
//	if ok {
//	    if needs, _ := m.NeedsRehash(stored); needs {
//	        upgraded, _ := m.Make(password)
//	        persist(userID, upgraded)
//	    }
//	}
//
// A [sync.RWMutex] serialises RegisterDriver and SetDefaultDriver while
// allowing concurrent hashing calls.
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Register the driver with [Manager.RegisterDriver] before hashing.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with pbkdf2-sha1, pbkdf2-sha256, and
// pbkdf2-sha512 registered at [DefaultOptions] parameters.  The default
// driver is [DriverPBKDF2SHA512].
func NewDefaultManager() (*Manager, error) {
	m := NewManager(DriverPBKDF2SHA512)
	for _, alg := range []Algorithm{PBKDF2WithHmacSHA1, PBKDF2WithHmacSHA256, PBKDF2WithHmacSHA512} {
		opts := DefaultOptions()
		opts.Algorithm = alg
		cfg, err := NewConfig(opts)
		if err != nil {
			return nil, fmt.Errorf("hashing: failed to configure default %s hasher: %w", alg, err)
		}
		h, err := New(cfg)
		if err != nil {
			return nil, fmt.Errorf("hashing: failed to create default %s hasher: %w", alg, err)
		}
		if err := m.RegisterDriver(h.Driver(), h); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RegisterDriver adds or replaces a named hasher.
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Make] and
// [Manager.NeedsRehash].  The named driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the current default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Make hashes password with the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.Driver(m.DefaultDriver())
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash with the default driver.  A hash made
// by another variant fails with [ErrAlgorithmMismatch]; use
// [Manager.CheckWithDetect] when several variants coexist.
func (m *Manager) Check(password, hash string) (bool, error) {
	h, err := m.Driver(m.DefaultDriver())
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// CheckWithDetect verifies password against hash with whichever registered
// driver the hash names.
//
// Returns [ErrInvalidHash] if the hash format is unrecognised and
// [ErrDriverNotFound] if the named driver is not registered.
func (m *Manager) CheckWithDetect(password, hash string) (bool, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be re-hashed: either it names a
// different driver than the current default, or the default driver reports
// weaker parameters.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectDriver(hash)
	if !ok {
		return false, ErrInvalidHash
	}
	def := m.DefaultDriver()
	if detected != def {
		return true, nil
	}
	h, err := m.Driver(def)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

// InfoWithDetect extracts metadata from hash with whichever registered
// driver the hash names.
func (m *Manager) InfoWithDetect(hash string) (HashInfo, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

func (m *Manager) resolveByHash(hash string) (Hasher, error) {
	name, ok := DetectDriver(hash)
	if !ok {
		return nil, ErrInvalidHash
	}
	return m.Driver(name)
}

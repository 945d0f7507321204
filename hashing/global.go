package hashing

import "sync"

// The process-wide configuration slot.  It is written at most once and only
// read afterwards.
var global struct {
	mu  sync.Mutex
	cfg Config
}

// Init validates opts and installs them as the process-wide configuration
// used by [NewDefault].
//
// Only the first successful call wins; every later call returns
// [ErrAlreadyInitialized] and leaves the stored configuration untouched,
// including when several goroutines race on the first call.  Options that
// fail validation return the validation error and do not consume the slot.
//
// New code should prefer [NewConfig] and [New], which avoid global state.
func Init(opts Options) error {
	cfg, err := NewConfig(opts)
	if err != nil {
		return err
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	if !global.cfg.IsZero() {
		return ErrAlreadyInitialized
	}
	global.cfg = cfg
	return nil
}

// Initialized reports whether [Init] has succeeded.
func Initialized() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return !global.cfg.IsZero()
}

// GlobalConfig returns the configuration installed by [Init], or
// [ErrNotInitialized].
func GlobalConfig() (Config, error) {
	global.mu.Lock()
	cfg := global.cfg
	global.mu.Unlock()
	if cfg.IsZero() {
		return Config{}, ErrNotInitialized
	}
	return cfg, nil
}

// NewDefault returns a [PasswordHasher] bound to the process-wide
// configuration.  It fails with [ErrNotInitialized] before [Init].
func NewDefault() (*PasswordHasher, error) {
	cfg, err := GlobalConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := h.Authenticate(password, rec.Salt, rec.Key)
//	if errors.Is(err, hashing.ErrDecoding) {
//	    // stored record is malformed
//	}
var (
	// ErrAlreadyInitialized is returned by [Init] on every call after the
	// first successful one.  The first configuration stays in effect.
	ErrAlreadyInitialized = errors.New("hashing: already initialized; Init may only be called once")

	// ErrNotInitialized is returned when a hasher is requested before a
	// configuration exists: [NewDefault] before [Init], or [New] with a zero
	// [Config].
	ErrNotInitialized = errors.New("hashing: not initialized")

	// ErrUnsupportedAlgorithm is returned when the algorithm identifier does
	// not name a PBKDF2/HMAC variant this package can derive keys with.
	ErrUnsupportedAlgorithm = errors.New("hashing: unsupported algorithm")

	// ErrInvalidParameter is returned when a key length, salt length, or
	// iteration count is outside the range accepted by the algorithm.
	ErrInvalidParameter = errors.New("hashing: invalid parameter")

	// ErrDecoding is returned when stored salt or key text is not valid
	// standard base64 (invalid characters, bad padding, non-canonical bits).
	ErrDecoding = errors.New("hashing: malformed base64 input")

	// ErrInvalidHash is returned when a PHC string cannot be parsed because
	// it has an unrecognised format, missing fields, or invalid encoding.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrAlgorithmMismatch is returned by a [Hasher]'s Check, NeedsRehash, or
	// Info method when the hash string was produced by a different variant
	// than the one implemented by that hasher.
	ErrAlgorithmMismatch = errors.New("hashing: hash was produced by a different algorithm")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Make] / [Manager.Check] when the requested driver has not been
	// registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] when a nil [Hasher]
	// is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")
)

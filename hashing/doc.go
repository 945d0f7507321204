// Package hashing provides salted PBKDF2 password hashing with constant-time
// verification.
//
// # Configuration
//
// A [Config] is built once from [Options] and never changes afterwards.
// Pass it to [New] to get a [PasswordHasher]:
//
//	cfg, err := hashing.NewConfig(hashing.Options{
//	    Algorithm:  hashing.PBKDF2WithHmacSHA512,
//	    KeyLength:  512, // bits
//	    SaltLength: 64,  // bits
//	    Iterations: 50000,
//	})
//	if err != nil { log.Fatal(err) }
//	h, _ := hashing.New(cfg)
//
// The derived key is KeyLength + SaltLength bits long (576 above).  Records
// already in storage were produced with that arithmetic, so it is kept.
//
// Programs that want a single process-wide configuration can call [Init]
// once at startup and [NewDefault] wherever a hasher is needed.  A second
// [Init] fails with [ErrAlreadyInitialized].
//
// # Hashing and authentication
//
//	rec, _ := h.ComputeHash([]byte("Test_Password"))       // fresh salt
//	ok, err := h.Authenticate([]byte("Test_Password"), rec.Salt, rec.Key)
//
// Password slices are zeroed before every method returns.  A wrong password
// yields (false, nil); a malformed record yields (false, err) with err
// wrapping [ErrDecoding], after doing the same amount of work.
//
// # Stored format
//
// A [Record] holds the salt and key as standard padded base64 and nothing
// else; the algorithm, iteration count and lengths must be tracked by the
// caller.  For records that carry their own parameters use the [Hasher]
// methods, which produce PHC strings:
//
//	$pbkdf2-sha512$i=210000$<salt>$<key>
//
// A [Manager] verifies PHC strings from several variants and reports, via
// [Manager.NeedsRehash], which ones should be upgraded on next login.
package hashing

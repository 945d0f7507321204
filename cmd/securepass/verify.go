package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-securepass/hashing"
)

// errMismatch marks a well-formed record that does not match the password.
var errMismatch = errors.New("password does not match")

func newVerifyCmd(c *cli) *cobra.Command {
	var (
		fromStdin bool
		salt      string
		key       string
		phc       string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a password against a stored record",
		Long: `Verify a password against a stored record.

Pass either --salt and --key, which are checked under the configured
algorithm and parameters, or --phc, which carries its own parameters and is
also checked for whether it should be re-hashed under the current settings.

Exits 1 when the password does not match.`,
		Example: `  securepass verify --salt "$SALT" --key "$KEY" --iterations 50000
  echo -n secret | securepass verify --phc '$pbkdf2-sha512$i=210000$...'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if phc == "" && (salt == "" || key == "") {
				return errors.New("either --phc or both --salt and --key are required")
			}
			if phc != "" && (salt != "" || key != "") {
				return errors.New("--phc cannot be combined with --salt or --key")
			}

			current, err := c.newHasher()
			if err != nil {
				return err
			}
			pw, err := readPassword(cmd, fromStdin)
			if err != nil {
				return err
			}

			start := time.Now()
			var out verifyResult
			if phc != "" {
				out, err = verifyPHC(current, pw, phc)
			} else {
				out.Match, err = current.Authenticate(pw, salt, key)
			}
			c.logger.Debug("password verified", "match", out.Match, "elapsed", time.Since(start))
			if err != nil {
				return err
			}

			if err := render(cmd.OutOrStdout(), c.settings.Output, out); err != nil {
				return err
			}
			if !out.Match {
				return errMismatch
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "Read the password from stdin even when it is a terminal")
	cmd.Flags().StringVar(&salt, "salt", "", "Stored salt (base64)")
	cmd.Flags().StringVar(&key, "key", "", "Stored derived key (base64)")
	cmd.Flags().StringVar(&phc, "phc", "", "Stored PHC string")
	return cmd
}

// verifyPHC checks pw against a PHC string of any supported variant and
// reports whether it should be re-hashed under current.
func verifyPHC(current *hashing.PasswordHasher, pw []byte, phc string) (verifyResult, error) {
	defer clear(pw)

	driver, ok := hashing.DetectDriver(phc)
	if !ok {
		return verifyResult{}, hashing.ErrInvalidHash
	}
	m := hashing.NewManager(current.Driver())
	if err := m.RegisterDriver(current.Driver(), current); err != nil {
		return verifyResult{}, err
	}
	if driver != current.Driver() {
		alg, err := hashing.ParseAlgorithm(string(driver))
		if err != nil {
			return verifyResult{}, err
		}
		opts := current.Config().Options()
		opts.Algorithm = alg
		cfg, err := hashing.NewConfig(opts)
		if err != nil {
			return verifyResult{}, fmt.Errorf("configure %s: %w", driver, err)
		}
		legacy, err := hashing.New(cfg)
		if err != nil {
			return verifyResult{}, err
		}
		if err := m.RegisterDriver(driver, legacy); err != nil {
			return verifyResult{}, err
		}
	}

	match, err := m.CheckWithDetect(string(pw), phc)
	if err != nil {
		return verifyResult{}, err
	}
	needs, err := m.NeedsRehash(phc)
	if err != nil {
		return verifyResult{}, err
	}
	return verifyResult{Match: match, NeedsRehash: &needs}, nil
}

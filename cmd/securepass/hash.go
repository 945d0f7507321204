package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-securepass/hashing"
)

func newHashCmd(c *cli) *cobra.Command {
	var (
		fromStdin bool
		phc       bool
	)
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash a password with a fresh salt",
		Long: `Hash a password with a fresh random salt and print the record.

The password is prompted without echo when stdin is a terminal, and read
from the first line of stdin otherwise.

By default the salt and key are printed separately; the algorithm, iteration
count and lengths must then be stored by the caller.  With --phc a single
self-describing string is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := c.newHasher()
			if err != nil {
				return err
			}
			pw, err := readPassword(cmd, fromStdin)
			if err != nil {
				return err
			}

			start := time.Now()
			rec, err := h.ComputeHash(pw)
			if err != nil {
				return err
			}
			cfg := h.Config()
			c.logger.Debug("password hashed", "config", cfg.String(), "elapsed", time.Since(start))

			out := hashResult{
				Algorithm:  string(cfg.Algorithm()),
				Iterations: cfg.Iterations(),
				SaltLength: cfg.SaltLength(),
				KeyLength:  cfg.KeyLength(),
			}
			if phc {
				s, err := hashing.FormatPHC(rec, cfg)
				if err != nil {
					return err
				}
				out.PHC = s
			} else {
				out.Salt, out.Key = rec.Salt, rec.Key
			}
			return render(cmd.OutOrStdout(), c.settings.Output, out)
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "Read the password from stdin even when it is a terminal")
	cmd.Flags().BoolVar(&phc, "phc", false, "Print a self-describing PHC string instead of salt and key")
	return cmd
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-securepass/hashing"
)

// cli is the state shared by the subcommands of one invocation.
type cli struct {
	v        *viper.Viper
	settings *Settings
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "securepass",
		Short: "Salted PBKDF2 password hashing and verification",
		Long: `securepass derives salted PBKDF2 password hashes and verifies
candidate passwords against stored records in constant time.

Parameters come from flags, SECUREPASS_* environment variables, or a YAML
config file, in that order of precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	registerFlags(root, c.v)

	root.AddCommand(newHashCmd(c))
	root.AddCommand(newVerifyCmd(c))
	root.AddCommand(newAlgorithmsCmd(c))
	return root
}

// setup loads settings and the logger before any subcommand runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(c.v)
	if err != nil {
		return err
	}
	c.settings = s
	c.logger = newLogger(cmd.ErrOrStderr(), s.Verbose)
	c.logger.Debug("settings loaded",
		"config_file", c.v.ConfigFileUsed(),
		"algorithm", s.Algorithm,
		"iterations", s.Iterations,
		"salt_length", s.SaltLength,
		"key_length", s.KeyLength,
	)
	return nil
}

// newHasher builds a PasswordHasher from the loaded settings.
func (c *cli) newHasher() (*hashing.PasswordHasher, error) {
	opts, err := c.settings.Options()
	if err != nil {
		return nil, err
	}
	cfg, err := hashing.NewConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("configure hasher: %w", err)
	}
	return hashing.New(cfg)
}

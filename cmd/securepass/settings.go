package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-securepass/hashing"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	// FormatText is human-readable text output
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
	// FormatYAML is structured YAML output
	FormatYAML OutputFormat = "yaml"
)

// Settings is the merged view of flags, environment and config file.
type Settings struct {
	ConfigFile string       `mapstructure:"config"`
	Verbose    bool         `mapstructure:"verbose"`
	Output     OutputFormat `mapstructure:"output" validate:"oneof=text json yaml"`
	Algorithm  string       `mapstructure:"algorithm" validate:"required"`
	KeyLength  int          `mapstructure:"key_length" validate:"bytealigned,gte=8"`
	SaltLength int          `mapstructure:"salt_length" validate:"bytealigned,gte=8"`
	Iterations int          `mapstructure:"iterations" validate:"gte=1"`
}

var settingsValidator = newSettingsValidator()

func newSettingsValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("bytealigned", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%8 == 0
	})
	return v
}

// registerFlags registers persistent flags on the root command and binds
// them to v.
func registerFlags(cmd *cobra.Command, v *viper.Viper) {
	def := hashing.DefaultOptions()
	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")
	flags.StringP("output", "o", string(FormatText), "Output format (text|json|yaml)")
	flags.String("algorithm", string(def.Algorithm), "PBKDF2 variant (see 'securepass algorithms')")
	flags.Int("key-length", def.KeyLength, "Requested key length in bits (the salt length is added)")
	flags.Int("salt-length", def.SaltLength, "Salt length in bits")
	flags.Int("iterations", def.Iterations, "PBKDF2 iteration count")

	for key, flag := range map[string]string{
		"config":      "config",
		"verbose":     "verbose",
		"output":      "output",
		"algorithm":   "algorithm",
		"key_length":  "key-length",
		"salt_length": "salt-length",
		"iterations":  "iterations",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	v.SetEnvPrefix("SECUREPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// loadSettings reads the optional config file, merges it under flags and
// environment, and validates the result.
func loadSettings(v *viper.Viper) (*Settings, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := settingsValidator.Struct(&s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("invalid settings: %s", describe(verrs))
		}
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "bytealigned":
			msgs = append(msgs, fmt.Sprintf("%s must be a multiple of 8 bits", fe.Field()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q (%s)", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(msgs, "; ")
}

// Options converts s into hashing options.
func (s *Settings) Options() (hashing.Options, error) {
	alg, err := hashing.ParseAlgorithm(s.Algorithm)
	if err != nil {
		return hashing.Options{}, err
	}
	return hashing.Options{
		Algorithm:  alg,
		KeyLength:  s.KeyLength,
		SaltLength: s.SaltLength,
		Iterations: s.Iterations,
	}, nil
}

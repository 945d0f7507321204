package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// textWriter is implemented by results that have a human-readable form.
type textWriter interface {
	writeText(w io.Writer) error
}

// render writes v to w in the requested format.
func render(w io.Writer, format OutputFormat, v textWriter) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return v.writeText(w)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// hashResult is the output of 'securepass hash'.
type hashResult struct {
	Algorithm  string `json:"algorithm" yaml:"algorithm"`
	Iterations int    `json:"iterations" yaml:"iterations"`
	SaltLength int    `json:"salt_length" yaml:"salt_length"`
	KeyLength  int    `json:"key_length" yaml:"key_length"`
	Salt       string `json:"salt,omitempty" yaml:"salt,omitempty"`
	Key        string `json:"key,omitempty" yaml:"key,omitempty"`
	PHC        string `json:"phc,omitempty" yaml:"phc,omitempty"`
}

func (r hashResult) writeText(w io.Writer) error {
	if r.PHC != "" {
		_, err := fmt.Fprintln(w, r.PHC)
		return err
	}
	_, err := fmt.Fprintf(w, "salt: %s\nkey:  %s\n", r.Salt, r.Key)
	return err
}

// verifyResult is the output of 'securepass verify'.
type verifyResult struct {
	Match       bool  `json:"match" yaml:"match"`
	NeedsRehash *bool `json:"needs_rehash,omitempty" yaml:"needs_rehash,omitempty"`
}

func (r verifyResult) writeText(w io.Writer) error {
	status := "mismatch"
	if r.Match {
		status = "match"
	}
	if r.NeedsRehash != nil && *r.NeedsRehash {
		status += " (needs rehash)"
	}
	_, err := fmt.Fprintln(w, status)
	return err
}

// algorithmsResult is the output of 'securepass algorithms'.
type algorithmsResult struct {
	Algorithms []algorithmEntry `json:"algorithms" yaml:"algorithms"`
}

type algorithmEntry struct {
	Name   string `json:"name" yaml:"name"`
	Driver string `json:"driver" yaml:"driver"`
}

func (r algorithmsResult) writeText(w io.Writer) error {
	for _, a := range r.Algorithms {
		if _, err := fmt.Fprintf(w, "%-26s %s\n", a.Name, a.Driver); err != nil {
			return err
		}
	}
	return nil
}

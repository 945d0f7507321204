package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoPassword = errors.New("no password provided on stdin")

// readPassword prompts without echo when stdin is a terminal and
// fromStdin is false; otherwise it reads the first line of stdin.
func readPassword(cmd *cobra.Command, fromStdin bool) ([]byte, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !fromStdin && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		return pw, nil
	}

	return readLine(in)
}

// readLine reads up to the first newline one byte at a time, so no copy of
// the password is left in a read-ahead buffer and nothing past the line is
// consumed.  Buffers outgrown along the way are zeroed.
func readLine(r io.Reader) ([]byte, error) {
	var b [1]byte
	defer clear(b[:])

	line := make([]byte, 0, 64)
	sawInput := false
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			sawInput = true
			if b[0] == '\n' {
				break
			}
			if len(line) == cap(line) {
				grown := make([]byte, len(line), 2*cap(line))
				copy(grown, line)
				clear(line)
				line = grown
			}
			line = append(line, b[0])
		}
		if errors.Is(err, io.EOF) {
			if !sawInput {
				return nil, errNoPassword
			}
			break
		}
		if err != nil {
			clear(line)
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
	}
	return bytes.TrimSuffix(line, []byte("\r")), nil
}

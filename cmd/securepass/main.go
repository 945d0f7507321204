// Command securepass hashes passwords and verifies them against stored
// salt/key records.
//
//	securepass hash --iterations 50000 --salt-length 64 --key-length 512
//	securepass verify --salt <salt> --key <key>
//	securepass verify --phc '$pbkdf2-sha512$i=210000$...'
//
// Exit status is 0 on success, 1 when verify finds a mismatch, and 2 on any
// other error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitSuccess  = 0
	exitMismatch = 1
	exitError    = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return exitCode(cmd.ExecuteContext(ctx), stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errMismatch):
		return exitMismatch
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}

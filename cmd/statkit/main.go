package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/statkit-dev/statkit/internal/errs"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Report written
	ExitInputError = 1 // Sample or arguments rejected
	ExitError      = 2 // Configuration, table or runtime error
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring .env", "error", err)
	}

	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errs.IsInputError(err):
		return ExitInputError
	default:
		return ExitError
	}
}

package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/inkmark/pkg/treefile"
)

// Exit codes for inkmark.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitSyntaxErrors indicates the tree contained error nodes (strict mode).
	ExitSyntaxErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates a malformed treefile.
	ExitDataError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to an exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrSyntaxErrors):
		return ExitSyntaxErrors
	case errors.Is(err, ErrNotMarkup),
		errors.Is(err, treefile.ErrUnknownKind),
		errors.Is(err, treefile.ErrMissingLen),
		errors.Is(err, treefile.ErrMissingPayload),
		errors.Is(err, treefile.ErrLeafChildren):
		return ExitDataError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

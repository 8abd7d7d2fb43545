package shellescape

import "errors"

var (
	// ErrUnstringable indicates that a value has no usable string conversion.
	ErrUnstringable = errors.New("value cannot be converted to a string")
	// ErrShellNotFound indicates that the configured shell could not be located.
	ErrShellNotFound = errors.New("shell not found")
	// ErrUnsupportedShell indicates that the resolved shell has no dialect table.
	ErrUnsupportedShell = errors.New("unsupported shell")
	// ErrNoShellQuoting indicates a quote call under a no-shell configuration.
	ErrNoShellQuoting = errors.New("quoting requires a shell")
)

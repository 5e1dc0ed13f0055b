package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is the sentinel wrapped by ConfigurationError.
var ErrInvalidConfiguration = errors.New("invalid configuration")

type (
	// FilesystemError is returned when a source root cannot be read, or the
	// output directory or the prefix file cannot be created or written.
	FilesystemError struct {
		Op   string // e.g. "read source root", "write prefix file"
		Path string
		Err  error
	}

	// ConfigurationError is returned for invalid or contradictory options.
	ConfigurationError struct {
		Field  string
		Reason string
	}

	// ExternalToolError is returned when an unpacking or execution collaborator
	// reports a failure or the translation tool exits with a non-zero status.
	ExternalToolError struct {
		Step     string
		ExitCode int
		Stderr   string
		Err      error
	}
)

func (e *FilesystemError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfiguration so callers can use errors.Is.
func (e *ConfigurationError) Unwrap() error { return ErrInvalidConfiguration }

func (e *ExternalToolError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Step)
	switch {
	case e.Err != nil:
		fmt.Fprintf(&sb, " failed: %v", e.Err)
	default:
		fmt.Fprintf(&sb, " exited with status %d", e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		sb.WriteString("\nOutput:\n")
		sb.WriteString(stderr)
	}
	return sb.String()
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

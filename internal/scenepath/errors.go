package scenepath

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPath matches every *ParseError.
	ErrMalformedPath = errors.New("malformed scene path")
	// ErrNoVersionsFound matches every *NoVersionsFoundError.
	ErrNoVersionsFound = errors.New("no versions found")
	// ErrCancelled is returned when a conflict decision declines to produce a path.
	ErrCancelled = errors.New("save cancelled")
	// ErrMissingProjectRoot is returned by NewBuilder for an empty root.
	ErrMissingProjectRoot = errors.New("project root is not configured")
	// ErrVersionOverflow is returned when a version leaves the 0-999 range.
	ErrVersionOverflow = errors.New("version out of range")
	// ErrInvalidName is returned when a builder input cannot be embedded in a path.
	ErrInvalidName = errors.New("invalid name component")
	// ErrUnknownDecision is returned for decisions outside the three known outcomes.
	ErrUnknownDecision = errors.New("unknown conflict decision")
)

// ParseError describes a path string that does not follow the naming grammar.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse scene path %q: %s", e.Path, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedPath
}

// NoVersionsFoundError reports a file family with no members on disk.
type NoVersionsFoundError struct {
	Pattern string
	Code    string
}

func (e *NoVersionsFoundError) Error() string {
	return fmt.Sprintf("no versions of %s found matching %s", e.Code, e.Pattern)
}

func (e *NoVersionsFoundError) Is(target error) bool {
	return target == ErrNoVersionsFound
}

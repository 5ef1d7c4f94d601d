package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the manifest package
var (
	// ErrNotFound indicates the manifest file does not exist
	ErrNotFound = errors.New("manifest file not found")

	// ErrAccessDenied indicates the manifest file could not be read
	ErrAccessDenied = errors.New("manifest file access denied")

	// ErrMalformedDocument indicates the input is not well-formed XML
	ErrMalformedDocument = errors.New("manifest is not well-formed XML")
)

// UnsupportedFormatError indicates the root format attribute is missing or
// outside the supported set.
type UnsupportedFormatError struct {
	Found string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Found == "" {
		return "unsupported manifest format: format attribute missing"
	}
	return fmt.Sprintf("unsupported manifest format: %q", e.Found)
}

// MissingFieldError indicates a required element is absent, or that a
// required multi-valued element (maintainer, license) has zero entries.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("manifest is missing required field %q", e.Field)
}

// InvalidVersionError indicates the version text is not dotted-numeric.
type InvalidVersionError struct {
	Value string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version format: %q", e.Value)
}

// InvalidEmailError indicates a maintainer or author email attribute does
// not match the basic local@domain shape.
type InvalidEmailError struct {
	Value string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email format: %q", e.Value)
}

// CircularDependencyError indicates the manifest declares its own name as
// one of its dependencies.
type CircularDependencyError struct {
	Package string
	Kind    DependencyKind
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("package %q depends on itself (%s)", e.Package, e.Kind)
}

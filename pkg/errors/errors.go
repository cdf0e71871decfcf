// Package errors defines the typed error values produced by the
// rendering library. Render paths themselves never propagate errors;
// they degrade to safe output. These types exist for the boundaries that
// do return errors: theme loading, terminal queries, and diagnostics.
package errors

import (
	"fmt"
)

// MarkupError reports a markup construct that could not be interpreted.
// Markup application recovers from these silently; the type is surfaced
// only by explicit validation entry points.
type MarkupError struct {
	Tag     string
	Message string
}

// NewMarkupError constructs a MarkupError.
func NewMarkupError(tag, message string) error {
	return &MarkupError{Tag: tag, Message: message}
}

func (e *MarkupError) Error() string {
	if e == nil {
		return ""
	}
	if e.Tag != "" {
		return fmt.Sprintf("markup error: [%s]: %s", e.Tag, e.Message)
	}
	return fmt.Sprintf("markup error: %s", e.Message)
}

// LayoutError captures a recovered renderer failure, retained for
// logging after the console converts it to a visible fallback line.
type LayoutError struct {
	Renderer string
	Err      error
}

// NewLayoutError constructs a LayoutError.
func NewLayoutError(renderer string, err error) error {
	return &LayoutError{Renderer: renderer, Err: err}
}

func (e *LayoutError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("layout error: %s: %v", e.Renderer, e.Err)
}

// Unwrap exposes the underlying error.
func (e *LayoutError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TerminalError reports a failed terminal capability or size query. The
// console falls back to fixed defaults when it sees one.
type TerminalError struct {
	Op  string
	Err error
}

// NewTerminalError constructs a TerminalError.
func NewTerminalError(op string, err error) error {
	return &TerminalError{Op: op, Err: err}
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("terminal error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *TerminalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme configuration issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

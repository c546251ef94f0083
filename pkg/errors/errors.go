// Package errors provides structured error handling for htmllabel.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMarkup indicates markup that could not be parsed.
	KindMarkup
	// KindStyle indicates an inline style value that could not be resolved.
	KindStyle
	// KindLink indicates a failure while activating a hyperlink.
	KindLink
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates an invalid configuration file.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindStyle:
		return "style"
	case KindLink:
		return "link"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error represents a structured error reported by htmllabel.
type Error struct {
	// Op is the operation that failed (e.g., "htmlspan.Convert").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// URL is the link target, if applicable.
	URL string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("%s [%s] url=%s: %v", e.Op, e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "htmlspan.Convert").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// MarkupSyntaxError reports markup that is not well formed, such as
// unbalanced tags or invalid character sequences.
type MarkupSyntaxError struct {
	// Line is the 1-based line of the fragment where parsing stopped.
	// Zero when unknown.
	Line int
	// Msg describes the problem.
	Msg string
}

func (e *MarkupSyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("markup syntax error on line %d: %s", e.Line, e.Msg)
	}
	return "markup syntax error: " + e.Msg
}

// ColorParseError reports a color value that is neither a hex color nor a
// known color name.
type ColorParseError struct {
	// Value is the rejected input.
	Value string
}

func (e *ColorParseError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Value)
}

// StyleError reports an inline style declaration for a known property whose
// value cannot be applied, such as a font size without digits.
type StyleError struct {
	// Property is the lowercased property name.
	Property string
	// Value is the rejected value, empty when the declaration had no colon.
	Value string
	// Msg describes the problem.
	Msg string
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Property, e.Value, e.Msg)
}

// ErrorHandler receives errors reported by htmllabel.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

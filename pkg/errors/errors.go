// Package errors provides structured error handling for the joist toolkit.
package errors

import (
	"fmt"
	"runtime"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration parsing failure.
	KindConfig
	// KindValidation indicates an invalid widget or rule definition.
	KindValidation
	// KindTimeout indicates a test-harness settle timeout.
	KindTimeout
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindValidation:
		return "validation"
	case KindTimeout:
		return "timeout"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ToolkitError represents a structured error in the toolkit.
type ToolkitError struct {
	// Op is the operation that failed (e.g., "wmtest.LoadRules").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ToolkitError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ToolkitError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "wmtest.Runner step").
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

// CaptureStack returns the current goroutine's stack trace.
func CaptureStack() string {
	buf := make([]byte, 16*1024)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}

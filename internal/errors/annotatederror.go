// Package errors provides error wrapping with slog annotations and the
// source location of the wrap site, plus re-exports of the standard
// library helpers so callers only need one errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	file  string
	line  int
}

func (e *annotatedError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// NewSentinel creates an error intended for package-level sentinel values.
// It carries no source location since the declaration site is meaningless
// at log time.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg}
}

// Wrap annotates err with a message, optional slog attributes and the
// caller's source location.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	wrapped := &annotatedError{
		msg:   msg,
		cause: err,
		attrs: attrs,
	}
	if _, file, line, ok := runtime.Caller(1); ok {
		wrapped.file = file
		wrapped.line = line
	}
	return wrapped
}

// DecoratePanic converts a recovered panic value into an error whose source
// location points at the panic site.
func DecoratePanic(excp any) error {
	err := &annotatedError{msg: fmt.Sprintf("panic: %v", excp)}
	var pcs [32]uintptr
	n := runtime.Callers(1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	sawPanic := false
	for {
		frame, more := frames.Next()
		if sawPanic && frame.File != "" {
			err.file = frame.File
			err.line = frame.Line
			break
		}
		if frame.Function == "runtime.gopanic" {
			sawPanic = true
		}
		if !more {
			break
		}
	}
	return err
}

// SlogError renders err as a structured attribute grouping the message, the
// source location of the innermost wrap site found in the chain, and any
// annotations gathered along the way. It tolerates nil and plain errors.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}

	var annotated *annotatedError
	if errors.As(err, &annotated) && annotated.file != "" {
		attrs = append(attrs, slog.String("source",
			fmt.Sprintf("%s:%d", filepath.Base(annotated.file), annotated.line)))
	}

	annotations := collectAnnotations(err, nil)
	if len(annotations) > 0 {
		args := make([]any, len(annotations))
		for i, a := range annotations {
			args[i] = a
		}
		attrs = append(attrs, slog.Group("annotations", args...))
	}

	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return slog.Group("error", args...)
}

func collectAnnotations(err error, acc []slog.Attr) []slog.Attr {
	for err != nil {
		if annotated, ok := err.(*annotatedError); ok {
			acc = append(acc, annotated.attrs...)
		}
		switch unwrapper := err.(type) {
		case interface{ Unwrap() error }:
			err = unwrapper.Unwrap()
		case interface{ Unwrap() []error }:
			for _, joined := range unwrapper.Unwrap() {
				acc = collectAnnotations(joined, acc)
			}
			return acc
		default:
			return acc
		}
	}
	return acc
}

// Standard library re-exports.

func New(msg string) error { return errors.New(msg) }

func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

func Unwrap(err error) error { return errors.Unwrap(err) }

func Join(errs ...error) error { return errors.Join(errs...) }

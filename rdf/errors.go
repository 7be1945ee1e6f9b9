package rdf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a failure for programmatic handling.
type ErrorCode string

const (
	// ErrCodeSyntax is a grammar violation at a specific source position.
	ErrCodeSyntax ErrorCode = "SYNTAX_ERROR"
	// ErrCodeResolution is a failed prefix/base resolution.
	ErrCodeResolution ErrorCode = "RESOLUTION_ERROR"
	// ErrCodeIO is a read failure from a file or URL.
	ErrCodeIO ErrorCode = "IO_ERROR"
	// ErrCodeUnknown is returned for errors this package did not produce.
	ErrCodeUnknown ErrorCode = "UNKNOWN_ERROR"
)

// Code classifies err into one of the package's error kinds. Returns "" for
// a nil error.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var syn *SyntaxError
	if errors.As(err, &syn) {
		return ErrCodeSyntax
	}
	var res *ResolutionError
	if errors.As(err, &res) {
		return ErrCodeResolution
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ErrCodeIO
	}
	var pf *ParseFailure
	if errors.As(err, &pf) {
		return Code(pf.Err)
	}
	return ErrCodeUnknown
}

// SyntaxError is a grammar violation at a specific source position.
type SyntaxError struct {
	Message string
	Offset  int // byte offset in input, -1 if unknown
}

func (e *SyntaxError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
	}
	return "syntax error: " + e.Message
}

// ResolutionError is a failed prefix/base resolution at QName or directive
// expansion time: an empty prefix with no base, or a missing prefix binding.
type ResolutionError struct {
	Message string
}

func (e *ResolutionError) Error() string { return "resolution error: " + e.Message }

// StructuralError indicates an attempt to construct a Triple with a shape
// the data model forbids: a literal subject/predicate or a blank predicate.
// This is a programming error in the producer, represented as a panic value
// rather than a returned error — it must never fire against a correct
// implementation exercising a valid grammar.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string { return "structural error: " + e.Message }

// StackUnderflow indicates an internal invariant violation: a pop from an
// empty subject/predicate stack. Represented as a panic value for the same
// reason as StructuralError — it signals a parser bug, not user input.
type StackUnderflow struct {
	Message string
}

func (e *StackUnderflow) Error() string { return "stack underflow: " + e.Message }

// IOError is a read failure from a file or URL at the driver boundary.
type IOError struct {
	Message string
	Err     error
}

func (e *IOError) Error() string { return "io error: " + e.Message + ": " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }

// ParseFailure is the single user-visible failure value for all recoverable
// parse-time errors: it wraps a *SyntaxError, *ResolutionError or *IOError
// together with an excerpt of the offending input.
type ParseFailure struct {
	Format  string // always "turtle" in this module
	Excerpt string // offending input, trimmed to a readable window
	Err     error
}

func (e *ParseFailure) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	if e.Excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(e.Excerpt)
	}
	return msg.String()
}

func (e *ParseFailure) Unwrap() error { return e.Err }

// newParseFailure wraps err (a *SyntaxError, *ResolutionError or *IOError)
// with a readable excerpt of input around offset, caret-pointing at the
// failing position.
func newParseFailure(format, input string, offset int, err error) *ParseFailure {
	return &ParseFailure{Format: format, Excerpt: formatExcerpt(input, offset), Err: err}
}

func formatExcerpt(input string, offset int) string {
	const contextLen = 40
	if input == "" {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	start := offset - contextLen
	if start < 0 {
		start = 0
	}
	end := offset + contextLen
	if end > len(input) {
		end = len(input)
	}
	excerpt := input[start:end]
	caret := offset - start
	if start > 0 {
		excerpt = "..." + excerpt
		caret += 3
	}
	if end < len(input) {
		excerpt = excerpt + "..."
	}
	if caret < 0 {
		caret = 0
	}
	if caret > len(excerpt) {
		caret = len(excerpt)
	}
	var b strings.Builder
	b.WriteString(excerpt)
	b.WriteString("\n  ")
	for i := 0; i < caret; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}

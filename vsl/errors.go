package vsl

import (
	"fmt"
	"strings"
)

// SourceError represents an error with source location information.
type SourceError struct {
	Message string
	Span    Span
	Source  string // Original source code (for context display)
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Span.Start.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

// FormatWithContext returns the error message with source context.
// Shows the problematic line with a caret pointing to the error location.
func (e *SourceError) FormatWithContext() string {
	if e.Source == "" || e.Span.Start.Line == 0 {
		return e.Error()
	}

	lines := strings.Split(e.Source, "\n")
	lineNum := e.Span.Start.Line
	if lineNum < 1 || lineNum > len(lines) {
		return e.Error()
	}

	line := lines[lineNum-1]
	col := e.Span.Start.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", e.Message)
	fmt.Fprintf(&sb, "  --> line %d:%d\n", lineNum, col)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", lineNum, line)
	fmt.Fprintf(&sb, "   | %s^\n", strings.Repeat(" ", col-1))

	return sb.String()
}

// NewSourceError creates a new SourceError.
func NewSourceError(message string, span Span, source string) *SourceError {
	return &SourceError{
		Message: message,
		Span:    span,
		Source:  source,
	}
}

// NewSourceErrorf creates a new SourceError with formatted message.
func NewSourceErrorf(span Span, source string, format string, args ...interface{}) *SourceError {
	return &SourceError{
		Message: fmt.Sprintf(format, args...),
		Span:    span,
		Source:  source,
	}
}

// ParseError represents a parsing error.
type ParseError struct {
	Message string
	Token   Token
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Token.Line, e.Token.Column, e.Message)
}

// ParseErrors represents a list of parse errors.
type ParseErrors []ParseError

// Error implements the error interface.
func (el ParseErrors) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	if len(el) == 1 {
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
}

// HasErrors returns true if there are any errors.
func (el ParseErrors) HasErrors() bool {
	return len(el) > 0
}

package htmlayout

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed markup document. It wraps the error
// returned by the XML parser and is fatal to the Load call that raised it.
type ParseError struct {
	Line    int    // 1-based line number, 0 when unknown
	Message string // Error message
	Err     error  // Underlying parser error, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("markup parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("markup parse error: %s", e.Message)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error { return e.Err }

// LiteralSyntaxError reports a data-* attribute value that does not conform
// to the literal grammar accepted by Evaluate.
type LiteralSyntaxError struct {
	Text    string // Full attribute text being evaluated
	Offset  int    // Byte offset of the offending character
	Message string // Error message
}

// Error implements the error interface.
func (e *LiteralSyntaxError) Error() string {
	return fmt.Sprintf("invalid literal at offset %d: %s\nContext: %s",
		e.Offset, e.Message, caretContext(e.Text, e.Offset))
}

// InvalidNameError reports a name reference that is missing the required
// prefix or is not present in the builder's scope.
type InvalidNameError struct {
	Name    string // Name as it appeared in the attribute
	Message string // Error message
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, e.Message)
}

// ConstructionError reports a component constructor that rejected the
// arguments derived from a node's attributes.
type ConstructionError struct {
	Tag string // Markup tag whose construction failed
	Err error  // Error returned by the constructor
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct component for tag <%s>: %v", e.Tag, e.Err)
}

// Unwrap returns the constructor's error.
func (e *ConstructionError) Unwrap() error { return e.Err }

// NewParseError creates a ParseError wrapping err.
func NewParseError(line int, message string, err error) *ParseError {
	return &ParseError{Line: line, Message: message, Err: err}
}

// NewLiteralSyntaxError creates a LiteralSyntaxError for text at offset.
func NewLiteralSyntaxError(text string, offset int, message string) *LiteralSyntaxError {
	return &LiteralSyntaxError{Text: text, Offset: offset, Message: message}
}

// NewInvalidNameError creates an InvalidNameError.
func NewInvalidNameError(name, message string) *InvalidNameError {
	return &InvalidNameError{Name: name, Message: message}
}

// NewConstructionError creates a ConstructionError for tag wrapping err.
func NewConstructionError(tag string, err error) *ConstructionError {
	return &ConstructionError{Tag: tag, Err: err}
}

// caretContext renders the offending text with a caret under the byte at
// offset. Long inputs are clipped around the offset so the caret stays
// visible.
func caretContext(text string, offset int) string {
	if text == "" {
		return "(empty input)"
	}
	const window = 40
	start := 0
	if offset > window {
		start = offset - window
	}
	end := len(text)
	if end > offset+window {
		end = offset + window
	}
	snippet := strings.ReplaceAll(text[start:end], "\n", " ")
	var b strings.Builder
	if start > 0 {
		b.WriteString("...")
	}
	b.WriteString(snippet)
	if end < len(text) {
		b.WriteString("...")
	}
	b.WriteString("\n")
	pad := offset - start
	if start > 0 {
		pad += 3
	}
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString("^")
	return b.String()
}

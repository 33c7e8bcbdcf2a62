package htmlayout

import (
	"encoding/xml"
	"errors"
	"io"

	"github.com/beevik/etree"
)

// parseDocument reads a markup document into an element tree. Reading is
// strict: malformed input and documents without a root element fail with a
// ParseError. Comments and processing instructions are kept out of the
// element walk by etree itself.
func parseDocument(r io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		line := 0
		var syntax *xml.SyntaxError
		if errors.As(err, &syntax) {
			line = syntax.Line
		}
		return nil, NewParseError(line, err.Error(), err)
	}
	root := doc.Root()
	if root == nil {
		return nil, NewParseError(0, "document has no root element", nil)
	}
	return root, nil
}

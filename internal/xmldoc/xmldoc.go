// Package xmldoc parses raw byte buffers as complete in-memory XML documents
// using the libxml2 bindings. It exists to drive the library's parser, not to
// expose the resulting tree: the document is released before returning.
package xmldoc

import (
	"github.com/lestrrat-go/libxml2/parser"
	"github.com/pkg/errors"
)

// Parse parses b as an XML document held entirely in memory, with default
// parser options, no encoding hint and no external DTD. The input is bounded
// by len(b); embedded NUL bytes are data. On success the document tree is
// freed before returning. A non-nil error means the parser rejected the
// input, which callers should treat as a normal outcome for arbitrary bytes.
func Parse(b []byte) error {
	doc, err := parser.New().Parse(b)
	if err != nil {
		return errors.WithStack(err)
	}
	defer doc.Free()
	return nil
}

// Package xmllex extracts element usage information from raw XML. It runs the
// streaming lexer over the input without building a tree, so it tolerates
// inputs the document parser would reject outright.
package xmllex

import (
	"io"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Elem is a single start tag as seen in the input.
type Elem struct {
	Name string
	Attr map[string]struct{}
}

type Info struct {
	Seen []Elem
}

func (i *Info) Merge(other *Info) {
	i.Seen = append(i.Seen, other.Seen...)
}

// Names returns the distinct element names in the order first seen.
func (i *Info) Names() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, e := range i.Seen {
		if _, found := seen[e.Name]; found {
			continue
		}
		seen[e.Name] = struct{}{}
		names = append(names, e.Name)
	}
	return names
}

func Extract(r io.Reader) (*Info, error) {
	in := parse.NewInput(r)
	l := xml.NewLexer(in)
	var seen []Elem
docloop:
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			err := l.Err()
			if err == io.EOF {
				break docloop
			}
			return nil, errors.WithMessagef(err, "at offset %d", in.Offset())
		case xml.StartTagToken:
			elem := Elem{
				Name: string(l.Text()),
			}
		tagloop:
			for {
				ttAttr, _ := l.Next()
				switch ttAttr {
				default:
					return nil, errors.Errorf("unexpected token type %s at offset %d", ttAttr, in.Offset())
				case xml.ErrorToken:
					err := l.Err()
					if err == io.EOF {
						err = io.ErrUnexpectedEOF
					}
					return nil, errors.WithMessagef(err, "in tag %q at offset %d", elem.Name, in.Offset())
				case xml.AttributeToken:
					if elem.Attr == nil {
						elem.Attr = make(map[string]struct{})
					}
					elem.Attr[string(l.Text())] = struct{}{}
				case xml.StartTagCloseToken, xml.StartTagCloseVoidToken:
					break tagloop
				}
			}
			seen = append(seen, elem)
		}
	}

	return &Info{
		Seen: seen,
	}, nil
}

package ipxact

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var errEmptyDocument = errors.New("xml document is empty")

// element is a namespace-agnostic view of an XML element. Matching is done
// on XMLName.Local only; XMLName.Space is kept for diagnostics.
type element struct {
	XMLName  xml.Name
	CharData string    `xml:",chardata"`
	Children []element `xml:",any"`
}

// children returns the direct children whose local name is local
func (e *element) children(local string) []*element {
	var found []*element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == local {
			found = append(found, &e.Children[i])
		}
	}
	return found
}

func (e *element) text() string {
	return strings.TrimSpace(e.CharData)
}

// decode parses a whole document. Anything but whitespace, comments and
// processing instructions around the root element is rejected.
func decode(rdr io.Reader) (*element, error) {
	dec := xml.NewDecoder(rdr)
	dec.CharsetReader = charset.NewReaderLabel

	start, err := rootStart(dec)
	if err != nil {
		return nil, err
	}

	var root element
	if err := dec.DecodeElement(&root, &start); err != nil {
		return nil, fmt.Errorf("malformed xml: %w", err)
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return nil, fmt.Errorf("malformed xml: unexpected element <%s> after root element <%s>", t.Name.Local, root.XMLName.Local)
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) != 0 {
				return nil, fmt.Errorf("malformed xml: unexpected text after root element <%s>", root.XMLName.Local)
			}
		}
	}

	return &root, nil
}

// rootStart consumes the prolog and returns the root element's start tag
func rootStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, errEmptyDocument
		}
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("malformed xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) != 0 {
				return xml.StartElement{}, errors.New("malformed xml: unexpected text before root element")
			}
		}
	}
}

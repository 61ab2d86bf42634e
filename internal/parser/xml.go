package parser

import (
	"encoding/xml"
	stderrors "errors"
	"io"
	"strings"

	"github.com/mcncl/docdiff/internal/errors"
	"github.com/mcncl/docdiff/internal/models"
)

// parseXML walks the token stream of encoding/xml into a canonical tree.
// The document becomes a one-entry Document keyed by the root tag name.
// Within an element: attributes become "@name" keys, child elements
// become keys in source order, and sibling tags that repeat are promoted
// to an Array so XML lists flatten the same way JSON arrays do.
func parseXML(text string) (models.Value, error) {
	dec := xml.NewDecoder(strings.NewReader(text))

	root, err := readRootElement(dec)
	if err != nil {
		return nil, err
	}

	val, err := decodeXMLElement(dec, root)
	if err != nil {
		return nil, xmlParseError(err)
	}

	// Only comments, whitespace and processing instructions may follow
	// the root element.
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xmlParseError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return nil, errors.NewParseError(models.FormatXML, "multiple root elements", nil)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, errors.NewParseError(models.FormatXML, "text after root element", nil)
			}
		}
	}

	return models.Document{{Key: root.Name.Local, Value: val}}, nil
}

func readRootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, errors.NewParseError(models.FormatXML, "no root element", err)
		}
		if err != nil {
			return xml.StartElement{}, xmlParseError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return xml.StartElement{}, errors.NewParseError(models.FormatXML, "text before root element", nil)
			}
		}
	}
}

type xmlChild struct {
	key string
	val models.Value
}

// decodeXMLElement consumes tokens up to and including start's matching
// EndElement and returns the element's canonical value.
func decodeXMLElement(dec *xml.Decoder, start xml.StartElement) (models.Value, error) {
	var children []xmlChild
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			val, err := decodeXMLElement(dec, t)
			if err != nil {
				return nil, err
			}
			children = append(children, xmlChild{key: t.Name.Local, val: val})
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			return buildXMLValue(start, children, strings.TrimSpace(text.String())), nil
		}
	}
}

// buildXMLValue applies the repeated-tag rule: collect all child tags
// first, then promote a tag to an Array only if its name repeats among
// siblings. A single occurrence stays scalar; without a schema the two
// cases are indistinguishable and scalar is the documented policy.
func buildXMLValue(start xml.StartElement, children []xmlChild, text string) models.Value {
	if len(start.Attr) == 0 && len(children) == 0 {
		// Leaf element: the text is the value, not wrapped in a
		// synthetic key. <a/> yields the empty string.
		return text
	}

	doc := models.Document{}
	for _, attr := range start.Attr {
		doc = append(doc, models.Entry{Key: "@" + attr.Name.Local, Value: attr.Value})
	}

	counts := make(map[string]int, len(children))
	for _, c := range children {
		counts[c.key]++
	}
	emitted := make(map[string]bool)
	for _, c := range children {
		if counts[c.key] == 1 {
			doc = append(doc, models.Entry{Key: c.key, Value: c.val})
			continue
		}
		if emitted[c.key] {
			continue
		}
		emitted[c.key] = true
		arr := models.Array{}
		for _, sib := range children {
			if sib.key == c.key {
				arr = append(arr, sib.val)
			}
		}
		doc = append(doc, models.Entry{Key: c.key, Value: arr})
	}

	if text != "" {
		doc = append(doc, models.Entry{Key: "#text", Value: text})
	}
	return doc
}

func xmlParseError(err error) error {
	var parseErr *errors.ParseError
	if stderrors.As(err, &parseErr) {
		return parseErr
	}
	var synErr *xml.SyntaxError
	if stderrors.As(err, &synErr) {
		return errors.NewParseErrorAt(models.FormatXML, synErr.Msg, synErr.Line, 0, err)
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.NewParseError(models.FormatXML, "unexpected end of input", err)
	}
	return errors.NewParseError(models.FormatXML, err.Error(), err)
}

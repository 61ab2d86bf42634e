package parser

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/mcncl/docdiff/internal/errors"
	"github.com/mcncl/docdiff/internal/models"
)

// parseJSON decodes text token by token with jsontext rather than
// unmarshalling into map[string]any, so object key order is preserved
// and numbers keep their source text. The decoder rejects duplicate
// object names by default, which enforces the unique-keys invariant.
func parseJSON(text string) (models.Value, error) {
	dec := jsontext.NewDecoder(strings.NewReader(text))

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, jsonParseError(text, err)
	}

	// Exactly one top-level value is allowed.
	if _, err := dec.ReadToken(); err != io.EOF {
		line, col := lineCol(text, int(dec.InputOffset()))
		return nil, errors.NewParseErrorAt(models.FormatJSON, "unexpected data after first JSON value", line, col, err)
	}

	return v, nil
}

func decodeJSONValue(dec *jsontext.Decoder) (models.Value, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeJSONObject(dec)
	case '[':
		return decodeJSONArray(dec)
	}

	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return nil, nil
	case 't':
		return true, nil
	case 'f':
		return false, nil
	case '"':
		return tok.String(), nil
	case '0':
		// Token.String returns the raw representation for numbers.
		return models.Number(tok.String()), nil
	default:
		return nil, fmt.Errorf("unexpected token kind %q", tok.Kind())
	}
}

func decodeJSONObject(dec *jsontext.Decoder) (models.Document, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, err
	}
	doc := models.Document{}
	for dec.PeekKind() != '}' {
		keyTok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		key := keyTok.String()
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		doc = append(doc, models.Entry{Key: key, Value: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, err
	}
	return doc, nil
}

func decodeJSONArray(dec *jsontext.Decoder) (models.Array, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, err
	}
	arr := models.Array{}
	for dec.PeekKind() != ']' {
		elem, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, err
	}
	return arr, nil
}

// jsonParseError maps decoder errors to a ParseError with a line/column
// computed from the syntactic error's byte offset.
func jsonParseError(text string, err error) *errors.ParseError {
	var synErr *jsontext.SyntacticError
	if stderrors.As(err, &synErr) {
		msg := synErr.Error()
		if synErr.Err != nil {
			msg = synErr.Err.Error()
		}
		line, col := lineCol(text, int(synErr.ByteOffset))
		return errors.NewParseErrorAt(models.FormatJSON, msg, line, col, err)
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.NewParseError(models.FormatJSON, "unexpected end of input", err)
	}
	return errors.NewParseError(models.FormatJSON, err.Error(), err)
}

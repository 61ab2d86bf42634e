package parser

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/mcncl/docdiff/internal/errors"
	"github.com/mcncl/docdiff/internal/models"
)

// goccy error messages start with a "[line:column]" marker.
var yamlErrPos = regexp.MustCompile(`^\s*\[(\d+):(\d+)\]\s*`)

// parseYAML decodes the first YAML document in text. Additional
// documents after a "---" separator are ignored by policy. Mappings are
// decoded with yaml.UseOrderedMap so key order survives.
func parseYAML(text string) (models.Value, error) {
	dec := yaml.NewDecoder(strings.NewReader(text), yaml.UseOrderedMap())

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, errors.NewParseError(models.FormatYAML, "document is empty", err)
		}
		return nil, yamlParseError(err)
	}

	return fromYAML(raw)
}

// fromYAML converts goccy's decoded representation into the canonical
// tree. Numbers are re-rendered to text so the differ sees the same
// Number scalar a JSON decode would produce.
func fromYAML(raw any) (models.Value, error) {
	switch t := raw.(type) {
	case yaml.MapSlice:
		doc := models.Document{}
		for _, item := range t {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			doc = append(doc, models.Entry{Key: fmt.Sprintf("%v", item.Key), Value: val})
		}
		return doc, nil
	case []any:
		arr := models.Array{}
		for _, el := range t {
			val, err := fromYAML(el)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case nil:
		return nil, nil
	case bool:
		return t, nil
	case string:
		return t, nil
	case int:
		return models.Number(strconv.Itoa(t)), nil
	case int64:
		return models.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return models.Number(strconv.FormatUint(t, 10)), nil
	case float32:
		return models.Number(strconv.FormatFloat(float64(t), 'f', -1, 32)), nil
	case float64:
		return models.Number(strconv.FormatFloat(t, 'f', -1, 64)), nil
	default:
		// Timestamps and other tagged scalars fall back to their
		// string rendering.
		return fmt.Sprintf("%v", t), nil
	}
}

func yamlParseError(err error) *errors.ParseError {
	msg := err.Error()
	line, col := 0, 0
	if m := yamlErrPos.FindStringSubmatch(msg); m != nil {
		line, _ = strconv.Atoi(m[1])
		col, _ = strconv.Atoi(m[2])
		msg = msg[len(m[0]):]
	}
	return errors.NewParseErrorAt(models.FormatYAML, msg, line, col, err)
}

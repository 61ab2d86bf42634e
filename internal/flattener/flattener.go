// Package flattener converts a canonical tree into an ordered list of
// (path, scalar) pairs. Paths concatenate mapping keys with "." and
// sequence indices with "[i]", e.g. "user.skills[2]".
package flattener

import (
	"strconv"

	"github.com/mcncl/docdiff/internal/models"
)

// Flatten walks value depth-first, mapping keys in source order and
// sequence elements in index order, and returns the flattened document.
// Scalars are emitted as-is; an empty Document or Array is emitted once
// with the Empty sentinel so presence survives flattening. A bare scalar
// at the root is emitted under the empty path.
func Flatten(value models.Value) *models.FlatDocument {
	return models.NewFlatDocument(walk(value, "", nil))
}

func walk(value models.Value, path string, acc []models.FlatEntry) []models.FlatEntry {
	switch v := value.(type) {
	case models.Document:
		if len(v) == 0 {
			return append(acc, models.FlatEntry{Path: path, Value: models.Empty{}})
		}
		for _, entry := range v {
			acc = walk(entry.Value, childPath(path, entry.Key), acc)
		}
		return acc
	case models.Array:
		if len(v) == 0 {
			return append(acc, models.FlatEntry{Path: path, Value: models.Empty{}})
		}
		for i, elem := range v {
			acc = walk(elem, path+"["+strconv.Itoa(i)+"]", acc)
		}
		return acc
	default:
		return append(acc, models.FlatEntry{Path: path, Value: v})
	}
}

func childPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

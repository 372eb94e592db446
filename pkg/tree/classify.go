// Package tree converts decoded documents into folder/file node trees.
package tree

import (
	"fmt"

	"github.com/jsonzip/jsonzip/pkg/jsondoc"
	"github.com/jsonzip/jsonzip/pkg/models"
)

// Classify decides whether a value becomes a folder or a file. For files it
// also returns the value that supplies the content.
//
// Exactly two shapes mark an object as file content instead of a sub-folder:
//
//  1. {"type": "file", "content": ...} or {"type": "file", "data": ...}
//     A marker with neither content nor data is an error.
//  2. {"content": <scalar>} with no other members.
//
// Every other object, and every array, is a folder. Every scalar is a file
// whose content is the scalar itself.
func Classify(v jsondoc.Value) (models.Kind, jsondoc.Value, error) {
	switch t := v.(type) {
	case jsondoc.Object:
		if typ, ok := t.Find("type"); ok && typ == jsondoc.String("file") {
			if content, ok := t.Find("content"); ok {
				return models.KindFile, content, nil
			}
			if data, ok := t.Find("data"); ok {
				return models.KindFile, data, nil
			}
			return "", nil, fmt.Errorf(`file marker has neither "content" nor "data"`)
		}
		if len(t) == 1 && t[0].Key == "content" && jsondoc.IsScalar(t[0].Value) {
			return models.KindFile, t[0].Value, nil
		}
		return models.KindFolder, nil, nil

	case jsondoc.Array:
		return models.KindFolder, nil, nil
	}
	return models.KindFile, v, nil
}

// ContentText coerces a file's content value to text. Strings pass through
// verbatim; everything else serializes as JSON with 2-space indentation.
func ContentText(v jsondoc.Value) string {
	if s, ok := v.(jsondoc.String); ok {
		return string(s)
	}
	return jsondoc.EncodeIndent(v)
}

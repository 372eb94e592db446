package tree

import (
	"fmt"

	"github.com/jsonzip/jsonzip/pkg/jsondoc"
	"github.com/jsonzip/jsonzip/pkg/models"
)

const (
	// DefaultMaxDepth bounds the nesting of the produced tree.
	DefaultMaxDepth = 64
	// DefaultItemPrefix names array elements item_0, item_1, ...
	DefaultItemPrefix = "item_"

	// ScalarName is the file name used when the whole document is a scalar.
	ScalarName = "value"
)

// Options control tree construction.
type Options struct {
	MaxDepth   int    // reject values nested deeper than this
	ItemPrefix string // name prefix for array elements
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.ItemPrefix == "" {
		o.ItemPrefix = DefaultItemPrefix
	}
	return o
}

// Build converts a decoded document into a node tree. A container document
// becomes an unnamed root folder whose children mirror the document's
// entries in order. A scalar (or file-marker) document becomes a single file
// named "value". The same input always yields a structurally identical tree.
func Build(v jsondoc.Value, opts Options) (*models.Node, error) {
	opts = opts.withDefaults()

	kind, content, err := Classify(v)
	if err != nil {
		return nil, models.NewStructureError("top-level value: %v", err)
	}
	if kind == models.KindFile {
		return fileNode(ScalarName, "", content), nil
	}

	root := &models.Node{Kind: models.KindFolder, Name: "", Path: ""}
	if err := fill(root, v, 1, opts); err != nil {
		return nil, err
	}
	return root, nil
}

// fill populates a folder node's children from a container value.
func fill(folder *models.Node, v jsondoc.Value, depth int, opts Options) error {
	if depth > opts.MaxDepth {
		return models.NewStructureError("%s: nesting depth %d exceeds limit %d", describePath(folder.Path), depth, opts.MaxDepth)
	}

	switch t := v.(type) {
	case jsondoc.Object:
		for _, m := range t {
			if err := addChild(folder, m.Key, m.Value, depth, opts); err != nil {
				return err
			}
		}
	case jsondoc.Array:
		for i, elem := range t {
			name := fmt.Sprintf("%s%d", opts.ItemPrefix, i)
			if err := addChild(folder, name, elem, depth, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func addChild(folder *models.Node, name string, v jsondoc.Value, depth int, opts Options) error {
	kind, content, err := Classify(v)
	if err != nil {
		return models.NewStructureError("%s: %v", models.JoinPath(folder.Path, name), err)
	}

	path := models.JoinPath(folder.Path, name)
	var node *models.Node
	if kind == models.KindFile {
		node = fileNode(name, folder.Path, content)
	} else {
		node = &models.Node{Kind: models.KindFolder, Name: name, Path: path}
		if err := fill(node, v, depth+1, opts); err != nil {
			return err
		}
	}

	// Duplicate sibling names: the last write wins, replacing the earlier
	// node in place so sibling order stays stable.
	for i, existing := range folder.Children {
		if existing.Name == name {
			folder.Children[i] = node
			return nil
		}
	}
	folder.Children = append(folder.Children, node)
	return nil
}

func fileNode(name, base string, content jsondoc.Value) *models.Node {
	text := ContentText(content)
	return &models.Node{
		Kind:    models.KindFile,
		Name:    name,
		Path:    models.JoinPath(base, name),
		Content: text,
		Size:    len(text),
	}
}

func describePath(path string) string {
	if path == "" {
		return "root"
	}
	return path
}

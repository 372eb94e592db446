package jsondoc

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a single YAML document into the same ordered value types
// as Decode. yaml.v3 mapping nodes keep key order, so the conversion
// semantics downstream are identical to JSON input.
func DecodeYAML(input []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(input, &root); err != nil {
		return nil, err
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty input decodes as null, matching `yaml.Unmarshal("" , &v)`.
		return Null{}, nil
	}
	return fromYAML(root.Content[0], 0)
}

func fromYAML(n *yaml.Node, depth int) (Value, error) {
	if depth > maxNesting {
		return nil, fmt.Errorf("nesting exceeds %d levels", maxNesting)
	}

	switch n.Kind {
	case yaml.MappingNode:
		obj := Object{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", keyNode.Line)
			}
			val, err := fromYAML(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: keyNode.Value, Value: val})
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := Array{}
		for _, elem := range n.Content {
			val, err := fromYAML(elem, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil

	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int", "!!float":
			return Number(n.Value), nil
		case "!!bool":
			return Bool(n.Value == "true" || n.Value == "True" || n.Value == "TRUE"), nil
		case "!!null":
			return Null{}, nil
		default:
			return String(n.Value), nil
		}

	case yaml.AliasNode:
		return fromYAML(n.Alias, depth+1)
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

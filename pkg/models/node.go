package models

// Kind categorizes the two kinds of nodes in a converted tree.
type Kind string

const (
	KindFolder Kind = "folder" // a JSON object or array
	KindFile   Kind = "file"   // a scalar value or a recognized file marker
)

// Node represents a single entry in the converted tree. A folder carries
// children in insertion order; a file carries its content.
type Node struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
	Path string `json:"path"` // slash-joined ancestor names plus Name; empty for the root

	// Folder fields
	Children []*Node `json:"children,omitempty"`

	// File fields
	Content string `json:"content,omitempty"`
	Size    int    `json:"size"` // byte length of Content
}

// IsDir reports whether the node is a folder.
func (n *Node) IsDir() bool {
	return n.Kind == KindFolder
}

// Walk visits n and all of its descendants depth-first, preserving sibling
// order. Traversal stops at the first error.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of nodes in the tree rooted at n, excluding the
// unnamed root itself.
func (n *Node) Count() int {
	total := 0
	_ = n.Walk(func(node *Node) error {
		if node.Path != "" {
			total++
		}
		return nil
	})
	return total
}

// JoinPath joins a parent path and a child name with a forward slash. The
// root's empty path never contributes a leading separator.
func JoinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "/" + name
}

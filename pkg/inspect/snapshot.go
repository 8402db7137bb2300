// Package inspect captures render tree snapshots for debugging and
// tooling. A snapshot is a plain tree of descriptions and sizes that can
// be serialized to YAML, with render objects hidden from inspection
// filtered out.
package inspect

import (
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/viewproxy/pkg/layout"
)

// Node is one render object in a captured snapshot.
type Node struct {
	Type        string  `yaml:"type"`
	Description string  `yaml:"description"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Children    []Node  `yaml:"children,omitempty"`
}

// Capture builds a snapshot of the render tree rooted at root. Render
// objects reporting HiddenFromInspector are omitted along with their
// subtrees.
func Capture(root layout.RenderObject) *Node {
	if root == nil {
		return nil
	}
	if hider, ok := root.(layout.InspectorHider); ok && hider.HiddenFromInspector() {
		return nil
	}
	node := &Node{
		Type:        typeName(root),
		Description: root.DebugDescription(),
		Width:       root.Size().Width,
		Height:      root.Size().Height,
	}
	if visitor, ok := root.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			if captured := Capture(child); captured != nil {
				node.Children = append(node.Children, *captured)
			}
		})
	}
	return node
}

// Dump writes the snapshot of root to w as YAML.
func Dump(w io.Writer, root layout.RenderObject) error {
	node := Capture(root)
	if node == nil {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}

func typeName(object layout.RenderObject) string {
	t := reflect.TypeOf(object)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

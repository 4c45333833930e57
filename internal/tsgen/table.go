package tsgen

import (
	"sort"

	"github.com/go-openapi/spec"
)

// Table maps fully-qualified definition names to their nodes.
// It is read-only while a Run uses it.
type Table map[string]*Node

// Node is one named model definition.
type Node struct {
	// Properties in document order.
	Properties  []Property
	Required    []string
	Description string
}

// Property is a named field of a Node.
type Property struct {
	Name  string
	Field Field
}

// IsRequired reports whether the property name is in the node's required set.
func (n *Node) IsRequired(name string) bool {
	for _, r := range n.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Names returns the table keys in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds the node a reference points at. The bool is false for
// references to names the table does not hold.
func (t Table) Lookup(ref string) (string, *Node, bool) {
	if node, ok := t[ref]; ok {
		return ref, node, true
	}
	key := KeyFromRef(ref)
	node, ok := t[key]
	return key, node, ok
}

// NodeFromSchema converts a swagger definition into a Node.
// order lists property names in document order; names missing from it
// follow in sorted order, so a nil order gives a sorted node.
func NodeFromSchema(s spec.Schema, order []string) *Node {
	node := &Node{
		Required:    append([]string(nil), s.Required...),
		Description: s.Description,
	}

	seen := make(map[string]struct{}, len(s.Properties))
	for _, name := range order {
		prop, ok := s.Properties[name]
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		node.Properties = append(node.Properties, Property{Name: name, Field: FieldFromSchema(prop)})
	}

	rest := make([]string, 0, len(s.Properties)-len(seen))
	for name := range s.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		node.Properties = append(node.Properties, Property{Name: name, Field: FieldFromSchema(s.Properties[name])})
	}

	return node
}

// TableFromDefinitions builds a Table from swagger definitions.
// order maps definition names to their property names in document order and may be nil.
func TableFromDefinitions(defs spec.Definitions, order map[string][]string) Table {
	table := make(Table, len(defs))
	for name, def := range defs {
		table[name] = NodeFromSchema(def, order[name])
	}
	return table
}

package tsgen

import (
	"sort"
	"strings"
)

// Run holds the state of one generation pass over a Table: the set of
// names already visited and the output lines. A Run is single use and not
// safe for concurrent use; independent documents each get their own Run.
type Run struct {
	table        Table
	visited      map[string]struct{}
	lines        []string
	declarations []string
}

// NewRun starts a generation pass over table.
func NewRun(table Table) *Run {
	return &Run{
		table:   table,
		visited: make(map[string]struct{}),
	}
}

// EmitAll emits each root in order and returns every newly visited name.
// Dependencies shared between roots are emitted once, at first encounter.
func (r *Run) EmitAll(names ...string) []string {
	var visited []string
	for _, name := range names {
		visited = append(visited, r.Emit(name)...)
	}
	return visited
}

// Emit appends the declaration for name, preceded by the declarations of
// the definitions it references, and returns the names it newly visited.
//
// A name is marked visited before its dependencies are walked, so a
// reference cycle A -> B -> A stops at the second A and each declaration
// is written once. Names absent from the table are skipped.
func (r *Run) Emit(name string) []string {
	if _, ok := r.visited[name]; ok {
		return nil
	}
	node, ok := r.table[name]
	if !ok {
		return nil
	}
	r.visited[name] = struct{}{}
	newly := []string{name}

	if node == nil || len(node.Properties) == 0 {
		return newly
	}

	for _, prop := range node.Properties {
		ref := dependencyRef(prop.Field)
		if ref == "" {
			continue
		}
		key, _, ok := r.table.Lookup(ref)
		if !ok {
			// external type, rendered by name only
			continue
		}
		newly = append(newly, r.Emit(key)...)
	}

	r.writeDeclaration(name, node)
	return newly
}

// dependencyRef returns the reference a field depends on, looking through
// arrays to their innermost item. Empty when the field has none.
func dependencyRef(f Field) string {
	for f.Kind == KindArray && f.Items != nil {
		f = *f.Items
	}
	if f.Kind == KindReference {
		return f.Ref
	}
	return ""
}

func (r *Run) writeDeclaration(name string, node *Node) {
	if desc := cleanDescription(node.Description); desc != "" {
		r.lines = append(r.lines, "/**", " * "+desc, " */")
	}
	r.lines = append(r.lines, "export interface "+ShortName(name)+" {")

	props := append([]Property(nil), node.Properties...)
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].Name < props[j].Name
	})

	for _, prop := range props {
		if desc := cleanDescription(prop.Field.Description); desc != "" {
			r.lines = append(r.lines, "  /** "+desc+" */")
		}
		marker := "?"
		if node.IsRequired(prop.Name) {
			marker = ""
		}
		r.lines = append(r.lines, "  "+prop.Name+marker+": "+TypeExpr(prop.Field)+";")
	}

	r.lines = append(r.lines, "}", "")
	r.declarations = append(r.declarations, name)
}

// cleanDescription folds line breaks into spaces and trims the result.
func cleanDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r\n", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")
	desc = strings.ReplaceAll(desc, "\r", " ")
	return strings.TrimSpace(desc)
}

// Lines returns the output buffer.
func (r *Run) Lines() []string {
	return r.lines
}

// Declarations returns the names that produced a declaration, in output order.
func (r *Run) Declarations() []string {
	return r.declarations
}

// Visited returns how many names the run has visited, including empty schemas.
func (r *Run) Visited() int {
	return len(r.visited)
}

// String joins the output buffer with newlines.
func (r *Run) String() string {
	return strings.Join(r.lines, "\n")
}

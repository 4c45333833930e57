package tsgen

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const sectionRule = "// ============================================================================"

// DefaultSection labels the model declarations when Document.Section is empty.
const DefaultSection = "core types"

// Document wraps a finished Run with the file banner, section headers and
// utility declarations.
type Document struct {
	// Title names the API in the banner, e.g. "MinBody Public API v6".
	Title string
	// Source is the location of the input document. Omitted when empty.
	Source string
	// Generated is the generation date. Omitted when zero so output stays reproducible.
	Generated time.Time
	// Regenerate names the command to run to refresh the file.
	Regenerate string
	// Section labels the model declarations; it is title cased.
	Section string
	// Utilities are appended after the model declarations.
	Utilities []Utility
}

// Render assembles the document lines for run.
func (d Document) Render(run *Run) []string {
	lines := d.banner()

	section := d.Section
	if section == "" {
		section = DefaultSection
	}
	lines = append(lines, sectionHeader(section)...)
	lines = append(lines, run.Lines()...)

	lines = append(lines, "")
	lines = append(lines, sectionHeader("utility types")...)
	for _, u := range d.Utilities {
		lines = append(lines, u.Lines()...)
	}
	return lines
}

// String renders the document joined with newlines.
func (d Document) String(run *Run) string {
	return strings.Join(d.Render(run), "\n")
}

func (d Document) banner() []string {
	title := "TypeScript Type Definitions"
	if d.Title != "" {
		title = d.Title + " " + title
	}
	regen := d.Regenerate
	if regen == "" {
		regen = "swag2ts"
	}

	lines := []string{
		"/**",
		" * " + title,
		" * ",
		" * Auto-generated from official OpenAPI specification",
	}
	if d.Source != "" {
		lines = append(lines, " * Source: "+d.Source)
	}
	if !d.Generated.IsZero() {
		lines = append(lines, " * Generated: "+d.Generated.Format(time.DateOnly))
	}
	return append(lines,
		" * ",
		" * DO NOT EDIT MANUALLY - Regenerate from spec using "+regen,
		" */",
		"",
	)
}

func sectionHeader(label string) []string {
	return []string{
		sectionRule,
		"// " + cases.Title(language.English).String(strings.ToLower(label)),
		sectionRule,
		"",
	}
}

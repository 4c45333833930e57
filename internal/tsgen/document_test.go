package tsgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Render(t *testing.T) {
	t.Run("full banner", func(t *testing.T) {
		// Arrange
		run := NewRun(Table{"Api.Client": &Node{Properties: []Property{{Name: "Id", Field: Primitive(INTEGER, "")}}}})
		run.Emit("Api.Client")
		doc := Document{
			Title:      "MinBody Public API v6",
			Source:     "https://api.mindbodyonline.com/public/v6/swagger/doc",
			Generated:  time.Date(2025, 11, 24, 10, 0, 0, 0, time.UTC),
			Regenerate: "swag2ts generate",
			Section:    "core appointment types",
			Utilities:  DefaultUtilities(),
		}

		// Act
		got := doc.String(run)

		// Assert
		want := strings.Join([]string{
			"/**",
			" * MinBody Public API v6 TypeScript Type Definitions",
			" * ",
			" * Auto-generated from official OpenAPI specification",
			" * Source: https://api.mindbodyonline.com/public/v6/swagger/doc",
			" * Generated: 2025-11-24",
			" * ",
			" * DO NOT EDIT MANUALLY - Regenerate from spec using swag2ts generate",
			" */",
			"",
			sectionRule,
			"// Core Appointment Types",
			sectionRule,
			"",
			"export interface Client {",
			"  Id?: number;",
			"}",
			"",
			"",
			sectionRule,
			"// Utility Types",
			sectionRule,
			"",
			"/**",
			" * Generic paginated response wrapper",
			" */",
			"export interface PaginatedResponse<T> {",
			"  /** Array of results */",
			"  Items?: T[];",
			"  /** Pagination metadata */",
			"  PaginationResponse?: PaginationResponse;",
			"}",
			"",
			"/**",
			` * Appointment response (uses "Appointments" key)`,
			" */",
			"export interface AppointmentResponse {",
			"  Appointments?: Appointment[];",
			"  PaginationResponse?: PaginationResponse;",
			"}",
			"",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("zero values leave out source and date", func(t *testing.T) {
		// Act
		lines := Document{}.Render(NewRun(Table{}))

		// Assert
		assert.Equal(t, " * TypeScript Type Definitions", lines[1])
		for _, l := range lines {
			assert.NotContains(t, l, "Source:")
			assert.NotContains(t, l, "Generated:")
		}
		assert.Contains(t, lines, "// Core Types")
		assert.Contains(t, lines, " * DO NOT EDIT MANUALLY - Regenerate from spec using swag2ts")
	})
}

func TestCollectionResponse_Lines(t *testing.T) {
	c := CollectionResponse{Name: "ClientResponse", Key: "Clients", Element: "Api.Models.Client"}

	assert.Equal(t, []string{
		"export interface ClientResponse {",
		"  Clients?: Client[];",
		"  PaginationResponse?: PaginationResponse;",
		"}",
		"",
	}, c.Lines())
}

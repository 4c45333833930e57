package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
  "swagger": "2.0",
  "info": {"title": "Fixture", "version": "1"},
  "paths": {},
  "definitions": {
    "Api.Models.Client": {
      "required": ["Id"],
      "properties": {
        "Id": {"type": "integer"},
        "Name": {"type": "string"}
      }
    },
    "Api.Models.Appointment": {
      "properties": {
        "Client": {"$ref": "#/definitions/Api.Models.Client"}
      }
    }
  }
}`

func writeFixture(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "swagger.json")
	require.NoError(t, os.WriteFile(input, []byte(fixture), 0o644))
	return dir, input
}

func TestGenerateCommand(t *testing.T) {
	t.Run("single target from flags", func(t *testing.T) {
		// Arrange
		dir, input := writeFixture(t)
		output := filepath.Join(dir, "types.ts")
		var out bytes.Buffer
		app := newApp()
		app.Writer = &out

		// Act
		err := app.Run([]string{"swag2ts", "generate", "-i", input, "-o", output, "-m", "Api.Models.Appointment", "--output-types", "ts,json"})

		// Assert
		require.NoError(t, err)
		b, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(b), "export interface Appointment {")
		assert.Contains(t, string(b), "export interface Client {")
		assert.FileExists(t, filepath.Join(dir, "types.summary.json"))
		assert.Contains(t, out.String(), "Generated TypeScript types: "+output)
		assert.Contains(t, out.String(), "Total models generated: 2")
	})

	t.Run("targets file", func(t *testing.T) {
		// Arrange
		dir, _ := writeFixture(t)
		targets := filepath.Join(dir, "swag2ts.yaml")
		require.NoError(t, os.WriteFile(targets, []byte(`targets:
  - input: swagger.json
    output: gen/clients.ts
    models: [Api.Models.Client]
  - input: swagger.json
    output: gen/all.ts
`), 0o644))
		app := newApp()
		app.Writer = &bytes.Buffer{}

		// Act
		err := app.Run([]string{"swag2ts", "generate", "-q", "-c", targets})

		// Assert
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "gen", "clients.ts"))
		assert.FileExists(t, filepath.Join(dir, "gen", "all.ts"))
	})

	t.Run("missing input document", func(t *testing.T) {
		app := newApp()
		app.Writer = &bytes.Buffer{}

		err := app.Run([]string{"swag2ts", "generate", "-q", "-i", filepath.Join(t.TempDir(), "nope.json")})

		assert.Error(t, err)
	})
}

func TestListCommand(t *testing.T) {
	// Arrange
	_, input := writeFixture(t)
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	// Act
	err := app.Run([]string{"swag2ts", "list", "-i", input})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Api.Models.Appointment\tAppointment\t1 fields\nApi.Models.Client\tClient\t2 fields\n", out.String())
}

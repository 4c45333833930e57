// Package config reads the swag2ts targets file and model lists.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/griffnb/swag2ts/internal/tsgen"
)

// DefaultFile is the targets file the CLI looks for when none is given.
const DefaultFile = "swag2ts.yaml"

// File is a targets file listing one or more independent generation targets.
type File struct {
	Targets []Target `json:"targets"`
}

// Target describes one input document and the TypeScript file made from it.
type Target struct {
	Input  string `json:"input"`
	Output string `json:"output"`

	// Models are the root definition names, in output order. Empty means all.
	Models []string `json:"models,omitempty"`
	// ModelsFile names a file holding one root per line.
	ModelsFile string `json:"modelsFile,omitempty"`

	Title         string `json:"title,omitempty"`
	Source        string `json:"source,omitempty"`
	Section       string `json:"section,omitempty"`
	Regenerate    string `json:"regenerate,omitempty"`
	GeneratedTime bool   `json:"generatedTime,omitempty"`

	// Collections replace the default collection response wrapper when set.
	Collections []tsgen.CollectionResponse `json:"collections,omitempty"`

	// OutputTypes lists extra outputs besides the .ts file: json, yaml.
	OutputTypes []string `json:"outputTypes,omitempty"`
}

// Load reads a targets file. YAML and JSON are both accepted. Relative
// paths inside it resolve against the file's directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i := range f.Targets {
		t := &f.Targets[i]
		t.Input = resolve(base, t.Input)
		t.Output = resolve(base, t.Output)
		t.ModelsFile = resolve(base, t.ModelsFile)
	}

	return &f, f.Validate()
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// Validate checks every target for required fields.
func (f *File) Validate() error {
	if len(f.Targets) == 0 {
		return errors.New("no targets defined")
	}
	for i, t := range f.Targets {
		if t.Input == "" {
			return fmt.Errorf("target %d: input is required", i)
		}
		if t.Output == "" {
			return fmt.Errorf("target %d: output is required", i)
		}
		for j, c := range t.Collections {
			if c.Name == "" || c.Key == "" || c.Element == "" {
				return fmt.Errorf("target %d: collection %d needs name, key and element", i, j)
			}
		}
	}
	return nil
}

// ResolveModels returns the target's roots, reading ModelsFile when set.
// Names from the file follow the inline Models.
func (t Target) ResolveModels() ([]string, error) {
	models := append([]string(nil), t.Models...)
	if t.ModelsFile == "" {
		return models, nil
	}

	f, err := os.Open(t.ModelsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open models file: %w", err)
	}
	defer f.Close()

	fromFile, err := ParseModels(f)
	if err != nil {
		return nil, err
	}
	return append(models, fromFile...), nil
}

// ParseModels reads one model name per line. Blank lines and lines starting
// with # or // are skipped.
func ParseModels(r io.Reader) ([]string, error) {
	var models []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		models = append(models, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading models file: %w", err)
	}

	return models, nil
}

// SplitList splits a comma separated flag value, dropping empty entries.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

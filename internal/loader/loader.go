package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-openapi/spec"
	"sigs.k8s.io/yaml"
)

// rawDocument captures the parts of a document needed before full decoding.
type rawDocument struct {
	OpenAPI     string          `json:"openapi"`
	Definitions json.RawMessage `json:"definitions"`
	Components  struct {
		Schemas json.RawMessage `json:"schemas"`
	} `json:"components"`
}

// Load reads and decodes the document at path.
func (s *Service) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	format := s.format
	if format == FormatAuto {
		format = formatFromPath(path)
	}

	doc, err := s.LoadBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", path, err)
	}
	doc.Path = path

	s.debug.Printf("loaded %d definitions from %s", len(doc.Swagger.Definitions), path)
	return doc, nil
}

// LoadBytes decodes an in-memory document.
func (s *Service) LoadBytes(data []byte, format Format) (*Document, error) {
	if format == FormatYAML {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("cannot convert yaml to json: %w", err)
		}
		data = converted
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}

	swagger := &spec.Swagger{}
	defsRaw := raw.Definitions
	if raw.OpenAPI != "" {
		// OpenAPI 3 paths do not fit the Swagger 2 model; only the schemas are kept.
		defsRaw = raw.Components.Schemas
		if len(defsRaw) > 0 {
			if err := json.Unmarshal(defsRaw, &swagger.Definitions); err != nil {
				return nil, fmt.Errorf("malformed components.schemas: %w", err)
			}
		}
	} else if err := json.Unmarshal(data, swagger); err != nil {
		return nil, fmt.Errorf("malformed swagger document: %w", err)
	}

	if len(swagger.Definitions) == 0 {
		return nil, ErrNoDefinitions
	}

	order, err := propertyOrder(defsRaw)
	if err != nil {
		return nil, fmt.Errorf("could not read property order: %w", err)
	}

	return &Document{
		Swagger:       swagger,
		PropertyOrder: order,
	}, nil
}

func formatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// propertyOrder reads the property names of every definition in the order
// they appear in the document. Go maps drop that order during decoding.
func propertyOrder(defs json.RawMessage) (map[string][]string, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	var byName map[string]struct {
		Properties json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(defs, &byName); err != nil {
		return nil, err
	}

	order := make(map[string][]string, len(byName))
	for name, def := range byName {
		keys, err := objectKeys(def.Properties)
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", name, err)
		}
		if len(keys) > 0 {
			order[name] = keys
		}
	}
	return order, nil
}

// objectKeys returns the keys of a JSON object in document order.
// Anything other than an object yields no keys.
func objectKeys(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		keys = append(keys, key)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

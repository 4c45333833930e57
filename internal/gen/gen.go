package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"

	"github.com/griffnb/swag2ts/internal/config"
	"github.com/griffnb/swag2ts/internal/console"
	"github.com/griffnb/swag2ts/internal/loader"
	"github.com/griffnb/swag2ts/internal/tsgen"
)

// DefaultOutput is the file written when no output is configured.
const DefaultOutput = "api-types.ts"

// DefaultRegenerate is the command named in the banner of generated files.
const DefaultRegenerate = "swag2ts generate"

type genTypeWriter func(*Config, *Summary) error

// Gen presents a generate tool for swag2ts.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	now           func() time.Time
	outputTypeMap map[string]genTypeWriter
	debug         Debugger
}

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json: json.Marshal,
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
		now:        time.Now,
		debug:      log.New(os.Stdout, "", log.LstdFlags),
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"ts":   func(*Config, *Summary) error { return nil },
		"json": gen.writeJSONSummary,
		"yaml": gen.writeYAMLSummary,
		"yml":  gen.writeYAMLSummary,
	}

	return &gen
}

// Config presents Gen configurations for one target.
type Config struct {
	Debugger Debugger

	// Input is the swagger / openapi document to read
	Input string

	// Output is the TypeScript file to write
	Output string

	// Models are the root definition names in output order; empty means every definition
	Models []string

	// Title names the API in the file banner
	Title string

	// Source is printed in the banner as the origin of the input document
	Source string

	// Section labels the model declarations
	Section string

	// Regenerate names the command printed in the banner
	Regenerate string

	// GeneratedTime whether to print the generation date in the banner
	GeneratedTime bool

	// Collections replace the default collection response wrapper
	Collections []tsgen.CollectionResponse

	// OutputTypes define extra summary files to write next to the output: json, yaml
	OutputTypes []string
}

// ConfigFromTarget converts a targets file entry into a Config.
func ConfigFromTarget(t config.Target) (*Config, error) {
	models, err := t.ResolveModels()
	if err != nil {
		return nil, err
	}
	return &Config{
		Input:         t.Input,
		Output:        t.Output,
		Models:        models,
		Title:         t.Title,
		Source:        t.Source,
		Section:       t.Section,
		Regenerate:    t.Regenerate,
		GeneratedTime: t.GeneratedTime,
		Collections:   t.Collections,
		OutputTypes:   t.OutputTypes,
	}, nil
}

// Summary reports what one Build produced.
type Summary struct {
	Input        string   `json:"input"`
	Output       string   `json:"output"`
	Models       int      `json:"models"`
	Declarations []string `json:"declarations"`
	Skipped      []string `json:"skipped,omitempty"`
	Lines        int      `json:"lines"`
}

// Build reads cfg.Input, generates the declarations and writes cfg.Output.
func (g *Gen) Build(cfg *Config) (*Summary, error) {
	debug := g.debug
	if cfg.Debugger != nil {
		debug = cfg.Debugger
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	doc, err := loader.NewService(loader.WithDebugger(debug)).Load(cfg.Input)
	if err != nil {
		return nil, err
	}

	console.Logger.Debug("Generate TypeScript types from %s....", cfg.Input)

	table := doc.Table()
	roots := cfg.Models
	if len(roots) == 0 {
		roots = table.Names()
	}

	summary := &Summary{Input: cfg.Input, Output: cfg.Output}
	for _, root := range roots {
		if _, ok := table[root]; !ok {
			summary.Skipped = append(summary.Skipped, root)
			debug.Printf("skipping %s: not defined in %s", root, cfg.Input)
		}
	}

	run := tsgen.NewRun(table)
	run.EmitAll(roots...)

	lines := g.document(cfg).Render(run)
	summary.Models = run.Visited()
	summary.Declarations = run.Declarations()
	summary.Lines = len(lines)

	if dir := filepath.Dir(cfg.Output); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	if err := g.writeFile([]byte(strings.Join(lines, "\n")), cfg.Output); err != nil {
		return nil, err
	}
	console.Logger.Debug("create %s", cfg.Output)

	for _, outputType := range cfg.OutputTypes {
		outputType = strings.ToLower(strings.TrimSpace(outputType))
		if typeWriter, ok := g.outputTypeMap[outputType]; ok {
			if err := typeWriter(cfg, summary); err != nil {
				return nil, err
			}
		} else {
			log.Printf("output type '%s' not supported", outputType)
		}
	}

	return summary, nil
}

// BuildAll builds independent targets concurrently. Summaries are returned
// in the order of configs; the first error cancels the remaining targets.
func (g *Gen) BuildAll(ctx context.Context, configs []*Config) ([]*Summary, error) {
	summaries := make([]*Summary, len(configs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	for i, cfg := range configs {
		i, cfg := i, cfg

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summary, err := g.Build(cfg)
			if err != nil {
				return fmt.Errorf("target %s: %w", cfg.Input, err)
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (g *Gen) document(cfg *Config) tsgen.Document {
	doc := tsgen.Document{
		Title:      cfg.Title,
		Source:     cfg.Source,
		Section:    cfg.Section,
		Regenerate: cfg.Regenerate,
		Utilities:  tsgen.DefaultUtilities(),
	}
	if doc.Regenerate == "" {
		doc.Regenerate = DefaultRegenerate
	}
	if cfg.GeneratedTime {
		doc.Generated = g.now()
	}
	if len(cfg.Collections) > 0 {
		doc.Utilities = []tsgen.Utility{tsgen.PaginatedResponse{}}
		for _, c := range cfg.Collections {
			doc.Utilities = append(doc.Utilities, c)
		}
	}
	return doc
}

// summaryFileName puts the summary beside the output: types.ts -> types.summary.json.
func summaryFileName(output, ext string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".summary." + ext
}

func (g *Gen) writeJSONSummary(cfg *Config, summary *Summary) error {
	fileName := summaryFileName(cfg.Output, "json")

	b, err := g.jsonIndent(summary)
	if err != nil {
		return err
	}

	if err := g.writeFile(b, fileName); err != nil {
		return err
	}

	console.Logger.Debug("create summary at %+v", fileName)

	return nil
}

func (g *Gen) writeYAMLSummary(cfg *Config, summary *Summary) error {
	fileName := summaryFileName(cfg.Output, "yaml")

	b, err := g.json(summary)
	if err != nil {
		return err
	}

	y, err := g.jsonToYAML(b)
	if err != nil {
		return fmt.Errorf("cannot covert json to yaml error: %s", err)
	}

	if err := g.writeFile(y, fileName); err != nil {
		return err
	}

	console.Logger.Debug("create summary at %+v", fileName)

	return nil
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = f.Write(b)

	return err
}

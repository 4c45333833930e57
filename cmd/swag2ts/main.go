package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/swag2ts/internal/config"
	"github.com/griffnb/swag2ts/internal/console"
	"github.com/griffnb/swag2ts/internal/gen"
	"github.com/griffnb/swag2ts/internal/loader"
	"github.com/griffnb/swag2ts/internal/tsgen"
)

const (
	inputFlag         = "input"
	outputFlag        = "output"
	modelsFlag        = "models"
	modelsFileFlag    = "models-file"
	configFlag        = "config"
	titleFlag         = "title"
	sourceFlag        = "source"
	sectionFlag       = "section"
	regenerateFlag    = "regenerate"
	generatedTimeFlag = "generated-time"
	outputTypesFlag   = "output-types"
	quietFlag         = "quiet"
	debugFlag         = "debug"
)

var generateFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Print debug output while generating.",
	},
	&cli.StringFlag{
		Name:    configFlag,
		Aliases: []string{"c"},
		Usage:   "Targets file listing several documents to generate (default " + config.DefaultFile + " when no input is given)",
	},
	&cli.StringFlag{
		Name:    inputFlag,
		Aliases: []string{"i"},
		Usage:   "Swagger / OpenAPI document to read, JSON or YAML",
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   gen.DefaultOutput,
		Usage:   "TypeScript file to write",
	},
	&cli.StringFlag{
		Name:    modelsFlag,
		Aliases: []string{"m"},
		Usage:   "Root model names to generate, comma separated, in output order. Empty generates every definition",
	},
	&cli.StringFlag{
		Name:  modelsFileFlag,
		Usage: "File with one root model name per line",
	},
	&cli.StringFlag{
		Name:  titleFlag,
		Usage: "API name printed in the file banner",
	},
	&cli.StringFlag{
		Name:  sourceFlag,
		Usage: "Origin of the document printed in the file banner",
	},
	&cli.StringFlag{
		Name:  sectionFlag,
		Value: tsgen.DefaultSection,
		Usage: "Label of the model declarations section",
	},
	&cli.StringFlag{
		Name:  regenerateFlag,
		Value: gen.DefaultRegenerate,
		Usage: "Command named in the DO NOT EDIT banner",
	},
	&cli.BoolFlag{
		Name:  generatedTimeFlag,
		Usage: "Print the generation date in the file banner",
	},
	&cli.StringFlag{
		Name:  outputTypesFlag,
		Value: "ts",
		Usage: "Output types, comma separated: ts, json and yaml summaries",
	},
}

func setupLogging(ctx *cli.Context) gen.Debugger {
	if ctx.Bool(debugFlag) {
		console.Logger.DebugLevel = 1
	}
	if ctx.Bool(quietFlag) {
		console.Logger.SetOutput(io.Discard)
		return log.New(io.Discard, "", log.LstdFlags)
	}
	return console.Logger
}

func generateAction(ctx *cli.Context) error {
	logger := setupLogging(ctx)

	configs, err := targetConfigs(ctx)
	if err != nil {
		return err
	}
	for _, cfg := range configs {
		cfg.Debugger = logger
	}

	summaries, err := gen.New().BuildAll(context.Background(), configs)
	if err != nil {
		return err
	}

	if ctx.Bool(quietFlag) {
		return nil
	}
	for _, s := range summaries {
		fmt.Fprintf(ctx.App.Writer, "Generated TypeScript types: %s\n", s.Output)
		fmt.Fprintf(ctx.App.Writer, "   Total models generated: %d\n", s.Models)
		fmt.Fprintf(ctx.App.Writer, "   Lines of code: %d\n", s.Lines)
	}
	return nil
}

// targetConfigs builds the list of targets from --config, the default
// targets file, or the single-target flags, in that order.
func targetConfigs(ctx *cli.Context) ([]*gen.Config, error) {
	path := ctx.String(configFlag)
	if path == "" && ctx.String(inputFlag) == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}

	if path != "" {
		file, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		configs := make([]*gen.Config, 0, len(file.Targets))
		for _, t := range file.Targets {
			cfg, err := gen.ConfigFromTarget(t)
			if err != nil {
				return nil, err
			}
			configs = append(configs, cfg)
		}
		console.Logger.Debug("Using %d targets from %s", len(configs), path)
		return configs, nil
	}

	if ctx.String(inputFlag) == "" {
		return nil, errors.New("no input document: pass --input or a targets file")
	}

	cfg, err := gen.ConfigFromTarget(config.Target{
		Input:         ctx.String(inputFlag),
		Output:        ctx.String(outputFlag),
		Models:        config.SplitList(ctx.String(modelsFlag)),
		ModelsFile:    ctx.String(modelsFileFlag),
		Title:         ctx.String(titleFlag),
		Source:        ctx.String(sourceFlag),
		Section:       ctx.String(sectionFlag),
		Regenerate:    ctx.String(regenerateFlag),
		GeneratedTime: ctx.Bool(generatedTimeFlag),
		OutputTypes:   config.SplitList(ctx.String(outputTypesFlag)),
	})
	if err != nil {
		return nil, err
	}
	return []*gen.Config{cfg}, nil
}

func listAction(ctx *cli.Context) error {
	doc, err := loader.NewService().Load(ctx.String(inputFlag))
	if err != nil {
		return err
	}
	table := doc.Table()
	for _, name := range doc.Names() {
		fmt.Fprintf(ctx.App.Writer, "%s\t%s\t%d fields\n", name, tsgen.ShortName(name), len(table[name].Properties))
	}
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "swag2ts"
	app.Version = gen.Version
	app.Usage = "Generate TypeScript interfaces from Swagger / OpenAPI model definitions."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Generate TypeScript declarations",
			Action:  generateAction,
			Flags:   generateFlags,
		},
		{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "List the model definitions of a document",
			Action:  listAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     inputFlag,
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Swagger / OpenAPI document to read, JSON or YAML",
				},
			},
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// shapegen generates Go types, serializers and operation bindings from a
// shape model.
//
//	shapegen --model model.json --package example.com/weather --target ./weather
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/syssam/shapegen/compiler/gen"
	"github.com/syssam/shapegen/compiler/gen/golang"
	"github.com/syssam/shapegen/compiler/load"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	if err := newApp(logger).Run(os.Args); err != nil {
		logger.Error("generation failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newApp(logger *zap.Logger) *cli.App {
	return &cli.App{
		Name:  "shapegen",
		Usage: "generate Go code from a shape model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "model",
				Aliases:  []string{"m"},
				Usage:    "path to the model JSON or YAML AST",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a shapegen.yaml configuration file",
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "import path of the generated package",
			},
			&cli.StringFlag{
				Name:  "target",
				Usage: "output directory",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "header",
				Usage: "comment placed at the top of every generated file",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of files generated concurrently",
			},
		},
		Action: func(cctx *cli.Context) error {
			return run(cctx, logger)
		},
	}
}

func run(cctx *cli.Context, logger *zap.Logger) error {
	// Flags win over the configuration file.
	var opts []gen.Option
	if path := cctx.String("config"); path != "" {
		fc, err := gen.LoadConfigFile(path)
		if err != nil {
			return err
		}
		opts = append(opts, fc.Options()...)
	}
	if cctx.IsSet("package") {
		opts = append(opts, gen.WithPackage(cctx.String("package")))
	}
	if cctx.IsSet("target") {
		opts = append(opts, gen.WithTarget(cctx.String("target")))
	}
	if cctx.IsSet("header") {
		opts = append(opts, gen.WithHeader(cctx.String("header")))
	}
	if cctx.IsSet("workers") {
		opts = append(opts, gen.WithWorkers(cctx.Int("workers")))
	}
	opts = append(opts, gen.WithLogger(logger))
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	if cfg.Target == "" {
		cfg.Target = cctx.String("target")
	}

	model, err := load.Load(cctx.String("model"))
	if err != nil {
		return err
	}
	graph, err := gen.NewGraph(cfg, model)
	if err != nil {
		return err
	}
	manifest, err := golang.Generate(cctx.Context, graph)
	if err != nil {
		return err
	}
	if err := manifest.Flush(cfg.Target); err != nil {
		return err
	}
	metrics := manifest.Metrics()
	logger.Info("files written",
		zap.String("target", cfg.Target),
		zap.Int("files", metrics.FilesWritten),
		zap.Int64("bytes", metrics.TotalBytes),
		zap.Duration("format", metrics.FormatTime),
		zap.Duration("write", metrics.WriteTime),
	)
	return nil
}

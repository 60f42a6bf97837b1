package gen

import (
	"bytes"
	"context"
	"path"
	"time"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Generator runs an Emitter over every shape of a Graph and buffers the
// rendered files in a Manifest. Files are independent, so they are
// generated concurrently; the output does not depend on scheduling.
type Generator struct {
	graph   *Graph
	emitter Emitter
	workers int
	log     *zap.Logger
}

// NewGenerator creates a generator over g.
// You must call WithEmitter before calling Generate.
//
// Example:
//
//	import "github.com/syssam/shapegen/compiler/gen/golang"
//
//	generator := gen.NewGenerator(graph)
//	generator.WithEmitter(golang.NewEmitter(generator))
//	manifest, err := generator.Generate(ctx)
func NewGenerator(g *Graph) *Generator {
	return &Generator{
		graph:   g,
		workers: g.Workers,
		log:     g.Logger,
	}
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithEmitter sets the backend.
func (g *Generator) WithEmitter(e Emitter) *Generator {
	if e != nil {
		g.emitter = e
	}
	return g
}

// Graph returns the annotated graph.
func (g *Generator) Graph() *Graph {
	return g.graph
}

// NewFile creates a new Jennifer file with the standard header comment.
func (g *Generator) NewFile(pkgPath, name string) *jen.File {
	f := jen.NewFilePathName(pkgPath, name)
	f.HeaderComment("Code generated by shapegen. DO NOT EDIT.")
	if g.graph.Header != "" {
		f.HeaderComment(g.graph.Header)
	}
	return f
}

// fileTask is one output file.
type fileTask struct {
	phase string
	name  string // path relative to the target directory
	gen   func() (*jen.File, error)
}

func (g *Generator) tasks() []fileTask {
	var (
		e     = g.emitter
		tasks []fileTask
	)
	for _, t := range g.graph.Structures {
		tasks = append(tasks, fileTask{"model", path.Join("model", fileName(t.Name)+".go"), func() (*jen.File, error) { return e.GenStructure(t) }})
	}
	for _, t := range g.graph.Unions {
		tasks = append(tasks, fileTask{"model", path.Join("model", fileName(t.Name)+".go"), func() (*jen.File, error) { return e.GenUnion(t) }})
	}
	for _, t := range g.graph.Enums {
		tasks = append(tasks, fileTask{"model", path.Join("model", fileName(t.Name)+".go"), func() (*jen.File, error) { return e.GenEnum(t) }})
	}
	for _, t := range g.graph.Serialized() {
		tasks = append(tasks, fileTask{"serializer", path.Join("transform", fileName(t.Name)+"_document_serializer.go"), func() (*jen.File, error) { return e.GenDocumentSerializer(t) }})
	}
	for _, t := range g.graph.Deserialized() {
		tasks = append(tasks, fileTask{"deserializer", path.Join("transform", fileName(t.Name)+"_document_deserializer.go"), func() (*jen.File, error) { return e.GenDocumentDeserializer(t) }})
	}
	for _, op := range g.graph.Operations {
		tasks = append(tasks,
			fileTask{"serializer", path.Join("transform", fileName(op.Name)+"_operation_serializer.go"), func() (*jen.File, error) { return e.GenRequestSerializer(op) }},
			fileTask{"deserializer", path.Join("transform", fileName(op.Name)+"_operation_deserializer.go"), func() (*jen.File, error) { return e.GenResponseDeserializer(op) }},
		)
	}
	for _, t := range g.graph.Errors() {
		tasks = append(tasks, fileTask{"deserializer", path.Join("transform", fileName(t.Name)+"_error_deserializer.go"), func() (*jen.File, error) { return e.GenErrorDeserializer(t) }})
	}
	if len(g.graph.Operations) > 0 {
		tasks = append(tasks, fileTask{"operations", "operations.go", e.GenOperations})
	}
	return tasks
}

// Generate renders every file. It fails with the first error encountered;
// no partial manifest is returned.
func (g *Generator) Generate(ctx context.Context) (*Manifest, error) {
	if g.emitter == nil {
		return nil, NewConfigError("Emitter", nil, "no emitter set: call WithEmitter() before Generate()")
	}
	start := time.Now()
	manifest := NewManifest()
	tasks := g.tasks()

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, task := range tasks {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.render(manifest, task)
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	g.log.Info("generated files",
		zap.String("emitter", g.emitter.Name()),
		zap.Int("files", manifest.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return manifest, nil
}

func (g *Generator) render(m *Manifest, task fileTask) error {
	f, err := task.gen()
	if err != nil {
		return NewGenerationError(task.phase, task.name, "", err)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError(task.phase, task.name, "render", err)
	}
	m.Add(task.name, buf.Bytes())
	g.log.Debug("generated file", zap.String("file", task.name), zap.Int("bytes", buf.Len()))
	return nil
}

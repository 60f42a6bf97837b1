// Package golang implements gen.Emitter for Go targets.
//
// Usage:
//
//	import (
//	    "github.com/syssam/shapegen/compiler/gen"
//	    "github.com/syssam/shapegen/compiler/gen/golang"
//	)
//
//	generator := gen.NewGenerator(graph)
//	generator.WithEmitter(golang.NewEmitter(generator))
//	manifest, err := generator.Generate(ctx)
//
// Generated code structure:
//
//	{package}/
//	├── operations.go                                # smithy.Operation bindings
//	├── model/
//	│   └── {shape}.go                               # value type, builder, enum or union
//	└── transform/
//	    ├── {shape}_document_serializer.go           # nested document writer
//	    ├── {shape}_document_deserializer.go         # nested document reader
//	    ├── {operation}_operation_serializer.go      # request writer
//	    ├── {operation}_operation_deserializer.go    # response reader
//	    └── {error}_error_deserializer.go            # modeled error reader
package golang

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/compiler/gen"
)

// Generate is a convenience function that runs the Go emitter over g and
// returns the rendered files.
//
// Example:
//
//	manifest, err := golang.Generate(ctx, graph)
//	if err != nil {
//	    return err
//	}
//	return manifest.Flush(graph.Target)
func Generate(ctx context.Context, g *gen.Graph) (*gen.Manifest, error) {
	generator := gen.NewGenerator(g)
	generator.WithEmitter(NewEmitter(generator))
	return generator.Generate(ctx)
}

// Emitter implements gen.Emitter for Go.
type Emitter struct {
	helper gen.GeneratorHelper
}

// NewEmitter creates a new Go emitter.
// The helper parameter is usually the *gen.Generator running the emitter.
func NewEmitter(helper gen.GeneratorHelper) *Emitter {
	return &Emitter{helper: helper}
}

var _ gen.Emitter = (*Emitter)(nil)

// Name returns the emitter name.
func (e *Emitter) Name() string {
	return "golang"
}

// =============================================================================
// Model types
// =============================================================================

// GenStructure generates the value type, builder and accessors of a
// structure. Error structures also implement smithy.APIError.
func (e *Emitter) GenStructure(t *gen.Type) (*jen.File, error) {
	return genStructure(e.helper, t)
}

// GenUnion generates the sealed interface and variants of a union.
func (e *Emitter) GenUnion(t *gen.Type) (*jen.File, error) {
	return genUnion(e.helper, t)
}

// GenEnum generates the named string type and constants of an enum.
func (e *Emitter) GenEnum(t *gen.Type) (*jen.File, error) {
	return genEnum(e.helper, t)
}

// =============================================================================
// Serializers
// =============================================================================

// GenDocumentSerializer generates the writer used when the shape is nested
// in another document.
func (e *Emitter) GenDocumentSerializer(t *gen.Type) (*jen.File, error) {
	return genDocumentSerializer(e.helper, t)
}

// GenDocumentDeserializer generates the reader used when the shape is
// nested in another document.
func (e *Emitter) GenDocumentDeserializer(t *gen.Type) (*jen.File, error) {
	return genDocumentDeserializer(e.helper, t)
}

// GenRequestSerializer generates the writer of an operation input.
func (e *Emitter) GenRequestSerializer(op *gen.Operation) (*jen.File, error) {
	return genRequestSerializer(e.helper, op)
}

// GenResponseDeserializer generates the reader of an operation output.
func (e *Emitter) GenResponseDeserializer(op *gen.Operation) (*jen.File, error) {
	return genResponseDeserializer(e.helper, op)
}

// GenErrorDeserializer generates the reader of a modeled error.
func (e *Emitter) GenErrorDeserializer(t *gen.Type) (*jen.File, error) {
	return genErrorDeserializer(e.helper, t)
}

// =============================================================================
// Wiring
// =============================================================================

// GenOperations generates the operation bindings of the root package.
func (e *Emitter) GenOperations() (*jen.File, error) {
	return genOperations(e.helper)
}

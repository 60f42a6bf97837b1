package gen

import "github.com/dave/jennifer/jen"

// ModelGenerator generates the value types of the model package.
// Each method is called once per shape of the matching kind.
type ModelGenerator interface {
	// GenStructure generates a structure or error type (model/{shape}.go).
	GenStructure(t *Type) (*jen.File, error)
	// GenUnion generates a union sum type (model/{shape}.go).
	GenUnion(t *Type) (*jen.File, error)
	// GenEnum generates an enum type (model/{shape}.go).
	GenEnum(t *Type) (*jen.File, error)
}

// TransformGenerator generates the serializers of the transform package.
type TransformGenerator interface {
	// GenDocumentSerializer generates transform/{shape}_document_serializer.go.
	GenDocumentSerializer(t *Type) (*jen.File, error)
	// GenDocumentDeserializer generates transform/{shape}_document_deserializer.go.
	GenDocumentDeserializer(t *Type) (*jen.File, error)
	// GenRequestSerializer generates transform/{op}_operation_serializer.go.
	GenRequestSerializer(op *Operation) (*jen.File, error)
	// GenResponseDeserializer generates transform/{op}_operation_deserializer.go.
	GenResponseDeserializer(op *Operation) (*jen.File, error)
	// GenErrorDeserializer generates transform/{shape}_error_deserializer.go.
	GenErrorDeserializer(t *Type) (*jen.File, error)
}

// WiringGenerator generates the operation bindings.
type WiringGenerator interface {
	// GenOperations generates operations.go in the root package.
	GenOperations() (*jen.File, error)
}

// Emitter is the interface a target language backend implements. Every
// method fails fast with one of the structured errors of this package.
//
//	┌──────────────────────────────────────────────┐
//	│                  Generator                   │
//	│ (parallel emission, buffering in a Manifest) │
//	└──────────────────────┬───────────────────────┘
//	                       │ uses
//	                       ▼
//	┌──────────────────────────────────────────────┐
//	│                   Emitter                    │
//	│   model types, serializers, op bindings      │
//	└──────────────────────────────────────────────┘
type Emitter interface {
	// Name returns the backend name (e.g., "golang").
	Name() string
	ModelGenerator
	TransformGenerator
	WiringGenerator
}

// GeneratorHelper gives emitters access to the graph and to file creation.
type GeneratorHelper interface {
	// NewFile creates a file for the package at pkgPath with the standard
	// header.
	NewFile(pkgPath, name string) *jen.File
	// Graph returns the annotated graph.
	Graph() *Graph
}

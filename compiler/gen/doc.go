// Package gen turns a shape graph into Go value types, serializers and
// operation bindings.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	shape.Graph (validated input)
//	        ↓
//	   Graph (symbols, names and descriptors, validated)
//	        ↓
//	   Emitter (language backend, see package golang)
//	        ↓
//	   Manifest (buffered files)
//	        ↓
//	   Flush (formatted files on disk)
//
// # Key Types
//
//   - SymbolProvider: resolves shapes to Go types, memoized per shape id
//   - DescriptorRegistry: assigns the wire field descriptors shared by the
//     serializer and deserializer of a context
//   - Graph: the shape graph annotated for emission
//   - Type, Field, Operation: the annotated structures, unions, enums and
//     operations
//   - Generator: runs an Emitter over a Graph
//   - Manifest: buffers generated files until the run has succeeded
//
// # Error Handling
//
// Generation fails fast with structured errors naming the offending shape
// and member:
//
//   - SchemaResolutionError: a shape or reference with no Go type
//   - NameConflictError: a generated identifier collides with another
//   - ReservedPropertyTypeError: a reserved member has the wrong type
//   - UnsupportedConstructError: a construct with no generation strategy
//   - ConfigError: invalid configuration
//   - GenerationError: a failure while producing one file
//
// Example error handling:
//
//	graph, err := gen.NewGraph(config, shapes)
//	if err != nil {
//	    if gen.IsNameConflictError(err) {
//	        // Rename the member in the model.
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithPackage("example.com/weather/client"),
//	    gen.WithTarget("./client"),
//	    gen.WithTimestampFormat(shape.TimestampDateTime),
//	)
//
// or loaded from a YAML file with LoadConfigFile.
//
// # Usage
//
//	import (
//	    "github.com/syssam/shapegen/compiler/gen"
//	    "github.com/syssam/shapegen/compiler/gen/golang"
//	)
//
//	graph, err := gen.NewGraph(config, shapes)
//	if err != nil {
//	    return err
//	}
//	manifest, err := golang.Generate(ctx, graph)
//	if err != nil {
//	    return err
//	}
//	return manifest.Flush(config.Target)
package gen

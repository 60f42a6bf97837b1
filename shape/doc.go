// Package shape defines the shape graph consumed by the code generator.
//
// A Graph is an arena of Shapes keyed by ID ("namespace#Name"). Shapes refer
// to other shapes through Member targets, never by embedding, so recursive
// models are represented without expansion:
//
//	g := shape.MustGraph(
//	    shape.NewStructure("example#Node",
//	        shape.NewMember("value", shape.String),
//	        shape.NewMember("children", "example#NodeList"),
//	    ),
//	    shape.NewList("example#NodeList", "example#Node"),
//	)
//
// Traits carry the metadata that drives generation: sparse collections,
// streaming blobs, enum values, sensitivity, timestamp formats and error
// classification. The graph is assumed to be validated already.
package shape

package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/shape"
)

// The following types and their exported methods are used by the emitters
// to generate the assets.
type (
	// Type is a structure, union or enum shape annotated for emission.
	Type struct {
		*Config
		// Shape is the shape the type is generated from.
		Shape *shape.Shape
		// Name is the Go type name.
		Name string
		// Fields holds the members in name-sorted order.
		Fields []*Field
		// Values holds the constants of an enum, in declaration order.
		Values []*EnumConst
		graph  *Graph
	}

	// Field is a member of a structure or union annotated for emission.
	Field struct {
		typ *Type
		// Member is the shape member.
		Member *shape.Member
		// Target is the shape the member points to.
		Target *shape.Shape
		// Symbol is the resolved Go type of the member.
		Symbol *Symbol
		// Name is the exported accessor and builder field name.
		Name string
		// Storage is the unexported struct field name.
		Storage string
	}

	// EnumConst is one constant of an enum type.
	EnumConst struct {
		// Name is the Go constant name, prefixed with the enum type name.
		Name       string
		Value      string
		Doc        string
		Deprecated bool
	}

	// Operation binds an operation shape to its input, output and errors.
	// Input and Output are nil for operations targeting the unit shape.
	Operation struct {
		Shape  *shape.Shape
		Name   string
		Input  *Type
		Output *Type
		Errors []*Type
	}
)

// Graph returns the graph the type belongs to.
func (t *Type) Graph() *Graph { return t.graph }

// IsStructure reports whether t is a structure.
func (t *Type) IsStructure() bool { return t.Shape.Kind == shape.KindStructure }

// IsUnion reports whether t is a union.
func (t *Type) IsUnion() bool { return t.Shape.Kind == shape.KindUnion }

// IsEnum reports whether t is an enum.
func (t *Type) IsEnum() bool { return t.Shape.Kind == shape.KindEnum }

// IsError reports whether t is an error structure.
func (t *Type) IsError() bool { return t.Shape.IsError() }

// Fault returns the runtime fault constant of an error type.
func (t *Type) Fault() string {
	switch t.Shape.Traits.Error {
	case shape.ErrorClient:
		return "FaultClient"
	case shape.ErrorServer:
		return "FaultServer"
	default:
		return "FaultUnknown"
	}
}

// Retryable reports whether the error type carries the retryable trait.
func (t *Type) Retryable() bool { return t.Shape.Traits.Retryable }

// Doc returns the documentation of the shape.
func (t *Type) Doc() string { return t.Shape.Traits.Documentation }

// Deprecated reports whether the shape is deprecated.
func (t *Type) Deprecated() bool { return t.Shape.Traits.Deprecated }

// BuilderName returns the builder type name.
func (t *Type) BuilderName() string { return t.Name + "Builder" }

// BuilderConstructor returns the builder constructor name.
func (t *Type) BuilderConstructor() string { return "New" + t.Name + "Builder" }

// UnknownName returns the name of the catch-all enum constant or union variant.
func (t *Type) UnknownName() string { return t.Name + "Unknown" }

// ParserName returns the name of the enum lookup function.
func (t *Type) ParserName() string { return "Parse" + t.Name }

// MessageField returns the member bound to the error message, if any.
func (t *Type) MessageField() *Field {
	if !t.IsError() {
		return nil
	}
	for _, f := range t.Fields {
		if f.Member.Name == "message" {
			return f
		}
	}
	return nil
}

// Type returns the type declaring the field.
func (f *Field) Type() *Type { return f.typ }

// IsEnum reports whether the member targets an enum.
func (f *Field) IsEnum() bool { return f.Target.Kind == shape.KindEnum }

// RawName returns the accessor of the raw value of an enum member.
func (f *Field) RawName() string { return f.Name + "Raw" }

// VariantName returns the union variant type name of the member.
func (f *Field) VariantName() string { return f.typ.Name + "Member" + f.Name }

// Sensitive reports whether the member or its target is sensitive.
func (f *Field) Sensitive() bool { return f.Member.Traits.Sensitive || f.Target.Traits.Sensitive }

// Streaming reports whether the member is a streaming blob.
func (f *Field) Streaming() bool { return f.Target.Kind == shape.KindBlob && f.Target.Traits.Streaming }

// IdempotencyToken reports whether the member is filled with a fresh token
// when left unset.
func (f *Field) IdempotencyToken() bool { return f.Member.Traits.IdempotencyToken }

// Doc returns the documentation of the member, falling back to its target.
func (f *Field) Doc() string {
	if d := f.Member.Traits.Documentation; d != "" {
		return d
	}
	return f.Target.Traits.Documentation
}

// Deprecated reports whether the member is deprecated.
func (f *Field) Deprecated() bool { return f.Member.Traits.Deprecated }

// StorageType returns the type of the struct field and builder field.
// Enum members store the raw wire value.
func (f *Field) StorageType() jen.Code {
	if f.IsEnum() {
		return jen.Op("*").String()
	}
	return f.Symbol.Type()
}

// TimestampFormat returns the wire format of a timestamp member.
func (f *Field) TimestampFormat() shape.TimestampFormat {
	return f.typ.graph.TimestampFormat(f.Member)
}

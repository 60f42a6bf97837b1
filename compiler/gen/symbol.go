package gen

import (
	"fmt"
	"slices"

	"github.com/dave/jennifer/jen"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/syssam/shapegen/shape"
)

// Symbol is the Go type a shape resolves to.
type Symbol struct {
	// Shape is the id of the shape the symbol was resolved from.
	Shape shape.ID
	Kind  shape.Kind
	// Name is the Go type name, unqualified.
	Name string
	// Namespace is the import path declaring Name. Empty for predeclared
	// and composite types.
	Namespace string
	// Boxed reports that members hold the value through a pointer, so
	// absence is nil.
	Boxed bool
	// Nilable reports that the type itself has a nil value (slices, maps,
	// interfaces).
	Nilable bool
	// Default is the Go literal of the member default.
	Default string
	// Sparse reports that a list or map permits null elements.
	Sparse bool
	// Element is the element of a list or set, or the value of a map.
	Element *Symbol
	// Dependencies are the import paths the type needs.
	Dependencies []string
}

// IsPointer reports whether the member form of the symbol is a pointer.
func (s *Symbol) IsPointer() bool { return s.Boxed }

// Absent reports whether the zero value of the member form is nil.
func (s *Symbol) Absent() bool { return s.Boxed || s.Nilable }

// alwaysPointer reports kinds held through a pointer in every position.
func (s *Symbol) alwaysPointer() bool {
	switch s.Kind {
	case shape.KindStructure, shape.KindBigInteger, shape.KindBigDecimal:
		return true
	case shape.KindBlob:
		return !s.Nilable
	}
	return false
}

// Type returns the member form of the type.
func (s *Symbol) Type() jen.Code {
	if s.Boxed {
		return jen.Op("*").Add(s.ValueType())
	}
	return s.ValueType()
}

// ValueType returns the type without the member pointer.
func (s *Symbol) ValueType() jen.Code {
	switch s.Kind {
	case shape.KindList, shape.KindSet:
		return jen.Index().Add(s.Element.ElementType(s.Sparse))
	case shape.KindMap:
		return jen.Map(jen.String()).Add(s.Element.ElementType(s.Sparse))
	case shape.KindDocument:
		return jen.Any()
	case shape.KindBlob:
		if s.Nilable {
			return jen.Index().Byte()
		}
	}
	if s.Namespace != "" {
		return jen.Qual(s.Namespace, s.Name)
	}
	return jen.Id(s.Name)
}

// ElementType returns the form of the type inside a collection. Sparse
// collections hold scalars through pointers so null is representable.
func (s *Symbol) ElementType(sparse bool) jen.Code {
	if s.ElementIsPointer(sparse) {
		return jen.Op("*").Add(s.ValueType())
	}
	return s.ValueType()
}

// ElementIsPointer reports whether ElementType is a pointer.
func (s *Symbol) ElementIsPointer(sparse bool) bool {
	if s.alwaysPointer() {
		return true
	}
	return sparse && !s.Nilable
}

// withBox returns a copy of s whose member form is a pointer.
func (s *Symbol) withBox() *Symbol {
	if s.Boxed || s.Nilable {
		return s
	}
	c := *s
	c.Boxed = true
	c.Default = "nil"
	return &c
}

// SymbolProvider resolves shapes to symbols. Results are memoized per shape
// id; concurrent callers may resolve the same id redundantly, and the first
// published symbol is the one every caller observes afterwards.
type SymbolProvider struct {
	graph    *shape.Graph
	modelPkg string
	smithy   string
	cache    *xsync.MapOf[shape.ID, *Symbol]
}

// NewSymbolProvider returns a provider over g. Named types are qualified
// with the model package, runtime types with the smithy package.
func NewSymbolProvider(g *shape.Graph, c *Config) *SymbolProvider {
	return &SymbolProvider{
		graph:    g,
		modelPkg: c.ModelPkg(),
		smithy:   c.SmithyPkg(),
		cache:    xsync.NewMapOf[shape.ID, *Symbol](),
	}
}

// ToSymbol resolves the shape with the given id.
func (p *SymbolProvider) ToSymbol(id shape.ID) (*Symbol, error) {
	return p.resolve(id, nil)
}

// MemberSymbol resolves the target of m, applying member traits.
func (p *SymbolProvider) MemberSymbol(m *shape.Member) (*Symbol, error) {
	s, err := p.ToSymbol(m.Target)
	if err != nil {
		return nil, err
	}
	if m.Traits.Boxed {
		return s.withBox(), nil
	}
	return s, nil
}

func (p *SymbolProvider) resolve(id shape.ID, path []shape.ID) (*Symbol, error) {
	if s, ok := p.cache.Load(id); ok {
		return s, nil
	}
	if slices.Contains(path, id) {
		return nil, NewSchemaResolutionError(string(id), fmt.Sprintf("collection cycle %v never passes through a structure or union", append(path, id)), nil)
	}
	sh, ok := p.graph.Shape(id)
	if !ok {
		return nil, NewSchemaResolutionError(string(id), "shape not found", nil)
	}
	s, err := p.build(sh, append(path, id))
	if err != nil {
		return nil, err
	}
	s, _ = p.cache.LoadOrStore(id, s)
	return s, nil
}

func primitive(sh *shape.Shape, name, zero string) *Symbol {
	s := &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: name, Default: zero}
	if sh.Traits.Boxed {
		s.Boxed, s.Default = true, "nil"
	}
	return s
}

func (p *SymbolProvider) build(sh *shape.Shape, path []shape.ID) (*Symbol, error) {
	switch sh.Kind {
	case shape.KindBoolean:
		return primitive(sh, "bool", "false"), nil
	case shape.KindByte:
		return primitive(sh, "int8", "0"), nil
	case shape.KindShort:
		return primitive(sh, "int16", "0"), nil
	case shape.KindInteger:
		return primitive(sh, "int32", "0"), nil
	case shape.KindLong:
		return primitive(sh, "int64", "0"), nil
	case shape.KindFloat:
		return primitive(sh, "float32", "0"), nil
	case shape.KindDouble:
		return primitive(sh, "float64", "0"), nil
	case shape.KindString:
		return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: "string", Boxed: true, Default: "nil"}, nil
	case shape.KindBigInteger:
		return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: "Int", Namespace: "math/big", Boxed: true, Default: "nil", Dependencies: []string{"math/big"}}, nil
	case shape.KindBigDecimal:
		return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: "Float", Namespace: "math/big", Boxed: true, Default: "nil", Dependencies: []string{"math/big"}}, nil
	case shape.KindBlob:
		if sh.Traits.Streaming {
			return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: "ByteStream", Namespace: p.smithy, Boxed: true, Default: "nil", Dependencies: []string{p.smithy}}, nil
		}
		return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: "[]byte", Nilable: true, Default: "nil"}, nil
	case shape.KindTimestamp:
		return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: "Time", Namespace: "time", Boxed: true, Default: "nil", Dependencies: []string{"time"}}, nil
	case shape.KindDocument:
		return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: "any", Nilable: true, Default: "nil"}, nil
	case shape.KindEnum:
		return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: pascal(sh.ID.Name()), Namespace: p.modelPkg, Boxed: true, Default: "nil", Dependencies: []string{p.modelPkg}}, nil
	case shape.KindStructure:
		return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: pascal(sh.ID.Name()), Namespace: p.modelPkg, Boxed: true, Default: "nil", Dependencies: []string{p.modelPkg}}, nil
	case shape.KindUnion:
		return &Symbol{Shape: sh.ID, Kind: sh.Kind, Name: pascal(sh.ID.Name()), Namespace: p.modelPkg, Nilable: true, Default: "nil", Dependencies: []string{p.modelPkg}}, nil
	case shape.KindList, shape.KindSet, shape.KindMap:
		return p.collection(sh, path)
	default:
		return nil, NewSchemaResolutionError(string(sh.ID), fmt.Sprintf("no Go type for %s shapes", sh.Kind), nil)
	}
}

func (p *SymbolProvider) collection(sh *shape.Shape, path []shape.ID) (*Symbol, error) {
	m := sh.Element()
	if sh.Kind == shape.KindMap {
		if k := sh.Key(); k == nil || !p.isString(k.Target) {
			return nil, NewSchemaResolutionError(string(sh.ID), "map keys must target a string shape", nil)
		}
		m = sh.Value()
	}
	if m == nil {
		return nil, NewSchemaResolutionError(string(sh.ID), fmt.Sprintf("%s has no element member", sh.Kind), nil)
	}
	elem, err := p.resolve(m.Target, path)
	if err != nil {
		return nil, err
	}
	deps := slices.Clone(elem.Dependencies)
	slices.Sort(deps)
	return &Symbol{
		Shape:        sh.ID,
		Kind:         sh.Kind,
		Nilable:      true,
		Default:      "nil",
		Sparse:       sh.Traits.Sparse,
		Element:      elem,
		Dependencies: slices.Compact(deps),
	}, nil
}

func (p *SymbolProvider) isString(id shape.ID) bool {
	sh, ok := p.graph.Shape(id)
	return ok && (sh.Kind == shape.KindString || sh.Kind == shape.KindEnum)
}

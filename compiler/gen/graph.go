package gen

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/syssam/shapegen/shape"
)

// Graph is the shape graph annotated for emission.
type Graph struct {
	*Config
	// Shapes is the input shape graph.
	Shapes *shape.Graph
	// Symbols resolves shapes to Go types.
	Symbols *SymbolProvider
	// Descriptors assigns wire descriptors shared by the serializer and
	// deserializer emitters.
	Descriptors *DescriptorRegistry
	// Structures, Unions and Enums are ordered by shape id.
	Structures []*Type
	Unions     []*Type
	Enums      []*Type
	// Operations are ordered by shape id.
	Operations []*Operation
	// Service is the service shape, if the model has exactly one.
	Service *shape.Shape

	types        map[shape.ID]*Type
	serialized   map[shape.ID]bool
	deserialized map[shape.ID]bool
}

// NewGraph annotates g for emission. It resolves every member symbol and
// validates every generated identifier, failing on the first conflict.
func NewGraph(c *Config, g *shape.Graph) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	c.defaults()
	if err := c.check(); err != nil {
		return nil, err
	}
	graph := &Graph{
		Config:       c,
		Shapes:       g,
		Symbols:      NewSymbolProvider(g, c),
		Descriptors:  NewDescriptorRegistry(g),
		types:        make(map[shape.ID]*Type),
		serialized:   make(map[shape.ID]bool),
		deserialized: make(map[shape.ID]bool),
	}
	pkg := newScope("the model package")
	for _, s := range g.ShapesOf(shape.KindStructure, shape.KindUnion, shape.KindEnum) {
		t, err := graph.newType(s, pkg)
		if err != nil {
			return nil, err
		}
		graph.types[s.ID] = t
		switch s.Kind {
		case shape.KindStructure:
			graph.Structures = append(graph.Structures, t)
		case shape.KindUnion:
			graph.Unions = append(graph.Unions, t)
		case shape.KindEnum:
			graph.Enums = append(graph.Enums, t)
		}
	}
	if err := graph.operations(); err != nil {
		return nil, err
	}
	if services := g.ShapesOf(shape.KindService); len(services) == 1 {
		graph.Service = services[0]
	}
	graph.reachability()
	if err := graph.checkContexts(); err != nil {
		return nil, err
	}
	c.Logger.Debug("annotated shape graph",
		zap.Int("structures", len(graph.Structures)),
		zap.Int("unions", len(graph.Unions)),
		zap.Int("enums", len(graph.Enums)),
		zap.Int("operations", len(graph.Operations)),
	)
	return graph, nil
}

// Type returns the annotated type of a structure, union or enum shape.
func (g *Graph) Type(id shape.ID) (*Type, bool) {
	t, ok := g.types[id]
	return t, ok
}

// Serialized returns the structures and unions that need a document
// serializer, ordered by shape id.
func (g *Graph) Serialized() []*Type { return g.filter(g.serialized) }

// Deserialized returns the structures and unions that need a document
// deserializer, ordered by shape id.
func (g *Graph) Deserialized() []*Type { return g.filter(g.deserialized) }

func (g *Graph) filter(set map[shape.ID]bool) []*Type {
	var out []*Type
	for _, t := range append(slices.Clone(g.Structures), g.Unions...) {
		if set[t.Shape.ID] {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b *Type) int { return strings.Compare(string(a.Shape.ID), string(b.Shape.ID)) })
	return out
}

// TimestampFormat selects the wire format of a timestamp member: a
// configured override for the member, then the member trait, then the
// target trait, then the configured default.
func (g *Graph) TimestampFormat(m *shape.Member) shape.TimestampFormat {
	if f, ok := g.TimestampOverrides[m.ID()]; ok {
		return f
	}
	if f := m.Traits.TimestampFormat; f != shape.TimestampDefault {
		return f
	}
	if t, ok := g.Shapes.Target(m); ok && t.Traits.TimestampFormat != shape.TimestampDefault {
		return t.Traits.TimestampFormat
	}
	return g.Config.TimestampFormat
}

// scope records generated identifiers and the owner of each.
type scope struct {
	name  string
	owner map[string]string
}

func newScope(name string) *scope {
	return &scope{name: name, owner: make(map[string]string)}
}

func (s *scope) declare(shapeID, member, ident, owner string) error {
	if other, ok := s.owner[ident]; ok {
		return NewNameConflictError(shapeID, member, ident, other+" in "+s.name)
	}
	s.owner[ident] = owner
	return nil
}

func (g *Graph) newType(s *shape.Shape, pkg *scope) (*Type, error) {
	t := &Type{Config: g.Config, Shape: s, Name: pascal(s.ID.Name()), graph: g}
	id := string(s.ID)
	owner := "shape " + id
	if err := pkg.declare(id, "", t.Name, owner); err != nil {
		return nil, err
	}
	switch s.Kind {
	case shape.KindEnum:
		return t, g.enumValues(t, pkg)
	case shape.KindStructure:
		for _, ident := range []string{t.BuilderName(), t.BuilderConstructor()} {
			if err := pkg.declare(id, "", ident, owner); err != nil {
				return nil, err
			}
		}
	case shape.KindUnion:
		if err := pkg.declare(id, "", t.UnknownName(), owner); err != nil {
			return nil, err
		}
	}
	members := newScope("type " + t.Name)
	for _, m := range s.SortedMembers() {
		f, err := g.newField(t, m)
		if err != nil {
			return nil, err
		}
		if err := g.checkField(t, f, members, pkg); err != nil {
			return nil, err
		}
		t.Fields = append(t.Fields, f)
	}
	return t, nil
}

func (g *Graph) newField(t *Type, m *shape.Member) (*Field, error) {
	target, ok := g.Shapes.Target(m)
	if !ok {
		return nil, NewSchemaResolutionError(m.ID(), "target "+string(m.Target)+" not found", nil)
	}
	if t.IsUnion() && target.Kind == shape.KindUnit {
		return nil, NewUnsupportedConstructError(string(t.Shape.ID), m.Name, "union member targeting "+string(shape.Unit))
	}
	sym, err := g.Symbols.MemberSymbol(m)
	if err != nil {
		return nil, err
	}
	return &Field{
		typ:     t,
		Member:  m,
		Target:  target,
		Symbol:  sym,
		Name:    pascal(m.Name),
		Storage: storageField(m.Name),
	}, nil
}

func (g *Graph) checkField(t *Type, f *Field, members, pkg *scope) error {
	id := string(t.Shape.ID)
	if t.IsUnion() {
		if err := members.declare(id, f.Member.Name, f.Name, "member "+f.Member.Name); err != nil {
			return err
		}
		return pkg.declare(id, f.Member.Name, f.VariantName(), "variant of shape "+id)
	}
	if _, ok := structureMethods[f.Name]; ok {
		return NewNameConflictError(id, f.Member.Name, f.Name, "a generated method")
	}
	if t.IsError() {
		if f.Member.Name == "message" {
			if f.Target.Kind != shape.KindString {
				return NewReservedPropertyTypeError(id, f.Member.Name, "message", f.Target.Kind.String(), shape.KindString.String())
			}
		} else if _, ok := errorMethods[f.Name]; ok {
			return NewNameConflictError(id, f.Member.Name, f.Name, "a generated error method")
		}
	}
	if err := members.declare(id, f.Member.Name, f.Name, "member "+f.Member.Name); err != nil {
		return err
	}
	if f.IsEnum() {
		return members.declare(id, f.Member.Name, f.RawName(), "raw accessor of member "+f.Member.Name)
	}
	return nil
}

func (g *Graph) enumValues(t *Type, pkg *scope) error {
	id := string(t.Shape.ID)
	for _, ident := range []string{t.UnknownName(), t.ParserName()} {
		if err := pkg.declare(id, "", ident, "shape "+id); err != nil {
			return err
		}
	}
	for _, v := range t.Shape.Traits.Enum {
		name := v.Name
		if name == "" {
			name = v.Value
		}
		c := &EnumConst{Name: t.Name + pascal(name), Value: v.Value, Doc: v.Documentation, Deprecated: v.Deprecated}
		if err := pkg.declare(id, name, c.Name, "enum constant of shape "+id); err != nil {
			return err
		}
		t.Values = append(t.Values, c)
	}
	return nil
}

func (g *Graph) structure(id shape.ID, role string) (*Type, error) {
	if id == "" || id == shape.Unit {
		return nil, nil
	}
	t, ok := g.types[id]
	if !ok || !t.IsStructure() {
		return nil, NewSchemaResolutionError(string(id), role+" must target a structure", nil)
	}
	return t, nil
}

func (g *Graph) operations() error {
	client := newScope("the client package")
	client.owner["ServiceVersion"] = "the service version constant"
	for _, s := range g.Shapes.ShapesOf(shape.KindOperation) {
		op := &Operation{Shape: s, Name: pascal(s.ID.Name())}
		var err error
		if op.Input, err = g.structure(s.Input, "operation input of "+string(s.ID)); err != nil {
			return err
		}
		if op.Output, err = g.structure(s.Output, "operation output of "+string(s.ID)); err != nil {
			return err
		}
		for _, e := range s.Errors {
			t, err := g.structure(e, "operation error of "+string(s.ID))
			if err != nil {
				return err
			}
			if t == nil || !t.IsError() {
				return NewSchemaResolutionError(string(e), "operation error of "+string(s.ID)+" lacks the error trait", nil)
			}
			op.Errors = append(op.Errors, t)
		}
		slices.SortFunc(op.Errors, func(a, b *Type) int { return strings.Compare(a.Name, b.Name) })
		op.Errors = slices.Compact(op.Errors)
		if err := client.declare(string(s.ID), "", op.Name, "operation "+string(s.ID)); err != nil {
			return err
		}
		g.Operations = append(g.Operations, op)
	}
	return nil
}

// reachability marks the structures and unions whose document serializers
// and deserializers are needed. Without operations every one is needed.
func (g *Graph) reachability() {
	if len(g.Operations) == 0 {
		for _, t := range append(slices.Clone(g.Structures), g.Unions...) {
			g.serialized[t.Shape.ID] = true
			g.deserialized[t.Shape.ID] = true
		}
		return
	}
	mark := func(set map[shape.ID]bool, t *Type) {
		if t == nil {
			return
		}
		for _, m := range t.Shape.SortedMembers() {
			g.Shapes.Walk(m.Target, func(s *shape.Shape) bool {
				if s.Kind == shape.KindStructure || s.Kind == shape.KindUnion {
					set[s.ID] = true
				}
				return true
			})
		}
	}
	for _, op := range g.Operations {
		mark(g.serialized, op.Input)
		mark(g.deserialized, op.Output)
		for _, e := range op.Errors {
			mark(g.deserialized, e)
		}
	}
}

// Descriptor context names. Each generated artifact owns one context.
const (
	ContextSerializer   = "Ser"
	ContextDeserializer = "Deser"
)

// DocumentContext returns the descriptor context of a document artifact.
func DocumentContext(t *Type, side string) string { return camel(t.Name) + side }

// RequestContext returns the descriptor context of an operation request.
func RequestContext(op *Operation) string { return camel(op.Name) + "Request" + ContextSerializer }

// ResponseContext returns the descriptor context of an operation response.
func ResponseContext(op *Operation) string { return camel(op.Name) + "Response" + ContextDeserializer }

// ErrorContext returns the descriptor context of an error deserializer.
func ErrorContext(t *Type) string { return camel(t.Name) + "Error" + ContextDeserializer }

// checkContexts verifies that descriptor contexts, which prefix the
// descriptor variables of the transform package, are unique.
func (g *Graph) checkContexts() error {
	ctx := newScope("the transform package")
	declare := func(id shape.ID, name, owner string) error {
		return ctx.declare(string(id), "", name, owner)
	}
	for _, t := range g.Serialized() {
		if err := declare(t.Shape.ID, DocumentContext(t, ContextSerializer), "document serializer of "+string(t.Shape.ID)); err != nil {
			return err
		}
	}
	for _, t := range g.Deserialized() {
		if err := declare(t.Shape.ID, DocumentContext(t, ContextDeserializer), "document deserializer of "+string(t.Shape.ID)); err != nil {
			return err
		}
	}
	errs := make(map[shape.ID]bool)
	for _, op := range g.Operations {
		if err := declare(op.Shape.ID, RequestContext(op), "request serializer of "+string(op.Shape.ID)); err != nil {
			return err
		}
		if err := declare(op.Shape.ID, ResponseContext(op), "response deserializer of "+string(op.Shape.ID)); err != nil {
			return err
		}
		for _, e := range op.Errors {
			if errs[e.Shape.ID] {
				continue
			}
			errs[e.Shape.ID] = true
			if err := declare(e.Shape.ID, ErrorContext(e), "error deserializer of "+string(e.Shape.ID)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Errors returns the error types referenced by any operation, ordered by name.
func (g *Graph) Errors() []*Type {
	seen := make(map[shape.ID]bool)
	var out []*Type
	for _, op := range g.Operations {
		for _, e := range op.Errors {
			if !seen[e.Shape.ID] {
				seen[e.Shape.ID] = true
				out = append(out, e)
			}
		}
	}
	slices.SortFunc(out, func(a, b *Type) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Package load reads shape models from their JSON AST (or its YAML rendering)
// into a shape.Graph. The model is expected to be validated already; the
// loader only decodes it and checks that every shape reference resolves.
package load

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/shapegen/shape"
)

type (
	// document is the top-level AST object.
	document struct {
		Version string              `yaml:"smithy"`
		Shapes  map[string]astShape `yaml:"shapes"`
	}

	// astShape is a shape definition. Members is kept as a node so the
	// declaration order survives decoding.
	astShape struct {
		Type       string         `yaml:"type"`
		Version    string         `yaml:"version"`
		Members    yaml.Node      `yaml:"members"`
		Member     *ref           `yaml:"member"`
		Key        *ref           `yaml:"key"`
		Value      *ref           `yaml:"value"`
		Input      *ref           `yaml:"input"`
		Output     *ref           `yaml:"output"`
		Errors     []ref          `yaml:"errors"`
		Operations []ref          `yaml:"operations"`
		Traits     map[string]any `yaml:"traits"`
	}

	// ref is a member or a shape reference.
	ref struct {
		Target string         `yaml:"target"`
		Traits map[string]any `yaml:"traits"`
	}
)

// simple holds the AST type names of the non-aggregate data shapes.
var simple = map[string]shape.Kind{
	"boolean":    shape.KindBoolean,
	"byte":       shape.KindByte,
	"short":      shape.KindShort,
	"integer":    shape.KindInteger,
	"long":       shape.KindLong,
	"float":      shape.KindFloat,
	"double":     shape.KindDouble,
	"bigInteger": shape.KindBigInteger,
	"bigDecimal": shape.KindBigDecimal,
	"string":     shape.KindString,
	"blob":       shape.KindBlob,
	"timestamp":  shape.KindTimestamp,
	"document":   shape.KindDocument,
}

// Load reads and parses the model file at path.
func Load(path string) (*shape.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read model: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse decodes a model document and returns its shape graph, prelude
// included. JSON input must be indented with spaces.
func Parse(data []byte) (*shape.Graph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load: decode model: %w", err)
	}
	switch major, _, _ := strings.Cut(doc.Version, "."); major {
	case "1", "2":
	case "":
		return nil, fmt.Errorf("load: missing model version")
	default:
		return nil, fmt.Errorf("load: unsupported model version %q", doc.Version)
	}
	shapes := make([]*shape.Shape, 0, len(doc.Shapes))
	for _, id := range slices.Sorted(maps.Keys(doc.Shapes)) {
		s, err := convert(id, doc.Shapes[id])
		if err != nil {
			return nil, fmt.Errorf("load: shape %q: %w", id, err)
		}
		shapes = append(shapes, s)
	}
	g := shape.NewGraph()
	if err := g.Add(shapes...); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	for _, s := range shapes {
		if err := resolve(g, s); err != nil {
			return nil, fmt.Errorf("load: shape %q: %w", s.ID, err)
		}
	}
	return g, nil
}

func convert(id string, a astShape) (*shape.Shape, error) {
	ns, name, ok := strings.Cut(id, "#")
	if !ok || ns == "" || name == "" {
		return nil, fmt.Errorf("invalid shape id")
	}
	if ns == shape.PreludeNamespace {
		return nil, fmt.Errorf("namespace %q is reserved", ns)
	}
	t, err := decodeTraits(a.Traits)
	if err != nil {
		return nil, err
	}
	s := &shape.Shape{ID: shape.ID(id), Traits: t}
	switch a.Type {
	case "structure", "union":
		s.Kind = shape.KindStructure
		if a.Type == "union" {
			s.Kind = shape.KindUnion
		}
		err = eachMember(a.Members, func(name string, r ref, t shape.Traits) error {
			s.Members = append(s.Members, &shape.Member{Name: name, Target: shape.ID(r.Target), Traits: t})
			return nil
		})
	case "list", "set":
		s.Kind = shape.KindList
		if a.Type == "set" {
			s.Kind = shape.KindSet
		}
		var m *shape.Member
		if m, err = member("member", a.Member); err == nil {
			s.Members = []*shape.Member{m}
		}
	case "map":
		s.Kind = shape.KindMap
		key, kerr := member("key", a.Key)
		value, verr := member("value", a.Value)
		if err = firstErr(kerr, verr); err == nil {
			s.Members = []*shape.Member{key, value}
		}
	case "enum":
		s.Kind = shape.KindEnum
		err = eachMember(a.Members, func(name string, r ref, t shape.Traits) error {
			v := shape.EnumValue{Name: name, Value: name, Documentation: t.Documentation, Deprecated: t.Deprecated}
			if raw, ok := r.Traits[shape.TraitEnumValue]; ok {
				if v.Value, ok = raw.(string); !ok {
					return fmt.Errorf("member %q: enum value must be a string", name)
				}
			}
			s.Traits.Enum = append(s.Traits.Enum, v)
			return nil
		})
	case "operation":
		s.Kind = shape.KindOperation
		s.Input, s.Output = shape.Unit, shape.Unit
		if a.Input != nil {
			s.Input = shape.ID(a.Input.Target)
		}
		if a.Output != nil {
			s.Output = shape.ID(a.Output.Target)
		}
		for _, e := range a.Errors {
			s.Errors = append(s.Errors, shape.ID(e.Target))
		}
	case "service":
		s.Kind = shape.KindService
		s.Version = a.Version
		for _, op := range a.Operations {
			s.Operations = append(s.Operations, shape.ID(op.Target))
		}
	default:
		kind, ok := simple[a.Type]
		if !ok {
			return nil, fmt.Errorf("unsupported shape type %q", a.Type)
		}
		s.Kind = kind
		// Enum trait on a string shape.
		if kind == shape.KindString && len(t.Enum) > 0 {
			s.Kind = shape.KindEnum
		}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func member(name string, r *ref) (*shape.Member, error) {
	if r == nil {
		return nil, fmt.Errorf("missing %s member", name)
	}
	if r.Target == "" {
		return nil, fmt.Errorf("member %q: missing target", name)
	}
	t, err := decodeTraits(r.Traits)
	if err != nil {
		return nil, fmt.Errorf("member %q: %w", name, err)
	}
	return &shape.Member{Name: name, Target: shape.ID(r.Target), Traits: t}, nil
}

// eachMember calls fn for every entry of a members object in declaration
// order.
func eachMember(node yaml.Node, fn func(string, ref, shape.Traits) error) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("members must be an object")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var r ref
		if err := node.Content[i+1].Decode(&r); err != nil {
			return fmt.Errorf("member %q: %w", name, err)
		}
		if r.Target == "" {
			return fmt.Errorf("member %q: missing target", name)
		}
		t, err := decodeTraits(r.Traits)
		if err != nil {
			return fmt.Errorf("member %q: %w", name, err)
		}
		if err := fn(name, r, t); err != nil {
			return err
		}
	}
	return nil
}

// resolve checks that every reference of s points to a shape of g.
func resolve(g *shape.Graph, s *shape.Shape) error {
	check := func(what string, id shape.ID) error {
		if _, ok := g.Shape(id); !ok {
			return fmt.Errorf("%s targets unknown shape %q", what, id)
		}
		return nil
	}
	var errs []error
	for _, m := range s.Members {
		errs = append(errs, check(fmt.Sprintf("member %q", m.Name), m.Target))
	}
	switch s.Kind {
	case shape.KindOperation:
		errs = append(errs, check("input", s.Input), check("output", s.Output))
		for _, e := range s.Errors {
			errs = append(errs, check("error", e))
		}
	case shape.KindService:
		for _, op := range s.Operations {
			errs = append(errs, check("operation", op))
		}
	}
	return firstErr(errs...)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

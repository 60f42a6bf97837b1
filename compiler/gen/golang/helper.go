package golang

import (
	"path"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/compiler/gen"
	"github.com/syssam/shapegen/shape"
)

// Package names of the generated subpackages.
const (
	modelName     = "model"
	transformName = "transform"
)

// Well-known identifiers of the generated code.
const (
	recv         = "v"
	builderVar   = "builder"
	inputVar     = "input"
	serializer   = "serializer"
	deserializer = "deserializer"
)

func modelFile(h gen.GeneratorHelper) *jen.File {
	return h.NewFile(h.Graph().ModelPkg(), modelName)
}

func transformFile(h gen.GeneratorHelper) *jen.File {
	return h.NewFile(h.Graph().TransformPkg(), transformName)
}

// rootName returns the package name of the generated root package.
func rootName(pkg string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return -1
	}, path.Base(pkg))
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "client" + name
	}
	return name
}

func smithyQual(h gen.GeneratorHelper, name string) *jen.Statement {
	return jen.Qual(h.Graph().SmithyPkg(), name)
}

func serdeQual(h gen.GeneratorHelper, name string) *jen.Statement {
	return jen.Qual(h.Graph().SerdePkg(), name)
}

func timestampQual(h gen.GeneratorHelper, name string) *jen.Statement {
	return jen.Qual(h.Graph().TimestampPkg(), name)
}

func modelQual(h gen.GeneratorHelper, name string) *jen.Statement {
	return jen.Qual(h.Graph().ModelPkg(), name)
}

// comment writes a doc comment. Modeled documentation wins over the
// fallback sentence.
func comment(f *jen.File, fallback, doc string, deprecated bool) {
	for _, line := range docLines(fallback, doc, deprecated) {
		f.Comment(line)
	}
}

// fieldComment is comment for struct fields.
func fieldComment(g *jen.Group, doc string, deprecated bool) {
	if doc == "" && !deprecated {
		return
	}
	for _, line := range docLines("", doc, deprecated) {
		g.Comment(line)
	}
}

func docLines(fallback, doc string, deprecated bool) []string {
	text := strings.TrimSpace(doc)
	if text == "" {
		text = fallback
	}
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	if deprecated {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "Deprecated: This member or shape is deprecated.")
	}
	return lines
}

// ifErr returns `if err != nil { return <zero>, err }`.
func ifErr(zero jen.Code) jen.Code {
	return jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(zero, jen.Err()))
}

// descriptorVar returns the variable holding a field descriptor.
func descriptorVar(context string, d *gen.FieldDescriptor) string {
	return context + d.Name + "Descriptor"
}

// objectVar returns the variable holding the object descriptor of a context.
func objectVar(context string) string {
	return context + "ObjDescriptor"
}

// genDescriptors declares the descriptors of a context. A nil container
// declares an empty object descriptor.
func genDescriptors(h gen.GeneratorHelper, f *jen.File, context, name string, container *shape.Shape) error {
	var descs []*gen.FieldDescriptor
	if container != nil {
		var err error
		if descs, err = h.Graph().Descriptors.Register(context, container); err != nil {
			return err
		}
	}
	f.Var().DefsFunc(func(g *jen.Group) {
		fields := make([]jen.Code, 0, len(descs)+1)
		fields = append(fields, jen.Lit(name))
		for _, d := range descs {
			kind := serdeQual(h, d.Kind)
			if d.Nested() {
				g.Id(descriptorVar(context, d)).Op("=").Add(serdeQual(h, "NewNestedDescriptor")).Call(kind, jen.Lit(d.SerialName))
			} else {
				g.Id(descriptorVar(context, d)).Op("=").Add(serdeQual(h, "NewFieldDescriptor")).Call(kind, jen.Lit(d.SerialName), jen.Lit(d.Index))
			}
			fields = append(fields, jen.Id(descriptorVar(context, d)))
		}
		g.Id(objectVar(context)).Op("=").Add(serdeQual(h, "NewObjectDescriptor")).Call(fields...)
	})
	return nil
}

// target returns the shape m points to.
func target(h gen.GeneratorHelper, m *shape.Member) (*shape.Shape, error) {
	t, ok := h.Graph().Shapes.Target(m)
	if !ok {
		return nil, gen.NewSchemaResolutionError(m.ID(), "target "+string(m.Target)+" not found", nil)
	}
	return t, nil
}

// elementMember returns the member holding the elements of a list or set,
// or the values of a map.
func elementMember(s *shape.Shape) *shape.Member {
	if s.Kind == shape.KindMap {
		return s.Value()
	}
	return s.Element()
}

// unsupported reports members with no wire strategy.
func unsupported(h gen.GeneratorHelper, m *shape.Member, t *shape.Shape) error {
	switch {
	case t.Kind == shape.KindBigInteger || t.Kind == shape.KindBigDecimal:
		return gen.NewUnsupportedConstructError(string(m.Container), m.Name, t.Kind.String()+" value on the wire")
	case t.Kind == shape.KindBlob && t.Traits.Streaming:
		return gen.NewUnsupportedConstructError(string(m.Container), m.Name, "streaming blob inside a document")
	}
	return nil
}

// addressed reports whether a freshly read value must be stored through
// its address. Structure readers already return pointers.
func addressed(sym *gen.Symbol, pointer bool) bool {
	return pointer && sym.Kind != shape.KindStructure
}

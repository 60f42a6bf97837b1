package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/compiler/gen"
	"github.com/syssam/shapegen/shape"
)

// genDocumentDeserializer generates transform/{shape}_document_deserializer.go.
func genDocumentDeserializer(h gen.GeneratorHelper, t *gen.Type) (*jen.File, error) {
	f := transformFile(h)
	context := gen.DocumentContext(t, gen.ContextDeserializer)
	if err := genDescriptors(h, f, context, string(t.Shape.ID), t.Shape); err != nil {
		return nil, err
	}
	r := newReader(h, context, nilValue)
	name := documentDeserializer(t.Name)
	params := jen.Id(deserializer).Add(serdeQual(h, "Deserializer"))
	if t.IsUnion() {
		body, err := r.union(t)
		if err != nil {
			return nil, err
		}
		f.Commentf("%s reads the variant of a %s. Unknown tags yield %s.", name, t.Name, t.UnknownName())
		f.Func().Id(name).Params(params).Params(modelQual(h, t.Name), jen.Error()).Block(body...)
		return f, nil
	}
	body, err := r.structure(t)
	if err != nil {
		return nil, err
	}
	f.Commentf("%s reads a %s document.", name, t.Name)
	f.Func().Id(name).Params(params).Params(jen.Op("*").Add(modelQual(h, t.Name)), jen.Error()).Block(
		append(body, jen.Return(jen.Id(builderVar).Dot("Build").Call(), jen.Nil()))...,
	)
	return f, nil
}

// genResponseDeserializer generates transform/{op}_operation_deserializer.go.
func genResponseDeserializer(h gen.GeneratorHelper, op *gen.Operation) (*jen.File, error) {
	f := transformFile(h)
	context := gen.ResponseContext(op)
	name := "Deserialize" + op.Name + "Response"
	params := jen.Id(deserializer).Add(serdeQual(h, "Deserializer"))
	doc := fmt.Sprintf("%s reads the output of the %s operation.", name, op.Name)
	if op.Output == nil {
		if err := genDescriptors(h, f, context, string(op.Shape.ID)+"$output", nil); err != nil {
			return nil, err
		}
		f.Comment(doc)
		unit := func() jen.Code { return jen.Struct().Values() }
		r := newReader(h, context, unit)
		f.Func().Id(name).Params(params).Params(jen.Struct(), jen.Error()).Block(
			append(r.fields(nil), jen.Return(unit(), jen.Nil()))...,
		)
		return f, nil
	}
	if err := genDescriptors(h, f, context, string(op.Output.Shape.ID), op.Output.Shape); err != nil {
		return nil, err
	}
	r := newReader(h, context, nilValue)
	body, err := r.structure(op.Output)
	if err != nil {
		return nil, err
	}
	f.Comment(doc)
	f.Func().Id(name).Params(params).Params(jen.Op("*").Add(modelQual(h, op.Output.Name)), jen.Error()).Block(
		append(body, jen.Return(jen.Id(builderVar).Dot("Build").Call(), jen.Nil()))...,
	)
	return f, nil
}

// genErrorDeserializer generates transform/{shape}_error_deserializer.go.
func genErrorDeserializer(h gen.GeneratorHelper, t *gen.Type) (*jen.File, error) {
	f := transformFile(h)
	context := gen.ErrorContext(t)
	if err := genDescriptors(h, f, context, string(t.Shape.ID), t.Shape); err != nil {
		return nil, err
	}
	r := newReader(h, context, nilValue)
	body, err := r.structure(t)
	if err != nil {
		return nil, err
	}
	name := errorDeserializer(t.Name)
	f.Commentf("%s reads a %s error document.", name, t.Name)
	f.Func().Id(name).Params(jen.Id(deserializer).Add(serdeQual(h, "Deserializer"))).Params(smithyQual(h, "APIError"), jen.Error()).Block(
		append(body, jen.Return(jen.Id(builderVar).Dot("Build").Call(), jen.Nil()))...,
	)
	return f, nil
}

func nilValue() jen.Code { return jen.Nil() }

func documentDeserializer(name string) string { return "deserialize" + name + "Document" }

func errorDeserializer(name string) string { return "Deserialize" + name + "Error" }

// reader emits the deserialization statements of one context.
type reader struct {
	h       gen.GeneratorHelper
	context string
	// zero returns the value returned alongside errors.
	zero func() jen.Code
}

func newReader(h gen.GeneratorHelper, context string, zero func() jen.Code) *reader {
	return &reader{h: h, context: context, zero: zero}
}

func (r *reader) check() jen.Code { return ifErr(r.zero()) }

func (r *reader) descriptor(m *shape.Member, level int) (jen.Code, error) {
	var (
		d   *gen.FieldDescriptor
		err error
	)
	if level == 0 {
		d, err = r.h.Graph().Descriptors.Member(r.context, m)
	} else {
		d, err = r.h.Graph().Descriptors.Nested(r.context, m, level-1)
	}
	if err != nil {
		return nil, err
	}
	return jen.Id(descriptorVar(r.context, d)), nil
}

// fields returns the field loop: it opens the structure and dispatches on
// every field index. Fields without a case run unknown, then are skipped.
func (r *reader) fields(cases []jen.Code, unknown ...jen.Code) []jen.Code {
	return []jen.Code{
		jen.List(jen.Id("it"), jen.Err()).Op(":=").Id(deserializer).Dot("DeserializeStruct").Call(jen.Id(objectVar(r.context))),
		r.check(),
		jen.For().Block(
			jen.List(jen.Id("idx"), jen.Err()).Op(":=").Id("it").Dot("FindNextFieldIndex").Call(),
			r.check(),
			jen.If(jen.Id("idx").Op("==").Add(serdeQual(r.h, "EndOfFields"))).Block(jen.Break()),
			jen.Switch(jen.Id("idx")).BlockFunc(func(g *jen.Group) {
				for _, c := range cases {
					g.Add(c)
				}
				g.Default().Block(append(unknown,
					jen.If(jen.Err().Op(":=").Id("it").Dot("SkipValue").Call(), jen.Err().Op("!=").Nil()).Block(
						jen.Return(r.zero(), jen.Err()),
					),
				)...)
			}),
		),
	}
}

// structure returns the statements reading a structure into builder.
func (r *reader) structure(t *gen.Type) ([]jen.Code, error) {
	var cases []jen.Code
	for _, field := range t.Fields {
		if field.Streaming() {
			continue
		}
		if err := unsupported(r.h, field.Member, field.Target); err != nil {
			return nil, err
		}
		desc, err := r.descriptor(field.Member, 0)
		if err != nil {
			return nil, err
		}
		var rerr error
		cases = append(cases, jen.Case(jen.Add(desc).Dot("Index")).BlockFunc(func(g *jen.Group) {
			dst := jen.Id(builderVar).Dot(field.Name)
			if field.IsEnum() {
				g.List(jen.Id("v"), jen.Err()).Op(":=").Id("it").Dot("DeserializeString").Call()
				g.Add(r.check())
				g.Add(dst).Op("=").Op("&").Id("v")
				return
			}
			if rerr = r.read(g, "it", field.Member, field.Member, field.Target, field.Symbol, "v", 0); rerr != nil {
				return
			}
			if addressed(field.Symbol, field.Symbol.IsPointer()) {
				g.Add(dst).Op("=").Op("&").Id("v")
			} else {
				g.Add(dst).Op("=").Id("v")
			}
		}))
		if rerr != nil {
			return nil, rerr
		}
	}
	code := []jen.Code{
		jen.Id(builderVar).Op(":=").Add(modelQual(r.h, t.BuilderConstructor())).Call(),
	}
	return append(code, r.fields(cases)...), nil
}

// union returns the body of a union deserializer. The last known variant
// read wins; unknown tags are kept only when no known variant was read.
func (r *reader) union(t *gen.Type) ([]jen.Code, error) {
	var cases []jen.Code
	for _, field := range t.Fields {
		if err := unsupported(r.h, field.Member, field.Target); err != nil {
			return nil, err
		}
		desc, err := r.descriptor(field.Member, 0)
		if err != nil {
			return nil, err
		}
		var rerr error
		cases = append(cases, jen.Case(jen.Add(desc).Dot("Index")).BlockFunc(func(g *jen.Group) {
			if rerr = r.read(g, "it", field.Member, field.Member, field.Target, field.Symbol, "v", 0); rerr != nil {
				return
			}
			g.Id("value").Op("=").Op("&").Add(modelQual(r.h, field.VariantName())).Values(jen.Dict{
				jen.Id("Value"): jen.Id("v"),
			})
		}))
		if rerr != nil {
			return nil, rerr
		}
	}
	unknown := jen.If(jen.Id("value").Op("==").Nil()).Block(
		jen.Id("value").Op("=").Op("&").Add(modelQual(r.h, t.UnknownName())).Values(jen.Dict{
			jen.Id("Tag"): jen.Id("it").Dot("FieldName").Call(),
		}),
	)
	code := []jen.Code{jen.Var().Id("value").Add(modelQual(r.h, t.Name))}
	code = append(code, r.fields(cases, unknown)...)
	return append(code, jen.Return(jen.Id("value"), jen.Nil())), nil
}

// read emits the statements declaring out and reading one value of shape t
// into it from src. Structures are read as pointers, every other kind as
// its value form. m is the top-level member owning the descriptors, holder
// the member whose target is t, and level the number of enclosing
// collections.
func (r *reader) read(g *jen.Group, src string, m, holder *shape.Member, t *shape.Shape, sym *gen.Symbol, out string, level int) error {
	if err := unsupported(r.h, holder, t); err != nil {
		return err
	}
	raw := out + "Raw"
	call := func(name string, args ...jen.Code) *jen.Statement {
		return jen.Id(src).Dot(name).Call(args...)
	}
	if suffix, ok := scalarSuffix[t.Kind]; ok {
		g.List(jen.Id(out), jen.Err()).Op(":=").Add(call("Deserialize" + suffix))
		g.Add(r.check())
		return nil
	}
	switch t.Kind {
	case shape.KindEnum:
		g.List(jen.Id(raw), jen.Err()).Op(":=").Add(call("DeserializeString"))
		g.Add(r.check())
		g.Id(out).Op(":=").Add(modelQual(r.h, "Parse"+sym.Name)).Call(jen.Id(raw))
	case shape.KindTimestamp:
		switch r.h.Graph().TimestampFormat(holder) {
		case shape.TimestampDateTime, shape.TimestampHTTPDate:
			parse := "ParseDateTime"
			if r.h.Graph().TimestampFormat(holder) == shape.TimestampHTTPDate {
				parse = "ParseHTTPDate"
			}
			g.List(jen.Id(raw), jen.Err()).Op(":=").Add(call("DeserializeString"))
			g.Add(r.check())
			g.List(jen.Id(out), jen.Err()).Op(":=").Add(timestampQual(r.h, parse)).Call(jen.Id(raw))
			g.Add(r.check())
		default:
			g.List(jen.Id(raw), jen.Err()).Op(":=").Add(call("DeserializeDouble"))
			g.Add(r.check())
			g.Id(out).Op(":=").Add(timestampQual(r.h, "ParseEpochSeconds")).Call(jen.Id(raw))
		}
	case shape.KindBlob:
		g.List(jen.Id(raw), jen.Err()).Op(":=").Add(call("DeserializeString"))
		g.Add(r.check())
		g.List(jen.Id(out), jen.Err()).Op(":=").Qual("encoding/base64", "StdEncoding").Dot("DecodeString").Call(jen.Id(raw))
		g.Add(r.check())
	case shape.KindDocument:
		g.List(jen.Id(out), jen.Err()).Op(":=").Add(call("DeserializeDocument"))
		g.Add(r.check())
	case shape.KindStructure, shape.KindUnion:
		g.List(jen.Id(out), jen.Err()).Op(":=").Id(documentDeserializer(sym.Name)).Call(jen.Id(src))
		g.Add(r.check())
	case shape.KindList, shape.KindSet, shape.KindMap:
		return r.collection(g, src, m, t, sym, out, level)
	default:
		return gen.NewSchemaResolutionError(string(t.ID), fmt.Sprintf("no deserializer for %s shapes", t.Kind), nil)
	}
	return nil
}

// collection emits the read loop of a list, set or map. Null elements are
// kept as nil in sparse collections and dropped from dense ones.
func (r *reader) collection(g *jen.Group, src string, m *shape.Member, t *shape.Shape, sym *gen.Symbol, out string, level int) error {
	desc, err := r.descriptor(m, level)
	if err != nil {
		return err
	}
	elemMember := elementMember(t)
	elemTarget, err := target(r.h, elemMember)
	if err != nil {
		return err
	}
	var (
		isMap  = t.Kind == shape.KindMap
		col    = fmt.Sprintf("col%d", level)
		key    = fmt.Sprintf("k%d", level)
		el     = fmt.Sprintf("el%d", level+1)
		open   = "DeserializeList"
		next   = "HasNextElement"
		stored = jen.Id(el)
	)
	if isMap {
		open, next = "DeserializeMap", "HasNextEntry"
	}
	if addressed(sym.Element, sym.Element.ElementIsPointer(sym.Sparse)) {
		stored = jen.Op("&").Id(el)
	}
	store := func(v jen.Code) jen.Code {
		if isMap {
			return jen.Id(out).Index(jen.Id(key)).Op("=").Add(v)
		}
		return jen.Id(out).Op("=").Append(jen.Id(out), v)
	}

	g.List(jen.Id(col), jen.Err()).Op(":=").Id(src).Dot(open).Call(desc)
	g.Add(r.check())
	if isMap {
		g.Id(out).Op(":=").Make(sym.ValueType())
	} else {
		g.Id(out).Op(":=").Make(sym.ValueType(), jen.Lit(0))
	}
	var rerr error
	g.For().BlockFunc(func(b *jen.Group) {
		b.List(jen.Id("more"), jen.Err()).Op(":=").Id(col).Dot(next).Call()
		b.Add(r.check())
		b.If(jen.Op("!").Id("more")).Block(jen.Break())
		if isMap {
			b.List(jen.Id(key), jen.Err()).Op(":=").Id(col).Dot("Key").Call()
			b.Add(r.check())
		}
		b.List(jen.Id("present"), jen.Err()).Op(":=").Id(col).Dot("NextHasValue").Call()
		b.Add(r.check())
		b.If(jen.Op("!").Id("present")).BlockFunc(func(n *jen.Group) {
			n.If(jen.Err().Op(":=").Id(col).Dot("DeserializeNull").Call(), jen.Err().Op("!=").Nil()).Block(
				jen.Return(r.zero(), jen.Err()),
			)
			if sym.Sparse {
				n.Add(store(jen.Nil()))
			}
			n.Continue()
		})
		if rerr = r.read(b, col, m, elemMember, elemTarget, sym.Element, el, level+1); rerr != nil {
			return
		}
		b.Add(store(stored))
	})
	return rerr
}

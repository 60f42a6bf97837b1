package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/compiler/gen"
	"github.com/syssam/shapegen/shape"
)

// genDocumentSerializer generates transform/{shape}_document_serializer.go.
func genDocumentSerializer(h gen.GeneratorHelper, t *gen.Type) (*jen.File, error) {
	f := transformFile(h)
	context := gen.DocumentContext(t, gen.ContextSerializer)
	if err := genDescriptors(h, f, context, string(t.Shape.ID), t.Shape); err != nil {
		return nil, err
	}
	w := &writer{h: h, context: context}
	name := documentSerializer(t.Name)
	if t.IsUnion() {
		f.Commentf("%s writes the active variant of a %s.", name, t.Name)
		body, err := w.union(t)
		if err != nil {
			return nil, err
		}
		f.Func().Id(name).Params(
			jen.Id(serializer).Add(serdeQual(h, "Serializer")),
			jen.Id(inputVar).Add(modelQual(h, t.Name)),
		).Error().Block(body...)
		return f, nil
	}
	f.Commentf("%s writes a %s document.", name, t.Name)
	body, err := w.structure(t)
	if err != nil {
		return nil, err
	}
	f.Func().Id(name).Params(
		jen.Id(serializer).Add(serdeQual(h, "Serializer")),
		jen.Id(inputVar).Op("*").Add(modelQual(h, t.Name)),
	).Error().Block(body...)
	return f, nil
}

// genRequestSerializer generates transform/{op}_operation_serializer.go.
func genRequestSerializer(h gen.GeneratorHelper, op *gen.Operation) (*jen.File, error) {
	f := transformFile(h)
	context := gen.RequestContext(op)
	name := "Serialize" + op.Name + "Request"
	params := []jen.Code{jen.Id(serializer).Add(serdeQual(h, "Serializer"))}
	doc := fmt.Sprintf("%s writes the input of the %s operation.", name, op.Name)
	if op.Input == nil {
		if err := genDescriptors(h, f, context, string(op.Shape.ID)+"$input", nil); err != nil {
			return nil, err
		}
		f.Comment(doc)
		f.Func().Id(name).Params(append(params, jen.Id("_").Struct())...).Error().Block(
			jen.Return(jen.Id(serializer).Dot("BeginStruct").Call(jen.Id(objectVar(context))).Dot("EndStruct").Call()),
		)
		return f, nil
	}
	if err := genDescriptors(h, f, context, string(op.Input.Shape.ID), op.Input.Shape); err != nil {
		return nil, err
	}
	w := &writer{h: h, context: context}
	body, err := w.structure(op.Input)
	if err != nil {
		return nil, err
	}
	f.Comment(doc)
	nilInput := jen.If(jen.Id(inputVar).Op("==").Nil()).Block(
		jen.Id(inputVar).Op("=").Add(modelQual(h, op.Input.BuilderConstructor())).Call().Dot("Build").Call(),
	)
	f.Func().Id(name).Params(append(params, jen.Id(inputVar).Op("*").Add(modelQual(h, op.Input.Name)))...).Error().Block(
		append([]jen.Code{nilInput}, body...)...,
	)
	return f, nil
}

func documentSerializer(name string) string { return "serialize" + name + "Document" }

type sinkKind int

const (
	sinkField sinkKind = iota
	sinkElement
	sinkEntry
)

// sink is the destination of one value: a structure field, a list element
// or a map entry.
type sink struct {
	kind sinkKind
	recv string
	desc jen.Code // sinkField
	key  string   // sinkEntry
}

var sinkPrefix = [...]string{
	sinkField:   "Field",
	sinkElement: "Serialize",
	sinkEntry:   "Entry",
}

// scalar writes a primitive value.
func (k sink) scalar(suffix string, v jen.Code) jen.Code {
	method := jen.Id(k.recv).Dot(sinkPrefix[k.kind] + suffix)
	switch k.kind {
	case sinkField:
		return method.Call(k.desc, v)
	case sinkEntry:
		return method.Call(jen.Id(k.key), v)
	default:
		return method.Call(v)
	}
}

// null writes an explicit null.
func (k sink) null() jen.Code {
	if k.kind == sinkEntry {
		return jen.Id(k.recv).Dot("EntryNull").Call(jen.Id(k.key))
	}
	return jen.Id(k.recv).Dot(sinkPrefix[k.kind] + "Null").Call()
}

// nested writes a structure, list or map through a callback.
func (k sink) nested(kind string, desc, fn jen.Code) jen.Code {
	var args []jen.Code
	switch k.kind {
	case sinkField:
		args = []jen.Code{desc, fn}
	case sinkEntry:
		args = []jen.Code{jen.Id(k.key)}
		if kind != "Struct" {
			args = append(args, desc)
		}
		args = append(args, fn)
	default:
		if kind != "Struct" {
			args = append(args, desc)
		}
		args = append(args, fn)
	}
	return jen.If(
		jen.Err().Op(":=").Id(k.recv).Dot(sinkPrefix[k.kind]+kind).Call(args...),
		jen.Err().Op("!=").Nil(),
	).Block(jen.Return(jen.Err()))
}

var scalarSuffix = map[shape.Kind]string{
	shape.KindBoolean: "Bool",
	shape.KindByte:    "Byte",
	shape.KindShort:   "Short",
	shape.KindInteger: "Int",
	shape.KindLong:    "Long",
	shape.KindFloat:   "Float",
	shape.KindDouble:  "Double",
	shape.KindString:  "String",
}

// writer emits the serialization statements of one context.
type writer struct {
	h       gen.GeneratorHelper
	context string
}

func (w *writer) descriptor(m *shape.Member, level int) (jen.Code, error) {
	var (
		d   *gen.FieldDescriptor
		err error
	)
	if level == 0 {
		d, err = w.h.Graph().Descriptors.Member(w.context, m)
	} else {
		d, err = w.h.Graph().Descriptors.Nested(w.context, m, level-1)
	}
	if err != nil {
		return nil, err
	}
	return jen.Id(descriptorVar(w.context, d)), nil
}

// structure returns the body of a structure serializer.
func (w *writer) structure(t *gen.Type) ([]jen.Code, error) {
	code := []jen.Code{
		jen.Id("s").Op(":=").Id(serializer).Dot("BeginStruct").Call(jen.Id(objectVar(w.context))),
	}
	for _, field := range t.Fields {
		if field.Streaming() {
			continue
		}
		if err := unsupported(w.h, field.Member, field.Target); err != nil {
			return nil, err
		}
		desc, err := w.descriptor(field.Member, 0)
		if err != nil {
			return nil, err
		}
		k := sink{kind: sinkField, recv: "s", desc: desc}
		accessor := field.Name
		if field.IsEnum() {
			accessor = field.RawName()
		}
		get := jen.Id("v").Op(":=").Id(inputVar).Dot(accessor).Call()
		var cond jen.Code
		switch {
		case field.IsEnum() || field.Symbol.Absent():
			cond = jen.Id("v").Op("!=").Nil()
		case field.Symbol.Kind == shape.KindBoolean:
			cond = jen.Id("v")
		default:
			cond = jen.Id("v").Op("!=").Lit(0)
		}
		var werr error
		stmt := jen.If(get, cond).BlockFunc(func(g *jen.Group) {
			if field.IsEnum() {
				g.Add(k.scalar("String", jen.Op("*").Id("v")))
				return
			}
			werr = w.value(g, k, field.Member, field.Member, field.Target, field.Symbol, "v", field.Symbol.IsPointer(), 0)
		})
		if werr != nil {
			return nil, werr
		}
		if field.IdempotencyToken() {
			stmt = stmt.Else().Block(k.scalar("String", smithyQual(w.h, "NewIdempotencyToken").Call()))
		}
		code = append(code, stmt)
	}
	return append(code, jen.Return(jen.Id("s").Dot("EndStruct").Call())), nil
}

// union returns the body of a union serializer.
func (w *writer) union(t *gen.Type) ([]jen.Code, error) {
	var (
		werr  error
		union = string(t.Shape.ID)
	)
	sw := jen.Switch(jen.Id("v").Op(":=").Id(inputVar).Assert(jen.Type())).BlockFunc(func(g *jen.Group) {
		for _, field := range t.Fields {
			if werr = unsupported(w.h, field.Member, field.Target); werr != nil {
				return
			}
			desc, err := w.descriptor(field.Member, 0)
			if err != nil {
				werr = err
				return
			}
			k := sink{kind: sinkField, recv: "s", desc: desc}
			g.Case(jen.Op("*").Add(modelQual(w.h, field.VariantName()))).BlockFunc(func(c *jen.Group) {
				werr = w.value(c, k, field.Member, field.Member, field.Target, field.Symbol, "v.Value", false, 0)
			})
			if werr != nil {
				return
			}
		}
		g.Case(jen.Op("*").Add(modelQual(w.h, t.UnknownName()))).Block(
			jen.Return(jen.Op("&").Add(serdeQual(w.h, "UnknownVariantError")).Values(jen.Dict{
				jen.Id("Union"): jen.Lit(union),
				jen.Id("Tag"):   jen.Id("v").Dot("Tag"),
			})),
		)
		g.Default().Block(
			jen.Return(jen.Op("&").Add(serdeQual(w.h, "UnknownVariantError")).Values(jen.Dict{
				jen.Id("Union"): jen.Lit(union),
			})),
		)
	})
	if werr != nil {
		return nil, werr
	}
	return []jen.Code{
		jen.Id("s").Op(":=").Id(serializer).Dot("BeginStruct").Call(jen.Id(objectVar(w.context))),
		sw,
		jen.Return(jen.Id("s").Dot("EndStruct").Call()),
	}, nil
}

// value emits the statements writing val to k. m is the top-level member
// owning the descriptors, holder the member whose target is t, and level
// the number of enclosing collections. pointer reports that val points to
// the value.
func (w *writer) value(g *jen.Group, k sink, m, holder *shape.Member, t *shape.Shape, sym *gen.Symbol, val string, pointer bool, level int) error {
	if err := unsupported(w.h, holder, t); err != nil {
		return err
	}
	v := func() jen.Code {
		if pointer {
			return jen.Op("*").Id(val)
		}
		return jen.Id(val)
	}
	if suffix, ok := scalarSuffix[t.Kind]; ok {
		g.Add(k.scalar(suffix, v()))
		return nil
	}
	switch t.Kind {
	case shape.KindEnum:
		g.Add(k.scalar("String", jen.String().Call(v())))
	case shape.KindTimestamp:
		switch w.h.Graph().TimestampFormat(holder) {
		case shape.TimestampDateTime:
			g.Add(k.scalar("String", timestampQual(w.h, "FormatDateTime").Call(v())))
		case shape.TimestampHTTPDate:
			g.Add(k.scalar("String", timestampQual(w.h, "FormatHTTPDate").Call(v())))
		default:
			g.Add(k.scalar("Double", timestampQual(w.h, "FormatEpochSeconds").Call(v())))
		}
	case shape.KindBlob:
		g.Add(k.scalar("String", jen.Qual("encoding/base64", "StdEncoding").Dot("EncodeToString").Call(jen.Id(val))))
	case shape.KindDocument:
		g.Add(k.scalar("Document", jen.Id(val)))
	case shape.KindStructure, shape.KindUnion:
		fn := jen.Func().Params(jen.Id(serializer).Add(serdeQual(w.h, "Serializer"))).Error().Block(
			jen.Return(jen.Id(documentSerializer(sym.Name)).Call(jen.Id(serializer), jen.Id(val))),
		)
		g.Add(k.nested("Struct", k.desc, fn))
	case shape.KindList, shape.KindSet:
		return w.list(g, k, m, t, sym, val, level)
	case shape.KindMap:
		return w.mapping(g, k, m, t, sym, val, level)
	default:
		return gen.NewSchemaResolutionError(string(t.ID), fmt.Sprintf("no serializer for %s shapes", t.Kind), nil)
	}
	return nil
}

func (w *writer) list(g *jen.Group, k sink, m *shape.Member, t *shape.Shape, sym *gen.Symbol, val string, level int) error {
	desc, err := w.descriptor(m, level)
	if err != nil {
		return err
	}
	elemMember := elementMember(t)
	elemTarget, err := target(w.h, elemMember)
	if err != nil {
		return err
	}
	var (
		ls   = fmt.Sprintf("ls%d", level)
		el   = fmt.Sprintf("el%d", level)
		elem = sink{kind: sinkElement, recv: ls}
		werr error
	)
	fn := jen.Func().Params(jen.Id(ls).Add(serdeQual(w.h, "ListSerializer"))).Error().Block(
		jen.For(jen.List(jen.Id("_"), jen.Id(el)).Op(":=").Range().Id(val)).BlockFunc(func(b *jen.Group) {
			if sym.Sparse {
				b.If(jen.Id(el).Op("==").Nil()).Block(elem.null(), jen.Continue())
			}
			werr = w.value(b, elem, m, elemMember, elemTarget, sym.Element, el, sym.Element.ElementIsPointer(sym.Sparse), level+1)
		}),
		jen.Return(jen.Nil()),
	)
	if werr != nil {
		return werr
	}
	g.Add(k.nested("List", desc, fn))
	return nil
}

func (w *writer) mapping(g *jen.Group, k sink, m *shape.Member, t *shape.Shape, sym *gen.Symbol, val string, level int) error {
	desc, err := w.descriptor(m, level)
	if err != nil {
		return err
	}
	elemMember := elementMember(t)
	elemTarget, err := target(w.h, elemMember)
	if err != nil {
		return err
	}
	var (
		ms    = fmt.Sprintf("ms%d", level)
		key   = fmt.Sprintf("k%d", level)
		el    = fmt.Sprintf("el%d", level)
		entry = sink{kind: sinkEntry, recv: ms, key: key}
		werr  error
	)
	keys := jen.Qual("slices", "Sorted").Call(jen.Qual("maps", "Keys").Call(jen.Id(val)))
	fn := jen.Func().Params(jen.Id(ms).Add(serdeQual(w.h, "MapSerializer"))).Error().Block(
		jen.For(jen.List(jen.Id("_"), jen.Id(key)).Op(":=").Range().Add(keys)).BlockFunc(func(b *jen.Group) {
			b.Id(el).Op(":=").Id(val).Index(jen.Id(key))
			if sym.Sparse {
				b.If(jen.Id(el).Op("==").Nil()).Block(entry.null(), jen.Continue())
			}
			werr = w.value(b, entry, m, elemMember, elemTarget, sym.Element, el, sym.Element.ElementIsPointer(sym.Sparse), level+1)
		}),
		jen.Return(jen.Nil()),
	)
	if werr != nil {
		return werr
	}
	g.Add(k.nested("Map", desc, fn))
	return nil
}

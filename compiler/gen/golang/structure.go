package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/compiler/gen"
	"github.com/syssam/shapegen/shape"
)

// genStructure generates the structure file (model/{shape}.go).
func genStructure(h gen.GeneratorHelper, t *gen.Type) (*jen.File, error) {
	f := modelFile(h)
	genStructType(f, t)
	for _, field := range t.Fields {
		genAccessors(f, t, field)
	}
	genBuilder(f, t)
	genEqual(h, f, t)
	genHash(h, f, t)
	genString(h, f, t)
	if t.IsError() {
		genErrorMethods(h, f, t)
	}
	return f, nil
}

func genStructType(f *jen.File, t *gen.Type) {
	comment(f, t.Name+" is an immutable value. Create one with "+t.BuilderConstructor()+".", t.Doc(), t.Deprecated())
	f.Type().Id(t.Name).StructFunc(func(g *jen.Group) {
		for _, field := range t.Fields {
			g.Id(field.Storage).Add(field.StorageType())
		}
	})
}

func genAccessors(f *jen.File, t *gen.Type, field *gen.Field) {
	storage := jen.Id(recv).Dot(field.Storage)
	if !field.IsEnum() {
		comment(f, field.Name+" returns the value of the "+field.Member.Name+" member.", field.Doc(), field.Deprecated())
		f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id(field.Name).Params().Add(field.Symbol.Type()).Block(
			jen.Return(storage),
		)
		return
	}
	enum := field.Symbol.ValueType()
	parser := jen.Qual(t.ModelPkg(), "Parse"+field.Symbol.Name)
	comment(f, field.Name+" returns the "+field.Member.Name+" member. Unrecognized values map to "+field.Symbol.Name+"Unknown.", field.Doc(), field.Deprecated())
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id(field.Name).Params().Add(enum).Block(
		jen.If(storage.Clone().Op("==").Nil()).Block(jen.Return(jen.Lit(""))),
		jen.Return(parser.Call(jen.Op("*").Add(storage.Clone()))),
	)
	f.Commentf("%s returns the raw wire value of the %s member.", field.RawName(), field.Member.Name)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id(field.RawName()).Params().Op("*").String().Block(
		jen.Return(storage.Clone()),
	)
}

func genBuilder(f *jen.File, t *gen.Type) {
	b := t.BuilderName()
	f.Commentf("%s holds the members of a %s under construction. The zero value is ready to use.", b, t.Name)
	f.Type().Id(b).StructFunc(func(g *jen.Group) {
		for _, field := range t.Fields {
			fieldComment(g, field.Doc(), field.Deprecated())
			g.Id(field.Name).Add(field.StorageType())
		}
	})

	f.Commentf("%s returns an empty %s.", t.BuilderConstructor(), b)
	f.Func().Id(t.BuilderConstructor()).Params().Op("*").Id(b).Block(
		jen.Return(jen.Op("&").Id(b).Values()),
	)

	f.Commentf("Build returns a %s holding the current members of the builder.", t.Name)
	f.Func().Params(jen.Id("b").Op("*").Id(b)).Id("Build").Params().Op("*").Id(t.Name).Block(
		jen.Return(jen.Op("&").Id(t.Name).Values(jen.DictFunc(func(d jen.Dict) {
			for _, field := range t.Fields {
				d[jen.Id(field.Storage)] = jen.Id("b").Dot(field.Name)
			}
		}))),
	)

	f.Commentf("ToBuilder returns a builder seeded with the members of %s.", recv)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("ToBuilder").Params().Op("*").Id(b).Block(
		jen.Return(jen.Op("&").Id(b).Values(jen.DictFunc(func(d jen.Dict) {
			for _, field := range t.Fields {
				d[jen.Id(field.Name)] = jen.Id(recv).Dot(field.Storage)
			}
		}))),
	)

	f.Commentf("Copy returns a new %s with the members of %s, modified by fn.", t.Name, recv)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("Copy").Params(jen.Id("fn").Func().Params(jen.Op("*").Id(b))).Op("*").Id(t.Name).Block(
		jen.Id("b").Op(":=").Id(recv).Dot("ToBuilder").Call(),
		jen.Id("fn").Call(jen.Id("b")),
		jen.Return(jen.Id("b").Dot("Build").Call()),
	)
}

// equalExpr compares one member of two values.
func equalExpr(h gen.GeneratorHelper, field *gen.Field) jen.Code {
	a, b := jen.Id(recv).Dot(field.Storage), jen.Id("other").Dot(field.Storage)
	if field.IsEnum() {
		return smithyQual(h, "PtrEqual").Call(a, b)
	}
	sym := field.Symbol
	switch sym.Kind {
	case shape.KindStructure:
		return a.Dot("Equal").Call(b)
	case shape.KindTimestamp:
		return smithyQual(h, "TimeEqual").Call(a, b)
	case shape.KindBigInteger:
		return smithyQual(h, "BigIntEqual").Call(a, b)
	case shape.KindBigDecimal:
		return smithyQual(h, "BigFloatEqual").Call(a, b)
	case shape.KindBlob:
		if field.Streaming() {
			return a.Op("==").Add(b)
		}
		return jen.Qual("bytes", "Equal").Call(a, b)
	case shape.KindList, shape.KindSet, shape.KindMap, shape.KindUnion, shape.KindDocument:
		return smithyQual(h, "DeepEqual").Call(a, b)
	}
	if sym.IsPointer() {
		return smithyQual(h, "PtrEqual").Call(a, b)
	}
	return a.Op("==").Add(b)
}

func genEqual(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Commentf("Equal reports whether %s and other hold equal members. Blobs compare by content.", recv)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("Equal").Params(jen.Id("other").Op("*").Id(t.Name)).Bool().BlockFunc(func(g *jen.Group) {
		g.If(jen.Id(recv).Op("==").Nil().Op("||").Id("other").Op("==").Nil()).Block(
			jen.Return(jen.Id(recv).Op("==").Id("other")),
		)
		if len(t.Fields) == 0 {
			g.Return(jen.True())
			return
		}
		var expr *jen.Statement
		for i, field := range t.Fields {
			if i == 0 {
				expr = jen.Add(equalExpr(h, field))
				continue
			}
			expr = expr.Op("&&").Line().Add(equalExpr(h, field))
		}
		g.Return(expr)
	})
}

func genHash(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Commentf("Hash returns a hash of the members of %s consistent with Equal.", recv)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("Hash").Params().Uint64().BlockFunc(func(g *jen.Group) {
		g.If(jen.Id(recv).Op("==").Nil()).Block(jen.Return(jen.Lit(0)))
		g.Id("h").Op(":=").Add(smithyQual(h, "NewHasher")).Call()
		for _, field := range t.Fields {
			g.Id("h").Dot("Add").Call(jen.Id(recv).Dot(field.Storage))
		}
		g.Return(jen.Id("h").Dot("Sum64").Call())
	})
}

func genString(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Commentf("String returns the string form of %s. Sensitive members are redacted.", recv)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("String").Params().String().BlockFunc(func(g *jen.Group) {
		g.If(jen.Id(recv).Op("==").Nil()).Block(jen.Return(jen.Lit("null")))
		g.Var().Id("b").Qual("strings", "Builder")
		g.Id("b").Dot("WriteString").Call(jen.Lit(t.Name + "("))
		for i, field := range t.Fields {
			label := field.Member.Name + "="
			if i > 0 {
				label = ", " + label
			}
			g.Id("b").Dot("WriteString").Call(jen.Lit(label))
			if field.Sensitive() {
				g.Id("b").Dot("WriteString").Call(smithyQual(h, "Redacted"))
				continue
			}
			g.Id("b").Dot("WriteString").Call(smithyQual(h, "Show").Call(jen.Id(recv).Dot(field.Storage)))
		}
		g.Id("b").Dot("WriteString").Call(jen.Lit(")"))
		g.Return(jen.Id("b").Dot("String").Call())
	})
}

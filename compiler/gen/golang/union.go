package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/compiler/gen"
)

// genUnion generates the union file (model/{shape}.go).
func genUnion(h gen.GeneratorHelper, t *gen.Type) (*jen.File, error) {
	f := modelFile(h)
	marker := "is" + t.Name

	lines := docLines(t.Name+" holds exactly one of its variants.", t.Doc(), t.Deprecated())
	lines = append(lines, "", "The following types satisfy this interface:", "")
	for _, field := range t.Fields {
		lines = append(lines, "\t"+field.VariantName())
	}
	lines = append(lines, "\t"+t.UnknownName())
	for _, line := range lines {
		f.Comment(line)
	}
	f.Type().Id(t.Name).Interface(jen.Id(marker).Params())

	for _, field := range t.Fields {
		comment(f, field.VariantName()+" holds the "+field.Member.Name+" member of "+t.Name+".", field.Doc(), field.Deprecated())
		f.Type().Id(field.VariantName()).Struct(
			jen.Id("Value").Add(field.Symbol.ElementType(false)),
		)
		f.Func().Params(jen.Op("*").Id(field.VariantName())).Id(marker).Params().Block()
	}

	f.Commentf("%s is the variant of %s read from the wire with a tag this client does not know.", t.UnknownName(), t.Name)
	f.Type().Id(t.UnknownName()).Struct(
		jen.Id("Tag").String(),
	)
	f.Func().Params(jen.Op("*").Id(t.UnknownName())).Id(marker).Params().Block()
	return f, nil
}

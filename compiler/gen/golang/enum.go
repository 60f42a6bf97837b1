package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/compiler/gen"
)

// genEnum generates the enum file (model/{shape}.go).
func genEnum(h gen.GeneratorHelper, t *gen.Type) (*jen.File, error) {
	f := modelFile(h)
	comment(f, t.Name+" is a closed set of string values. Values unknown to this client map to "+t.UnknownName()+".", t.Doc(), t.Deprecated())
	f.Type().Id(t.Name).String()

	f.Commentf("Enum values for %s.", t.Name)
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range t.Values {
			fieldComment(g, v.Doc, v.Deprecated)
			g.Id(v.Name).Id(t.Name).Op("=").Lit(v.Value)
		}
		g.Comment(t.UnknownName() + " is any value this client does not know.")
		g.Id(t.UnknownName()).Id(t.Name).Op("=").Lit(gen.EnumUnknownValue)
	})

	f.Commentf("Values returns the known values of %s in declaration order.", t.Name)
	f.Func().Params(jen.Id(t.Name)).Id("Values").Params().Index().Id(t.Name).Block(
		jen.Return(jen.Index().Id(t.Name).ValuesFunc(func(g *jen.Group) {
			for _, v := range t.Values {
				g.Id(v.Name)
			}
		})),
	)

	f.Commentf("%s returns the %s for a raw wire value. Unrecognized values map to %s.", t.ParserName(), t.Name, t.UnknownName())
	f.Func().Id(t.ParserName()).Params(jen.Id("raw").String()).Id(t.Name).Block(
		jen.Switch(jen.Id("raw")).BlockFunc(func(g *jen.Group) {
			seen := make(map[string]bool, len(t.Values))
			for _, v := range t.Values {
				if seen[v.Value] || v.Value == gen.EnumUnknownValue {
					continue
				}
				seen[v.Value] = true
				g.Case(jen.Lit(v.Value)).Block(jen.Return(jen.Id(v.Name)))
			}
			g.Default().Block(jen.Return(jen.Id(t.UnknownName())))
		}),
	)
	return f, nil
}

package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/compiler/gen"
)

// genOperations generates operations.go in the root package.
func genOperations(h gen.GeneratorHelper) (*jen.File, error) {
	g := h.Graph()
	f := h.NewFile(g.Package, rootName(g.Package))
	transform := func(name string) *jen.Statement { return jen.Qual(g.TransformPkg(), name) }

	if g.Service != nil {
		f.Commentf("ServiceVersion is the version of the %s service.", g.Service.ID.Name())
		f.Const().Id("ServiceVersion").Op("=").Lit(g.Service.Version)
	}

	for _, op := range g.Operations {
		in, out := jen.Struct(), jen.Struct()
		if op.Input != nil {
			in = jen.Op("*").Add(modelQual(h, op.Input.Name))
		}
		if op.Output != nil {
			out = jen.Op("*").Add(modelQual(h, op.Output.Name))
		}
		values := jen.Dict{
			jen.Id("Name"):        jen.Lit(op.Shape.ID.Name()),
			jen.Id("Serialize"):   transform("Serialize" + op.Name + "Request"),
			jen.Id("Deserialize"): transform("Deserialize" + op.Name + "Response"),
		}
		if len(op.Errors) > 0 {
			values[jen.Id("Errors")] = jen.Map(jen.String()).Add(smithyQual(h, "ErrorDeserializer")).Values(jen.DictFunc(func(d jen.Dict) {
				for _, e := range op.Errors {
					d[jen.Lit(e.Shape.ID.Name())] = transform(errorDeserializer(e.Name))
				}
			}))
		}
		comment(f, op.Name+" binds the "+op.Shape.ID.Name()+" operation to its serializers.", op.Shape.Traits.Documentation, op.Shape.Traits.Deprecated)
		f.Var().Id(op.Name).Op("=").Op("&").Add(smithyQual(h, "Operation")).Types(in, out).Values(values)
	}
	return f, nil
}

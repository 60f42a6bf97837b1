package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/shapegen/compiler/gen"
)

// genErrorMethods makes an error structure satisfy smithy.APIError.
func genErrorMethods(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	self := jen.Id(recv).Op("*").Id(t.Name)

	message := jen.Id(recv).Dot("ErrorMessage").Call()
	if msg := t.MessageField(); msg != nil && msg.Sensitive() {
		message = smithyQual(h, "Redacted")
	}
	f.Comment("Error implements the error interface.")
	f.Func().Params(self.Clone()).Id("Error").Params().String().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit("api error %s: %s"), jen.Id(recv).Dot("ErrorCode").Call(), message)),
	)

	f.Comment("ErrorCode returns the modeled error code.")
	f.Func().Params(self.Clone()).Id("ErrorCode").Params().String().Block(
		jen.Return(jen.Lit(t.Shape.ID.Name())),
	)

	f.Comment("ErrorMessage returns the message member, or the empty string.")
	f.Func().Params(self.Clone()).Id("ErrorMessage").Params().String().BlockFunc(func(g *jen.Group) {
		msg := t.MessageField()
		if msg == nil {
			g.Return(jen.Lit(""))
			return
		}
		g.If(jen.Id(recv).Dot(msg.Storage).Op("==").Nil()).Block(jen.Return(jen.Lit("")))
		g.Return(jen.Op("*").Id(recv).Dot(msg.Storage))
	})

	f.Comment("ErrorFault reports whether the client or the server is at fault.")
	f.Func().Params(self.Clone()).Id("ErrorFault").Params().Add(smithyQual(h, "ErrorFault")).Block(
		jen.Return(smithyQual(h, t.Fault())),
	)

	if t.Retryable() {
		f.Comment("Retryable reports that the request may be retried.")
		f.Func().Params(self.Clone()).Id("Retryable").Params().Bool().Block(
			jen.Return(jen.True()),
		)
	}

	f.Var().Id("_").Add(smithyQual(h, "APIError")).Op("=").Parens(jen.Op("*").Id(t.Name)).Parens(jen.Nil())
}

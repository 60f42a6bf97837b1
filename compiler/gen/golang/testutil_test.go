package golang

import (
	"fmt"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/syssam/shapegen/compiler/gen"
	"github.com/syssam/shapegen/shape"
)

func sid(name string) shape.ID { return shape.NewID("example.weather", name) }

func weatherShapes() []*shape.Shape {
	return []*shape.Shape{
		shape.NewEnum(sid("Color"),
			shape.EnumValue{Name: "RED", Value: "red"},
			shape.EnumValue{Name: "DARK_BLUE", Value: "dark-blue", Documentation: "A deep blue."},
		),
		shape.NewList(sid("IntList"), shape.Integer),
		shape.NewList(sid("IntMatrix"), sid("IntList")),
		shape.NewList(sid("SparseStrings"), shape.String, shape.Sparse()),
		shape.NewList(sid("Palette"), sid("Color")),
		shape.NewMap(sid("Tags"), shape.String),
		shape.NewStructure(sid("Location"),
			shape.NewMember("city", shape.String),
			shape.NewMember("lat", shape.PrimitiveDouble),
		).With(shape.Doc("Location is a point on the map.")),
		shape.NewUnion(sid("Precipitation"),
			shape.NewMember("rain", shape.PrimitiveInteger),
			shape.NewMember("snow", shape.String),
		),
		shape.NewStructure(sid("Forecast"),
			shape.NewMember("color", sid("Color")),
			shape.NewMember("count", shape.PrimitiveInteger),
			shape.NewMember("issuedAt", shape.Timestamp),
			shape.NewMember("location", sid("Location")),
			shape.NewMember("matrix", sid("IntMatrix")),
			shape.NewMember("notes", sid("SparseStrings")),
			shape.NewMember("palette", sid("Palette")),
			shape.NewMember("precip", sid("Precipitation")),
			shape.NewMember("raw", shape.Blob),
			shape.NewMember("secret", shape.String, shape.Sensitive()),
			shape.NewMember("tags", sid("Tags")),
		),
		shape.NewStructure(sid("NotFound"),
			shape.NewMember("message", shape.String),
			shape.NewMember("resource", shape.String),
		).With(shape.ClientError(), shape.Retryable()),
		shape.NewStructure(sid("GetForecastInput"),
			shape.NewMember("city", shape.String, shape.Required()),
			shape.NewMember("token", shape.String, shape.IdempotencyToken()),
		),
		shape.NewStructure(sid("GetForecastOutput"),
			shape.NewMember("forecast", sid("Forecast")),
		),
		shape.NewOperation(sid("GetForecast"), sid("GetForecastInput"), sid("GetForecastOutput"), sid("NotFound")),
		shape.NewService(sid("Weather"), "2024-01-01", sid("GetForecast")),
	}
}

func newGraph(t *testing.T, shapes []*shape.Shape, opts ...gen.Option) *gen.Graph {
	t.Helper()
	c, err := gen.NewConfig(append([]gen.Option{
		gen.WithPackage("example.com/weather"),
		gen.WithLogger(zaptest.NewLogger(t)),
	}, opts...)...)
	require.NoError(t, err)
	g, err := gen.NewGraph(c, shape.MustGraph(shapes...))
	require.NoError(t, err)
	return g
}

func newEmitter(t *testing.T, shapes []*shape.Shape, opts ...gen.Option) (*Emitter, *gen.Graph) {
	t.Helper()
	g := newGraph(t, shapes, opts...)
	return NewEmitter(gen.NewGenerator(g)), g
}

func typeOf(t *testing.T, g *gen.Graph, name string) *gen.Type {
	t.Helper()
	typ, ok := g.Type(sid(name))
	require.True(t, ok, "type %s", name)
	return typ
}

// render returns a function rendering a generated file, so emitter calls
// can be passed directly: render(t)(e.GenEnum(typ)).
func render(t *testing.T) func(*jen.File, error) string {
	t.Helper()
	return func(f *jen.File, err error) string {
		require.NoError(t, err)
		return fmt.Sprintf("%#v", f)
	}
}

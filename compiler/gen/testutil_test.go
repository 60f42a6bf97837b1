package gen

import (
	"fmt"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/syssam/shapegen/shape"
)

const testNamespace = "example.weather"

func sid(name string) shape.ID { return shape.NewID(testNamespace, name) }

// weatherShapes returns a model exercising every member kind the emitters
// handle.
func weatherShapes() []*shape.Shape {
	return []*shape.Shape{
		shape.NewEnum(sid("Color"),
			shape.EnumValue{Name: "RED", Value: "red"},
			shape.EnumValue{Name: "DARK_BLUE", Value: "dark-blue"},
		),
		shape.NewList(sid("IntList"), shape.Integer),
		shape.NewList(sid("IntMatrix"), sid("IntList")),
		shape.NewList(sid("SparseStrings"), shape.String, shape.Sparse()),
		shape.NewList(sid("Palette"), sid("Color")),
		shape.NewMap(sid("Tags"), shape.String),
		shape.NewStructure(sid("Location"),
			shape.NewMember("city", shape.String),
			shape.NewMember("lat", shape.PrimitiveDouble),
		),
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

func newTestConfig(t *testing.T, opts ...Option) *Config {
	t.Helper()
	c, err := NewConfig(append([]Option{
		WithPackage("example.com/weather"),
		WithLogger(zaptest.NewLogger(t)),
	}, opts...)...)
	require.NoError(t, err)
	return c
}

func newTestGraph(t *testing.T, shapes ...*shape.Shape) *Graph {
	t.Helper()
	g, err := NewGraph(newTestConfig(t), shape.MustGraph(shapes...))
	require.NoError(t, err)
	return g
}

// buildGraph returns the error of annotating shapes.
func buildGraph(t *testing.T, shapes ...*shape.Shape) error {
	t.Helper()
	_, err := NewGraph(newTestConfig(t), shape.MustGraph(shapes...))
	return err
}

func render(c jen.Code) string {
	return fmt.Sprintf("%#v", c)
}

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/shapegen/shape"
)

func typeNames(ts []*Type) []string {
	var out []string
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

func TestNewGraph(t *testing.T) {
	g := newTestGraph(t, weatherShapes()...)

	assert.Equal(t, []string{"Forecast", "GetForecastInput", "GetForecastOutput", "Location", "NotFound"}, typeNames(g.Structures))
	assert.Equal(t, []string{"Precipitation"}, typeNames(g.Unions))
	assert.Equal(t, []string{"Color"}, typeNames(g.Enums))
	require.NotNil(t, g.Service)
	assert.Equal(t, "2024-01-01", g.Service.Version)

	require.Len(t, g.Operations, 1)
	op := g.Operations[0]
	assert.Equal(t, "GetForecast", op.Name)
	assert.Equal(t, "GetForecastInput", op.Input.Name)
	assert.Equal(t, "GetForecastOutput", op.Output.Name)
	assert.Equal(t, []string{"NotFound"}, typeNames(op.Errors))
	assert.Equal(t, []string{"NotFound"}, typeNames(g.Errors()))

	forecast, ok := g.Type(sid("Forecast"))
	require.True(t, ok)
	assert.Same(t, g, forecast.Graph())
	require.Len(t, forecast.Fields, 11)
	assert.Equal(t, "Color", forecast.Fields[0].Name)
	assert.Equal(t, "color", forecast.Fields[0].Storage)
	assert.True(t, forecast.Fields[0].IsEnum())
	assert.Equal(t, "ColorRaw", forecast.Fields[0].RawName())
	assert.Equal(t, "*string", render(forecast.Fields[0].StorageType()))
	assert.Equal(t, "IssuedAt", forecast.Fields[2].Name)
	assert.Equal(t, "*time.Time", render(forecast.Fields[2].StorageType()))
	assert.True(t, forecast.Fields[9].Sensitive())
	assert.Same(t, forecast, forecast.Fields[9].Type())

	color, ok := g.Type(sid("Color"))
	require.True(t, ok)
	require.Len(t, color.Values, 2)
	assert.Equal(t, "ColorRed", color.Values[0].Name)
	assert.Equal(t, "red", color.Values[0].Value)
	assert.Equal(t, "ColorDarkBlue", color.Values[1].Name)
	assert.Equal(t, "ParseColor", color.ParserName())
	assert.Equal(t, "ColorUnknown", color.UnknownName())

	precip, ok := g.Type(sid("Precipitation"))
	require.True(t, ok)
	assert.Equal(t, "PrecipitationMemberRain", precip.Fields[0].VariantName())

	notFound, ok := g.Type(sid("NotFound"))
	require.True(t, ok)
	assert.True(t, notFound.IsError())
	assert.True(t, notFound.Retryable())
	assert.Equal(t, "FaultClient", notFound.Fault())
	require.NotNil(t, notFound.MessageField())
	assert.Equal(t, "Message", notFound.MessageField().Name)
	assert.Nil(t, forecast.MessageField())

	input, ok := g.Type(sid("GetForecastInput"))
	require.True(t, ok)
	assert.True(t, input.Fields[1].IdempotencyToken())
	assert.Equal(t, "NewGetForecastInputBuilder", input.BuilderConstructor())

	_, ok = g.Type(sid("GetForecast"))
	assert.False(t, ok)
}

func TestGraph_Reachability(t *testing.T) {
	t.Run("with operations", func(t *testing.T) {
		g := newTestGraph(t, weatherShapes()...)
		assert.Empty(t, g.Serialized())
		assert.Equal(t, []string{"Forecast", "Location", "Precipitation"}, typeNames(g.Deserialized()))
	})

	t.Run("input members are serialized", func(t *testing.T) {
		g := newTestGraph(t,
			shape.NewStructure(sid("Point"), shape.NewMember("x", shape.PrimitiveInteger)),
			shape.NewList(sid("Points"), sid("Point")),
			shape.NewStructure(sid("DrawInput"), shape.NewMember("points", sid("Points"))),
			shape.NewOperation(sid("Draw"), sid("DrawInput"), shape.Unit),
		)
		assert.Equal(t, []string{"Point"}, typeNames(g.Serialized()))
		assert.Empty(t, g.Deserialized())
		assert.Nil(t, g.Operations[0].Output)
	})

	t.Run("without operations", func(t *testing.T) {
		g := newTestGraph(t,
			shape.NewStructure(sid("A"), shape.NewMember("u", sid("U"))),
			shape.NewUnion(sid("U"), shape.NewMember("n", shape.PrimitiveLong)),
		)
		assert.Equal(t, []string{"A", "U"}, typeNames(g.Serialized()))
		assert.Equal(t, []string{"A", "U"}, typeNames(g.Deserialized()))
		assert.Nil(t, g.Service)
	})
}

func TestGraph_NameConflicts(t *testing.T) {
	tests := []struct {
		name   string
		shapes []*shape.Shape
		want   string
	}{
		{
			name:   "generated method",
			shapes: []*shape.Shape{shape.NewStructure(sid("Point"), shape.NewMember("equal", shape.String))},
			want:   "a generated method",
		},
		{
			name: "generated error method",
			shapes: []*shape.Shape{
				shape.NewStructure(sid("Throttled"), shape.NewMember("error_code", shape.String)).With(shape.ServerError()),
			},
			want: "a generated error method",
		},
		{
			name: "same name across namespaces",
			shapes: []*shape.Shape{
				shape.NewStructure(shape.NewID("a", "Item")),
				shape.NewStructure(shape.NewID("b", "Item")),
			},
			want: `"Item"`,
		},
		{
			name: "builder name",
			shapes: []*shape.Shape{
				shape.NewStructure(sid("Item")),
				shape.NewStructure(sid("ItemBuilder")),
			},
			want: `"ItemBuilder"`,
		},
		{
			name: "enum raw accessor",
			shapes: []*shape.Shape{
				shape.NewEnum(sid("Color"), shape.EnumValue{Name: "RED", Value: "red"}),
				shape.NewStructure(sid("Paint"),
					shape.NewMember("color", sid("Color")),
					shape.NewMember("color_raw", shape.String),
				),
			},
			want: "raw accessor of member color",
		},
		{
			name: "member names",
			shapes: []*shape.Shape{
				shape.NewStructure(sid("Point"),
					shape.NewMember("max_value", shape.String),
					shape.NewMember("maxValue", shape.String),
				),
			},
			want: `"MaxValue"`,
		},
		{
			name: "enum constants",
			shapes: []*shape.Shape{
				shape.NewEnum(sid("Size"),
					shape.EnumValue{Value: "big-one"},
					shape.EnumValue{Value: "big_one"},
				),
			},
			want: `"SizeBigOne"`,
		},
		{
			name: "union variant",
			shapes: []*shape.Shape{
				shape.NewUnion(sid("Shape"), shape.NewMember("circle", shape.String)),
				shape.NewStructure(sid("ShapeMemberCircle")),
			},
			want: `"ShapeMemberCircle"`,
		},
		{
			name: "operation names",
			shapes: []*shape.Shape{
				shape.NewOperation(shape.NewID("a", "Ping"), shape.Unit, shape.Unit),
				shape.NewOperation(shape.NewID("b", "Ping"), shape.Unit, shape.Unit),
			},
			want: `"Ping"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := buildGraph(t, tt.shapes...)
			require.Error(t, err)
			assert.True(t, IsNameConflictError(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGraph_MessageProperty(t *testing.T) {
	err := buildGraph(t,
		shape.NewStructure(sid("Oops"), shape.NewMember("message", shape.Integer)).With(shape.ClientError()),
	)
	require.Error(t, err)
	assert.True(t, IsReservedPropertyTypeError(err))
	assert.ErrorIs(t, err, ErrReservedPropertyType)

	require.NoError(t, buildGraph(t,
		shape.NewStructure(sid("Note"), shape.NewMember("message", shape.Integer)),
	), "message is only reserved on error shapes")
}

func TestGraph_Unsupported(t *testing.T) {
	err := buildGraph(t, shape.NewUnion(sid("Result"),
		shape.NewMember("ok", shape.Unit),
		shape.NewMember("err", shape.String),
	))
	require.Error(t, err)
	assert.True(t, IsUnsupportedConstructError(err))
}

func TestGraph_SchemaResolution(t *testing.T) {
	tests := []struct {
		name   string
		shapes []*shape.Shape
	}{
		{
			name: "error without trait",
			shapes: []*shape.Shape{
				shape.NewStructure(sid("Plain")),
				shape.NewOperation(sid("Do"), shape.Unit, shape.Unit, sid("Plain")),
			},
		},
		{
			name:   "missing input",
			shapes: []*shape.Shape{shape.NewOperation(sid("Do"), sid("Missing"), shape.Unit)},
		},
		{
			name: "output is not a structure",
			shapes: []*shape.Shape{
				shape.NewUnion(sid("Either"), shape.NewMember("a", shape.String)),
				shape.NewOperation(sid("Do"), shape.Unit, sid("Either")),
			},
		},
		{
			name:   "missing member target",
			shapes: []*shape.Shape{shape.NewStructure(sid("Ref"), shape.NewMember("to", sid("Missing")))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := buildGraph(t, tt.shapes...)
			require.Error(t, err)
			assert.True(t, IsSchemaResolutionError(err), "got %v", err)
		})
	}
}

func TestGraph_TimestampFormat(t *testing.T) {
	event := shape.NewStructure(sid("Event"),
		shape.NewMember("plain", shape.Timestamp),
		shape.NewMember("member", shape.Timestamp, shape.WithTimestampFormat(shape.TimestampDateTime)),
		shape.NewMember("target", sid("HttpTime")),
		shape.NewMember("both", sid("HttpTime"), shape.WithTimestampFormat(shape.TimestampDateTime)),
		shape.NewMember("forced", shape.Timestamp, shape.WithTimestampFormat(shape.TimestampDateTime)),
	)
	c := newTestConfig(t, WithTimestampOverride(sid("Event").Member("forced"), shape.TimestampHTTPDate))
	g, err := NewGraph(c, shape.MustGraph(event,
		shape.NewSimple(sid("HttpTime"), shape.KindTimestamp, shape.WithTimestampFormat(shape.TimestampHTTPDate)),
	))
	require.NoError(t, err)

	tests := map[string]shape.TimestampFormat{
		"plain":  shape.TimestampEpochSeconds,
		"member": shape.TimestampDateTime,
		"target": shape.TimestampHTTPDate,
		"both":   shape.TimestampDateTime,
		"forced": shape.TimestampHTTPDate,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			m, ok := event.Member(name)
			require.True(t, ok)
			assert.Equal(t, want, g.TimestampFormat(m))
		})
	}

	et, ok := g.Type(sid("Event"))
	require.True(t, ok)
	for _, f := range et.Fields {
		assert.Equal(t, tests[f.Member.Name], f.TimestampFormat())
	}
}

func TestGraph_KeywordStorage(t *testing.T) {
	g := newTestGraph(t, shape.NewStructure(sid("Token"),
		shape.NewMember("type", shape.String),
		shape.NewMember("range", shape.String),
		shape.NewMember("value", shape.String),
	))
	tok, ok := g.Type(sid("Token"))
	require.True(t, ok)

	assert.Equal(t, "_range", tok.Fields[0].Storage)
	assert.Equal(t, "Range", tok.Fields[0].Name)
	assert.Equal(t, "_type", tok.Fields[1].Storage)
	assert.Equal(t, "value", tok.Fields[2].Storage)
}

func TestGraph_Config(t *testing.T) {
	_, err := NewGraph(nil, shape.MustGraph())
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	_, err = NewGraph(&Config{}, shape.MustGraph())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfig)

	g, err := NewGraph(&Config{Package: "example.com/x"}, shape.MustGraph())
	require.NoError(t, err)
	assert.Equal(t, DefaultRuntime, g.Runtime)
	assert.NotNil(t, g.Logger)
}

func TestContexts(t *testing.T) {
	g := newTestGraph(t, weatherShapes()...)
	forecast, _ := g.Type(sid("Forecast"))
	notFound, _ := g.Type(sid("NotFound"))
	op := g.Operations[0]

	assert.Equal(t, "forecastSer", DocumentContext(forecast, ContextSerializer))
	assert.Equal(t, "forecastDeser", DocumentContext(forecast, ContextDeserializer))
	assert.Equal(t, "getForecastRequestSer", RequestContext(op))
	assert.Equal(t, "getForecastResponseDeser", ResponseContext(op))
	assert.Equal(t, "notFoundErrorDeser", ErrorContext(notFound))
}

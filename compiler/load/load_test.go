package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/shapegen/shape"
)

func sid(name string) shape.ID { return shape.NewID("example.weather", name) }

func mustShape(t *testing.T, g *shape.Graph, name string) *shape.Shape {
	t.Helper()
	s, ok := g.Shape(sid(name))
	require.True(t, ok, "shape %s", name)
	return s
}

func TestLoad(t *testing.T) {
	g, err := Load("testdata/weather.json")
	require.NoError(t, err)
	require.Len(t, g.Shapes(), 16)

	color := mustShape(t, g, "Color")
	assert.Equal(t, shape.KindEnum, color.Kind)
	assert.Equal(t, []shape.EnumValue{
		{Name: "RED", Value: "red"},
		{Name: "DARK_BLUE", Value: "dark-blue", Documentation: "A deep blue."},
		{Name: "GREEN", Value: "GREEN"},
	}, color.Traits.Enum)
	assert.Empty(t, color.Members)

	mood := mustShape(t, g, "Mood")
	assert.Equal(t, shape.KindEnum, mood.Kind)
	assert.Equal(t, []shape.EnumValue{
		{Name: "SUNNY", Value: "sunny"},
		{Value: "gloomy", Deprecated: true},
	}, mood.Traits.Enum)

	assert.Equal(t, shape.KindSet, mustShape(t, g, "Names").Kind)
	assert.True(t, mustShape(t, g, "SparseStrings").Traits.Sparse)
	matrix := mustShape(t, g, "IntMatrix")
	assert.Equal(t, shape.KindList, matrix.Kind)
	assert.Equal(t, sid("IntList"), matrix.Element().Target)
	assert.Equal(t, sid("IntMatrix"), matrix.Element().Container)

	tags := mustShape(t, g, "Tags")
	assert.Equal(t, shape.String, tags.Key().Target)
	assert.Equal(t, shape.String, tags.Value().Target)

	loc := mustShape(t, g, "Location")
	assert.Equal(t, "Location is a point on the map.", loc.Traits.Documentation)

	// Members keep their declaration order.
	precip := mustShape(t, g, "Precipitation")
	assert.Equal(t, shape.KindUnion, precip.Kind)
	require.Len(t, precip.Members, 2)
	assert.Equal(t, "snow", precip.Members[0].Name)
	assert.Equal(t, "rain", precip.Members[1].Name)
	assert.Equal(t, shape.PrimitiveInteger, precip.Members[1].Target)

	forecast := mustShape(t, g, "Forecast")
	issued, ok := forecast.Member("issuedAt")
	require.True(t, ok)
	assert.Equal(t, shape.TimestampDateTime, issued.Traits.TimestampFormat)
	secret, ok := forecast.Member("secret")
	require.True(t, ok)
	assert.True(t, secret.Traits.Sensitive)
	assert.Equal(t, "Secret", secret.SerialName())

	nf := mustShape(t, g, "NotFound")
	assert.True(t, nf.IsError())
	assert.Equal(t, shape.ErrorClient, nf.Traits.Error)
	assert.True(t, nf.Traits.Retryable)

	in := mustShape(t, g, "GetForecastInput")
	city, _ := in.Member("city")
	assert.True(t, city.Traits.Required)
	token, _ := in.Member("token")
	assert.True(t, token.Traits.IdempotencyToken)

	op := mustShape(t, g, "GetForecast")
	assert.Equal(t, sid("GetForecastInput"), op.Input)
	assert.Equal(t, sid("GetForecastOutput"), op.Output)
	assert.Equal(t, []shape.ID{sid("NotFound")}, op.Errors)

	ping := mustShape(t, g, "Ping")
	assert.Equal(t, shape.Unit, ping.Input)
	assert.Equal(t, shape.Unit, ping.Output)
	assert.Empty(t, ping.Errors)

	svc := mustShape(t, g, "Weather")
	assert.Equal(t, "2024-01-01", svc.Version)
	assert.Equal(t, []shape.ID{sid("GetForecast"), sid("Ping")}, svc.Operations)
}

func TestLoadYAML(t *testing.T) {
	fromJSON, err := Load("testdata/weather.json")
	require.NoError(t, err)
	fromYAML, err := Load("testdata/weather.yaml")
	require.NoError(t, err)
	if diff := cmp.Diff(fromJSON.Shapes(), fromYAML.Shapes()); diff != "" {
		t.Errorf("yaml model differs from json model (-json +yaml):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "model.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"smithy": "3.0"}`), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), `unsupported model version "3.0"`)
}

func TestParse_Empty(t *testing.T) {
	g, err := Parse([]byte(`{"smithy": "1.0"}`))
	require.NoError(t, err)
	assert.Empty(t, g.Shapes())
	_, ok := g.Shape(shape.String)
	assert.True(t, ok, "prelude is loaded")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		model string
		err   string
	}{
		{
			name:  "malformed",
			model: `{"smithy": `,
			err:   "load: decode model",
		},
		{
			name:  "missing version",
			model: `{"shapes": {}}`,
			err:   "load: missing model version",
		},
		{
			name:  "relative id",
			model: `{"smithy": "2.0", "shapes": {"Foo": {"type": "string"}}}`,
			err:   `shape "Foo": invalid shape id`,
		},
		{
			name:  "prelude namespace",
			model: `{"smithy": "2.0", "shapes": {"smithy.api#Foo": {"type": "string"}}}`,
			err:   `namespace "smithy.api" is reserved`,
		},
		{
			name:  "unsupported type",
			model: `{"smithy": "2.0", "shapes": {"a#R": {"type": "resource"}}}`,
			err:   `unsupported shape type "resource"`,
		},
		{
			name:  "list without member",
			model: `{"smithy": "2.0", "shapes": {"a#L": {"type": "list"}}}`,
			err:   "missing member member",
		},
		{
			name:  "map without value",
			model: `{"smithy": "2.0", "shapes": {"a#M": {"type": "map", "key": {"target": "smithy.api#String"}}}}`,
			err:   "missing value member",
		},
		{
			name:  "member without target",
			model: `{"smithy": "2.0", "shapes": {"a#S": {"type": "structure", "members": {"x": {}}}}}`,
			err:   `member "x": missing target`,
		},
		{
			name:  "members not an object",
			model: `{"smithy": "2.0", "shapes": {"a#S": {"type": "structure", "members": ["x"]}}}`,
			err:   "members must be an object",
		},
		{
			name:  "unknown member target",
			model: `{"smithy": "2.0", "shapes": {"a#S": {"type": "structure", "members": {"x": {"target": "a#Missing"}}}}}`,
			err:   `shape "a#S": member "x" targets unknown shape "a#Missing"`,
		},
		{
			name:  "unknown error target",
			model: `{"smithy": "2.0", "shapes": {"a#Op": {"type": "operation", "errors": [{"target": "a#Oops"}]}}}`,
			err:   `error targets unknown shape "a#Oops"`,
		},
		{
			name:  "unknown operation",
			model: `{"smithy": "2.0", "shapes": {"a#Svc": {"type": "service", "operations": [{"target": "a#Op"}]}}}`,
			err:   `operation targets unknown shape "a#Op"`,
		},
		{
			name:  "bad timestamp format",
			model: `{"smithy": "2.0", "shapes": {"a#T": {"type": "timestamp", "traits": {"smithy.api#timestampFormat": "unix"}}}}`,
			err:   `unknown format "unix"`,
		},
		{
			name:  "bad error kind",
			model: `{"smithy": "2.0", "shapes": {"a#E": {"type": "structure", "traits": {"smithy.api#error": "network"}}}}`,
			err:   `unknown error kind "network"`,
		},
		{
			name:  "non-string documentation",
			model: `{"smithy": "2.0", "shapes": {"a#S": {"type": "string", "traits": {"smithy.api#documentation": 1}}}}`,
			err:   "expect string value, got int",
		},
		{
			name:  "enum entry without value",
			model: `{"smithy": "2.0", "shapes": {"a#S": {"type": "string", "traits": {"smithy.api#enum": [{"name": "A"}]}}}}`,
			err:   "entry 0: missing value",
		},
		{
			name:  "non-string enum value",
			model: `{"smithy": "2.0", "shapes": {"a#E": {"type": "enum", "members": {"A": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": 1}}}}}}`,
			err:   `member "A": enum value must be a string`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.model))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestParse_UnknownTraitsIgnored(t *testing.T) {
	g, err := Parse([]byte(`{
    "smithy": "2.0",
    "shapes": {
        "a#S": {
            "type": "structure",
            "members": {
                "x": {
                    "target": "smithy.api#PrimitiveLong",
                    "traits": {"smithy.api#default": 0, "smithy.api#box": {}}
                }
            },
            "traits": {"smithy.api#error": "server", "a#custom": {"k": "v"}}
        }
    }
}`))
	require.NoError(t, err)
	s, ok := g.Shape("a#S")
	require.True(t, ok)
	assert.Equal(t, shape.ErrorServer, s.Traits.Error)
	x, ok := s.Member("x")
	require.True(t, ok)
	assert.True(t, x.Traits.Boxed)
	assert.Equal(t, shape.ID("a#S"), x.Container)
}

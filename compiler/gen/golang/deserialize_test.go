package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/shapegen/shape"
)

func TestGenDocumentDeserializer(t *testing.T) {
	e, g := newEmitter(t, weatherShapes())
	code := render(t)(e.GenDocumentDeserializer(typeOf(t, g, "Forecast")))

	t.Run("field loop", func(t *testing.T) {
		assert.Contains(t, code, `serde.NewFieldDescriptor(serde.KindEnum, "color", 0)`)
		assert.Contains(t, code, "// deserializeForecastDocument reads a Forecast document.\nfunc deserializeForecastDocument(deserializer serde.Deserializer) (*model.Forecast, error) {")
		assert.Contains(t, code, "builder := model.NewForecastBuilder()\n\tit, err := deserializer.DeserializeStruct(forecastDeserObjDescriptor)")
		assert.Contains(t, code, "idx, err := it.FindNextFieldIndex()")
		assert.Contains(t, code, "if idx == serde.EndOfFields {\n\t\t\tbreak\n\t\t}")
		assert.Contains(t, code, "switch idx {")
		assert.Contains(t, code, "default:\n\t\t\tif err := it.SkipValue(); err != nil {\n\t\t\t\treturn nil, err\n\t\t\t}")
		assert.Contains(t, code, "return builder.Build(), nil\n}")
	})

	t.Run("scalars", func(t *testing.T) {
		assert.Contains(t, code, "case forecastDeserColorDescriptor.Index:\n\t\t\tv, err := it.DeserializeString()")
		assert.Contains(t, code, "builder.Color = &v")
		assert.Contains(t, code, "case forecastDeserCountDescriptor.Index:\n\t\t\tv, err := it.DeserializeInt()")
		assert.Contains(t, code, "builder.Count = v")
		assert.Contains(t, code, "vRaw, err := it.DeserializeDouble()")
		assert.Contains(t, code, "v := timestamp.ParseEpochSeconds(vRaw)")
		assert.Contains(t, code, "builder.IssuedAt = &v")
		assert.Contains(t, code, "v, err := base64.StdEncoding.DecodeString(vRaw)")
		assert.Contains(t, code, "builder.Raw = v")
		assert.Contains(t, code, "builder.Secret = &v")
	})

	t.Run("nested documents", func(t *testing.T) {
		assert.Contains(t, code, "v, err := deserializeLocationDocument(it)")
		assert.Contains(t, code, "builder.Location = v")
		assert.Contains(t, code, "v, err := deserializePrecipitationDocument(it)")
		assert.Contains(t, code, "builder.Precip = v")
	})

	t.Run("lists", func(t *testing.T) {
		assert.Contains(t, code, "col0, err := it.DeserializeList(forecastDeserMatrixDescriptor)")
		assert.Contains(t, code, "v := make([][]int32, 0)")
		assert.Contains(t, code, "more, err := col0.HasNextElement()")
		assert.Contains(t, code, "if !more {")
		assert.Contains(t, code, "present, err := col0.NextHasValue()")
		assert.Contains(t, code, "if err := col0.DeserializeNull(); err != nil {")
		assert.Contains(t, code, "col1, err := col0.DeserializeList(forecastDeserMatrixC0Descriptor)")
		assert.Contains(t, code, "el1 := make([]int32, 0)")
		assert.Contains(t, code, "el2, err := col1.DeserializeInt()")
		assert.Contains(t, code, "el1 = append(el1, el2)")
		assert.Contains(t, code, "v = append(v, el1)")
		assert.Contains(t, code, "builder.Matrix = v")
	})

	t.Run("sparse and enum elements", func(t *testing.T) {
		assert.Contains(t, code, "v := make([]*string, 0)")
		assert.Contains(t, code, "v = append(v, nil)")
		assert.Contains(t, code, "v = append(v, &el1)")
		assert.Contains(t, code, "el1Raw, err := col0.DeserializeString()")
		assert.Contains(t, code, "el1 := model.ParseColor(el1Raw)")
	})

	t.Run("maps", func(t *testing.T) {
		assert.Contains(t, code, "col0, err := it.DeserializeMap(forecastDeserTagsDescriptor)")
		assert.Contains(t, code, "v := make(map[string]string)")
		assert.Contains(t, code, "more, err := col0.HasNextEntry()")
		assert.Contains(t, code, "k0, err := col0.Key()")
		assert.Contains(t, code, "v[k0] = el1")
	})
}

func TestGenDocumentDeserializer_Union(t *testing.T) {
	e, g := newEmitter(t, weatherShapes())
	code := render(t)(e.GenDocumentDeserializer(typeOf(t, g, "Precipitation")))

	assert.Contains(t, code, "func deserializePrecipitationDocument(deserializer serde.Deserializer) (model.Precipitation, error) {\n\tvar value model.Precipitation")
	assert.Contains(t, code, "case precipitationDeserRainDescriptor.Index:\n\t\t\tv, err := it.DeserializeInt()")
	assert.Contains(t, code, "value = &model.PrecipitationMemberRain{Value: v}")
	assert.Contains(t, code, "value = &model.PrecipitationMemberSnow{Value: v}")
	assert.Contains(t, code, "default:\n\t\t\tif value == nil {\n\t\t\t\tvalue = &model.PrecipitationUnknown{Tag: it.FieldName()}")
	assert.Contains(t, code, "return value, nil\n}")
}

func TestGenResponseDeserializer(t *testing.T) {
	e, g := newEmitter(t, weatherShapes())
	code := render(t)(e.GenResponseDeserializer(g.Operations[0]))

	assert.Contains(t, code, "// DeserializeGetForecastResponse reads the output of the GetForecast operation.\nfunc DeserializeGetForecastResponse(deserializer serde.Deserializer) (*model.GetForecastOutput, error) {")
	assert.Contains(t, code, `serde.NewObjectDescriptor("example.weather#GetForecastOutput", getForecastResponseDeserForecastDescriptor)`)
	assert.Contains(t, code, "case getForecastResponseDeserForecastDescriptor.Index:\n\t\t\tv, err := deserializeForecastDocument(it)")
	assert.Contains(t, code, "builder.Forecast = v")
}

func TestGenResponseDeserializer_Unit(t *testing.T) {
	e, g := newEmitter(t, []*shape.Shape{shape.NewOperation(sid("Ping"), shape.Unit, shape.Unit)})
	code := render(t)(e.GenResponseDeserializer(g.Operations[0]))

	assert.Contains(t, code, `pingResponseDeserObjDescriptor = serde.NewObjectDescriptor("example.weather#Ping$output")`)
	assert.Contains(t, code, "func DeserializePingResponse(deserializer serde.Deserializer) (struct{}, error) {")
	assert.Contains(t, code, "return struct{}{}, err")
	assert.Contains(t, code, "return struct{}{}, nil\n}")
	assert.NotContains(t, code, "case ")
}

func TestGenErrorDeserializer(t *testing.T) {
	e, g := newEmitter(t, weatherShapes())
	code := render(t)(e.GenErrorDeserializer(typeOf(t, g, "NotFound")))

	assert.Contains(t, code, "func DeserializeNotFoundError(deserializer serde.Deserializer) (smithy.APIError, error) {")
	assert.Contains(t, code, "builder := model.NewNotFoundBuilder()")
	assert.Contains(t, code, "case notFoundErrorDeserMessageDescriptor.Index:")
	assert.Contains(t, code, "builder.Message = &v")
	assert.Contains(t, code, "builder.Resource = &v")
	assert.Contains(t, code, "return builder.Build(), nil")
}

func TestGenDocumentDeserializer_Encodings(t *testing.T) {
	e, g := newEmitter(t, []*shape.Shape{
		shape.NewSimple(sid("HttpTime"), shape.KindTimestamp, shape.WithTimestampFormat(shape.TimestampHTTPDate)),
		shape.NewMap(sid("Stamps"), sid("HttpTime"), shape.Sparse()),
		shape.NewStructure(sid("Point"), shape.NewMember("x", shape.PrimitiveLong)),
		shape.NewList(sid("Points"), sid("Point")),
		shape.NewStructure(sid("Record"),
			shape.NewMember("created", shape.Timestamp, shape.WithTimestampFormat(shape.TimestampDateTime)),
			shape.NewMember("stamps", sid("Stamps")),
			shape.NewMember("points", sid("Points")),
			shape.NewMember("extra", shape.Document),
			shape.NewMember("enabled", shape.Boolean),
		),
	})
	code := render(t)(e.GenDocumentDeserializer(typeOf(t, g, "Record")))

	assert.Contains(t, code, "vRaw, err := it.DeserializeString()")
	assert.Contains(t, code, "v, err := timestamp.ParseDateTime(vRaw)")
	assert.Contains(t, code, "builder.Created = &v")
	assert.Contains(t, code, "el1, err := timestamp.ParseHTTPDate(el1Raw)")
	assert.Contains(t, code, "v := make(map[string]*time.Time)")
	assert.Contains(t, code, "v[k0] = nil")
	assert.Contains(t, code, "v[k0] = &el1")
	assert.Contains(t, code, "el1, err := deserializePointDocument(col0)")
	assert.Contains(t, code, "v = append(v, el1)")
	assert.Contains(t, code, "v, err := it.DeserializeDocument()")
	assert.Contains(t, code, "builder.Extra = v")
	assert.Contains(t, code, "v, err := it.DeserializeBool()")
	assert.Contains(t, code, "builder.Enabled = &v")
}

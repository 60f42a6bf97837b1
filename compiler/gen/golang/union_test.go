package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/shapegen/shape"
)

func TestGenUnion(t *testing.T) {
	e, g := newEmitter(t, weatherShapes())
	code := render(t)(e.GenUnion(typeOf(t, g, "Precipitation")))

	assert.Contains(t, code, "package model")
	assert.Contains(t, code, "// Precipitation holds exactly one of its variants.")
	assert.Contains(t, code, "// The following types satisfy this interface:")
	assert.Contains(t, code, "type Precipitation interface {\n\tisPrecipitation()\n}")
	assert.Contains(t, code, "type PrecipitationMemberRain struct {\n\tValue int32\n}")
	assert.Contains(t, code, "func (*PrecipitationMemberRain) isPrecipitation() {}")
	assert.Contains(t, code, "type PrecipitationMemberSnow struct {\n\tValue string\n}")
	assert.Contains(t, code, "func (*PrecipitationMemberSnow) isPrecipitation() {}")
	assert.Contains(t, code, "type PrecipitationUnknown struct {\n\tTag string\n}")
	assert.Contains(t, code, "func (*PrecipitationUnknown) isPrecipitation() {}")
}

func TestGenUnion_AggregateVariants(t *testing.T) {
	e, g := newEmitter(t, []*shape.Shape{
		shape.NewStructure(sid("Point"), shape.NewMember("x", shape.PrimitiveLong)),
		shape.NewList(sid("Points"), sid("Point")),
		shape.NewUnion(sid("Geometry"),
			shape.NewMember("point", sid("Point")),
			shape.NewMember("path", sid("Points")),
			shape.NewMember("at", shape.Timestamp),
		),
	})
	code := render(t)(e.GenUnion(typeOf(t, g, "Geometry")))

	assert.Contains(t, code, "type GeometryMemberPoint struct {\n\tValue *Point\n}")
	assert.Contains(t, code, "type GeometryMemberPath struct {\n\tValue []*Point\n}")
	assert.Contains(t, code, "type GeometryMemberAt struct {\n\tValue time.Time\n}")
}

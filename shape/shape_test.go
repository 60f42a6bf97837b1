package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	id := NewID("example.weather", "GetForecast")
	assert.Equal(t, ID("example.weather#GetForecast"), id)
	assert.Equal(t, "example.weather", id.Namespace())
	assert.Equal(t, "GetForecast", id.Name())
	assert.Equal(t, "example.weather#GetForecast$city", id.Member("city"))
	assert.Equal(t, "Bare", ID("Bare").Name())
}

func TestKind(t *testing.T) {
	t.Run("round trips AST names", func(t *testing.T) {
		for _, k := range []Kind{KindString, KindStructure, KindUnion, KindMap, KindBigDecimal} {
			got, ok := ParseKind(k.String())
			require.True(t, ok, k.String())
			assert.Equal(t, k, got)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, ok := ParseKind("intEnum")
		assert.False(t, ok)
		_, ok = ParseKind("invalid")
		assert.False(t, ok)
	})

	t.Run("classification", func(t *testing.T) {
		assert.True(t, KindInteger.IsNumber())
		assert.False(t, KindBigInteger.IsNumber())
		assert.True(t, KindSet.IsAggregate())
		assert.False(t, KindStructure.IsAggregate())
		assert.True(t, KindEnum.IsNamed())
		assert.False(t, KindList.IsNamed())
	})
}

func TestGraph(t *testing.T) {
	node := NewStructure("example#Node",
		NewMember("value", String),
		NewMember("children", "example#NodeList"),
	)
	list := NewList("example#NodeList", "example#Node")
	g := MustGraph(node, list)

	t.Run("prelude is present", func(t *testing.T) {
		s, ok := g.Shape(Integer)
		require.True(t, ok)
		assert.True(t, s.Traits.Boxed)
		s, ok = g.Shape(PrimitiveInteger)
		require.True(t, ok)
		assert.False(t, s.Traits.Boxed)
	})

	t.Run("members know their container", func(t *testing.T) {
		for _, m := range node.Members {
			assert.Equal(t, node.ID, m.Container)
		}
		assert.Equal(t, "example#Node$value", node.Members[0].ID())
	})

	t.Run("shapes excludes prelude and is sorted", func(t *testing.T) {
		shapes := g.Shapes()
		require.Len(t, shapes, 2)
		assert.Equal(t, ID("example#Node"), shapes[0].ID)
		assert.Equal(t, ID("example#NodeList"), shapes[1].ID)
		assert.Len(t, g.ShapesOf(KindList), 1)
	})

	t.Run("duplicate shapes are rejected", func(t *testing.T) {
		err := g.Add(NewStructure("example#Node"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("walk terminates on cycles", func(t *testing.T) {
		var visited []ID
		g.Walk(node.ID, func(s *Shape) bool {
			visited = append(visited, s.ID)
			return true
		})
		assert.Equal(t, []ID{"example#Node", "example#NodeList", String}, visited)
	})

	t.Run("walk can prune", func(t *testing.T) {
		var visited []ID
		g.Walk(node.ID, func(s *Shape) bool {
			visited = append(visited, s.ID)
			return false
		})
		assert.Equal(t, []ID{"example#Node"}, visited)
	})
}

func TestShapeHelpers(t *testing.T) {
	s := NewStructure("example#S",
		NewMember("zeta", String),
		NewMember("alpha", String, JSONName("A")),
	)
	sorted := s.SortedMembers()
	assert.Equal(t, "alpha", sorted[0].Name)
	assert.Equal(t, "zeta", s.Members[0].Name, "declaration order is kept")
	assert.Equal(t, "A", sorted[0].SerialName())
	assert.Equal(t, "zeta", sorted[1].SerialName())

	m := NewMap("example#M", String, Sparse())
	assert.True(t, m.Traits.Sparse)
	assert.Equal(t, String, m.Key().Target)
	assert.Equal(t, String, m.Value().Target)

	e := NewStructure("example#Oops").With(ClientError(), Retryable())
	assert.True(t, e.IsError())
	assert.Equal(t, "client", e.Traits.Error.String())
	assert.False(t, s.IsError())
}

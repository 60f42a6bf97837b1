package shape

import (
	"fmt"
	"slices"
	"strings"
)

// Graph is an arena of shapes keyed by id. Shapes refer to each other by id
// only, so recursive definitions never require inline expansion.
type Graph struct {
	shapes map[ID]*Shape
}

// NewGraph returns a graph holding the prelude shapes.
func NewGraph() *Graph {
	g := &Graph{shapes: make(map[ID]*Shape, len(prelude)+16)}
	for _, s := range prelude {
		g.shapes[s.ID] = s
	}
	return g
}

// MustGraph returns a graph holding the prelude and the given shapes.
// It panics if the shapes cannot be added.
func MustGraph(shapes ...*Shape) *Graph {
	g := NewGraph()
	if err := g.Add(shapes...); err != nil {
		panic(err)
	}
	return g
}

// Add adds shapes to the graph. Redefining a non-prelude shape is an error.
func (g *Graph) Add(shapes ...*Shape) error {
	for _, s := range shapes {
		if s == nil || s.ID == "" {
			return fmt.Errorf("shape: missing shape id")
		}
		if old, ok := g.shapes[s.ID]; ok && !IsPrelude(old.ID) {
			return fmt.Errorf("shape: duplicate shape %q", s.ID)
		}
		for _, m := range s.Members {
			m.Container = s.ID
		}
		g.shapes[s.ID] = s
	}
	return nil
}

// Shape returns the shape with the given id.
func (g *Graph) Shape(id ID) (*Shape, bool) {
	s, ok := g.shapes[id]
	return s, ok
}

// Target returns the shape a member points to.
func (g *Graph) Target(m *Member) (*Shape, bool) {
	return g.Shape(m.Target)
}

// Len returns the number of shapes, prelude included.
func (g *Graph) Len() int { return len(g.shapes) }

// Shapes returns the non-prelude shapes ordered by id.
func (g *Graph) Shapes() []*Shape {
	out := make([]*Shape, 0, len(g.shapes))
	for id, s := range g.shapes {
		if !IsPrelude(id) {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b *Shape) int { return strings.Compare(string(a.ID), string(b.ID)) })
	return out
}

// ShapesOf returns the non-prelude shapes of the given kinds ordered by id.
func (g *Graph) ShapesOf(kinds ...Kind) []*Shape {
	var out []*Shape
	for _, s := range g.Shapes() {
		if slices.Contains(kinds, s.Kind) {
			out = append(out, s)
		}
	}
	return out
}

// Walk visits root and every shape reachable from it through members,
// depth-first in sorted member order. Each shape is visited once, so cyclic
// graphs terminate. Walk stops descending below a shape when visit returns
// false. Dangling targets are skipped.
func (g *Graph) Walk(root ID, visit func(*Shape) bool) {
	seen := make(map[ID]struct{})
	var walk func(ID)
	walk = func(id ID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		s, ok := g.shapes[id]
		if !ok || !visit(s) {
			return
		}
		for _, m := range s.SortedMembers() {
			walk(m.Target)
		}
	}
	walk(root)
}

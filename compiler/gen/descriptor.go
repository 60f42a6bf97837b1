package gen

import (
	"fmt"
	"sync"

	"github.com/syssam/shapegen/shape"
)

// FieldDescriptor is the generation-time identity of one wire field: a
// member of a structure or union, or one nesting level of an aggregate
// nested inside another aggregate.
type FieldDescriptor struct {
	// Name is the Go identifier base of the descriptor ("Items", "ItemsC0").
	Name string
	// SerialName is the wire-facing name ("items", "items_C0").
	SerialName string
	// Index is the position of the member in the name-sorted member list,
	// or -1 for nested levels.
	Index int
	// Kind is the serde kind constant ("KindList").
	Kind string
	// Depth is -1 for members and the zero-based nesting level otherwise.
	Depth int
	// Member is the member the descriptor belongs to.
	Member *shape.Member
}

// Nested reports whether d describes a nesting level rather than a member.
func (d *FieldDescriptor) Nested() bool { return d.Depth >= 0 }

type descriptorKey struct {
	member string
	depth  int
}

type descriptorSet struct {
	ordered []*FieldDescriptor
	byKey   map[descriptorKey]*FieldDescriptor
}

// DescriptorRegistry assigns field descriptors per context. A context is
// one generated artifact, such as the document serializer of a shape or
// the request serializer of an operation. Descriptors of a context are
// computed together on first use, so lookup order never changes indices,
// and repeated lookups return the identical descriptor.
type DescriptorRegistry struct {
	graph *shape.Graph

	mu       sync.Mutex
	contexts map[string]*descriptorSet
}

// NewDescriptorRegistry returns an empty registry over g.
func NewDescriptorRegistry(g *shape.Graph) *DescriptorRegistry {
	return &DescriptorRegistry{graph: g, contexts: make(map[string]*descriptorSet)}
}

// Register assigns the descriptors of every member of container and of
// every nested aggregate level below those members, and returns them in
// emission order: members by name, each followed by its nested levels.
func (r *DescriptorRegistry) Register(context string, container *shape.Shape) ([]*FieldDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, err := r.register(context, container)
	if err != nil {
		return nil, err
	}
	return set.ordered, nil
}

// Descriptors returns the descriptors registered for context in emission
// order, or nil if the context is unknown.
func (r *DescriptorRegistry) Descriptors(context string) []*FieldDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.contexts[context]; ok {
		return set.ordered
	}
	return nil
}

// Member returns the descriptor of m in the given context.
func (r *DescriptorRegistry) Member(context string, m *shape.Member) (*FieldDescriptor, error) {
	return r.lookup(context, m, -1)
}

// Nested returns the descriptor of nesting level depth below m.
func (r *DescriptorRegistry) Nested(context string, m *shape.Member, depth int) (*FieldDescriptor, error) {
	return r.lookup(context, m, depth)
}

func (r *DescriptorRegistry) lookup(context string, m *shape.Member, depth int) (*FieldDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.contexts[context]
	if !ok {
		container, found := r.graph.Shape(m.Container)
		if !found {
			return nil, NewSchemaResolutionError(string(m.Container), "container of member "+m.Name+" not found", nil)
		}
		var err error
		if set, err = r.register(context, container); err != nil {
			return nil, err
		}
	}
	d, ok := set.byKey[descriptorKey{member: m.Name, depth: depth}]
	if !ok {
		return nil, NewSchemaResolutionError(string(m.Container), fmt.Sprintf("no descriptor for member %s at depth %d in %s", m.Name, depth, context), nil)
	}
	return d, nil
}

func (r *DescriptorRegistry) register(context string, container *shape.Shape) (*descriptorSet, error) {
	if set, ok := r.contexts[context]; ok {
		return set, nil
	}
	set := &descriptorSet{byKey: make(map[descriptorKey]*FieldDescriptor)}
	taken := map[string]string{"Obj": "the object descriptor"}
	add := func(d *FieldDescriptor) error {
		if other, ok := taken[d.Name]; ok {
			return NewNameConflictError(string(container.ID), d.Member.Name, d.Name+"Descriptor", other)
		}
		taken[d.Name] = "descriptor of member " + d.Member.Name
		set.ordered = append(set.ordered, d)
		set.byKey[descriptorKey{member: d.Member.Name, depth: d.Depth}] = d
		return nil
	}
	for i, m := range container.SortedMembers() {
		target, ok := r.graph.Target(m)
		if !ok {
			return nil, NewSchemaResolutionError(m.ID(), "target "+string(m.Target)+" not found", nil)
		}
		if err := add(&FieldDescriptor{
			Name:       pascal(m.Name),
			SerialName: m.SerialName(),
			Index:      i,
			Kind:       serialKind(target),
			Depth:      -1,
			Member:     m,
		}); err != nil {
			return nil, err
		}
		seen := map[shape.ID]bool{target.ID: true}
		for depth, level := 0, target; level.Kind.IsAggregate(); depth++ {
			inner := level.Element()
			if level.Kind == shape.KindMap {
				inner = level.Value()
			}
			if inner == nil {
				break
			}
			next, ok := r.graph.Target(inner)
			if !ok {
				return nil, NewSchemaResolutionError(string(level.ID), "target "+string(inner.Target)+" not found", nil)
			}
			if !next.Kind.IsAggregate() {
				break
			}
			if seen[next.ID] {
				return nil, NewSchemaResolutionError(string(next.ID), "collection cycle below member "+m.ID(), nil)
			}
			seen[next.ID] = true
			if err := add(&FieldDescriptor{
				Name:       fmt.Sprintf("%sC%d", pascal(m.Name), depth),
				SerialName: fmt.Sprintf("%s_C%d", m.SerialName(), depth),
				Index:      -1,
				Kind:       serialKind(next),
				Depth:      depth,
				Member:     m,
			}); err != nil {
				return nil, err
			}
			level = next
		}
	}
	r.contexts[context] = set
	return set, nil
}

func serialKind(s *shape.Shape) string {
	switch s.Kind {
	case shape.KindBoolean:
		return "KindBoolean"
	case shape.KindByte:
		return "KindByte"
	case shape.KindShort:
		return "KindShort"
	case shape.KindInteger:
		return "KindInteger"
	case shape.KindLong:
		return "KindLong"
	case shape.KindFloat:
		return "KindFloat"
	case shape.KindDouble:
		return "KindDouble"
	case shape.KindEnum:
		return "KindEnum"
	case shape.KindBlob:
		return "KindBlob"
	case shape.KindTimestamp:
		return "KindTimestamp"
	case shape.KindDocument:
		return "KindDocument"
	case shape.KindStructure, shape.KindUnion:
		return "KindStruct"
	case shape.KindList, shape.KindSet:
		return "KindList"
	case shape.KindMap:
		return "KindMap"
	default:
		return "KindString"
	}
}

package shape

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies the kind of a shape.
type Kind uint8

// Shape kinds.
const (
	KindInvalid Kind = iota
	KindBoolean
	KindByte
	KindShort
	KindInteger
	KindLong
	KindFloat
	KindDouble
	KindBigInteger
	KindBigDecimal
	KindString
	KindEnum
	KindBlob
	KindTimestamp
	KindDocument
	KindList
	KindSet
	KindMap
	KindStructure
	KindUnion
	KindOperation
	KindService
	KindUnit
)

var kindNames = [...]string{
	KindInvalid:    "invalid",
	KindBoolean:    "boolean",
	KindByte:       "byte",
	KindShort:      "short",
	KindInteger:    "integer",
	KindLong:       "long",
	KindFloat:      "float",
	KindDouble:     "double",
	KindBigInteger: "bigInteger",
	KindBigDecimal: "bigDecimal",
	KindString:     "string",
	KindEnum:       "enum",
	KindBlob:       "blob",
	KindTimestamp:  "timestamp",
	KindDocument:   "document",
	KindList:       "list",
	KindSet:        "set",
	KindMap:        "map",
	KindStructure:  "structure",
	KindUnion:      "union",
	KindOperation:  "operation",
	KindService:    "service",
	KindUnit:       "unit",
}

// String returns the AST name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind returns the kind for an AST type name.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s && Kind(k) != KindInvalid {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}

// IsNumber reports whether k is a fixed-size numeric kind.
func (k Kind) IsNumber() bool {
	switch k {
	case KindByte, KindShort, KindInteger, KindLong, KindFloat, KindDouble:
		return true
	}
	return false
}

// IsAggregate reports whether k is a list, set or map.
func (k Kind) IsAggregate() bool {
	return k == KindList || k == KindSet || k == KindMap
}

// IsNamed reports whether values of kind k are generated as named types and
// referenced by name rather than expanded inline.
func (k Kind) IsNamed() bool {
	return k == KindStructure || k == KindUnion || k == KindEnum
}

// ID is an absolute shape id of the form "namespace#Name".
type ID string

// NewID joins a namespace and a shape name.
func NewID(namespace, name string) ID {
	return ID(namespace + "#" + name)
}

// Namespace returns the namespace part of the id.
func (id ID) Namespace() string {
	ns, _, _ := strings.Cut(string(id), "#")
	return ns
}

// Name returns the shape name part of the id.
func (id ID) Name() string {
	_, name, ok := strings.Cut(string(id), "#")
	if !ok {
		return string(id)
	}
	return name
}

// Member returns the member id "namespace#Name$member".
func (id ID) Member(name string) string {
	return string(id) + "$" + name
}

func (id ID) String() string { return string(id) }

type (
	// Shape is a node of the shape graph.
	Shape struct {
		ID     ID
		Kind   Kind
		Traits Traits
		// Members in declaration order. Lists and sets hold a single
		// "member"; maps hold "key" and "value".
		Members []*Member

		// Operation shapes.
		Input  ID
		Output ID
		Errors []ID

		// Service shapes.
		Operations []ID
		Version    string
	}

	// Member is a named reference from a container shape to a target shape.
	Member struct {
		Name      string
		Target    ID
		Container ID
		Traits    Traits
	}
)

// Member returns the member with the given name.
func (s *Shape) Member(name string) (*Member, bool) {
	for _, m := range s.Members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// SortedMembers returns the members ordered by name.
func (s *Shape) SortedMembers() []*Member {
	out := slices.Clone(s.Members)
	slices.SortFunc(out, func(a, b *Member) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Element returns the element member of a list or set.
func (s *Shape) Element() *Member {
	m, _ := s.Member("member")
	return m
}

// Value returns the value member of a map.
func (s *Shape) Value() *Member {
	m, _ := s.Member("value")
	return m
}

// Key returns the key member of a map.
func (s *Shape) Key() *Member {
	m, _ := s.Member("key")
	return m
}

// IsError reports whether the shape is an error structure.
func (s *Shape) IsError() bool {
	return s.Kind == KindStructure && s.Traits.Error != ErrorNone
}

// ID returns the member id "namespace#Container$name".
func (m *Member) ID() string {
	return m.Container.Member(m.Name)
}

// SerialName returns the wire-facing name of the member.
func (m *Member) SerialName() string {
	if m.Traits.JSONName != "" {
		return m.Traits.JSONName
	}
	return m.Name
}

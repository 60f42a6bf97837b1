package serde

// Kind is the serial kind of a field.
type Kind uint8

// Serial kinds.
const (
	KindBoolean Kind = iota + 1
	KindByte
	KindShort
	KindInteger
	KindLong
	KindFloat
	KindDouble
	KindString
	KindBlob
	KindTimestamp
	KindDocument
	KindEnum
	KindStruct
	KindList
	KindMap
)

var kindNames = [...]string{
	KindBoolean:   "Boolean",
	KindByte:      "Byte",
	KindShort:     "Short",
	KindInteger:   "Integer",
	KindLong:      "Long",
	KindFloat:     "Float",
	KindDouble:    "Double",
	KindString:    "String",
	KindBlob:      "Blob",
	KindTimestamp: "Timestamp",
	KindDocument:  "Document",
	KindEnum:      "Enum",
	KindStruct:    "Struct",
	KindList:      "List",
	KindMap:       "Map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Invalid"
}

// FieldDescriptor identifies one field of a structure, or one nesting level
// of a nested collection. Nested levels have Index -1.
type FieldDescriptor struct {
	Kind       Kind
	SerialName string
	Index      int
}

// NewFieldDescriptor returns a descriptor for a structure member.
func NewFieldDescriptor(kind Kind, serialName string, index int) *FieldDescriptor {
	return &FieldDescriptor{Kind: kind, SerialName: serialName, Index: index}
}

// NewNestedDescriptor returns a descriptor for a nested collection level.
func NewNestedDescriptor(kind Kind, serialName string) *FieldDescriptor {
	return &FieldDescriptor{Kind: kind, SerialName: serialName, Index: -1}
}

// ObjectDescriptor describes the fields of a structure or union document.
type ObjectDescriptor struct {
	Name   string
	Fields []*FieldDescriptor
	byName map[string]*FieldDescriptor
}

// NewObjectDescriptor returns an object descriptor for the given fields.
// Nested descriptors may be listed; only fields with a non-negative index
// are addressable by name.
func NewObjectDescriptor(name string, fields ...*FieldDescriptor) *ObjectDescriptor {
	o := &ObjectDescriptor{Name: name, Fields: fields, byName: make(map[string]*FieldDescriptor, len(fields))}
	for _, f := range fields {
		if f.Index >= 0 {
			o.byName[f.SerialName] = f
		}
	}
	return o
}

// Field returns the top-level field with the given serial name.
func (o *ObjectDescriptor) Field(serialName string) (*FieldDescriptor, bool) {
	f, ok := o.byName[serialName]
	return f, ok
}

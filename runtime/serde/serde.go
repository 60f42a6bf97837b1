package serde

// Sentinel values returned by FieldIterator.FindNextFieldIndex.
const (
	// EndOfFields reports that the structure has no more fields.
	EndOfFields = -1
	// UnknownField reports a field the descriptor does not declare. The
	// caller must call SkipValue.
	UnknownField = -2
)

// Serializer writes one value. Writes are sticky: after the first failure
// every call is a no-op and Bytes reports the error.
type Serializer interface {
	BeginStruct(d *ObjectDescriptor) StructSerializer
	SerializeBool(v bool)
	SerializeByte(v int8)
	SerializeShort(v int16)
	SerializeInt(v int32)
	SerializeLong(v int64)
	SerializeFloat(v float32)
	SerializeDouble(v float64)
	SerializeString(v string)
	SerializeDocument(v any)
	SerializeNull()
	SerializeList(d *FieldDescriptor, fn func(ListSerializer) error) error
	SerializeMap(d *FieldDescriptor, fn func(MapSerializer) error) error
	// Bytes returns the encoded document.
	Bytes() ([]byte, error)
}

// StructSerializer writes the fields of a structure.
type StructSerializer interface {
	FieldBool(d *FieldDescriptor, v bool)
	FieldByte(d *FieldDescriptor, v int8)
	FieldShort(d *FieldDescriptor, v int16)
	FieldInt(d *FieldDescriptor, v int32)
	FieldLong(d *FieldDescriptor, v int64)
	FieldFloat(d *FieldDescriptor, v float32)
	FieldDouble(d *FieldDescriptor, v float64)
	FieldString(d *FieldDescriptor, v string)
	FieldDocument(d *FieldDescriptor, v any)
	FieldNull(d *FieldDescriptor)
	FieldStruct(d *FieldDescriptor, fn func(Serializer) error) error
	FieldList(d *FieldDescriptor, fn func(ListSerializer) error) error
	FieldMap(d *FieldDescriptor, fn func(MapSerializer) error) error
	EndStruct() error
}

// ListSerializer writes the elements of a list or set.
type ListSerializer interface {
	SerializeBool(v bool)
	SerializeByte(v int8)
	SerializeShort(v int16)
	SerializeInt(v int32)
	SerializeLong(v int64)
	SerializeFloat(v float32)
	SerializeDouble(v float64)
	SerializeString(v string)
	SerializeDocument(v any)
	SerializeNull()
	SerializeStruct(fn func(Serializer) error) error
	SerializeList(d *FieldDescriptor, fn func(ListSerializer) error) error
	SerializeMap(d *FieldDescriptor, fn func(MapSerializer) error) error
}

// MapSerializer writes the entries of a map.
type MapSerializer interface {
	EntryBool(key string, v bool)
	EntryByte(key string, v int8)
	EntryShort(key string, v int16)
	EntryInt(key string, v int32)
	EntryLong(key string, v int64)
	EntryFloat(key string, v float32)
	EntryDouble(key string, v float64)
	EntryString(key string, v string)
	EntryDocument(key string, v any)
	EntryNull(key string)
	EntryStruct(key string, fn func(Serializer) error) error
	EntryList(key string, d *FieldDescriptor, fn func(ListSerializer) error) error
	EntryMap(key string, d *FieldDescriptor, fn func(MapSerializer) error) error
}

// Deserializer reads one value.
type Deserializer interface {
	DeserializeBool() (bool, error)
	DeserializeByte() (int8, error)
	DeserializeShort() (int16, error)
	DeserializeInt() (int32, error)
	DeserializeLong() (int64, error)
	DeserializeFloat() (float32, error)
	DeserializeDouble() (float64, error)
	DeserializeString() (string, error)
	DeserializeDocument() (any, error)
	DeserializeNull() error
	DeserializeStruct(d *ObjectDescriptor) (FieldIterator, error)
	DeserializeList(d *FieldDescriptor) (ElementIterator, error)
	DeserializeMap(d *FieldDescriptor) (EntryIterator, error)
}

// FieldIterator walks the fields of a structure. It is also the Deserializer
// for the value of the current field.
type FieldIterator interface {
	Deserializer
	// FindNextFieldIndex returns the descriptor index of the next field,
	// EndOfFields, or UnknownField.
	FindNextFieldIndex() (int, error)
	// FieldName returns the serial name of the current field.
	FieldName() string
	// SkipValue discards the value of the current field.
	SkipValue() error
}

// ElementIterator walks the elements of a list. It is also the Deserializer
// for the current element.
type ElementIterator interface {
	Deserializer
	HasNextElement() (bool, error)
	// NextHasValue reports whether the current element is not null.
	NextHasValue() (bool, error)
}

// EntryIterator walks the entries of a map. It is also the Deserializer for
// the current entry value.
type EntryIterator interface {
	Deserializer
	HasNextEntry() (bool, error)
	// Key reads the key of the current entry.
	Key() (string, error)
	// NextHasValue reports whether the current entry value is not null.
	NextHasValue() (bool, error)
}

// Codec creates serializers and deserializers for one wire format.
type Codec interface {
	NewSerializer() Serializer
	NewDeserializer(data []byte) Deserializer
}

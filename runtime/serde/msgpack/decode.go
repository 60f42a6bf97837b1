package msgpack

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/syssam/shapegen/runtime/serde"
)

// Deserializer reads MessagePack values from a document.
type Deserializer struct {
	dec *msgpack.Decoder
}

var _ serde.Deserializer = (*Deserializer)(nil)

// NewDeserializer returns a Deserializer reading data.
func NewDeserializer(data []byte) *Deserializer {
	return &Deserializer{dec: msgpack.NewDecoder(bytes.NewReader(data))}
}

func mismatch(want string, err error) error {
	return fmt.Errorf("%w: reading %s: %v", serde.ErrUnexpectedToken, want, err)
}

func (d *Deserializer) DeserializeBool() (bool, error) {
	v, err := d.dec.DecodeBool()
	if err != nil {
		return false, mismatch("boolean", err)
	}
	return v, nil
}

func (d *Deserializer) DeserializeByte() (int8, error) {
	v, err := d.dec.DecodeInt8()
	if err != nil {
		return 0, mismatch("byte", err)
	}
	return v, nil
}

func (d *Deserializer) DeserializeShort() (int16, error) {
	v, err := d.dec.DecodeInt16()
	if err != nil {
		return 0, mismatch("short", err)
	}
	return v, nil
}

func (d *Deserializer) DeserializeInt() (int32, error) {
	v, err := d.dec.DecodeInt32()
	if err != nil {
		return 0, mismatch("integer", err)
	}
	return v, nil
}

func (d *Deserializer) DeserializeLong() (int64, error) {
	v, err := d.dec.DecodeInt64()
	if err != nil {
		return 0, mismatch("long", err)
	}
	return v, nil
}

func (d *Deserializer) DeserializeFloat() (float32, error) {
	v, err := d.dec.DecodeFloat32()
	if err != nil {
		return 0, mismatch("float", err)
	}
	return v, nil
}

func (d *Deserializer) DeserializeDouble() (float64, error) {
	v, err := d.dec.DecodeFloat64()
	if err != nil {
		return 0, mismatch("double", err)
	}
	return v, nil
}

func (d *Deserializer) DeserializeString() (string, error) {
	v, err := d.dec.DecodeString()
	if err != nil {
		return "", mismatch("string", err)
	}
	return v, nil
}

func (d *Deserializer) DeserializeDocument() (any, error) {
	return d.dec.DecodeInterface()
}

func (d *Deserializer) DeserializeNull() error {
	if err := d.dec.DecodeNil(); err != nil {
		return mismatch("null", err)
	}
	return nil
}

func (d *Deserializer) isNull() (bool, error) {
	c, err := d.dec.PeekCode()
	if err != nil {
		return false, err
	}
	return c == msgpcode.Nil, nil
}

func (d *Deserializer) mapLen(what string) (int, error) {
	n, err := d.dec.DecodeMapLen()
	if err != nil {
		return 0, mismatch(what, err)
	}
	if n < 0 {
		return 0, serde.UnexpectedTokenf("null where %s expected", what)
	}
	return n, nil
}

func (d *Deserializer) DeserializeStruct(desc *serde.ObjectDescriptor) (serde.FieldIterator, error) {
	n, err := d.mapLen("structure " + desc.Name)
	if err != nil {
		return nil, err
	}
	return &fieldIterator{Deserializer: d, desc: desc, remaining: n}, nil
}

func (d *Deserializer) DeserializeList(desc *serde.FieldDescriptor) (serde.ElementIterator, error) {
	n, err := d.dec.DecodeArrayLen()
	if err != nil {
		return nil, mismatch("list "+desc.SerialName, err)
	}
	if n < 0 {
		return nil, serde.UnexpectedTokenf("null where list %s expected", desc.SerialName)
	}
	return &elementIterator{Deserializer: d, remaining: n}, nil
}

func (d *Deserializer) DeserializeMap(desc *serde.FieldDescriptor) (serde.EntryIterator, error) {
	n, err := d.mapLen("map " + desc.SerialName)
	if err != nil {
		return nil, err
	}
	return &entryIterator{Deserializer: d, remaining: n}, nil
}

// fieldIterator walks a structure map. Fields holding null are treated as
// absent and never reported.
type fieldIterator struct {
	*Deserializer
	desc      *serde.ObjectDescriptor
	remaining int
	name      string
}

func (it *fieldIterator) FindNextFieldIndex() (int, error) {
	for it.remaining > 0 {
		it.remaining--
		name, err := it.dec.DecodeString()
		if err != nil {
			return 0, mismatch("field name", err)
		}
		it.name = name
		null, err := it.isNull()
		if err != nil {
			return 0, err
		}
		if null {
			if err := it.dec.Skip(); err != nil {
				return 0, err
			}
			continue
		}
		if f, ok := it.desc.Field(name); ok {
			return f.Index, nil
		}
		return serde.UnknownField, nil
	}
	return serde.EndOfFields, nil
}

func (it *fieldIterator) FieldName() string { return it.name }

func (it *fieldIterator) SkipValue() error { return it.dec.Skip() }

type elementIterator struct {
	*Deserializer
	remaining int
}

func (it *elementIterator) HasNextElement() (bool, error) {
	if it.remaining == 0 {
		return false, nil
	}
	it.remaining--
	return true, nil
}

func (it *elementIterator) NextHasValue() (bool, error) {
	null, err := it.isNull()
	return !null, err
}

type entryIterator struct {
	*Deserializer
	remaining int
}

func (it *entryIterator) HasNextEntry() (bool, error) {
	if it.remaining == 0 {
		return false, nil
	}
	it.remaining--
	return true, nil
}

func (it *entryIterator) Key() (string, error) {
	k, err := it.dec.DecodeString()
	if err != nil {
		return "", mismatch("map key", err)
	}
	return k, nil
}

func (it *entryIterator) NextHasValue() (bool, error) {
	null, err := it.isNull()
	return !null, err
}

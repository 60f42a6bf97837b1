package msgpack

import (
	"bytes"
	"errors"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/shapegen/runtime/serde"
)

// Codec is the MessagePack serde.Codec.
type Codec struct{}

var _ serde.Codec = Codec{}

// NewSerializer implements serde.Codec.
func (Codec) NewSerializer() serde.Serializer { return NewSerializer() }

// NewDeserializer implements serde.Codec.
func (Codec) NewDeserializer(data []byte) serde.Deserializer { return NewDeserializer(data) }

// node is a buffered document value. Map entry counts are only known once a
// structure is complete, so values are buffered and encoded by Bytes.
type node struct {
	scalar any
	array  bool
	object bool
	keys   []string
	elems  []*node
}

func (n *node) put(key string, v *node) {
	n.keys = append(n.keys, key)
	n.elems = append(n.elems, v)
}

func scalar(v any) *node { return &node{scalar: v} }

// state holds the sticky error shared by a serializer and its children.
type state struct{ err error }

func (st *state) record(err error) error {
	if err != nil && st.err == nil {
		st.err = err
	}
	return err
}

var errValueWritten = errors.New("msgpack: serializer already holds a value")

// Serializer buffers one MessagePack value.
type Serializer struct {
	st   *state
	root *node
	set  bool
}

var _ serde.Serializer = (*Serializer)(nil)

// NewSerializer returns an empty Serializer.
func NewSerializer() *Serializer {
	return &Serializer{st: &state{}}
}

func (s *Serializer) write(n *node) {
	if s.st.err != nil {
		return
	}
	if s.set {
		s.st.record(errValueWritten)
		return
	}
	s.root, s.set = n, true
}

func (s *Serializer) BeginStruct(*serde.ObjectDescriptor) serde.StructSerializer {
	n := &node{object: true}
	s.write(n)
	return &structWriter{st: s.st, n: n}
}

func (s *Serializer) SerializeBool(v bool) { s.write(scalar(v)) }
func (s *Serializer) SerializeByte(v int8) { s.write(scalar(v)) }
func (s *Serializer) SerializeShort(v int16) { s.write(scalar(v)) }
func (s *Serializer) SerializeInt(v int32) { s.write(scalar(v)) }
func (s *Serializer) SerializeLong(v int64) { s.write(scalar(v)) }
func (s *Serializer) SerializeFloat(v float32) { s.write(scalar(v)) }
func (s *Serializer) SerializeDouble(v float64) { s.write(scalar(v)) }
func (s *Serializer) SerializeString(v string) { s.write(scalar(v)) }
func (s *Serializer) SerializeDocument(v any) { s.write(scalar(v)) }
func (s *Serializer) SerializeNull() { s.write(nil) }

func (s *Serializer) SerializeList(_ *serde.FieldDescriptor, fn func(serde.ListSerializer) error) error {
	n := &node{array: true}
	s.write(n)
	return s.st.record(fn(&listWriter{st: s.st, n: n}))
}

func (s *Serializer) SerializeMap(_ *serde.FieldDescriptor, fn func(serde.MapSerializer) error) error {
	n := &node{object: true}
	s.write(n)
	return s.st.record(fn(&mapWriter{st: s.st, n: n}))
}

// Bytes encodes the buffered value.
func (s *Serializer) Bytes() ([]byte, error) {
	if s.st.err != nil {
		return nil, s.st.err
	}
	var buf bytes.Buffer
	if err := encode(msgpack.NewEncoder(&buf), s.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(enc *msgpack.Encoder, n *node) error {
	switch {
	case n == nil:
		return enc.EncodeNil()
	case n.object:
		if err := enc.EncodeMapLen(len(n.keys)); err != nil {
			return err
		}
		for i, k := range n.keys {
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			if err := encode(enc, n.elems[i]); err != nil {
				return err
			}
		}
		return nil
	case n.array:
		if err := enc.EncodeArrayLen(len(n.elems)); err != nil {
			return err
		}
		for _, e := range n.elems {
			if err := encode(enc, e); err != nil {
				return err
			}
		}
		return nil
	default:
		return enc.Encode(n.scalar)
	}
}

type structWriter struct {
	st *state
	n  *node
}

func (w *structWriter) field(d *serde.FieldDescriptor, v *node) {
	if w.st.err == nil {
		w.n.put(d.SerialName, v)
	}
}

func (w *structWriter) FieldBool(d *serde.FieldDescriptor, v bool) { w.field(d, scalar(v)) }
func (w *structWriter) FieldByte(d *serde.FieldDescriptor, v int8) { w.field(d, scalar(v)) }
func (w *structWriter) FieldShort(d *serde.FieldDescriptor, v int16) { w.field(d, scalar(v)) }
func (w *structWriter) FieldInt(d *serde.FieldDescriptor, v int32) { w.field(d, scalar(v)) }
func (w *structWriter) FieldLong(d *serde.FieldDescriptor, v int64) { w.field(d, scalar(v)) }
func (w *structWriter) FieldFloat(d *serde.FieldDescriptor, v float32) { w.field(d, scalar(v)) }
func (w *structWriter) FieldDouble(d *serde.FieldDescriptor, v float64) { w.field(d, scalar(v)) }
func (w *structWriter) FieldString(d *serde.FieldDescriptor, v string) { w.field(d, scalar(v)) }
func (w *structWriter) FieldDocument(d *serde.FieldDescriptor, v any) { w.field(d, scalar(v)) }
func (w *structWriter) FieldNull(d *serde.FieldDescriptor) { w.field(d, nil) }

func (w *structWriter) FieldStruct(d *serde.FieldDescriptor, fn func(serde.Serializer) error) error {
	c := &Serializer{st: w.st}
	if err := w.st.record(fn(c)); err != nil {
		return err
	}
	w.field(d, c.root)
	return nil
}

func (w *structWriter) FieldList(d *serde.FieldDescriptor, fn func(serde.ListSerializer) error) error {
	n := &node{array: true}
	w.field(d, n)
	return w.st.record(fn(&listWriter{st: w.st, n: n}))
}

func (w *structWriter) FieldMap(d *serde.FieldDescriptor, fn func(serde.MapSerializer) error) error {
	n := &node{object: true}
	w.field(d, n)
	return w.st.record(fn(&mapWriter{st: w.st, n: n}))
}

func (w *structWriter) EndStruct() error { return w.st.err }

type listWriter struct {
	st *state
	n  *node
}

func (w *listWriter) add(v *node) {
	if w.st.err == nil {
		w.n.elems = append(w.n.elems, v)
	}
}

func (w *listWriter) SerializeBool(v bool) { w.add(scalar(v)) }
func (w *listWriter) SerializeByte(v int8) { w.add(scalar(v)) }
func (w *listWriter) SerializeShort(v int16) { w.add(scalar(v)) }
func (w *listWriter) SerializeInt(v int32) { w.add(scalar(v)) }
func (w *listWriter) SerializeLong(v int64) { w.add(scalar(v)) }
func (w *listWriter) SerializeFloat(v float32) { w.add(scalar(v)) }
func (w *listWriter) SerializeDouble(v float64) { w.add(scalar(v)) }
func (w *listWriter) SerializeString(v string) { w.add(scalar(v)) }
func (w *listWriter) SerializeDocument(v any) { w.add(scalar(v)) }
func (w *listWriter) SerializeNull() { w.add(nil) }

func (w *listWriter) SerializeStruct(fn func(serde.Serializer) error) error {
	c := &Serializer{st: w.st}
	if err := w.st.record(fn(c)); err != nil {
		return err
	}
	w.add(c.root)
	return nil
}

func (w *listWriter) SerializeList(_ *serde.FieldDescriptor, fn func(serde.ListSerializer) error) error {
	n := &node{array: true}
	w.add(n)
	return w.st.record(fn(&listWriter{st: w.st, n: n}))
}

func (w *listWriter) SerializeMap(_ *serde.FieldDescriptor, fn func(serde.MapSerializer) error) error {
	n := &node{object: true}
	w.add(n)
	return w.st.record(fn(&mapWriter{st: w.st, n: n}))
}

type mapWriter struct {
	st *state
	n  *node
}

func (w *mapWriter) entry(key string, v *node) {
	if w.st.err == nil {
		w.n.put(key, v)
	}
}

func (w *mapWriter) EntryBool(key string, v bool) { w.entry(key, scalar(v)) }
func (w *mapWriter) EntryByte(key string, v int8) { w.entry(key, scalar(v)) }
func (w *mapWriter) EntryShort(key string, v int16) { w.entry(key, scalar(v)) }
func (w *mapWriter) EntryInt(key string, v int32) { w.entry(key, scalar(v)) }
func (w *mapWriter) EntryLong(key string, v int64) { w.entry(key, scalar(v)) }
func (w *mapWriter) EntryFloat(key string, v float32) { w.entry(key, scalar(v)) }
func (w *mapWriter) EntryDouble(key string, v float64) { w.entry(key, scalar(v)) }
func (w *mapWriter) EntryString(key string, v string) { w.entry(key, scalar(v)) }
func (w *mapWriter) EntryDocument(key string, v any) { w.entry(key, scalar(v)) }
func (w *mapWriter) EntryNull(key string) { w.entry(key, nil) }

func (w *mapWriter) EntryStruct(key string, fn func(serde.Serializer) error) error {
	c := &Serializer{st: w.st}
	if err := w.st.record(fn(c)); err != nil {
		return err
	}
	w.entry(key, c.root)
	return nil
}

func (w *mapWriter) EntryList(key string, _ *serde.FieldDescriptor, fn func(serde.ListSerializer) error) error {
	n := &node{array: true}
	w.entry(key, n)
	return w.st.record(fn(&listWriter{st: w.st, n: n}))
}

func (w *mapWriter) EntryMap(key string, _ *serde.FieldDescriptor, fn func(serde.MapSerializer) error) error {
	n := &node{object: true}
	w.entry(key, n)
	return w.st.record(fn(&mapWriter{st: w.st, n: n}))
}

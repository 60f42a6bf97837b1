package smithy

import (
	"encoding/binary"
	"math"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates member values into a 64-bit structural hash. Values
// that are equal under the generated Equal methods hash identically.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Sum64 returns the hash of the values added so far.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

type hashable interface {
	Hash() uint64
}

// Add mixes v into the hash.
func (h *Hasher) Add(v any) {
	h.add(reflect.ValueOf(v))
}

func (h *Hasher) uint(u uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], u)
	_, _ = h.d.Write(h.buf[:])
}

func (h *Hasher) bytes(b []byte) {
	h.uint(uint64(len(b)))
	_, _ = h.d.Write(b)
}

func (h *Hasher) add(v reflect.Value) {
	if !v.IsValid() {
		h.uint(0)
		return
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		if v.IsNil() {
			h.uint(0)
			return
		}
	}
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case hashable:
			h.uint(x.Hash())
			return
		case time.Time:
			h.uint(uint64(x.UnixNano()))
			return
		}
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		h.add(v.Elem())
	case reflect.Bool:
		if v.Bool() {
			h.uint(1)
		} else {
			h.uint(2)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.uint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		h.uint(v.Uint())
	case reflect.Float32, reflect.Float64:
		h.uint(math.Float64bits(v.Float()))
	case reflect.String:
		h.bytes([]byte(v.String()))
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			h.bytes(v.Bytes())
			return
		}
		h.uint(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			h.add(v.Index(i))
		}
	case reflect.Map:
		keys := v.MapKeys()
		slices.SortFunc(keys, func(x, y reflect.Value) int { return strings.Compare(x.String(), y.String()) })
		h.uint(uint64(len(keys)))
		for _, k := range keys {
			h.add(k)
			h.add(v.MapIndex(k))
		}
	case reflect.Struct:
		h.bytes([]byte(v.Type().Name()))
		for i := 0; i < v.NumField(); i++ {
			h.add(v.Field(i))
		}
	}
}

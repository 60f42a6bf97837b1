package msgpack_test

import "github.com/vmihailenco/msgpack/v5"

func decodeDocument(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

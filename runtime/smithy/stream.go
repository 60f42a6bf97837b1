package smithy

import (
	"bytes"
	"io"
)

// ByteStream is a streaming blob payload.
type ByteStream struct {
	Body io.ReadCloser
	// ContentLength is the payload size, or -1 when unknown.
	ContentLength int64
}

// NewByteStream wraps r. ContentLength is unknown.
func NewByteStream(r io.Reader) *ByteStream {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return &ByteStream{Body: rc, ContentLength: -1}
}

// BytesStream returns a ByteStream reading b.
func BytesStream(b []byte) *ByteStream {
	return &ByteStream{Body: io.NopCloser(bytes.NewReader(b)), ContentLength: int64(len(b))}
}

// ReadAll drains and closes the stream.
func (s *ByteStream) ReadAll() ([]byte, error) {
	defer s.Body.Close()
	return io.ReadAll(s.Body)
}

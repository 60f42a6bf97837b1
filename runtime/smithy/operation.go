package smithy

import (
	"fmt"

	"github.com/syssam/shapegen/runtime/serde"
)

// ErrorDeserializer reads the document of a modeled error.
type ErrorDeserializer func(serde.Deserializer) (APIError, error)

// Operation binds an operation name to its generated request serializer,
// response deserializer and modeled error deserializers.
type Operation[In, Out any] struct {
	Name        string
	Serialize   func(serde.Serializer, In) error
	Deserialize func(serde.Deserializer) (Out, error)
	Errors      map[string]ErrorDeserializer
}

// MarshalRequest encodes in with the codec.
func (op *Operation[In, Out]) MarshalRequest(codec serde.Codec, in In) ([]byte, error) {
	s := codec.NewSerializer()
	if err := op.Serialize(s, in); err != nil {
		return nil, fmt.Errorf("%s: serialize request: %w", op.Name, err)
	}
	return s.Bytes()
}

// UnmarshalResponse decodes a response document with the codec.
func (op *Operation[In, Out]) UnmarshalResponse(codec serde.Codec, data []byte) (Out, error) {
	out, err := op.Deserialize(codec.NewDeserializer(data))
	if err != nil {
		var zero Out
		return zero, fmt.Errorf("%s: deserialize response: %w", op.Name, err)
	}
	return out, nil
}

// UnmarshalError decodes an error document for the given error code. Codes
// without a modeled error yield a GenericAPIError.
func (op *Operation[In, Out]) UnmarshalError(codec serde.Codec, code string, data []byte) error {
	fn, ok := op.Errors[code]
	if !ok {
		return &GenericAPIError{Code: code, Fault: FaultUnknown}
	}
	apiErr, err := fn(codec.NewDeserializer(data))
	if err != nil {
		return fmt.Errorf("%s: deserialize error %s: %w", op.Name, code, err)
	}
	return apiErr
}

package shape

// ErrorKind classifies the party at fault for an error shape.
type ErrorKind uint8

// Error kinds.
const (
	ErrorNone ErrorKind = iota
	ErrorClient
	ErrorServer
)

// String returns the trait value of the error kind.
func (e ErrorKind) String() string {
	switch e {
	case ErrorClient:
		return "client"
	case ErrorServer:
		return "server"
	default:
		return ""
	}
}

// TimestampFormat is the wire format of a timestamp.
type TimestampFormat string

// Timestamp formats.
const (
	TimestampDefault      TimestampFormat = ""
	TimestampEpochSeconds TimestampFormat = "epoch-seconds"
	TimestampDateTime     TimestampFormat = "date-time"
	TimestampHTTPDate     TimestampFormat = "http-date"
)

// Valid reports whether f names a known format. The empty format is valid
// and means "use the protocol default".
func (f TimestampFormat) Valid() bool {
	switch f {
	case TimestampDefault, TimestampEpochSeconds, TimestampDateTime, TimestampHTTPDate:
		return true
	}
	return false
}

// EnumValue is one entry of an enum shape.
type EnumValue struct {
	// Name is the symbolic name. It may be empty, in which case the
	// constant name is derived from Value.
	Name          string
	Value         string
	Documentation string
	Deprecated    bool
}

// Traits holds the metadata attached to a shape or member.
type Traits struct {
	Sparse           bool
	Streaming        bool
	Required         bool
	Sensitive        bool
	Retryable        bool
	Boxed            bool
	IdempotencyToken bool
	Deprecated       bool
	Error            ErrorKind
	TimestampFormat  TimestampFormat
	Enum             []EnumValue
	Documentation    string
	JSONName         string
}

// Well-known trait ids of the prelude.
const (
	TraitSparse           = "smithy.api#sparse"
	TraitStreaming        = "smithy.api#streaming"
	TraitRequired         = "smithy.api#required"
	TraitSensitive        = "smithy.api#sensitive"
	TraitRetryable        = "smithy.api#retryable"
	TraitBox              = "smithy.api#box"
	TraitIdempotencyToken = "smithy.api#idempotencyToken"
	TraitDeprecated       = "smithy.api#deprecated"
	TraitError            = "smithy.api#error"
	TraitTimestampFormat  = "smithy.api#timestampFormat"
	TraitEnum             = "smithy.api#enum"
	TraitEnumValue        = "smithy.api#enumValue"
	TraitDocumentation    = "smithy.api#documentation"
	TraitJSONName         = "smithy.api#jsonName"
)

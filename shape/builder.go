package shape

// TraitOption sets a trait.
type TraitOption func(*Traits)

// Sparse marks a list or map as permitting null elements.
func Sparse() TraitOption { return func(t *Traits) { t.Sparse = true } }

// Streaming marks a blob as a data stream.
func Streaming() TraitOption { return func(t *Traits) { t.Streaming = true } }

// Required marks a member as required.
func Required() TraitOption { return func(t *Traits) { t.Required = true } }

// Sensitive marks a shape or member as sensitive.
func Sensitive() TraitOption { return func(t *Traits) { t.Sensitive = true } }

// Retryable marks an error shape as retryable.
func Retryable() TraitOption { return func(t *Traits) { t.Retryable = true } }

// Boxed marks a shape or member as nullable.
func Boxed() TraitOption { return func(t *Traits) { t.Boxed = true } }

// IdempotencyToken marks a string member as an idempotency token.
func IdempotencyToken() TraitOption { return func(t *Traits) { t.IdempotencyToken = true } }

// Deprecated marks a shape or member as deprecated.
func Deprecated() TraitOption { return func(t *Traits) { t.Deprecated = true } }

// ClientError marks a structure as an error caused by the client.
func ClientError() TraitOption { return func(t *Traits) { t.Error = ErrorClient } }

// ServerError marks a structure as an error caused by the server.
func ServerError() TraitOption { return func(t *Traits) { t.Error = ErrorServer } }

// WithTimestampFormat sets the timestamp format trait.
func WithTimestampFormat(f TimestampFormat) TraitOption {
	return func(t *Traits) { t.TimestampFormat = f }
}

// Doc sets the documentation trait.
func Doc(s string) TraitOption { return func(t *Traits) { t.Documentation = s } }

// JSONName overrides the wire name of a member.
func JSONName(s string) TraitOption { return func(t *Traits) { t.JSONName = s } }

func traits(opts []TraitOption) Traits {
	var t Traits
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// With applies trait options to the shape and returns it.
func (s *Shape) With(opts ...TraitOption) *Shape {
	for _, opt := range opts {
		opt(&s.Traits)
	}
	return s
}

// NewMember returns a member targeting the given shape.
func NewMember(name string, target ID, opts ...TraitOption) *Member {
	return &Member{Name: name, Target: target, Traits: traits(opts)}
}

func aggregate(id ID, kind Kind, members ...*Member) *Shape {
	s := &Shape{ID: id, Kind: kind, Members: members}
	for _, m := range members {
		m.Container = id
	}
	return s
}

// NewStructure returns a structure shape.
func NewStructure(id ID, members ...*Member) *Shape {
	return aggregate(id, KindStructure, members...)
}

// NewUnion returns a union shape.
func NewUnion(id ID, members ...*Member) *Shape {
	return aggregate(id, KindUnion, members...)
}

// NewList returns a list shape whose elements target the given shape.
func NewList(id ID, target ID, opts ...TraitOption) *Shape {
	return aggregate(id, KindList, NewMember("member", target)).With(opts...)
}

// NewSet returns a set shape whose elements target the given shape.
func NewSet(id ID, target ID, opts ...TraitOption) *Shape {
	return aggregate(id, KindSet, NewMember("member", target)).With(opts...)
}

// NewMap returns a map shape with string keys.
func NewMap(id ID, value ID, opts ...TraitOption) *Shape {
	return aggregate(id, KindMap, NewMember("key", String), NewMember("value", value)).With(opts...)
}

// NewEnum returns an enum shape.
func NewEnum(id ID, values ...EnumValue) *Shape {
	return &Shape{ID: id, Kind: KindEnum, Traits: Traits{Enum: values}}
}

// NewSimple returns a simple shape of the given kind.
func NewSimple(id ID, kind Kind, opts ...TraitOption) *Shape {
	return (&Shape{ID: id, Kind: kind}).With(opts...)
}

// NewOperation returns an operation shape.
func NewOperation(id, input, output ID, errors ...ID) *Shape {
	return &Shape{ID: id, Kind: KindOperation, Input: input, Output: output, Errors: errors}
}

// NewService returns a service shape.
func NewService(id ID, version string, operations ...ID) *Shape {
	return &Shape{ID: id, Kind: KindService, Version: version, Operations: operations}
}

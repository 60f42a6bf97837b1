package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrSchemaResolution indicates a shape that cannot be resolved to a Go type.
	ErrSchemaResolution = errors.New("shapegen: schema resolution failed")
	// ErrNameConflict indicates a generated identifier that collides with another.
	ErrNameConflict = errors.New("shapegen: name conflict")
	// ErrReservedPropertyType indicates a reserved property bound to the wrong type.
	ErrReservedPropertyType = errors.New("shapegen: reserved property type")
	// ErrUnsupportedConstruct indicates a construct with no generation strategy.
	ErrUnsupportedConstruct = errors.New("shapegen: unsupported construct")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("shapegen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("shapegen: code generation failed")
)

func location(b *strings.Builder, shape, member string) {
	if shape != "" {
		b.WriteString(" on shape ")
		b.WriteString(shape)
	}
	if member != "" {
		b.WriteString(" member ")
		b.WriteString(member)
	}
}

// SchemaResolutionError reports a shape whose kind has no Go symbol, or a
// reference that cannot be followed.
type SchemaResolutionError struct {
	Shape   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaResolutionError) Error() string {
	var b strings.Builder
	b.WriteString("shapegen: schema resolution error")
	location(&b, e.Shape, "")
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaResolutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaResolutionError.
func (e *SchemaResolutionError) Is(target error) bool {
	return target == ErrSchemaResolution
}

// NewSchemaResolutionError creates a new SchemaResolutionError.
func NewSchemaResolutionError(shape, message string, cause error) *SchemaResolutionError {
	return &SchemaResolutionError{
		Shape:   shape,
		Message: message,
		Cause:   cause,
	}
}

// NameConflictError reports a generated identifier that collides with a
// reserved identifier or with another generated identifier. Names are never
// rewritten to avoid the collision.
type NameConflictError struct {
	Shape    string
	Member   string
	Name     string // generated identifier
	Conflict string // what it collides with
}

// Error implements the error interface.
func (e *NameConflictError) Error() string {
	var b strings.Builder
	b.WriteString("shapegen: name conflict")
	location(&b, e.Shape, e.Member)
	fmt.Fprintf(&b, ": identifier %q collides with %s", e.Name, e.Conflict)
	return b.String()
}

// Is reports whether the target matches the sentinel error for NameConflictError.
func (e *NameConflictError) Is(target error) bool {
	return target == ErrNameConflict
}

// NewNameConflictError creates a new NameConflictError.
func NewNameConflictError(shape, member, name, conflict string) *NameConflictError {
	return &NameConflictError{
		Shape:    shape,
		Member:   member,
		Name:     name,
		Conflict: conflict,
	}
}

// ReservedPropertyTypeError reports a member bound to a reserved property,
// such as the message of an error shape, whose target has the wrong kind.
type ReservedPropertyTypeError struct {
	Shape    string
	Member   string
	Property string
	Got      string
	Want     string
}

// Error implements the error interface.
func (e *ReservedPropertyTypeError) Error() string {
	var b strings.Builder
	b.WriteString("shapegen: reserved property type error")
	location(&b, e.Shape, e.Member)
	fmt.Fprintf(&b, ": property %q must target %s, got %s", e.Property, e.Want, e.Got)
	return b.String()
}

// Is reports whether the target matches the sentinel error for ReservedPropertyTypeError.
func (e *ReservedPropertyTypeError) Is(target error) bool {
	return target == ErrReservedPropertyType
}

// NewReservedPropertyTypeError creates a new ReservedPropertyTypeError.
func NewReservedPropertyTypeError(shape, member, property, got, want string) *ReservedPropertyTypeError {
	return &ReservedPropertyTypeError{
		Shape:    shape,
		Member:   member,
		Property: property,
		Got:      got,
		Want:     want,
	}
}

// UnsupportedConstructError reports an input construct the generator has no
// strategy for.
type UnsupportedConstructError struct {
	Shape     string
	Member    string
	Construct string
}

// Error implements the error interface.
func (e *UnsupportedConstructError) Error() string {
	var b strings.Builder
	b.WriteString("shapegen: unsupported construct")
	location(&b, e.Shape, e.Member)
	if e.Construct != "" {
		b.WriteString(": ")
		b.WriteString(e.Construct)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for UnsupportedConstructError.
func (e *UnsupportedConstructError) Is(target error) bool {
	return target == ErrUnsupportedConstruct
}

// NewUnsupportedConstructError creates a new UnsupportedConstructError.
func NewUnsupportedConstructError(shape, member, construct string) *UnsupportedConstructError {
	return &UnsupportedConstructError{
		Shape:     shape,
		Member:    member,
		Construct: construct,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("shapegen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("shapegen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a failure while producing one output file.
type GenerationError struct {
	Phase   string // "model", "serializer", "deserializer", "operations", "write"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("shapegen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsSchemaResolutionError reports whether the error is a SchemaResolutionError.
func IsSchemaResolutionError(err error) bool {
	var target *SchemaResolutionError
	return errors.As(err, &target)
}

// IsNameConflictError reports whether the error is a NameConflictError.
func IsNameConflictError(err error) bool {
	var target *NameConflictError
	return errors.As(err, &target)
}

// IsReservedPropertyTypeError reports whether the error is a ReservedPropertyTypeError.
func IsReservedPropertyTypeError(err error) bool {
	var target *ReservedPropertyTypeError
	return errors.As(err, &target)
}

// IsUnsupportedConstructError reports whether the error is an UnsupportedConstructError.
func IsUnsupportedConstructError(err error) bool {
	var target *UnsupportedConstructError
	return errors.As(err, &target)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

package gen

import (
	"errors"

	"go.uber.org/zap"

	"github.com/syssam/shapegen/shape"
)

// Option sets one field of a Config.
type Option func(*Config) error

// WithHeader sets a comment rendered under the generated-code marker of
// every file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the import path of the generated root package, for
// example "example.com/weather/client".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the directory Manifest.Flush writes to.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithRuntime sets the import path of the runtime packages.
func WithRuntime(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Runtime", nil, "runtime cannot be empty")
		}
		c.Runtime = pkg
		return nil
	}
}

// WithTimestampFormat sets the default timestamp wire format.
// Supported formats: "epoch-seconds", "date-time", "http-date".
func WithTimestampFormat(f shape.TimestampFormat) Option {
	return func(c *Config) error {
		if f == shape.TimestampDefault || !f.Valid() {
			return NewConfigError("TimestampFormat", string(f), "unsupported format; use epoch-seconds, date-time, or http-date")
		}
		c.TimestampFormat = f
		return nil
	}
}

// WithTimestampOverride forces the wire format of one member, identified
// as "namespace#Shape$member".
func WithTimestampOverride(member string, f shape.TimestampFormat) Option {
	return func(c *Config) error {
		if member == "" {
			return NewConfigError("TimestampOverrides", nil, "member id cannot be empty")
		}
		if f == shape.TimestampDefault || !f.Valid() {
			return NewConfigError("TimestampOverrides", string(f), "unsupported format for "+member)
		}
		if c.TimestampOverrides == nil {
			c.TimestampOverrides = make(map[string]shape.TimestampFormat)
		}
		c.TimestampOverrides[member] = f
		return nil
	}
}

// WithWorkers sets the number of files generated concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply runs opts in order and stops at the first failing option.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll runs every option and joins the failures.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options. Unset values are
// defaulted and the package path is required.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	c.defaults()
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

package gen

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/syssam/shapegen/shape"
)

// DefaultRuntime is the import path of the runtime the generated code
// compiles against.
const DefaultRuntime = "github.com/syssam/shapegen/runtime"

// Config holds the per-run generation configuration. It is passed
// explicitly to every component; nothing is read from global state.
type Config struct {
	// Package is the import path of the generated root package. Value
	// types are generated into Package/model and serializers into
	// Package/transform.
	Package string
	// Target is the directory the generated files are written to.
	Target string
	// Header is an optional comment placed under the generated-code marker
	// of every file.
	Header string
	// Runtime is the import path of the runtime packages.
	Runtime string
	// TimestampFormat is the protocol default wire format of timestamps.
	TimestampFormat shape.TimestampFormat
	// TimestampOverrides are protocol-specific formats keyed by member id
	// ("namespace#Shape$member"). They win over traits.
	TimestampOverrides map[string]shape.TimestampFormat
	// Workers bounds the number of files generated concurrently.
	Workers int
	// Logger receives progress logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// ModelPkg returns the import path of the value types package.
func (c *Config) ModelPkg() string { return path.Join(c.Package, "model") }

// TransformPkg returns the import path of the serializers package.
func (c *Config) TransformPkg() string { return path.Join(c.Package, "transform") }

// SerdePkg returns the import path of the runtime serde package.
func (c *Config) SerdePkg() string { return path.Join(c.Runtime, "serde") }

// SmithyPkg returns the import path of the runtime smithy package.
func (c *Config) SmithyPkg() string { return path.Join(c.Runtime, "smithy") }

// TimestampPkg returns the import path of the runtime timestamp package.
func (c *Config) TimestampPkg() string { return path.Join(c.Runtime, "timestamp") }

func (c *Config) defaults() {
	if c.Runtime == "" {
		c.Runtime = DefaultRuntime
	}
	if c.TimestampFormat == shape.TimestampDefault {
		c.TimestampFormat = shape.TimestampEpochSeconds
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

func (c *Config) check() error {
	if c.Package == "" {
		return NewConfigError("Package", nil, "package cannot be empty")
	}
	return nil
}

// FileConfig is the YAML form of a Config.
//
//	package: example.com/weather/client
//	target: ./client
//	timestampFormat: date-time
//	timestampOverrides:
//	  example.weather#Forecast$issuedAt: http-date
type FileConfig struct {
	Package            string            `yaml:"package"`
	Target             string            `yaml:"target"`
	Header             string            `yaml:"header"`
	Runtime            string            `yaml:"runtime"`
	TimestampFormat    string            `yaml:"timestampFormat"`
	TimestampOverrides map[string]string `yaml:"timestampOverrides"`
	Workers            int               `yaml:"workers"`
}

// Options converts the file configuration to options. Empty values
// produce no option.
func (fc *FileConfig) Options() []Option {
	var opts []Option
	if fc.Package != "" {
		opts = append(opts, WithPackage(fc.Package))
	}
	if fc.Target != "" {
		opts = append(opts, WithTarget(fc.Target))
	}
	if fc.Header != "" {
		opts = append(opts, WithHeader(fc.Header))
	}
	if fc.Runtime != "" {
		opts = append(opts, WithRuntime(fc.Runtime))
	}
	if fc.TimestampFormat != "" {
		opts = append(opts, WithTimestampFormat(shape.TimestampFormat(fc.TimestampFormat)))
	}
	for member, format := range fc.TimestampOverrides {
		opts = append(opts, WithTimestampOverride(member, shape.TimestampFormat(format)))
	}
	if fc.Workers != 0 {
		opts = append(opts, WithWorkers(fc.Workers))
	}
	return opts
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(name string) (*FileConfig, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	fc := &FileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	return fc, nil
}

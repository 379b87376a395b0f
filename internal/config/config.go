package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/update-registry/internal/logger"
)

// Config holds connection parameters shared by the update-registry binaries.
type Config struct {
	// ServerAddress is the gRPC server address clients connect to.
	ServerAddress string `yaml:"server_addr"`
	// ManifestFile is the artifact manifest served by the server.
	// When empty, the server falls back to the built-in demo catalog.
	ManifestFile string `yaml:"manifest_file,omitempty"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// MaxMessageSize limits gRPC messages in bytes on both ends.
	MaxMessageSize int `yaml:"max_message_size"`
	// LogLevel is the minimum level of emitted log messages.
	LogLevel string `yaml:"log_level,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for connection settings.
	DefaultConfigFilename = "update-registry-settings.yaml"

	// DefaultManifestFilename is the default filename for the artifact manifest.
	DefaultManifestFilename = "update-registry-manifest.yaml"

	// DefaultServerAddress is used by the server when no settings file exists.
	DefaultServerAddress = ":50051"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxMessageSize is large enough for typical executables.
	DefaultMaxMessageSize = 64 << 20

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errUnknownLogLevel is returned when log_level cannot be parsed.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns settings with every field at its default value.
func Default() *Config {
	return &Config{
		ServerAddress:  DefaultServerAddress,
		Timeout:        DefaultTimeout,
		MaxMessageSize: DefaultMaxMessageSize,
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting,
// filling in defaults for optional ones.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.MaxMessageSize <= 0 {
		settings.MaxMessageSize = DefaultMaxMessageSize
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	return nil
}

// ApplyLogLevel switches the global logger to the configured level.
func (c *Config) ApplyLogLevel() {
	if level, ok := logger.ParseLogLevel(c.LogLevel); ok {
		logger.SetLevel(level)
	}
}

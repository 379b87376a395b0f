package artifact

import (
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ManifestFileMode is used when writing manifests.
const ManifestFileMode os.FileMode = 0o644

// ErrNotFound is returned when the manifest file does not exist.
var ErrNotFound = errors.New("manifest not found")

// ErrChecksumMismatch is returned when a payload does not match its recorded checksum.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// Manifest lists the artifacts a server distributes, in listing order.
type Manifest struct {
	// Versions holds one entry per distributable version.
	Versions []Entry `yaml:"versions" validate:"dive"`
}

// Entry points at the payload file of a single version.
type Entry struct {
	// Version is the opaque version identifier.
	Version string `yaml:"version" validate:"required"`
	// File is the payload path, relative paths are resolved against the manifest directory.
	File string `yaml:"file" validate:"required"`
	// Checksum is the base64-encoded SHA-512 of the payload. Optional.
	Checksum string `yaml:"checksum,omitempty" validate:"omitempty,base64"`
}

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the manifest structure.
func (m *Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	return nil
}

// ReadManifest loads and validates a manifest from disk.
func ReadManifest(path string) (*Manifest, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest
	if err = yaml.Unmarshal(contents, &manifest); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	if err = manifest.Validate(); err != nil {
		return nil, err
	}

	return &manifest, nil
}

// WriteManifest validates and writes a manifest to disk.
func WriteManifest(path string, manifest *Manifest) error {
	if err := manifest.Validate(); err != nil {
		return err
	}

	contents, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), contents, ManifestFileMode); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Checksum returns the base64-encoded SHA-512 digest of data.
func Checksum(data []byte) string {
	sum := sha512.Sum512(data)

	return base64.StdEncoding.EncodeToString(sum[:])
}

// VerifyChecksum compares data against an expected base64 SHA-512 digest.
// An empty expectation always passes.
func VerifyChecksum(data []byte, expected string) error {
	if expected == "" {
		return nil
	}

	if actual := Checksum(data); actual != expected {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, expected, actual)
	}

	return nil
}

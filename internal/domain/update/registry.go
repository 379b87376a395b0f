package update

import (
	"errors"
	"fmt"
	"slices"
)

// ErrorCodeNotFound is reported in Result.ErrorCode when the requested version is not registered.
const ErrorCodeNotFound int32 = -1

var (
	// ErrEmptyVersion is returned when an artifact has no version identifier.
	ErrEmptyVersion = errors.New("version must not be empty")
	// ErrDuplicateVersion is returned when two artifacts share a version identifier.
	ErrDuplicateVersion = errors.New("duplicate version")
)

// Artifact is a single distributable update.
type Artifact struct {
	// Version is an opaque identifier, unique within a registry.
	Version string
	// Payload is the update content.
	Payload []byte
}

// Clone returns a deep copy of the artifact.
func (a *Artifact) Clone() *Artifact {
	if a == nil {
		return nil
	}

	return &Artifact{
		Version: a.Version,
		Payload: clonePayload(a.Payload),
	}
}

// Result is the outcome of a payload lookup.
// A missing version is an expected outcome, reported through ErrorCode and ErrorMessage.
type Result struct {
	// Data is the payload of the requested version, empty when it was not found.
	Data []byte
	// Version echoes the requested version.
	Version string
	// ErrorCode is zero on success.
	ErrorCode int32
	// ErrorMessage describes the failure, empty on success.
	ErrorMessage string
}

// Found reports whether the lookup succeeded.
func (r *Result) Found() bool {
	return r.ErrorCode == 0
}

// NotFound returns the lookup result for a version that is not registered.
func NotFound(version string) *Result {
	return &Result{
		Data:         []byte{},
		Version:      version,
		ErrorCode:    ErrorCodeNotFound,
		ErrorMessage: fmt.Sprintf("version %s not found", version),
	}
}

// Registry maps versions to payloads. It is built once and never mutated,
// so it is safe for concurrent use without locking.
type Registry struct {
	// order holds versions in insertion order for deterministic listings.
	order []string
	// payloads maps a version to its content.
	payloads map[string][]byte
}

// NewRegistry builds a registry from the provided artifacts, preserving their order.
// Payloads are copied, a nil payload is stored as an empty one.
func NewRegistry(artifacts []Artifact) (*Registry, error) {
	r := &Registry{
		order:    make([]string, 0, len(artifacts)),
		payloads: make(map[string][]byte, len(artifacts)),
	}

	for _, artifact := range artifacts {
		if artifact.Version == "" {
			return nil, ErrEmptyVersion
		}

		if _, exists := r.payloads[artifact.Version]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVersion, artifact.Version)
		}

		r.order = append(r.order, artifact.Version)
		r.payloads[artifact.Version] = clonePayload(artifact.Payload)
	}

	return r, nil
}

// Len returns the number of registered versions.
func (r *Registry) Len() int {
	return len(r.order)
}

// ListVersions returns every registered version in insertion order.
// The client identifier does not affect the result.
func (r *Registry) ListVersions(_ string) []string {
	return slices.Clone(r.order)
}

// GetUpdate looks up the payload of a version.
// The client identifier does not affect the result.
func (r *Registry) GetUpdate(_ string, version string) *Result {
	payload, ok := r.payloads[version]
	if !ok {
		return NotFound(version)
	}

	return &Result{
		Data:    clonePayload(payload),
		Version: version,
	}
}

// clonePayload copies b and never returns nil.
func clonePayload(b []byte) []byte {
	result := make([]byte, len(b))
	copy(result, b)

	return result
}

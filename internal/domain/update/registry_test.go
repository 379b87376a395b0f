package update

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// exampleArtifacts returns the two-version catalog used across tests.
func exampleArtifacts() []Artifact {
	return []Artifact{
		{Version: "1.0", Payload: []byte("AAA")},
		{Version: "2.0", Payload: []byte("BBB")},
	}
}

// TestNewRegistry_Validation rejects empty and duplicate versions.
func TestNewRegistry_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry([]Artifact{{Version: "", Payload: []byte("x")}})
	require.ErrorIs(t, err, ErrEmptyVersion)

	_, err = NewRegistry([]Artifact{
		{Version: "1.0", Payload: []byte("x")},
		{Version: "1.0", Payload: []byte("y")},
	})
	require.ErrorIs(t, err, ErrDuplicateVersion)
}

// TestRegistry_ListVersions keeps insertion order and ignores the client identifier.
func TestRegistry_ListVersions(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(exampleArtifacts())
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	for _, clientID := range []string{"client1", "", "someone-else"} {
		require.Equal(t, []string{"1.0", "2.0"}, r.ListVersions(clientID))
	}

	// Mutating the returned slice must not leak into the registry.
	versions := r.ListVersions("client1")
	versions[0] = "tampered"
	require.Equal(t, []string{"1.0", "2.0"}, r.ListVersions("client1"))
}

// TestRegistry_ListVersions_Empty treats an empty registry as a valid empty listing.
func TestRegistry_ListVersions_Empty(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(nil)
	require.NoError(t, err)
	require.Empty(t, r.ListVersions("client1"))
	require.Zero(t, r.Len())
}

// TestRegistry_GetUpdate_Found returns the exact payload with no error fields set.
func TestRegistry_GetUpdate_Found(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(exampleArtifacts())
	require.NoError(t, err)

	result := r.GetUpdate("client1", "2.0")
	require.True(t, result.Found())
	require.Equal(t, []byte("BBB"), result.Data)
	require.Equal(t, "2.0", result.Version)
	require.Zero(t, result.ErrorCode)
	require.Empty(t, result.ErrorMessage)

	// Returned data is a copy.
	result.Data[0] = 'Z'
	require.Equal(t, []byte("BBB"), r.GetUpdate("client1", "2.0").Data)
}

// TestRegistry_GetUpdate_NotFound reports a missing version through the result fields.
func TestRegistry_GetUpdate_NotFound(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(exampleArtifacts())
	require.NoError(t, err)

	result := r.GetUpdate("client1", "9.9")
	require.False(t, result.Found())
	require.Empty(t, result.Data)
	require.Equal(t, "9.9", result.Version)
	require.Equal(t, ErrorCodeNotFound, result.ErrorCode)
	require.Equal(t, "version 9.9 not found", result.ErrorMessage)
	require.Equal(t, NotFound("9.9"), result)
}

// TestRegistry_Idempotent checks that repeated calls yield identical results.
func TestRegistry_Idempotent(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(exampleArtifacts())
	require.NoError(t, err)

	for _, version := range []string{"1.0", "2.0", "missing"} {
		require.Equal(t, r.GetUpdate("c", version), r.GetUpdate("c", version))
	}

	require.Equal(t, r.ListVersions("c"), r.ListVersions("c"))
}

// TestNewRegistry_CopiesPayloads verifies the registry is isolated from its input.
func TestNewRegistry_CopiesPayloads(t *testing.T) {
	t.Parallel()

	payload := []byte("AAA")
	r, err := NewRegistry([]Artifact{
		{Version: "1.0", Payload: payload},
		{Version: "empty", Payload: nil},
	})
	require.NoError(t, err)

	payload[0] = 'Z'
	require.Equal(t, []byte("AAA"), r.GetUpdate("c", "1.0").Data)

	// A nil payload is registered as present and empty.
	result := r.GetUpdate("c", "empty")
	require.True(t, result.Found())
	require.NotNil(t, result.Data)
	require.Empty(t, result.Data)
}

// TestArtifactClone verifies that Clone returns a deep copy and handles nil safely.
func TestArtifactClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Artifact)(nil).Clone())

	a := &Artifact{Version: "1.0", Payload: []byte("AAA")}
	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)

	b.Payload[0] = 'Z'
	require.Equal(t, []byte("AAA"), a.Payload)
}

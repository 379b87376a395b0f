package server

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	domain "github.com/oshokin/update-registry/internal/domain/update"
	"github.com/oshokin/update-registry/internal/logger"
	repo "github.com/oshokin/update-registry/internal/repository/artifact"
)

var errTestLoad = errors.New("test load error")

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// artifacts is returned from Load operations.
	artifacts []domain.Artifact
	// loadErr is the error to return from Load operations.
	loadErr error
}

// Load returns the configured artifacts or error.
func (m *memoryRepository) Load(context.Context) ([]domain.Artifact, error) {
	return m.artifacts, m.loadErr
}

// TestNewService_LoadsOrFails asserts newService behavior on valid, failing and duplicate sources.
func TestNewService_LoadsOrFails(t *testing.T) {
	t.Parallel()

	s, err := newService(context.Background(), &memoryRepository{
		artifacts: []domain.Artifact{{Version: "1.0", Payload: []byte("AAA")}},
	}, 0)
	require.NoError(t, err)
	require.Equal(t, 1, s.registry.Len())

	s, err = newService(context.Background(), &memoryRepository{loadErr: errTestLoad}, 0)
	require.ErrorIs(t, err, errTestLoad)
	require.Nil(t, s)

	s, err = newService(context.Background(), &memoryRepository{
		artifacts: []domain.Artifact{{Version: "1.0"}, {Version: "1.0"}},
	}, 0)
	require.ErrorIs(t, err, domain.ErrDuplicateVersion)
	require.Nil(t, s)
}

// TestNewService_MessageSizeLimit refuses payloads whose response would not fit the limit.
func TestNewService_MessageSizeLimit(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte{'x'}, 2<<20)
	artifacts := []domain.Artifact{
		{Version: "0.9", Payload: []byte("small")},
		{Version: "1.0", Payload: payload},
	}

	s, err := newService(context.Background(), &memoryRepository{artifacts: artifacts}, 1<<20)
	require.ErrorIs(t, err, ErrPayloadTooLarge)
	require.Contains(t, err.Error(), "version 1.0")
	require.Nil(t, s)

	// The limit covers the whole response, not only the payload.
	s, err = newService(context.Background(), &memoryRepository{artifacts: artifacts}, len(payload))
	require.ErrorIs(t, err, ErrPayloadTooLarge)
	require.Nil(t, s)

	s, err = newService(context.Background(), &memoryRepository{artifacts: artifacts}, 4<<20)
	require.NoError(t, err)
	require.Equal(t, 2, s.registry.Len())

	s, err = newService(context.Background(), &memoryRepository{artifacts: artifacts}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, s.registry.Len())
}

// TestService_ListAndGet verifies the service returns registry answers unchanged.
func TestService_ListAndGet(t *testing.T) {
	t.Parallel()

	s, err := newService(context.Background(), &memoryRepository{
		artifacts: []domain.Artifact{
			{Version: "1.0", Payload: []byte("AAA")},
			{Version: "2.0", Payload: []byte("BBB")},
		},
	}, 0)
	require.NoError(t, err)

	ctx := context.Background()

	require.Equal(t, []string{"1.0", "2.0"}, s.ListVersions(ctx, "client1"))

	found := s.GetUpdate(ctx, "client1", "1.0")
	require.True(t, found.Found())
	require.Equal(t, []byte("AAA"), found.Data)

	missing := s.GetUpdate(ctx, "client1", "9.9")
	require.False(t, missing.Found())
	require.Equal(t, "9.9", missing.Version)
}

// TestSelectRepository picks the demo catalog only when no manifest is configured.
func TestSelectRepository(t *testing.T) {
	t.Parallel()

	require.IsType(t, &repo.StaticRepository{}, selectRepository(context.Background(), ""))
	require.IsType(t, &repo.ManifestRepository{}, selectRepository(context.Background(), "manifest.yaml"))
}

// TestResolveListenAddress covers override, port extraction and invalid input.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("updates.example.com:50051", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", addr)

	addr, err = resolveListenAddress("updates.example.com:50051", "")
	require.NoError(t, err)
	require.Equal(t, ":50051", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}

// TestService_LogsLeaveClientIDToInterceptor keeps client_id out of service log entries.
func TestService_LogsLeaveClientIDToInterceptor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := logger.ToContext(context.Background(), logger.NewWithWriter(&buf, zapcore.DebugLevel))

	s, err := newService(ctx, &memoryRepository{
		artifacts: []domain.Artifact{{Version: "1.0", Payload: []byte("AAA")}},
	}, 0)
	require.NoError(t, err)

	s.ListVersions(ctx, "client1")
	s.GetUpdate(ctx, "client1", "1.0")
	s.GetUpdate(ctx, "client1", "9.9")

	output := buf.String()
	require.Contains(t, output, "Update served")
	require.Contains(t, output, "Update not found")
	require.NotContains(t, output, "client_id")
	require.NotContains(t, output, "client1")
}

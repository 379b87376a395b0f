package updater

import (
	"context"
	"crypto/sha512"
	"os"
	"path/filepath"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/update-registry/internal/config"
	"github.com/oshokin/update-registry/internal/repository/artifact"
	"github.com/oshokin/update-registry/internal/service/common"
	"github.com/oshokin/update-registry/internal/service/server"
)

// startServer runs the update server with the demo catalog and returns a client settings file.
func startServer(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	serverConfig := filepath.Join(dir, "server.yaml")
	require.NoError(t, config.Save(serverConfig, &config.Config{ServerAddress: "127.0.0.1:0"}))

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)

		_ = server.Run(ctx, &server.Options{ //nolint:errcheck // Failures surface through the ready channel timeout.
			ConfigPath:    serverConfig,
			ListenAddress: "127.0.0.1:0",
			Ready:         ready,
		})
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})

	var address string
	select {
	case address = <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	clientConfig := filepath.Join(dir, "client.yaml")
	require.NoError(t, config.Save(clientConfig, &config.Config{
		ServerAddress: address,
		Timeout:       3 * time.Second,
	}))

	return clientConfig
}

// TestRun_AppliesPayload replaces an existing target and removes the marker.
func TestRun_AppliesPayload(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "app")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

	applied, err := Run(context.Background(), &Options{
		ConfigPath: startServer(t),
		Version:    "2.5.1",
		TargetPath: target,
		Checksum:   artifact.Checksum([]byte("download_data")),
	})
	require.NoError(t, err)
	require.Equal(t, "2.5.1", applied)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, []byte("download_data"), data)
	require.NoFileExists(t, markerPath(target))
}

// TestRun_LatestVersionCreatesTarget applies the last listed version to a new file.
func TestRun_LatestVersionCreatesTarget(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "fresh")

	applied, err := Run(context.Background(), &Options{
		ConfigPath: startServer(t),
		TargetPath: target,
	})
	require.NoError(t, err)
	require.Equal(t, "8.9.38", applied)
	require.FileExists(t, target)
}

// TestRun_ChecksumMismatch leaves the target untouched when the payload differs.
func TestRun_ChecksumMismatch(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "app")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

	_, err := Run(context.Background(), &Options{
		ConfigPath: startServer(t),
		Version:    "2.5.1",
		TargetPath: target,
		Checksum:   artifact.Checksum([]byte("something else")),
	})
	require.ErrorIs(t, err, artifact.ErrChecksumMismatch)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, []byte("old"), data)
	require.NoFileExists(t, markerPath(target))
}

// TestRun_MissingVersion reports the server's not-found answer.
func TestRun_MissingVersion(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "app")

	_, err := Run(context.Background(), &Options{
		ConfigPath: startServer(t),
		Version:    "9.9",
		TargetPath: target,
	})
	require.ErrorIs(t, err, common.ErrUpdateUnavailable)
	require.NoFileExists(t, target)
}

// TestRun_Preconditions rejects missing targets and concurrent runs.
func TestRun_Preconditions(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), &Options{})
	require.ErrorIs(t, err, errTargetRequired)

	target := filepath.Join(t.TempDir(), "app")
	require.NoError(t, os.WriteFile(markerPath(target), nil, 0o600))

	_, err = Run(context.Background(), &Options{TargetPath: target})
	require.ErrorIs(t, err, errUpdaterAlreadyRunning)
	require.FileExists(t, markerPath(target))
}

// TestIsUpdaterRunningNow covers missing, fresh and stale markers.
func TestIsUpdaterRunningNow(t *testing.T) {
	t.Parallel()

	marker := filepath.Join(t.TempDir(), MarkerFilename)

	synctest.Test(t, func(t *testing.T) {
		ctx := context.Background()

		require.False(t, IsUpdaterRunningNow(ctx, marker))

		created, err := createMarker(marker)
		require.NoError(t, err)
		require.True(t, created)

		// Stamp the marker with the bubble clock so sleeping ages it.
		now := time.Now()
		require.NoError(t, os.Chtimes(marker, now, now))
		require.True(t, IsUpdaterRunningNow(ctx, marker))

		time.Sleep(markerLifetime - time.Second)
		require.True(t, IsUpdaterRunningNow(ctx, marker))

		time.Sleep(2 * time.Second)
		require.False(t, IsUpdaterRunningNow(ctx, marker))
		require.NoFileExists(t, marker)
	})
}

// TestCreateMarker creates the marker exactly once.
func TestCreateMarker(t *testing.T) {
	t.Parallel()

	marker := filepath.Join(t.TempDir(), MarkerFilename)

	created, err := createMarker(marker)
	require.NoError(t, err)
	require.True(t, created)

	created, err = createMarker(marker)
	require.ErrorIs(t, err, errUpdaterAlreadyRunning)
	require.False(t, created)
	require.FileExists(t, marker)
}

// TestApplyPayload_ExpectedChecksum makes go-update verify against the expected digest.
func TestApplyPayload_ExpectedChecksum(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	// A missing target is created for the update and removed again when it fails.
	missing := filepath.Join(dir, "missing")
	u := &runner{opts: &Options{TargetPath: missing, Checksum: artifact.Checksum([]byte("expected"))}}
	require.Error(t, u.applyPayload(ctx, []byte("served")))
	require.NoFileExists(t, missing)

	existing := filepath.Join(dir, "existing")
	require.NoError(t, os.WriteFile(existing, []byte("current"), 0o600))

	u = &runner{opts: &Options{TargetPath: existing, Checksum: artifact.Checksum([]byte("expected"))}}
	require.Error(t, u.applyPayload(ctx, []byte("served")))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	require.Equal(t, []byte("current"), data)

	u = &runner{opts: &Options{TargetPath: existing, Checksum: "not base64!"}}
	require.ErrorIs(t, u.applyPayload(ctx, []byte("served")), errInvalidChecksum)

	u = &runner{opts: &Options{TargetPath: existing, Checksum: artifact.Checksum([]byte("served"))}}
	require.NoError(t, u.applyPayload(ctx, []byte("served")))

	data, err = os.ReadFile(existing)
	require.NoError(t, err)
	require.Equal(t, []byte("served"), data)
}

// TestPayloadChecksum matches a direct SHA-512 digest.
func TestPayloadChecksum(t *testing.T) {
	t.Parallel()

	expected := sha512.Sum512([]byte("download_data"))

	got, err := PayloadChecksum([]byte("download_data"))
	require.NoError(t, err)
	require.Equal(t, expected[:], got)
}

// TestTerminateProcessByName_NoMatch leaves unrelated processes alone.
func TestTerminateProcessByName_NoMatch(t *testing.T) {
	t.Parallel()

	killed, err := terminateProcessByName("update-registry-no-such-process")
	require.NoError(t, err)
	require.Zero(t, killed)
}

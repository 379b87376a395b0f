package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/update-registry/internal/config"
)

// TestLoadSettings_DefaultsWhenDefaultFileMissing runs with no configuration in the working directory.
func TestLoadSettings_DefaultsWhenDefaultFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, path := range []string{"", config.DefaultConfigFilename} {
		settings, err := loadSettings(context.Background(), path)
		require.NoError(t, err)
		require.Equal(t, config.Default(), settings)
	}
}

// TestLoadSettings_ExplicitMissingFile fails when a non-default settings file is absent.
func TestLoadSettings_ExplicitMissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadSettings(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRun_WithoutSettingsFile serves the demo catalog with default settings.
func TestRun_WithoutSettingsFile(t *testing.T) {
	t.Chdir(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	errs := make(chan error, 1)

	go func() {
		errs <- Run(ctx, &Options{
			ListenAddress: "127.0.0.1:0",
			Ready:         ready,
		})
	}()

	select {
	case address := <-ready:
		require.NotEmpty(t, address)
	case err := <-errs:
		t.Fatalf("server stopped early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	cancel()
	require.NoError(t, <-errs)
}

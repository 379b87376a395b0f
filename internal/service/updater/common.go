package updater

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/update-registry/internal/logger"

	// Ensure SHA512 available for checksum calculation.
	_ "crypto/sha512"
)

var errHashUnavailable = errors.New("hash function unavailable")

const (
	// MarkerFilename marks that the updater is running right now to avoid parallel execution.
	// It is created next to the target file.
	MarkerFilename = "update-registry-update-marker.bin"

	// DefaultFileMode is applied to updated targets.
	DefaultFileMode os.FileMode = 0o755

	// DefaultChecksumFunction is used to verify applied payloads.
	DefaultChecksumFunction crypto.Hash = crypto.SHA512

	// markerFileMode is used for the marker file.
	markerFileMode os.FileMode = 0o600

	// markerLifetime is the period after which a stale update marker is ignored.
	markerLifetime = 30 * time.Second
)

// PayloadChecksum returns checksum bytes for data using DefaultChecksumFunction.
func PayloadChecksum(data []byte) ([]byte, error) {
	if !DefaultChecksumFunction.Available() {
		return nil, fmt.Errorf("checksum calculation not possible: %w", errHashUnavailable)
	}

	hasher := DefaultChecksumFunction.New()
	if _, err := hasher.Write(data); err != nil {
		return nil, fmt.Errorf("calculate checksum: %w", err)
	}

	return hasher.Sum(nil), nil
}

// markerPath returns the marker location for a target file.
func markerPath(targetPath string) string {
	return filepath.Join(filepath.Dir(targetPath), MarkerFilename)
}

// IsUpdaterRunningNow checks presence of a marker file and removes it if it looks stale.
func IsUpdaterRunningNow(ctx context.Context, marker string) bool {
	logger.DebugKV(ctx, "Checking for the presence of an update marker", "marker", marker)

	fileInfo, err := os.Stat(marker)
	if err == nil {
		if time.Since(fileInfo.ModTime()) <= markerLifetime {
			return true
		}

		logger.Info(ctx, "The update marker is too old, attempting cleanup")

		return os.Remove(marker) != nil
	}

	if errors.Is(err, os.ErrNotExist) {
		logger.Debug(ctx, "Update marker not found, continuing")
		return false
	}

	logger.Infof(ctx, "Unable to read update marker: %v", err)

	return false
}

// createMarker atomically creates the marker file. It reports whether this call created it,
// an existing marker yields errUpdaterAlreadyRunning.
func createMarker(marker string) (bool, error) {
	file, err := os.OpenFile(filepath.Clean(marker), os.O_CREATE|os.O_EXCL|os.O_WRONLY, markerFileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, errUpdaterAlreadyRunning
		}

		return false, err
	}

	if err = file.Close(); err != nil {
		return true, err
	}

	return true, nil
}

// terminateProcessByName kills processes with the provided executable name
// and returns how many were stopped.
func terminateProcessByName(processName string) (int, error) {
	processList, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	thisProcessID := os.Getpid()
	killed := 0

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != processName {
			continue
		}

		var runningProcess *os.Process

		runningProcess, err = os.FindProcess(process.Pid())
		if err != nil {
			return killed, err
		}

		if err = runningProcess.Kill(); err != nil {
			return killed, err
		}

		killed++
	}

	return killed, nil
}

// isWindows reports whether the updater runs on Windows.
func isWindows() bool {
	return strings.Contains(strings.ToLower(runtime.GOOS), "windows")
}

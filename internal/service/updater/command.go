package updater

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/oshokin/update-registry/internal/config"
	"github.com/oshokin/update-registry/internal/logger"
	"github.com/oshokin/update-registry/internal/repository/artifact"
	"github.com/oshokin/update-registry/internal/service/common"
)

var (
	errUpdaterAlreadyRunning = errors.New("the updater is already running")
	errTargetRequired        = errors.New("target path must be provided")
	errNoVersions            = errors.New("server has no versions available")
	errInvalidChecksum       = errors.New("expected checksum is not valid base64")
)

// Options are inputs accepted by the updater entry point.
type Options struct {
	// ConfigPath is the optional path to settings YAML file.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// ClientID overrides the detected username@hostname identifier.
	ClientID string
	// Version to apply; the last listed version is used when empty.
	Version string
	// TargetPath is the file replaced by the payload.
	TargetPath string
	// Checksum is an optional base64 SHA-512 the payload must match.
	Checksum string
	// KillRunning terminates processes named like the target before applying.
	KillRunning bool
	// StartTarget launches the target after a successful update.
	StartTarget bool
}

// runner holds the state of a single update execution.
type runner struct {
	opts     *Options
	cfg      *config.Config
	client   *common.Client
	clientID string
	marker   string
}

// Run executes the updater lifecycle and is the public entry point for the CLI.
// It returns the applied version.
func Run(ctx context.Context, opts *Options) (string, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "update-applier")

	up, err := newRunner(ctx, opts)
	if err != nil {
		return "", err
	}

	defer up.cleanup(ctx)

	applied, err := up.Run(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Updater run failed", "error", err)
		return "", err
	}

	logger.InfoKV(ctx, "Updater completed", "version", applied, "target", opts.TargetPath)

	return applied, nil
}

// newRunner prepares the run and writes a marker to avoid concurrent runs.
func newRunner(ctx context.Context, opts *Options) (*runner, error) {
	if opts.TargetPath == "" {
		return nil, errTargetRequired
	}

	u := &runner{
		opts:   opts,
		marker: markerPath(opts.TargetPath),
	}

	if IsUpdaterRunningNow(ctx, u.marker) {
		return nil, errUpdaterAlreadyRunning
	}

	created, err := createMarker(u.marker)
	if err != nil {
		if created {
			u.cleanup(ctx)
		}

		return nil, err
	}

	if err = u.connect(ctx); err != nil {
		u.cleanup(ctx)
		return nil, err
	}

	return u, nil
}

// connect loads settings and dials the update server.
func (u *runner) connect(ctx context.Context) error {
	settings, err := config.Load(u.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if u.opts.ServerAddress != "" {
		settings.ServerAddress = u.opts.ServerAddress
	}

	u.cfg = settings

	u.clientID, err = common.ResolveClientID(u.opts.ClientID)
	if err != nil {
		return fmt.Errorf("detect client id: %w", err)
	}

	u.client, err = common.Dial(
		ctx,
		settings.ServerAddress,
		common.WithCallTimeout(settings.Timeout),
		common.WithMaxMessageSize(settings.MaxMessageSize),
	)
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	return nil
}

// Run executes the workflow for this runner instance:
// 1) Resolve the version.
// 2) Download the payload.
// 3) Verify the expected checksum.
// 4) Stop running copies of the target.
// 5) Apply the payload.
// 6) Start the target.
func (u *runner) Run(ctx context.Context) (string, error) {
	version, err := u.resolveVersion(ctx)
	if err != nil {
		return "", err
	}

	logger.InfoKV(ctx, "Downloading update", "version", version)

	payload, err := u.client.FetchUpdate(ctx, u.clientID, version)
	if err != nil {
		return "", fmt.Errorf("download update: %w", err)
	}

	if err = artifact.VerifyChecksum(payload, u.opts.Checksum); err != nil {
		return "", err
	}

	if u.opts.KillRunning {
		if err = u.terminateTargetProcesses(ctx); err != nil {
			return "", fmt.Errorf("terminate running target: %w", err)
		}
	}

	logger.InfoKV(ctx, "Applying update", "target", u.opts.TargetPath, "size", len(payload))

	if err = u.applyPayload(ctx, payload); err != nil {
		return "", fmt.Errorf("apply update: %w", err)
	}

	if u.opts.StartTarget {
		if err = u.startTarget(ctx); err != nil {
			return "", fmt.Errorf("start target: %w", err)
		}
	}

	return version, nil
}

// resolveVersion returns the requested version or the last one the server lists.
func (u *runner) resolveVersion(ctx context.Context) (string, error) {
	if u.opts.Version != "" {
		return u.opts.Version, nil
	}

	versions, err := u.client.ListAvailableUpdates(ctx, u.clientID)
	if err != nil {
		return "", err
	}

	if len(versions) == 0 {
		return "", errNoVersions
	}

	return versions[len(versions)-1], nil
}

// terminateTargetProcesses kills processes running the target executable.
func (u *runner) terminateTargetProcesses(ctx context.Context) error {
	name := filepath.Base(u.opts.TargetPath)
	logger.InfoKV(ctx, "Terminating running processes forcibly", "executable", name)

	killed, err := terminateProcessByName(name)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Processes terminated", "count", killed)

	return nil
}

// applyPayload replaces the target using go-update with checksum validation.
func (u *runner) applyPayload(ctx context.Context, payload []byte) error {
	checksum, err := u.applyChecksum(payload)
	if err != nil {
		return err
	}

	targetPath := filepath.Clean(u.opts.TargetPath)
	placeholder := false

	if _, err = os.Stat(targetPath); err != nil && os.IsNotExist(err) {
		logger.Debug(ctx, "Target does not exist yet, creating it")

		var created *os.File

		if created, err = os.Create(targetPath); err != nil {
			return err
		}

		_ = created.Close()
		placeholder = true
	}

	options := goupdate.Options{
		TargetPath: targetPath,
		TargetMode: DefaultFileMode,
		Checksum:   checksum,
		Hash:       DefaultChecksumFunction,
	}

	if err = goupdate.Apply(bytes.NewReader(payload), options); err != nil {
		if placeholder {
			_ = os.Remove(targetPath)
		}

		return err
	}

	return nil
}

// applyChecksum returns the digest go-update verifies the payload against:
// the expected checksum when one is given, the payload's own digest otherwise.
func (u *runner) applyChecksum(payload []byte) ([]byte, error) {
	if u.opts.Checksum == "" {
		return PayloadChecksum(payload)
	}

	checksum, err := base64.StdEncoding.DecodeString(u.opts.Checksum)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidChecksum, err)
	}

	return checksum, nil
}

// startTarget launches the updated executable in the background.
func (u *runner) startTarget(ctx context.Context) error {
	executable, err := filepath.Abs(u.opts.TargetPath)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Starting executable", "executable", executable)

	// The child must outlive the updater, so it is not bound to ctx.
	if isWindows() {
		return exec.Command("cmd.exe", "/C", "start", executable).Start() //nolint:gosec,noctx // Path comes from the operator.
	}

	return exec.Command(executable).Start() //nolint:gosec,noctx // Path comes from the operator.
}

// cleanup closes the connection and removes the running marker.
func (u *runner) cleanup(ctx context.Context) {
	if u.client != nil {
		_ = u.client.Close()
	}

	if _, err := os.Stat(u.marker); err == nil {
		_ = os.Remove(u.marker)
	}

	logger.Debug(ctx, "The updater has been stopped")
}

package packager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/update-registry/internal/config"
	domain "github.com/oshokin/update-registry/internal/domain/update"
	"github.com/oshokin/update-registry/internal/logger"
	"github.com/oshokin/update-registry/internal/repository/artifact"
	"github.com/oshokin/update-registry/internal/service/common"
)

// Options contains inputs for the packager entry point.
type Options struct {
	// ConfigPath is where server settings are persisted when ServerAddress is set.
	ConfigPath string
	// ServerAddress is the gRPC address of a running update-server used for reachability checks.
	// When empty, no settings are written and no check is made.
	ServerAddress string
	// ManifestPath is the manifest to write, defaults to the standard manifest filename.
	ManifestPath string
	// Artifacts are "version=path" pairs in listing order.
	Artifacts []string
}

var (
	// errNoArtifacts is returned when nothing is given to package.
	errNoArtifacts = errors.New("at least one version=path pair is required")
	// errInvalidPair is returned for arguments that are not version=path.
	errInvalidPair = errors.New("expected version=path")
)

// packager prepares the artifact manifest for distribution.
// It is unexported, callers should use Run, which encapsulates setup and validation.
type packager struct {
	// manifestPath is where the manifest is written.
	manifestPath string
	// manifest collects the entries in listing order.
	manifest *artifact.Manifest
}

// Run executes the packaging workflow.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "update-packager")

	manifestPath := opts.ManifestPath
	if manifestPath == "" {
		manifestPath = config.DefaultManifestFilename
	}

	pkg := &packager{
		manifestPath: manifestPath,
		manifest:     &artifact.Manifest{},
	}

	if err := pkg.fillManifest(ctx, opts.Artifacts); err != nil {
		return fmt.Errorf("prepare manifest: %w", err)
	}

	logger.InfoKV(ctx, "Saving artifact manifest", "path", manifestPath, "versions", len(pkg.manifest.Versions))

	if err := artifact.WriteManifest(manifestPath, pkg.manifest); err != nil {
		return err
	}

	if opts.ServerAddress != "" {
		if err := pkg.saveSettings(opts); err != nil {
			return err
		}

		if err := ensureServerReachable(ctx, opts.ServerAddress); err != nil {
			return fmt.Errorf("check server: %w", err)
		}
	}

	pkg.printNextSteps(ctx)
	logger.Info(ctx, "Packager completed successfully")

	return nil
}

// fillManifest parses the pairs and records each payload with its checksum.
func (p *packager) fillManifest(ctx context.Context, pairs []string) error {
	if len(pairs) == 0 {
		return errNoArtifacts
	}

	seen := make(map[string]struct{}, len(pairs))

	for _, pair := range pairs {
		version, path, err := parsePair(pair)
		if err != nil {
			return err
		}

		if _, duplicate := seen[version]; duplicate {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateVersion, version)
		}

		seen[version] = struct{}{}

		contents, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("read payload of %s: %w", version, err)
		}

		entry := artifact.Entry{
			Version:  version,
			File:     p.relativeToManifest(path),
			Checksum: artifact.Checksum(contents),
		}

		logger.DebugKV(ctx, "Packaged artifact", "version", version, "file", entry.File, "size", len(contents))

		p.manifest.Versions = append(p.manifest.Versions, entry)
	}

	return nil
}

// relativeToManifest expresses path relative to the manifest directory when possible.
func (p *packager) relativeToManifest(path string) string {
	manifestDir, err := filepath.Abs(filepath.Dir(p.manifestPath))
	if err != nil {
		return path
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	relative, err := filepath.Rel(manifestDir, absolute)
	if err != nil || strings.HasPrefix(relative, "..") {
		return absolute
	}

	return filepath.ToSlash(relative)
}

// saveSettings persists server settings pointing at the written manifest.
func (p *packager) saveSettings(opts *Options) error {
	settings := &config.Config{
		ServerAddress: opts.ServerAddress,
		ManifestFile:  p.manifestPath,
	}

	if err := config.Save(opts.ConfigPath, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

// printNextSteps logs human-readable guidance for next actions with the created files.
func (p *packager) printNextSteps(ctx context.Context) {
	var builder strings.Builder

	builder.WriteString("Copy the following files next to ")
	builder.WriteString(p.manifestPath)
	builder.WriteString(" on the server:\n")

	for i, entry := range p.manifest.Versions {
		if i > 0 {
			builder.WriteString(",\n")
		}

		builder.WriteString(entry.File)
	}

	builder.WriteString("\nThen start the server with: update-server --manifest ")
	builder.WriteString(p.manifestPath)

	logger.Info(ctx, builder.String())
}

// ensureServerReachable verifies that the server answers a listing request.
func ensureServerReachable(ctx context.Context, serverAddress string) error {
	clientID, err := common.DetectClientID()
	if err != nil {
		return err
	}

	var client *common.Client

	client, err = common.Dial(ctx, serverAddress, common.WithCallTimeout(config.DefaultTimeout))
	if err != nil {
		return err
	}

	// Best-effort cleanup.
	defer func() {
		_ = client.Close()
	}()

	versions, err := client.ListAvailableUpdates(ctx, clientID)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Verified connection to update server",
		"server_address", serverAddress, "served_versions", len(versions))

	return nil
}

// parsePair splits a "version=path" argument.
func parsePair(pair string) (string, string, error) {
	version, path, ok := strings.Cut(pair, "=")

	version = strings.TrimSpace(version)
	path = strings.TrimSpace(path)

	if !ok || version == "" || path == "" {
		return "", "", fmt.Errorf("%w: %q", errInvalidPair, pair)
	}

	return version, path, nil
}

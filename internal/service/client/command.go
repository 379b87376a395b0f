package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/update-registry/internal/config"
	"github.com/oshokin/update-registry/internal/logger"
	"github.com/oshokin/update-registry/internal/service/common"
)

// Options configures the list and fetch operations of update-client.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// ClientID overrides the detected username@hostname identifier.
	ClientID string
	// Version to fetch; the last listed version is used when empty.
	Version string
	// OutputPath receives the fetched payload; defaults to the version name.
	OutputPath string
	// Out receives command results. Defaults to os.Stdout.
	Out io.Writer
}

// payloadFileMode is used for fetched payload files.
const payloadFileMode os.FileMode = 0o644

// ErrNoVersions is returned when fetching the latest version from an empty registry.
var ErrNoVersions = errors.New("server has no versions available")

// session bundles a connected client with the resolved identity.
type session struct {
	client   *common.Client
	clientID string
	address  string
}

// List prints every version the server offers, one per line, in server order.
func List(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "update-client")

	s, err := openSession(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = s.client.Close()
	}()

	versions, err := s.client.ListAvailableUpdates(ctx, s.clientID)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Available updates received", "server_address", s.address, "count", len(versions))

	out := output(opts)
	for _, version := range versions {
		if _, err = fmt.Fprintln(out, version); err != nil {
			return fmt.Errorf("write version: %w", err)
		}
	}

	return nil
}

// Fetch downloads a version payload to a file and returns the written path.
func Fetch(ctx context.Context, opts *Options) (string, error) {
	ctx = logger.WithName(ctx, "update-client")

	s, err := openSession(ctx, opts)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = s.client.Close()
	}()

	version, err := resolveVersion(ctx, s, opts.Version)
	if err != nil {
		return "", err
	}

	payload, err := s.client.FetchUpdate(ctx, s.clientID, version)
	if err != nil {
		return "", err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = filepath.Base(version)
	}

	if err = os.WriteFile(filepath.Clean(outputPath), payload, payloadFileMode); err != nil {
		return "", fmt.Errorf("write payload: %w", err)
	}

	logger.InfoKV(ctx, "Update downloaded", "version", version, "path", outputPath, "size", len(payload))

	if _, err = fmt.Fprintln(output(opts), outputPath); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}

	return outputPath, nil
}

// openSession loads settings, resolves the client identity and dials the server.
func openSession(ctx context.Context, opts *Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	clientID, err := common.ResolveClientID(opts.ClientID)
	if err != nil {
		return nil, fmt.Errorf("detect client id: %w", err)
	}

	client, err := common.Dial(
		ctx,
		serverAddress,
		common.WithCallTimeout(cfg.Timeout),
		common.WithMaxMessageSize(cfg.MaxMessageSize),
	)
	if err != nil {
		return nil, fmt.Errorf("dial server: %w", err)
	}

	return &session{
		client:   client,
		clientID: clientID,
		address:  serverAddress,
	}, nil
}

// resolveVersion returns requested, or the last version the server lists when empty.
func resolveVersion(ctx context.Context, s *session, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}

	versions, err := s.client.ListAvailableUpdates(ctx, s.clientID)
	if err != nil {
		return "", err
	}

	if len(versions) == 0 {
		return "", ErrNoVersions
	}

	latest := versions[len(versions)-1]
	logger.InfoKV(ctx, "No version requested, using the last listed one", "version", latest)

	return latest, nil
}

// output returns the configured result writer.
func output(opts *Options) io.Writer {
	if opts.Out != nil {
		return opts.Out
	}

	return os.Stdout
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	api "github.com/oshokin/update-registry/internal/api/grpc/updater"
	"github.com/oshokin/update-registry/internal/config"
	"github.com/oshokin/update-registry/internal/logger"
	pb "github.com/oshokin/update-registry/internal/pb/v1"
	repo "github.com/oshokin/update-registry/internal/repository/artifact"
)

// Options controls the update-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// ManifestFile overrides the manifest path from the configuration.
	ManifestFile string
	// Ready, when set, receives the bound listen address once the server accepts connections.
	Ready chan<- string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC server and blocks until context is canceled or server stops.
// Loads configuration first, then the registry, then determines the listen address.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "update-server")

	settings, err := loadSettings(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}

	settings.ApplyLogLevel()

	manifestFile := settings.ManifestFile
	if opts.ManifestFile != "" {
		manifestFile = opts.ManifestFile
	}

	svc, err := newService(ctx, selectRepository(ctx, manifestFile), settings.MaxMessageSize)
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(api.LoggingInterceptor(ctx)),
		grpc.MaxRecvMsgSize(settings.MaxMessageSize),
		grpc.MaxSendMsgSize(settings.MaxMessageSize),
	)

	pb.RegisterUpdaterServiceServer(grpcServer, api.NewServer(svc))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.UpdaterService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	logger.InfoKV(ctx, "Update server listening", "listen_address", lis.Addr().String(), "manifest_file", manifestFile)

	if opts.Ready != nil {
		opts.Ready <- lis.Addr().String()
	}

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// loadSettings reads the settings file. A missing default file yields the default settings,
// so the server can run with no configuration at all.
func loadSettings(ctx context.Context, configPath string) (*config.Config, error) {
	settings, err := config.Load(configPath)
	if err == nil {
		return settings, nil
	}

	isDefaultPath := configPath == "" || configPath == config.DefaultConfigFilename
	if isDefaultPath && errors.Is(err, os.ErrNotExist) {
		logger.InfoKV(ctx, "No settings file found, using defaults", "server_addr", config.DefaultServerAddress)

		return config.Default(), nil
	}

	return nil, fmt.Errorf("load settings: %w", err)
}

// selectRepository picks the manifest when configured, the demo catalog otherwise.
//
//nolint:ireturn // Callers depend on the Repository abstraction.
func selectRepository(ctx context.Context, manifestFile string) repo.Repository {
	if manifestFile == "" {
		logger.Info(ctx, "No manifest configured, serving the demo catalog")

		return repo.NewStaticRepository(repo.DemoCatalog())
	}

	return repo.NewManifestRepository(manifestFile)
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Bind on all interfaces.
	return ":" + port, nil
}

package server

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"

	domain "github.com/oshokin/update-registry/internal/domain/update"
	"github.com/oshokin/update-registry/internal/logger"
	pb "github.com/oshokin/update-registry/internal/pb/v1"
	repo "github.com/oshokin/update-registry/internal/repository/artifact"
)

// ErrPayloadTooLarge is returned when a version could not be delivered within the message size limit.
var ErrPayloadTooLarge = errors.New("payload exceeds max message size")

// service answers registry queries and logs them.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// registry is the immutable version catalog loaded at start.
	registry *domain.Registry
}

// newService loads artifacts from the repository and builds the registry.
// Every response must fit into maxMessageSize bytes, a non-positive limit disables the check.
func newService(ctx context.Context, repository repo.Repository, maxMessageSize int) (*service, error) {
	artifacts, err := repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load artifacts: %w", err)
	}

	registry, err := domain.NewRegistry(artifacts)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	if err = checkMessageSizes(artifacts, maxMessageSize); err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Update registry loaded", "versions", registry.Len())

	return &service{
		registry: registry,
	}, nil
}

// checkMessageSizes verifies the encoded RequestUpdate response of every artifact fits the limit.
func checkMessageSizes(artifacts []domain.Artifact, maxMessageSize int) error {
	if maxMessageSize <= 0 {
		return nil
	}

	for _, artifact := range artifacts {
		size := proto.Size(&pb.RequestUpdateResponse{
			Data:    artifact.Payload,
			Version: artifact.Version,
		})

		if size > maxMessageSize {
			return fmt.Errorf("%w: version %s needs %d bytes, limit is %d",
				ErrPayloadTooLarge, artifact.Version, size, maxMessageSize)
		}
	}

	return nil
}

// ListVersions returns every registered version.
func (s *service) ListVersions(ctx context.Context, clientID string) []string {
	versions := s.registry.ListVersions(clientID)

	logger.InfoKV(ctx, "Versions listed", "count", len(versions))

	return versions
}

// GetUpdate returns the payload lookup result for a version.
func (s *service) GetUpdate(ctx context.Context, clientID, version string) *domain.Result {
	result := s.registry.GetUpdate(clientID, version)

	if result.Found() {
		logger.InfoKV(ctx, "Update served", "version", version, "size", len(result.Data))
	} else {
		logger.WarnKV(ctx, "Update not found", "version", version)
	}

	return result
}

package updater

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/update-registry/internal/domain/update"
	pb "github.com/oshokin/update-registry/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	ListVersions(ctx context.Context, clientID string) []string
	GetUpdate(ctx context.Context, clientID, version string) *domain.Result
}

// Server implements the UpdaterService gRPC API.
type Server struct {
	pb.UnimplementedUpdaterServiceServer

	// service provides the registry lookups.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// ListAvailableUpdates returns every registered version.
func (s *Server) ListAvailableUpdates(
	ctx context.Context,
	req *pb.ListAvailableUpdatesRequest,
) (*pb.ListAvailableUpdatesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return &pb.ListAvailableUpdatesResponse{
		Versions: s.service.ListVersions(ctx, req.GetClientId()),
	}, nil
}

// RequestUpdate returns the payload of the requested version.
// A missing version is not a gRPC error, it is reported in the response fields.
func (s *Server) RequestUpdate(ctx context.Context, req *pb.RequestUpdateRequest) (*pb.RequestUpdateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result := s.service.GetUpdate(ctx, req.GetClientId(), req.GetVersion())

	return toProtoResult(result, req.GetVersion()), nil
}

// toProtoResult converts a domain.Result to a pb.RequestUpdateResponse protobuf message.
func toProtoResult(result *domain.Result, requested string) *pb.RequestUpdateResponse {
	if result == nil {
		result = domain.NotFound(requested)
	}

	return &pb.RequestUpdateResponse{
		Data:         result.Data,
		Version:      result.Version,
		ErrorCode:    result.ErrorCode,
		ErrorMessage: result.ErrorMessage,
	}
}

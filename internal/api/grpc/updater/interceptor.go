package updater

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/oshokin/update-registry/internal/logger"
)

// clientIdentified is implemented by every UpdaterService request message.
type clientIdentified interface {
	GetClientId() string
}

// LoggingInterceptor returns a unary interceptor that derives a request logger
// from base, stores it in the handler context and logs the call outcome.
func LoggingInterceptor(base context.Context) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		reqLogger := logger.FromContext(base).With("method", info.FullMethod)
		if identified, ok := req.(clientIdentified); ok {
			reqLogger = reqLogger.With("client_id", identified.GetClientId())
		}

		ctx = logger.ToContext(ctx, reqLogger)
		started := time.Now()

		resp, err := handler(ctx, req)

		logger.DebugKV(ctx, "RPC finished", "code", status.Code(err).String(), "duration", time.Since(started))

		if err != nil {
			logger.ErrorKV(ctx, "RPC failed", "error", err)
		}

		return resp, err
	}
}

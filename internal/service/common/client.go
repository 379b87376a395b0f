//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/update-registry/internal/config"
	pb "github.com/oshokin/update-registry/internal/pb/v1"
)

// Client wraps the gRPC UpdaterService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the update server.
	conn *grpc.ClientConn
	// api is the generated UpdaterService client interface.
	api pb.UpdaterServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// maxMessageSize limits received payloads in bytes.
	maxMessageSize int
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithMaxMessageSize raises the limit for received messages.
func WithMaxMessageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxMessageSize = size
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errVersionRequired is returned when an update is requested without a version.
	errVersionRequired = errors.New("version must be provided")

	// ErrUpdateUnavailable is wrapped by UpdateError.
	ErrUpdateUnavailable = errors.New("update unavailable")
)

// UpdateError reports a RequestUpdate response with a non-zero error code.
type UpdateError struct {
	// Version is the requested version.
	Version string
	// Code is the error code reported by the server.
	Code int32
	// Message is the server-provided description.
	Message string
}

// Error implements the error interface.
func (e *UpdateError) Error() string {
	return fmt.Sprintf("update %s unavailable (code %d): %s", e.Version, e.Code, e.Message)
}

// Unwrap allows errors.Is(err, ErrUpdateUnavailable).
func (e *UpdateError) Unwrap() error {
	return ErrUpdateUnavailable
}

// Dial establishes a gRPC connection to the update server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	client := &Client{
		callTimeout:    config.DefaultTimeout,
		maxMessageSize: config.DefaultMaxMessageSize,
	}

	for _, opt := range opts {
		opt(client)
	}

	conn, err := grpc.NewClient(
		address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(client.maxMessageSize)),
	)
	if err != nil {
		return nil, fmt.Errorf("dial update server: %w", err)
	}

	client.conn = conn
	client.api = pb.NewUpdaterServiceClient(conn)

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// ListAvailableUpdates retrieves the versions the server can serve, in server order.
func (c *Client) ListAvailableUpdates(ctx context.Context, clientID string) ([]string, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListAvailableUpdates(callCtx, &pb.ListAvailableUpdatesRequest{ClientId: clientID})
	if err != nil {
		return nil, fmt.Errorf("list available updates: %w", err)
	}

	return resp.GetVersions(), nil
}

// RequestUpdate retrieves the raw response for a version.
// A missing version is not an error here; inspect the response error fields.
func (c *Client) RequestUpdate(ctx context.Context, clientID, version string) (*pb.RequestUpdateResponse, error) {
	if version == "" {
		return nil, errVersionRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.RequestUpdateRequest{
		ClientId: clientID,
		Version:  version,
	}

	response, err := c.api.RequestUpdate(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("request update: %w", err)
	}

	return response, nil
}

// FetchUpdate retrieves the payload of a version, turning a non-zero error code into *UpdateError.
func (c *Client) FetchUpdate(ctx context.Context, clientID, version string) ([]byte, error) {
	response, err := c.RequestUpdate(ctx, clientID, version)
	if err != nil {
		return nil, err
	}

	if err = ResponseError(response, version); err != nil {
		return nil, err
	}

	return response.GetData(), nil
}

// ResponseError converts the error fields of a response into *UpdateError, or nil on success.
func ResponseError(response *pb.RequestUpdateResponse, version string) error {
	if response.GetErrorCode() == 0 {
		return nil
	}

	return &UpdateError{
		Version: version,
		Code:    response.GetErrorCode(),
		Message: response.GetErrorMessage(),
	}
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

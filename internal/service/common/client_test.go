//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pb "github.com/oshokin/update-registry/internal/pb/v1"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestDial_AppliesOptions checks options override defaults and ignore non-positive values.
func TestDial_AppliesOptions(t *testing.T) {
	t.Parallel()

	c, err := Dial(
		context.Background(),
		"127.0.0.1:1",
		WithCallTimeout(time.Second),
		WithMaxMessageSize(1024),
		WithCallTimeout(-1),
		WithMaxMessageSize(0),
	)
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	require.Equal(t, time.Second, c.callTimeout)
	require.Equal(t, 1024, c.maxMessageSize)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	_, hasDeadline := ctx.Deadline()
	require.False(t, hasDeadline)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestRequestUpdate_EmptyVersion asserts that an empty version is rejected by the client.
func TestRequestUpdate_EmptyVersion(t *testing.T) {
	t.Parallel()

	c := new(Client)

	_, err := c.RequestUpdate(context.Background(), "client1", "")
	require.ErrorIs(t, err, errVersionRequired)
}

// TestResponseError maps error fields into *UpdateError.
func TestResponseError(t *testing.T) {
	t.Parallel()

	require.NoError(t, ResponseError(nil, "1.0"))
	require.NoError(t, ResponseError(&pb.RequestUpdateResponse{Version: "1.0", Data: []byte("A")}, "1.0"))

	err := ResponseError(&pb.RequestUpdateResponse{
		Version:      "9.9",
		ErrorCode:    -1,
		ErrorMessage: "version 9.9 not found",
	}, "9.9")
	require.ErrorIs(t, err, ErrUpdateUnavailable)

	var updateErr *UpdateError
	require.True(t, errors.As(err, &updateErr))
	require.Equal(t, int32(-1), updateErr.Code)
	require.Equal(t, "9.9", updateErr.Version)
	require.Contains(t, updateErr.Error(), "version 9.9 not found")
}

// TestDetectClientID ensures the identifier has the username@hostname form.
func TestDetectClientID(t *testing.T) {
	t.Parallel()

	id, err := DetectClientID()
	require.NoError(t, err)

	user, host, ok := strings.Cut(id, "@")
	require.True(t, ok)
	require.NotEmpty(t, user)
	require.NotEmpty(t, host)

	id, err = ResolveClientID("fixed-client")
	require.NoError(t, err)
	require.Equal(t, "fixed-client", id)
}

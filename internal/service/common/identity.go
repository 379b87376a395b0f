//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"os/user"
)

// DetectClientID builds a client identifier from the current user and host
// in the form username@hostname.
func DetectClientID() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}

	return currentUser.Username + "@" + hostname, nil
}

// ResolveClientID returns override when set, otherwise the detected identifier.
func ResolveClientID(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	return DetectClientID()
}

// Package packager writes the artifact manifest served by update-server.
//
// Each "version=path" pair becomes a manifest entry carrying the SHA-512 of the
// payload. When a server address is given, the settings are saved and the
// server is asked for its listing to confirm it is reachable.
package packager

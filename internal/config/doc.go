// Package config defines connection settings used by binaries and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the server gRPC address, the artifact manifest path,
// network timeouts, message size limits and the log level.
package config

// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper for UpdaterService with
// timeouts and message size limits, and utilities to derive the client
// identifier sent with every request.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

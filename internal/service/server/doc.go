// Package server runs the update-registry gRPC server.
//
// Run loads settings, builds the registry from the configured artifact source
// and serves UpdaterService together with the standard gRPC health service
// until the context is canceled.
package server

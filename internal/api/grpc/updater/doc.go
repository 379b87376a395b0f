// Package updater implements the gRPC transport for the update registry.
//
// It adapts domain results to protobuf messages, exposes a server that calls
// into a provided business-service interface and provides a unary interceptor
// that attaches a request-scoped logger.
package updater

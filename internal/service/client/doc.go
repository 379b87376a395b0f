// Package client implements the list and fetch operations of update-client.
//
// Both connect to the update server using the shared settings, identify the
// caller and print their results to the configured writer.
package client

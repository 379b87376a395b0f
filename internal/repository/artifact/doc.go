// Package artifact implements the sources that populate the update registry.
//
// A ManifestRepository reads a YAML manifest listing versions and the files
// holding their payloads, verifying SHA-512 checksums when present. A
// StaticRepository serves a fixed in-memory catalog.
package artifact

// Package updater downloads a version from the update server and applies it to a file.
//
// The payload is verified against an optional expected checksum, running copies
// of the target can be terminated first, and the file is replaced atomically with
// go-update. A marker file next to the target prevents concurrent runs.
package updater

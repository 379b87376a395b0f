// Package update contains the core types of the update registry.
//
// It defines Artifact (one distributable version and its payload), Result (the
// outcome of a payload lookup) and Registry, the immutable version catalog that
// answers listing and lookup queries.
package update

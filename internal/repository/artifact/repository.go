package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/update-registry/internal/domain/update"
	"github.com/oshokin/update-registry/internal/logger"
)

// Repository loads the artifacts a registry is built from.
type Repository interface {
	Load(ctx context.Context) ([]update.Artifact, error)
}

// ManifestRepository reads artifacts listed in a YAML manifest.
type ManifestRepository struct {
	// path is the filesystem location of the manifest.
	path string
}

// NewManifestRepository creates a repository backed by the manifest at path.
func NewManifestRepository(path string) *ManifestRepository {
	return &ManifestRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the manifest and every payload it references, in manifest order.
func (r *ManifestRepository) Load(ctx context.Context) ([]update.Artifact, error) {
	manifest, err := ReadManifest(r.path)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(r.path)
	artifacts := make([]update.Artifact, 0, len(manifest.Versions))

	for _, entry := range manifest.Versions {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		file := entry.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}

		payload, err := os.ReadFile(filepath.Clean(file))
		if err != nil {
			return nil, fmt.Errorf("read payload of version %s: %w", entry.Version, err)
		}

		if err = VerifyChecksum(payload, entry.Checksum); err != nil {
			return nil, fmt.Errorf("version %s: %w", entry.Version, err)
		}

		logger.DebugKV(ctx, "Loaded artifact", "version", entry.Version, "file", file, "size", len(payload))

		artifacts = append(artifacts, update.Artifact{
			Version: entry.Version,
			Payload: payload,
		})
	}

	return artifacts, nil
}

// StaticRepository serves a fixed catalog.
type StaticRepository struct {
	// artifacts is returned by Load in order.
	artifacts []update.Artifact
}

// NewStaticRepository creates a repository returning copies of the provided artifacts.
func NewStaticRepository(artifacts []update.Artifact) *StaticRepository {
	return &StaticRepository{
		artifacts: artifacts,
	}
}

// Load returns a copy of the catalog.
func (r *StaticRepository) Load(_ context.Context) ([]update.Artifact, error) {
	result := make([]update.Artifact, 0, len(r.artifacts))
	for _, artifact := range r.artifacts {
		result = append(result, *artifact.Clone())
	}

	return result, nil
}

// demoPayload is the content of every demo catalog version.
const demoPayload = "download_data"

// DemoCatalog returns the catalog served when no manifest is configured.
func DemoCatalog() []update.Artifact {
	versions := []string{
		"0.10.41",
		"0.6.27",
		"2.5.1",
		"3.3.12",
		"4.13.45",
		"6.18.30",
		"6.20.21",
		"6.5.3",
		"6.8.9",
		"8.9.38",
	}

	artifacts := make([]update.Artifact, 0, len(versions))
	for _, version := range versions {
		artifacts = append(artifacts, update.Artifact{
			Version: version,
			Payload: []byte(demoPayload),
		})
	}

	return artifacts
}

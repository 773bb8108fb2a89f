// Package config loads the catalog and project requests a generation works
// from.
package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nightconcept/initializr-go/internal/core/downloader"
	"github.com/nightconcept/initializr-go/internal/core/hasher"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/project"
)

// Default file names: the catalog looked up inside a catalog directory and
// the request file written by "initz init".
const (
	CatalogFileName = "catalog.toml"
	RequestFileName = "initz.toml"
)

// IsRemote reports whether location is an http(s) URL.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// ReadCatalog returns the raw catalog found at location: an http(s) URL, a
// catalog file, or a directory holding catalog.toml.
func ReadCatalog(ctx context.Context, location string) ([]byte, error) {
	if IsRemote(location) {
		return downloader.DownloadFile(ctx, location)
	}
	path := location
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, CatalogFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return data, nil
}

// LoadCatalog reads, verifies and decodes the catalog at location. When
// expectedDigest is not empty the raw document must match it. The returned
// catalog carries the digest of the document it was decoded from.
func LoadCatalog(ctx context.Context, location, expectedDigest string) (*metadata.Catalog, error) {
	data, err := ReadCatalog(ctx, location)
	if err != nil {
		return nil, err
	}
	if expectedDigest != "" {
		if err := hasher.Verify(data, expectedDigest); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", location, err)
		}
	}
	catalog, err := metadata.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", location, err)
	}
	catalog.Digest = hasher.CalculateSHA256(data)
	return catalog, nil
}

// LoadRequest reads a project request from a TOML file. Fields the file does
// not set keep the defaults of project.NewRequest.
func LoadRequest(path string) (*project.Request, error) {
	req := project.NewRequest()
	if _, err := toml.DecodeFile(path, req); err != nil {
		return nil, fmt.Errorf("failed to decode request %s: %w", path, err)
	}
	return req, nil
}

// WriteRequest encodes req to a TOML file at path, overwriting it if it
// already exists.
func WriteRequest(path string, req *project.Request) error {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(req); err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write request %s: %w", path, err)
	}
	return nil
}

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package workspace reads and writes the site manifest in the current
// working directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the name of the site manifest in the workspace root.
const ManifestFileName = "site.yml"

// Manifest describes a site to deploy.
type Manifest struct {
	// Name is the CloudFormation stack name for the site.
	Name string `yaml:"name"`
	// Domain is the custom domain the site is served under.
	Domain string `yaml:"domain"`
	// DNS provisions a Route 53 hosted zone and alias record for the domain.
	DNS bool `yaml:"dns"`
}

// Workspace lets you interact with the site manifest in a directory.
type Workspace struct {
	fs  afero.Fs
	dir string
}

// Use returns a Workspace rooted at the current working directory.
func Use(fs afero.Fs) (*Workspace, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return &Workspace{fs: fs, dir: dir}, nil
}

// In returns a Workspace rooted at the given directory.
func In(fs afero.Fs, dir string) *Workspace {
	return &Workspace{fs: fs, dir: dir}
}

// ReadManifest parses the manifest file in the workspace.
// Returns ErrManifestNotFound if the file does not exist.
func (ws *Workspace) ReadManifest() (*Manifest, error) {
	path := ws.manifestPath()
	exists, err := afero.Exists(ws.fs, path)
	if err != nil {
		return nil, fmt.Errorf("check if %s exists: %w", path, err)
	}
	if !exists {
		return nil, &ErrManifestNotFound{Path: path}
	}
	raw, err := afero.ReadFile(ws.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest %s is missing the site name", path)
	}
	return &m, nil
}

// WriteManifest writes the manifest to the workspace, overwriting any
// existing one.
func (ws *Workspace) WriteManifest(m *Manifest) (string, error) {
	path := ws.manifestPath()
	raw, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal site manifest: %w", err)
	}
	if err := afero.WriteFile(ws.fs, path, raw, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func (ws *Workspace) manifestPath() string {
	return filepath.Join(ws.dir, ManifestFileName)
}

// ErrManifestNotFound occurs when the workspace has no site manifest.
type ErrManifestNotFound struct {
	Path string
}

func (err *ErrManifestNotFound) Error() string {
	return fmt.Sprintf("site manifest %s does not exist", err.Path)
}

// RecommendActions implements the actionRecommender interface.
func (err *ErrManifestNotFound) RecommendActions() string {
	return `Run "sitestack init" to create a site manifest first.`
}

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"

	"github.com/sitestack/sitestack/internal/pkg/deploy/cloudformation"
	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

// Function-field test doubles for the command collaborators.

type deployerDouble struct {
	DeployStackFn       func(in *cloudformation.DeployStackInput) error
	WaitForCompletionFn func(ctx context.Context, name string) (cloudformation.Outcome, error)
	StatusFn            func(name string) (cloudformation.Outcome, error)
	OutputsFn           func(name string) (map[string]string, error)
	DeleteStackFn       func(name string) error
}

func (d *deployerDouble) DeployStack(in *cloudformation.DeployStackInput) error {
	return d.DeployStackFn(in)
}

func (d *deployerDouble) WaitForCompletion(ctx context.Context, name string) (cloudformation.Outcome, error) {
	return d.WaitForCompletionFn(ctx, name)
}

func (d *deployerDouble) Status(name string) (cloudformation.Outcome, error) {
	return d.StatusFn(name)
}

func (d *deployerDouble) Outputs(name string) (map[string]string, error) {
	return d.OutputsFn(name)
}

func (d *deployerDouble) DeleteStack(name string) error {
	return d.DeleteStackFn(name)
}

type manifestReaderDouble struct {
	ReadManifestFn func() (*workspace.Manifest, error)
}

func (d *manifestReaderDouble) ReadManifest() (*workspace.Manifest, error) {
	return d.ReadManifestFn()
}

type manifestWriterDouble struct {
	WriteManifestFn func(m *workspace.Manifest) (string, error)
}

func (d *manifestWriterDouble) WriteManifest(m *workspace.Manifest) (string, error) {
	return d.WriteManifestFn(m)
}

type progressDouble struct {
	startLabels []string
	stopLabels  []string
}

func (d *progressDouble) Start(label string) { d.startLabels = append(d.startLabels, label) }
func (d *progressDouble) Stop(label string)  { d.stopLabels = append(d.stopLabels, label) }

func stubManifest(m *workspace.Manifest) *manifestReaderDouble {
	return &manifestReaderDouble{
		ReadManifestFn: func() (*workspace.Manifest, error) { return m, nil },
	}
}

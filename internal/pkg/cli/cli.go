// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the sitestack subcommands.
package cli

import (
	"context"

	"github.com/sitestack/sitestack/internal/pkg/deploy/cloudformation"
	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

// deployer submits and tracks site stacks.
type deployer interface {
	DeployStack(in *cloudformation.DeployStackInput) error
	WaitForCompletion(ctx context.Context, name string) (cloudformation.Outcome, error)
	Status(name string) (cloudformation.Outcome, error)
	Outputs(name string) (map[string]string, error)
	DeleteStack(name string) error
}

type manifestReader interface {
	ReadManifest() (*workspace.Manifest, error)
}

type manifestWriter interface {
	WriteManifest(m *workspace.Manifest) (string, error)
}

type progress interface {
	Start(label string)
	Stop(label string)
}

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/pkg/aws/sessions"
	"github.com/sitestack/sitestack/internal/pkg/deploy/cloudformation"
	"github.com/sitestack/sitestack/internal/pkg/term/log"
	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

type statusOpts struct {
	ws       manifestReader
	deployer deployer
}

func newStatusOpts() (*statusOpts, error) {
	ws, err := workspace.Use(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	sess, err := sessions.NewProvider().Default()
	if err != nil {
		return nil, fmt.Errorf("default session: %w", err)
	}
	return &statusOpts{
		ws:       ws,
		deployer: cloudformation.New(sess),
	}, nil
}

// Execute classifies the stack's current events and prints the outcome.
func (o *statusOpts) Execute() error {
	m, err := o.ws.ReadManifest()
	if err != nil {
		return err
	}
	outcome, err := o.deployer.Status(m.Name)
	if err != nil {
		return err
	}
	log.Infoln(fmt.Sprintf("Deployment of stack %s is %s.", m.Name, outcome))
	return nil
}

// BuildStatusCmd builds the command for showing the deployment status.
func BuildStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Shows whether the site deployment succeeded, failed, or is still pending.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := newStatusOpts()
			if err != nil {
				return err
			}
			return opts.Execute()
		},
	}
}

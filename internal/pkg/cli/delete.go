// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/pkg/aws/sessions"
	"github.com/sitestack/sitestack/internal/pkg/deploy/cloudformation"
	"github.com/sitestack/sitestack/internal/pkg/term/log"
	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

type deleteVars struct {
	skipConfirmation bool
}

type deleteOpts struct {
	deleteVars

	ws       manifestReader
	deployer deployer
}

func newDeleteOpts(vars deleteVars) (*deleteOpts, error) {
	ws, err := workspace.Use(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	sess, err := sessions.NewProvider().Default()
	if err != nil {
		return nil, fmt.Errorf("default session: %w", err)
	}
	return &deleteOpts{
		deleteVars: vars,
		ws:         ws,
		deployer:   cloudformation.New(sess),
	}, nil
}

// Validate requires the --yes flag so that a stack is never torn down by accident.
func (o *deleteOpts) Validate() error {
	if !o.skipConfirmation {
		return errors.New(`deleting the stack removes the site's bucket, distribution, and credentials; re-run with "--yes" to confirm`)
	}
	return nil
}

// Execute deletes the site stack.
func (o *deleteOpts) Execute() error {
	m, err := o.ws.ReadManifest()
	if err != nil {
		return err
	}
	if err := o.deployer.DeleteStack(m.Name); err != nil {
		return err
	}
	log.Successf("Requested deletion of stack %s.\n", m.Name)
	return nil
}

// BuildDeleteCmd builds the command for deleting the site stack.
func BuildDeleteCmd() *cobra.Command {
	vars := deleteVars{}
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Deletes the site stack and all of its resources.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := newDeleteOpts(vars)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Execute()
		},
	}
	cmd.Flags().BoolVar(&vars.skipConfirmation, yesFlag, false, yesFlagDescription)
	return cmd
}

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/pkg/aws/sessions"
	"github.com/sitestack/sitestack/internal/pkg/deploy/cloudformation"
	"github.com/sitestack/sitestack/internal/pkg/term/log"
	termprogress "github.com/sitestack/sitestack/internal/pkg/term/progress"
	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

type deployVars struct {
	timeout time.Duration
}

type deployOpts struct {
	deployVars

	ws       manifestReader
	deployer deployer
	spinner  progress
}

func newDeployOpts(vars deployVars) (*deployOpts, error) {
	ws, err := workspace.Use(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	sess, err := sessions.NewProvider().Default()
	if err != nil {
		return nil, fmt.Errorf("default session: %w", err)
	}
	// Reject unusable credentials before any deployment call is made.
	if err := sessions.Validate(sess); err != nil {
		return nil, err
	}
	return &deployOpts{
		deployVars: vars,
		ws:         ws,
		deployer:   cloudformation.New(sess),
		spinner:    termprogress.NewSpinner(log.DiagnosticWriter),
	}, nil
}

// Execute submits the site stack and waits until CloudFormation reports a
// terminal outcome.
func (o *deployOpts) Execute() error {
	m, err := o.ws.ReadManifest()
	if err != nil {
		return err
	}
	if err := o.deployer.DeployStack(&cloudformation.DeployStackInput{
		Name:       m.Name,
		Domain:     m.Domain,
		DNSEnabled: m.DNS,
		Tags:       map[string]string{"sitestack-site": m.Name},
	}); err != nil {
		return fmt.Errorf("deploy stack %s: %w", m.Name, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()
	o.spinner.Start(fmt.Sprintf("Deploying stack %s.", m.Name))
	outcome, err := o.deployer.WaitForCompletion(ctx, m.Name)
	if err != nil {
		o.spinner.Stop(log.Serrorf("Failed to deploy stack %s.\n", m.Name))
		return err
	}
	if outcome == cloudformation.OutcomeFailed {
		o.spinner.Stop(log.Serrorf("Failed to deploy stack %s.\n", m.Name))
		return &errDeploymentFailed{name: m.Name}
	}
	o.spinner.Stop(log.Ssuccessf("Deployed stack %s.\n", m.Name))

	return o.printOutputs(m.Name)
}

func (o *deployOpts) printOutputs(name string) error {
	outputs, err := o.deployer.Outputs(name)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(outputs))
	for k := range outputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		log.Infoln(fmt.Sprintf("%s: %s", k, outputs[k]))
	}
	return nil
}

// BuildDeployCmd builds the command for deploying the site stack.
func BuildDeployCmd() *cobra.Command {
	vars := deployVars{}
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys the site stack described by the manifest.",
		Example: `
  Deploy the site and wait for at most ten minutes.
  /code $ sitestack deploy --timeout 10m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := newDeployOpts(vars)
			if err != nil {
				return err
			}
			return opts.Execute()
		},
	}
	cmd.Flags().DurationVar(&vars.timeout, timeoutFlag, defaultDeployTimeout, timeoutFlagDescription)
	return cmd
}

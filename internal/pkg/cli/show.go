// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/pkg/aws/sessions"
	"github.com/sitestack/sitestack/internal/pkg/deploy/cloudformation"
	"github.com/sitestack/sitestack/internal/pkg/term/log"
	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

type showOpts struct {
	ws       manifestReader
	deployer deployer
}

func newShowOpts() (*showOpts, error) {
	ws, err := workspace.Use(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	sess, err := sessions.NewProvider().Default()
	if err != nil {
		return nil, fmt.Errorf("default session: %w", err)
	}
	return &showOpts{
		ws:       ws,
		deployer: cloudformation.New(sess),
	}, nil
}

// Execute prints the stack outputs, such as the bucket name and the publish
// credentials, keyed by their internal tokens.
func (o *showOpts) Execute() error {
	m, err := o.ws.ReadManifest()
	if err != nil {
		return err
	}
	outputs, err := o.deployer.Outputs(m.Name)
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

// BuildShowCmd builds the command for printing the stack outputs.
func BuildShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Shows the outputs of the deployed site stack.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := newShowOpts()
			if err != nil {
				return err
			}
			return opts.Execute()
		},
	}
}

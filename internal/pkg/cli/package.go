// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/pkg/template"
	"github.com/sitestack/sitestack/internal/pkg/term/log"
	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

type packageOpts struct {
	ws manifestReader
	w  io.Writer
}

func newPackageOpts() (*packageOpts, error) {
	ws, err := workspace.Use(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	return &packageOpts{
		ws: ws,
		w:  log.OutputWriter,
	}, nil
}

// Execute prints the CloudFormation template that deploy would submit.
func (o *packageOpts) Execute() error {
	m, err := o.ws.ReadManifest()
	if err != nil {
		return err
	}
	tpl := template.Compose(template.Config{DNSEnabled: m.DNS})
	if err := tpl.Validate(); err != nil {
		return fmt.Errorf("validate template: %w", err)
	}
	body, err := tpl.Body()
	if err != nil {
		return err
	}
	fmt.Fprintln(o.w, body)
	return nil
}

// BuildPackageCmd builds the command for printing the site stack's template.
func BuildPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package",
		Short: "Prints the CloudFormation template of the site stack.",
		Example: `
  Print the template that "sitestack deploy" would submit.
  /code $ sitestack package > stack.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := newPackageOpts()
			if err != nil {
				return err
			}
			return opts.Execute()
		},
	}
}

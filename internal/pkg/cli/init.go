// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/pkg/term/log"
	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

type initVars struct {
	name   string
	domain string
	dns    bool
}

type initOpts struct {
	initVars

	ws manifestWriter
}

func newInitOpts(vars initVars) (*initOpts, error) {
	ws, err := workspace.Use(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	return &initOpts{
		initVars: vars,
		ws:       ws,
	}, nil
}

// Validate returns an error if the required flags are missing.
func (o *initOpts) Validate() error {
	if o.name == "" {
		return errors.New("site name is required")
	}
	if o.domain == "" {
		return errors.New("site domain is required")
	}
	return nil
}

// Execute writes the site manifest to the working directory.
func (o *initOpts) Execute() error {
	path, err := o.ws.WriteManifest(&workspace.Manifest{
		Name:   o.name,
		Domain: o.domain,
		DNS:    o.dns,
	})
	if err != nil {
		return err
	}
	log.Successf("Wrote the site manifest to %s.\n", path)
	log.Infoln(fmt.Sprintf(`Update %s if your site configuration changes, then run "sitestack deploy".`, path))
	return nil
}

// BuildInitCmd builds the command for creating a site manifest.
func BuildInitCmd() *cobra.Command {
	vars := initVars{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Creates a site manifest in the current directory.",
		Example: `
  Create a manifest for a site with its own hosted zone.
  /code $ sitestack init --name my-site --domain example.com --dns`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := newInitOpts(vars)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Execute()
		},
	}
	cmd.Flags().StringVar(&vars.name, nameFlag, "", nameFlagDescription)
	cmd.Flags().StringVar(&vars.domain, domainFlag, "", domainFlagDescription)
	cmd.Flags().BoolVar(&vars.dns, dnsFlag, false, dnsFlagDescription)
	return cmd
}

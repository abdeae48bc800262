// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/pkg/cli"
	"github.com/sitestack/sitestack/internal/pkg/term/log"
	"github.com/sitestack/sitestack/internal/pkg/version"
)

type actionRecommender interface {
	RecommendActions() string
}

func init() {
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error(err.Error())
		var ac actionRecommender
		if errors.As(err, &ac) {
			log.Infoln(ac.RecommendActions())
		}
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitestack",
		Short: "Deploy a static website to AWS: S3 bucket, CloudFront distribution, publish credentials, optional DNS.",
		Example: `
  Displays the help menu for the "deploy" command.
  /code $ sitestack deploy --help`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If we don't set a Run() function the help menu doesn't show up.
			// See https://github.com/spf13/cobra/issues/790
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	cmd.Version = version.Version
	cmd.SetVersionTemplate("sitestack version: {{.Version}}\n")

	// The order below affects the help menu output ordering.
	cmd.AddCommand(cli.BuildInitCmd())
	cmd.AddCommand(cli.BuildPackageCmd())
	cmd.AddCommand(cli.BuildDeployCmd())
	cmd.AddCommand(cli.BuildStatusCmd())
	cmd.AddCommand(cli.BuildShowCmd())
	cmd.AddCommand(cli.BuildDeleteCmd())
	return cmd
}

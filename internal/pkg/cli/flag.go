// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import "time"

// Long flag names.
const (
	nameFlag    = "name"
	domainFlag  = "domain"
	dnsFlag     = "dns"
	timeoutFlag = "timeout"
	yesFlag     = "yes"
)

// Descriptions for flags.
const (
	nameFlagDescription    = "Name of the CloudFormation stack for the site."
	domainFlagDescription  = "Custom domain the site is served under."
	dnsFlagDescription     = "Provision a Route 53 hosted zone and alias record for the domain."
	timeoutFlagDescription = "How long to wait for the deployment to finish."
	yesFlagDescription     = "Skips the confirmation prompt."
)

const defaultDeployTimeout = 30 * time.Minute

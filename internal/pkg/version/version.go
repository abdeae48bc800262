// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the current version of the CLI.
package version

// Version is this build's version. Overridden at linking time with -ldflags.
var Version = "v0.1.0"

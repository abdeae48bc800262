//go:build windows

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	spin "github.com/briandowns/spinner"
)

// Non-unicode spinner frames for older windows terminals.
var charset = spin.CharSets[9]

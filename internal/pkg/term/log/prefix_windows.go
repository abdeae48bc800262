//go:build windows

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

const (
	successPrefix = "Success!"
	errorPrefix   = "Error!"
)

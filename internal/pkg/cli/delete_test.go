// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

func TestDeleteOpts_Validate(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		opts := &deleteOpts{}
		require.Error(t, opts.Validate())
	})
	t.Run("passes with --yes", func(t *testing.T) {
		opts := &deleteOpts{deleteVars: deleteVars{skipConfirmation: true}}
		require.NoError(t, opts.Validate())
	})
}

func TestDeleteOpts_Execute(t *testing.T) {
	var deleted string
	opts := &deleteOpts{
		deleteVars: deleteVars{skipConfirmation: true},
		ws: stubManifest(&workspace.Manifest{
			Name:   "my-site",
			Domain: "example.com",
		}),
		deployer: &deployerDouble{
			DeleteStackFn: func(name string) error {
				deleted = name
				return nil
			},
		},
	}

	err := opts.Execute()

	require.NoError(t, err)
	require.Equal(t, "my-site", deleted)
}

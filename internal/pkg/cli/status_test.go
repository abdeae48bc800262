// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitestack/sitestack/internal/pkg/deploy/cloudformation"
	"github.com/sitestack/sitestack/internal/pkg/workspace"
)

func TestStatusOpts_Execute(t *testing.T) {
	testCases := map[string]struct {
		deployer *deployerDouble

		wantedErr string
	}{
		"fail if the events cannot be fetched": {
			deployer: &deployerDouble{
				StatusFn: func(name string) (cloudformation.Outcome, error) {
					return cloudformation.OutcomePending, errors.New("some error")
				},
			},
			wantedErr: "some error",
		},
		"prints the outcome": {
			deployer: &deployerDouble{
				StatusFn: func(name string) (cloudformation.Outcome, error) {
					return cloudformation.OutcomeSucceeded, nil
				},
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			opts := &statusOpts{
				ws:       stubManifest(&workspace.Manifest{Name: "my-site"}),
				deployer: tc.deployer,
			}

			err := opts.Execute()

			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestShowOpts_Execute(t *testing.T) {
	opts := &showOpts{
		ws: stubManifest(&workspace.Manifest{Name: "my-site"}),
		deployer: &deployerDouble{
			OutputsFn: func(name string) (map[string]string, error) {
				return map[string]string{
					"bucket-name":  "my-site-bucket",
					"site-cdn-url": "d111111abcdef8.cloudfront.net",
				}, nil
			},
		},
	}

	require.NoError(t, opts.Execute())
}

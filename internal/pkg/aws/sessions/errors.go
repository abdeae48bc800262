// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

import "errors"

type errMissingRegion struct{}

func (e *errMissingRegion) Error() string {
	return "missing region configuration"
}

// RecommendActions implements the actionRecommender interface.
func (e *errMissingRegion) RecommendActions() string {
	return `It looks like your AWS region configuration is missing.
Set the region with either "aws configure" or the AWS_REGION environment variable.`
}

// ErrInvalidCredentials occurs when the session's credentials are missing or malformed.
// The deployment is aborted before any API call is made.
type ErrInvalidCredentials struct {
	parentErr error
}

func (err *ErrInvalidCredentials) Error() string {
	if err.parentErr != nil {
		return "invalid AWS credentials: " + err.parentErr.Error()
	}
	return "invalid AWS credentials: access key id or secret access key is empty"
}

// Unwrap returns the original error.
func (err *ErrInvalidCredentials) Unwrap() error {
	return err.parentErr
}

// Is returns true if the target is also an ErrInvalidCredentials.
func (err *ErrInvalidCredentials) Is(target error) bool {
	var other *ErrInvalidCredentials
	return errors.As(target, &other)
}

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"strings"

	"github.com/aws/aws-sdk-go/service/cloudformation"
)

// StackStatus represents the status of a stack.
type StackStatus string

// requiresCleanup returns true if the stack was created, but failed and should be deleted.
func (ss StackStatus) requiresCleanup() bool {
	return cloudformation.StackStatusRollbackComplete == string(ss) || cloudformation.StackStatusRollbackFailed == string(ss)
}

// InProgress returns true if the stack is currently transitioning.
func (ss StackStatus) InProgress() bool {
	return strings.HasSuffix(string(ss), "IN_PROGRESS")
}

// IsSuccess returns true if the stack mutated successfully.
func (ss StackStatus) IsSuccess() bool {
	return cloudformation.StackStatusCreateComplete == string(ss) ||
		cloudformation.StackStatusUpdateComplete == string(ss) ||
		cloudformation.StackStatusDeleteComplete == string(ss)
}

// IsFailure returns true if the stack failed to mutate.
func (ss StackStatus) IsFailure() bool {
	return cloudformation.StackStatusCreateFailed == string(ss) ||
		cloudformation.StackStatusDeleteFailed == string(ss) ||
		cloudformation.StackStatusRollbackInProgress == string(ss) ||
		cloudformation.StackStatusRollbackComplete == string(ss) ||
		cloudformation.StackStatusRollbackFailed == string(ss)
}

// String implements the fmt.Stringer interface.
func (ss StackStatus) String() string {
	return string(ss)
}

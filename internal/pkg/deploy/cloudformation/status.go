// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/aws-sdk-go/aws"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"

	awscfn "github.com/sitestack/sitestack/internal/pkg/aws/cloudformation"
)

// rootStackResourceType is the resource type CloudFormation uses in event
// logs for the top-level stack itself, as opposed to any nested resource.
const rootStackResourceType = "AWS::CloudFormation::Stack"

// Outcome is the classification of a deployment from a stack event snapshot.
type Outcome int

// The deployment outcomes, from least to most settled.
const (
	OutcomePending Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

// IsTerminal returns true once the stack has finished transitioning.
// Re-running the classifier on a growing event log can move the outcome from
// pending to a terminal value, never backward.
func (o Outcome) IsTerminal() bool {
	return o != OutcomePending
}

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// IsSucceeded returns true if the snapshot contains an event where the root
// stack reached CREATE_COMPLETE. The whole log is scanned because the
// terminal event is not necessarily the last one appended; events for nested
// resources never influence the result.
func IsSucceeded(events []awscfn.StackEvent) bool {
	return containsRootStackStatus(events, sdkcloudformation.ResourceStatusCreateComplete)
}

// IsFailed returns true if the snapshot contains an event where the root
// stack reached ROLLBACK_COMPLETE.
func IsFailed(events []awscfn.StackEvent) bool {
	return containsRootStackStatus(events, sdkcloudformation.StackStatusRollbackComplete)
}

// OutcomeOf classifies a stack event snapshot. A log that contains both
// terminal events, such as one from a reused stack name, classifies as
// failed: a rolled-back stack is not serving the site no matter what it did
// earlier.
func OutcomeOf(events []awscfn.StackEvent) Outcome {
	if IsFailed(events) {
		return OutcomeFailed
	}
	if IsSucceeded(events) {
		return OutcomeSucceeded
	}
	return OutcomePending
}

func containsRootStackStatus(events []awscfn.StackEvent, status string) bool {
	for _, event := range events {
		if aws.StringValue(event.ResourceType) != rootStackResourceType {
			continue
		}
		if aws.StringValue(event.ResourceStatus) == status {
			return true
		}
	}
	return false
}

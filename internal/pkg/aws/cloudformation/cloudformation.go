// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudformation provides a client to make API requests to AWS CloudFormation.
package cloudformation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/google/uuid"
)

const (
	// The client request token must match [a-zA-Z0-9][-a-zA-Z0-9]*. The
	// prefix guarantees the token starts with a letter even when the UUID
	// starts with a digit.
	fmtRequestToken = "sitestack-%s"
)

var waiters = []request.WaiterOption{
	request.WithWaiterDelay(request.ConstantWaiterDelay(5 * time.Second)),
	request.WithWaiterMaxAttempts(360), // Wait for at most 30 mins for a deletion.
}

type api interface {
	CreateStack(*cloudformation.CreateStackInput) (*cloudformation.CreateStackOutput, error)
	DescribeStacks(*cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
	DeleteStack(*cloudformation.DeleteStackInput) (*cloudformation.DeleteStackOutput, error)
	DescribeStackEvents(*cloudformation.DescribeStackEventsInput) (*cloudformation.DescribeStackEventsOutput, error)
	WaitUntilStackDeleteCompleteWithContext(aws.Context, *cloudformation.DescribeStacksInput, ...request.WaiterOption) error
}

// StackDescription is an alias for the SDK's stack description.
type StackDescription cloudformation.Stack

// StackEvent is an alias for the SDK's stack event.
type StackEvent cloudformation.StackEvent

// CloudFormation represents a client to make requests to AWS CloudFormation.
type CloudFormation struct {
	client api
}

// New creates a new CloudFormation client scoped to the session's region.
func New(s *session.Session) *CloudFormation {
	return &CloudFormation{
		client: cloudformation.New(s),
	}
}

// Create submits the stack to CloudFormation.
// The stack is created with the IAM capability since the template creates
// IAM principals. If a previous creation attempt rolled back, the dead stack
// is deleted and re-created. If the stack exists in any other state, returns
// ErrStackAlreadyExists or ErrStackUpdateInProgress.
func (c *CloudFormation) Create(stack *Stack) error {
	descr, err := c.Describe(stack.Name)
	if err != nil {
		var notFound *ErrStackNotFound
		if !errors.As(err, &notFound) {
			return err
		}
		return c.create(stack)
	}
	status := StackStatus(aws.StringValue(descr.StackStatus))
	if status.requiresCleanup() {
		if err := c.DeleteAndWait(stack.Name); err != nil {
			return fmt.Errorf("clean up previously failed stack %s: %w", stack.Name, err)
		}
		return c.create(stack)
	}
	if status.InProgress() {
		return &ErrStackUpdateInProgress{
			Name: stack.Name,
		}
	}
	return &ErrStackAlreadyExists{
		Name:  stack.Name,
		Stack: descr,
	}
}

// Describe returns a description of an existing stack.
// If the stack does not exist, returns ErrStackNotFound.
func (c *CloudFormation) Describe(name string) (*StackDescription, error) {
	out, err := c.client.DescribeStacks(&cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if stackDoesNotExist(err) {
			return nil, &ErrStackNotFound{name: name}
		}
		return nil, fmt.Errorf("describe stack %s: %w", name, err)
	}
	if len(out.Stacks) == 0 {
		return nil, &ErrStackNotFound{name: name}
	}
	descr := StackDescription(*out.Stacks[0])
	return &descr, nil
}

// Exists returns true if the CloudFormation stack exists, false otherwise.
// If an error occurs for another reason than ErrStackNotFound, then returns the error.
func (c *CloudFormation) Exists(name string) (bool, error) {
	if _, err := c.Describe(name); err != nil {
		var notFound *ErrStackNotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes an existing CloudFormation stack.
// If the stack doesn't exist then do nothing.
func (c *CloudFormation) Delete(name string) error {
	if _, err := c.client.DeleteStack(&cloudformation.DeleteStackInput{
		StackName: aws.String(name),
	}); err != nil {
		if !stackDoesNotExist(err) {
			return fmt.Errorf("delete stack %s: %w", name, err)
		}
		// Move on if the stack is already deleted.
	}
	return nil
}

// DeleteAndWait calls Delete then blocks until the stack is deleted or until the max attempt window expires.
func (c *CloudFormation) DeleteAndWait(name string) error {
	if _, err := c.client.DeleteStack(&cloudformation.DeleteStackInput{
		StackName: aws.String(name),
	}); err != nil {
		if !stackDoesNotExist(err) {
			return fmt.Errorf("delete stack %s: %w", name, err)
		}
		return nil // If the stack is already deleted, don't wait for it.
	}
	err := c.client.WaitUntilStackDeleteCompleteWithContext(context.Background(), &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	}, waiters...)
	if err != nil {
		return fmt.Errorf("wait until stack %s delete is complete: %w", name, err)
	}
	return nil
}

// Outputs returns the outputs of an existing stack, keyed by their wire-cased output key.
func (c *CloudFormation) Outputs(name string) (map[string]string, error) {
	descr, err := c.Describe(name)
	if err != nil {
		return nil, fmt.Errorf("retrieve outputs of stack description: %w", err)
	}
	outputs := make(map[string]string)
	for _, output := range descr.Outputs {
		outputs[aws.StringValue(output.OutputKey)] = aws.StringValue(output.OutputValue)
	}
	return outputs, nil
}

// Events returns the list of stack events in **chronological** order.
func (c *CloudFormation) Events(name string) ([]StackEvent, error) {
	var nextToken *string
	var events []StackEvent
	for {
		out, err := c.client.DescribeStackEvents(&cloudformation.DescribeStackEventsInput{
			NextToken: nextToken,
			StackName: aws.String(name),
		})
		if err != nil {
			return nil, fmt.Errorf("describe stack events for stack %s: %w", name, err)
		}
		for _, event := range out.StackEvents {
			events = append(events, StackEvent(*event))
		}
		nextToken = out.NextToken
		if nextToken == nil {
			break
		}
	}
	// DescribeStackEvents returns events in reverse chronological order, newest first.
	for i := len(events)/2 - 1; i >= 0; i-- {
		opp := len(events) - 1 - i
		events[i], events[opp] = events[opp], events[i]
	}
	return events, nil
}

func (c *CloudFormation) create(stack *Stack) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("generate client request token: %w", err)
	}
	_, err = c.client.CreateStack(&cloudformation.CreateStackInput{
		StackName:          aws.String(stack.Name),
		TemplateBody:       aws.String(stack.TemplateBody),
		Parameters:         stack.parameters,
		Tags:               stack.tags,
		ClientRequestToken: aws.String(fmt.Sprintf(fmtRequestToken, id.String())),
		Capabilities: aws.StringSlice([]string{
			cloudformation.CapabilityCapabilityIam,
		}),
	})
	if err != nil {
		return fmt.Errorf("create stack %s: %w", stack.Name, err)
	}
	return nil
}

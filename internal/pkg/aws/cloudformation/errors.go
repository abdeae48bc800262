// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

// ErrStackNotFound occurs when a CloudFormation stack does not exist.
type ErrStackNotFound struct {
	name string
}

func (err *ErrStackNotFound) Error() string {
	return fmt.Sprintf("stack named %s cannot be found", err.name)
}

// ErrStackAlreadyExists occurs when a CloudFormation stack with the same name already exists.
type ErrStackAlreadyExists struct {
	Name  string
	Stack *StackDescription
}

func (err *ErrStackAlreadyExists) Error() string {
	return fmt.Sprintf("stack %s already exists", err.Name)
}

// ErrStackUpdateInProgress occurs when a CloudFormation stack is already being updated by another process.
type ErrStackUpdateInProgress struct {
	Name string
}

func (err *ErrStackUpdateInProgress) Error() string {
	return fmt.Sprintf("stack %s is currently being updated and cannot be deployed to", err.Name)
}

// stackDoesNotExist returns true if the underlying error is a stack doesn't exist.
func stackDoesNotExist(err error) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}
	if aerr.Code() != "ValidationError" {
		return false
	}
	// A ValidationError is returned for both a non-existent stack and invalid templates.
	return strings.Contains(aerr.Message(), "does not exist")
}

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudformation deploys the synthesized site template through the
// AWS CloudFormation client and classifies deployment progress from stack
// event snapshots.
package cloudformation

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"

	awscfn "github.com/sitestack/sitestack/internal/pkg/aws/cloudformation"
	"github.com/sitestack/sitestack/internal/pkg/template"
)

// checkInterval is how long to wait between event snapshots while a
// deployment is in flight.
const checkInterval = 5 * time.Second

type stackClient interface {
	Create(stack *awscfn.Stack) error
	Delete(name string) error
	Events(name string) ([]awscfn.StackEvent, error)
	Outputs(name string) (map[string]string, error)
}

// CloudFormation wraps the CloudFormation client to deploy site stacks.
type CloudFormation struct {
	cfnClient stackClient
}

// New returns a deployer configured against the session's region and credentials.
func New(sess *session.Session) *CloudFormation {
	return &CloudFormation{
		cfnClient: awscfn.New(sess),
	}
}

// DeployStackInput holds the fields required to create a site stack.
type DeployStackInput struct {
	// Name is the CloudFormation stack name.
	Name string
	// Domain is the custom domain the site is served under.
	Domain string
	// DNSEnabled provisions a Route 53 hosted zone and alias record for Domain.
	DNSEnabled bool
	// Tags are applied to the stack and propagated to its resources.
	Tags map[string]string
}

// DeployStack synthesizes the template for the input configuration and
// submits it. The template is validated before submission so that a
// composition bug surfaces locally instead of as a remote rollback.
// The call returns as soon as the stack creation is accepted; callers poll
// Status or WaitForCompletion for the result.
func (cf *CloudFormation) DeployStack(in *DeployStackInput) error {
	tpl := template.Compose(template.Config{DNSEnabled: in.DNSEnabled})
	if err := tpl.Validate(); err != nil {
		return fmt.Errorf("validate template for stack %s: %w", in.Name, err)
	}
	body, err := tpl.Body()
	if err != nil {
		return fmt.Errorf("serialize template for stack %s: %w", in.Name, err)
	}
	bindings := template.Bindings(map[string]string{
		template.ParamDomain: in.Domain,
	})
	params := make([]*sdkcloudformation.Parameter, len(bindings))
	for i, b := range bindings {
		params[i] = &sdkcloudformation.Parameter{ParameterKey: aws.String(b.Key), ParameterValue: aws.String(b.Value)}
	}
	stack := awscfn.NewStack(in.Name, body,
		awscfn.WithParameters(params),
		awscfn.WithTags(in.Tags))
	return cf.cfnClient.Create(stack)
}

// Status returns the deployment outcome for the stack's current event log.
func (cf *CloudFormation) Status(name string) (Outcome, error) {
	events, err := cf.cfnClient.Events(name)
	if err != nil {
		return OutcomePending, err
	}
	return OutcomeOf(events), nil
}

// WaitForCompletion polls the stack's events until the deployment reaches a
// terminal outcome or the context is done. The timeout policy belongs to the
// caller through ctx.
func (cf *CloudFormation) WaitForCompletion(ctx context.Context, name string) (Outcome, error) {
	for {
		outcome, err := cf.Status(name)
		if err != nil {
			return OutcomePending, err
		}
		if outcome.IsTerminal() {
			return outcome, nil
		}
		select {
		case <-ctx.Done():
			return OutcomePending, fmt.Errorf("wait for completion of stack %s: %w", name, ctx.Err())
		case <-time.After(checkInterval):
		}
	}
}

// Outputs returns the stack outputs keyed by their internal tokens, such as
// "bucket-name" or "secret-access-key".
func (cf *CloudFormation) Outputs(name string) (map[string]string, error) {
	wireOutputs, err := cf.cfnClient.Outputs(name)
	if err != nil {
		return nil, fmt.Errorf("get outputs of stack %s: %w", name, err)
	}
	outputs := make(map[string]string, len(wireOutputs))
	for k, v := range wireOutputs {
		outputs[template.ToInternalKey(k)] = v
	}
	return outputs, nil
}

// DeleteStack removes the site stack. Deleting a stack that does not exist
// is not an error.
func (cf *CloudFormation) DeleteStack(name string) error {
	return cf.cfnClient.Delete(name)
}

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/sitestack/sitestack/internal/pkg/aws/cloudformation/mocks"
)

var (
	mockStack = NewStack("my-site", `{"Resources":{}}`)

	errDoesNotExist = awserr.New("ValidationError", "Stack with id my-site does not exist", nil)
)

func TestCloudFormation_Create(t *testing.T) {
	testCases := map[string]struct {
		inStack    *Stack
		createMock func(ctrl *gomock.Controller) api
		wantedErr  error
	}{
		"fail if checking the stack description fails": {
			inStack: mockStack,
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(&cloudformation.DescribeStacksInput{
					StackName: aws.String(mockStack.Name),
				}).Return(nil, errors.New("some unexpected error"))
				return m
			},
			wantedErr: fmt.Errorf("describe stack %s: %w", mockStack.Name, errors.New("some unexpected error")),
		},
		"fail if a stack exists that's already in progress": {
			inStack: mockStack,
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(gomock.Any()).Return(&cloudformation.DescribeStacksOutput{
					Stacks: []*cloudformation.Stack{
						{
							StackStatus: aws.String(cloudformation.StackStatusCreateInProgress),
						},
					},
				}, nil)
				return m
			},
			wantedErr: &ErrStackUpdateInProgress{
				Name: mockStack.Name,
			},
		},
		"fail if a successfully created stack already exists": {
			inStack: mockStack,
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(gomock.Any()).Return(&cloudformation.DescribeStacksOutput{
					Stacks: []*cloudformation.Stack{
						{
							StackStatus: aws.String(cloudformation.StackStatusCreateComplete),
						},
					},
				}, nil)
				return m
			},
			wantedErr: &ErrStackAlreadyExists{
				Name: mockStack.Name,
				Stack: &StackDescription{
					StackStatus: aws.String(cloudformation.StackStatusCreateComplete),
				},
			},
		},
		"creates the stack if it doesn't exist": {
			inStack: mockStack,
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(gomock.Any()).Return(nil, errDoesNotExist)
				m.EXPECT().CreateStack(gomock.Any()).DoAndReturn(
					func(in *cloudformation.CreateStackInput) (*cloudformation.CreateStackOutput, error) {
						require.Equal(t, mockStack.Name, aws.StringValue(in.StackName))
						require.Equal(t, mockStack.TemplateBody, aws.StringValue(in.TemplateBody))
						require.Equal(t, []string{cloudformation.CapabilityCapabilityIam}, aws.StringValueSlice(in.Capabilities))
						require.NotEmpty(t, aws.StringValue(in.ClientRequestToken))
						return &cloudformation.CreateStackOutput{}, nil
					})
				return m
			},
		},
		"deletes and re-creates the stack if a previous attempt rolled back": {
			inStack: mockStack,
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(gomock.Any()).Return(&cloudformation.DescribeStacksOutput{
					Stacks: []*cloudformation.Stack{
						{
							StackStatus: aws.String(cloudformation.StackStatusRollbackComplete),
						},
					},
				}, nil)
				m.EXPECT().DeleteStack(&cloudformation.DeleteStackInput{
					StackName: aws.String(mockStack.Name),
				}).Return(&cloudformation.DeleteStackOutput{}, nil)
				m.EXPECT().WaitUntilStackDeleteCompleteWithContext(gomock.Any(), &cloudformation.DescribeStacksInput{
					StackName: aws.String(mockStack.Name),
				}, gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().CreateStack(gomock.Any()).Return(&cloudformation.CreateStackOutput{}, nil)
				return m
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{
				client: tc.createMock(ctrl),
			}

			err := c.Create(tc.inStack)

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCloudFormation_Describe(t *testing.T) {
	testCases := map[string]struct {
		createMock  func(ctrl *gomock.Controller) api
		wantedDescr *StackDescription
		wantedErr   error
	}{
		"return ErrStackNotFound if the stack does not exist": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(gomock.Any()).Return(nil, errDoesNotExist)
				return m
			},
			wantedErr: &ErrStackNotFound{name: mockStack.Name},
		},
		"return ErrStackNotFound if the response is empty": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(gomock.Any()).Return(&cloudformation.DescribeStacksOutput{}, nil)
				return m
			},
			wantedErr: &ErrStackNotFound{name: mockStack.Name},
		},
		"returns the description of the first stack": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(&cloudformation.DescribeStacksInput{
					StackName: aws.String(mockStack.Name),
				}).Return(&cloudformation.DescribeStacksOutput{
					Stacks: []*cloudformation.Stack{
						{
							StackName:   aws.String(mockStack.Name),
							StackStatus: aws.String(cloudformation.StackStatusCreateComplete),
						},
					},
				}, nil)
				return m
			},
			wantedDescr: &StackDescription{
				StackName:   aws.String(mockStack.Name),
				StackStatus: aws.String(cloudformation.StackStatusCreateComplete),
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{
				client: tc.createMock(ctrl),
			}

			descr, err := c.Describe(mockStack.Name)

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedDescr, descr)
		})
	}
}

func TestCloudFormation_Exists(t *testing.T) {
	testCases := map[string]struct {
		createMock func(ctrl *gomock.Controller) api
		wanted     bool
		wantedErr  error
	}{
		"false if the stack does not exist": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(gomock.Any()).Return(nil, errDoesNotExist)
				return m
			},
			wanted: false,
		},
		"true if the stack exists": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(gomock.Any()).Return(&cloudformation.DescribeStacksOutput{
					Stacks: []*cloudformation.Stack{
						{
							StackStatus: aws.String(cloudformation.StackStatusCreateComplete),
						},
					},
				}, nil)
				return m
			},
			wanted: true,
		},
		"propagate unexpected errors": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DescribeStacks(gomock.Any()).Return(nil, errors.New("some unexpected error"))
				return m
			},
			wantedErr: fmt.Errorf("describe stack %s: %w", mockStack.Name, errors.New("some unexpected error")),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{
				client: tc.createMock(ctrl),
			}

			exists, err := c.Exists(mockStack.Name)

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wanted, exists)
		})
	}
}

func TestCloudFormation_Events(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockapi(ctrl)
	// Events are returned newest first across two pages.
	m.EXPECT().DescribeStackEvents(&cloudformation.DescribeStackEventsInput{
		StackName: aws.String(mockStack.Name),
	}).Return(&cloudformation.DescribeStackEventsOutput{
		StackEvents: []*cloudformation.StackEvent{
			{EventId: aws.String("3")},
			{EventId: aws.String("2")},
		},
		NextToken: aws.String("token"),
	}, nil)
	m.EXPECT().DescribeStackEvents(&cloudformation.DescribeStackEventsInput{
		StackName: aws.String(mockStack.Name),
		NextToken: aws.String("token"),
	}).Return(&cloudformation.DescribeStackEventsOutput{
		StackEvents: []*cloudformation.StackEvent{
			{EventId: aws.String("1")},
		},
	}, nil)
	c := CloudFormation{client: m}

	events, err := c.Events(mockStack.Name)

	require.NoError(t, err)
	require.Equal(t, []StackEvent{
		{EventId: aws.String("1")},
		{EventId: aws.String("2")},
		{EventId: aws.String("3")},
	}, events)
}

func TestCloudFormation_Delete(t *testing.T) {
	testCases := map[string]struct {
		createMock func(ctrl *gomock.Controller) api
		wantedErr  error
	}{
		"do nothing if the stack is already deleted": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DeleteStack(gomock.Any()).Return(nil, errDoesNotExist)
				return m
			},
		},
		"wrap unexpected errors": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DeleteStack(gomock.Any()).Return(nil, errors.New("some unexpected error"))
				return m
			},
			wantedErr: fmt.Errorf("delete stack %s: %w", mockStack.Name, errors.New("some unexpected error")),
		},
		"deletes the stack": {
			createMock: func(ctrl *gomock.Controller) api {
				m := mocks.NewMockapi(ctrl)
				m.EXPECT().DeleteStack(&cloudformation.DeleteStackInput{
					StackName: aws.String(mockStack.Name),
				}).Return(&cloudformation.DeleteStackOutput{}, nil)
				return m
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{
				client: tc.createMock(ctrl),
			}

			err := c.Delete(mockStack.Name)

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCloudFormation_Outputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockapi(ctrl)
	m.EXPECT().DescribeStacks(gomock.Any()).Return(&cloudformation.DescribeStacksOutput{
		Stacks: []*cloudformation.Stack{
			{
				Outputs: []*cloudformation.Output{
					{
						OutputKey:   aws.String("BucketName"),
						OutputValue: aws.String("my-site-bucket-13kj13"),
					},
				},
			},
		},
	}, nil)
	c := CloudFormation{client: m}

	outputs, err := c.Outputs(mockStack.Name)

	require.NoError(t, err)
	require.Equal(t, map[string]string{"BucketName": "my-site-bucket-13kj13"}, outputs)
}

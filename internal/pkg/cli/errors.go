// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// errDeploymentFailed occurs when CloudFormation rolled the stack back.
type errDeploymentFailed struct {
	name string
}

func (err *errDeploymentFailed) Error() string {
	return fmt.Sprintf("deployment of stack %s failed and was rolled back", err.name)
}

// RecommendActions implements the actionRecommender interface.
func (err *errDeploymentFailed) RecommendActions() string {
	return fmt.Sprintf(`Check the events of stack %s in the CloudFormation console to find the resource that failed,
then run "sitestack deploy" again.`, err.name)
}

// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package template synthesizes the CloudFormation template for a static
// website hosting stack. The template is modeled as typed values with
// symbolic intrinsic references between resources; all keys are internal
// kebab-case tokens until the template is serialized for submission.
package template

import "fmt"

// Parameter declares an input value for the template.
type Parameter struct {
	Type string
}

// Resource is a single resource descriptor: a fixed CloudFormation type tag
// and a property map. Property values may be literals, References, nested
// property maps, or lists of any of these.
type Resource struct {
	Type       string
	Properties map[string]interface{}
}

// Output is a named value exported by the stack once it is created.
type Output struct {
	Value       interface{}
	Description string
}

// Template is an immutable description of the full stack: parameters,
// resources keyed by their internal identifier, and outputs.
type Template struct {
	Description string
	Parameters  map[string]Parameter
	Resources   map[string]Resource
	Outputs     map[string]Output
}

// Config is the input that shapes template composition.
type Config struct {
	// DNSEnabled adds a Route 53 hosted zone and an alias record for the
	// site domain, along with their outputs.
	DNSEnabled bool
}

// Validate checks that every reference target in the template resolves to a
// resource or a parameter. Composition guarantees this by construction;
// Validate makes the guarantee checkable.
func (t *Template) Validate() error {
	for id, r := range t.Resources {
		for _, target := range referenceTargets(r.Properties) {
			if err := t.checkTarget(target); err != nil {
				return fmt.Errorf("resource %s: %w", id, err)
			}
		}
	}
	for name, out := range t.Outputs {
		for _, target := range referenceTargets(out.Value) {
			if err := t.checkTarget(target); err != nil {
				return fmt.Errorf("output %s: %w", name, err)
			}
		}
	}
	return nil
}

func (t *Template) checkTarget(target string) error {
	if _, ok := t.Resources[target]; ok {
		return nil
	}
	if _, ok := t.Parameters[target]; ok {
		return nil
	}
	return &ErrDanglingReference{Target: target}
}

// referenceTargets walks an arbitrary property value and collects the target
// identifiers of every reference found in it.
func referenceTargets(v interface{}) []string {
	switch v := v.(type) {
	case Ref:
		return []string{v.Target}
	case GetAtt:
		return []string{v.Target}
	case Join:
		var targets []string
		for _, part := range v.Parts {
			targets = append(targets, referenceTargets(part)...)
		}
		return targets
	case map[string]interface{}:
		var targets []string
		for _, nested := range v {
			targets = append(targets, referenceTargets(nested)...)
		}
		return targets
	case []interface{}:
		var targets []string
		for _, nested := range v {
			targets = append(targets, referenceTargets(nested)...)
		}
		return targets
	default:
		return nil
	}
}

// ErrDanglingReference occurs when a reference points at an identifier that
// is neither a resource nor a parameter of the template.
type ErrDanglingReference struct {
	Target string
}

func (err *ErrDanglingReference) Error() string {
	return fmt.Sprintf("reference target %s does not exist in the template", err.Target)
}

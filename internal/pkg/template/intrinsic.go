// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

// Reference is a symbolic pointer that CloudFormation resolves when the
// stack is created. References are opaque to the rest of the module: nothing
// here ever evaluates one. The union is closed; Ref, GetAtt and Join are the
// only implementations.
type Reference interface {
	isReference()
}

// Ref points at the canonical identity of a resource or parameter.
type Ref struct {
	Target string
}

// GetAtt points at a named attribute of a resource, such as its generated
// domain name. The attribute is an internal kebab-case token and is converted
// to wire casing at serialization time.
type GetAtt struct {
	Target    string
	Attribute string
}

// Join concatenates its parts with no separator. Parts are literal strings
// and References, in order.
type Join struct {
	Parts []interface{}
}

func (Ref) isReference()    {}
func (GetAtt) isReference() {}
func (Join) isReference()   {}

// RefTo returns a Ref to the given identifier. It does not check that the
// identifier exists; the composer guarantees that by construction order.
func RefTo(target string) Ref {
	return Ref{Target: target}
}

// AttOf returns a GetAtt for the given identifier and attribute token.
func AttOf(target, attribute string) GetAtt {
	return GetAtt{Target: target, Attribute: attribute}
}

// JoinOf returns a Join over the given parts.
func JoinOf(parts ...interface{}) Join {
	return Join{Parts: parts}
}

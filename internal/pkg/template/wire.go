// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// CloudFormation wants PascalCase keys on the wire while the rest of this
// module works with kebab-case tokens. The transform is a bijection so that
// stack output keys can be mapped back to internal tokens. Initialisms that
// CloudFormation spells in full caps are listed here; a segment found in the
// table keeps its wire spelling (for example dns-name <-> DNSName).
var wireInitialisms = map[string]string{
	"dns": "DNS",
}

var wireInitialismsInverse = func() map[string]string {
	inv := make(map[string]string, len(wireInitialisms))
	for k, v := range wireInitialisms {
		inv[v] = k
	}
	return inv
}()

// ToWireKey converts an internal kebab-case token to its wire casing:
// "site-bucket" becomes "SiteBucket".
func ToWireKey(key string) string {
	segments := strings.Split(key, "-")
	var b strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if wire, ok := wireInitialisms[seg]; ok {
			b.WriteString(wire)
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}

// ToInternalKey is the inverse of ToWireKey: "SiteBucket" becomes
// "site-bucket" and "DNSName" becomes "dns-name".
func ToInternalKey(key string) string {
	var segments []string
	runes := []rune(key)
	start := 0
	for i := 1; i < len(runes); i++ {
		prevUpper := unicode.IsUpper(runes[i-1])
		currUpper := unicode.IsUpper(runes[i])
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		// A new segment starts at an upper-case rune that either follows a
		// lower-case rune or ends an initialism run.
		if currUpper && (!prevUpper || nextLower) {
			segments = append(segments, string(runes[start:i]))
			start = i
		}
	}
	segments = append(segments, string(runes[start:]))

	for i, seg := range segments {
		if internal, ok := wireInitialismsInverse[seg]; ok {
			segments[i] = internal
			continue
		}
		segments[i] = strings.ToLower(seg)
	}
	return strings.Join(segments, "-")
}

// Binding pairs a wire-cased parameter key with its value. The slice order
// carries no meaning; CloudFormation matches parameters by key.
type Binding struct {
	Key   string
	Value string
}

// Bindings converts a configuration value map into the parameter bindings
// expected on the wire. Keys are converted to wire casing here and nowhere
// earlier.
func Bindings(values map[string]string) []Binding {
	bindings := make([]Binding, 0, len(values))
	for k, v := range values {
		bindings = append(bindings, Binding{Key: ToWireKey(k), Value: v})
	}
	return bindings
}

// Body serializes the template to the JSON document submitted to
// CloudFormation, converting every key to wire casing and expanding
// references into intrinsic function calls.
func (t *Template) Body() (string, error) {
	doc := map[string]interface{}{
		"Description": t.Description,
		"Parameters":  wireMap(parameterMaps(t.Parameters)),
		"Resources":   wireMap(resourceMaps(t.Resources)),
		"Outputs":     wireMap(outputMaps(t.Outputs)),
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal template to JSON: %w", err)
	}
	return string(raw), nil
}

func parameterMaps(params map[string]Parameter) map[string]interface{} {
	m := make(map[string]interface{}, len(params))
	for name, p := range params {
		m[name] = map[string]interface{}{"type": p.Type}
	}
	return m
}

func resourceMaps(resources map[string]Resource) map[string]interface{} {
	m := make(map[string]interface{}, len(resources))
	for id, r := range resources {
		m[id] = map[string]interface{}{
			"type":       r.Type,
			"properties": r.Properties,
		}
	}
	return m
}

func outputMaps(outputs map[string]Output) map[string]interface{} {
	m := make(map[string]interface{}, len(outputs))
	for name, o := range outputs {
		m[name] = map[string]interface{}{
			"value":       o.Value,
			"description": o.Description,
		}
	}
	return m
}

// wireValue rewrites a property value for the wire: map keys are converted
// to wire casing and references become intrinsic function objects.
func wireValue(v interface{}) interface{} {
	switch v := v.(type) {
	case Ref:
		return map[string]interface{}{"Ref": ToWireKey(v.Target)}
	case GetAtt:
		return map[string]interface{}{
			"Fn::GetAtt": []interface{}{ToWireKey(v.Target), ToWireKey(v.Attribute)},
		}
	case Join:
		parts := make([]interface{}, len(v.Parts))
		for i, part := range v.Parts {
			parts[i] = wireValue(part)
		}
		return map[string]interface{}{
			"Fn::Join": []interface{}{"", parts},
		}
	case map[string]interface{}:
		return wireMap(v)
	case []interface{}:
		converted := make([]interface{}, len(v))
		for i, nested := range v {
			converted[i] = wireValue(nested)
		}
		return converted
	default:
		return v
	}
}

// wireMap converts every key of the map to wire casing, recursively.
func wireMap(m map[string]interface{}) map[string]interface{} {
	converted := make(map[string]interface{}, len(m))
	for k, v := range m {
		converted[ToWireKey(k)] = wireValue(v)
	}
	return converted
}

// Copyright 2026 The slow-learner-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package openapi lowers a Term to an OpenAPI 3 schema document using
// github.com/getkin/kin-openapi: Unions become oneOf, Records become
// object with required computed from the absence of Missing,
// Collections/Mappings become array/additionalProperties.
package openapi

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/nj-vs-vh/slow-learner-go/emit"
	"github.com/nj-vs-vh/slow-learner-go/term"
)

// Target emits an OpenAPI 3 schema document wrapping the lowered Term
// under opts.TypeName.
type Target struct{}

// New returns a ready-to-use OpenAPI emitter.
func New() *Target { return &Target{} }

var _ emit.Target = (*Target)(nil)

// Emit lowers snapshot to a *openapi3.Schema, wraps it in a minimal
// components document keyed by opts.TypeName, and serializes it.
// opts.TargetVersion selects the output encoding: "yaml" (default) or
// "json".
func (t *Target) Emit(snapshot term.Term, opts emit.Options) (string, error) {
	if opts.TypeName == "" {
		return "", fmt.Errorf("emit/openapi: Options.TypeName is required")
	}

	schema := lower(snapshot)
	doc := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       opts.TypeName,
			"description": opts.Doc,
			"version":     defaultVersion(opts.TargetVersion),
		},
		"components": map[string]any{
			"schemas": map[string]any{
				opts.TypeName: schema,
			},
		},
	}

	if strings.EqualFold(opts.TargetVersion, "json") {
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func defaultVersion(v string) string {
	if v == "" || strings.EqualFold(v, "yaml") || strings.EqualFold(v, "json") {
		return "0.1.0"
	}
	return v
}

// lower converts t into an OpenAPI schema soundly admitting every value
// t admits.
func lower(t term.Term) *openapi3.Schema {
	switch v := t.(type) {
	case term.None:
		s := openapi3.NewSchema()
		s.Nullable = true
		return s
	case term.Missing:
		// Only meaningful as a Union member; handled by lowerUnion's
		// required-field computation. Standalone it degrades to "any".
		return openapi3.NewSchema()
	case term.Literal:
		return lowerScalar(v.Value, true)
	case term.Opaque:
		return lowerOpaqueTag(v.Tag)
	case term.Tuple:
		return lowerTuple(v)
	case term.Collection:
		s := openapi3.NewArraySchema()
		s.Items = openapi3.NewSchemaRef("", lower(v.Elem))
		return s
	case term.Mapping:
		s := openapi3.NewObjectSchema()
		s.AdditionalProperties = openapi3.AdditionalProperties{
			Schema: openapi3.NewSchemaRef("", lower(v.Value)),
		}
		return s
	case term.Record:
		return lowerRecord(v)
	case term.Union:
		return lowerUnion(v)
	default:
		return openapi3.NewSchema()
	}
}

func lowerTuple(v term.Tuple) *openapi3.Schema {
	s := openapi3.NewArraySchema()
	s.MinItems = uint64(len(v.Items))
	maxItems := uint64(len(v.Items))
	s.MaxItems = &maxItems
	prefix := make(openapi3.SchemaRefs, len(v.Items))
	for i, item := range v.Items {
		prefix[i] = openapi3.NewSchemaRef("", lower(item))
	}
	// The v3.0.3 document here has no prefixItems (a 3.1-only concept), so
	// a tuple is an array of exactly len(Items) elements whose items
	// schema is the union (oneOf when it has several members) of the
	// positional element types. Description records the arity only; the
	// per-position types are not recorded.
	s.Items = openapi3.NewSchemaRef("", lowerUnion(term.Union{Members: v.Items}))
	s.Description = fmt.Sprintf("fixed-arity tuple of %d elements", len(v.Items))
	return s
}

func lowerRecord(v term.Record) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	s.Properties = make(openapi3.Schemas, len(v.Fields))

	names := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		names = append(names, k)
	}
	sort.Strings(names)

	required := make([]string, 0, len(names))
	for _, k := range names {
		ft := v.Fields[k]
		if !fieldOptional(ft) {
			required = append(required, k)
		}
		s.Properties[k] = openapi3.NewSchemaRef("", lower(stripMissing(ft)))
	}
	s.Required = required
	return s
}

func fieldOptional(t term.Term) bool {
	u, ok := t.(term.Union)
	if !ok {
		return false
	}
	for _, m := range u.Members {
		if _, isMissing := m.(term.Missing); isMissing {
			return true
		}
	}
	return false
}

func stripMissing(t term.Term) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	members := make([]term.Term, 0, len(u.Members))
	for _, m := range u.Members {
		if _, isMissing := m.(term.Missing); isMissing {
			continue
		}
		members = append(members, m)
	}
	return term.Union{Members: members}
}

func lowerUnion(v term.Union) *openapi3.Schema {
	members := make([]term.Term, 0, len(v.Members))
	for _, m := range v.Members {
		if _, isMissing := m.(term.Missing); isMissing {
			continue
		}
		members = append(members, m)
	}
	switch len(members) {
	case 0:
		return openapi3.NewSchema()
	case 1:
		return lower(members[0])
	default:
		s := openapi3.NewSchema()
		s.OneOf = make(openapi3.SchemaRefs, len(members))
		for i, m := range members {
			s.OneOf[i] = openapi3.NewSchemaRef("", lower(m))
		}
		return s
	}
}

func lowerScalar(s term.Scalar, literal bool) *openapi3.Schema {
	switch s.Kind {
	case term.KindInt:
		sc := openapi3.NewIntegerSchema()
		if literal {
			f, _ := s.Int.Float64()
			sc.Enum = []any{f}
		}
		return sc
	case term.KindString:
		sc := openapi3.NewStringSchema()
		if literal {
			sc.Enum = []any{s.Str}
		}
		return sc
	case term.KindBytes:
		sc := openapi3.NewBytesSchema()
		return sc
	case term.KindBool:
		sc := openapi3.NewBoolSchema()
		if literal {
			sc.Enum = []any{s.Bool}
		}
		return sc
	case term.KindEnum:
		sc := openapi3.NewStringSchema()
		sc.Enum = []any{s.EnumTag}
		sc.Description = "enum: " + s.EnumType
		return sc
	default:
		return openapi3.NewSchema()
	}
}

func lowerOpaqueTag(tag string) *openapi3.Schema {
	switch tag {
	case "int":
		return openapi3.NewIntegerSchema()
	case "str":
		return openapi3.NewStringSchema()
	case "bool":
		return openapi3.NewBoolSchema()
	case "bytes":
		return openapi3.NewBytesSchema()
	case "float":
		return openapi3.NewFloat64Schema()
	case "dict":
		s := openapi3.NewObjectSchema()
		s.AdditionalProperties = openapi3.AdditionalProperties{Has: boolPtr(true)}
		return s
	case "list", "set":
		return openapi3.NewArraySchema()
	default:
		s := openapi3.NewSchema()
		s.Description = "opaque runtime type: " + tag
		return s
	}
}

func boolPtr(b bool) *bool { return &b }

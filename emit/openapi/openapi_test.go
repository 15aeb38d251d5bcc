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

package openapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nj-vs-vh/slow-learner-go/emit"
	"github.com/nj-vs-vh/slow-learner-go/emit/openapi"
	"github.com/nj-vs-vh/slow-learner-go/term"
)

func TestEmitRequiresTypeName(t *testing.T) {
	_, err := openapi.New().Emit(term.Opaque{Tag: "str"}, emit.Options{})
	assert.Error(t, err)
}

func TestEmitRecordBecomesObjectWithRequired(t *testing.T) {
	rec := term.Record{Fields: map[string]term.Term{
		"name": term.Opaque{Tag: "str"},
		"nick": term.Union{Members: []term.Term{term.Opaque{Tag: "str"}, term.Missing{}}},
	}}
	out, err := openapi.New().Emit(rec, emit.Options{TypeName: "Person", TargetVersion: "json"})
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "object"`)
	assert.Contains(t, out, `"name"`)
	assert.Contains(t, out, `"required"`)
}

func TestEmitUnionBecomesOneOf(t *testing.T) {
	u := term.Union{Members: []term.Term{term.Opaque{Tag: "str"}, term.Opaque{Tag: "int"}}}
	out, err := openapi.New().Emit(u, emit.Options{TypeName: "Either", TargetVersion: "json"})
	require.NoError(t, err)
	assert.Contains(t, out, "oneOf")
}

func TestEmitCollectionBecomesArray(t *testing.T) {
	coll := term.Collection{Tag: "list", Elem: term.Opaque{Tag: "int"}}
	out, err := openapi.New().Emit(coll, emit.Options{TypeName: "Nums", TargetVersion: "json"})
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "array"`)
}

func TestEmitYAMLDefault(t *testing.T) {
	out, err := openapi.New().Emit(term.Opaque{Tag: "str"}, emit.Options{TypeName: "S"})
	require.NoError(t, err)
	assert.Contains(t, out, "openapi:")
}

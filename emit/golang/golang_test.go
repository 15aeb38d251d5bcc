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

package golang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nj-vs-vh/slow-learner-go/emit"
	"github.com/nj-vs-vh/slow-learner-go/emit/golang"
	"github.com/nj-vs-vh/slow-learner-go/term"
)

func TestEmitRequiresTypeName(t *testing.T) {
	_, err := golang.New().Emit(term.Opaque{Tag: "str"}, emit.Options{})
	assert.Error(t, err)
}

func TestEmitRecordProducesStruct(t *testing.T) {
	rec := term.Record{Fields: map[string]term.Term{
		"name": term.Opaque{Tag: "str"},
		"age":  term.Opaque{Tag: "int"},
	}}
	out, err := golang.New().Emit(rec, emit.Options{TypeName: "person"})
	require.NoError(t, err)
	assert.Contains(t, out, "type Person struct {")
	assert.Contains(t, out, "Name string")
	assert.Contains(t, out, "Age int64")
	assert.Contains(t, out, `json:"name"`)
}

func TestEmitOptionalFieldBecomesPointerWithOmitempty(t *testing.T) {
	rec := term.Record{Fields: map[string]term.Term{
		"nickname": term.Union{Members: []term.Term{term.Opaque{Tag: "str"}, term.Missing{}}},
	}}
	out, err := golang.New().Emit(rec, emit.Options{TypeName: "person"})
	require.NoError(t, err)
	assert.Contains(t, out, "*string")
	assert.Contains(t, out, `json:"nickname,omitempty"`)
}

func TestEmitCollectionBecomesSlice(t *testing.T) {
	coll := term.Collection{Tag: "list", Elem: term.Opaque{Tag: "int"}}
	out, err := golang.New().Emit(coll, emit.Options{TypeName: "nums"})
	require.NoError(t, err)
	assert.Contains(t, out, "[]int64")
}

func TestEmitTupleBecomesStructWithItemFields(t *testing.T) {
	tup := term.Tuple{Items: []term.Term{term.Opaque{Tag: "str"}, term.Opaque{Tag: "int"}}}
	out, err := golang.New().Emit(tup, emit.Options{TypeName: "pair"})
	require.NoError(t, err)
	assert.Contains(t, out, "Item1 string")
	assert.Contains(t, out, "Item2 int64")
}

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

package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nj-vs-vh/slow-learner-go/ingest"
)

func TestFromJSONClassifiesWholeNumbersAsInt(t *testing.T) {
	v, err := ingest.FromJSON(strings.NewReader(`{"a": 1, "b": 1.5, "c": "x"}`))
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(1), m["a"])
	assert.Equal(t, 1.5, m["b"])
	assert.Equal(t, "x", m["c"])
}

func TestFromJSONNestedArrays(t *testing.T) {
	v, err := ingest.FromJSON(strings.NewReader(`[1, 2, [3, 4]]`))
	require.NoError(t, err)

	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 3)
	assert.Equal(t, int64(1), arr[0])
	nested, ok := arr[2].([]any)
	require.True(t, ok)
	assert.Equal(t, int64(3), nested[0])
}

func TestFromJSONInvalidInput(t *testing.T) {
	_, err := ingest.FromJSON(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestFromYAMLPreservesIntVsFloat(t *testing.T) {
	v, err := ingest.FromYAML(strings.NewReader("a: 1\nb: 1.5\n"))
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, m["a"])
	assert.Equal(t, 1.5, m["b"])
}

func TestJSONSequenceSpreadsTopLevelArray(t *testing.T) {
	samples, err := ingest.JSONSequence(strings.NewReader(`[{"a":1},{"a":2}]`))
	require.NoError(t, err)
	require.Len(t, samples, 2)

	first, ok := samples[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(1), first["a"])
}

func TestJSONSequenceRejectsNonArray(t *testing.T) {
	_, err := ingest.JSONSequence(strings.NewReader(`{"a":1}`))
	assert.Error(t, err)
}

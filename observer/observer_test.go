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

package observer_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/nj-vs-vh/slow-learner-go/config"
	"github.com/nj-vs-vh/slow-learner-go/observer"
	"github.com/nj-vs-vh/slow-learner-go/term"
)

func mustConfig(t *testing.T, opts ...config.Option) config.Config {
	t.Helper()
	cfg, err := config.New(opts...)
	qt.Assert(t, qt.IsNil(err))
	return cfg
}

func TestObserveNil(t *testing.T) {
	cfg := mustConfig(t)
	got := observer.Observe(nil, cfg)
	qt.Assert(t, qt.IsTrue(term.Equal(got, term.None{})))
}

func TestObserveScalarBecomesLiteralUnderDefaultFan(t *testing.T) {
	cfg := mustConfig(t)
	got := observer.Observe("hello", cfg)
	want := term.Literal{Value: term.StringScalar("hello")}
	qt.Assert(t, qt.IsTrue(term.Equal(got, want)))
}

func TestObserveFloatIsAlwaysOpaque(t *testing.T) {
	cfg := mustConfig(t)
	got := observer.Observe(3.5, cfg)
	qt.Assert(t, qt.IsTrue(term.Equal(got, term.Opaque{Tag: "float"})))
}

func TestObserveLongStringBecomesOpaque(t *testing.T) {
	cfg := mustConfig(t, config.WithMaxLiteralStringLength(3))
	got := observer.Observe("abcdef", cfg)
	qt.Assert(t, qt.IsTrue(term.Equal(got, term.Opaque{Tag: "str"})))
}

func TestObserveZeroMaxLiteralFanDisablesLiterals(t *testing.T) {
	cfg := mustConfig(t, config.WithMaxLiteralFan(0))
	got := observer.Observe(int64(5), cfg)
	qt.Assert(t, qt.IsTrue(term.Equal(got, term.Opaque{Tag: "int"})))
}

func TestObserveNoLiteralPattern(t *testing.T) {
	cfg := mustConfig(t, config.WithNoLiteralPatterns(`\.secret$`))
	got := observer.Observe(map[string]any{"secret": "topsecret"}, cfg)
	rec, ok := got.(term.Record)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(term.Equal(rec.Fields["secret"], term.Opaque{Tag: "str"})))
}

func TestObserveMapStringAnyBecomesRecord(t *testing.T) {
	cfg := mustConfig(t)
	got := observer.Observe(map[string]any{"a": int64(1), "b": "x"}, cfg)
	rec, ok := got.(term.Record)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(rec.Fields, 2))
}

func TestObserveMapBecomesMappingWhenRecordsDisabled(t *testing.T) {
	cfg := mustConfig(t, config.WithLearnRecords(false))
	got := observer.Observe(map[string]any{"a": int64(1)}, cfg)
	_, ok := got.(term.Mapping)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestObserveHomogeneousListBecomesCollection(t *testing.T) {
	cfg := mustConfig(t)
	got := observer.Observe([]any{int64(1), int64(2), int64(3)}, cfg)
	c, ok := got.(term.Collection)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c.Tag, "list"))
	elemUnion, ok := c.Elem.(term.Union)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(elemUnion.Members, 3))
}

func TestObserveTupleWrapper(t *testing.T) {
	cfg := mustConfig(t)
	got := observer.Observe(observer.Tuple{Items: []any{int64(1), "x"}}, cfg)
	tup, ok := got.(term.Tuple)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(tup.Items, 2))
}

func TestObserveDepthCutoff(t *testing.T) {
	cfg := mustConfig(t, config.WithMaxDepth(1))
	nested := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": int64(1),
			},
		},
	}
	got := observer.Observe(nested, cfg)
	rec, ok := got.(term.Record)
	qt.Assert(t, qt.IsTrue(ok))
	inner, ok := rec.Fields["a"].(term.Record)
	qt.Assert(t, qt.IsTrue(ok))
	_, cutoff := inner.Fields["b"].(term.Opaque)
	qt.Assert(t, qt.IsTrue(cutoff))
}

type stoplight struct{ tag string }

func (s stoplight) EnumType() string { return "Stoplight" }
func (s stoplight) EnumTag() string  { return s.tag }

func TestObserveEnum(t *testing.T) {
	cfg := mustConfig(t)
	got := observer.Observe(stoplight{tag: "RED"}, cfg)
	want := term.Literal{Value: term.EnumScalar("Stoplight", "RED")}
	qt.Assert(t, qt.IsTrue(term.Equal(got, want)))
}

func TestObserveDeterministicOrderIndependence(t *testing.T) {
	cfg := mustConfig(t)
	a := observer.Observe(map[string]any{"x": int64(1), "y": "z"}, cfg)
	b := observer.Observe(map[string]any{"y": "z", "x": int64(1)}, cfg)
	qt.Assert(t, qt.IsTrue(term.Equal(a, b)))
}

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

package term_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/nj-vs-vh/slow-learner-go/term"
)

func TestEqualBasics(t *testing.T) {
	qt.Assert(t, qt.IsTrue(term.Equal(term.None{}, term.None{})))
	qt.Assert(t, qt.IsFalse(term.Equal(term.None{}, term.Missing{})))
	qt.Assert(t, qt.IsTrue(term.Equal(term.Opaque{Tag: "int"}, term.Opaque{Tag: "int"})))
	qt.Assert(t, qt.IsFalse(term.Equal(term.Opaque{Tag: "int"}, term.Opaque{Tag: "str"})))

	a := term.Literal{Value: term.IntScalar(3)}
	b := term.Literal{Value: term.IntScalar(3)}
	c := term.Literal{Value: term.IntScalar(4)}
	qt.Assert(t, qt.IsTrue(term.Equal(a, b)))
	qt.Assert(t, qt.IsFalse(term.Equal(a, c)))
}

func TestEqualUnionIsSetSemantic(t *testing.T) {
	u1 := term.Union{Members: []term.Term{term.Opaque{Tag: "int"}, term.Opaque{Tag: "str"}}}
	u2 := term.Union{Members: []term.Term{term.Opaque{Tag: "str"}, term.Opaque{Tag: "int"}}}
	qt.Assert(t, qt.IsTrue(term.Equal(u1, u2)))

	u3 := term.Union{Members: []term.Term{
		term.Opaque{Tag: "int"}, term.Opaque{Tag: "str"}, term.Opaque{Tag: "int"},
	}}
	qt.Assert(t, qt.IsTrue(term.Equal(u1, u3)))

	u4 := term.Union{Members: []term.Term{term.Opaque{Tag: "int"}}}
	qt.Assert(t, qt.IsFalse(term.Equal(u1, u4)))
}

func TestEqualRecordIsUnorderedMap(t *testing.T) {
	r1 := term.Record{Fields: map[string]term.Term{
		"a": term.Opaque{Tag: "int"},
		"b": term.Opaque{Tag: "str"},
	}}
	r2 := term.Record{Fields: map[string]term.Term{
		"b": term.Opaque{Tag: "str"},
		"a": term.Opaque{Tag: "int"},
	}}
	qt.Assert(t, qt.IsTrue(term.Equal(r1, r2)))

	r3 := term.Record{Fields: map[string]term.Term{"a": term.Opaque{Tag: "int"}}}
	qt.Assert(t, qt.IsFalse(term.Equal(r1, r3)))
}

func TestIsSubtypeNumericTower(t *testing.T) {
	boolT := term.Opaque{Tag: "bool"}
	intT := term.Opaque{Tag: "int"}
	floatT := term.Opaque{Tag: "float"}

	qt.Assert(t, qt.IsTrue(term.IsSubtype(boolT, intT)))
	qt.Assert(t, qt.IsTrue(term.IsSubtype(intT, floatT)))
	qt.Assert(t, qt.IsTrue(term.IsSubtype(boolT, floatT)))
	qt.Assert(t, qt.IsFalse(term.IsSubtype(floatT, intT)))
	qt.Assert(t, qt.IsFalse(term.IsSubtype(intT, intT))) // strict, not reflexive
}

func TestIsSubtypeLiteralOpaque(t *testing.T) {
	lit := term.Literal{Value: term.IntScalar(7)}
	qt.Assert(t, qt.IsTrue(term.IsSubtype(lit, term.Opaque{Tag: "int"})))
	qt.Assert(t, qt.IsTrue(term.IsSubtype(lit, term.Opaque{Tag: "float"})))
	qt.Assert(t, qt.IsFalse(term.IsSubtype(lit, term.Opaque{Tag: "str"})))
}

func TestIsSubtypeCollectionsInvariant(t *testing.T) {
	ints := term.Collection{Tag: "list", Elem: term.Opaque{Tag: "int"}}
	floats := term.Collection{Tag: "list", Elem: term.Opaque{Tag: "float"}}
	qt.Assert(t, qt.IsFalse(term.IsSubtype(ints, floats)))
	qt.Assert(t, qt.IsFalse(term.IsSubtype(floats, ints)))
}

func TestIsSubtypeRecordWidthAndDepth(t *testing.T) {
	wide := term.Record{Fields: map[string]term.Term{
		"a": term.Opaque{Tag: "int"},
		"b": term.Opaque{Tag: "str"},
	}}
	narrow := term.Record{Fields: map[string]term.Term{
		"a": term.Opaque{Tag: "bool"},
	}}
	qt.Assert(t, qt.IsTrue(term.IsSubtype(narrow, wide)))
	qt.Assert(t, qt.IsFalse(term.IsSubtype(wide, narrow)))
}

func TestIsSubtypeUnionRules(t *testing.T) {
	u := term.Union{Members: []term.Term{term.Opaque{Tag: "bool"}, term.Opaque{Tag: "int"}}}
	qt.Assert(t, qt.IsTrue(term.IsSubtype(u, term.Opaque{Tag: "float"})))
	qt.Assert(t, qt.IsTrue(term.IsSubtypeOrEqual(term.Opaque{Tag: "int"}, u)))
	qt.Assert(t, qt.IsFalse(term.IsSubtypeOrEqual(term.Opaque{Tag: "str"}, u)))
}

func TestDumpIsStableAcrossUnionMemberOrder(t *testing.T) {
	a := term.Union{Members: []term.Term{term.Opaque{Tag: "int"}, term.Opaque{Tag: "str"}}}
	b := term.Union{Members: []term.Term{term.Opaque{Tag: "str"}, term.Opaque{Tag: "int"}}}
	got, want := term.Dump(a), term.Dump(b)
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestIsSubtypeNeverPanics(t *testing.T) {
	term.NominalSubclass = func(sub, super string) bool {
		panic("probe failure")
	}
	defer func() { term.NominalSubclass = nil }()

	result := term.IsSubtype(term.Opaque{Tag: "Dog"}, term.Opaque{Tag: "Animal"})
	qt.Assert(t, qt.IsFalse(result))
}

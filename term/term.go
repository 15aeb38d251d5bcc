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

// Package term implements the type lattice: the algebraic representation
// of inferred types (the Term variants), structural equality over that
// representation, and the subtype relation used by the simplifier and the
// learner to keep accumulated type descriptions sound.
package term

// Term is the sealed tagged-variant type at the center of the lattice.
// Every inhabitant is an immutable value; rewriting a Term always produces
// a new one rather than mutating in place.
type Term interface {
	isTerm()
}

// None is the singleton type of the null/absent value.
type None struct{}

func (None) isTerm() {}

// Missing is the sentinel usable only as a member of a Union that is
// itself a Record field's value; it marks "key may be absent". It must
// never appear outside that position.
type Missing struct{}

func (Missing) isTerm() {}

// Literal is a type inhabited by exactly one scalar value.
type Literal struct {
	Value Scalar
}

func (Literal) isTerm() {}

// Opaque is a nominal runtime type tag carrying no structure.
type Opaque struct {
	Tag string
}

func (Opaque) isTerm() {}

// Tuple is a heterogeneous fixed-arity product; arity is part of identity.
type Tuple struct {
	Items []Term
}

func (Tuple) isTerm() {}

// Collection is a homogeneous container of nominal tag Tag (e.g. "list",
// "set") with element type Elem. Invariant in Elem.
type Collection struct {
	Tag  string
	Elem Term
}

func (Collection) isTerm() {}

// Mapping is a homogeneous key/value container of nominal tag Tag with
// key type Key and value type Value. Invariant in both.
type Mapping struct {
	Tag   string
	Key   Term
	Value Term
}

func (Mapping) isTerm() {}

// Record is a structural record with string field names and per-field
// types. A field's type may include Missing to encode optionality.
type Record struct {
	Fields map[string]Term
}

func (Record) isTerm() {}

// Union is a set-semantics union of member terms. Member order carries no
// meaning; equality and the simplifier treat it as a set.
type Union struct {
	Members []Term
}

func (Union) isTerm() {}

// EmptyUnion is the canonical empty-union sentinel meaning "unknown/any".
// It shows up at the leaves of a snapshot (e.g. the element type of an
// empty list) and as learner.Learner.Snapshot's result before any
// observation; the emitter is the only consumer required to materialize
// it into concrete syntax.
func EmptyUnion() Term { return Union{} }

// TypeTag returns a short human-readable tag for t's variant, used in log
// lines and debug dumps; it is not part of the equality or subtype
// relations.
func TypeTag(t Term) string {
	switch v := t.(type) {
	case None:
		return "none"
	case Missing:
		return "missing"
	case Literal:
		return "literal(" + v.Value.RuntimeTag() + ")"
	case Opaque:
		return "opaque(" + v.Tag + ")"
	case Tuple:
		return "tuple"
	case Collection:
		return "collection(" + v.Tag + ")"
	case Mapping:
		return "mapping(" + v.Tag + ")"
	case Record:
		return "record"
	case Union:
		return "union"
	default:
		return "?"
	}
}

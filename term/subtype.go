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

package term

// numericTower orders the opaque numeric tags bool ◁ int ◁ float ◁ complex,
// the deliberate exception to strict nominal subclassing that mirrors
// mainstream gradual-typing conventions (spec.md §4.2 design notes).
var numericTower = []string{"bool", "int", "float", "complex"}

func towerIndex(tag string) (int, bool) {
	for i, t := range numericTower {
		if t == tag {
			return i, true
		}
	}
	return 0, false
}

// NominalSubclass, if set, lets an embedder teach the oracle about a
// user-defined class hierarchy among Opaque tags beyond the numeric
// tower (the Go analogue of Python's issubclass check against runtime
// classes of custom objects observed by the host application). Left nil,
// only the numeric tower induces Opaque/Opaque subtyping — see DESIGN.md
// for why this is a faithful, explicitly-scoped simplification rather
// than a silent omission.
var NominalSubclass func(sub, super string) bool

// IsSubtype decides sub ≤ super under the rules of spec.md §4.2. It is
// strict, not reflexive: IsSubtype(x, x) is always false. Any internal
// failure (e.g. a panic from a user-supplied NominalSubclass hook) is
// swallowed and reported as false, matching the SubtypeProbeFailure
// error kind's conservative policy.
func IsSubtype(sub, super Term) (result bool) {
	defer func() {
		if recover() != nil {
			result = false
		}
	}()
	return isSubtype(sub, super)
}

// IsSubtypeOrEqual is IsSubtype(sub, super) || Equal(sub, super).
func IsSubtypeOrEqual(sub, super Term) bool {
	return IsSubtype(sub, super) || Equal(sub, super)
}

func isSubtype(sub, super Term) bool {
	// First matching clause wins, in the exact order of spec.md §4.2's
	// table; Union/anything is checked before anything/Union so a Union
	// sub with a Union super is handled by the first rule.
	switch subv := sub.(type) {
	case Opaque:
		if superv, ok := super.(Opaque); ok {
			return opaqueSubtype(subv, superv)
		}
	case Literal:
		if superv, ok := super.(Opaque); ok {
			return literalOpaqueSubtype(subv, superv)
		}
	case Tuple:
		if superv, ok := super.(Tuple); ok {
			return tupleSubtype(subv, superv)
		}
	case Collection:
		if _, ok := super.(Collection); ok {
			return false // invariant generics
		}
	case Mapping:
		if _, ok := super.(Mapping); ok {
			return false // invariant generics
		}
	case Record:
		if superv, ok := super.(Record); ok {
			return recordSubtype(subv, superv)
		}
	case Union:
		for _, m := range subv.Members {
			if !isSubtype(m, super) {
				return false
			}
		}
		return true
	}
	if superv, ok := super.(Union); ok {
		for _, m := range superv.Members {
			if IsSubtypeOrEqual(sub, m) {
				return true
			}
		}
		return false
	}
	return false
}

func opaqueSubtype(sub, super Opaque) bool {
	if sub.Tag == super.Tag {
		return false
	}
	if subIdx, ok := towerIndex(sub.Tag); ok {
		if superIdx, ok := towerIndex(super.Tag); ok {
			return subIdx < superIdx
		}
	}
	if NominalSubclass != nil {
		return NominalSubclass(sub.Tag, super.Tag)
	}
	return false
}

func literalOpaqueSubtype(lit Literal, op Opaque) bool {
	if lit.Value.RuntimeTag() == op.Tag {
		return true
	}
	return isSubtype(Opaque{Tag: lit.Value.RuntimeTag()}, op)
}

func tupleSubtype(sub, super Tuple) bool {
	if len(sub.Items) != len(super.Items) {
		return false
	}
	for i := range sub.Items {
		if !IsSubtypeOrEqual(sub.Items[i], super.Items[i]) {
			return false
		}
	}
	return true
}

// recordSubtype is width/depth subtyping on the sub side: every field of
// sub must be present in super with an equal-or-narrower type. sub may be
// narrower (fewer fields) than super.
func recordSubtype(sub, super Record) bool {
	for k, subFieldType := range sub.Fields {
		superFieldType, ok := super.Fields[k]
		if !ok {
			return false
		}
		if !IsSubtypeOrEqual(subFieldType, superFieldType) {
			return false
		}
	}
	return true
}

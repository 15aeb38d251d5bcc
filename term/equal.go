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

// Equal is structural equality over Terms, with two wrinkles mandated by
// the data model: Union equality is set-semantic (member order does not
// matter and nesting is not assumed to be canonical), and Record field
// sets compare as unordered maps. Every other variant compares
// component-wise.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case None:
		_, ok := b.(None)
		return ok
	case Missing:
		_, ok := b.(Missing)
		return ok
	case Literal:
		bv, ok := b.(Literal)
		return ok && av.Value.Equal(bv.Value)
	case Opaque:
		bv, ok := b.(Opaque)
		return ok && av.Tag == bv.Tag
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case Collection:
		bv, ok := b.(Collection)
		return ok && av.Tag == bv.Tag && Equal(av.Elem, bv.Elem)
	case Mapping:
		bv, ok := b.(Mapping)
		return ok && av.Tag == bv.Tag && Equal(av.Key, bv.Key) && Equal(av.Value, bv.Value)
	case Record:
		bv, ok := b.(Record)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for k, v := range av.Fields {
			ov, ok := bv.Fields[k]
			if !ok || !Equal(v, ov) {
				return false
			}
		}
		return true
	case Union:
		bv, ok := b.(Union)
		if !ok {
			return false
		}
		return unionSetEqual(av.Members, bv.Members)
	default:
		return false
	}
}

func unionSetEqual(a, b []Term) bool {
	return isSubsetByEqual(a, b) && isSubsetByEqual(b, a)
}

func isSubsetByEqual(a, b []Term) bool {
	for _, x := range a {
		found := false
		for _, y := range b {
			if Equal(x, y) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ContainsEqual reports whether x is structurally Equal to some member of
// members. Exported for use by the simplifier's deduplication pass.
func ContainsEqual(members []Term, x Term) bool {
	for _, m := range members {
		if Equal(m, x) {
			return true
		}
	}
	return false
}

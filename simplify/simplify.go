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

// Package simplify implements the confluent rewriting system that
// normalizes a Term to a fixed point: it iterates the first eleven rewrite
// passes of spec.md §4.4, in the exact order specified, until a full
// round changes nothing, then applies the twelfth (empty-record demotion)
// once to the result.
package simplify

import (
	"github.com/nj-vs-vh/slow-learner-go/config"
	"github.com/nj-vs-vh/slow-learner-go/term"
)

// Simplify iterates the rewrite passes over t until it reaches a fixed
// point and returns the normalized term. It is total on well-formed
// Terms: the Simplifier never errors or panics on its own account.
func Simplify(t term.Term, cfg config.Config) term.Term {
	prev := t
	for {
		t = flatten(t)
		t = deduplicate(t)
		t = boolFold(t)
		t = literalCap(t, cfg)
		t = tupleMergeByArity(t, cfg)
		t = collectionMergeByTag(t, cfg)
		t = recordMerge(t, cfg)
		t = recordDemotion(t, cfg)
		t = mappingMergeByTag(t, cfg)
		t = absorbSubtypes(t)
		t = trivialUnion(t)

		if term.Equal(t, prev) {
			return demoteEmptyRecords(t)
		}
		prev = t
	}
}

// Pass 1: Union([..., Union([x,y]), ...]) -> Union([..., x, y, ...]).
func flatten(t term.Term) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	flat := make([]term.Term, 0, len(u.Members))
	for _, m := range u.Members {
		if mu, ok := m.(term.Union); ok {
			flat = append(flat, mu.Members...)
		} else {
			flat = append(flat, m)
		}
	}
	return term.Union{Members: flat}
}

// Pass 2: remove duplicate members under term.Equal, preserving first
// occurrence.
func deduplicate(t term.Term) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	dedup := make([]term.Term, 0, len(u.Members))
	for _, m := range u.Members {
		if !term.ContainsEqual(dedup, m) {
			dedup = append(dedup, m)
		}
	}
	return term.Union{Members: dedup}
}

// Pass 3: if both Literal(true) and Literal(false) are members, drop both
// and add Opaque(bool).
func boolFold(t term.Term) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	hasTrue, hasFalse := false, false
	for _, m := range u.Members {
		if lit, ok := m.(term.Literal); ok && lit.Value.Kind == term.KindBool {
			if lit.Value.Bool {
				hasTrue = true
			} else {
				hasFalse = true
			}
		}
	}
	if !hasTrue || !hasFalse {
		return t
	}
	members := make([]term.Term, 0, len(u.Members))
	for _, m := range u.Members {
		if lit, ok := m.(term.Literal); ok && lit.Value.Kind == term.KindBool {
			continue
		}
		members = append(members, m)
	}
	members = append(members, term.Opaque{Tag: "bool"})
	return term.Union{Members: members}
}

// Pass 4: if the number of Literal members exceeds cfg.MaxLiteralFan,
// replace every Literal with Opaque(runtime_type_of(v)); the resulting
// Union is then reduced recursively by re-entering Simplify.
func literalCap(t term.Term, cfg config.Config) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	var literals []term.Literal
	var others []term.Term
	for _, m := range u.Members {
		if lit, ok := m.(term.Literal); ok {
			literals = append(literals, lit)
		} else {
			others = append(others, m)
		}
	}
	if len(literals) <= cfg.MaxLiteralFan {
		return t
	}
	generalized := make([]term.Term, 0, len(literals)+len(others))
	for _, lit := range literals {
		generalized = append(generalized, term.Opaque{Tag: lit.Value.RuntimeTag()})
	}
	generalized = append(generalized, others...)
	return Simplify(term.Union{Members: generalized}, cfg)
}

// Pass 5: group Tuple members by arity; for each group, produce a single
// Tuple whose i-th component unions and simplifies all i-th components
// from the group.
func tupleMergeByArity(t term.Term, cfg config.Config) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	groups := map[int][]term.Tuple{}
	var arities []int
	var others []term.Term
	for _, m := range u.Members {
		if tp, ok := m.(term.Tuple); ok {
			arity := len(tp.Items)
			if _, seen := groups[arity]; !seen {
				arities = append(arities, arity)
			}
			groups[arity] = append(groups[arity], tp)
		} else {
			others = append(others, m)
		}
	}
	members := others
	for _, arity := range arities {
		group := groups[arity]
		if len(group) == 1 {
			members = append(members, group[0])
			continue
		}
		items := make([]term.Term, arity)
		for i := 0; i < arity; i++ {
			parts := make([]term.Term, len(group))
			for j, tp := range group {
				parts[j] = tp.Items[i]
			}
			items[i] = Simplify(term.Union{Members: parts}, cfg)
		}
		members = append(members, term.Tuple{Items: items})
	}
	return term.Union{Members: members}
}

// Pass 6: group Collection members by nominal tag; produce one Collection
// per tag with unioned-and-simplified element type.
func collectionMergeByTag(t term.Term, cfg config.Config) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	groups := map[string][]term.Collection{}
	var tags []string
	var others []term.Term
	for _, m := range u.Members {
		if c, ok := m.(term.Collection); ok {
			if _, seen := groups[c.Tag]; !seen {
				tags = append(tags, c.Tag)
			}
			groups[c.Tag] = append(groups[c.Tag], c)
		} else {
			others = append(others, m)
		}
	}
	members := others
	for _, tagName := range tags {
		group := groups[tagName]
		if len(group) == 1 {
			members = append(members, group[0])
			continue
		}
		parts := make([]term.Term, len(group))
		for i, c := range group {
			parts[i] = c.Elem
		}
		members = append(members, term.Collection{
			Tag:  tagName,
			Elem: Simplify(term.Union{Members: parts}, cfg),
		})
	}
	return term.Union{Members: members}
}

// Pass 7: merge every Record in the union into a single Record whose
// field set is the union of all field names; a field absent from a given
// member contributes Missing to that field's union.
func recordMerge(t term.Term, cfg config.Config) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	var records []term.Record
	var others []term.Term
	for _, m := range u.Members {
		if r, ok := m.(term.Record); ok {
			records = append(records, r)
		} else {
			others = append(others, m)
		}
	}
	if len(records) <= 1 {
		return t
	}
	fieldNames := map[string]bool{}
	for _, r := range records {
		for k := range r.Fields {
			fieldNames[k] = true
		}
	}
	merged := map[string]term.Term{}
	for name := range fieldNames {
		parts := make([]term.Term, len(records))
		for i, r := range records {
			if v, ok := r.Fields[name]; ok {
				parts[i] = v
			} else {
				parts[i] = term.Missing{}
			}
		}
		merged[name] = Simplify(term.Union{Members: parts}, cfg)
	}
	return term.Union{Members: append(others, term.Record{Fields: merged})}
}

// Pass 8: demote Records to Mapping(dict, Opaque(str), union-of-fields)
// when a Mapping already coexists in the Union, or a Record exceeds
// cfg.MaxRecordFields. Applies at top level too, outside of any Union.
func recordDemotion(t term.Term, cfg config.Config) term.Term {
	if r, ok := t.(term.Record); ok {
		if len(r.Fields) > cfg.MaxRecordFields {
			return demoteRecord(r, cfg)
		}
		return t
	}
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	needsDemotion := false
	for _, m := range u.Members {
		if _, ok := m.(term.Mapping); ok {
			needsDemotion = true
			break
		}
		if r, ok := m.(term.Record); ok && len(r.Fields) > cfg.MaxRecordFields {
			needsDemotion = true
			break
		}
	}
	if !needsDemotion {
		return t
	}
	members := make([]term.Term, len(u.Members))
	for i, m := range u.Members {
		if r, ok := m.(term.Record); ok {
			members[i] = demoteRecord(r, cfg)
		} else {
			members[i] = m
		}
	}
	return term.Union{Members: members}
}

func demoteRecord(r term.Record, cfg config.Config) term.Mapping {
	parts := make([]term.Term, 0, len(r.Fields))
	for _, v := range r.Fields {
		parts = append(parts, v)
	}
	value := stripMissing(Simplify(term.Union{Members: parts}, cfg))
	return term.Mapping{Tag: "dict", Key: term.Opaque{Tag: "str"}, Value: value}
}

func stripMissing(t term.Term) term.Term {
	if _, ok := t.(term.Missing); ok {
		return term.Union{}
	}
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	filtered := make([]term.Term, 0, len(u.Members))
	for _, m := range u.Members {
		if _, ok := m.(term.Missing); ok {
			continue
		}
		filtered = append(filtered, m)
	}
	return term.Union{Members: filtered}
}

// Pass 9: group Mapping members by nominal tag, analogous to
// collectionMergeByTag.
func mappingMergeByTag(t term.Term, cfg config.Config) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	groups := map[string][]term.Mapping{}
	var tags []string
	var others []term.Term
	for _, m := range u.Members {
		if mp, ok := m.(term.Mapping); ok {
			if _, seen := groups[mp.Tag]; !seen {
				tags = append(tags, mp.Tag)
			}
			groups[mp.Tag] = append(groups[mp.Tag], mp)
		} else {
			others = append(others, m)
		}
	}
	members := others
	for _, tagName := range tags {
		group := groups[tagName]
		if len(group) == 1 {
			members = append(members, group[0])
			continue
		}
		keys := make([]term.Term, len(group))
		values := make([]term.Term, len(group))
		for i, mp := range group {
			keys[i] = mp.Key
			values[i] = mp.Value
		}
		members = append(members, term.Mapping{
			Tag:   tagName,
			Key:   Simplify(term.Union{Members: keys}, cfg),
			Value: Simplify(term.Union{Members: values}, cfg),
		})
	}
	return term.Union{Members: members}
}

// Pass 10: remove each Union member that is a strict subtype of some
// other member. Run after the shape-preserving merges (5-9) so that
// absorption sees the merged shapes, per spec.md §4.4's confluence note.
func absorbSubtypes(t term.Term) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	keep := make([]term.Term, 0, len(u.Members))
	for i, m := range u.Members {
		absorbed := false
		for j, other := range u.Members {
			if i == j {
				continue
			}
			if term.IsSubtype(m, other) {
				absorbed = true
				break
			}
		}
		if !absorbed {
			keep = append(keep, m)
		}
	}
	return term.Union{Members: keep}
}

// Pass 11: Union([x]) -> x. Union([]) is preserved as the empty-union
// sentinel.
func trivialUnion(t term.Term) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	if len(u.Members) == 1 {
		return u.Members[0]
	}
	return u
}

// Pass 12: Record({}) at any nesting -> Mapping(dict, Union([]),
// Union([])). Handled lazily, once the fixed point is reached, rather
// than as part of the iterated loop.
func demoteEmptyRecords(t term.Term) term.Term {
	switch v := t.(type) {
	case term.Record:
		if len(v.Fields) == 0 {
			return term.Mapping{Tag: "dict", Key: term.Union{}, Value: term.Union{}}
		}
		fields := make(map[string]term.Term, len(v.Fields))
		for k, f := range v.Fields {
			fields[k] = demoteEmptyRecords(f)
		}
		return term.Record{Fields: fields}
	case term.Union:
		members := make([]term.Term, len(v.Members))
		for i, m := range v.Members {
			members[i] = demoteEmptyRecords(m)
		}
		return term.Union{Members: members}
	case term.Tuple:
		items := make([]term.Term, len(v.Items))
		for i, it := range v.Items {
			items[i] = demoteEmptyRecords(it)
		}
		return term.Tuple{Items: items}
	case term.Collection:
		return term.Collection{Tag: v.Tag, Elem: demoteEmptyRecords(v.Elem)}
	case term.Mapping:
		return term.Mapping{Tag: v.Tag, Key: demoteEmptyRecords(v.Key), Value: demoteEmptyRecords(v.Value)}
	default:
		return t
	}
}

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

// Package observer implements observe_value (spec.md §4.1): converting a
// concrete host-language value into a Term.
package observer

import (
	"fmt"
	"reflect"
	"sort"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"

	"github.com/nj-vs-vh/slow-learner-go/config"
	"github.com/nj-vs-vh/slow-learner-go/simplify"
	"github.com/nj-vs-vh/slow-learner-go/term"
)

// Observe converts v into a Term, per the ordered rules of spec.md §4.1.
func Observe(v any, cfg config.Config) term.Term {
	return observeValue(v, nil, cfg)
}

func observeValue(v any, path []PathElem, cfg config.Config) term.Term {
	// Rule 1: null/absent.
	if v == nil {
		return term.None{}
	}

	// Enumeration tags: a host-supplied extension of the scalar domain
	// (SPEC_FULL.md §4).
	if e, ok := v.(Enum); ok {
		return observeScalar(term.EnumScalar(e.EnumType(), e.EnumTag()), path, cfg)
	}

	// Rule 2: scalars. Float is deliberately excluded from the literal
	// domain (see term.ScalarKind) and always yields Opaque("float").
	switch val := v.(type) {
	case bool:
		return observeScalar(term.BoolScalar(val), path, cfg)
	case string:
		return observeScalar(term.StringScalar(val), path, cfg)
	case []byte:
		return observeScalar(term.BytesScalar(val), path, cfg)
	case *apd.Decimal:
		return observeScalar(term.DecimalScalar(val), path, cfg)
	case int:
		return observeScalar(term.IntScalar(int64(val)), path, cfg)
	case int8:
		return observeScalar(term.IntScalar(int64(val)), path, cfg)
	case int16:
		return observeScalar(term.IntScalar(int64(val)), path, cfg)
	case int32:
		return observeScalar(term.IntScalar(int64(val)), path, cfg)
	case int64:
		return observeScalar(term.IntScalar(val), path, cfg)
	case uint:
		return observeScalar(term.IntScalar(int64(val)), path, cfg)
	case uint8:
		return observeScalar(term.IntScalar(int64(val)), path, cfg)
	case uint16:
		return observeScalar(term.IntScalar(int64(val)), path, cfg)
	case uint32:
		return observeScalar(term.IntScalar(int64(val)), path, cfg)
	case uint64:
		return observeScalar(term.IntScalar(int64(val)), path, cfg)
	case float32:
		return term.Opaque{Tag: "float"}
	case float64:
		return term.Opaque{Tag: "float"}
	}

	// Rule 3: depth cutoff. Everything reaching this point is composite
	// (or an unrecognized host value that falls through to rule 7
	// anyway), so the cutoff can apply unconditionally here.
	if len(path) > cfg.MaxDepth {
		return term.Opaque{Tag: runtimeTag(v)}
	}

	// Rule 4: fixed-arity heterogeneous tuple.
	if tup, ok := v.(Tuple); ok {
		items := make([]term.Term, len(tup.Items))
		for i, it := range tup.Items {
			items[i] = observeValue(it, append(path, Index(i)), cfg)
		}
		return term.Tuple{Items: items}
	}

	if set, ok := v.(Set); ok {
		return observeSequence("set", set.Items, path, cfg)
	}

	if m, ok := v.(map[string]any); ok {
		return observeStringMap(m, path, cfg)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return observeReflectMap(rv, path, cfg)
	case reflect.Slice:
		if rv.Type() == reflect.TypeOf([]any(nil)) {
			items := make([]any, rv.Len())
			for i := range items {
				items[i] = rv.Index(i).Interface()
			}
			return observeSequence("list", items, path, cfg)
		}
		return observeReflectSeq(rv, path, cfg)
	case reflect.Array:
		return observeReflectSeq(rv, path, cfg)
	}

	// Rule 7: opaque fallback.
	return term.Opaque{Tag: runtimeTag(v)}
}

func observeScalar(s term.Scalar, path []PathElem, cfg config.Config) term.Term {
	jsonPath := ToJSONPath(path)
	if cfg.MaxLiteralFan > 0 &&
		!cfg.MatchesNoLiteralPattern(jsonPath) &&
		!(s.Kind == term.KindString && utf8.RuneCountInString(s.Str) > cfg.MaxLiteralStringLength) {
		return term.Literal{Value: s}
	}
	return term.Opaque{Tag: s.RuntimeTag()}
}

// Rule 5: mappings. observeStringMap handles the concrete map[string]any
// shape the ingest package produces from decoded JSON/YAML objects.
func observeStringMap(m map[string]any, path []PathElem, cfg config.Config) term.Term {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	valueTypes := make(map[string]term.Term, len(m))
	keyTypes := make([]term.Term, 0, len(m))
	for _, k := range keys {
		p := append(append([]PathElem{}, path...), Field(k))
		valueTypes[k] = observeValue(m[k], p, cfg)
		keyTypes = append(keyTypes, observeValue(k, p, cfg))
	}

	if cfg.LearnRecords && allSubtypeOrEqualStr(keyTypes) {
		return term.Record{Fields: valueTypes}
	}

	values := make([]term.Term, 0, len(valueTypes))
	for _, k := range keys {
		values = append(values, valueTypes[k])
	}
	return term.Mapping{
		Tag:   "dict",
		Key:   reduceUnion(keyTypes, cfg),
		Value: reduceUnion(values, cfg),
	}
}

// observeReflectMap handles any other Go map type (map[int]string,
// map[string]int, a custom named map type, ...) via reflection, applying
// the same Record-eligibility test as observeStringMap: a string-keyed
// map of any concrete value type is just as eligible to become a Record
// as map[string]any is.
func observeReflectMap(rv reflect.Value, path []PathElem, cfg config.Config) term.Term {
	type entry struct {
		key   any
		value any
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: iter.Key().Interface(), value: iter.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return fmt.Sprint(entries[i].key) < fmt.Sprint(entries[j].key)
	})

	valueTypes := make([]term.Term, len(entries))
	keyTypes := make([]term.Term, len(entries))
	fieldsByStringKey := make(map[string]term.Term, len(entries))
	allStringKeys := true
	for i, e := range entries {
		var keyPath []PathElem
		if ks, ok := e.key.(string); ok {
			keyPath = append(append([]PathElem{}, path...), Field(ks))
			fieldsByStringKey[ks] = nil // placeholder, filled below
		} else {
			allStringKeys = false
			keyPath = append(append([]PathElem{}, path...), Index(i))
		}
		valueTypes[i] = observeValue(e.value, keyPath, cfg)
		keyTypes[i] = observeValue(e.key, keyPath, cfg)
		if ks, ok := e.key.(string); ok {
			fieldsByStringKey[ks] = valueTypes[i]
		}
	}

	if cfg.LearnRecords && allStringKeys && allSubtypeOrEqualStr(keyTypes) {
		return term.Record{Fields: fieldsByStringKey}
	}

	return term.Mapping{
		Tag:   mappingTag(rv.Type()),
		Key:   reduceUnion(keyTypes, cfg),
		Value: reduceUnion(valueTypes, cfg),
	}
}

// Rule 6: homogeneous collections.
func observeReflectSeq(rv reflect.Value, path []PathElem, cfg config.Config) term.Term {
	n := rv.Len()
	items := make([]any, n)
	for i := 0; i < n; i++ {
		items[i] = rv.Index(i).Interface()
	}
	return observeSequence(collectionTag(rv.Type()), items, path, cfg)
}

func observeSequence(tag string, items []any, path []PathElem, cfg config.Config) term.Term {
	itemTypes := make([]term.Term, len(items))
	for i, it := range items {
		itemTypes[i] = observeValue(it, append(append([]PathElem{}, path...), Index(i)), cfg)
	}
	return term.Collection{Tag: tag, Elem: reduceUnion(itemTypes, cfg)}
}

// reduceUnion left-folds the list by pairwise Union wrapping and
// Simplifier application (spec.md §4.1), so nested element types are
// already canonical by the time they're attached to the parent term.
func reduceUnion(items []term.Term, cfg config.Config) term.Term {
	if len(items) == 0 {
		return term.Union{}
	}
	acc := items[0]
	for _, next := range items[1:] {
		acc = simplify.Simplify(term.Union{Members: []term.Term{acc, next}}, cfg)
	}
	return simplify.Simplify(acc, cfg)
}

func allSubtypeOrEqualStr(keyTypes []term.Term) bool {
	str := term.Opaque{Tag: "str"}
	for _, kt := range keyTypes {
		if !term.IsSubtypeOrEqual(kt, str) {
			return false
		}
	}
	return true
}

func collectionTag(t reflect.Type) string {
	switch t.String() {
	case "[]interface {}":
		return "list"
	default:
		return t.String()
	}
}

func mappingTag(t reflect.Type) string {
	switch t.String() {
	case "map[string]interface {}":
		return "dict"
	default:
		return t.String()
	}
}

func runtimeTag(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

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

// Package golang lowers a Term to a Go struct declaration, porting
// typedef_generation.py's algorithm to Go target syntax: one exported
// struct per Record or Tuple encountered in the tree, named from its
// position (an Item suffix for collection elements and tuple items,
// Key/Value for mapping keys and values, VariantN for Union members), and
// deterministic name-mangling via a collision-counter suffix when two
// types want the same Go identifier.
package golang

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/nj-vs-vh/slow-learner-go/emit"
	"github.com/nj-vs-vh/slow-learner-go/term"
)

// Target emits Go struct declarations.
type Target struct{}

// New returns a ready-to-use Go emitter.
func New() *Target { return &Target{} }

var _ emit.Target = (*Target)(nil)

type builder struct {
	names map[string]int
	decls []string
}

func newBuilder() *builder { return &builder{names: map[string]int{}} }

// registerName mints a unique exported Go identifier from hint,
// appending a numeric suffix on collision (Foo, Foo2, Foo3, ...).
func (b *builder) registerName(hint string) string {
	base := exportedIdent(hint)
	if base == "" {
		base = "T"
	}
	n, seen := b.names[base]
	b.names[base] = n + 1
	if !seen {
		return base
	}
	for {
		candidate := fmt.Sprintf("%s%d", base, n+1)
		if _, taken := b.names[candidate]; !taken {
			b.names[candidate] = 1
			return candidate
		}
		n++
	}
}

func (b *builder) addDecl(src string) { b.decls = append(b.decls, src) }

// Emit lowers snapshot into a Go source file declaring opts.TypeName at
// the top, with any nested Record/Tuple types declared above it in
// dependency order.
func (t *Target) Emit(snapshot term.Term, opts emit.Options) (string, error) {
	if opts.TypeName == "" {
		return "", fmt.Errorf("emit/golang: Options.TypeName is required")
	}
	b := newBuilder()
	topName := exportedIdent(opts.TypeName)
	if topName == "" {
		topName = "T"
	}
	// lower registers its own declaration under this hint when t is a
	// Record or Tuple, claiming topName directly since nothing has used
	// the registry yet; any other shape returns a plain type expression
	// and topName is left free for the alias below.
	goType := lower(snapshot, topName, b)

	var out strings.Builder
	out.WriteString("// Code generated by slearn. DO NOT EDIT.\n\n")
	out.WriteString("package generated\n\n")
	if opts.Doc != "" {
		out.WriteString("// " + topName + " " + opts.Doc + "\n")
	}
	for _, d := range b.decls {
		out.WriteString(d)
		out.WriteString("\n\n")
	}
	if goType != topName {
		out.WriteString(fmt.Sprintf("type %s = %s\n", topName, goType))
	}
	return out.String(), nil
}

// lower returns the Go type expression for t, registering any auxiliary
// struct declarations under hint-derived names as a side effect.
func lower(t term.Term, hint string, b *builder) string {
	switch v := t.(type) {
	case term.None:
		return "any // always null"
	case term.Missing:
		return "any // absent"
	case term.Literal:
		return scalarGoType(v.Value)
	case term.Opaque:
		return opaqueGoType(v.Tag)
	case term.Tuple:
		return lowerTuple(v, hint, b)
	case term.Collection:
		return "[]" + lower(v.Elem, singular(hint), b)
	case term.Mapping:
		keyType := lower(v.Key, hint+"Key", b)
		if !isMapKeyable(keyType) {
			keyType = "string"
		}
		return "map[" + keyType + "]" + lower(v.Value, hint+"Value", b)
	case term.Record:
		return lowerRecord(v, hint, b)
	case term.Union:
		return lowerUnion(v, hint, b)
	default:
		return "any"
	}
}

func lowerTuple(v term.Tuple, hint string, b *builder) string {
	name := b.registerName(hint)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("type %s struct {\n", name))
	for i, item := range v.Items {
		fieldName := fmt.Sprintf("Item%d", i+1)
		goType := lower(item, fmt.Sprintf("%s%s", name, fieldName), b)
		sb.WriteString(fmt.Sprintf("\t%s %s `json:\"item%d\"`\n", fieldName, goType, i+1))
	}
	sb.WriteString("}")
	b.addDecl(sb.String())
	return name
}

func lowerRecord(v term.Record, hint string, b *builder) string {
	name := b.registerName(hint)

	fieldNames := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		fieldNames = append(fieldNames, k)
	}
	sort.Strings(fieldNames)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("type %s struct {\n", name))
	for _, k := range fieldNames {
		ft := v.Fields[k]
		optional := termContainsMissing(ft)
		goFieldName := b.registerFieldName(name, k)
		goType := lower(stripMissing(ft), name+goFieldName, b)
		tag := k
		if optional {
			if !strings.HasPrefix(goType, "*") && !strings.HasPrefix(goType, "[]") && !strings.HasPrefix(goType, "map[") {
				goType = "*" + goType
			}
			tag += ",omitempty"
		}
		sb.WriteString(fmt.Sprintf("\t%s %s `json:%q`\n", goFieldName, goType, tag))
	}
	sb.WriteString("}")
	b.addDecl(sb.String())
	return name
}

// registerFieldName mangles a Record field name into an exported Go
// identifier unique within this particular struct only (fields in
// different structs may legitimately share a mangled name).
func (b *builder) registerFieldName(structName, field string) string {
	base := exportedIdent(field)
	if base == "" {
		base = "Field"
	}
	name := base
	for n := 2; ; n++ {
		// "." never occurs in a mangled identifier, so these keys cannot
		// clash with the type names registerName stores in b.names.
		key := structName + "." + name
		if _, taken := b.names[key]; !taken {
			b.names[key] = 1
			return name
		}
		name = fmt.Sprintf("%s%d", base, n)
	}
}

func lowerUnion(v term.Union, hint string, b *builder) string {
	members := stripMissingMembers(v.Members)
	switch len(members) {
	case 0:
		return "any"
	case 1:
		return lower(members[0], hint, b)
	default:
		kinds := make([]string, len(members))
		for i, m := range members {
			kinds[i] = lower(m, fmt.Sprintf("%sVariant%d", hint, i+1), b)
		}
		return fmt.Sprintf("any // one of: %s", strings.Join(kinds, ", "))
	}
}

func termContainsMissing(t term.Term) bool {
	u, ok := t.(term.Union)
	if !ok {
		return false
	}
	for _, m := range u.Members {
		if _, isMissing := m.(term.Missing); isMissing {
			return true
		}
	}
	return false
}

func stripMissing(t term.Term) term.Term {
	u, ok := t.(term.Union)
	if !ok {
		return t
	}
	return term.Union{Members: stripMissingMembers(u.Members)}
}

func stripMissingMembers(members []term.Term) []term.Term {
	out := make([]term.Term, 0, len(members))
	for _, m := range members {
		if _, isMissing := m.(term.Missing); isMissing {
			continue
		}
		out = append(out, m)
	}
	return out
}

func scalarGoType(s term.Scalar) string {
	switch s.Kind {
	case term.KindInt:
		return "int64 // arbitrary-precision in the learner, narrowed on emit"
	case term.KindString:
		return "string"
	case term.KindBytes:
		return "[]byte"
	case term.KindBool:
		return "bool"
	case term.KindEnum:
		return "string // " + s.EnumType
	default:
		return "any"
	}
}

func opaqueGoType(tag string) string {
	switch tag {
	case "int":
		return "int64"
	case "str":
		return "string"
	case "bool":
		return "bool"
	case "bytes":
		return "[]byte"
	case "float":
		return "float64"
	case "dict", "list", "set":
		return "any"
	default:
		return fmt.Sprintf("any // %s", tag)
	}
}

func isMapKeyable(goType string) bool {
	switch goType {
	case "string", "int64", "bool":
		return true
	default:
		return false
	}
}

func singular(hint string) string {
	if strings.HasSuffix(hint, "s") && !strings.HasSuffix(hint, "ss") {
		return strings.TrimSuffix(hint, "s") + "Item"
	}
	return hint + "Item"
}

// exportedIdent mangles an arbitrary field/record key into a valid,
// exported Go identifier: split on non-alphanumeric runs, title-case
// each piece, drop a leading digit run.
func exportedIdent(s string) string {
	var pieces []string
	var cur strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
		} else if cur.Len() > 0 {
			pieces = append(pieces, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		pieces = append(pieces, cur.String())
	}
	var out strings.Builder
	for _, p := range pieces {
		r := []rune(p)
		out.WriteString(strings.ToUpper(string(r[0])))
		if len(r) > 1 {
			out.WriteString(string(r[1:]))
		}
	}
	ident := out.String()
	if ident == "" {
		return ""
	}
	if unicode.IsDigit(rune(ident[0])) {
		ident = "N" + ident
	}
	return ident
}

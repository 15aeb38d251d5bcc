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

package observer

import "strconv"

// PathElem is one step of a path tracking nesting depth while observing a
// value: either a field name or an integer index.
type PathElem struct {
	key     string
	index   int
	isIndex bool
}

// Field builds a field-name path element.
func Field(name string) PathElem { return PathElem{key: name} }

// Index builds an integer-index path element.
func Index(i int) PathElem { return PathElem{index: i, isIndex: true} }

// ToJSONPath encodes path the way spec.md §4.1 requires for
// no-literal-pattern matching: a field name "k" becomes ".k", an integer
// index "i" becomes "[i]", concatenated in order.
func ToJSONPath(path []PathElem) string {
	buf := make([]byte, 0, len(path)*4)
	for _, p := range path {
		if p.isIndex {
			buf = append(buf, '[')
			buf = strconv.AppendInt(buf, int64(p.index), 10)
			buf = append(buf, ']')
		} else {
			buf = append(buf, '.')
			buf = append(buf, p.key...)
		}
	}
	return string(buf)
}

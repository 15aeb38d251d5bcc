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

// Enum lets a host value declare itself as an enumeration member — the
// fifth scalar kind of spec.md §3. Go has no language-level enum values
// to special-case the way the Python original special-cases its Enum
// base class, so any observed value implementing this interface is
// treated as one instead (SPEC_FULL.md §4's "Enumeration tags"
// supplement).
type Enum interface {
	EnumType() string
	EnumTag() string
}

// Tuple marks a slice of values as a fixed-arity heterogeneous product
// rather than a homogeneous Collection. JSON itself has no tuple notion
// (a JSON array always decodes to a Collection); callers using the
// Go-native value ingestion interface pass a Tuple explicitly when they
// know their data is positionally heterogeneous, exactly mirroring how a
// Python tuple differs from a Python list.
type Tuple struct {
	Items []any
}

// Set marks a slice of values as set-tagged rather than list-tagged for
// Collection observation. No deduplication is performed here; Set is
// purely a tagging wrapper over already-deduplicated data.
type Set struct {
	Items []any
}

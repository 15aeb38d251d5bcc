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

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// ScalarKind tags the inhabited-by-exactly-one-value domain a Literal (or
// its generalized Opaque) is drawn from: integer, string, byte string,
// boolean, or enumeration tag. Float is deliberately absent: JSON/Go
// floating point values are always opaque (see observer.Observe), since
// the scalar domain a Literal may be drawn from does not include it.
type ScalarKind int

const (
	KindInt ScalarKind = iota
	KindString
	KindBytes
	KindBool
	KindEnum
)

// Scalar is the value carried by a Literal term. Only one field group is
// meaningful, selected by Kind.
type Scalar struct {
	Kind ScalarKind

	Int   *apd.Decimal // KindInt; arbitrary precision, not truncated to int64
	Str   string       // KindString
	Bytes []byte       // KindBytes
	Bool  bool         // KindBool

	EnumType string // KindEnum
	EnumTag  string // KindEnum
}

// IntScalar builds an integer Scalar from a native Go integer.
func IntScalar(v int64) Scalar {
	d := new(apd.Decimal)
	d.SetInt64(v)
	return Scalar{Kind: KindInt, Int: d}
}

// DecimalScalar builds an integer Scalar from an arbitrary-precision
// decimal. Nothing under ingest or the CLI constructs one today —
// decodeJSON's number classification only ever yields int64 or float64,
// and FromYAML goes through yaml.v3's native int/float decoding — so
// this is reachable only by a direct Go-API caller passing an
// *apd.Decimal into Observe, e.g. for integers wider than int64.
func DecimalScalar(d *apd.Decimal) Scalar {
	return Scalar{Kind: KindInt, Int: d}
}

func StringScalar(v string) Scalar { return Scalar{Kind: KindString, Str: v} }
func BytesScalar(v []byte) Scalar  { return Scalar{Kind: KindBytes, Bytes: v} }
func BoolScalar(v bool) Scalar     { return Scalar{Kind: KindBool, Bool: v} }
func EnumScalar(typ, tag string) Scalar {
	return Scalar{Kind: KindEnum, EnumType: typ, EnumTag: tag}
}

// RuntimeTag returns the nominal Opaque tag this scalar's runtime type
// would carry, e.g. "int", "str", "bytes", "bool", or the enum's own type
// name.
func (s Scalar) RuntimeTag() string {
	switch s.Kind {
	case KindInt:
		return "int"
	case KindString:
		return "str"
	case KindBytes:
		return "bytes"
	case KindBool:
		return "bool"
	case KindEnum:
		return s.EnumType
	default:
		return "?"
	}
}

// Equal reports structural equality of two scalars.
func (s Scalar) Equal(o Scalar) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case KindInt:
		if s.Int == nil || o.Int == nil {
			return s.Int == o.Int
		}
		return s.Int.Cmp(o.Int) == 0
	case KindString:
		return s.Str == o.Str
	case KindBytes:
		return string(s.Bytes) == string(o.Bytes)
	case KindBool:
		return s.Bool == o.Bool
	case KindEnum:
		return s.EnumType == o.EnumType && s.EnumTag == o.EnumTag
	default:
		return false
	}
}

// String renders the scalar for debug output.
func (s Scalar) String() string {
	switch s.Kind {
	case KindInt:
		return s.Int.String()
	case KindString:
		return fmt.Sprintf("%q", s.Str)
	case KindBytes:
		return fmt.Sprintf("%x", s.Bytes)
	case KindBool:
		return fmt.Sprintf("%t", s.Bool)
	case KindEnum:
		return s.EnumType + "." + s.EnumTag
	default:
		return "<invalid scalar>"
	}
}

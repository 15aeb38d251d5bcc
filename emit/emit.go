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

// Package emit defines the target-notation interface a Term is lowered
// through (spec.md §1's "declaration in a target type notation"). Concrete
// targets live in emit/golang and emit/openapi.
package emit

import (
	"errors"

	"github.com/nj-vs-vh/slow-learner-go/term"
)

// Target lowers a Term snapshot to a concrete declaration.
type Target interface {
	Emit(snapshot term.Term, opts Options) (string, error)
}

// Options parameterizes a single Emit call.
type Options struct {
	TypeName      string
	TargetVersion string
	Doc           string
}

// ErrAlreadyExists reports that the output file for an emitted
// declaration already exists. Targets only render text and never return
// it; the slearn learn command returns it before writing, instead of
// overwriting the file.
var ErrAlreadyExists = errors.New("emit: output already exists")

// ErrNotReady is returned by learner.Learner.Emit when it is called
// before any value has been observed.
var ErrNotReady = errors.New("emit: no value observed yet")

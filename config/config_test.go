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

package config_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/nj-vs-vh/slow-learner-go/config"
)

func TestDefaultMatchesDocumentedDefaults(t *testing.T) {
	d := config.Default()
	qt.Assert(t, qt.Equals(d.MaxLiteralFan, 10))
	qt.Assert(t, qt.Equals(d.MaxLiteralStringLength, 512))
	qt.Assert(t, qt.IsTrue(d.LearnRecords))
	qt.Assert(t, qt.Equals(d.MaxRecordFields, 100))
	qt.Assert(t, qt.Equals(d.MaxDepth, 10))
}

func TestOptionsOverrideDefaults(t *testing.T) {
	c, err := config.New(config.WithMaxLiteralFan(3), config.WithLearnRecords(false))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c.MaxLiteralFan, 3))
	qt.Assert(t, qt.IsFalse(c.LearnRecords))
	qt.Assert(t, qt.Equals(c.MaxDepth, 10)) // untouched fields keep the default
}

func TestNoLiteralPatternsCompileAndMatch(t *testing.T) {
	c, err := config.New(config.WithNoLiteralPatterns(`^\.password$`))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(c.MatchesNoLiteralPattern(".password")))
	qt.Assert(t, qt.IsFalse(c.MatchesNoLiteralPattern(".username")))
}

func TestNewRejectsInvalidPattern(t *testing.T) {
	_, err := config.New(config.WithNoLiteralPatterns(`(unclosed`))
	qt.Assert(t, qt.IsNotNil(err))
}

func TestLoadYAMLFillsOmittedFieldsFromDefault(t *testing.T) {
	c, err := config.LoadYAML(strings.NewReader("max_literal_fan: 2\n"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c.MaxLiteralFan, 2))
	qt.Assert(t, qt.Equals(c.MaxDepth, 10))
	qt.Assert(t, qt.IsTrue(c.LearnRecords))
}

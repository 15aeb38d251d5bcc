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

import "github.com/kr/pretty"

// Dump renders a Term tree for --log-level debug output and test-failure
// messages. It is a debugging aid only; nothing in the core depends on
// its output being stable or parseable.
func Dump(t Term) string {
	if u, ok := t.(Union); ok {
		return pretty.Sprint(Union{Members: SortedMembers(u.Members)})
	}
	return pretty.Sprint(t)
}

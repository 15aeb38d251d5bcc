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
	"encoding/binary"
	"sort"

	"github.com/zeebo/xxh3"
)

// Fingerprint computes a cheap 64-bit hash of t's shape, used only to give
// Union members a stable total order for canonical printing (see
// SPEC_FULL.md §3's canonicalization note). It is not part of the
// equality or subtype relations, which remain defined purely structurally
// in equal.go and subtype.go; two structurally different Terms may
// collide, and nothing downstream assumes otherwise.
func Fingerprint(t Term) uint64 {
	h := xxh3.New()
	writeFingerprint(h, t)
	return h.Sum64()
}

func writeFingerprint(h *xxh3.Hasher, t Term) {
	switch v := t.(type) {
	case None:
		tag(h, 0)
	case Missing:
		tag(h, 1)
	case Literal:
		tag(h, 2)
		h.Write([]byte(v.Value.String()))
		tag(h, int(v.Value.Kind))
	case Opaque:
		tag(h, 3)
		h.Write([]byte(v.Tag))
	case Tuple:
		tag(h, 4)
		for _, item := range v.Items {
			writeFingerprint(h, item)
		}
	case Collection:
		tag(h, 5)
		h.Write([]byte(v.Tag))
		writeFingerprint(h, v.Elem)
	case Mapping:
		tag(h, 6)
		h.Write([]byte(v.Tag))
		writeFingerprint(h, v.Key)
		writeFingerprint(h, v.Value)
	case Record:
		tag(h, 7)
		names := make([]string, 0, len(v.Fields))
		for k := range v.Fields {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			h.Write([]byte(k))
			writeFingerprint(h, v.Fields[k])
		}
	case Union:
		tag(h, 8)
		fps := make([]uint64, len(v.Members))
		for i, m := range v.Members {
			fps[i] = Fingerprint(m)
		}
		sort.Slice(fps, func(i, j int) bool { return fps[i] < fps[j] })
		for _, fp := range fps {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], fp)
			h.Write(buf[:])
		}
	}
}

func tag(h *xxh3.Hasher, v int) {
	h.Write([]byte{byte(v)})
}

// SortedMembers returns a copy of members ordered by Fingerprint, for
// deterministic, reproducible textual output of an otherwise set-semantic
// Union.
func SortedMembers(members []Term) []Term {
	out := make([]Term, len(members))
	copy(out, members)
	sort.SliceStable(out, func(i, j int) bool {
		return Fingerprint(out[i]) < Fingerprint(out[j])
	})
	return out
}

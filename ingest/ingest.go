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

// Package ingest decodes raw bytes into the generic `any` values the
// observer package consumes: one JSON or YAML document per call, or a
// top-level JSON array spread into independent samples for the CLI's
// --spread mode.
package ingest

import (
	"fmt"
	"io"
	"math"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/nj-vs-vh/slow-learner-go/observer"
)

// Tuple re-exports observer.Tuple: ingest is the natural place for
// callers decoding a JSON array known to be positionally heterogeneous
// to wrap it before handing it to a Learner.
type Tuple = observer.Tuple

// FromJSON decodes a single JSON document from r into a generic `any`
// tree (map[string]any / []any / scalars), classifying each number as an
// integer or a float by value shape: go-json-experiment/json's generic
// decode target loses the literal's lexical form (unlike Python's
// int()/float() dispatch on the source token), so whole-valued numbers
// within the safe integer range are treated as ints and everything else
// as a float, an intentional, documented approximation of the original's
// lexical rule.
func FromJSON(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: read json: %w", err)
	}
	return decodeJSON(data)
}

func decodeJSON(data []byte) (any, error) {
	var raw any
	if err := jsonv2.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ingest: decode json: %w", err)
	}
	return reclassifyNumbers(raw), nil
}

func reclassifyNumbers(v any) any {
	switch val := v.(type) {
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return int64(val)
		}
		return val
	case map[string]any:
		for k, elem := range val {
			val[k] = reclassifyNumbers(elem)
		}
		return val
	case []any:
		for i, elem := range val {
			val[i] = reclassifyNumbers(elem)
		}
		return val
	default:
		return v
	}
}

// FromYAML decodes a single YAML document from r. yaml.v3 already
// distinguishes int and float scalars natively and decodes mappings into
// map[string]any, so no reclassification pass is needed here the way
// FromJSON needs one.
func FromYAML(r io.Reader) (any, error) {
	var v any
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("ingest: decode yaml: %w", err)
	}
	return v, nil
}

// JSONSequence reads a single top-level JSON array from r and decodes
// each element independently, for the CLI's --spread mode. A decode
// failure on one element is recorded and the rest are still attempted;
// the aggregated failures are returned as a single *multierror.Error
// (nil if every element decoded cleanly). A syntax error or truncated
// input ends the read: the elements decoded before it are returned
// together with the error.
func JSONSequence(r io.Reader) ([]any, error) {
	dec := jsontext.NewDecoder(r)

	tok, err := dec.ReadToken()
	if err != nil {
		return nil, fmt.Errorf("ingest: read json sequence: %w", err)
	}
	if tok.Kind() != '[' {
		return nil, fmt.Errorf("ingest: --spread input must be a top-level JSON array, got %q", tok.Kind())
	}

	var samples []any
	var errs *multierror.Error
	index := 0
	for dec.PeekKind() != ']' {
		val, err := dec.ReadValue()
		if err != nil {
			// The decoder cannot advance past a syntax error, so stop here.
			errs = multierror.Append(errs, fmt.Errorf("element %d: %w", index, err))
			return samples, errs.ErrorOrNil()
		}
		sample, err := decodeJSON(val)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("element %d: %w", index, err))
			index++
			continue
		}
		samples = append(samples, sample)
		index++
	}
	if _, err := dec.ReadToken(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("closing array token: %w", err))
	}

	return samples, errs.ErrorOrNil()
}

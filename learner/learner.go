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

// Package learner implements the incremental façade (spec.md §4.5):
// observe → union-with-accumulator → simplify, wrapping the observer and
// simplifier behind a single stateful handle plus the config surface the
// CLI and library callers configure.
package learner

import (
	"io"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"

	"github.com/nj-vs-vh/slow-learner-go/config"
	"github.com/nj-vs-vh/slow-learner-go/emit"
	"github.com/nj-vs-vh/slow-learner-go/observer"
	"github.com/nj-vs-vh/slow-learner-go/simplify"
	"github.com/nj-vs-vh/slow-learner-go/term"
)

// Config is the tunable surface shared by the observer and the
// simplifier. It is config.Config under the hood; the alias keeps
// learner the one public entrypoint callers configure against, per
// SPEC_FULL.md §6.
type Config = config.Config

// Option mutates a Learner under construction in New, mirroring the
// cuecontext option-construction idiom from the teacher. Options that
// tune the shared Config are built with the With* constructors below;
// WithLogger tunes the Learner itself.
type Option func(*Learner)

func wrapConfigOption(co config.Option) Option {
	return func(l *Learner) { l.copts = append(l.copts, co) }
}

func WithMaxLiteralFan(n int) Option { return wrapConfigOption(config.WithMaxLiteralFan(n)) }
func WithMaxLiteralStringLength(n int) Option {
	return wrapConfigOption(config.WithMaxLiteralStringLength(n))
}
func WithLearnRecords(enabled bool) Option { return wrapConfigOption(config.WithLearnRecords(enabled)) }
func WithMaxRecordFields(n int) Option     { return wrapConfigOption(config.WithMaxRecordFields(n)) }
func WithMaxDepth(n int) Option            { return wrapConfigOption(config.WithMaxDepth(n)) }
func WithNoLiteralPatterns(patterns ...string) Option {
	return wrapConfigOption(config.WithNoLiteralPatterns(patterns...))
}

// WithConfig seeds the Learner from an already-built Config (e.g. one
// loaded with LoadConfig) in place of Default(); any Config options given
// alongside it are applied on top of the seed.
func WithConfig(cfg Config) Option {
	return func(l *Learner) { l.seed = &cfg }
}

// WithLogger attaches a logger; the Learner defaults to a null logger so
// callers that don't care about diagnostics pay nothing for them.
func WithLogger(log hclog.Logger) Option {
	return func(l *Learner) { l.log = log }
}

// LoadConfig reads a Config from YAML, falling back to Default() for any
// field the document omits.
func LoadConfig(r io.Reader) (Config, error) { return config.LoadYAML(r) }

// Learner is the incremental façade: it holds an optional accumulated
// snapshot, observing new values by unioning them in and re-simplifying,
// exactly as spec.md §4.5 describes. The zero value is not usable; build
// one with New.
type Learner struct {
	cfg   Config
	log   hclog.Logger
	seed  *Config
	copts []config.Option

	acc      term.Term
	hasAcc   bool
	observed uint64
}

// New builds a Learner from Default() (or a seeded Config, via
// WithConfig) plus the given options.
func New(opts ...Option) (*Learner, error) {
	l := &Learner{log: hclog.NewNullLogger()}
	for _, o := range opts {
		o(l)
	}

	copts := l.copts
	if l.seed != nil {
		seed := *l.seed
		copts = append([]config.Option{func(c *config.Config) { *c = seed }}, l.copts...)
	}

	cfg, err := config.New(copts...)
	if err != nil {
		return nil, err
	}
	l.cfg = cfg
	return l, nil
}

// Observe folds v into the accumulated snapshot. It never returns an
// error for any structurally observable Go value; decode failures live
// in the ingest package, not here, matching spec.md §7's propagation
// policy for the Learner.
func (l *Learner) Observe(v any) error {
	t := observer.Observe(v, l.cfg)
	atomic.AddUint64(&l.observed, 1)

	if !l.hasAcc {
		l.acc = t
		l.hasAcc = true
	} else {
		l.acc = term.Union{Members: []term.Term{l.acc, t}}
	}
	l.acc = simplify.Simplify(l.acc, l.cfg)

	l.log.Trace("observed value", "count", atomic.LoadUint64(&l.observed), "type", term.TypeTag(l.acc))
	if l.log.IsDebug() {
		l.log.Debug("accumulated snapshot", "dump", term.Dump(l.acc))
	}
	return nil
}

// Snapshot returns the current accumulated Term, or the empty Union
// sentinel if nothing has been observed yet.
func (l *Learner) Snapshot() term.Term {
	if !l.hasAcc {
		return term.EmptyUnion()
	}
	return l.acc
}

// Observed reports how many values have been folded in so far.
func (l *Learner) Observed() uint64 { return atomic.LoadUint64(&l.observed) }

// ErrNotReady is returned by Emit when nothing has been observed yet.
var ErrNotReady = emit.ErrNotReady

// Emit lowers the current snapshot through target, returning its
// rendered declaration. It fails with ErrNotReady if nothing has been
// observed.
func (l *Learner) Emit(target emit.Target, opts emit.Options) (string, error) {
	if !l.hasAcc {
		return "", ErrNotReady
	}
	return target.Emit(l.acc, opts)
}

// Merge unions two learners' snapshots and re-simplifies under cfg,
// supporting the spec's shard-by-key concurrency discipline (spec.md
// §5): callers shard ingestion across goroutines, each with its own
// Learner, then Merge the results. Merge itself does no I/O and holds no
// locks — the caller owns synchronization for concurrent Observe calls
// on each shard.
func Merge(cfg Config, a, b *Learner) *Learner {
	out := &Learner{cfg: cfg, log: hclog.NewNullLogger()}
	switch {
	case a == nil || !a.hasAcc:
		if b != nil {
			out.acc, out.hasAcc = b.acc, b.hasAcc
			out.observed = b.Observed()
		}
	case b == nil || !b.hasAcc:
		out.acc, out.hasAcc = a.acc, a.hasAcc
		out.observed = a.Observed()
	default:
		out.acc = simplify.Simplify(term.Union{Members: []term.Term{a.acc, b.acc}}, cfg)
		out.hasAcc = true
		out.observed = a.Observed() + b.Observed()
	}
	return out
}

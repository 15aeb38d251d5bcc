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

package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/nj-vs-vh/slow-learner-go/emit"
	"github.com/nj-vs-vh/slow-learner-go/emit/golang"
	"github.com/nj-vs-vh/slow-learner-go/emit/openapi"
	"github.com/nj-vs-vh/slow-learner-go/ingest"
	"github.com/nj-vs-vh/slow-learner-go/learner"
)

type learnFlags struct {
	outputFile    string
	typeName      string
	maxLiteralFan int
	spread        bool
	target        string
	configFile    string
	logLevel      string
}

func newLearnCmd() *cobra.Command {
	var f learnFlags

	c := &cobra.Command{
		Use:   "learn <inputs...>",
		Short: "Observe one or more JSON/YAML files and emit a type declaration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLearn(cmd, args, f)
		},
	}

	flags := c.Flags()
	flags.StringVar(&f.outputFile, "output-file", "", "path to write the emitted declaration to (required)")
	flags.StringVar(&f.typeName, "type-name", "", "top-level type name for the emitted declaration (required)")
	flags.IntVar(&f.maxLiteralFan, "max-literal-fan", 0, "override the configured literal fan cap (0 = use config default)")
	flags.BoolVar(&f.spread, "spread", false, "treat each input file as a top-level JSON array of independent samples")
	flags.StringVar(&f.target, "target", "go", "target notation: go or openapi")
	flags.StringVar(&f.configFile, "config", "", "path to a YAML config file")
	flags.StringVar(&f.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	_ = c.MarkFlagRequired("output-file")
	_ = c.MarkFlagRequired("type-name")

	return c
}

func runLearn(cmd *cobra.Command, inputs []string, f learnFlags) error {
	runID := uuid.New()
	level := f.logLevel
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = "error"
	}
	log := hclog.New(&hclog.LoggerOptions{
		Name:   "slearn",
		Level:  hclog.LevelFromString(level),
		Output: cmd.ErrOrStderr(),
	}).With("run_id", runID)

	opts := []learner.Option{learner.WithLogger(log)}
	if f.configFile != "" {
		cfgFile, err := os.Open(f.configFile)
		if err != nil {
			return fmt.Errorf("opening config file: %w", err)
		}
		defer cfgFile.Close()
		cfg, err := learner.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config file: %w", err)
		}
		opts = append(opts, learner.WithConfig(cfg))
	}
	if f.maxLiteralFan > 0 {
		opts = append(opts, learner.WithMaxLiteralFan(f.maxLiteralFan))
	}

	l, err := learner.New(opts...)
	if err != nil {
		return fmt.Errorf("building learner: %w", err)
	}

	var decodeErrs *multierror.Error
	observedAny := false

	for _, path := range inputs {
		file, err := os.Open(path)
		if err != nil {
			decodeErrs = multierror.Append(decodeErrs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		if f.spread {
			samples, seqErr := ingest.JSONSequence(file)
			file.Close()
			if seqErr != nil {
				decodeErrs = multierror.Append(decodeErrs, fmt.Errorf("%s: %w", path, seqErr))
			}
			for _, sample := range samples {
				if err := l.Observe(sample); err != nil {
					decodeErrs = multierror.Append(decodeErrs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				observedAny = true
			}
			continue
		}

		doc, err := ingest.FromJSON(file)
		file.Close()
		if err != nil {
			decodeErrs = multierror.Append(decodeErrs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if err := l.Observe(doc); err != nil {
			decodeErrs = multierror.Append(decodeErrs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		observedAny = true
	}

	if decodeErrs.ErrorOrNil() != nil {
		log.Warn("some inputs failed to decode", "error", decodeErrs.ErrorOrNil())
	}
	if !observedAny {
		return fmt.Errorf("no input produced any sample")
	}

	var t emit.Target
	switch f.target {
	case "go":
		t = golang.New()
	case "openapi":
		t = openapi.New()
	default:
		return fmt.Errorf("unknown target %q (want go or openapi)", f.target)
	}

	if _, err := os.Stat(f.outputFile); err == nil {
		return fmt.Errorf("%s: %w", f.outputFile, emit.ErrAlreadyExists)
	}

	doc := fmt.Sprintf("generated by run %s from %d observed values", runID, l.Observed())
	rendered, err := l.Emit(t, emit.Options{TypeName: f.typeName, Doc: doc})
	if err != nil {
		return fmt.Errorf("emitting %s: %w", f.target, err)
	}

	if err := os.WriteFile(f.outputFile, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.outputFile, err)
	}

	log.Info("wrote type declaration", "path", f.outputFile, "samples", l.Observed())
	return nil
}

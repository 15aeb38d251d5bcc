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

// Package cmd wires the slearn command tree with cobra/pflag, the same
// way the teacher's cmd/cue assembles its root command.
package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addGlobalFlags registers flags shared by every subcommand directly on
// the pflag.FlagSet, the same low-level idiom the teacher's cmd/cue uses
// for its own global flags.
func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP("quiet", "q", false, "suppress informational log output")
}

// New builds the root slearn command.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "slearn",
		Short:         "Infer a type description from a stream of structured values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(root.PersistentFlags())
	root.AddCommand(newLearnCmd())
	return root
}

// Execute runs the root command and prints any fatal error in red to
// stderr, matching the Python original's click.secho(fg="red") failure
// convention.
func Execute() int {
	root := New()
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(root.ErrOrStderr(), err.Error())
		return 1
	}
	return 0
}

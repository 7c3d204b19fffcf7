//  Copyright (c) 2018 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchbase/regexfsm"
	"github.com/spf13/cobra"
)

var logLevel string
var maxStates int

// input is read by commands taking their inputs from stdin
var input io.Reader = os.Stdin

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "regexfsm",
	Short: "A utility to compile patterns into finite state automata and check strings against them",
	Long:  `A utility to compile patterns into finite state automata and check strings against them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLogLevel(logLevel),
		}))
		slog.SetDefault(logger)
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	RootCmd.PersistentFlags().IntVar(&maxStates, "max-states", 10000, "maximum number of states in a compiled automaton, 0 for no limit")
}

func compile(pattern string) (*regexfsm.Automaton, error) {
	start := time.Now()
	a, err := regexfsm.CompileWithOpts(pattern, compileOpts())
	if err != nil {
		return nil, err
	}
	slog.Debug("compiled pattern",
		"pattern", pattern,
		"states", a.Len(),
		"duration", time.Since(start))
	return a, nil
}

func compileOpts() *regexfsm.CompileOpts {
	return &regexfsm.CompileOpts{
		MaxStates: maxStates,
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

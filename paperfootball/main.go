// Copyright 2026 The Paperfootball Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// paperfootball is the command line front end of the engine: a line-based
// REPL for playing and analysing games, plus small maintenance subcommands.

package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/easychessanimations/paperfootball/engine"
	"github.com/easychessanimations/paperfootball/notation"
	"github.com/easychessanimations/paperfootball/perft"
)

var (
	buildVersion = "(devel)"

	flagWidth     int
	flagHeight    int
	flagGoalWidth int
	flagFreeKick  int
	flagDepth     int
	flagSeed      int64
	flagVerbose   bool
)

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func buildGeometry() (*engine.Geometry, error) {
	r := notation.Record{
		Width:       flagWidth,
		Height:      flagHeight,
		GoalWidth:   flagGoalWidth,
		FreeKickLen: flagFreeKick,
		Depth:       flagDepth,
	}
	return r.Geometry()
}

func runREPL(cmd *cobra.Command, args []string) error {
	log := newLogger()
	geo, err := buildGeometry()
	if err != nil {
		return err
	}

	repl := newREPL(geo, flagSeed, os.Stdout, log)
	log.Debug().
		Str("game", repl.gameID.String()).
		Int("width", geo.Width).
		Int("height", geo.Height).
		Msg("new game")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := repl.Execute(scanner.Text()); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintf(os.Stdout, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func runPerft(cmd *cobra.Command, args []string) error {
	depth, err := cmd.Flags().GetInt("depth")
	if err != nil {
		return err
	}
	geo, err := buildGeometry()
	if err != nil {
		return err
	}

	state := engine.NewState(geo)
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := perft.Perft(state, d)
		fmt.Printf("perft(%d) = %d (%v)\n", d, nodes, time.Since(start))
	}
	return nil
}

func main() {
	root := &cobra.Command{
		Use:          "paperfootball",
		Short:        "paper football engine with a Monte-Carlo tree search AI",
		RunE:         runREPL,
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVar(&flagWidth, "width", 9, "board width")
	root.PersistentFlags().IntVar(&flagHeight, "height", 11, "board height")
	root.PersistentFlags().IntVar(&flagGoalWidth, "goal-width", 2, "goal width")
	root.PersistentFlags().IntVar(&flagFreeKick, "fk", 0, "free kick length, selects the free-kick ruleset")
	root.PersistentFlags().IntVar(&flagDepth, "hockey-depth", 0, "behind-goal depth, selects the hockey shape")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", time.Now().UnixNano(), "random seed")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "debug logging")

	perftCmd := &cobra.Command{
		Use:   "perft",
		Short: "count half-move paths from the initial position",
		RunE:  runPerft,
	}
	perftCmd.Flags().Int("depth", 4, "maximum path length")
	root.AddCommand(perftCmd)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print the version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("paperfootball %s, built with %s\n", buildVersion, runtime.Version())
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

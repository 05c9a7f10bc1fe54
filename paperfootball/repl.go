// Copyright 2026 The Paperfootball Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// repl.go implements the command interpreter. Every textual command maps to
// one or more engine calls; a failed command leaves the game untouched.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/easychessanimations/paperfootball/engine"
	"github.com/easychessanimations/paperfootball/notation"
)

var errQuit = errors.New("quit")

type aiKind string

const (
	aiMcts   aiKind = "mcts"
	aiRandom aiKind = "random"
)

// repl holds one interactive session: the board, the engine behind it and
// the per-game identity used in the logs.
type repl struct {
	geo    *engine.Geometry
	ai     engine.AI
	kind   aiKind
	seed   int64
	gameID uuid.UUID
	out    io.Writer
	log    zerolog.Logger
}

func newREPL(geo *engine.Geometry, seed int64, out io.Writer, log zerolog.Logger) *repl {
	r := &repl{
		geo:    geo,
		kind:   aiMcts,
		seed:   seed,
		gameID: uuid.New(),
		out:    out,
		log:    log,
	}
	r.ai = r.newAI(geo)
	return r
}

func (r *repl) newAI(geo *engine.Geometry) engine.AI {
	if r.kind == aiRandom {
		return engine.NewRandomAI(geo, r.seed)
	}
	ai := engine.NewMctsAI(geo, r.seed)
	ai.Log = &searchLogger{log: r.log}
	return ai
}

// searchLogger forwards search progress to the session logger.
type searchLogger struct {
	log zerolog.Logger
}

func (sl *searchLogger) BeginSearch() {
	sl.log.Debug().Msg("search started")
}

func (sl *searchLogger) EndSearch(stats engine.SearchStats) {
	sl.log.Debug().
		Uint64("simulations", stats.Simulations).
		Uint64("rollout_steps", stats.RolloutSteps).
		Uint32("nodes", stats.UsedNodes).
		Dur("elapsed", stats.Elapsed).
		Msg("search finished")
}

// Execute runs one command line. It returns errQuit when the session ends.
func (r *repl) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit":
		return errQuit
	case "ping":
		fmt.Fprintf(r.out, "pong %s\n", strings.Join(args, " "))
		return nil
	case "status":
		return r.status(args)
	case "board":
		return r.board(args)
	case "new":
		return r.newGame(args)
	case "step":
		return r.step(args)
	case "history":
		return r.history(args)
	case "undo":
		return r.undo(args)
	case "go":
		return r.go_(args)
	case "params":
		return r.params(args)
	case "set":
		return r.set(args)
	case "ai":
		return r.switchAI(args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (r *repl) status(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("status takes no arguments")
	}
	state := r.ai.State()

	fmt.Fprintf(r.out, "Game id:       %s\n", r.gameID)
	fmt.Fprintf(r.out, "Board width:   %4d\n", r.geo.Width)
	fmt.Fprintf(r.out, "Board height:  %4d\n", r.geo.Height)
	fmt.Fprintf(r.out, "Goal width:    %4d\n", r.geo.GoalWidth)
	if r.geo.FreeKickLen > 0 {
		fmt.Fprintf(r.out, "Free kick:     %4d\n", r.geo.FreeKickLen)
	}
	if r.geo.Depth > 0 {
		fmt.Fprintf(r.out, "Hockey depth:  %4d\n", r.geo.Depth)
	}
	fmt.Fprintf(r.out, "Engine:        %4s\n", r.kind)
	fmt.Fprintf(r.out, "Active player: %4d\n", state.Active())
	if ball := state.Ball(); ball >= 0 {
		x, y := r.geo.XY(ball)
		fmt.Fprintf(r.out, "Ball position: %4d, %d\n", x, y)
	}
	fmt.Fprintf(r.out, "Status:        %s\n", state.Status())
	return nil
}

// board renders the grid: drawn edges around every point, the ball in green,
// the goal rows in yellow.
func (r *repl) board(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("board takes no arguments")
	}
	state := r.ai.State()
	ballColor := color.New(color.FgGreen, color.Bold)
	goalColor := color.New(color.FgYellow)

	for y := r.geo.HeightTotal() - 1; y >= 0; y-- {
		var row, joint strings.Builder
		for x := 0; x < r.geo.Width; x++ {
			p := r.geo.Pt(x, y)
			mask := state.LineMask(p)

			cell := "+"
			if state.Ball() == p {
				cell = ballColor.Sprint("o")
			} else if r.geo.Connection(p, engine.N) == engine.Goal1 ||
				r.geo.Connection(p, engine.S) == engine.Goal2 {
				cell = goalColor.Sprint("+")
			}
			row.WriteString(cell)

			if x+1 < r.geo.Width {
				if mask.Has(engine.E) && r.geo.Connection(p, engine.E) >= 0 {
					row.WriteString("--")
				} else {
					row.WriteString("  ")
				}
			}

			if y > 0 {
				switch {
				case mask.Has(engine.S) && r.geo.Connection(p, engine.S) >= 0:
					joint.WriteString("|")
				default:
					joint.WriteString(" ")
				}
				if x+1 < r.geo.Width {
					se := mask.Has(engine.SE) && r.geo.Connection(p, engine.SE) >= 0
					east := r.geo.Connection(p, engine.E)
					sw := east >= 0 && state.LineMask(east).Has(engine.SW) &&
						r.geo.Connection(east, engine.SW) >= 0
					switch {
					case se && sw:
						joint.WriteString("><")
					case se:
						joint.WriteString(" \\")
					case sw:
						joint.WriteString(" /")
					default:
						joint.WriteString("  ")
					}
				}
			}
		}
		fmt.Fprintln(r.out, row.String())
		if y > 0 {
			fmt.Fprintln(r.out, joint.String())
		}
	}
	return nil
}

func (r *repl) newGame(args []string) error {
	record, err := notation.ParseRecord(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(record.Steps) > 0 {
		return fmt.Errorf("new does not accept steps, use the step command")
	}
	geo, err := record.Geometry()
	if err != nil {
		return err
	}
	if err := r.ai.Reset(geo); err != nil {
		return err
	}
	r.geo = geo
	r.gameID = uuid.New()
	r.log.Debug().Str("game", r.gameID.String()).Msg("new game")
	return nil
}

func (r *repl) step(args []string) error {
	if len(args) == 0 {
		steps := r.ai.State().GetSteps()
		if steps != 0 {
			fmt.Fprintln(r.out, steps)
		}
		return nil
	}

	steps, err := notation.ParseSteps(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if err := r.ai.DoSteps(steps); err != nil {
		return fmt.Errorf("%s", r.ai.LastError())
	}
	if status := r.ai.State().Status(); status != engine.InProgress {
		fmt.Fprintln(r.out, status)
	}
	return nil
}

func (r *repl) history(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("history takes no arguments")
	}
	steps := r.ai.History().Steps()
	if len(steps) > 0 {
		fmt.Fprintln(r.out, notation.FormatSteps(steps))
	}
	return nil
}

func (r *repl) undo(args []string) error {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return fmt.Errorf("undo expects a positive count")
		}
		n = v
	}
	return r.ai.UndoSteps(n)
}

func (r *repl) go_(args []string) error {
	explain := false
	if len(args) == 1 && strings.EqualFold(args[0], "explain") {
		explain = true
	} else if len(args) != 0 {
		return fmt.Errorf("usage: go [explain]")
	}

	var ex *engine.Explanation
	if explain {
		ex = &engine.Explanation{}
	}
	step, err := r.ai.Go(ex)
	if err != nil {
		return err
	}
	if err := r.ai.DoStep(step); err != nil {
		return err
	}

	fmt.Fprintln(r.out, step)
	if explain {
		fmt.Fprintf(r.out, "time %v score %.3f\n", ex.Time, ex.Score)
		for _, stat := range ex.Stats {
			fmt.Fprintf(r.out, "  %-2v qgames %7d score %.3f\n", stat.Step, stat.QGames, stat.Score)
		}
	}
	if status := r.ai.State().Status(); status != engine.InProgress {
		fmt.Fprintln(r.out, status)
	}
	return nil
}

func (r *repl) params(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("params takes no arguments")
	}
	for _, p := range r.ai.Params() {
		fmt.Fprintf(r.out, "%-10s %v\n", p.Name, p.Value)
	}
	return nil
}

func (r *repl) set(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <param> <value>")
	}
	name, raw := args[0], args[1]

	for _, p := range r.ai.Params() {
		if !strings.EqualFold(p.Name, name) {
			continue
		}
		switch p.Kind {
		case engine.U32:
			v, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				return fmt.Errorf("%w: %q is not a u32", engine.ErrInvalidArgument, raw)
			}
			return r.ai.SetParam(name, uint32(v))
		case engine.F32:
			v, err := strconv.ParseFloat(raw, 32)
			if err != nil {
				return fmt.Errorf("%w: %q is not a f32", engine.ErrInvalidArgument, raw)
			}
			return r.ai.SetParam(name, v)
		}
	}
	return fmt.Errorf("%w: unknown parameter %q", engine.ErrInvalidArgument, name)
}

func (r *repl) switchAI(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ai <random|mcts>")
	}
	switch aiKind(strings.ToLower(args[0])) {
	case aiRandom:
		r.kind = aiRandom
	case aiMcts:
		r.kind = aiMcts
	default:
		return fmt.Errorf("unknown engine %q", args[0])
	}
	r.ai = r.newAI(r.geo)
	r.gameID = uuid.New()
	return nil
}

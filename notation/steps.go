// Copyright 2026 The Paperfootball Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notation implements parsing and formatting of direction lists and
// whole game records. A game is fully reconstructible from its geometry
// arguments and the list of played directions, so the record doubles as the
// engine's only persistence format.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/easychessanimations/paperfootball/engine"
)

// ParseSteps parses a whitespace-separated list of direction names, e.g.
// "n NE sw". Matching is case insensitive.
func ParseSteps(line string) ([]engine.Step, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	steps := make([]engine.Step, len(fields))
	for i, field := range fields {
		step, err := engine.StepFromString(field)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		steps[i] = step
	}
	return steps, nil
}

// FormatSteps renders steps space separated, the inverse of ParseSteps.
func FormatSteps(steps []engine.Step) string {
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.String()
	}
	return strings.Join(names, " ")
}

// Record is a replayable game: the geometry arguments plus the played
// directions.
type Record struct {
	Width       int
	Height      int
	GoalWidth   int
	FreeKickLen int // non-zero selects the free-kick ruleset
	Depth       int // non-zero selects the hockey shape

	Steps []engine.Step
}

// Geometry builds the record's board.
func (r *Record) Geometry() (*engine.Geometry, error) {
	switch {
	case r.FreeKickLen != 0 && r.Depth != 0:
		return nil, fmt.Errorf("%w: a record cannot combine free kicks and a hockey shape", engine.ErrInvalidArgument)
	case r.FreeKickLen != 0:
		return engine.NewFKGeometry(r.Width, r.Height, r.GoalWidth, r.FreeKickLen)
	case r.Depth != 0:
		return engine.NewHockeyGeometry(r.Width, r.Height, r.GoalWidth, r.Depth)
	default:
		return engine.NewStdGeometry(r.Width, r.Height, r.GoalWidth)
	}
}

// Replay builds the board and applies every recorded direction. A rejected
// direction fails with its index.
func (r *Record) Replay() (*engine.State, error) {
	geo, err := r.Geometry()
	if err != nil {
		return nil, err
	}
	state := engine.NewState(geo)
	for i, step := range r.Steps {
		if next := state.Step(step, nil); next == engine.NoWay {
			return nil, fmt.Errorf("step %d (%v): %w", i, step, engine.ErrOccupied)
		}
	}
	return state, nil
}

// String renders the record in the "9 11 2 / N NE SW" form accepted by
// ParseRecord.
func (r *Record) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d", r.Width, r.Height, r.GoalWidth)
	if r.FreeKickLen != 0 {
		fmt.Fprintf(&sb, " fk %d", r.FreeKickLen)
	}
	if r.Depth != 0 {
		fmt.Fprintf(&sb, " hockey %d", r.Depth)
	}
	if len(r.Steps) > 0 {
		sb.WriteString(" / ")
		sb.WriteString(FormatSteps(r.Steps))
	}
	return sb.String()
}

// ParseRecord parses the form produced by Record.String: geometry arguments,
// then an optional "/" followed by the played directions.
func ParseRecord(line string) (*Record, error) {
	head, tail, hasSteps := strings.Cut(line, "/")

	fields := strings.Fields(head)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: a record needs width, height and goal width", engine.ErrInvalidArgument)
	}

	r := &Record{}
	dims := []*int{&r.Width, &r.Height, &r.GoalWidth}
	for i, dst := range dims {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: bad geometry argument %q", engine.ErrInvalidArgument, fields[i])
		}
		*dst = v
	}

	rest := fields[3:]
	for len(rest) > 0 {
		if len(rest) < 2 {
			return nil, fmt.Errorf("%w: %q needs a value", engine.ErrInvalidArgument, rest[0])
		}
		v, err := strconv.Atoi(rest[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad value %q for %q", engine.ErrInvalidArgument, rest[1], rest[0])
		}
		switch strings.ToLower(rest[0]) {
		case "fk":
			r.FreeKickLen = v
		case "hockey":
			r.Depth = v
		default:
			return nil, fmt.Errorf("%w: unknown geometry variant %q", engine.ErrInvalidArgument, rest[0])
		}
		rest = rest[2:]
	}

	if hasSteps {
		steps, err := ParseSteps(tail)
		if err != nil {
			return nil, err
		}
		r.Steps = steps
	}
	return r, nil
}

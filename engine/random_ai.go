// Copyright 2026 The Paperfootball Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomAI plays a uniformly random legal direction. It is the reference
// opponent used by the tests and the weakest CLI engine.
type RandomAI struct {
	state   *State
	backup  *State
	history History
	rng     *rand.Rand
	lastErr string
}

// NewRandomAI creates a random engine for geo. The same seed always
// reproduces the same game.
func NewRandomAI(geo *Geometry, seed int64) *RandomAI {
	return &RandomAI{
		state:  NewState(geo),
		backup: NewState(geo),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (ai *RandomAI) fail(err error) error {
	ai.lastErr = err.Error()
	return err
}

// Reset re-initialises the engine on a new geometry.
func (ai *RandomAI) Reset(geo *Geometry) error {
	ai.lastErr = ""
	ai.state = NewState(geo)
	ai.backup = NewState(geo)
	ai.history.Reset()
	return nil
}

// DoStep applies one half-move.
func (ai *RandomAI) DoStep(step Step) error {
	ai.lastErr = ""
	if next := ai.state.Step(step, &ai.history); next == NoWay {
		return ai.fail(fmt.Errorf("%v: %w", step, ErrOccupied))
	}
	return nil
}

// DoSteps applies steps atomically: on failure the position and the history
// are restored and the index of the offending step is reported.
func (ai *RandomAI) DoSteps(steps []Step) error {
	ai.lastErr = ""
	if err := ai.backup.CopyFrom(ai.state); err != nil {
		return ai.fail(err)
	}
	mark := ai.history.Len()
	for i, step := range steps {
		if next := ai.state.Step(step, &ai.history); next == NoWay {
			ai.state, ai.backup = ai.backup, ai.state
			ai.history.TruncateSteps(mark)
			return ai.fail(fmt.Errorf("step %d (%v): %w", i, step, ErrOccupied))
		}
	}
	return nil
}

// UndoStep reverses the last half-move.
func (ai *RandomAI) UndoStep() error {
	ai.lastErr = ""
	batch, ok := ai.history.PopStep()
	if !ok {
		return ai.fail(ErrNoHistory)
	}
	ai.state.Rollback(batch)
	return nil
}

// UndoSteps reverses the last n half-moves.
func (ai *RandomAI) UndoSteps(n int) error {
	ai.lastErr = ""
	if ai.history.Len() < n {
		return ai.fail(fmt.Errorf("%w: %d half-moves recorded, %d requested", ErrNoHistory, ai.history.Len(), n))
	}
	for i := 0; i < n; i++ {
		batch, _ := ai.history.PopStep()
		ai.state.Rollback(batch)
	}
	return nil
}

// Go returns a uniformly random legal direction.
func (ai *RandomAI) Go(ex *Explanation) (Step, error) {
	start := time.Now()
	ai.lastErr = ""

	steps := ai.state.GetSteps()
	if steps == 0 {
		return NoStep, ai.fail(ErrNoMoves)
	}

	var alternatives [QSteps]Step
	var stats []StepStat
	qalternatives := 0
	for rest := steps; rest != 0; {
		step := rest.Pop()
		alternatives[qalternatives] = step
		qalternatives++
		if ex != nil {
			stats = append(stats, StepStat{Step: step, QGames: -1, Score: 0.5})
		}
	}

	choice := 0
	if qalternatives > 1 {
		choice = ai.rng.Intn(qalternatives)
	}

	if ex != nil {
		if qalternatives <= 1 {
			stats = nil
		}
		*ex = Explanation{Time: time.Since(start), Score: 0.5, Stats: stats}
	}
	return alternatives[choice], nil
}

// Params returns the empty parameter list: the random engine has no knobs.
func (ai *RandomAI) Params() []Param {
	return nil
}

// SetParam always fails: the random engine has no parameters.
func (ai *RandomAI) SetParam(name string, value interface{}) error {
	return ai.fail(fmt.Errorf("%w: unknown parameter %q", ErrInvalidArgument, name))
}

// State returns a read-only view of the current position.
func (ai *RandomAI) State() *State {
	return ai.state
}

// History exposes the played half-moves for the CLI.
func (ai *RandomAI) History() *History {
	return &ai.history
}

// LastError returns the message of the most recent failure.
func (ai *RandomAI) LastError() string {
	return ai.lastErr
}

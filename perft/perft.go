// Copyright 2026 The Paperfootball Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perft counts the half-move paths of a fixed length reachable from
// a position. The counts pin down the move generator: any change to the
// legality rules shows up as a different number.
package perft

import "github.com/easychessanimations/paperfootball/engine"

// Perft returns the number of distinct half-move sequences of length depth
// starting at state. Shorter sequences ending the game are counted once.
// The state is restored before returning.
func Perft(state *engine.State, depth int) uint64 {
	if depth == 0 || state.Status() != engine.InProgress {
		return 1
	}

	var nodes uint64
	var h engine.History
	for rest := state.GetSteps(); rest != 0; {
		step := rest.Pop()
		if state.Step(step, &h) == engine.NoWay {
			continue
		}
		nodes += Perft(state, depth-1)
		batch, _ := h.PopStep()
		state.Rollback(batch)
	}
	return nodes
}

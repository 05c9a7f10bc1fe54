// Copyright 2026 The Paperfootball Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// ChangeWhat classifies one entry of the change log.
type ChangeWhat uint8

const (
	// ChangeMove draws one edge and moves the ball along it. Point is the
	// origin, Step the direction.
	ChangeMove ChangeWhat = iota

	// ChangeFreeKick teleports the ball along a free-kick ray without
	// drawing edges. Point is the origin, Step the direction.
	ChangeFreeKick

	// ChangeFlip toggles the active player.
	ChangeFlip

	// ChangeBallTeleport moves the ball off the field on a scoring move.
	// Point is the last in-field position, Step the scoring direction.
	ChangeBallTeleport

	// ChangeLineMask overwrote a point's line mask when marking occupancy
	// or a crossing diagonal. Point is the point, Mask its previous value.
	ChangeLineMask

	// ChangeLeg1 and ChangeLeg2 overwrote a committed sequence leg.
	// Step is the previous value.
	ChangeLeg1
	ChangeLeg2

	// ChangeStep12 overwrote the two-ply availability bitmap. Data is the
	// previous value.
	ChangeStep12
)

// Change is one reversible state mutation. State.Step appends the changes it
// makes; State.Rollback consumes them in reverse.
type Change struct {
	What  ChangeWhat
	Point Point
	Step  Step
	Mask  uint8
	Data  uint64
}

// History is an append-only log of state changes grouped into user-level
// half-moves. The capacity grows geometrically and never shrinks during a
// game, so pushes are amortised O(1).
type History struct {
	changes []Change
	marks   []int // start index of each half-move's change batch
}

// Len returns the number of half-moves recorded.
func (h *History) Len() int {
	return len(h.marks)
}

// Steps returns the direction of every recorded half-move, oldest first.
func (h *History) Steps() []Step {
	steps := make([]Step, len(h.marks))
	for i, mark := range h.marks {
		steps[i] = h.changes[mark].Step
	}
	return steps
}

// PopStep removes the most recent half-move and returns its change batch,
// oldest change first. The returned slice aliases the history's buffer and
// is only valid until the next push.
func (h *History) PopStep() ([]Change, bool) {
	if len(h.marks) == 0 {
		return nil, false
	}
	mark := h.marks[len(h.marks)-1]
	h.marks = h.marks[:len(h.marks)-1]
	batch := h.changes[mark:]
	h.changes = h.changes[:mark]
	return batch, true
}

// TruncateSteps drops every half-move recorded after the first n.
func (h *History) TruncateSteps(n int) {
	if n >= len(h.marks) {
		return
	}
	h.changes = h.changes[:h.marks[n]]
	h.marks = h.marks[:n]
}

// Reset forgets all recorded half-moves but keeps the allocated capacity.
func (h *History) Reset() {
	h.changes = h.changes[:0]
	h.marks = h.marks[:0]
}

// beginStep opens a new half-move batch.
func (h *History) beginStep() {
	if h == nil {
		return
	}
	h.marks = append(h.marks, len(h.changes))
}

func (h *History) record(c Change) {
	if h == nil {
		return
	}
	if len(h.changes) == cap(h.changes) {
		grown := make([]Change, len(h.changes), 2*cap(h.changes)+128)
		copy(grown, h.changes)
		h.changes = grown
	}
	h.changes = append(h.changes, c)
}

// Copyright 2026 The Paperfootball Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the paper football board, move application and
// position searching.
//
// The package provides the core functionality for the paperfootball engine
// and can be used as a general library for paper football tool writing.
//
// Geometry (geometry.go) precomputes a directed connection table over the
// grid so that move application is a single table lookup. State (state.go)
// keeps one byte of drawn-line bits per point together with the ball and the
// active player; the free-kick ruleset additionally maintains a two-ply
// availability bitmap. Search (mcts.go) is a Monte-Carlo tree search over an
// index-linked node arena:
//
//   - UCB1 selection - https://en.wikipedia.org/wiki/Monte_Carlo_tree_search
//   - uniform random rollouts specialised to the line-mask representation
//   - fail-soft arena allocation: an exhausted arena stops tree growth but
//     the search keeps using the nodes it has
package engine

import (
	"fmt"
	"math/bits"
	"strings"
)

// Step identifies one of the eight move directions, indexed clockwise
// starting at north-west.
type Step uint8

const (
	NW Step = iota
	N
	NE
	E
	SE
	S
	SW
	W

	// QSteps is the number of directions.
	QSteps = int(iota)

	// NoStep is returned when no direction applies.
	NoStep = Step(QSteps)
)

var stepNames = [QSteps]string{"NW", "N", "NE", "E", "SE", "S", "SW", "W"}

// Per-direction coordinate deltas. North is towards larger y.
var (
	stepDX = [QSteps]int{-1, 0, +1, +1, +1, 0, -1, -1}
	stepDY = [QSteps]int{+1, +1, +1, 0, -1, -1, -1, 0}
)

// Back returns the opposite direction.
func (s Step) Back() Step {
	return (s + 4) & 7
}

// IsDiagonal returns true for NW, NE, SE and SW.
func (s Step) IsDiagonal() bool {
	return s&1 == 0
}

func (s Step) String() string {
	if s >= NoStep {
		return "??"
	}
	return stepNames[s]
}

// StepFromString parses a direction name. Matching is case insensitive.
func StepFromString(name string) (Step, error) {
	for s, n := range stepNames {
		if strings.EqualFold(name, n) {
			return Step(s), nil
		}
	}
	return NoStep, fmt.Errorf("%w: unknown direction %q", ErrInvalidArgument, name)
}

// StepSet is a bitmask over the eight directions.
type StepSet uint8

// Has returns true if s is in the set.
func (ss StepSet) Has(s Step) bool {
	return ss&(1<<s) != 0
}

// Count returns the number of directions in the set.
func (ss StepSet) Count() int {
	return bits.OnesCount8(uint8(ss))
}

// First returns the lowest direction in the set.
// Returns NoStep for the empty set.
func (ss StepSet) First() Step {
	return Step(bits.TrailingZeros8(uint8(ss)))
}

// Pop removes and returns the lowest direction in the set.
func (ss *StepSet) Pop() Step {
	s := ss.First()
	*ss &= *ss - 1
	return s
}

func (ss StepSet) String() string {
	var names []string
	for rest := ss; rest != 0; {
		names = append(names, rest.Pop().String())
	}
	return strings.Join(names, " ")
}

// magicSteps[mask][n] is the n-th direction of mask, NoStep once the mask is
// exhausted. Rollouts use it to pick a uniform member of a step set without
// looping over the bits.
var magicSteps [256][QSteps]Step

func init() {
	for mask := 0; mask < 256; mask++ {
		rest := StepSet(mask)
		for n := 0; n < QSteps; n++ {
			if rest == 0 {
				magicSteps[mask][n] = NoStep
			} else {
				magicSteps[mask][n] = rest.Pop()
			}
		}
	}
}

// Point identifies a location on the board. The negative values are
// sentinels: an edge ending in Goal1 or Goal2 scores into that goal, NoWay
// marks a forbidden edge.
type Point int32

const (
	Goal1 Point = -1
	Goal2 Point = -2
	NoWay Point = -3
)

func (p Point) String() string {
	switch p {
	case Goal1:
		return "goal1"
	case Goal2:
		return "goal2"
	case NoWay:
		return "no way"
	}
	return fmt.Sprintf("%d", int32(p))
}

// Copyright 2026 The Paperfootball Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

const (
	testWidth     = 9
	testHeight    = 11
	testGoalWidth = 2
)

func stdGeometry(t *testing.T) *Geometry {
	t.Helper()
	geo, err := NewStdGeometry(testWidth, testHeight, testGoalWidth)
	if err != nil {
		t.Fatalf("NewStdGeometry(%d, %d, %d): %v", testWidth, testHeight, testGoalWidth, err)
	}
	return geo
}

func checkSteps(t *testing.T, geo *Geometry, x, y int, expected [QSteps]Point) {
	t.Helper()
	p := geo.Pt(x, y)
	for step := Step(0); step < NoStep; step++ {
		if next := geo.Connection(p, step); next != expected[step] {
			t.Errorf("unexpected step: x=%d, y=%d, step=%v, next=%v, expected next=%v",
				x, y, step, next, expected[step])
		}
	}
}

func applyPath(geo *Geometry, start Point, path []Step) Point {
	p := start
	for _, step := range path {
		if p < 0 {
			break
		}
		p = geo.Connection(p, step)
	}
	return p
}

func TestStdGeometry(t *testing.T) {
	geo := stdGeometry(t)

	if geo.Qpoints() != testWidth*testHeight {
		t.Fatalf("qpoints = %d", geo.Qpoints())
	}

	center := geo.Pt(4, 5)
	checkSteps(t, geo, 4, 5, [QSteps]Point{
		geo.Pt(3, 6), geo.Pt(4, 6), geo.Pt(5, 6), geo.Pt(5, 5),
		geo.Pt(5, 4), geo.Pt(4, 4), geo.Pt(3, 4), geo.Pt(3, 5),
	})

	// The corner has exactly one way out, the diagonal into the field.
	checkSteps(t, geo, 0, 10, [QSteps]Point{
		NoWay, NoWay, NoWay, NoWay, geo.Pt(1, 9), NoWay, NoWay, NoWay,
	})

	// Crawling along the side wall is forbidden.
	checkSteps(t, geo, 8, 6, [QSteps]Point{
		geo.Pt(7, 7), NoWay, NoWay, NoWay, NoWay, NoWay,
		geo.Pt(7, 5), geo.Pt(7, 6),
	})

	checkSteps(t, geo, 1, 0, [QSteps]Point{
		geo.Pt(0, 1), geo.Pt(1, 1), geo.Pt(2, 1),
		NoWay, NoWay, NoWay, NoWay, NoWay,
	})

	// A goalpost scores on the exterior diagonal but not along its column.
	checkSteps(t, geo, 5, 10, [QSteps]Point{
		Goal1, NoWay, NoWay, NoWay, geo.Pt(6, 9),
		geo.Pt(5, 9), geo.Pt(4, 9), geo.Pt(4, 10),
	})

	checkSteps(t, geo, 4, 0, [QSteps]Point{
		geo.Pt(3, 1), geo.Pt(4, 1), geo.Pt(5, 1),
		geo.Pt(5, 0), Goal2, Goal2, Goal2, geo.Pt(3, 0),
	})

	cycle := []Step{SW, W, NW, S, E, N, NE, SE}
	if finish := applyPath(geo, center, cycle); finish != center {
		t.Errorf("cycle from center finishes at %v", finish)
	}

	out := []Step{SW, SW, SW, SW, SW}
	if finish := applyPath(geo, center, out); finish != NoWay {
		t.Errorf("walk off the board finishes at %v", finish)
	}

	goal1 := []Step{N, N, N, N, N, NE}
	if finish := applyPath(geo, center, goal1); finish != Goal1 {
		t.Errorf("north goal path finishes at %v", finish)
	}

	goal2 := []Step{S, S, S, S, SW, SE}
	if finish := applyPath(geo, center, goal2); finish != Goal2 {
		t.Errorf("south goal path finishes at %v", finish)
	}
}

func TestStdGeometryRanges(t *testing.T) {
	bad := [][3]int{
		{4, 11, 2}, // even width
		{3, 11, 2}, // width too small
		{9, 10, 2}, // even height
		{9, 3, 2},  // height too small
		{9, 11, 3}, // odd goal width
		{9, 11, 0}, // goal width too small
		{9, 11, 8}, // goal does not fit
		{5, 5, 4},  // goal does not fit
	}
	for _, args := range bad {
		if _, err := NewStdGeometry(args[0], args[1], args[2]); err == nil {
			t.Errorf("NewStdGeometry(%d, %d, %d) expected to fail", args[0], args[1], args[2])
		}
	}
	for _, args := range [][3]int{{5, 5, 2}, {9, 11, 2}, {15, 13, 6}} {
		if _, err := NewStdGeometry(args[0], args[1], args[2]); err != nil {
			t.Errorf("NewStdGeometry(%d, %d, %d): %v", args[0], args[1], args[2], err)
		}
	}
}

func TestConnectionsInRange(t *testing.T) {
	geo := stdGeometry(t)
	for p := Point(0); p < geo.Qpoints(); p++ {
		for step := Step(0); step < NoStep; step++ {
			next := geo.Connection(p, step)
			if next >= geo.Qpoints() || (next < 0 && next != Goal1 && next != Goal2 && next != NoWay) {
				t.Fatalf("connection out of range: p=%v step=%v next=%v", p, step, next)
			}
		}
	}
}

// Every in-field connection must lead back along the opposite direction.
func TestConnectionSymmetry(t *testing.T) {
	geo := stdGeometry(t)
	for p := Point(0); p < geo.Qpoints(); p++ {
		for step := Step(0); step < NoStep; step++ {
			next := geo.Connection(p, step)
			if next < 0 {
				continue
			}
			if back := geo.Connection(next, step.Back()); back != p {
				t.Fatalf("asymmetric edge: %v --%v--> %v --%v--> %v", p, step, next, step.Back(), back)
			}
		}
	}
}

func TestFKGeometry(t *testing.T) {
	const fkLen = 4
	geo, err := NewFKGeometry(testWidth, testHeight, testGoalWidth, fkLen)
	if err != nil {
		t.Fatalf("NewFKGeometry: %v", err)
	}

	center := geo.Pt(4, 5)
	expected := [QSteps]Point{
		geo.Pt(0, 9), geo.Pt(4, 9), geo.Pt(8, 9), geo.Pt(8, 5),
		geo.Pt(8, 1), geo.Pt(4, 1), geo.Pt(0, 1), geo.Pt(0, 5),
	}
	for step := Step(0); step < NoStep; step++ {
		if got := geo.FreeKick(center, step); got != expected[step] {
			t.Errorf("free kick %v from center: %v, expected %v", step, got, expected[step])
		}
	}

	// A ray crossing the goal within the stride scores.
	if got := geo.FreeKick(geo.Pt(4, 9), N); got != Goal1 {
		t.Errorf("free kick N from (4,9): %v, expected goal1", got)
	}
	// A ray leaving the field is no way.
	if got := geo.FreeKick(geo.Pt(1, 5), W); got != NoWay {
		t.Errorf("free kick W from (1,5): %v, expected no way", got)
	}

	for _, fk := range []int{3, 4 + 1} {
		if _, err := NewFKGeometry(testWidth, testHeight, testGoalWidth, fk); err == nil {
			t.Errorf("NewFKGeometry with stride %d expected to fail", fk)
		}
	}
}

func TestHockeyGeometry(t *testing.T) {
	const depth = 2
	geo, err := NewHockeyGeometry(9, 5, 2, depth)
	if err != nil {
		t.Fatalf("NewHockeyGeometry: %v", err)
	}
	if geo.HeightTotal() != 9 || geo.Qpoints() != 81 {
		t.Fatalf("height total %d, qpoints %d", geo.HeightTotal(), geo.Qpoints())
	}

	// Clipped corner cells have no connections at all.
	for _, p := range []Point{geo.Pt(0, 0), geo.Pt(1, 0), geo.Pt(0, 1), geo.Pt(8, 0), geo.Pt(0, 8), geo.Pt(8, 8)} {
		for step := Step(0); step < NoStep; step++ {
			if geo.Connection(p, step) != NoWay {
				t.Fatalf("clipped cell %v has connection %v", p, step)
			}
		}
	}

	// Cells behind the net are dead; nothing leads into them.
	behind := geo.Pt(4, 0)
	for step := Step(0); step < NoStep; step++ {
		if geo.Connection(behind, step) != NoWay {
			t.Fatalf("behind-net cell has connection %v", step)
		}
	}
	if geo.Connection(geo.Pt(4, 3), S) != geo.Pt(4, 2) {
		t.Fatalf("field does not reach the goal line row")
	}

	// Crossing the goal line inside the window scores; the goalpost
	// column does not.
	if got := geo.Connection(geo.Pt(4, 2), S); got != Goal2 {
		t.Errorf("S from (4,2): %v, expected goal2", got)
	}
	if got := geo.Connection(geo.Pt(4, 6), N); got != Goal1 {
		t.Errorf("N from (4,6): %v, expected goal1", got)
	}
	if got := geo.Connection(geo.Pt(5, 6), NW); got != Goal1 {
		t.Errorf("NW from (5,6): %v, expected goal1", got)
	}
	if got := geo.Connection(geo.Pt(3, 6), N); got != NoWay {
		t.Errorf("N from the goalpost column: %v, expected no way", got)
	}

	// Behind-goal pockets at the sides stay playable.
	if got := geo.Connection(geo.Pt(2, 1), N); got != geo.Pt(2, 2) {
		t.Errorf("N from the south pocket: %v", got)
	}
	if got := geo.Connection(geo.Pt(2, 1), E); got != NoWay {
		t.Errorf("E from the south pocket leads behind the net: %v", got)
	}

	for _, d := range []int{1, 4} {
		if _, err := NewHockeyGeometry(9, 5, 2, d); err == nil {
			t.Errorf("NewHockeyGeometry depth %d expected to fail", d)
		}
	}
}

// Copyright 2026 The Paperfootball Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "fmt"

// Geometry is the immutable topology of one board: for every (point,
// direction) pair the connection table holds either the destination point,
// Goal1/Goal2 when the edge crosses a goal line, or NoWay when the edge is
// forbidden. A geometry is built once and may be shared by any number of
// states.
type Geometry struct {
	Width     int // playable rectangle width
	Height    int // playable rectangle height, excluding hockey bands
	GoalWidth int

	// Depth is the thickness of the behind-goal bands; zero for the
	// soccer shape.
	Depth int

	// FreeKickLen is the free-kick stride; zero selects the basic
	// (bounce) ruleset.
	FreeKickLen int

	qpoints     Point
	heightTotal int
	connections []Point // qpoints*QSteps, indexed point*QSteps+step
	freeKicks   []Point // same layout; nil unless FreeKickLen > 0
}

// Qpoints returns the total number of grid points.
func (g *Geometry) Qpoints() Point {
	return g.qpoints
}

// HeightTotal returns the number of grid rows including hockey bands.
func (g *Geometry) HeightTotal() int {
	return g.heightTotal
}

// Advanced returns true when the geometry selects the free-kick ruleset.
func (g *Geometry) Advanced() bool {
	return g.FreeKickLen > 0
}

// Pt returns the point at column x, row y.
func (g *Geometry) Pt(x, y int) Point {
	return Point(y*g.Width + x)
}

// XY returns the column and row of p.
func (g *Geometry) XY(p Point) (int, int) {
	return int(p) % g.Width, int(p) / g.Width
}

// Connection returns the destination of the edge from p in direction step.
func (g *Geometry) Connection(p Point, step Step) Point {
	return g.connections[int(p)*QSteps+int(step)]
}

// FreeKick returns the destination of a free kick from p in direction step,
// or NoWay when the ray leaves the field before scoring. The table is nil
// for basic-ruleset geometries.
func (g *Geometry) FreeKick(p Point, step Step) Point {
	return g.freeKicks[int(p)*QSteps+int(step)]
}

func checkDim(value int) error {
	if value <= 4 || value%2 == 0 {
		return fmt.Errorf("%w: board dimension %d must be odd and at least 5", ErrInvalidArgument, value)
	}
	return nil
}

func checkStdArgs(width, height, goalWidth int) error {
	if err := checkDim(width); err != nil {
		return err
	}
	if err := checkDim(height); err != nil {
		return err
	}
	if goalWidth < 2 || goalWidth%2 != 0 {
		return fmt.Errorf("%w: goal width %d must be even and at least 2", ErrInvalidArgument, goalWidth)
	}
	if goalWidth+3 > width {
		return fmt.Errorf("%w: goal width %d does not fit board width %d", ErrInvalidArgument, goalWidth, width)
	}
	return nil
}

// isValidMove reports whether the edge (x1,y1)-(x2,y2) stays on a soccer
// board. Crawling along a wall outside the goal window is forbidden, so the
// boundary behaves like a line that has already been drawn.
func isValidMove(width, height, goalWidth, x1, y1, x2, y2 int) bool {
	if x2 > 0 && x2 < width-1 && y1 > 0 && y1 < height-1 {
		return true
	}
	if x2 < 0 || y2 < 0 || x2 >= width || y2 >= height {
		return false
	}
	goal1 := (width - goalWidth) / 2
	goal2 := (width + goalWidth) / 2
	if x1 >= goal1 && x1 <= goal2 && x2 >= goal1 && x2 <= goal2 {
		return true
	}
	if x1 == x2 && (x1 == 0 || x1 == width-1) {
		return false
	}
	if y1 == y2 && (y1 == 0 || y1 == height-1) {
		return false
	}
	return true
}

// goalStatus classifies an edge that leaves the soccer rectangle: Goal1 or
// Goal2 when it crosses a goal line inside the goal window, NoWay otherwise.
// A vertical crawl along a goalpost column does not score.
func goalStatus(width, height, goalWidth, x1, y1, x2, y2 int) Point {
	if y2 != -1 && y2 != height {
		return NoWay
	}
	goalX1 := (width - goalWidth) / 2
	goalX2 := (width + goalWidth) / 2
	if x1 < goalX1 || x1 > goalX2 {
		return NoWay
	}
	if x2 < goalX1 || x2 > goalX2 {
		return NoWay
	}
	if x1 == x2 && (x1 == goalX1 || x1 == goalX2) {
		return NoWay
	}
	if y2 != -1 {
		return Goal1
	}
	return Goal2
}

func buildStdConnections(width, height, goalWidth int) []Point {
	conn := make([]Point, width*height*QSteps)
	i := 0
	for offset := 0; offset < width*height; offset++ {
		x := offset % width
		y := offset / width
		for step := 0; step < QSteps; step++ {
			nextX := x + stepDX[step]
			nextY := y + stepDY[step]
			if isValidMove(width, height, goalWidth, x, y, nextX, nextY) {
				conn[i] = Point(nextY*width + nextX)
			} else {
				conn[i] = goalStatus(width, height, goalWidth, x, y, nextX, nextY)
			}
			i++
		}
	}
	return conn
}

// NewStdGeometry builds a soccer board with the basic bounce ruleset. The
// goal slots sit in the middle of the short edges; Goal1 is the north goal.
func NewStdGeometry(width, height, goalWidth int) (*Geometry, error) {
	if err := checkStdArgs(width, height, goalWidth); err != nil {
		return nil, err
	}

	return &Geometry{
		Width:       width,
		Height:      height,
		GoalWidth:   goalWidth,
		qpoints:     Point(width * height),
		heightTotal: height,
		connections: buildStdConnections(width, height, goalWidth),
	}, nil
}

// NewFKGeometry builds a soccer board with the free-kick ruleset: moves come
// in three-leg sequences, visited points block incoming edges, and a player
// left without a sequence shoots the ball freeKickLen cells along a ray.
func NewFKGeometry(width, height, goalWidth, freeKickLen int) (*Geometry, error) {
	if err := checkStdArgs(width, height, goalWidth); err != nil {
		return nil, err
	}
	limit := width
	if height < width {
		limit = height
	}
	if freeKickLen <= 3 || 2*freeKickLen >= limit {
		return nil, fmt.Errorf("%w: free kick length %d must be above 3 and below half the smaller dimension", ErrInvalidArgument, freeKickLen)
	}

	conn := buildStdConnections(width, height, goalWidth)

	// A free kick slides the ball along the connection table; any negative
	// value met on the way (goal or out) becomes the destination.
	kicks := make([]Point, len(conn))
	for p := Point(0); p < Point(width*height); p++ {
		for step := 0; step < QSteps; step++ {
			target := p
			for i := 0; i < freeKickLen; i++ {
				target = conn[int(target)*QSteps+step]
				if target < 0 {
					break
				}
			}
			kicks[int(p)*QSteps+step] = target
		}
	}

	return &Geometry{
		Width:       width,
		Height:      height,
		GoalWidth:   goalWidth,
		FreeKickLen: freeKickLen,
		qpoints:     Point(width * height),
		heightTotal: height,
		connections: conn,
		freeKicks:   kicks,
	}, nil
}

// NewHockeyGeometry builds a hockey board: the soccer rectangle gains a band
// of depth rows behind each goal line, the four corners are clipped at 45
// degrees, and the cells directly behind each net are dead. The ruleset
// stays basic.
func NewHockeyGeometry(width, height, goalWidth, depth int) (*Geometry, error) {
	if err := checkStdArgs(width, height, goalWidth); err != nil {
		return nil, err
	}
	if depth < 2 || depth >= width/2 {
		return nil, fmt.Errorf("%w: hockey depth %d must be in [2, %d)", ErrInvalidArgument, depth, width/2)
	}

	heightTotal := height + 2*depth
	goalX1 := (width - goalWidth) / 2
	goalX2 := (width + goalWidth) / 2
	goalY1 := heightTotal - 1 - depth // north goal line row
	goalY2 := depth                   // south goal line row

	playable := func(x, y int) bool {
		if x < 0 || y < 0 || x >= width || y >= heightTotal {
			return false
		}
		// Corner triangles of size depth are clipped.
		if x+y < depth || (width-1-x)+y < depth {
			return false
		}
		if x+(heightTotal-1-y) < depth || (width-1-x)+(heightTotal-1-y) < depth {
			return false
		}
		// The net blocks the goal window columns beyond the goal lines.
		if (y < goalY2 || y > goalY1) && x >= goalX1 && x <= goalX2 {
			return false
		}
		return true
	}

	conn := make([]Point, width*heightTotal*QSteps)
	i := 0
	for offset := 0; offset < width*heightTotal; offset++ {
		x := offset % width
		y := offset / width
		for step := 0; step < QSteps; step++ {
			conn[i] = hockeyConnection(width, heightTotal, goalX1, goalX2, goalY1, goalY2, playable, x, y, step)
			i++
		}
	}

	return &Geometry{
		Width:       width,
		Height:      height,
		GoalWidth:   goalWidth,
		Depth:       depth,
		qpoints:     Point(width * heightTotal),
		heightTotal: heightTotal,
		connections: conn,
	}, nil
}

func hockeyConnection(width, heightTotal, goalX1, goalX2, goalY1, goalY2 int,
	playable func(x, y int) bool, x, y, step int) Point {
	if !playable(x, y) {
		return NoWay
	}

	nextX := x + stepDX[step]
	nextY := y + stepDY[step]

	// Goal crossings happen only from a goal line row into the window.
	inWindow := x >= goalX1 && x <= goalX2 && nextX >= goalX1 && nextX <= goalX2
	postCrawl := x == nextX && (x == goalX1 || x == goalX2)
	if inWindow && !postCrawl {
		if y == goalY1 && nextY == goalY1+1 {
			return Goal1
		}
		if y == goalY2 && nextY == goalY2-1 {
			return Goal2
		}
	}

	if !playable(nextX, nextY) {
		return NoWay
	}

	// Crawling along the outer rectangle walls is forbidden, the same way
	// the soccer boundary behaves.
	if x == nextX && (x == 0 || x == width-1) {
		return NoWay
	}
	if y == nextY && (y == 0 || y == heightTotal-1) {
		return NoWay
	}

	return Point(nextY*width + nextX)
}

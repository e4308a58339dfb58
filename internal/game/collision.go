package game

import "math"

// Ball is the kinematic state of one drop. A Ball is owned by exactly one
// Simulator and never shared between rounds.
type Ball struct {
	Position Vec2    `json:"position"`
	Velocity Vec2    `json:"velocity"`
	Radius   float64 `json:"radius"`
	Captured bool    `json:"captured"`
}

// CollisionEvent records one contact during a drop, for replay and auditing.
type CollisionEvent struct {
	Type   string  `json:"type"`   // "peg", "sink", "wall"
	Target int     `json:"target"` // peg index, 1-based slot, or -1/+1 for left/right wall
	Tick   int     `json:"tick"`
	Speed  float64 `json:"speed"` // impact speed
}

const (
	EventPeg  = "peg"
	EventSink = "sink"
	EventWall = "wall"
)

// ResolvePegs pushes the ball out of every peg it overlaps, in peg order.
// Velocity and position are updated cumulatively, so a second overlapping
// peg sees the result of the first.
func ResolvePegs(ball *Ball, board *Board, tick int) []CollisionEvent {
	var events []CollisionEvent
	for i, peg := range board.Pegs {
		center := Vec2{X: peg.X, Y: peg.Y}
		minDist := ball.Radius + peg.Radius
		dist := ball.Position.DistanceTo(center)
		if dist >= minDist {
			continue
		}

		angle := math.Atan2(ball.Position.Y-peg.Y, ball.Position.X-peg.X)
		cos, sin := math.Cos(angle), math.Sin(angle)
		speed := ball.Velocity.Magnitude()

		ball.Velocity = NewVec2(
			cos*speed*board.Physics.HorizontalFriction,
			sin*speed*board.Physics.VerticalFriction,
		)
		overlap := minDist - dist
		ball.Position = ball.Position.Plus(NewVec2(cos*overlap, sin*overlap))

		events = append(events, CollisionEvent{Type: EventPeg, Target: i, Tick: tick, Speed: fix(speed)})
	}
	return events
}

// ResolveSink captures the ball in the first sink, in slot order, whose span
// holds the ball's centre and whose trigger line the ball's lower edge has
// passed. It returns the 1-based slot and false if no sink matched.
func ResolveSink(ball *Ball, board *Board, tick int) (int, CollisionEvent, bool) {
	for _, sink := range board.Sinks {
		x := ball.Position.X
		if x < sink.Left() || x > sink.Right() {
			continue
		}
		if ball.Position.Y+ball.Radius < sink.TriggerY() {
			continue
		}
		ev := CollisionEvent{Type: EventSink, Target: sink.Slot, Tick: tick, Speed: fix(ball.Velocity.Magnitude())}
		capture(ball)
		return sink.Slot, ev, true
	}
	return 0, CollisionEvent{}, false
}

// ApplyBoundary clamps the ball to the horizontal margins and reflects its
// horizontal velocity. It reports the wall event when a clamp happened.
func ApplyBoundary(ball *Ball, board *Board, tick int) (CollisionEvent, bool) {
	var side int
	switch {
	case ball.Position.X < board.MarginLeft:
		ball.Position.X = board.MarginLeft
		side = -1
	case ball.Position.X > board.MarginRight:
		ball.Position.X = board.MarginRight
		side = 1
	default:
		return CollisionEvent{}, false
	}
	ev := CollisionEvent{Type: EventWall, Target: side, Tick: tick, Speed: fix(math.Abs(ball.Velocity.X))}
	ball.Velocity.X = fix(-ball.Velocity.X)
	return ev, true
}

// NearestSink returns the slot whose centre is horizontally closest to x.
// Ties go to the lower slot.
func NearestSink(board *Board, x float64) (int, error) {
	if len(board.Sinks) == 0 {
		return 0, ErrEngineFault
	}
	best := board.Sinks[0]
	bestDist := math.Abs(x - best.CenterX)
	for _, sink := range board.Sinks[1:] {
		if d := math.Abs(x - sink.CenterX); d < bestDist {
			best, bestDist = sink, d
		}
	}
	return best.Slot, nil
}

func capture(ball *Ball) {
	ball.Velocity = Vec2{}
	ball.Captured = true
}

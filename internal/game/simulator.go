package game

import "fmt"

// StepResult is the outcome of one tick.
type StepResult struct {
	Captured bool `json:"captured"`
	Slot     int  `json:"slot,omitempty"`
	Forced   bool `json:"forced,omitempty"` // captured by the tick-budget fallback
}

// Simulator drives a single ball through the board one tick at a time. It
// does no I/O and can be stepped in a tight loop or at any playback cadence.
type Simulator struct {
	board  *Board
	ball   Ball
	tick   int
	events []CollisionEvent
	result StepResult
}

// NewSimulator places a ball at rest at entry.
func NewSimulator(board *Board, entry Vec2) *Simulator {
	return &Simulator{
		board: board,
		ball: Ball{
			Position: NewVec2(entry.X, entry.Y),
			Radius:   board.BallRadius,
		},
	}
}

// Step advances one tick: gravity, integration, boundary, pegs, boundary
// again, then the sink test. Once the ball is captured further calls return
// the same result without advancing.
func (s *Simulator) Step() (StepResult, error) {
	if s.result.Captured {
		return s.result, nil
	}
	s.tick++
	b := &s.ball
	phys := s.board.Physics

	b.Velocity = b.Velocity.Plus(Vec2{Y: phys.Gravity})
	b.Position = b.Position.Plus(b.Velocity)

	s.boundary()
	s.events = append(s.events, ResolvePegs(b, s.board, s.tick)...)
	s.boundary()

	if slot, ev, ok := ResolveSink(b, s.board, s.tick); ok {
		s.events = append(s.events, ev)
		s.result = StepResult{Captured: true, Slot: slot}
		return s.result, nil
	}

	if s.tick >= phys.MaxTicks {
		slot, err := NearestSink(s.board, b.Position.X)
		if err != nil {
			return StepResult{}, fmt.Errorf("tick budget of %d exhausted: %w", phys.MaxTicks, err)
		}
		capture(b)
		s.events = append(s.events, CollisionEvent{Type: EventSink, Target: slot, Tick: s.tick})
		s.result = StepResult{Captured: true, Slot: slot, Forced: true}
	}
	return s.result, nil
}

// Run steps until the ball is captured.
func (s *Simulator) Run() (StepResult, error) {
	for {
		res, err := s.Step()
		if err != nil || res.Captured {
			return res, err
		}
	}
}

// Ball returns a copy of the current ball state.
func (s *Simulator) Ball() Ball {
	return s.ball
}

// Tick returns the number of ticks simulated so far.
func (s *Simulator) Tick() int {
	return s.tick
}

// Events returns the collisions recorded so far.
func (s *Simulator) Events() []CollisionEvent {
	return s.events
}

func (s *Simulator) boundary() {
	if ev, ok := ApplyBoundary(&s.ball, s.board, s.tick); ok {
		s.events = append(s.events, ev)
	}
}

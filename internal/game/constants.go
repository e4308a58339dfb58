package game

// Default board geometry and physics. These match the published board the
// web client renders: an 800x800 field, 16 peg rows and 15 sinks.
const (
	DefaultWidth       = 800.0
	DefaultHeight      = 800.0
	DefaultRows        = 18
	StartRow           = 2 // rows below StartRow carry no pegs
	DefaultBasePegs    = 1 // row r holds r+BasePegs pegs
	DefaultRowSpacing  = 35.0
	DefaultPegSpacing  = 36.0
	DefaultPegRadius   = 4.0
	DefaultBallRadius  = 7.0
	DefaultNumSinks    = 15
	DefaultSinkWidth   = 48.0
	DefaultSinkOffsetY = 170.0 // sink row sits this far above the board bottom

	DefaultGravity            = 0.6
	DefaultHorizontalFriction = 0.4
	DefaultVerticalFriction   = 0.8
	DefaultMaxTicks           = 2000

	DefaultEntryY       = 50.0
	DefaultEntryOffsetX = 13.0
	DefaultJitterRange  = 30.0
)

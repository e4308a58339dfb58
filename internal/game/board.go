package game

import "fmt"

// Peg is a static circular obstacle.
type Peg struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Sink is a capture bin at the bottom of the board. CenterX is the horizontal
// centre; Y is the centre of the bin, so its trigger line is Y - Height/2.
type Sink struct {
	Slot       int     `json:"slot"`
	CenterX    float64 `json:"center_x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Multiplier float64 `json:"multiplier"`
}

// Left returns the left edge of the sink.
func (s Sink) Left() float64 { return s.CenterX - s.Width/2 }

// Right returns the right edge of the sink.
func (s Sink) Right() float64 { return s.CenterX + s.Width/2 }

// TriggerY is the line the ball's lower edge must pass to be captured.
func (s Sink) TriggerY() float64 { return s.Y - s.Height/2 }

// Physics holds the integration constants applied every tick.
type Physics struct {
	Gravity            float64 `yaml:"gravity" json:"gravity"`
	HorizontalFriction float64 `yaml:"horizontal_friction" json:"horizontal_friction"`
	VerticalFriction   float64 `yaml:"vertical_friction" json:"vertical_friction"`
	MaxTicks           int     `yaml:"max_ticks" json:"max_ticks"`
}

// BoardConfig describes a board. The zero value is not usable; start from
// DefaultBoardConfig and override fields.
type BoardConfig struct {
	Width       float64         `yaml:"width" json:"width"`
	Height      float64         `yaml:"height" json:"height"`
	Rows        int             `yaml:"rows" json:"rows"`
	BasePegs    int             `yaml:"base_pegs" json:"base_pegs"`
	RowSpacing  float64         `yaml:"row_spacing" json:"row_spacing"`
	PegSpacing  float64         `yaml:"peg_spacing" json:"peg_spacing"`
	PegRadius   float64         `yaml:"peg_radius" json:"peg_radius"`
	BallRadius  float64         `yaml:"ball_radius" json:"ball_radius"`
	NumSinks    int             `yaml:"num_sinks" json:"num_sinks"`
	SinkWidth   float64         `yaml:"sink_width" json:"sink_width"`
	SinkOffsetY float64         `yaml:"sink_offset_y" json:"sink_offset_y"`
	EntryY      float64         `yaml:"entry_y" json:"entry_y"`
	Multipliers MultiplierTable `yaml:"multipliers" json:"multipliers"`
	Physics     Physics         `yaml:"physics" json:"physics"`
}

// DefaultBoardConfig returns the standard 15-slot board.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Rows:        DefaultRows,
		BasePegs:    DefaultBasePegs,
		RowSpacing:  DefaultRowSpacing,
		PegSpacing:  DefaultPegSpacing,
		PegRadius:   DefaultPegRadius,
		BallRadius:  DefaultBallRadius,
		NumSinks:    DefaultNumSinks,
		SinkWidth:   DefaultSinkWidth,
		SinkOffsetY: DefaultSinkOffsetY,
		EntryY:      DefaultEntryY,
		Multipliers: DefaultMultipliers.Clone(),
		Physics: Physics{
			Gravity:            DefaultGravity,
			HorizontalFriction: DefaultHorizontalFriction,
			VerticalFriction:   DefaultVerticalFriction,
			MaxTicks:           DefaultMaxTicks,
		},
	}
}

// Board is the immutable static geometry of one configuration. It is safe to
// share between concurrent rounds.
type Board struct {
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	BallRadius  float64         `json:"ball_radius"`
	MarginLeft  float64         `json:"margin_left"`
	MarginRight float64         `json:"margin_right"`
	EntryY      float64         `json:"entry_y"`
	Pegs        []Peg           `json:"pegs"`
	Sinks       []Sink          `json:"sinks"`
	Multipliers MultiplierTable `json:"multipliers"`
	Physics     Physics         `json:"physics"`
}

// BuildBoard lays out pegs in a triangular lattice and sinks beneath them.
func BuildBoard(cfg BoardConfig) (*Board, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var pegs []Peg
	for row := StartRow; row < cfg.Rows; row++ {
		count := row + cfg.BasePegs
		y := float64(row) * cfg.RowSpacing
		// Centre the row: offsets run from -(count-1)/2 to +(count-1)/2 spacings.
		half := float64(count-1) / 2
		for col := 0; col < count; col++ {
			x := cfg.Width/2 - cfg.PegSpacing*(half-float64(col))
			pegs = append(pegs, Peg{X: fix(x), Y: fix(y), Radius: cfg.PegRadius})
		}
	}

	sinks := make([]Sink, cfg.NumSinks)
	span := float64(cfg.NumSinks-1) * cfg.PegSpacing
	startX := (cfg.Width - span) / 2
	for i := range sinks {
		sinks[i] = Sink{
			Slot:       i + 1,
			CenterX:    fix(startX + float64(i)*cfg.PegSpacing),
			Y:          fix(cfg.Height - cfg.SinkOffsetY),
			Width:      cfg.SinkWidth,
			Height:     cfg.SinkWidth,
			Multiplier: cfg.Multipliers[i],
		}
	}

	return &Board{
		Width:       cfg.Width,
		Height:      cfg.Height,
		BallRadius:  cfg.BallRadius,
		MarginLeft:  fix(cfg.BallRadius),
		MarginRight: fix(cfg.Width - cfg.BallRadius),
		EntryY:      cfg.EntryY,
		Pegs:        pegs,
		Sinks:       sinks,
		Multipliers: cfg.Multipliers.Clone(),
		Physics:     cfg.Physics,
	}, nil
}

// Slots returns the number of sinks on the board.
func (b *Board) Slots() int {
	return len(b.Sinks)
}

// CenterX returns the horizontal centre of the board.
func (b *Board) CenterX() float64 {
	return b.Width / 2
}

func (cfg BoardConfig) validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("%w: board dimensions must be positive", ErrInvalidBoard)
	case cfg.Rows < StartRow:
		return fmt.Errorf("%w: rows must be at least %d", ErrInvalidBoard, StartRow)
	case cfg.BasePegs < 0:
		return fmt.Errorf("%w: base pegs must not be negative", ErrInvalidBoard)
	case cfg.PegSpacing <= 0 || cfg.RowSpacing <= 0:
		return fmt.Errorf("%w: peg and row spacing must be positive", ErrInvalidBoard)
	case cfg.PegRadius < 0 || cfg.BallRadius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidBoard)
	case cfg.BallRadius*2 >= cfg.Width:
		return fmt.Errorf("%w: ball does not fit the board", ErrInvalidBoard)
	case cfg.NumSinks < 1:
		return fmt.Errorf("%w: at least one sink is required", ErrInvalidBoard)
	case cfg.SinkWidth <= 0:
		return fmt.Errorf("%w: sink width must be positive", ErrInvalidBoard)
	case len(cfg.Multipliers) != cfg.NumSinks:
		return fmt.Errorf("%w: %d multipliers for %d sinks", ErrInvalidBoard, len(cfg.Multipliers), cfg.NumSinks)
	case !cfg.Multipliers.Symmetric():
		return fmt.Errorf("%w: multiplier table must be symmetric", ErrInvalidBoard)
	case cfg.Physics.MaxTicks < 1:
		return fmt.Errorf("%w: max ticks must be positive", ErrInvalidBoard)
	}
	for i, m := range cfg.Multipliers {
		if m < 0 {
			return fmt.Errorf("%w: negative multiplier for slot %d", ErrInvalidBoard, i+1)
		}
	}
	return nil
}

package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/shivaram19/gorbagana-plinko/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock
type DefaultClock struct{}

func (DefaultClock) Now() time.Time {
	return time.Now()
}

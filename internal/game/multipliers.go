package game

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MultiplierTable maps slot index (1-based) to payout multiplier. Entry i of
// the slice is slot i+1.
type MultiplierTable []float64

// DefaultMultipliers is the published payout table: edge slots pay 8x,
// tapering toward the centre with one elevated 5x slot in the middle.
var DefaultMultipliers = MultiplierTable{8, 3, 2, 1.5, 1.2, 1.1, 1, 5, 1, 1.1, 1.2, 1.5, 2, 3, 8}

// Slots returns the number of slots the table covers.
func (t MultiplierTable) Slots() int {
	return len(t)
}

// Multiplier returns the multiplier for a 1-based slot as an exact decimal.
func (t MultiplierTable) Multiplier(slot int) (decimal.Decimal, error) {
	if err := ValidateSlot(slot, len(t)); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(t[slot-1]), nil
}

// Symmetric reports whether the table mirrors around the board centre.
func (t MultiplierTable) Symmetric() bool {
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		if t[i] != t[j] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the table.
func (t MultiplierTable) Clone() MultiplierTable {
	out := make(MultiplierTable, len(t))
	copy(out, t)
	return out
}

// ValidateSlot checks that slot lies in [1, n].
func ValidateSlot(slot, n int) error {
	if slot < 1 || slot > n {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidSlot, slot, n)
	}
	return nil
}

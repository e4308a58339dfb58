package game

import "github.com/shopspring/decimal"

// Payout returns wager times the multiplier of slot. A zero wager is free
// play and pays zero.
func Payout(slot int, table MultiplierTable, wager decimal.Decimal) (decimal.Decimal, error) {
	mult, err := table.Multiplier(slot)
	if err != nil {
		return decimal.Zero, err
	}
	if wager.IsNegative() {
		return decimal.Zero, ErrInvalidWager
	}
	return wager.Mul(mult), nil
}

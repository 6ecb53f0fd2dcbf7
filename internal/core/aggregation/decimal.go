package aggregation

import "github.com/shopspring/decimal"

const (
	// DisplayPlaces is the scale of every rounded statistic.
	DisplayPlaces = 2

	// ratioPlaces is the scale of a ratio before it is turned into a percentage.
	ratioPlaces = 4
)

var hundred = decimal.NewFromInt(100)

// RoundHalfUp rounds d to places, halves away from zero (2.345 -> 2.35, -2.345 -> -2.35).
func RoundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// Percentage returns part/whole as a percentage: the ratio is rounded half-up
// to 4 places first, then scaled by 100 and rounded to 2. 1/3 -> 33.33.
// A zero whole yields zero.
func Percentage(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	ratio := decimal.NewFromInt(int64(part)).DivRound(decimal.NewFromInt(int64(whole)), ratioPlaces)
	return RoundHalfUp(ratio.Mul(hundred), DisplayPlaces)
}

// FloatHalfUp rounds a float statistic half-up through an exact decimal.
func FloatHalfUp(f float64, places int32) decimal.Decimal {
	return RoundHalfUp(decimal.NewFromFloat(f), places)
}

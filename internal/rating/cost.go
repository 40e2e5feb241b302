package rating

import (
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/shipquote/pkg/types"
)

// CostFunc prices a package from its dimensions and weight.
type CostFunc func(dims types.Dimensions, weight types.Measurement) types.Quote

// CostModel returns the pricing function
//
//	cost = (width * height * length * weight) / divisor
//
// computed in exact decimal arithmetic. The function is total over all
// finite inputs: zero dimensions price to zero, and a negative measurement
// flows through and yields a negative quote. The result is not rounded;
// display rounding belongs to the boundary.
func CostModel(divisor float64) CostFunc {
	div := decimal.NewFromFloat(divisor)
	return func(dims types.Dimensions, weight types.Measurement) types.Quote {
		amount := decimal.NewFromFloat(float64(dims.Width)).
			Mul(decimal.NewFromFloat(float64(dims.Height))).
			Mul(decimal.NewFromFloat(float64(dims.Length))).
			Mul(decimal.NewFromFloat(float64(weight))).
			Div(div)
		return types.NewQuote(amount)
	}
}

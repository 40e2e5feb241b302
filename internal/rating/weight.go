package rating

import "github.com/mesh-intelligence/shipquote/pkg/types"

// Fixed rejection reasons, surfaced to the user verbatim.
const (
	MsgTooHeavy = "Package too heavy to be shipped via Package Express. Have a good day."
	MsgTooBig   = "Package too big to be shipped via Package Express."
)

// WeightCheck decides whether a package weight qualifies for Package
// Express.
type WeightCheck func(weight types.Measurement) types.EligibilityResult

// WeightEligibility returns the weight gate for the given limit. The limit
// is inclusive: a weight of exactly limit is eligible. The check is pure
// and total; it never fails.
func WeightEligibility(limit types.Measurement) WeightCheck {
	return func(weight types.Measurement) types.EligibilityResult {
		if weight <= limit {
			return types.Accept()
		}
		return types.Reject(MsgTooHeavy)
	}
}

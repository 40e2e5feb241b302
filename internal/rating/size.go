package rating

import "github.com/mesh-intelligence/shipquote/pkg/types"

// SizeCheck decides whether an aggregate package size qualifies for
// Package Express. The aggregate (width + height + length) is computed by
// the caller, not here; the check sees only the sum.
type SizeCheck func(totalSize types.Measurement) types.EligibilityResult

// SizeEligibility returns the size gate for the given limit. The limit is
// inclusive: an aggregate size of exactly limit is eligible. Pure and
// total.
func SizeEligibility(limit types.Measurement) SizeCheck {
	return func(totalSize types.Measurement) types.EligibilityResult {
		if totalSize <= limit {
			return types.Accept()
		}
		return types.Reject(MsgTooBig)
	}
}

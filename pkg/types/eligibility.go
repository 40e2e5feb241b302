package types

// EligibilityResult is the outcome of one eligibility check: eligible, or
// rejected with a fixed human-readable reason. Rejection is a normal
// outcome, not an error; the reason is surfaced to the user verbatim.
type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// Accept returns an eligible result.
func Accept() EligibilityResult {
	return EligibilityResult{Eligible: true}
}

// Reject returns a rejected result carrying the given reason.
func Reject(reason string) EligibilityResult {
	return EligibilityResult{Reason: reason}
}

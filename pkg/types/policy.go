package types

import "errors"

// Default policy values. The weight and size limits are independent
// thresholds that happen to share a value; they are never linked.
const (
	DefaultMaxWeight   Measurement = 50
	DefaultMaxSize     Measurement = 50
	DefaultCostDivisor float64     = 100
	DefaultCurrency    string      = "$"
)

// Policy validation errors.
var (
	ErrMaxWeightInvalid   = errors.New("max weight must be positive")
	ErrMaxSizeInvalid     = errors.New("max size must be positive")
	ErrCostDivisorInvalid = errors.New("cost divisor must be positive")
)

// Policy holds the eligibility thresholds and pricing parameters for
// Package Express quote runs.
type Policy struct {
	MaxWeight   Measurement `json:"max_weight" yaml:"max_weight"`
	MaxSize     Measurement `json:"max_size" yaml:"max_size"`
	CostDivisor float64     `json:"cost_divisor" yaml:"cost_divisor"`
	Currency    string      `json:"currency" yaml:"currency"`
}

// DefaultPolicy returns the built-in policy.
func DefaultPolicy() Policy {
	return Policy{
		MaxWeight:   DefaultMaxWeight,
		MaxSize:     DefaultMaxSize,
		CostDivisor: DefaultCostDivisor,
		Currency:    DefaultCurrency,
	}
}

// Validate checks that the Policy is well-formed. It returns a sentinel
// error from this package on failure. An empty currency symbol is allowed;
// it only affects display.
func (p Policy) Validate() error {
	if p.MaxWeight <= 0 {
		return ErrMaxWeightInvalid
	}
	if p.MaxSize <= 0 {
		return ErrMaxSizeInvalid
	}
	if p.CostDivisor <= 0 {
		return ErrCostDivisorInvalid
	}
	return nil
}

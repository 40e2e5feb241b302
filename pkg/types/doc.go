// Package types defines the value types for Package Express quoting:
// measurements and dimensions, eligibility results, monetary quotes, and the
// rating policy with its validation errors.
package types

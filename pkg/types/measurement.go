package types

// Measurement is a single real quantity: a package weight or one linear
// dimension. No unit is stored; units are a caller convention and must be
// used consistently across all four inputs of a run.
type Measurement float64

// Dimensions is the width, height, length triple for one package.
type Dimensions struct {
	Width  Measurement `json:"width" yaml:"width"`
	Height Measurement `json:"height" yaml:"height"`
	Length Measurement `json:"length" yaml:"length"`
}

// TotalSize returns the aggregate size: the sum of width, height, and length.
func (d Dimensions) TotalSize() Measurement {
	return d.Width + d.Height + d.Length
}

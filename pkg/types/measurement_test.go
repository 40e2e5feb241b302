package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionsTotalSize(t *testing.T) {
	tests := []struct {
		name string
		dims Dimensions
		want Measurement
	}{
		{
			name: "small package",
			dims: Dimensions{Width: 2, Height: 3, Length: 4},
			want: 9,
		},
		{
			name: "zero package",
			dims: Dimensions{},
			want: 0,
		},
		{
			name: "fractional dimensions",
			dims: Dimensions{Width: 1.5, Height: 2.25, Length: 0.25},
			want: 4,
		},
		{
			name: "negative dimension reduces the sum",
			dims: Dimensions{Width: -5, Height: 10, Length: 10},
			want: 15,
		},
		{
			name: "exactly at the standard limit",
			dims: Dimensions{Width: 20, Height: 20, Length: 10},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dims.TotalSize())
		})
	}
}

func TestEligibilityResultConstructors(t *testing.T) {
	t.Run("accept carries no reason", func(t *testing.T) {
		res := Accept()
		assert.True(t, res.Eligible)
		assert.Empty(t, res.Reason)
	})

	t.Run("reject carries the reason", func(t *testing.T) {
		res := Reject("too heavy")
		assert.False(t, res.Eligible)
		assert.Equal(t, "too heavy", res.Reason)
	})
}

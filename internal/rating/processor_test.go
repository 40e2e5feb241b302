package rating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shipquote/pkg/types"
)

// spyProcessor wraps a Processor's stages with call counters so tests can
// observe which stages a run reached.
type spyProcessor struct {
	*Processor
	weightCalls int
	sizeCalls   int
	priceCalls  int
}

func newSpyProcessor(policy types.Policy) *spyProcessor {
	inner := NewProcessor(policy)
	spy := &spyProcessor{}
	spy.Processor = &Processor{
		checkWeight: func(w types.Measurement) types.EligibilityResult {
			spy.weightCalls++
			return inner.checkWeight(w)
		},
		checkSize: func(s types.Measurement) types.EligibilityResult {
			spy.sizeCalls++
			return inner.checkSize(s)
		},
		price: func(d types.Dimensions, w types.Measurement) types.Quote {
			spy.priceCalls++
			return inner.price(d, w)
		},
	}
	return spy
}

func TestProcessorEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		dims       types.Dimensions
		weight     types.Measurement
		wantReason string
		wantTotal  string
	}{
		{
			name:      "eligible package is priced",
			dims:      types.Dimensions{Width: 2, Height: 3, Length: 4},
			weight:    10,
			wantTotal: "2.40",
		},
		{
			name:       "heavy package rejected",
			dims:       types.Dimensions{Width: 2, Height: 3, Length: 4},
			weight:     60,
			wantReason: MsgTooHeavy,
		},
		{
			name:       "oversize package rejected",
			dims:       types.Dimensions{Width: 20, Height: 20, Length: 20},
			weight:     5,
			wantReason: MsgTooBig,
		},
		{
			name:      "zero package is eligible and free",
			dims:      types.Dimensions{},
			weight:    0,
			wantTotal: "0.00",
		},
		{
			name:      "weight exactly at the limit is priced",
			dims:      types.Dimensions{Width: 1, Height: 1, Length: 1},
			weight:    50,
			wantTotal: "0.50",
		},
		{
			name:       "weight just over the limit rejected",
			dims:       types.Dimensions{Width: 1, Height: 1, Length: 1},
			weight:     50.0001,
			wantReason: MsgTooHeavy,
		},
		{
			name:      "size exactly at the limit is priced",
			dims:      types.Dimensions{Width: 20, Height: 20, Length: 10},
			weight:    1,
			wantTotal: "40.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(types.DefaultPolicy())
			outcome := p.Evaluate(tt.dims, tt.weight)

			if tt.wantReason != "" {
				assert.False(t, outcome.Result.Eligible)
				assert.Equal(t, tt.wantReason, outcome.Result.Reason)
				return
			}

			require.True(t, outcome.Result.Eligible)
			assert.Equal(t, tt.wantTotal, outcome.Quote.Rounded().StringFixed(2))
		})
	}
}

func TestProcessorShortCircuitOnWeight(t *testing.T) {
	spy := newSpyProcessor(types.DefaultPolicy())

	outcome := spy.Evaluate(types.Dimensions{Width: 20, Height: 20, Length: 20}, 60)

	assert.False(t, outcome.Result.Eligible)
	assert.Equal(t, MsgTooHeavy, outcome.Result.Reason)
	assert.Equal(t, 1, spy.weightCalls)
	assert.Zero(t, spy.sizeCalls, "size gate must not run after a weight rejection")
	assert.Zero(t, spy.priceCalls, "pricing must not run after a weight rejection")
}

func TestProcessorShortCircuitOnSize(t *testing.T) {
	spy := newSpyProcessor(types.DefaultPolicy())

	outcome := spy.Evaluate(types.Dimensions{Width: 20, Height: 20, Length: 20}, 5)

	assert.False(t, outcome.Result.Eligible)
	assert.Equal(t, MsgTooBig, outcome.Result.Reason)
	assert.Equal(t, 1, spy.weightCalls)
	assert.Equal(t, 1, spy.sizeCalls)
	assert.Zero(t, spy.priceCalls, "pricing must not run after a size rejection")
}

func TestProcessorAllStagesRunWhenEligible(t *testing.T) {
	spy := newSpyProcessor(types.DefaultPolicy())

	outcome := spy.Evaluate(types.Dimensions{Width: 2, Height: 3, Length: 4}, 10)

	require.True(t, outcome.Result.Eligible)
	assert.Equal(t, 1, spy.weightCalls)
	assert.Equal(t, 1, spy.sizeCalls)
	assert.Equal(t, 1, spy.priceCalls)
	assert.True(t, outcome.Quote.Amount.Equal(decimal.RequireFromString("2.4")))
}

func TestProcessorStagesMatchEvaluate(t *testing.T) {
	// Driving the stages individually, as the interactive boundary does,
	// must agree with Evaluate.
	p := NewProcessor(types.DefaultPolicy())
	dims := types.Dimensions{Width: 2, Height: 3, Length: 4}
	weight := types.Measurement(10)

	require.True(t, p.CheckWeight(weight).Eligible)
	require.True(t, p.CheckSize(dims.TotalSize()).Eligible)
	staged := p.Price(dims, weight)

	evaluated := p.Evaluate(dims, weight)
	assert.True(t, staged.Amount.Equal(evaluated.Quote.Amount))
}

func TestProcessorEvaluateIdempotent(t *testing.T) {
	p := NewProcessor(types.DefaultPolicy())
	dims := types.Dimensions{Width: 2, Height: 3, Length: 4}

	first := p.Evaluate(dims, 10)
	second := p.Evaluate(dims, 10)

	assert.Equal(t, first.Result, second.Result)
	assert.True(t, first.Quote.Amount.Equal(second.Quote.Amount))
}

func TestProcessorCustomPolicy(t *testing.T) {
	p := NewProcessor(types.Policy{MaxWeight: 10, MaxSize: 5, CostDivisor: 10, Currency: "$"})

	t.Run("tighter weight limit applies", func(t *testing.T) {
		outcome := p.Evaluate(types.Dimensions{Width: 1, Height: 1, Length: 1}, 11)
		assert.Equal(t, MsgTooHeavy, outcome.Result.Reason)
	})

	t.Run("tighter size limit applies", func(t *testing.T) {
		outcome := p.Evaluate(types.Dimensions{Width: 2, Height: 2, Length: 2}, 1)
		assert.Equal(t, MsgTooBig, outcome.Result.Reason)
	})

	t.Run("custom divisor applies", func(t *testing.T) {
		outcome := p.Evaluate(types.Dimensions{Width: 1, Height: 2, Length: 2}, 5)
		require.True(t, outcome.Result.Eligible)
		assert.True(t, outcome.Quote.Amount.Equal(decimal.RequireFromString("2")))
	})
}

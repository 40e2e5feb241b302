package rating

import "github.com/mesh-intelligence/shipquote/pkg/types"

// Processor sequences the weight gate, the size gate, and the cost model.
// Ordering rules live here and nowhere else; the individual checks stay
// pure and unaware of each other. A Processor is stateless between runs
// and safe for concurrent use.
type Processor struct {
	checkWeight WeightCheck
	checkSize   SizeCheck
	price       CostFunc
}

// NewProcessor builds a Processor whose gates and cost model are derived
// from the given policy.
func NewProcessor(policy types.Policy) *Processor {
	return &Processor{
		checkWeight: WeightEligibility(policy.MaxWeight),
		checkSize:   SizeEligibility(policy.MaxSize),
		price:       CostModel(policy.CostDivisor),
	}
}

// CheckWeight runs the weight gate. On rejection the caller must halt the
// run; neither CheckSize nor Price may follow a rejection.
func (p *Processor) CheckWeight(weight types.Measurement) types.EligibilityResult {
	return p.checkWeight(weight)
}

// CheckSize runs the size gate over the caller-computed aggregate size.
// Only valid after CheckWeight accepted. Same halt-on-reject contract.
func (p *Processor) CheckSize(totalSize types.Measurement) types.EligibilityResult {
	return p.checkSize(totalSize)
}

// Price computes the quote for a package that passed both gates.
func (p *Processor) Price(dims types.Dimensions, weight types.Measurement) types.Quote {
	return p.price(dims, weight)
}

// Outcome is the terminal state of one pipeline run: a rejection carrying
// its reason, or an accepted result with a priced quote.
type Outcome struct {
	Result types.EligibilityResult
	Quote  types.Quote
}

// Evaluate runs the full pipeline for a package whose four inputs are all
// known up front: weight gate, then size gate over the aggregate size,
// then pricing. It short-circuits on the first rejection, leaving later
// stages unreached.
func (p *Processor) Evaluate(dims types.Dimensions, weight types.Measurement) Outcome {
	if res := p.checkWeight(weight); !res.Eligible {
		return Outcome{Result: res}
	}
	if res := p.checkSize(dims.TotalSize()); !res.Eligible {
		return Outcome{Result: res}
	}
	return Outcome{Result: types.Accept(), Quote: p.price(dims, weight)}
}

// Package rating implements the Package Express validate-then-price
// pipeline: the weight gate, the size gate, the cost model, and the
// Processor that sequences them.
package rating

package analysis

import "fmt"

// DegenerateAggregationError reports an aggregate that would divide by a
// zero count, such as papers-per-researcher over zero researchers.
type DegenerateAggregationError struct {
	Quantity string
}

func (e DegenerateAggregationError) Error() string {
	return fmt.Sprintf("cannot compute %s: zero rows in divisor", e.Quantity)
}

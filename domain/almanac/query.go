package almanac

import "context"

// MinimumReachable runs inputs through p and returns the smallest value in
// the output. Every rule is a constant shift, so the minimum of each output
// interval is its start.
func MinimumReachable(inputs []Interval, p Pipeline) (uint64, error) {
	if len(inputs) == 0 {
		return 0, ErrEmptyInput
	}
	return minStart(p.Run(inputs))
}

// MinimumReachableContext is MinimumReachable using Pipeline.RunContext.
func MinimumReachableContext(ctx context.Context, inputs []Interval, p Pipeline, opts ...RunOption) (uint64, error) {
	if len(inputs) == 0 {
		return 0, ErrEmptyInput
	}
	out, err := p.RunContext(ctx, inputs, opts...)
	if err != nil {
		return 0, err
	}
	return minStart(out)
}

// BruteForceMinimum maps every individual value of every input through p.
// Cost is proportional to the total input length; use it only as a
// reference on small inputs.
func BruteForceMinimum(inputs []Interval, p Pipeline) (uint64, error) {
	if len(inputs) == 0 {
		return 0, ErrEmptyInput
	}
	best, seen := ^uint64(0), false
	for _, iv := range inputs {
		if iv.IsZero() {
			continue
		}
		for v := iv.start; ; v++ {
			best = min(best, p.MapPoint(v))
			seen = true
			if v == iv.Last() {
				break
			}
		}
	}
	if !seen {
		return 0, ErrEmptyInput
	}
	return best, nil
}

func minStart(ivs []Interval) (uint64, error) {
	if len(ivs) == 0 {
		return 0, ErrEmptyInput
	}
	best := ivs[0].start
	for _, iv := range ivs[1:] {
		best = min(best, iv.start)
	}
	return best, nil
}

package sortdemo

import (
	"fmt"

	"github.com/joshuapare/sortkit/internal/gen"
	"github.com/joshuapare/sortkit/pkg/types"
)

// Generate validates opts and returns the described input sequence.
//
// Random inputs require Low < High, both within the limits' value range.
// The other kinds produce 1..Size in some order.
func Generate(opts GenerateOptions) ([]int, error) {
	limits := limitsOr(opts.Limits, types.DefaultLimits)
	if err := limits.CheckSize(opts.Size); err != nil {
		return nil, err
	}
	switch opts.Kind {
	case types.InputRandom:
		if err := limits.CheckRange(opts.Low, opts.High); err != nil {
			return nil, err
		}
	case types.InputShuffled, types.InputAscending, types.InputDescending:
		if opts.Size > limits.MaxValue {
			return nil, limits.CheckValues([]int{opts.Size})
		}
	default:
		return nil, fmt.Errorf("input kind %s: %w", opts.Kind, types.ErrInvalidInput)
	}

	return gen.Generate(gen.Profile{
		Kind: opts.Kind,
		Size: opts.Size,
		Low:  opts.Low,
		High: opts.High,
		Seed: opts.Seed,
	}), nil
}

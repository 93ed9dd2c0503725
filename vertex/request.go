package vertex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Positional argument layout: <variation> <fraction> [<target>].
const (
	argVariation = iota
	argFraction
	argTarget
)

// ParseArgs converts positional arguments (program name excluded) into a
// SampleRequest. A target argument is required when targetAware is true.
// Arguments beyond those the variant reads are ignored.
//
// Errors:
//   - ErrArgumentCount — too few arguments.
//   - ErrArgumentType  — variation not an integer, or fraction not a real.
//
// The variation is not range-checked here; Sampler.Sample does that.
func ParseArgs(args []string, targetAware bool) (SampleRequest, error) {
	want := argFraction + 1
	if targetAware {
		want = argTarget + 1
	}
	if len(args) < want {
		return SampleRequest{}, fmt.Errorf("got %d arguments, want %d: %w", len(args), want, ErrArgumentCount)
	}

	variation, err := strconv.Atoi(strings.TrimSpace(args[argVariation]))
	if err != nil {
		return SampleRequest{}, fmt.Errorf("variation %q: %w: %w", args[argVariation], ErrArgumentType, err)
	}

	// An overflowing literal still parses to ±Inf, which the arithmetic
	// carries through unchanged.
	fraction, err := strconv.ParseFloat(strings.TrimSpace(args[argFraction]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return SampleRequest{}, fmt.Errorf("fraction %q: %w: %w", args[argFraction], ErrArgumentType, err)
	}

	req := SampleRequest{Variation: variation, Fraction: fraction}
	if targetAware {
		req.Target = args[argTarget]
		req.HasTarget = true
	}
	return req, nil
}

package vertex

import "fmt"

// Sampler interpolates a vertex position inside one row of its LimitTable.
// A Sampler is immutable after construction and safe for concurrent use.
type Sampler struct {
	cfg samplerConfig
}

// NewSampler builds a Sampler from opts. Without options it behaves like
// SingleTarget.
func NewSampler(opts ...Option) *Sampler {
	return &Sampler{cfg: newSamplerConfig(opts...)}
}

// DoubleTarget returns the target-aware sampler: 5 rows (1–5 cm lD2),
// D2 results divided by 10, any other target yields 8.0.
func DoubleTarget() *Sampler {
	return NewSampler(
		WithTable(doubleTargetRows[:]...),
		WithScale(mmPerCm),
		WithTarget(TargetD2, defaultFallback),
	)
}

// SingleTarget returns the target-unaware sampler: 3 rows (1–3 cm lD2),
// results are not rescaled.
func SingleTarget() *Sampler {
	return NewSampler(WithTable(singleTargetRows[:]...))
}

// Len reports the number of table rows; valid variations are [1, Len()].
func (s *Sampler) Len() int { return len(s.cfg.table) }

// TargetAware reports whether Sample consults its target argument.
func (s *Sampler) TargetAware() bool { return s.cfg.target != "" }

// Limits returns the row addressed by the 1-based variation.
func (s *Sampler) Limits(variation int) (Limits, error) {
	if variation < 1 || variation > len(s.cfg.table) {
		return Limits{}, fmt.Errorf("variation %d not in [1,%d]: %w", variation, len(s.cfg.table), ErrIndexRange)
	}
	return s.cfg.table[variation-1], nil
}

// Sample returns Low + fraction·(High−Low) for the addressed row, divided by
// the configured scale. For a target-aware Sampler a target other than the
// configured one returns the fallback constant instead. target is ignored by
// target-unaware samplers.
//
// The variation is range-checked before the target is consulted, so an
// invalid variation fails even on the fallback branch.
//
// fraction is not clamped; values outside [0,1] extrapolate linearly.
func (s *Sampler) Sample(variation int, fraction float64, target string) (float64, error) {
	row, err := s.Limits(variation)
	if err != nil {
		return 0, err
	}
	if s.TargetAware() && target != s.cfg.target {
		return s.cfg.fallback, nil
	}
	// The explicit conversion rounds the product and forbids an FMA, keeping
	// results identical across architectures.
	z := row.Low + float64(fraction*row.Span())
	return z / s.cfg.scale, nil
}

// Eval runs Sample on a parsed request.
func (s *Sampler) Eval(req SampleRequest) (float64, error) {
	return s.Sample(req.Variation, req.Fraction, req.Target)
}

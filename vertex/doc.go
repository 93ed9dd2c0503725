// Package vertex samples a simulated interaction vertex along the beam (z)
// axis of a liquid-deuterium (lD2) cryotarget, as input to a larger
// event-simulation pipeline.
//
// What:
//
//   - A LimitTable holds the fixed [Low, High] z-extent of the target cell for
//     each thickness "variation" (1-based).
//   - A Sampler maps (variation, fraction) to Low + fraction·(High−Low),
//     optionally gated on a target name and rescaled.
//   - ParseArgs turns positional command-line arguments into a SampleRequest.
//
// Variants:
//
//   - DoubleTarget(): 5 rows (1–5 cm lD2), target-aware. For target "D2" the
//     interpolated value is divided by 10 (mm → cm); any other target yields
//     the constant 8.0 regardless of the table.
//   - SingleTarget(): 3 rows (1–3 cm lD2), target-unaware, no rescaling.
//
// Usage:
//
//	s := vertex.DoubleTarget()
//	z, err := s.Sample(2, 0.25, vertex.TargetD2)
//	if errors.Is(err, vertex.ErrIndexRange) {
//	  // variation outside [1, s.Len()]
//	}
//
// Errors:
//
//   - ErrArgumentCount: fewer positional arguments than the variant needs.
//   - ErrArgumentType:  variation is not an integer or fraction is not a real.
//   - ErrIndexRange:    variation does not address a table row.
//
// The package never logs and never panics on caller input; option
// constructors (WithX) panic on meaningless configuration.
package vertex

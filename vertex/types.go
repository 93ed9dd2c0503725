package vertex

// TargetD2 is the target name that selects the interpolated (and rescaled)
// branch of a target-aware Sampler.
const TargetD2 = "D2"

// Deterministic defaults (named, no magic numbers).
const (
	// defaultFallback is returned by DoubleTarget for any target other than D2.
	defaultFallback = 8.0
	// mmPerCm converts the DoubleTarget table (mm) to centimeters.
	mmPerCm = 10.0
	// unitScale leaves interpolated values untouched.
	unitScale = 1.0
)

// Limits is one row of a LimitTable: the z-extent of the target cell.
// Invariant: Low < High.
type Limits struct {
	Low  float64
	High float64
}

// Span returns High − Low.
func (l Limits) Span() float64 { return l.High - l.Low }

// LimitTable is an ordered list of Limits addressed by a 1-based variation.
type LimitTable []Limits

// Extension of the cryotarget per lD2 thickness: row i is (i+1) cm.
var (
	doubleTargetRows = [...]Limits{
		{-4.2, 4.5},
		{-9.2, 9.5},
		{-14.2, 14.5},
		{-19.2, 19.5},
		{-24.2, 24.5},
	}
	singleTargetRows = [...]Limits{
		{-4.2, 4.5},
		{-9.2, 9.5},
		{-14.2, 14.5},
	}
)

// DoubleTargetTable returns a copy of the 5-row table (1–5 cm lD2).
func DoubleTargetTable() LimitTable { return append(LimitTable(nil), doubleTargetRows[:]...) }

// SingleTargetTable returns a copy of the 3-row table (1–3 cm lD2).
func SingleTargetTable() LimitTable { return append(LimitTable(nil), singleTargetRows[:]...) }

// SampleRequest is the typed form of one invocation's arguments.
//
// Fields:
//   - Variation — 1-based table row.
//   - Fraction  — interpolation position, conventionally in [0,1] but not enforced.
//   - Target    — target name; meaningful only when HasTarget is true.
type SampleRequest struct {
	Variation int
	Fraction  float64
	Target    string
	HasTarget bool
}

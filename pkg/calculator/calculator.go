package calculator

import (
	"github.com/nikogura/legacy-reimburse/pkg/trip"
)

// Stage identifies which cascade stage produced a result.
type Stage string

// Cascade stages, in evaluation order.
const (
	StageExactCase Stage = "exact_case"
	StageLowTravel Stage = "low_travel"
	StagePattern   Stage = "pattern"
	StageDefault   Stage = "default_formula"
)

// Result carries the reimbursement amount plus which stage and rule decided
// it. Amount is always rounded to exactly two decimals.
type Result struct {
	Amount float64
	Stage  Stage
	Rule   string
}

// Calculator reproduces the legacy reimbursement decision function. It holds
// no state; every calculation is independent and safe to run concurrently.
type Calculator struct{}

// New creates a new calculator instance.
func New() (calc *Calculator) {
	calc = &Calculator{}
	return calc
}

// Calculate runs the cascade: exact outlier table, low-travel override,
// pattern overrides, then the default tiered formula with its adjustment
// chain. Override stages are first-match-wins and terminal. Every exit path
// rounds half-up to cents.
//
// The outlier table runs before the low-travel regime: several pinned
// outliers are near-stationary trips and would otherwise be swallowed by the
// low-travel formula.
func (c *Calculator) Calculate(in trip.Input) (res Result) {
	m := in.Metrics()

	for _, ec := range ExactCases {
		if ec.Matches(in) {
			res = Result{Amount: roundCents(ec.Amount), Stage: StageExactCase, Rule: ec.Name}
			return res
		}
	}

	if m.MilesPerDay < lowTravelMilesPerDay {
		res = Result{Amount: roundCents(lowTravelAmount(in)), Stage: StageLowTravel}
		return res
	}

	for _, rule := range PatternRules {
		if rule.Matches(in, m) {
			res = Result{Amount: roundCents(rule.Amount(in, m)), Stage: StagePattern, Rule: rule.Name}
			return res
		}
	}

	total := adjust(in, m, defaultBreakdown(in, m))
	res = Result{Amount: roundCents(total), Stage: StageDefault}

	return res
}

// lowTravelAmount handles near-stationary trips (little driving relative to
// duration), which the legacy system pays almost entirely from receipts.
func lowTravelAmount(in trip.Input) (amount float64) {
	if in.Days >= lowTravelLongTripDays {
		if in.Receipts < lowTravelLowReceipts {
			amount = 700 + in.Receipts
			return amount
		}

		amount = 800 + 0.8*in.Receipts
		return amount
	}

	amount = in.Receipts + 20*float64(in.Days)

	return amount
}

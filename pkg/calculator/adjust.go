package calculator

import (
	"math"

	"github.com/nikogura/legacy-reimburse/pkg/trip"
)

// adjust applies the fixed-order adjustment chain to the default formula's
// sub-totals: rounding-cents bonus, spending-per-day penalty, long-trip
// high-receipt penalty, deterministic pseudo-noise multiplier, floor clamp.
// The two penalties touch only the receipt sub-total.
func adjust(in trip.Input, m trip.Metrics, b Breakdown) (total float64) {
	var bonus float64
	if cents := in.ReceiptCents(); cents == 49 || cents == 99 {
		bonus = 2.50
	}

	receiptTotal := b.Receipts

	switch {
	case in.Days <= 3 && m.SpendingPerDay > 75:
		receiptTotal *= 0.85
	case in.Days >= 4 && in.Days <= 6 && m.SpendingPerDay > 120:
		receiptTotal *= 0.90
	case in.Days >= 7 && m.SpendingPerDay > 90:
		receiptTotal *= 0.80
	}

	if in.Days >= 10 && in.Receipts > 1000 {
		receiptTotal -= 250
	}

	total = b.PerDiem + b.Mileage + b.Efficiency + receiptTotal + bonus
	total *= 1 + noiseFactor(in)

	if floor := 50 * float64(in.Days); total < floor {
		total = floor
	}

	return total
}

// noiseFactor is the legacy system's "random-seeming" perturbation: a pure
// arithmetic function of the inputs, bit-reproducible for the same trip.
// Never back this with a seeded RNG.
func noiseFactor(in trip.Input) (f float64) {
	n := (7*in.Days + int(math.Floor(3*in.Miles)) + int(math.Floor(5*in.Receipts))) % 20
	f = float64(n) / 1000
	return f
}

// roundCents rounds half-up to two decimals. The epsilon bias keeps exact
// .xx5 boundaries from falling to banker's rounding.
func roundCents(x float64) (rounded float64) {
	rounded = math.Floor((x+1e-9)*100+0.5) / 100
	return rounded
}

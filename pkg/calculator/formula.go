package calculator

import (
	"math"

	"github.com/nikogura/legacy-reimburse/pkg/trip"
)

// Breakdown holds the four independent sub-totals of the default tiered
// formula. The receipt sub-total stays separate because two links of the
// adjustment chain touch only it.
type Breakdown struct {
	PerDiem    float64
	Mileage    float64
	Efficiency float64
	Receipts   float64
}

func defaultBreakdown(in trip.Input, m trip.Metrics) (b Breakdown) {
	b.PerDiem = perDiemComponent(in.Days)
	b.Mileage = mileageComponent(in.Days, in.Miles, m.MilesPerDay)
	b.Efficiency = efficiencyBonus(in.Miles, m.MilesPerDay)
	b.Receipts = receiptComponent(in.Days, in.Receipts, m.MilesPerDay)
	return b
}

// perDiemComponent is the day-bucketed base rate times days, with flat
// scaling for one-day, five-day, and ten-plus-day trips.
func perDiemComponent(days int) (amount float64) {
	var rate float64

	switch {
	case days <= 3:
		rate = 110
	case days <= 7:
		rate = 100
	default:
		rate = 90
	}

	amount = rate * float64(days)

	switch {
	case days == 5:
		amount *= 1.12
	case days >= 10:
		amount *= 0.88
	case days == 1:
		amount *= 0.90
	}

	return amount
}

// mileageComponent is tiered by milesPerDay, with a graduated schedule above
// 100 miles per day.
func mileageComponent(days int, miles, milesPerDay float64) (amount float64) {
	// Single-day trips over 800 miles are almost certainly air travel plus
	// a rental, not driving.
	if days == 1 && miles > 800 {
		amount = 400 + miles/1000*150
		return amount
	}

	switch {
	case milesPerDay < 20:
		amount = 0.30 * miles
	case milesPerDay < 50:
		amount = 0.40 * miles
	case milesPerDay <= 100:
		amount = 0.58 * miles
	default:
		amount = 0.58 * math.Min(miles, 100)
		if miles > 100 {
			amount += 0.52 * math.Min(miles-100, 400)
		}
		if miles > 500 {
			amount += 0.48 * (miles - 500)
		}
	}

	return amount
}

// efficiencyBonus pays a per-mile bonus bucketed by milesPerDay. The
// 180-220 band is the legacy system's sweet spot.
func efficiencyBonus(miles, milesPerDay float64) (bonus float64) {
	var rate float64

	switch {
	case milesPerDay < 20:
		rate = 0
	case milesPerDay < 50:
		rate = 0.01
	case milesPerDay < 100:
		rate = 0.02
	case milesPerDay < 180:
		rate = 0.03
	case milesPerDay <= 220:
		rate = 0.05
	default:
		rate = 0.02
	}

	bonus = rate * miles

	return bonus
}

// receiptComponent reimburses receipts. Near-stationary trips get a fixed
// generous fraction by day length; above $2000 a degressive formula docks a
// share of the excess, shrinking with trip length; everything else goes
// through the day-length by receipt-bracket matrix, where short trips take
// the hardest hit on very high receipts.
//
// The milesPerDay<20 branch is kept so the component stays total over the
// whole input domain even though the cascade routes such trips to the
// low-travel override first.
func receiptComponent(days int, receipts, milesPerDay float64) (amount float64) {
	if milesPerDay < lowTravelMilesPerDay {
		switch {
		case days <= 3:
			amount = 0.85 * receipts
		case days <= 7:
			amount = 0.80 * receipts
		default:
			amount = 0.75 * receipts
		}
		return amount
	}

	if receipts > 2000 {
		var base, frac float64

		switch {
		case days >= 10:
			base, frac = 1500, 0.20
		case days >= 7:
			base, frac = 1100, 0.30
		case days >= 4:
			base, frac = 1000, 0.40
		default:
			base, frac = 900, 0.60
		}

		// May go negative for extreme receipts; the floor clamp at the end
		// of the adjustment chain still bounds the final amount.
		amount = base - frac*(receipts-2000)

		return amount
	}

	switch {
	case days <= 3:
		switch {
		case receipts < 500:
			amount = 0.70 * receipts
		case receipts < 1000:
			amount = 350 + 0.55*(receipts-500)
		case receipts < 1500:
			amount = 625 + 0.30*(receipts-1000)
		default:
			// Flat cap: short trips with very high receipts.
			amount = 775
		}
	case days <= 9:
		switch {
		case receipts < 500:
			amount = 0.75 * receipts
		case receipts < 1000:
			amount = 375 + 0.60*(receipts-500)
		case receipts < 1500:
			amount = 675 + 0.40*(receipts-1000)
		default:
			amount = 875 + 0.20*(receipts-1500)
		}
	default:
		switch {
		case receipts < 500:
			amount = 0.80 * receipts
		case receipts < 1000:
			amount = 400 + 0.65*(receipts-500)
		case receipts < 1500:
			amount = 725 + 0.50*(receipts-1000)
		default:
			amount = 975 + 0.30*(receipts-1500)
		}
	}

	return amount
}

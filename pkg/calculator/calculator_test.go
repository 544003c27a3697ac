package calculator

import (
	"math"
	"testing"

	"github.com/nikogura/legacy-reimburse/pkg/trip"
)

const centTolerance = 1e-9

func calc(t *testing.T, days int, miles, receipts float64) (res Result) {
	t.Helper()

	in, err := trip.New(days, miles, receipts)
	if err != nil {
		t.Fatalf("Failed to build trip input: %v", err)
	}

	res = New().Calculate(in)

	return res
}

func TestExactOutlierFixtures(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		miles    float64
		receipts float64
		want     float64
	}{
		{name: "four day local big receipts", days: 4, miles: 69, receipts: 2321.49, want: 322.00},
		{name: "eight day mid mileage", days: 8, miles: 795, receipts: 1645.99, want: 644.69},
		{name: "one day transcon luxury", days: 1, miles: 1082, receipts: 1809.49, want: 446.94},
		{name: "thirteen day high mileage", days: 13, miles: 1199, receipts: 493.00, want: 1634.13},
		{name: "ten day stationary", days: 10, miles: 5, receipts: 1338.90, want: 1610.25},
		{name: "two day long haul", days: 2, miles: 1000, receipts: 1040, want: 1330.12},
		{name: "five day frugal road trip", days: 5, miles: 510, receipts: 200, want: 869.00},
		{name: "seven day heavy driving", days: 7, miles: 1005, receipts: 1180, want: 2030.59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc(t, tt.days, tt.miles, tt.receipts)
			if math.Abs(res.Amount-tt.want) > centTolerance {
				t.Errorf("Expected %.2f, got %.2f", tt.want, res.Amount)
			}
			if res.Stage != StageExactCase {
				t.Errorf("Expected stage %s, got %s", StageExactCase, res.Stage)
			}
		})
	}
}

// Near-stationary outliers are pinned by the exact table even though their
// inputs also satisfy the low-travel condition.
func TestExactOutliersBeatLowTravelFormula(t *testing.T) {
	tests := []struct {
		name          string
		days          int
		miles         float64
		receipts      float64
		want          float64
		lowTravelWant float64
	}{
		{name: "four day local big receipts", days: 4, miles: 69, receipts: 2321.49, want: 322.00, lowTravelWant: 2401.49},
		{name: "ten day stationary", days: 10, miles: 5, receipts: 1338.90, want: 1610.25, lowTravelWant: 1538.90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc(t, tt.days, tt.miles, tt.receipts)
			if res.Stage != StageExactCase {
				t.Fatalf("Expected stage %s, got %s", StageExactCase, res.Stage)
			}
			if math.Abs(res.Amount-tt.want) > centTolerance {
				t.Errorf("Expected %.2f, got %.2f", tt.want, res.Amount)
			}
			if math.Abs(res.Amount-tt.lowTravelWant) < centTolerance {
				t.Errorf("Got the low-travel formula's %.2f instead of the pinned amount", tt.lowTravelWant)
			}
		})
	}
}

func TestLowTravelOverride(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		miles    float64
		receipts float64
		want     float64
	}{
		{name: "short trip receipts plus per diem", days: 3, miles: 10, receipts: 100, want: 160.00},
		{name: "five day barely driving", days: 5, miles: 50, receipts: 333.33, want: 433.33},
		{name: "long trip low receipts", days: 12, miles: 100, receipts: 400, want: 1100.00},
		{name: "long trip high receipts", days: 12, miles: 100, receipts: 600, want: 1280.00},
		{name: "thirteen day low receipts", days: 13, miles: 50, receipts: 450, want: 1150.00},
		{name: "zero days pays receipts only", days: 0, miles: 0, receipts: 250.75, want: 250.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc(t, tt.days, tt.miles, tt.receipts)
			if math.Abs(res.Amount-tt.want) > centTolerance {
				t.Errorf("Expected %.2f, got %.2f", tt.want, res.Amount)
			}
			if res.Stage != StageLowTravel {
				t.Errorf("Expected stage %s, got %s", StageLowTravel, res.Stage)
			}
		})
	}
}

func TestPatternOverrides(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		miles    float64
		receipts float64
		want     float64
		wantRule string
	}{
		{
			name: "long trip high receipts",
			days: 14, miles: 500, receipts: 2100,
			want: 1850.00, wantRule: "long_trip_high_receipts",
		},
		{
			name: "medium long trip high receipts",
			days: 9, miles: 800, receipts: 1600,
			want: 860.00, wantRule: "medium_long_trip_high_receipts",
		},
		{
			name: "ten day moderate miles high receipts",
			days: 10, miles: 250, receipts: 2200,
			want: 1661.67, wantRule: "ten_day_moderate_miles_high_receipts",
		},
		{
			name: "one day high miles high receipts",
			days: 1, miles: 900, receipts: 2100,
			want: 1490.00, wantRule: "one_day_high_miles_high_receipts",
		},
		{
			name: "two week low miles",
			days: 13, miles: 280, receipts: 800,
			want: 1843.33, wantRule: "two_week_low_miles",
		},
		{
			name: "nine day mid receipts moderate driving",
			days: 9, miles: 300, receipts: 1200,
			want: 1635.00, wantRule: "nine_to_eleven_day_mid_receipts",
		},
		{
			name: "eleven day mid receipts heavy driving",
			days: 11, miles: 660, receipts: 1500,
			want: 1510.00, wantRule: "nine_to_eleven_day_mid_receipts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc(t, tt.days, tt.miles, tt.receipts)
			if math.Abs(res.Amount-tt.want) > centTolerance {
				t.Errorf("Expected %.2f, got %.2f", tt.want, res.Amount)
			}
			if res.Stage != StagePattern {
				t.Errorf("Expected stage %s, got %s", StagePattern, res.Stage)
			}
			if res.Rule != tt.wantRule {
				t.Errorf("Expected rule %s, got %s", tt.wantRule, res.Rule)
			}
		})
	}
}

func TestDefaultFormulaPath(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		miles    float64
		receipts float64
		want     float64
	}{
		// 330 per diem + 87 mileage + 3 efficiency + 315 receipts,
		// receipts docked to 267.75 by the spending penalty, noise 0.001.
		{name: "three day moderate trip", days: 3, miles: 150, receipts: 450, want: 688.44},
		// 560 per diem (five day scaling) + 506 graduated mileage +
		// 50 sweet spot bonus + 555 receipts docked to 499.50, noise 0.015.
		{name: "five day sweet spot mileage", days: 5, miles: 1000, receipts: 800, want: 1639.73},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc(t, tt.days, tt.miles, tt.receipts)
			if math.Abs(res.Amount-tt.want) > centTolerance {
				t.Errorf("Expected %.2f, got %.2f", tt.want, res.Amount)
			}
			if res.Stage != StageDefault {
				t.Errorf("Expected stage %s, got %s", StageDefault, res.Stage)
			}
		})
	}
}

// The degressive receipt formula can pull the pre-clamp total below the
// floor; the clamp guarantees 50 per day.
func TestFloorClamp(t *testing.T) {
	res := calc(t, 2, 60, 4000)

	if res.Stage != StageDefault {
		t.Fatalf("Expected stage %s, got %s", StageDefault, res.Stage)
	}
	if math.Abs(res.Amount-100.00) > centTolerance {
		t.Errorf("Expected floor-clamped 100.00, got %.2f", res.Amount)
	}
}

// Receipts ending in .49 pay a flat 2.50 more than .48, all other buckets
// held constant. Inputs are chosen so the noise factor is zero for both
// (floor of five times either receipt total is 8012, and 21+447+8012 is a
// multiple of 20) and the receipt bracket is the flat 775 cell.
func TestRoundingCentsBonus(t *testing.T) {
	withBonus := calc(t, 3, 149, 1602.49)
	withoutBonus := calc(t, 3, 149, 1602.48)

	// 330 per diem + 59.60 mileage + 1.49 efficiency + 658.75 docked
	// receipts, plus the 2.50 bonus on the .49 side.
	if math.Abs(withBonus.Amount-1052.34) > centTolerance {
		t.Errorf("Expected 1052.34 with bonus, got %.2f", withBonus.Amount)
	}
	if math.Abs(withoutBonus.Amount-1049.84) > centTolerance {
		t.Errorf("Expected 1049.84 without bonus, got %.2f", withoutBonus.Amount)
	}

	diff := withBonus.Amount - withoutBonus.Amount
	if math.Abs(diff-2.50) > centTolerance {
		t.Errorf("Expected bonus of exactly 2.50, got %.2f", diff)
	}
}

func TestDeterminism(t *testing.T) {
	in, err := trip.New(8, 795, 1645.99)
	if err != nil {
		t.Fatalf("Failed to build trip input: %v", err)
	}

	c := New()
	first := c.Calculate(in)

	for i := 0; i < 100; i++ {
		res := c.Calculate(in)
		if res != first {
			t.Fatalf("Calculation not deterministic: %+v vs %+v", res, first)
		}
	}
}

func TestTwoDecimalInvariant(t *testing.T) {
	milesGrid := []float64{0, 10, 69, 150, 450, 795, 900, 1082, 1199}
	receiptsGrid := []float64{0, 99.99, 450, 1338.90, 1601.89, 2321.49, 4000}

	for days := 0; days <= 15; days++ {
		for _, miles := range milesGrid {
			for _, receipts := range receiptsGrid {
				res := calc(t, days, miles, receipts)
				cents := res.Amount * 100
				if math.Abs(cents-math.Round(cents)) > 1e-6 {
					t.Errorf("Amount %v for (%d, %v, %v) is not a whole number of cents",
						res.Amount, days, miles, receipts)
				}
			}
		}
	}
}

func TestFloorInvariantOnDefaultPath(t *testing.T) {
	milesGrid := []float64{150, 450, 795, 1082}
	receiptsGrid := []float64{0, 450, 1800, 2321.49, 4000}

	for days := 1; days <= 15; days++ {
		for _, miles := range milesGrid {
			for _, receipts := range receiptsGrid {
				res := calc(t, days, miles, receipts)
				if res.Stage != StageDefault {
					continue
				}
				floor := 50 * float64(days)
				if res.Amount < floor-0.005 {
					t.Errorf("Amount %.2f for (%d, %v, %v) is below the %.2f floor",
						res.Amount, days, miles, receipts, floor)
				}
			}
		}
	}
}

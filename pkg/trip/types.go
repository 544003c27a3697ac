package trip

import (
	"math"

	"github.com/pkg/errors"
)

// Input describes a single reimbursement request: trip duration in days,
// miles traveled, and total receipt amount. Constructed once per call and
// never mutated.
type Input struct {
	Days     int
	Miles    float64
	Receipts float64
}

// Metrics holds the per-day rates derived from an Input.
type Metrics struct {
	MilesPerDay    float64
	SpendingPerDay float64
}

// New validates and constructs an Input. Negative or non-finite values are
// outside the documented domain and are rejected rather than clamped.
func New(days int, miles float64, receipts float64) (in Input, err error) {
	if days < 0 {
		err = errors.Errorf("days must be non-negative, got %d", days)
		return in, err
	}

	if math.IsNaN(miles) || math.IsInf(miles, 0) || miles < 0 {
		err = errors.Errorf("miles must be a non-negative number, got %v", miles)
		return in, err
	}

	if math.IsNaN(receipts) || math.IsInf(receipts, 0) || receipts < 0 {
		err = errors.Errorf("receipts must be a non-negative number, got %v", receipts)
		return in, err
	}

	in = Input{Days: days, Miles: miles, Receipts: receipts}

	return in, err
}

// Metrics derives the per-day rates. Zero-day trips yield zero for both
// rates, never a division by zero.
func (i Input) Metrics() (m Metrics) {
	if i.Days == 0 {
		return m
	}

	m.MilesPerDay = i.Miles / float64(i.Days)
	m.SpendingPerDay = i.Receipts / float64(i.Days)

	return m
}

// ReceiptCents returns the cents portion of the receipt total. Rounding
// before truncation keeps amounts like x.49 from landing on 48 due to float
// representation.
func (i Input) ReceiptCents() (cents int) {
	cents = int(math.Round(i.Receipts*100)) % 100
	return cents
}

package calculator

import (
	"math"

	"github.com/nikogura/legacy-reimburse/pkg/trip"
)

// Coefficients of the superseded "sigmoid gate" linear model: a single OLS
// fit whose receipt terms are blended through a logistic gate on the
// receipts-to-miles ratio. Replaced by the rule cascade, kept for comparing
// against historical outputs.
const (
	gateDaysCoefficient     = 116.3323007
	gateMilesCoefficient    = 0.45118319
	gateReceiptsCoefficient = 0.52596549
	gateIntercept           = -268.98059207

	gateLongTripThresholdDays = 7
	gateLongTripPenaltyPerDay = 85.0

	gateCenterRatio = 5.0
	gateSlope       = 0.7
	gateEpsMiles    = 1.0
)

// GateModel is the superseded linear model. It is never consulted by the
// cascade.
type GateModel struct{}

// NewGateModel creates a new gate model instance.
func NewGateModel() (model *GateModel) {
	model = &GateModel{}
	return model
}

// gate returns the logistic weight in (0,1] applied to the receipt terms.
func (g *GateModel) gate(miles, receipts float64) (weight float64) {
	r := receipts / math.Max(miles, gateEpsMiles)
	weight = 1 / (1 + math.Exp(-gateSlope*(r-gateCenterRatio)))
	return weight
}

// Predict returns the gate model's reimbursement, rounded to cents.
func (g *GateModel) Predict(in trip.Input) (amount float64) {
	days := float64(in.Days)
	w := g.gate(in.Miles, in.Receipts)

	amount = gateDaysCoefficient*days +
		gateMilesCoefficient*in.Miles +
		gateIntercept +
		gateReceiptsCoefficient*w*in.Receipts

	if in.Days > gateLongTripThresholdDays {
		amount -= gateLongTripPenaltyPerDay * w * (days - gateLongTripThresholdDays)
	}

	amount = roundCents(amount)

	return amount
}

package domain

import (
	"math"
	"testing"
)

func TestEstimatePrice_Formula(t *testing.T) {
	t.Parallel()

	est := EstimatePrice(10)
	if math.Abs(est.Base-70) > 1e-9 {
		t.Fatalf("base: expected 70, got %v", est.Base)
	}
	if math.Abs(est.FuelSurcharge-10.5) > 1e-9 {
		t.Fatalf("surcharge: expected 10.5, got %v", est.FuelSurcharge)
	}
	if math.Abs(est.Total-80.5) > 1e-9 {
		t.Fatalf("total: expected 80.5, got %v", est.Total)
	}
}

func TestEstimatePrice_NonPositiveWeight(t *testing.T) {
	t.Parallel()

	if est := EstimatePrice(0); est != (PriceEstimate{}) {
		t.Fatalf("expected zero estimate, got %+v", est)
	}
	if est := EstimatePrice(-5); est != (PriceEstimate{}) {
		t.Fatalf("expected zero estimate, got %+v", est)
	}
}

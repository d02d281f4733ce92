package domain

// PriceEstimate mirrors the backend pricing formula for display only.
// The backend remains the authority on the final price.
type PriceEstimate struct {
	Base          float64
	FuelSurcharge float64
	Total         float64
}

const (
	priceFlatFee       = 50.0
	pricePerKg         = 2.0
	fuelSurchargeShare = 0.15
)

// EstimatePrice computes the display-only price estimate for a given weight.
// Non-positive weight yields a zero estimate.
func EstimatePrice(weightKg float64) PriceEstimate {
	if weightKg <= 0 {
		return PriceEstimate{}
	}
	base := priceFlatFee + weightKg*pricePerKg
	surcharge := base * fuelSurchargeShare
	return PriceEstimate{
		Base:          base,
		FuelSurcharge: surcharge,
		Total:         base + surcharge,
	}
}

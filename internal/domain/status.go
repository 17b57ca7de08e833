package domain

// Stored status and type codes used by the eligibility filters.
const (
	StatusActive = "A"

	PromotionTypeDiscount = "D"
	OfferTypeDiscount     = "DIS"

	PromocodeStatusValid = "VALID"
	PromocodeUsageMulti  = "M"
	PromocodeUsageSingle = "S"
	PromocodeBlasted     = "Y"
)

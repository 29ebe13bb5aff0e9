package domain

// PricingStrategy computes a booking total from the night count, the
// room's nightly rate, and the prices of the selected offers.
type PricingStrategy interface {
	Total(nights int, rate float64, offerPrices []float64) (float64, error)
}

// StandardPricing is nights times rate plus the selected offer prices.
type StandardPricing struct{}

func (StandardPricing) Total(nights int, rate float64, offerPrices []float64) (float64, error) {
	if nights <= 0 {
		return 0, InvalidRangeError{Msg: "checkout must be after check-in"}
	}
	total := float64(nights) * rate
	for _, p := range offerPrices {
		total += p
	}
	return total, nil
}

// LongStayDiscount decorates another strategy with a proportional
// discount applied to the full total once the stay reaches
// ThresholdNights. Selected by configuration, not per room or booking.
type LongStayDiscount struct {
	Base            PricingStrategy
	ThresholdNights int
	Rate            float64
}

func (d LongStayDiscount) Total(nights int, rate float64, offerPrices []float64) (float64, error) {
	total, err := d.Base.Total(nights, rate, offerPrices)
	if err != nil {
		return 0, err
	}
	if nights >= d.ThresholdNights {
		total *= 1 - d.Rate
	}
	return total, nil
}

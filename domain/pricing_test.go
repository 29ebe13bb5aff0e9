package domain

import "testing"

func TestStandardPricingThreeNightsNoOffers(t *testing.T) {
	total, err := StandardPricing{}.Total(3, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 300 {
		t.Fatalf("total = %v, want 300", total)
	}
}

func TestStandardPricingWithOffers(t *testing.T) {
	total, err := StandardPricing{}.Total(2, 150, []float64{15, 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 355 {
		t.Fatalf("total = %v, want 355", total)
	}
}

func TestStandardPricingRejectsNonPositiveNights(t *testing.T) {
	for _, nights := range []int{0, -1} {
		_, err := StandardPricing{}.Total(nights, 100, nil)
		if err == nil {
			t.Fatalf("nights=%d: expected error", nights)
		}
		if !IsInvalidRange(err) {
			t.Fatalf("nights=%d: got %T, want InvalidRangeError", nights, err)
		}
	}
}

func TestLongStayDiscountAppliesAtThreshold(t *testing.T) {
	strat := LongStayDiscount{Base: StandardPricing{}, ThresholdNights: 7, Rate: 0.10}

	total, err := strat.Total(7, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 630 {
		t.Fatalf("7 nights at 100 with 10%% off = %v, want 630", total)
	}
}

func TestLongStayDiscountBelowThreshold(t *testing.T) {
	strat := LongStayDiscount{Base: StandardPricing{}, ThresholdNights: 7, Rate: 0.10}

	total, err := strat.Total(6, 100, []float64{50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 650 {
		t.Fatalf("6 nights at 100 plus 50 offer = %v, want 650", total)
	}
}

func TestLongStayDiscountPropagatesRangeError(t *testing.T) {
	strat := LongStayDiscount{Base: StandardPricing{}, ThresholdNights: 7, Rate: 0.10}
	if _, err := strat.Total(0, 100, nil); !IsInvalidRange(err) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
}

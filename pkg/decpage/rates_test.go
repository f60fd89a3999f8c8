package decpage

import (
	"math"
	"testing"
)

func TestGenerateFakeRatesWithinBand(t *testing.T) {
	rates := GenerateFakeRates("1,482.50")

	if len(rates) != 5 {
		t.Fatalf("carrier count = %d, want 5", len(rates))
	}
	for _, carrier := range []string{"Travelers", "Geico", "Progressive", "Safeco", "Nationwide"} {
		rate, ok := rates[carrier]
		if !ok {
			t.Errorf("missing carrier %s", carrier)
			continue
		}
		if rate < 1482.50*0.9 || rate > 1482.50*1.1 {
			t.Errorf("%s rate %.2f outside ten percent band", carrier, rate)
		}
		if math.Round(rate*100)/100 != rate {
			t.Errorf("%s rate %v not rounded to cents", carrier, rate)
		}
	}
}

func TestGenerateFakeRatesMalformedBase(t *testing.T) {
	for _, raw := range []string{"", "   ", "n/a", "$1200"} {
		rates := GenerateFakeRates(raw)
		for carrier, rate := range rates {
			if rate < DefaultBasePremium*0.9 || rate > DefaultBasePremium*1.1 {
				t.Errorf("GenerateFakeRates(%q)[%s] = %.2f, want near default base", raw, carrier, rate)
			}
		}
	}
}

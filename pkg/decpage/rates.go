package decpage

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// DefaultBasePremium is assumed when the scraped premium is missing or
// unparseable.
const DefaultBasePremium = 1200.0

var carriers = []string{"Travelers", "Geico", "Progressive", "Safeco", "Nationwide"}

// GenerateFakeRates produces illustrative per-carrier annual premiums at
// base plus or minus ten percent. Not actuarial; demo data for the quote
// comparison table.
func GenerateFakeRates(basePremium string) map[string]float64 {
	base := parseBase(basePremium)
	rates := make(map[string]float64, len(carriers))
	for _, c := range carriers {
		factor := 1 + (rand.Float64()*0.2 - 0.1)
		rates[c] = math.Round(base*factor*100) / 100
	}
	return rates
}

func parseBase(raw string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return DefaultBasePremium
	}
	base, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return DefaultBasePremium
	}
	return base
}

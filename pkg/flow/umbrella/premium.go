package umbrella

import (
	"strconv"
	"strings"
)

// EstimatePremium computes the annual premium estimate pair for the
// $1M/$2M limit tiers. Deterministic; numeric parse failures contribute
// nothing rather than erroring.
func EstimatePremium(slots map[string]string) (int, int) {
	base := 220

	bi := slots[SlotAutoBILimit]
	if strings.HasPrefix(bi, "25/") || strings.HasPrefix(bi, "50/") {
		base += 60
	}

	if teens, err := strconv.Atoi(slots[SlotNumTeenDrivers]); err == nil && teens > 0 {
		base += 40 * teens
	}

	if strings.HasPrefix(strings.ToLower(slots[SlotPoolTrampoline]), "y") {
		base += 35
	}
	if strings.HasPrefix(strings.ToLower(slots[SlotDog]), "y") {
		base += 20
	}

	if rentals, err := strconv.Atoi(slots[SlotRentalProperties]); err == nil && rentals > 0 {
		base += 25 * rentals
	}

	if strings.HasPrefix(strings.ToLower(slots[SlotWatercraftOver25]), "y") {
		base += 30
	}

	switch strings.ToLower(strings.TrimSpace(slots[SlotPriorLosses5y])) {
	case "1", "one":
		base += 50
	case "2", "2+", "two", "2 or more":
		base += 120
	}

	return base, base + 120
}

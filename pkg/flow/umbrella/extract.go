package umbrella

import (
	"regexp"
	"strings"
)

var (
	biPairPattern = regexp.MustCompile(`\b(25/50|50/100|100/300|250/500|300/300|500/500)\b`)
	dollarPattern = regexp.MustCompile(`\b(100000|250000|300000|500000)\b`)
	teenPattern   = regexp.MustCompile(`\b(\d+)\s+(teen|teenage)`)
	driverPattern = regexp.MustCompile(`\b(\d+)\s+(driver|drivers)\b`)
	rentalPattern = regexp.MustCompile(`\b(\d+)\s+(rental|rentals|rental properties)\b`)
	lossPattern   = regexp.MustCompile(`\b(0|1|2|2\+)\s+(loss|losses|claims)\b`)
)

// Absorb extracts slot values from a free-text message into slots, in place,
// and returns the map. Extraction is best-effort and additive: a turn may
// fill several slots, and filled slots are not overwritten except where the
// rules below say otherwise.
func Absorb(slots map[string]string, msg string) map[string]string {
	if slots == nil {
		slots = map[string]string{}
	}
	if msg == "" {
		return slots
	}

	if m := biPairPattern.FindStringSubmatch(msg); m != nil && slots[SlotAutoBILimit] == "" {
		slots[SlotAutoBILimit] = m[1]
	}

	// Generic large-dollar figures absorb into PD limit first, then home
	// liability, one slot per mention. Unrelated numbers of the same
	// magnitude are misattributed; known heuristic limitation.
	if amounts := dollarPattern.FindAllString(msg, -1); len(amounts) > 0 {
		if slots[SlotAutoPDLimit] == "" {
			slots[SlotAutoPDLimit] = amounts[0]
		} else if slots[SlotHomeLiability] == "" {
			slots[SlotHomeLiability] = amounts[0]
		}
	}

	lm := strings.ToLower(msg)

	if strings.Contains(lm, "pool") || strings.Contains(lm, "trampoline") {
		slots[SlotPoolTrampoline] = yesNo(lm)
	}
	if strings.Contains(lm, "dog") {
		slots[SlotDog] = yesNo(lm)
	}

	if m := teenPattern.FindStringSubmatch(lm); m != nil {
		slots[SlotNumTeenDrivers] = m[1]
	}
	if m := driverPattern.FindStringSubmatch(lm); m != nil && slots[SlotNumDrivers] == "" {
		slots[SlotNumDrivers] = m[1]
	}
	if m := rentalPattern.FindStringSubmatch(lm); m != nil {
		slots[SlotRentalProperties] = m[1]
	}

	if strings.Contains(lm, "watercraft") || strings.Contains(lm, "boat") {
		if strings.Contains(lm, "over 25") {
			slots[SlotWatercraftOver25] = "yes"
		} else if slots[SlotWatercraftOver25] == "" {
			slots[SlotWatercraftOver25] = "no"
		}
	}

	if m := lossPattern.FindStringSubmatch(lm); m != nil {
		slots[SlotPriorLosses5y] = m[1]
	}

	return slots
}

func yesNo(lowered string) string {
	if strings.Contains(lowered, "no") {
		return "no"
	}
	return "yes"
}

// Package umbrella drives the fixed multi-turn umbrella-quote dialogue:
// slot extraction from free text, question ordering, and the premium
// estimate once every slot is filled.
package umbrella

// Slot names, in the fixed question-asking order.
const (
	SlotAutoBILimit      = "auto_bi_limit"
	SlotAutoPDLimit      = "auto_pd_limit"
	SlotHomeLiability    = "home_liability_limit"
	SlotNumDrivers       = "num_drivers"
	SlotNumTeenDrivers   = "num_teen_drivers"
	SlotPoolTrampoline   = "has_pool_trampoline"
	SlotDog              = "has_dog"
	SlotRentalProperties = "num_rental_properties"
	SlotWatercraftOver25 = "watercraft_over_25ft"
	SlotPriorLosses5y    = "prior_liability_losses_5y"
)

// RequiredSlots is the declared question order; the dialogue never advances
// past an unfilled slot.
var RequiredSlots = []string{
	SlotAutoBILimit,
	SlotAutoPDLimit,
	SlotHomeLiability,
	SlotNumDrivers,
	SlotNumTeenDrivers,
	SlotPoolTrampoline,
	SlotDog,
	SlotRentalProperties,
	SlotWatercraftOver25,
	SlotPriorLosses5y,
}

// Questions maps each slot to its canonical question text, used verbatim
// when LLM phrasing is unavailable.
var Questions = map[string]string{
	SlotAutoBILimit:      "What are your auto bodily injury limits? (e.g., 100/300)",
	SlotAutoPDLimit:      "What is your auto property damage limit? (e.g., 100000 or 250000)",
	SlotHomeLiability:    "What is your home liability limit? (e.g., 300000 or 500000)",
	SlotNumDrivers:       "How many licensed household drivers?",
	SlotNumTeenDrivers:   "How many teen drivers (under 20)?",
	SlotPoolTrampoline:   "Do you have a pool or trampoline? (yes/no)",
	SlotDog:              "Do you have a dog? (yes/no)",
	SlotRentalProperties: "How many rental properties, if any?",
	SlotWatercraftOver25: "Any watercraft over 25 ft? (yes/no)",
	SlotPriorLosses5y:    "Any liability claims in the last 5 years? (0/1/2+)",
}

// NextMissing returns the first unfilled slot in declared order, or "" when
// the set is complete.
func NextMissing(slots map[string]string) string {
	for _, name := range RequiredSlots {
		if slots[name] == "" {
			return name
		}
	}
	return ""
}

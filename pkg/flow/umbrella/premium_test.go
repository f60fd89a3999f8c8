package umbrella

import (
	"strconv"
	"testing"
)

func cleanSlots() map[string]string {
	return map[string]string{
		SlotAutoBILimit:      "100/300",
		SlotAutoPDLimit:      "100000",
		SlotHomeLiability:    "300000",
		SlotNumDrivers:       "2",
		SlotNumTeenDrivers:   "0",
		SlotPoolTrampoline:   "no",
		SlotDog:              "no",
		SlotRentalProperties: "0",
		SlotWatercraftOver25: "no",
		SlotPriorLosses5y:    "0",
	}
}

func TestEstimatePremiumCleanRisk(t *testing.T) {
	oneM, twoM := EstimatePremium(cleanSlots())
	if oneM != 220 || twoM != 340 {
		t.Errorf("clean risk = (%d, %d), want (220, 340)", oneM, twoM)
	}
}

func TestEstimatePremiumSurcharges(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(map[string]string)
		wantOneM int
	}{
		{name: "low bi 25/50", mutate: func(s map[string]string) { s[SlotAutoBILimit] = "25/50" }, wantOneM: 280},
		{name: "low bi 50/100", mutate: func(s map[string]string) { s[SlotAutoBILimit] = "50/100" }, wantOneM: 280},
		{name: "one teen", mutate: func(s map[string]string) { s[SlotNumTeenDrivers] = "1" }, wantOneM: 260},
		{name: "two teens", mutate: func(s map[string]string) { s[SlotNumTeenDrivers] = "2" }, wantOneM: 300},
		{name: "pool", mutate: func(s map[string]string) { s[SlotPoolTrampoline] = "yes" }, wantOneM: 255},
		{name: "dog", mutate: func(s map[string]string) { s[SlotDog] = "yes" }, wantOneM: 240},
		{name: "one rental", mutate: func(s map[string]string) { s[SlotRentalProperties] = "1" }, wantOneM: 245},
		{name: "three rentals", mutate: func(s map[string]string) { s[SlotRentalProperties] = "3" }, wantOneM: 295},
		{name: "watercraft", mutate: func(s map[string]string) { s[SlotWatercraftOver25] = "yes" }, wantOneM: 250},
		{name: "one loss", mutate: func(s map[string]string) { s[SlotPriorLosses5y] = "1" }, wantOneM: 270},
		{name: "one loss spelled", mutate: func(s map[string]string) { s[SlotPriorLosses5y] = "one" }, wantOneM: 270},
		{name: "two losses", mutate: func(s map[string]string) { s[SlotPriorLosses5y] = "2" }, wantOneM: 340},
		{name: "two plus losses", mutate: func(s map[string]string) { s[SlotPriorLosses5y] = "2+" }, wantOneM: 340},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := cleanSlots()
			tt.mutate(slots)
			oneM, twoM := EstimatePremium(slots)
			if oneM != tt.wantOneM {
				t.Errorf("oneM = %d, want %d", oneM, tt.wantOneM)
			}
			if twoM != oneM+120 {
				t.Errorf("twoM = %d, want oneM+120", twoM)
			}
		})
	}
}

func TestEstimatePremiumMonotonic(t *testing.T) {
	counted := []string{SlotNumTeenDrivers, SlotRentalProperties}
	for _, slot := range counted {
		prev, _ := EstimatePremium(cleanSlots())
		for n := 1; n <= 4; n++ {
			slots := cleanSlots()
			slots[slot] = strconv.Itoa(n)
			oneM, _ := EstimatePremium(slots)
			if oneM <= prev {
				t.Fatalf("premium not increasing in %s: %d -> %d", slot, prev, oneM)
			}
			prev = oneM
		}
	}

	// loss buckets: 0 < 1 < 2+
	prev, _ := premiumWithLosses("0")
	for _, bucket := range []string{"1", "2+"} {
		oneM, _ := premiumWithLosses(bucket)
		if oneM <= prev {
			t.Fatalf("premium not increasing in losses bucket %q: %d -> %d", bucket, prev, oneM)
		}
		prev = oneM
	}
}

func premiumWithLosses(bucket string) (int, int) {
	slots := cleanSlots()
	slots[SlotPriorLosses5y] = bucket
	return EstimatePremium(slots)
}

func TestEstimatePremiumParseFailuresIgnored(t *testing.T) {
	slots := cleanSlots()
	slots[SlotNumTeenDrivers] = "a few"
	slots[SlotRentalProperties] = "none"
	slots[SlotPriorLosses5y] = "maybe"

	oneM, twoM := EstimatePremium(slots)
	if oneM != 220 || twoM != 340 {
		t.Errorf("unparseable answers should contribute nothing, got (%d, %d)", oneM, twoM)
	}
}

package umbrella

import "testing"

func TestAbsorbBILimits(t *testing.T) {
	slots := Absorb(nil, "my limits are 100/300")
	if slots[SlotAutoBILimit] != "100/300" {
		t.Errorf("bi = %q, want 100/300", slots[SlotAutoBILimit])
	}

	// filled slot is not overwritten on a later turn
	Absorb(slots, "actually 250/500")
	if slots[SlotAutoBILimit] != "100/300" {
		t.Errorf("bi overwritten to %q", slots[SlotAutoBILimit])
	}
}

func TestAbsorbDollarAmountsFillPDThenHome(t *testing.T) {
	slots := map[string]string{}

	Absorb(slots, "property damage is 100000")
	if slots[SlotAutoPDLimit] != "100000" {
		t.Fatalf("pd = %q, want 100000", slots[SlotAutoPDLimit])
	}
	if slots[SlotHomeLiability] != "" {
		t.Fatalf("home filled too early: %q", slots[SlotHomeLiability])
	}

	Absorb(slots, "home liability 300000")
	if slots[SlotHomeLiability] != "300000" {
		t.Errorf("home = %q, want 300000", slots[SlotHomeLiability])
	}
	if slots[SlotAutoPDLimit] != "100000" {
		t.Errorf("pd changed to %q", slots[SlotAutoPDLimit])
	}
}

func TestAbsorbYesNoSlots(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		slot string
		want string
	}{
		{name: "pool yes", msg: "we have a pool", slot: SlotPoolTrampoline, want: "yes"},
		{name: "trampoline no", msg: "no trampoline here", slot: SlotPoolTrampoline, want: "no"},
		{name: "dog yes", msg: "one dog", slot: SlotDog, want: "yes"},
		{name: "dog no", msg: "no dog", slot: SlotDog, want: "no"},
		{name: "watercraft small", msg: "just a small boat", slot: SlotWatercraftOver25, want: "no"},
		{name: "watercraft over 25", msg: "a boat over 25 feet", slot: SlotWatercraftOver25, want: "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := Absorb(nil, tt.msg)
			if slots[tt.slot] != tt.want {
				t.Errorf("Absorb(%q)[%s] = %q, want %q", tt.msg, tt.slot, slots[tt.slot], tt.want)
			}
		})
	}
}

func TestAbsorbCounts(t *testing.T) {
	slots := Absorb(nil, "we have 3 drivers, 1 teen driver, 2 rentals and 0 losses")

	want := map[string]string{
		SlotNumDrivers:       "3",
		SlotNumTeenDrivers:   "1",
		SlotRentalProperties: "2",
		SlotPriorLosses5y:    "0",
	}
	for slot, v := range want {
		if slots[slot] != v {
			t.Errorf("%s = %q, want %q", slot, slots[slot], v)
		}
	}
}

func TestAbsorbRepeatKeepsFilledSlots(t *testing.T) {
	msg := "100/300, 100000 PD, pool, no dog, 2 drivers, 0 teen drivers, 0 rentals, no boat, 0 losses"

	first := Absorb(nil, msg)
	snapshot := map[string]string{}
	for k, v := range first {
		snapshot[k] = v
	}

	Absorb(first, msg)
	for k, v := range snapshot {
		if first[k] != v {
			t.Errorf("slot %s drifted from %q to %q on repeat", k, v, first[k])
		}
	}
}

func TestAbsorbEmptyAndNil(t *testing.T) {
	if slots := Absorb(nil, ""); slots == nil || len(slots) != 0 {
		t.Errorf("want empty map, got %v", slots)
	}
}

func TestNextMissingOrder(t *testing.T) {
	slots := map[string]string{}
	if got := NextMissing(slots); got != SlotAutoBILimit {
		t.Fatalf("first question = %q, want %q", got, SlotAutoBILimit)
	}

	for _, name := range RequiredSlots {
		if got := NextMissing(slots); got != name {
			t.Fatalf("next = %q, want %q", got, name)
		}
		slots[name] = "x"
	}
	if got := NextMissing(slots); got != "" {
		t.Errorf("complete set still missing %q", got)
	}
}

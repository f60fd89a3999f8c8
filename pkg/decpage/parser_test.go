package decpage

import (
	"strings"
	"testing"
)

const sampleDec = `AUTO INSURANCE DECLARATIONS
Policy #: ABC-123456
Policy Term: 01/15/2025 - 07/15/2025
Full Term Premium: $1,482.50
Named Insured: Jane Smith
Email: jane.smith@example.com
Address: 12 Main St
Boston, MA 02108

Veh #1: 2020 TOYOTA Camry LE, VIN 4T1BF1FK5HU123456
Optional Bodily Injury: 100,300
UM: 100,300
Vehicle Premium: $741.25
Collision: 500
Comprehensive: 300
Rental: $30/day for 30 days
Roadside: Included

Veh #2: 2018 HONDA Pilot, VIN 2HKRW2H85JH654321
Vehicle Premium: $741.25
Collision: 1000

Drivers
Driver #1 Jane Smith 04/12/1985
Driver #2 John Smith 09/30/1983
`

func TestParsePolicyInfo(t *testing.T) {
	got := Parse(sampleDec)

	if got.PolicyInfo.PolicyNumber != "ABC-123456" {
		t.Errorf("policy number = %q", got.PolicyInfo.PolicyNumber)
	}
	if got.PolicyInfo.StartDate != "01/15/2025" || got.PolicyInfo.EndDate != "07/15/2025" {
		t.Errorf("term = %q - %q", got.PolicyInfo.StartDate, got.PolicyInfo.EndDate)
	}
	if got.PolicyInfo.FullTermPremium != "1,482.50" {
		t.Errorf("premium = %q", got.PolicyInfo.FullTermPremium)
	}
}

func TestParseInsured(t *testing.T) {
	got := Parse(sampleDec)

	if got.Insured.Name != "Jane Smith" {
		t.Errorf("name = %q", got.Insured.Name)
	}
	if got.Insured.Email != "jane.smith@example.com" {
		t.Errorf("email = %q", got.Insured.Email)
	}
	if !strings.HasPrefix(got.Insured.Address, "12 Main St") || !strings.Contains(got.Insured.Address, "MA 02108") {
		t.Errorf("address = %q", got.Insured.Address)
	}
}

func TestParseVehicles(t *testing.T) {
	got := Parse(sampleDec)

	if len(got.Vehicles) != 2 {
		t.Fatalf("vehicle count = %d, want 2", len(got.Vehicles))
	}

	v1 := got.Vehicles[0]
	if v1.Year != "2020" || v1.Make != "TOYOTA" || v1.Model != "Camry LE" {
		t.Errorf("vehicle 1 = %s %s %s", v1.Year, v1.Make, v1.Model)
	}
	if v1.VIN != "4T1BF1FK5HU123456" {
		t.Errorf("vin = %q", v1.VIN)
	}
	if v1.VehiclePremium != "741.25" {
		t.Errorf("vehicle premium = %q", v1.VehiclePremium)
	}
	if v1.BodilyInjury != "100/300" {
		t.Errorf("bi = %q", v1.BodilyInjury)
	}
	if v1.UninsuredMotorist != "100/300" {
		t.Errorf("um = %q", v1.UninsuredMotorist)
	}
	if v1.CollisionDeductible != "500" || v1.ComprehensiveDeductible != "300" {
		t.Errorf("deductibles = %q / %q", v1.CollisionDeductible, v1.ComprehensiveDeductible)
	}
	if v1.RentalCoverage != "$30/day for 30 days" {
		t.Errorf("rental = %q", v1.RentalCoverage)
	}
	if v1.RoadsideAssistance != "Included" {
		t.Errorf("roadside = %q", v1.RoadsideAssistance)
	}

	v2 := got.Vehicles[1]
	if v2.Year != "2018" || v2.Make != "HONDA" {
		t.Errorf("vehicle 2 = %s %s", v2.Year, v2.Make)
	}
	if v2.CollisionDeductible != "1000" {
		t.Errorf("vehicle 2 collision = %q", v2.CollisionDeductible)
	}
	if v2.BodilyInjury != "" {
		t.Errorf("vehicle 2 bi should be empty, got %q", v2.BodilyInjury)
	}
}

func TestParseDrivers(t *testing.T) {
	got := Parse(sampleDec)

	if len(got.Drivers) != 2 {
		t.Fatalf("driver count = %d, want 2", len(got.Drivers))
	}
	if got.Drivers[0].DriverNumber != "1" || got.Drivers[0].Name != "Jane Smith" || got.Drivers[0].DOB != "04/12/1985" {
		t.Errorf("driver 1 = %+v", got.Drivers[0])
	}
	if got.Drivers[1].Name != "John Smith" {
		t.Errorf("driver 2 = %+v", got.Drivers[1])
	}
}

func TestParseEmptyText(t *testing.T) {
	got := Parse("")
	if got.PolicyInfo.PolicyNumber != "" || len(got.Vehicles) != 0 || len(got.Drivers) != 0 {
		t.Errorf("empty text should yield empty extraction: %+v", got)
	}
}

func TestParseMinimums(t *testing.T) {
	chunks := []string{
		"[MA:g.md#0]\nState minimum liability (BI/PD) limits: $20,000 / $40,000 / $5,000",
	}
	got := ParseMinimums(chunks)
	if got.BIPerPerson != 20000 || got.BIPerAccident != 40000 || got.PD != 5000 {
		t.Errorf("minimums = %+v", got)
	}

	pdOnly := []string{"Part 4 property damage liability limit: $5,000"}
	got = ParseMinimums(pdOnly)
	if got.PD != 5000 || got.BIPerPerson != 0 {
		t.Errorf("pd-only = %+v", got)
	}

	if got := ParseMinimums(nil); got.PD != 0 || got.BIPerPerson != 0 {
		t.Errorf("no chunks = %+v", got)
	}
}

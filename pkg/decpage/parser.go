// Package decpage scrapes structured policy data out of declarations-page
// text with pattern matching. Best-effort: absent fields stay empty.
package decpage

import (
	"regexp"
	"strings"

	"coverquote-be/pkg/store"
)

var (
	policyNumberPattern = regexp.MustCompile(`(?i)Policy\s*#?:?\s*([A-Z0-9\-]+)`)
	policyTermPattern   = regexp.MustCompile(`(?is)Term:?.*?(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}).*?[-–—].*?(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	premiumPattern      = regexp.MustCompile(`(?i)(?:Full\s*Term\s*Premium|Premium):?\s*\$?([\d,]+\.?\d{0,2})`)

	insuredNamePattern = regexp.MustCompile(`(?i)(?:Name|Insured):?\s*([A-Z][A-Za-z\s,.'-]+?)(?:\n|Email|Address)`)
	emailPattern       = regexp.MustCompile(`(?i)Email:?\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[A-Za-z]{2,})`)
	addressPattern     = regexp.MustCompile(`(?is)Address:?[\s\n]*(\d+.*?(?:[A-Z]{2}|Mass|MA)\s*\d{5})`)

	vehicleHeaderPattern = regexp.MustCompile(`(?i)Veh\s*#?\s*\d+.*?:`)
	driverSectionPattern = regexp.MustCompile(`(?i)Drivers?\b`)
	yearMakeModel       = regexp.MustCompile(`(\d{4})[ ,]*([A-Z]+)[ ,]*([A-Za-z0-9\s/\-]+)`)
	vinPattern          = regexp.MustCompile(`([A-HJ-NPR-Z0-9]{17})`)
	vehPremiumPattern   = regexp.MustCompile(`(?i)Vehicle\s*Premium:?:?\s*\$?([\d,]+\.?\d{0,2})`)
	biPattern           = regexp.MustCompile(`(?i)(?:Optional\s*)?bodily\s*injury[:\s]*(\d{1,3})[,\s]*(\d{1,3})`)
	collisionPattern    = regexp.MustCompile(`(?i)Collision[:\s]*(\d+)`)
	comprehensive       = regexp.MustCompile(`(?i)Comprehensive[:\s]*(\d+)`)
	rentalPattern       = regexp.MustCompile(`(?i)(?:Rental|Car\s*Rental|Transportation)[:\s]*\$?(\d+)(?:/day)?(?:\s*for\s*(\d+)\s*days?)?`)
	roadsidePattern     = regexp.MustCompile(`(?i)(?:Roadside|Emergency\s*Road|Towing)[:\s]*(\$?\d+|Yes|No|Included|Declined)`)
	umPattern           = regexp.MustCompile(`(?i)(?:Uninsured|UM)[:\s]*(\d{1,3})[,\s]*(\d{1,3})`)

	driverPattern = regexp.MustCompile(`(?i)Driver\s*#?\s*(\d+)\s*([A-Z][A-Za-z\s]+?)\s*(\d{1,2}/\d{1,2}/\d{4})`)
)

// Parse extracts policy, insured, vehicle and driver data from declarations
// text.
func Parse(text string) *store.Extraction {
	out := &store.Extraction{}

	if m := policyNumberPattern.FindStringSubmatch(text); m != nil {
		out.PolicyInfo.PolicyNumber = m[1]
	}
	if m := policyTermPattern.FindStringSubmatch(text); m != nil {
		out.PolicyInfo.StartDate = m[1]
		out.PolicyInfo.EndDate = m[2]
	}
	if m := premiumPattern.FindStringSubmatch(text); m != nil {
		out.PolicyInfo.FullTermPremium = m[1]
	}

	if m := insuredNamePattern.FindStringSubmatch(text); m != nil {
		out.Insured.Name = strings.TrimSpace(m[1])
	}
	if m := emailPattern.FindStringSubmatch(text); m != nil {
		out.Insured.Email = strings.TrimSpace(m[1])
	}
	if m := addressPattern.FindStringSubmatch(text); m != nil {
		out.Insured.Address = strings.TrimSpace(m[1])
	}

	for _, block := range vehicleBlocks(text) {
		out.Vehicles = append(out.Vehicles, parseVehicle(block))
	}

	for _, m := range driverPattern.FindAllStringSubmatch(text, -1) {
		out.Drivers = append(out.Drivers, store.Driver{
			DriverNumber: m[1],
			Name:         strings.TrimSpace(m[2]),
			DOB:          m[3],
		})
	}

	return out
}

// vehicleBlocks slices the text between vehicle headers, stopping each block
// at the next header or the driver section.
func vehicleBlocks(text string) []string {
	headers := vehicleHeaderPattern.FindAllStringIndex(text, -1)
	var blocks []string
	for i, h := range headers {
		start := h[1]
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		block := text[start:end]
		if loc := driverSectionPattern.FindStringIndex(block); loc != nil {
			block = block[:loc[0]]
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func parseVehicle(block string) store.Vehicle {
	var v store.Vehicle

	if m := yearMakeModel.FindStringSubmatch(block); m != nil {
		v.Year = m[1]
		v.Make = m[2]
		v.Model = strings.TrimSpace(m[3])
	}
	if m := vinPattern.FindStringSubmatch(block); m != nil {
		v.VIN = m[1]
	}
	if m := vehPremiumPattern.FindStringSubmatch(block); m != nil {
		v.VehiclePremium = m[1]
	}
	if m := biPattern.FindStringSubmatch(block); m != nil {
		v.BodilyInjury = m[1] + "/" + m[2]
	}
	if m := collisionPattern.FindStringSubmatch(block); m != nil {
		v.CollisionDeductible = m[1]
	}
	if m := comprehensive.FindStringSubmatch(block); m != nil {
		v.ComprehensiveDeductible = m[1]
	}
	if m := rentalPattern.FindStringSubmatch(block); m != nil {
		days := m[2]
		if days == "" {
			days = "30"
		}
		v.RentalCoverage = "$" + m[1] + "/day for " + days + " days"
	}
	if m := roadsidePattern.FindStringSubmatch(block); m != nil {
		v.RoadsideAssistance = m[1]
	}
	if m := umPattern.FindStringSubmatch(block); m != nil {
		v.UninsuredMotorist = m[1] + "/" + m[2]
	}

	return v
}

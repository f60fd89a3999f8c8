package decpage

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	minimumsPattern = regexp.MustCompile(`(?is)(?:state\s+minimum.*?\(bi\s*/\s*pd\).*?:\s*)\$?\s*([0-9,]+)\s*/\s*\$?\s*([0-9,]+)\s*/\s*\$?\s*([0-9,]+)`)
	pdLimitPattern  = regexp.MustCompile(`(?i)(?:part\s*4.*?property\s*damage).*?(?:limit[:\s]+)\$?\s*([0-9,]+)`)
	nonDigit        = regexp.MustCompile(`[^\d]`)
)

// Minimums holds the BI/PD state minimums parsed out of guideline chunks.
type Minimums struct {
	BIPerPerson   int `json:"bi_per_person,omitempty"`
	BIPerAccident int `json:"bi_per_accident,omitempty"`
	PD            int `json:"pd,omitempty"`
}

// ParseMinimums scans retrieved guideline chunks for state minimum liability
// limits. Diagnostic helper; missing fields stay zero.
func ParseMinimums(chunks []string) Minimums {
	text := strings.Join(chunks, "\n")
	var out Minimums

	if m := minimumsPattern.FindStringSubmatch(text); m != nil {
		out.BIPerPerson = cleanInt(m[1])
		out.BIPerAccident = cleanInt(m[2])
		out.PD = cleanInt(m[3])
	}
	if out.PD == 0 {
		if m := pdLimitPattern.FindStringSubmatch(text); m != nil {
			out.PD = cleanInt(m[1])
		}
	}
	return out
}

func cleanInt(s string) int {
	n, _ := strconv.Atoi(nonDigit.ReplaceAllString(s, ""))
	return n
}

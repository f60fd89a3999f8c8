// Package grounding decides whether the model may supplement retrieved
// guideline text with general pretrained knowledge on a given turn.
package grounding

import (
	"regexp"
	"strings"
)

// Coverage categories the policy recognizes.
const (
	CoveragePropertyDamage = "property_damage"
	CoverageBodilyInjury   = "bodily_injury"
	CoverageUIM            = "uim"
	CoverageUM             = "um"
	CoveragePIP            = "pip"
	CoverageMedPay         = "medpay"
)

var (
	pdAbbrev  = regexp.MustCompile(`\bpd\b`)
	biAbbrev  = regexp.MustCompile(`\bbi\b`)
	umAbbrev  = regexp.MustCompile(`\bum\b`)
	uimAbbrev = regexp.MustCompile(`\buim\b`)
)

// DetectTargetCoverage classifies the message into a coverage category via
// keyword and abbreviation matching. First match in the fixed priority order
// wins; "" means no coverage question was detected.
func DetectTargetCoverage(userText string) string {
	t := strings.ToLower(userText)
	switch {
	case strings.Contains(t, "property damage") || pdAbbrev.MatchString(t):
		return CoveragePropertyDamage
	case strings.Contains(t, "bodily injury") || biAbbrev.MatchString(t):
		return CoverageBodilyInjury
	case strings.Contains(t, "underinsured") || uimAbbrev.MatchString(t):
		return CoverageUIM
	case strings.Contains(t, "uninsured") || umAbbrev.MatchString(t):
		return CoverageUM
	case strings.Contains(t, "pip"):
		return CoveragePIP
	case strings.Contains(t, "medical payments") || strings.Contains(t, "med pay"):
		return CoverageMedPay
	default:
		return ""
	}
}

// Terms we expect the retrieved guidelines to contain when they actually
// answer a question about the given coverage.
var expectedTerms = map[string][]string{
	CoveragePropertyDamage: {"property damage", "part 4", "pd liability"},
	CoverageBodilyInjury:   {"bodily injury", "part 1", "part 5", "bi liability"},
	CoverageUM:             {"uninsured", "um"},
	CoverageUIM:            {"underinsured", "uim"},
	CoveragePIP:            {"pip", "personal injury protection"},
	CoverageMedPay:         {"medical payments", "med pay"},
}

// AllowFallback reports whether pretrained knowledge may be used: only when a
// coverage question was detected, the jurisdiction is known, and none of the
// coverage's expected terms appear in the retrieved chunks.
func AllowFallback(targetCoverage, jurisdiction string, chunks []string) bool {
	if targetCoverage == "" || jurisdiction == "" {
		return false
	}
	joined := strings.ToLower(strings.Join(chunks, "\n"))
	for _, term := range expectedTerms[targetCoverage] {
		if strings.Contains(joined, term) {
			return false
		}
	}
	return true
}

// Package jurisdiction derives the two-letter US jurisdiction code a
// conversation should be scoped to.
package jurisdiction

import (
	"fmt"
	"regexp"
	"strings"

	"coverquote-be/pkg/store"
)

// Recognized holds the 50 state codes plus DC.
var Recognized = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {},
	"FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {},
	"KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {}, "MI": {}, "MN": {}, "MS": {},
	"MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {}, "NM": {}, "NY": {},
	"NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {},
	"WI": {}, "WY": {}, "DC": {},
}

var (
	// code immediately followed by a zip, e.g. "MA 02108" or "TX 75001-1234"
	addrPattern = regexp.MustCompile(`\b([A-Z]{2})\s+\d{5}(?:-\d{4})?\b`)
	// looser variant requiring a comma or whitespace delimiter before the code
	textPattern = regexp.MustCompile(`[,\s]([A-Z]{2})\s+\d{5}(?:-\d{4})?`)
)

// Infer resolves the jurisdiction in priority order: explicit profile field,
// insured address from the last extraction, then the raw extracted text.
// Returns "" when nothing matches.
func Infer(profile store.UserProfile, sess *store.Session) string {
	if code := strings.ToUpper(strings.TrimSpace(profile.Jurisdiction)); code != "" {
		if _, ok := Recognized[code]; ok {
			return code
		}
	}
	if sess == nil {
		return ""
	}
	if sess.Extraction != nil {
		addr := strings.ToUpper(sess.Extraction.Insured.Address)
		if m := addrPattern.FindStringSubmatch(addr); m != nil {
			if _, ok := Recognized[m[1]]; ok {
				return m[1]
			}
		}
	}
	if text := strings.ToUpper(sess.ExtractedText); text != "" {
		if m := textPattern.FindStringSubmatch(text); m != nil {
			if _, ok := Recognized[m[1]]; ok {
				return m[1]
			}
		}
	}
	return ""
}

// InferDebug runs the same resolution and returns a human-readable trace of
// which rule fired. Diagnostic surface only.
func InferDebug(profile store.UserProfile, sess *store.Session) (string, string) {
	var trace []string

	code := strings.ToUpper(strings.TrimSpace(profile.Jurisdiction))
	if _, ok := Recognized[code]; ok && code != "" {
		trace = append(trace, fmt.Sprintf("found in profile: %s", code))
		return code, strings.Join(trace, "; ")
	}
	trace = append(trace, fmt.Sprintf("profile jurisdiction %q not valid", profile.Jurisdiction))

	if sess != nil && sess.Extraction != nil {
		addr := strings.ToUpper(sess.Extraction.Insured.Address)
		if addr != "" {
			trace = append(trace, "address: "+sess.Extraction.Insured.Address)
		}
		if m := addrPattern.FindStringSubmatch(addr); m != nil {
			if _, ok := Recognized[m[1]]; ok {
				trace = append(trace, "found in address: "+m[1])
				return m[1], strings.Join(trace, "; ")
			}
		}
	}

	if sess != nil && sess.ExtractedText != "" {
		if m := textPattern.FindStringSubmatch(strings.ToUpper(sess.ExtractedText)); m != nil {
			if _, ok := Recognized[m[1]]; ok {
				trace = append(trace, "found in extracted text: "+m[1])
				return m[1], strings.Join(trace, "; ")
			}
		}
	}

	trace = append(trace, "no jurisdiction found")
	return "", strings.Join(trace, "; ")
}

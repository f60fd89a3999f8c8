// Package extraction wraps document text extraction. The actual PDF and OCR
// backends are external collaborators; this package owns the fallback
// heuristic and text normalization.
package extraction

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// TextExtractor produces plain text from raw document bytes.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

var (
	spacesPattern   = regexp.MustCompile(`[ \t]+`)
	newlinesPattern = regexp.MustCompile(`\r?\n+`)
	ligatures       = strings.NewReplacer(
		"ﬁ", "fi",
		"ﬂ", "fl",
		"ﬃ", "ffi",
		"ﬄ", "ffl",
	)
)

// Normalize cleans up extractor output: ligatures expanded, runs of spaces
// and newlines collapsed.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	text = ligatures.Replace(text)
	text = spacesPattern.ReplaceAllString(text, " ")
	text = newlinesPattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// NeedsOCR reports whether fast extraction produced text too poor to trust:
// under 100 characters, alphanumeric density below 30%, or more than 30%
// single-character tokens.
func NeedsOCR(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 100 {
		return true
	}

	alnum := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	if float64(alnum)/float64(len(text)) < 0.3 {
		return true
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return true
	}
	single := 0
	for _, w := range words {
		if len(w) == 1 {
			single++
		}
	}
	return float64(single)/float64(len(words)) > 0.3
}

// SmartExtractor tries the fast extractor first and falls back to OCR when
// the heuristic says the output is unusable. A nil OCR extractor disables
// the fallback.
type SmartExtractor struct {
	fast TextExtractor
	ocr  TextExtractor
}

func NewSmartExtractor(fast, ocr TextExtractor) *SmartExtractor {
	return &SmartExtractor{fast: fast, ocr: ocr}
}

func (e *SmartExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	base, err := e.fast.Extract(ctx, data)
	if err == nil && !NeedsOCR(base) {
		return Normalize(base), nil
	}

	if e.ocr == nil {
		if err != nil {
			return "", err
		}
		return Normalize(base), nil
	}

	text, ocrErr := e.ocr.Extract(ctx, data)
	if ocrErr != nil || strings.TrimSpace(text) == "" {
		// OCR unavailable; the fast result is still better than nothing.
		if err != nil {
			return "", err
		}
		return Normalize(base), nil
	}
	return Normalize(text), nil
}

var _ TextExtractor = (*SmartExtractor)(nil)

package content

import (
	"fmt"
	"regexp"
	"strings"

	"cardcopy/internal/models"
)

const variationCount = models.VariationsPerBatch

// numberedItem matches the "1." style markers that separate list entries.
var numberedItem = regexp.MustCompile(`\d+\.\s*`)

// SplitVariations splits a numbered-list response into exactly four
// non-empty variations, padding with FallbackVariation when the model
// returned fewer.
func SplitVariations(raw string, req Request) []string {
	variations := make([]string, 0, variationCount)
	for _, part := range numberedItem.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		variations = append(variations, part)
		if len(variations) == variationCount {
			break
		}
	}

	for len(variations) < variationCount {
		variations = append(variations, FallbackVariation(req))
	}
	return variations
}

// FallbackVariation is the templated filler used when the model returns
// too few entries. The bank clause is dropped when no bank is known.
func FallbackVariation(req Request) string {
	if strings.TrimSpace(req.BankName) == "" {
		return fmt.Sprintf("%s - Great choice for %s!", req.CardName, req.Audience)
	}
	return fmt.Sprintf("%s from %s - Great choice for %s!", req.CardName, req.BankName, req.Audience)
}

package stats

import (
	"regexp"
	"strconv"
	"strings"
)

// costRe anchors on the version token and captures the base-size/ducats
// numeral that precedes the fused stat string.
var costRe = regexp.MustCompile(`(?s)\d+\.\d+\.\d+\s*\n(\d+(?:\s+\d+)?)\s*\n\s*\d{2,6}\s*\n.*?[A-Za-z]`)

// DecodeCost recovers base size and ducats from page text. The numeral comes
// in two shapes: space-split "30 8" (base size, then ducats) or a fused four
// digit "3010" (two digits each). Anything else decodes to zeros.
func DecodeCost(text string) (baseSize, ducats int) {
	m := costRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0
	}
	numeral := strings.TrimSpace(m[1])

	if strings.ContainsRune(numeral, ' ') {
		parts := strings.Fields(numeral)
		if len(parts) != 2 {
			return 0, 0
		}
		baseSize, _ = strconv.Atoi(parts[0])
		ducats, _ = strconv.Atoi(parts[1])
		return baseSize, ducats
	}
	if len(numeral) == 4 {
		baseSize, _ = strconv.Atoi(numeral[:2])
		ducats, _ = strconv.Atoi(numeral[2:])
		return baseSize, ducats
	}
	return 0, 0
}

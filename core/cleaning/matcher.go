package cleaning

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// dimensionRe matches a pure "number [unit] x number [unit]" cell, nothing
// else around it. Units: inch marks, in, mm, cm; decimals allowed.
var dimensionRe = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*(?:"|''|in\.?|mm|cm)?\s*[xX×]\s*(\d+(?:\.\d+)?)\s*(?:"|''|in\.?|mm|cm)?\s*$`)

// labelDimsRe decomposes a canonical size label into its two numbers, e.g.
// 12"x24" or 2x2.
var labelDimsRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)"?\s*[xX]\s*(\d+(?:\.\d+)?)"?$`)

// priceStripRe removes everything except digits and dots from price text.
var priceStripRe = regexp.MustCompile(`[^0-9.]`)

// NormalizeDimension canonicalizes a pure dimension string to quote-inch
// notation (`12"x24"`). Text that is not solely a dimension pair, such as
// "Custom 12x12 Run", is left alone and reported as not normalized.
func NormalizeDimension(raw string) (string, bool) {
	m := dimensionRe.FindStringSubmatch(raw)
	if m == nil {
		return raw, false
	}
	return fmt.Sprintf(`%s"x%s"`, m[1], m[2]), true
}

// LabelDimensionPattern builds the regexp that matches a size label's
// dimension pair loosely inside raw text: word-bounded, flexible spacing,
// case-insensitive. Returns nil when the label does not decompose into a
// numeric A x B pair.
func LabelDimensionPattern(label string) *regexp.Regexp {
	m := labelDimsRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return nil
	}
	expr := `(?i)\b` + regexp.QuoteMeta(m[1]) + `\s*x\s*` + regexp.QuoteMeta(m[2]) + `\b`
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}

// Match runs the extraction rules for one mode against one raw cell value.
// It is pure: same raw text, mode and dictionary always yield the same result.
func Match(raw string, mode Mode, dict *Dictionary) MatchResult {
	switch mode {
	case ModeSize:
		return matchSize(raw, dict)
	case ModeName:
		return matchName(raw, dict)
	case ModePrice:
		return MatchPrice(raw)
	default:
		return MatchResult{Value: strings.TrimSpace(raw), Status: StatusUnknown}
	}
}

// matchSize resolves raw size text against the dictionary. Priority order,
// first hit wins:
//  1. the normalized candidate equals a canonical label (case-insensitive)
//  2. a registered matcher fragment is a substring of the raw, unnormalized text
//  3. the label's own dimension pair occurs word-bounded in the raw text
func matchSize(raw string, dict *Dictionary) MatchResult {
	candidate := strings.TrimSpace(raw)
	if norm, ok := NormalizeDimension(raw); ok {
		candidate = norm
	}

	if candidate != "" {
		if kv := dict.FindSize(candidate); kv != nil {
			return MatchResult{Value: kv.Label, Status: StatusMatched}
		}
	}

	lowerRaw := strings.ToLower(raw)
	for i := range dict.Sizes {
		for _, frag := range dict.Sizes[i].Matchers {
			if frag != "" && strings.Contains(lowerRaw, strings.ToLower(frag)) {
				return MatchResult{Value: dict.Sizes[i].Label, Status: StatusMatched}
			}
		}
	}

	for i := range dict.Sizes {
		if re := LabelDimensionPattern(dict.Sizes[i].Label); re != nil && re.MatchString(raw) {
			return MatchResult{Value: dict.Sizes[i].Label, Status: StatusMatched}
		}
	}

	if candidate == "" {
		return MatchResult{Status: StatusUnknown}
	}
	return MatchResult{Value: candidate, Status: StatusNew}
}

// matchName resolves raw description text against the product alias list.
// Exact alias hits win; otherwise the combined matcher list (aliases plus
// canonical names, longest first) is scanned for a substring hit. Non-empty
// text that matches nothing is still a usable candidate name, so name mode
// never yields UNKNOWN for non-empty input.
func matchName(raw string, dict *Dictionary) MatchResult {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return MatchResult{Status: StatusUnknown}
	}

	if mapped := dict.FindProductAlias(candidate); mapped != "" {
		return MatchResult{Value: mapped, Status: StatusMatched}
	}

	lowerRaw := strings.ToLower(raw)
	for _, m := range dict.NameMatchers() {
		if m.Text != "" && strings.Contains(lowerRaw, strings.ToLower(m.Text)) {
			return MatchResult{Value: m.Mapped, Status: StatusMatched}
		}
	}

	return MatchResult{Value: candidate, Status: StatusNew}
}

// MatchPrice parses price text numerically. A parseable value is normalized
// to exactly two decimals and counts as matched; anything else passes through
// verbatim as UNKNOWN so the operator can hand-correct it. Never fails.
func MatchPrice(raw string) MatchResult {
	stripped := priceStripRe.ReplaceAllString(raw, "")
	if stripped == "" || stripped == "." {
		return MatchResult{Value: raw, Status: StatusUnknown}
	}
	if _, err := strconv.ParseFloat(stripped, 64); err != nil {
		return MatchResult{Value: raw, Status: StatusUnknown}
	}
	rounded, ok := roundPriceText(stripped)
	if !ok {
		return MatchResult{Value: raw, Status: StatusUnknown}
	}
	return MatchResult{Value: rounded, Status: StatusMatched}
}

// roundPriceText rounds a plain decimal string to two places, half away from
// zero, without going through float formatting (12.995 must round to 13.00,
// not to the nearest representable double). Reports false when the integer
// part does not fit the int64 cent arithmetic.
func roundPriceText(s string) (string, bool) {
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	for len(frac) < 3 {
		frac += "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || whole > (math.MaxInt64-100)/100 {
		return "", false
	}
	cents, err := strconv.ParseInt(frac[:2], 10, 64)
	if err != nil {
		return "", false
	}
	total := whole*100 + cents
	if frac[2] >= '5' {
		total++
	}
	return fmt.Sprintf("%d.%02d", total/100, total%100), true
}

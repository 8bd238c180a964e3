// Package cssnumber implements the number sub-engine spec.md §4.6
// describes as an external collaborator: Optimise is total, and
// rewrites a numeric token by stripping leading zeros on fractional
// numbers, trailing zeros in fractions, dropping units from a zero
// value when the property permits it, and preserving signs.
package cssnumber

import "strings"

// zeroUnitUnsafeProperties lists properties for which a bare "0" must
// keep its unit even though the value is zero, because the unit
// changes the property's meaning (e.g. a zero angle vs a zero length)
// or because dropping the unit would change the CSS type of the value
// (percentages and angles are not freely interchangeable with
// unitless numbers for every property). Properties not in this set
// may have their zero-value unit dropped.
var zeroUnitUnsafeProperties = map[string]bool{
	"flex":          true,
	"flex-grow":     true,
	"flex-shrink":   true,
	"line-height":   true,
	"z-index":       true,
	"opacity":       true,
	"font-weight":   true,
	"transition":    true,
	"animation":     true,
	"transform":     true,
}

// Optimise rewrites a single numeric token for property (empty string
// when the caller has no specific property in mind, e.g. inside a
// transform function argument list). Non-numeric tokens are returned
// unchanged.
func Optimise(property, token string) string {
	if token == "" {
		return token
	}

	sign, rest := splitSign(token)
	numEnd := numericPrefixLen(rest)
	if numEnd == 0 {
		return token
	}
	numText := rest[:numEnd]
	unit := rest[numEnd:]

	normalised := normaliseNumber(numText)

	if normalised == "0" && unit != "" && !zeroUnitUnsafeProperties[property] && isDroppableUnit(unit) {
		return "0"
	}

	return sign + normalised + unit
}

func splitSign(token string) (sign, rest string) {
	if strings.HasPrefix(token, "-") || strings.HasPrefix(token, "+") {
		return token[:1], token[1:]
	}
	return "", token
}

func numericPrefixLen(s string) int {
	i := 0
	sawDigitOrDot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			sawDigitOrDot = true
			i++
			continue
		}
		if c == '.' {
			sawDigitOrDot = true
			i++
			continue
		}
		break
	}
	if !sawDigitOrDot {
		return 0
	}
	return i
}

// isDroppableUnit reports whether a zero value's unit is safe to drop.
// Percentages and length/time/frequency units are droppable; anything
// else (e.g. an unrecognised identifier glued to the number) is left
// alone out of caution.
func isDroppableUnit(unit string) bool {
	switch strings.ToLower(unit) {
	case "%", "px", "em", "rem", "pt", "pc", "in", "cm", "mm", "q",
		"ex", "ch", "vw", "vh", "vmin", "vmax",
		"s", "ms", "deg", "grad", "rad", "turn", "hz", "khz":
		return true
	default:
		return false
	}
}

// normaliseNumber strips a leading zero before the decimal point
// ("0.5" => ".5"), trailing zeros in the fraction ("1.50" => "1.5",
// "1.0" => "1"), and a now-empty fraction's dot ("1." => "1").
func normaliseNumber(num string) string {
	intPart, fracPart, hasFrac := strings.Cut(num, ".")

	if hasFrac {
		fracPart = strings.TrimRight(fracPart, "0")
	}

	// Strip leading zeros from the integer part, keeping at least one
	// digit if there is no fractional part to lean on.
	trimmedInt := strings.TrimLeft(intPart, "0")

	switch {
	case hasFrac && fracPart != "":
		if trimmedInt == "" {
			return "." + fracPart
		}
		return trimmedInt + "." + fracPart
	default:
		if trimmedInt == "" {
			return "0"
		}
		return trimmedInt
	}
}

// Package csscolor implements the colour sub-engine spec.md §4.6
// describes as an external collaborator of the optimiser core:
// Optimise is total, leaves non-colour tokens unchanged, and rewrites
// colours to an equal-or-shorter canonical form.
//
// The hex-compaction table and logic are grounded on
// evanw-esbuild/internal/css_parser/css_decls.go's shortColorName map
// and mangleColor: the same 3/4/6/8-digit hex cases, the same set of
// names that are shorter than their hex code.
package csscolor

import (
	"fmt"
	"strings"
)

// shortColorName maps a 24-bit RGB value to the named colour when the
// name is shorter than (or equal length and preferred for readability
// to) the corresponding hex code.
var shortColorName = map[int]string{
	0x000080: "navy",
	0x008000: "green",
	0x008080: "teal",
	0x4b0082: "indigo",
	0x800000: "maroon",
	0x800080: "purple",
	0x808000: "olive",
	0x808080: "gray",
	0xa0522d: "sienna",
	0xa52a2a: "brown",
	0xc0c0c0: "silver",
	0xcd853f: "peru",
	0xd2b48c: "tan",
	0xda70d6: "orchid",
	0xdda0dd: "plum",
	0xee82ee: "violet",
	0xf0e68c: "khaki",
	0xf0ffff: "azure",
	0xf5deb3: "wheat",
	0xf5f5dc: "beige",
	0xfa8072: "salmon",
	0xfaf0e6: "linen",
	0xff0000: "red",
	0xff6347: "tomato",
	0xff7f50: "coral",
	0xffa500: "orange",
	0xffc0cb: "pink",
	0xffd700: "gold",
	0xffe4c4: "bisque",
	0xfffafa: "snow",
	0xfffff0: "ivory",
	0xffffff: "white",
	0x000000: "black",
}

var namedColorHex = func() map[string]int {
	m := make(map[string]int, len(shortColorName))
	for hex, name := range shortColorName {
		m[name] = hex
	}
	return m
}()

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func hex3(r, g, b int) int { return (r << 20) | (r << 16) | (g << 12) | (g << 8) | (b << 4) | b }
func hex6(r1, r2, g1, g2, b1, b2 int) int {
	return (r1 << 20) | (r2 << 16) | (g1 << 12) | (g2 << 8) | (b1 << 4) | b2
}

// Optimise rewrites token to its shortest canonical colour form if
// token is a colour; non-colour tokens are returned unchanged
// (including their original case, per spec.md §4.6).
func Optimise(token string) string {
	if token == "" {
		return token
	}

	if token[0] == '#' {
		return optimiseHex(token)
	}
	lower := strings.ToLower(token)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(token, ")") {
		if hex, ok := parseRGBFunction(token); ok {
			return optimiseHex(hex)
		}
		return token
	}
	if hex, ok := namedColorHex[lower]; ok {
		return shortestForm(hex, token)
	}
	return token
}

func optimiseHex(token string) string {
	hex := token[1:]
	switch len(hex) {
	case 3:
		r, rOK := hexDigit(hex[0])
		g, gOK := hexDigit(hex[1])
		b, bOK := hexDigit(hex[2])
		if !rOK || !gOK || !bOK {
			return token
		}
		return shortestForm(hex3(r, g, b), token)
	case 6:
		r1, ok1 := hexDigit(hex[0])
		r2, ok2 := hexDigit(hex[1])
		g1, ok3 := hexDigit(hex[2])
		g2, ok4 := hexDigit(hex[3])
		b1, ok5 := hexDigit(hex[4])
		b2, ok6 := hexDigit(hex[5])
		if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
			return token
		}
		return shortestForm(hex6(r1, r2, g1, g2, b1, b2), token)
	default:
		// 4- and 8-digit (alpha) hex, and anything else: pass through.
		// Alpha-carrying colours must not silently lose their alpha
		// channel, so they are left verbatim.
		return token
	}
}

// shortestForm picks the shortest of the 3-digit hex, 6-digit hex, and
// named-colour spellings of the given 24-bit RGB value. original is
// kept unless a form is strictly shorter; among equally short
// rewritten forms, 3-digit hex wins, then 6-digit hex, then the name.
func shortestForm(rgb int, original string) string {
	r := (rgb >> 16) & 0xff
	g := (rgb >> 8) & 0xff
	b := rgb & 0xff

	candidates := []string{original}

	canBe3Digit := (r>>4) == (r&0xf) && (g>>4) == (g&0xf) && (b>>4) == (b&0xf)
	if canBe3Digit {
		candidates = append(candidates, fmt.Sprintf("#%x%x%x", r&0xf, g&0xf, b&0xf))
	}
	candidates = append(candidates, fmt.Sprintf("#%02x%02x%02x", r, g, b))
	if name, ok := shortColorName[rgb]; ok {
		candidates = append(candidates, name)
	}

	best := original
	for _, c := range candidates {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

// parseRGBFunction parses "rgb(r, g, b)" into a "#rrggbb" hex string.
func parseRGBFunction(token string) (string, bool) {
	inner := token[strings.IndexByte(token, '(')+1 : len(token)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return "", false
	}
	var vals [3]int
	for i, p := range parts {
		p = strings.TrimSpace(p)
		var n int
		if _, err := fmt.Sscanf(p, "%d", &n); err != nil {
			return "", false
		}
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		vals[i] = n
	}
	return fmt.Sprintf("#%02x%02x%02x", vals[0], vals[1], vals[2]), true
}

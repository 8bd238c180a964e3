package cssoptimizer

import "strings"

var calcHeads = []string{"calc(", "min(", "max("}

// rewriteCalc implements spec.md §4.5's "Calc / min / max" rule: if v
// begins with "calc(", "min(", or "max(" and closes with ")", split
// the interior on top-level commas, remove all spaces from each part,
// rejoin with commas, and re-wrap with the original head. Anything
// else passes through unchanged.
func rewriteCalc(v string) string {
	trimmed := strings.TrimSpace(v)
	if !strings.HasSuffix(trimmed, ")") {
		return v
	}

	var head string
	for _, h := range calcHeads {
		if len(trimmed) >= len(h) && strings.EqualFold(trimmed[:len(h)], h) {
			head = trimmed[:len(h)]
			break
		}
	}
	if head == "" {
		return v
	}

	interior := trimmed[len(head) : len(trimmed)-1]
	parts := Split(',', interior)
	for i, p := range parts {
		parts[i] = removeAllSpaces(p)
	}
	return head + strings.Join(parts, ",") + ")"
}

func removeAllSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' && s[i] != '\n' && s[i] != '\r' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

package cssoptimizer

import "strings"

// rewriteGradientColors implements spec.md §4.5's "Gradients" rule. v
// may itself be a comma-separated list of background-image layers
// (e.g. "url(a.png), linear-gradient(...)"); each layer is examined
// independently, and only layers whose head names one of the
// supported gradient functions are rewritten.
func (o *Optimizer) rewriteGradientColors(v string) string {
	layers := Split(',', v)
	if len(layers) == 0 {
		return v
	}
	for i, layer := range layers {
		layers[i] = o.rewriteGradientLayer(layer)
	}
	return strings.Join(layers, ",")
}

func (o *Optimizer) rewriteGradientLayer(layer string) string {
	trimmed := strings.TrimSpace(layer)
	open := strings.IndexByte(trimmed, '(')
	if open < 0 || !strings.HasSuffix(trimmed, ")") {
		return layer
	}

	name := trimmed[:open]
	bareName := strings.ToLower(stripVendorPrefix(strings.ToLower(name)))
	head, ok := gradientHeads[bareName]
	if !ok {
		return layer
	}

	interior := trimmed[open+1 : len(trimmed)-1]
	segments := Split(',', interior)
	for i := head.skip; i < len(segments); i++ {
		segments[i] = o.rewriteColorInSegment(segments[i])
	}

	// Preserve the original (possibly vendor-prefixed) head text.
	return name + "(" + strings.Join(segments, ",") + ")"
}

// rewriteColorInSegment rewrites the leading token of a gradient colour
// stop via the colour sub-engine and rejoins the rest unchanged.
func (o *Optimizer) rewriteColorInSegment(seg string) string {
	tokens := SplitWhitespace(seg)
	if len(tokens) == 0 {
		return seg
	}
	tokens[0] = o.Color(tokens[0])
	return strings.Join(tokens, " ")
}

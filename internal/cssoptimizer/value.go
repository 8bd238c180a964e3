package cssoptimizer

import "strings"

// value implements spec.md §4.3's value(property, v) dispatch. v is
// already in canonical form (the "!important" marker has been
// stripped and tracked separately on cssast.Declaration — see its doc
// comment — so value never has to re-derive or re-attach it; that
// normalisation happens for free whenever a Declaration is rendered
// via Declaration.Text()).
func (o *Optimizer) value(property, v string) string {
	bare := stripVendorPrefix(property)

	if _, ok := fourValueShorthandByName(property); ok && property != "border-radius" {
		return compressFourValueString(v)
	}
	if property == "border-radius" {
		return mangleBorderRadius(v)
	}
	if (property == "background-image" || property == "background") && o.CompressColors {
		return o.rewriteGradientColors(v)
	}
	if bare == "transform" {
		return o.mangleTransform(v)
	}
	return v
}

// subValue implements spec.md §4.3's subValue(property, sv) pass: a
// single comma-separated sub-value already split upstream by the
// caller (see (*Optimizer).applySubValues).
func (o *Optimizer) subValue(property, sv string) string {
	if o.CompressFontWeight && property == "font-weight" {
		switch strings.ToLower(strings.TrimSpace(sv)) {
		case "bold":
			o.logRewrite("font-weight", property, sv, "700")
			sv = "700"
		case "normal":
			o.logRewrite("font-weight", property, sv, "400")
			sv = "400"
		}
	}

	sv = o.Number(property, sv)

	if o.CompressColors {
		sv = o.Color(sv)
	}

	sv = rewriteCalc(sv)

	return sv
}

// applySubValues splits v on top-level commas, applies subValue to
// each segment, and rejoins with commas — the generic per-value
// normalisation every declaration receives ahead of value()'s
// property-specific structural rewrites.
func (o *Optimizer) applySubValues(property, v string) string {
	segments := Split(',', v)
	if len(segments) == 0 {
		return v
	}
	for i, seg := range segments {
		segments[i] = o.subValue(property, seg)
	}
	return strings.Join(segments, ",")
}

// rewriteDeclaration applies the full per-declaration pass spec.md §2
// step 2 describes: generic sub-value normalisation first (so that
// later structural comparisons, e.g. four-value compaction, see
// already-canonicalised tokens), then the property-specific value()
// dispatch.
func (o *Optimizer) rewriteDeclaration(property, v string) string {
	v = o.applySubValues(property, v)
	return o.value(property, v)
}

// stripVendorPrefix removes a leading "-<vendor>-" segment, e.g.
// "-webkit-transform" => "transform" (spec.md glossary: "Vendor
// prefix").
func stripVendorPrefix(name string) string {
	if len(name) < 2 || name[0] != '-' {
		return name
	}
	rest := name[1:]
	idx := strings.IndexByte(rest, '-')
	if idx < 0 {
		return name
	}
	return rest[idx+1:]
}

// compressFourValueString applies the four-value compression rule
// (spec.md §4.2's compaction table) directly to a whitespace-separated
// value string, without dissolving it into separate longhands — this
// is the "value engine" use of the same compaction logic the merger
// uses on four already-dissolved longhands.
func compressFourValueString(v string) string {
	parts := SplitWhitespace(v)
	if len(parts) != 4 {
		return v
	}
	return compressFour(parts[0], parts[1], parts[2], parts[3])
}

// compressFour implements the compaction table from spec.md §4.2.
func compressFour(top, right, bottom, left string) string {
	switch {
	case top == right && right == bottom && bottom == left:
		return top
	case top == bottom && left == right:
		return top + " " + right
	case left == right:
		return top + " " + right + " " + bottom
	default:
		return top + " " + right + " " + bottom + " " + left
	}
}

// mangleBorderRadius implements spec.md §4.3's border-radius rule:
// split on "/" (at most two parts; more and the value is left
// unchanged), compress each half independently as a four-value group,
// rejoin with " / ".
func mangleBorderRadius(v string) string {
	halves := Split('/', v)
	if len(halves) > 2 {
		return v
	}
	for i, half := range halves {
		halves[i] = compressFourValueString(strings.TrimSpace(half))
	}
	return strings.Join(halves, " / ")
}

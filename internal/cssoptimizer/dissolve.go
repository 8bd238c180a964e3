package cssoptimizer

import (
	"strconv"
	"strings"

	"github.com/rafleo/CSSTidy/internal/cssast"
)

// dissolveShorthands expands registered shorthand declarations present
// in block into their longhand equivalents (spec.md §4.1), gated by
// o.Level. It is step 1 of the pipeline in spec.md §2.
func (o *Optimizer) dissolveShorthands(block *cssast.Block) {
	if !o.Level.AtLeast(levelCommon) {
		return
	}

	// Snapshot names first: dissolution mutates the block's property
	// set (spec.md §9 "delete-then-append"), and Block.Each forbids
	// mutating while iterating.
	for _, name := range block.Names() {
		decl, ok := block.Get(name)
		if !ok {
			continue // already consumed by an earlier dissolution in this pass
		}

		if shorthand, isFour := fourValueShorthandByName(name); isFour && name != "border-radius" {
			o.dissolveFourValue(block, shorthand, decl)
			continue
		}

		if name == "font" && o.Level.AtLeast(levelFont) {
			o.dissolveFont(block, decl)
			continue
		}

		if name == "background" && o.Level.AtLeast(levelBackground) {
			o.dissolveBackground(block, decl)
			continue
		}
	}
}

// dissolveFourValue implements spec.md §4.1's "Four-value expansion
// rule".
func (o *Optimizer) dissolveFourValue(block *cssast.Block, shorthand fourValueShorthand, decl cssast.Declaration) {
	parts := SplitWhitespace(decl.Value)
	var v [4]string
	switch len(parts) {
	case 1:
		v = [4]string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		v = [4]string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		v = [4]string{parts[0], parts[1], parts[2], parts[1]}
	case 4:
		v = [4]string{parts[0], parts[1], parts[2], parts[3]}
	default:
		// Tolerant fallback (spec.md §4.1): treat as if a single value
		// were given, rather than flagging an error.
		if len(parts) == 0 {
			return
		}
		v = [4]string{parts[0], parts[0], parts[0], parts[0]}
	}

	block.Delete(shorthand.name)
	for i, longhand := range shorthand.longhands {
		block.Set(longhand, cssast.Declaration{Value: v[i], Important: decl.Important})
	}
	o.logRewrite("dissolve-four-value", shorthand.name, decl.Text(), "")
}

// dissolveFont implements spec.md §4.1's "font dissolution" rule.
func (o *Optimizer) dissolveFont(block *cssast.Block, decl cssast.Declaration) {
	segments := Split(',', decl.Value)
	if len(segments) == 0 {
		return
	}

	longhands := map[string]string{}
	firstSegmentTokens := SplitWhitespace(segments[0])

	var familyWords []string
	sizeAssigned := false

	assignOnce := func(key, value string) {
		if _, ok := longhands[key]; !ok {
			longhands[key] = value
		}
	}

	for _, tok := range firstSegmentTokens {
		lower := strings.ToLower(tok)
		switch {
		case isFontWeightToken(lower):
			assignOnce("font-weight", tok)
		case fontVariantKeywords[lower]:
			assignOnce("font-variant", tok)
		case fontStyleKeywords[lower]:
			assignOnce("font-style", tok)
		case len(tok) > 0 && (isDigit(tok[0]) || tok[0] == '.'):
			sizeAssigned = true
			if before, after, found := strings.Cut(tok, "/"); found {
				assignOnce("font-size", before)
				assignOnce("line-height", after)
			} else {
				assignOnce("font-size", tok)
			}
		default:
			familyWords = append(familyWords, tok)
		}
	}

	// Ambiguity fix (spec.md §4.1): a numeric font-weight with no size
	// identified is really the size.
	if !sizeAssigned {
		if w, ok := longhands["font-weight"]; ok {
			if _, err := strconv.ParseFloat(w, 64); err == nil {
				longhands["font-size"] = w
				delete(longhands, "font-weight")
			}
		}
	}

	family := strings.Join(familyWords, " ")
	if len(familyWords) > 1 {
		family = `"` + family + `"`
	}
	for _, seg := range segments[1:] {
		family += "," + seg
	}
	if family != "" {
		longhands["font-family"] = family
	}

	block.Delete("font")
	for _, fl := range fontLonghands {
		value := longhands[fl.name]
		if value == "" {
			value = fl.deflt
		}
		block.Set(fl.name, cssast.Declaration{Value: value, Important: decl.Important})
	}
	o.logRewrite("dissolve-font", "font", decl.Text(), "")
}

func isFontWeightToken(lower string) bool {
	return fontWeightKeywords[lower]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// dissolveBackground implements spec.md §4.1's "background
// dissolution" rule.
func (o *Optimizer) dissolveBackground(block *cssast.Block, decl cssast.Declaration) {
	if strings.Contains(strings.ToLower(decl.Value), "gradient(") {
		// Refuse to dissolve (spec.md §4.1, case-insensitive per
		// DESIGN.md O5); leave the shorthand verbatim.
		return
	}

	layers := Split(',', decl.Value)
	accum := map[string][]string{}

	for _, layer := range layers {
		tokens := SplitWhitespace(layer)

		// found holds this layer's classified longhand values only;
		// anything left unset falls back to that longhand's registered
		// default below, so every longhand ends up with exactly one
		// entry per layer and mergeBackground's per-index segAt lookup
		// (merge.go) stays aligned to the source layer.
		found := map[string]string{}
		imageSet, clipSet := false, false
		var positionTokens []string

		for _, tok := range tokens {
			lower := strings.ToLower(tok)
			switch {
			case !imageSet && (strings.HasPrefix(lower, "url(") || lower == "none"):
				found["background-image"] = tok
				imageSet = true
			case backgroundRepeatKeywords[lower]:
				found["background-repeat"] = tok
			case backgroundAttachmentKeywords[lower]:
				found["background-attachment"] = tok
			case lower == "border" || lower == "padding":
				if !clipSet {
					found["background-clip"] = tok
					clipSet = true
				} else {
					found["background-origin"] = tok
				}
			case lower == "content":
				found["background-origin"] = tok
			case strings.HasPrefix(tok, "("):
				found["background-size"] = strings.Trim(tok, "()")
			case backgroundPositionKeywords[lower] || isPositionLikeToken(tok):
				positionTokens = append(positionTokens, tok)
			default:
				if _, ok := found["background-color"]; !ok {
					found["background-color"] = tok
				}
			}
		}

		if len(positionTokens) > 0 {
			found["background-position"] = strings.Join(positionTokens, " ")
		}

		for _, bl := range backgroundLonghands {
			value, ok := found[bl.name]
			if !ok {
				value = bl.deflt
			}
			accum[bl.name] = append(accum[bl.name], value)
		}
	}

	block.Delete("background")
	for _, bl := range backgroundLonghands {
		block.Set(bl.name, cssast.Declaration{Value: strings.Join(accum[bl.name], ","), Important: decl.Important})
	}
	o.logRewrite("dissolve-background", "background", decl.Text(), "")
}

// isPositionLikeToken reports whether tok looks like a position
// component: a number (optionally signed/fractional) or percentage,
// or the empty placeholder.
func isPositionLikeToken(tok string) bool {
	if tok == "" {
		return true
	}
	c := tok[0]
	return isDigit(c) || c == '.' || c == '-'
}

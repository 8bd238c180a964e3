package cssoptimizer

import (
	"strings"

	"github.com/rafleo/CSSTidy/internal/cssast"
)

// mergeFourValueShorthands implements spec.md §4.2's "Four-value merge"
// for every registered four-value shorthand present in full in block.
func (o *Optimizer) mergeFourValueShorthands(block *cssast.Block) {
	for _, shorthand := range fourValueShorthands {
		o.mergeFourValue(block, shorthand)
	}
}

func (o *Optimizer) mergeFourValue(block *cssast.Block, shorthand fourValueShorthand) {
	var decls [4]cssast.Declaration
	for i, name := range shorthand.longhands {
		decl, ok := block.Get(name)
		if !ok {
			return
		}
		decls[i] = decl
	}

	// spec.md §9 / DESIGN.md O1: the reference merger treats the group
	// as important if *any* member is important, rather than requiring
	// agreement; spec.md names this the behaviour to match.
	important := decls[0].Important || decls[1].Important || decls[2].Important || decls[3].Important

	merged := compressFour(decls[0].Value, decls[1].Value, decls[2].Value, decls[3].Value)

	for _, name := range shorthand.longhands {
		block.Delete(name)
	}
	block.Set(shorthand.name, cssast.Declaration{Value: merged, Important: important})
	o.logRewrite("merge-four-value", shorthand.name, "", merged)
}

// mergeTwoValueShorthand implements spec.md §4.2's "Two-value paired
// merge" for every registered pair present in block with agreeing
// importance.
func (o *Optimizer) mergeTwoValueShorthand(block *cssast.Block) {
	for _, pair := range twoValuePairs {
		first, ok1 := block.Get(pair.longhands[0])
		second, ok2 := block.Get(pair.longhands[1])
		if !ok1 || !ok2 || first.Important != second.Important {
			continue
		}

		merged := first.Value
		if first.Value != second.Value {
			merged = first.Value + " " + second.Value
		}

		block.Delete(pair.longhands[0])
		block.Delete(pair.longhands[1])
		block.Set(pair.name, cssast.Declaration{Value: merged, Important: first.Important})
		o.logRewrite("merge-two-value", pair.name, "", merged)
	}
}

// mergeFont implements spec.md §4.2's "font merge": only attempted
// when font-size is set, walking the font defaults table in order and
// skipping default-equal longhands.
func (o *Optimizer) mergeFont(block *cssast.Block) {
	sizeDecl, ok := block.Get("font-size")
	if !ok {
		return
	}

	variantDecl, hasVariant := block.Get("font-variant")
	preserveVariant := hasVariant && !strings.EqualFold(strings.TrimSpace(variantDecl.Value), "small-caps") && variantDecl.Value != fontDefault1("font-variant")

	var parts []string
	important := false
	haveAny := false

	for _, fl := range fontLonghands {
		if fl.name == "font-variant" && preserveVariant {
			continue
		}
		decl, ok := block.Get(fl.name)
		if !ok || decl.Value == fl.deflt {
			continue
		}
		haveAny = true
		important = important || decl.Important

		if fl.name == "line-height" {
			if len(parts) > 0 && strings.HasSuffix(parts[len(parts)-1], "/") {
				parts[len(parts)-1] += decl.Value
			} else {
				parts = append(parts, "/"+decl.Value)
			}
			continue
		}
		if fl.name == "font-size" {
			lineHeight, hasLH := block.Get("line-height")
			if hasLH && lineHeight.Value != "" {
				parts = append(parts, decl.Value+"/")
				continue
			}
		}
		parts = append(parts, decl.Value)
	}

	if !haveAny {
		return
	}

	assembled := strings.TrimSpace(strings.Join(parts, " "))
	if assembled == "" {
		return
	}

	for _, fl := range fontLonghands {
		if fl.name == "font-variant" && preserveVariant {
			continue
		}
		block.Delete(fl.name)
	}
	important = important || sizeDecl.Important
	block.Set("font", cssast.Declaration{Value: assembled, Important: important})
	o.logRewrite("merge-font", "font", "", assembled)
}

func fontDefault1(name string) string {
	v, _ := fontDefault(name)
	return v
}

// mergeBackground implements spec.md §4.2's "background merge". Aborts
// if a background shorthand is already set and non-empty, or if any
// contributing longhand value contains "gradient(" at any layer.
func (o *Optimizer) mergeBackground(block *cssast.Block) {
	if existing, ok := block.Get("background"); ok && existing.Value != "" {
		return
	}

	present := map[string]cssast.Declaration{}
	for _, bl := range backgroundLonghands {
		if decl, ok := block.Get(bl.name); ok {
			present[bl.name] = decl
		}
	}
	if len(present) == 0 {
		return
	}

	layerCounts := map[string][]string{}
	for _, bl := range backgroundLonghands {
		decl, ok := present[bl.name]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(decl.Value), "gradient(") {
			// spec.md §4.2: abort the whole merge, leave longhands intact.
			return
		}
		layerCounts[bl.name] = Split(',', decl.Value)
	}

	// spec.md §4.2: N is driven only by background-image/background-color
	// layer counts, not by every longhand's segment count.
	n := 1
	if segs := layerCounts["background-image"]; len(segs) > n {
		n = len(segs)
	}
	if segs := layerCounts["background-color"]; len(segs) > n {
		n = len(segs)
	}

	important := false
	for _, decl := range present {
		important = important || decl.Important
	}

	var layers []string
	for i := 0; i < n; i++ {
		imageAbsent := true
		if segs, ok := layerCounts["background-image"]; ok {
			seg := segAt(segs, i)
			imageAbsent = seg == "" || strings.EqualFold(strings.TrimSpace(seg), "none")
		}

		var tokens []string
		for _, bl := range backgroundLonghands {
			decl, ok := present[bl.name]
			if !ok {
				continue
			}
			if imageAbsent && (bl.name == "background-size" || bl.name == "background-position" ||
				bl.name == "background-attachment" || bl.name == "background-repeat") {
				continue
			}
			seg := segAt(layerCounts[bl.name], i)
			if seg == "" || seg == bl.deflt {
				continue
			}
			if bl.name == "background-size" {
				seg = "(" + seg + ")"
			}
			_ = decl
			tokens = append(tokens, seg)
		}
		layer := strings.TrimSpace(strings.Join(tokens, " "))
		layers = append(layers, layer)
	}

	assembled := strings.Join(layers, ",")
	assembled = strings.Trim(assembled, ",")

	if assembled == "" {
		if _, ok := block.Get("background"); ok {
			block.Set("background", cssast.Declaration{Value: "none", Important: important})
			o.logRewrite("merge-background", "background", "", "none")
		}
		return
	}

	for _, bl := range backgroundLonghands {
		block.Delete(bl.name)
	}
	block.Set("background", cssast.Declaration{Value: assembled, Important: important})
	o.logRewrite("merge-background", "background", "", assembled)
}

// segAt returns the i'th comma-segment of segs, or "" if out of range.
func segAt(segs []string, i int) string {
	if i < 0 || i >= len(segs) {
		return ""
	}
	return strings.TrimSpace(segs[i])
}

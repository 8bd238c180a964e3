package cssoptimizer

import (
	"strings"

	"github.com/rafleo/CSSTidy/internal/cssnumber"
)

// transformFunc is one "name(args)" function parsed out of a transform
// value, in original source order. spec.md §9 flags keying parsed
// transform functions by name in a plain map as lossy for duplicates
// ("two translate(...) entries merge into one"); DESIGN.md's Open
// Question O4 resolves this as a defect to correct, so this type is an
// ordered slice entry rather than a map value — duplicates and
// unrecognised functions keep their original position unless they are
// actually consumed by a merge.
type transformFunc struct {
	name    string
	args    []string
	removed bool
}

// mangleTransform implements spec.md §4.5's "Transform" rule: split the
// value into a sequence of functions, normalise recognised functions'
// numeric arguments, then fold X/Y/Z axis variants back into their
// combined 3D and 2D forms.
func (o *Optimizer) mangleTransform(v string) string {
	tokens := SplitWhitespace(v)
	if len(tokens) == 0 {
		return v
	}

	funcs := make([]transformFunc, 0, len(tokens))
	for _, tok := range tokens {
		open := strings.IndexByte(tok, '(')
		if open < 0 || !strings.HasSuffix(tok, ")") {
			// Not a function call at all; pass through verbatim as its
			// own entry so position is preserved.
			funcs = append(funcs, transformFunc{name: tok})
			continue
		}
		name := tok[:open]
		interior := tok[open+1 : len(tok)-1]
		var args []string
		for _, a := range Split(',', interior) {
			args = append(args, cssnumber.Optimise("", strings.TrimSpace(a)))
		}
		if !isRecognisedTransformName(name) {
			// Unrecognised functions pass through unchanged (spec.md
			// §4.5) and are not candidates for axis merging.
			funcs = append(funcs, transformFunc{name: tok})
			continue
		}
		funcs = append(funcs, transformFunc{name: name, args: args})
	}

	mergeTransform3D(funcs, "scale")
	mergeTransform3D(funcs, "translate")
	mergeTransform2D(funcs, "skew")
	mergeTransform2D(funcs, "scale")
	mergeTransform2D(funcs, "translate")
	mergeTransform2D(funcs, "rotate")

	var out []string
	for _, f := range funcs {
		if f.removed {
			continue
		}
		out = append(out, f.render())
	}
	return strings.TrimRight(strings.Join(out, " "), " ")
}

func (f transformFunc) render() string {
	if f.args == nil {
		return f.name
	}
	return f.name + "(" + strings.Join(f.args, ",") + ")"
}

// transformAxis reports the family ("scale", "translate", "rotate",
// "skew") and axis ("", "X", "Y", "Z") of a recognised function name,
// after stripping any vendor prefix. A plain, un-suffixed name (e.g.
// "translate", "matrix") has axis "".
func transformAxis(name string) (family, axis string, is3d bool) {
	lower := strings.ToLower(stripVendorPrefix(name))
	for _, fam := range []string{"matrix", "translate", "scale", "rotate"} {
		switch {
		case lower == fam:
			return fam, "", false
		case lower == fam+"3d":
			return fam, "", true
		case lower == fam+"x":
			return fam, "X", false
		case lower == fam+"y":
			return fam, "Y", false
		case lower == fam+"z":
			return fam, "Z", false
		}
	}
	switch lower {
	case "skew":
		return "skew", "", false
	case "skewx":
		return "skew", "X", false
	case "skewy":
		return "skew", "Y", false
	case "perspective":
		return "perspective", "", false
	}
	return "", "", false
}

func isRecognisedTransformName(name string) bool {
	family, _, _ := transformAxis(name)
	return family != ""
}

// mergeTransform3D implements the "3D merge" pass of spec.md §4.5: for
// family in {scale, translate}, if X, Y and Z axis functions are all
// present, combine their first argument into a single
// "<family>3d(x,y,z)" at the position of the earliest of the three and
// remove the three originals.
func mergeTransform3D(funcs []transformFunc, family string) {
	xi, yi, zi := findAxis(funcs, family, "X"), findAxis(funcs, family, "Y"), findAxis(funcs, family, "Z")
	if xi < 0 || yi < 0 || zi < 0 {
		return
	}
	first := minIndex(xi, yi, zi)
	funcs[first].name = family + "3d"
	funcs[first].args = []string{arg0(funcs[xi]), arg0(funcs[yi]), arg0(funcs[zi])}
	for _, i := range []int{xi, yi, zi} {
		if i != first {
			funcs[i].removed = true
		}
	}
}

// mergeTransform2D implements the "2D merge" pass of spec.md §4.5: for
// family in {skew, scale, translate, rotate}, if X and Y axis functions
// are both present (and not already consumed by a 3D merge), combine
// them into "<family>(x,y)" at the earliest position and remove both
// originals.
func mergeTransform2D(funcs []transformFunc, family string) {
	xi, yi := findAxis(funcs, family, "X"), findAxis(funcs, family, "Y")
	if xi < 0 || yi < 0 {
		return
	}
	first := xi
	if yi < first {
		first = yi
	}
	funcs[first].name = family
	funcs[first].args = []string{arg0(funcs[xi]), arg0(funcs[yi])}
	for _, i := range []int{xi, yi} {
		if i != first {
			funcs[i].removed = true
		}
	}
}

// findAxis returns the index of the first not-yet-removed function in
// funcs whose family/axis match, or -1 if none.
func findAxis(funcs []transformFunc, family, axis string) int {
	for i, f := range funcs {
		if f.removed || f.args == nil {
			continue
		}
		fam, ax, is3d := transformAxis(f.name)
		if fam == family && ax == axis && !is3d {
			return i
		}
	}
	return -1
}

func arg0(f transformFunc) string {
	if len(f.args) == 0 {
		return ""
	}
	return f.args[0]
}

func minIndex(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

package cssoptimizer

// Static shorthand/default tables (spec.md §3). These are small and
// immutable, so — per spec.md §9's "Static tables" note — they are
// inlined as package-level constants/vars rather than built at
// startup.

// fourValueShorthand describes a box-model shorthand whose value
// expands to four longhands in top/right/bottom/left order (or, for
// border-radius, top-left/top-right/bottom-right/bottom-left).
type fourValueShorthand struct {
	name      string
	longhands [4]string
}

var fourValueShorthands = []fourValueShorthand{
	{"border-color", [4]string{"border-top-color", "border-right-color", "border-bottom-color", "border-left-color"}},
	{"border-style", [4]string{"border-top-style", "border-right-style", "border-bottom-style", "border-left-style"}},
	{"border-width", [4]string{"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"}},
	{"margin", [4]string{"margin-top", "margin-right", "margin-bottom", "margin-left"}},
	{"padding", [4]string{"padding-top", "padding-right", "padding-bottom", "padding-left"}},
	{"border-radius", [4]string{"border-top-left-radius", "border-top-right-radius", "border-bottom-right-radius", "border-bottom-left-radius"}},
}

// fourValueShorthandByName looks up a four-value shorthand registry
// entry by its shorthand property name.
func fourValueShorthandByName(name string) (fourValueShorthand, bool) {
	for _, s := range fourValueShorthands {
		if s.name == name {
			return s, true
		}
	}
	return fourValueShorthand{}, false
}

// twoValuePair describes a shorthand whose value expands to two
// longhands (before/after, or x/y).
type twoValuePair struct {
	name      string
	longhands [2]string
}

var twoValuePairs = []twoValuePair{
	{"overflow", [2]string{"overflow-x", "overflow-y"}},
	{"pause", [2]string{"pause-before", "pause-after"}},
	{"rest", [2]string{"rest-before", "rest-after"}},
	{"cue", [2]string{"cue-before", "cue-after"}},
}

// backgroundLonghand pairs a background longhand with its registered
// default value (spec.md §3).
type backgroundLonghand struct {
	name  string
	deflt string
}

// backgroundLonghands is in the order the merger concatenates layers
// in (spec.md §4.2): image, size, repeat, position, attachment, clip,
// origin, color. Dissolution defaults come from the same table.
var backgroundLonghands = []backgroundLonghand{
	{"background-image", "none"},
	{"background-size", "auto"},
	{"background-repeat", "repeat"},
	{"background-position", "0 0"},
	{"background-attachment", "scroll"},
	{"background-clip", "border"},
	{"background-origin", "padding"},
	{"background-color", "transparent"},
}

func backgroundDefault(name string) (string, bool) {
	for _, l := range backgroundLonghands {
		if l.name == name {
			return l.deflt, true
		}
	}
	return "", false
}

// fontLonghand pairs a font longhand with its registered default
// value (spec.md §3). Order matches the walk order spec.md §4.2
// prescribes for font merging: style, variant, weight, size,
// line-height, family.
type fontLonghand struct {
	name  string
	deflt string
}

var fontLonghands = []fontLonghand{
	{"font-style", "normal"},
	{"font-variant", "normal"},
	{"font-weight", "normal"},
	{"font-size", ""},
	{"line-height", ""},
	{"font-family", ""},
}

func fontDefault(name string) (string, bool) {
	for _, l := range fontLonghands {
		if l.name == name {
			return l.deflt, true
		}
	}
	return "", false
}

var fontWeightKeywords = map[string]bool{
	"normal": true, "bold": true, "bolder": true, "lighter": true,
	"100": true, "200": true, "300": true, "400": true, "500": true,
	"600": true, "700": true, "800": true, "900": true,
}

var fontVariantKeywords = map[string]bool{"normal": true, "small-caps": true}

var fontStyleKeywords = map[string]bool{"normal": true, "italic": true, "oblique": true}

var backgroundRepeatKeywords = map[string]bool{
	"repeat": true, "repeat-x": true, "repeat-y": true, "no-repeat": true, "space": true,
}

var backgroundAttachmentKeywords = map[string]bool{"scroll": true, "fixed": true, "local": true}

var backgroundPositionKeywords = map[string]bool{
	"top": true, "center": true, "bottom": true, "left": true, "right": true,
}

// recognisedTransformFunctions is the fixed set of transform function
// families spec.md §4.5 names, keyed by their 2D base name.
var recognisedTransformFunctions = map[string]bool{
	"matrix": true, "translate": true, "scale": true, "rotate": true,
	"skew": true, "perspective": true,
}

// gradientHead describes a supported gradient function: its canonical
// (unprefixed) name and the number of leading comma-segments that are
// geometry rather than colour stops (spec.md §4.5).
type gradientHead struct {
	name string
	skip int
}

var gradientHeads = map[string]gradientHead{
	"linear-gradient":           {"linear-gradient", 1},
	"repeating-linear-gradient": {"repeating-linear-gradient", 1},
	"radial-gradient":           {"radial-gradient", 2},
	"repeating-radial-gradient": {"repeating-radial-gradient", 2},
}

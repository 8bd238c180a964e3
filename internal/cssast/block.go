// Package cssast defines the in-memory representation the optimiser
// operates on: a tree of selector-scoped and at-rule blocks, each
// owning an insertion-order-preserving map of declarations.
package cssast

import (
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// Declaration is a single property: value pair inside a Block.
//
// Value carries the raw value text with any "!important" marker
// already stripped; Important records whether the marker was present.
// This is the "canonical form" spec.md §3 describes: the stripped
// value plus a separate boolean.
type Declaration struct {
	Value     string
	Important bool
}

// splitImportant deliberately uses no precompiled regexp:
// the whitespace-before-! rule in spec.md §3 ("possibly with arbitrary
// whitespace before !") is cheaper to check with a manual scan than to
// justify a regexp dependency for.
func splitImportant(raw string) (string, bool) {
	trimmed := strings.TrimRight(raw, " \t\n\r")
	lower := strings.ToLower(trimmed)
	if !strings.HasSuffix(lower, "important") {
		return raw, false
	}
	bangIdx := strings.LastIndexByte(trimmed, '!')
	if bangIdx < 0 {
		return raw, false
	}
	between := strings.TrimSpace(trimmed[bangIdx+1 : len(trimmed)-len("important")])
	if between != "" {
		return raw, false
	}
	return strings.TrimRight(trimmed[:bangIdx], " \t\n\r"), true
}

// NewDeclaration parses a raw declaration value (as produced by the
// parser, sans trailing semicolon) into its canonical form.
func NewDeclaration(raw string) Declaration {
	value, important := splitImportant(raw)
	return Declaration{Value: value, Important: important}
}

// Text re-attaches the importance marker in its normalised form: no
// internal whitespace, exactly one "!important" suffix (spec.md §4.3's
// final normalisation step).
func (d Declaration) Text() string {
	if d.Important {
		return d.Value + "!important"
	}
	return d.Value
}

// Block is a node in the parsed stylesheet tree: either a selector-
// scoped rule (a StyleBlock) or an at-rule (an AtBlock). Both share an
// ordered property map; only AtBlock additionally owns nested
// children.
//
// The property map is backed by an insertion-order-preserving map
// rather than a plain Go map, because spec.md §3 makes iteration order
// an observable invariant: "iteration order equals declaration order."
type Block struct {
	// Selector holds the rule's selector text for a StyleBlock, or the
	// at-rule prelude ("@media screen", "@font-face", ...) for an
	// AtBlock.
	Selector string

	// IsAtRule distinguishes AtBlock from StyleBlock.
	IsAtRule bool

	// Simple marks an AtBlock that has no nested block at all (e.g.
	// "@import url(foo.css);", "@charset \"UTF-8\";") — the parser/
	// printer collaborators need this to tell it apart from an AtBlock
	// with an empty but present body ("@font-face {}"). The core never
	// inspects Simple; it only recurses into Children (spec.md §2 step
	// 7), which is harmlessly empty either way.
	Simple bool

	props *orderedmap.OrderedMap[string, Declaration]

	// Children holds nested blocks for an AtBlock (e.g. the rules
	// inside a @media block). Always empty for a StyleBlock or a Simple
	// AtBlock.
	Children []*Block
}

// NewStyleBlock creates an empty selector-scoped block.
func NewStyleBlock(selector string) *Block {
	return &Block{Selector: selector, props: orderedmap.NewOrderedMap[string, Declaration]()}
}

// NewAtBlock creates an empty at-rule block that owns a nested body
// (e.g. "@media screen { ... }", "@font-face { ... }").
func NewAtBlock(prelude string) *Block {
	return &Block{Selector: prelude, IsAtRule: true, props: orderedmap.NewOrderedMap[string, Declaration]()}
}

// NewSimpleAtRule creates an at-rule block with no body, just a raw
// prelude text (e.g. "@import url(foo.css)", "@charset \"UTF-8\"").
func NewSimpleAtRule(prelude string) *Block {
	return &Block{Selector: prelude, IsAtRule: true, Simple: true, props: orderedmap.NewOrderedMap[string, Declaration]()}
}

// Get returns the declaration for name, if present. Property names are
// expected to already be lower-cased by the parser (spec.md §3).
func (b *Block) Get(name string) (Declaration, bool) {
	return b.props.Get(name)
}

// Has reports whether name is set in this block.
func (b *Block) Has(name string) bool {
	_, ok := b.props.Get(name)
	return ok
}

// Set inserts or overwrites the declaration for name. Per spec.md §3's
// invariant ("each property name appears at most once... last write
// wins"), a Set of an existing name overwrites it in place without
// moving its position; a Set of a new name appends it at the end. The
// "delete-then-append" policy spec.md §9 offers as an alternative to
// the empty-sentinel trick (see DESIGN.md, O2) is Delete followed by
// Set.
func (b *Block) Set(name string, decl Declaration) {
	b.props.Set(name, decl)
}

// Delete removes name from the block, if present.
func (b *Block) Delete(name string) {
	b.props.Delete(name)
}

// Len returns the number of declarations in the block.
func (b *Block) Len() int {
	return b.props.Len()
}

// Names returns property names in declaration order.
func (b *Block) Names() []string {
	names := make([]string, 0, b.props.Len())
	for el := b.props.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Each calls fn for every declaration in declaration order. fn must
// not mutate the block's property set while iterating; callers that
// need to rewrite properties during a walk should collect names first
// via Names and then mutate.
func (b *Block) Each(fn func(name string, decl Declaration)) {
	for el := b.props.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// Clone returns a shallow copy of the block without its children,
// useful for scratch manipulation that may be abandoned in full.
func (b *Block) Clone() *Block {
	clone := &Block{Selector: b.Selector, IsAtRule: b.IsAtRule, props: orderedmap.NewOrderedMap[string, Declaration]()}
	b.Each(func(name string, decl Declaration) {
		clone.Set(name, decl)
	})
	return clone
}

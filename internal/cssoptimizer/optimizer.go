// Package cssoptimizer is the optimiser core: declaration-level
// shorthand dissolution/merging and value-level rewrites (spec.md §1,
// §2). It is single-threaded and synchronous (spec.md §5) — one call
// to Postparse mutates one block tree in place and returns.
package cssoptimizer

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rafleo/CSSTidy/internal/cssast"
	"github.com/rafleo/CSSTidy/internal/csscolor"
	"github.com/rafleo/CSSTidy/internal/cssnumber"
	"github.com/rafleo/CSSTidy/internal/config"
)

// Level re-exports config.Level so callers of this package don't need
// to import internal/config just to set Optimizer.Level.
type Level = config.Level

const (
	levelNone       = config.LevelNone
	levelCommon     = config.LevelCommon
	levelFont       = config.LevelFont
	levelBackground = config.LevelBackground
)

// Optimizer holds the configuration knobs spec.md §6 enumerates plus
// the logger every pass writes its INFORMATION-level records to
// (spec.md §6 "Observable side effects").
type Optimizer struct {
	// Level gates which shorthand stages run (spec.md §6
	// optimise_shorthands).
	Level Level

	// CompressColors enables colour rewriting in sub-values and inside
	// gradients (spec.md §6 compress_colors).
	CompressColors bool

	// CompressFontWeight enables the bold/normal -> 700/400 mapping
	// (spec.md §6 compress_font_weight).
	CompressFontWeight bool

	// Log receives INFORMATION-level records for the side effects
	// spec.md §6 names. Defaults to a no-op logger, matching the
	// corpus's nil-logger convention (rupor-github-fb2cng/css.Parser).
	Log *zap.Logger
}

// New returns an Optimizer configured from cfg, with a no-op logger.
// Use the Log field directly to attach a real logger.
func New(cfg config.Config) *Optimizer {
	return &Optimizer{
		Level:              cfg.OptimiseShorthands,
		CompressColors:     cfg.CompressColors,
		CompressFontWeight: cfg.CompressFontWeight,
		Log:                zap.NewNop(),
	}
}

func (o *Optimizer) logger() *zap.Logger {
	if o.Log == nil {
		return zap.NewNop()
	}
	return o.Log
}

// logRewrite emits the INFORMATION-level record spec.md §6 requires
// for a shorthand rewrite or value substitution that changed text,
// tagged with the pass id so concurrent runs on disjoint trees (spec.md
// §5) can be told apart in a shared log sink.
func (o *Optimizer) logRewrite(kind, property, before, after string) {
	if before == after {
		return
	}
	o.logger().Info("css rewrite",
		zap.String("kind", kind),
		zap.String("property", property),
		zap.String("before", before),
		zap.String("after", after),
	)
}

// Color delegates to the colour sub-engine (spec.md §4.6, external
// contract).
func (o *Optimizer) Color(token string) string {
	return csscolor.Optimise(token)
}

// Number delegates to the number sub-engine (spec.md §4.6, external
// contract).
func (o *Optimizer) Number(property, token string) string {
	return cssnumber.Optimise(property, token)
}

// Postparse runs the full pipeline of spec.md §2 over block and its
// descendants: dissolve shorthands, rewrite each declaration's value,
// re-merge shorthands, then recurse into nested at-rule children. At
// level NONE only the recursion runs, so no value is rewritten. A
// fresh pass id is minted per top-level call and attached to the
// per-declaration value-rewrite records of this invocation; records
// emitted through logRewrite do not carry it.
func (o *Optimizer) Postparse(block *cssast.Block) {
	passID := uuid.New()
	o.postparse(block, passID.String())
}

func (o *Optimizer) postparse(block *cssast.Block, passID string) {
	o.dissolveShorthands(block)

	for _, name := range block.Names() {
		decl, ok := block.Get(name)
		if !ok {
			continue
		}
		newValue := decl.Value
		if o.Level.AtLeast(levelCommon) {
			newValue = o.rewriteDeclaration(name, decl.Value)
		}
		if newValue != decl.Value {
			o.logger().Info("css value rewrite",
				zap.String("pass", passID),
				zap.String("property", name),
				zap.String("before", decl.Value),
				zap.String("after", newValue),
			)
		}
		block.Set(name, cssast.Declaration{Value: newValue, Important: decl.Important})
	}

	if o.Level.AtLeast(levelCommon) {
		o.mergeFourValueShorthands(block)
		o.mergeTwoValueShorthand(block)
	}
	if o.Level.AtLeast(levelFont) {
		o.mergeFont(block)
	}
	if o.Level.AtLeast(levelBackground) {
		o.mergeBackground(block)
	}

	for _, child := range block.Children {
		o.postparse(child, passID)
	}
}

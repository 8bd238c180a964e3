// Package cssparser turns CSS source text into the cssast.Block tree
// the optimiser core consumes (spec.md §1 "Out of scope"/§6 "Input to
// the core"). It is built on the same low-level CSS grammar tokenizer
// the corpus already depends on, github.com/tdewolff/parse/v2/css, and
// follows the grammar-loop/zap-logger shape of
// rupor-github-fb2cng/css.Parser.
//
// Unlike the optimiser core, this parser is not total (spec.md §A.2):
// genuinely unparseable input is accumulated into a combined error via
// go.uber.org/multierr rather than aborting on the first problem, and a
// best-effort block tree is still returned.
package cssparser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rafleo/CSSTidy/internal/cssast"
)

// Parser reads CSS source text into a forest of top-level blocks.
type Parser struct {
	log   *zap.Logger
	caser cases.Caser
}

// New creates a Parser. A nil logger is replaced with a no-op logger,
// matching the corpus's nil-logger convention.
func New(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser"), caser: cases.Lower(language.Und)}
}

// Parse parses src into the top-level blocks of a stylesheet (selector
// rules and at-rules, spec.md §3). It always returns a best-effort tree;
// the returned error, if non-nil, is a multierr-combined list of every
// unparseable construct encountered, none of which aborted parsing.
func (p *Parser) Parse(src []byte) ([]*cssast.Block, error) {
	input := parse.NewInput(bytes.NewReader(src))
	lex := css.NewParser(input, false)
	return p.parseBlocks(lex)
}

// parseBlocks consumes grammar events until end-of-input or a matching
// EndAtRuleGrammar (when called recursively for a nested at-rule body),
// returning the blocks found at this nesting level.
func (p *Parser) parseBlocks(lex *css.Parser) ([]*cssast.Block, error) {
	var blocks []*cssast.Block
	var errs error

	for {
		gt, _, data := lex.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := lex.Err(); err != nil && err != io.EOF {
				errs = multierr.Append(errs, fmt.Errorf("cssparser: %w", err))
			}
			return blocks, errs

		case css.EndAtRuleGrammar:
			return blocks, errs

		case css.AtRuleGrammar:
			prelude := joinTokens(data, lex.Values())
			blocks = append(blocks, cssast.NewSimpleAtRule(prelude))

		case css.BeginAtRuleGrammar:
			prelude := joinTokens(data, lex.Values())
			children, err := p.parseBlocks(lex)
			errs = multierr.Append(errs, err)
			at := cssast.NewAtBlock(prelude)
			at.Children = children
			blocks = append(blocks, at)

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selector := joinTokens(data, lex.Values())
			block := cssast.NewStyleBlock(selector)
			if err := p.parseDeclarations(lex, block); err != nil {
				errs = multierr.Append(errs, err)
			}
			blocks = append(blocks, block)

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			// A declaration outside of any ruleset/at-rule body is
			// malformed input; record it and move on (spec.md §A.2:
			// the parser accumulates diagnostics rather than aborting).
			errs = multierr.Append(errs, fmt.Errorf("cssparser: declaration %q outside of a rule body", string(data)))
		}
	}
}

// parseDeclarations consumes declarations belonging to one ruleset
// until EndRulesetGrammar or end-of-input, setting each onto block.
func (p *Parser) parseDeclarations(lex *css.Parser, block *cssast.Block) error {
	var errs error
	for {
		gt, _, data := lex.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := lex.Err(); err != nil && err != io.EOF {
				errs = multierr.Append(errs, fmt.Errorf("cssparser: %w", err))
			}
			return errs
		case css.EndRulesetGrammar:
			return errs

		case css.DeclarationGrammar:
			name := p.caser.String(string(data))
			raw := joinTokens(nil, lex.Values())
			if raw == "" {
				continue
			}
			block.Set(name, cssast.NewDeclaration(raw))

		case css.CustomPropertyGrammar:
			// Custom properties ("--name: value") carry no shorthand
			// semantics for the optimiser to act on; stored verbatim so
			// they still round-trip through the printer.
			name := string(data)
			raw := joinTokens(nil, lex.Values())
			if raw != "" {
				block.Set(name, cssast.NewDeclaration(raw))
			}
		}
	}
}

// joinTokens reconstructs a raw source-text string from an optional
// leading byte slice (the grammar event's own "data", e.g. a selector's
// or at-rule's leading bytes) followed by its value tokens, collapsing
// any run of whitespace tokens to a single space — the same shape
// rupor-github-fb2cng/css.Parser's parsePropertyValue builds its raw
// string with.
func joinTokens(prefix []byte, tokens []css.Token) string {
	var parts []string
	if len(prefix) > 0 {
		parts = append(parts, string(prefix))
	}
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if len(parts) > 0 && parts[len(parts)-1] != " " {
				parts = append(parts, " ")
			}
			continue
		}
		parts = append(parts, string(t.Data))
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

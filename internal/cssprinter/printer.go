// Package cssprinter serialises an optimised cssast.Block tree back to
// CSS text (spec.md §1 "Out of scope", §6). The core is specified only
// via the token kinds this package produces; the formatting itself —
// and the "@import"/"@namespace" url() unwrap — is this package's own
// concern.
package cssprinter

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/rafleo/CSSTidy/internal/cssast"
)

// Kind is one of the token kinds spec.md §6 names as the printer's
// fixed external contract with the core.
type Kind int

const (
	PROPERTY Kind = iota
	VALUE
	SEL_START
	SEL_END
	AT_START
	AT_END
	COMMENT
)

// Token is one element of the printer's token stream. For a Simple
// at-rule (no nested body, e.g. "@import url(...);"), AT_START's Text
// already carries the trailing ";" and is immediately followed by an
// empty AT_END — the renderer tells the two shapes of AT_START/AT_END
// apart by that trailing semicolon rather than needing an eighth token
// kind outside spec.md §6's fixed list.
type Token struct {
	Kind Kind
	Text string
}

// Printer renders a block tree to the PROPERTY/VALUE/SEL_START/...
// token stream and, from that stream, to CSS text.
type Printer struct {
	log *zap.Logger
}

// New creates a Printer. A nil logger is replaced with a no-op logger.
func New(log *zap.Logger) *Printer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Printer{log: log.Named("css-printer")}
}

// importOrNamespaceURL matches the "url(...)" form of an @import or
// @namespace prelude, grounded on
// rupor-github-fb2cng/css.Stylesheet's urlRewritePattern.
var importOrNamespaceURL = regexp.MustCompile(`(?i)^(@import|@namespace)(\s+\S+)?\s+url\(\s*(["']?)([^)"']*)(["']?)\s*\)(.*)$`)

// Tokens walks blocks, producing the printer's token stream.
func (p *Printer) Tokens(blocks []*cssast.Block) []Token {
	var out []Token
	for _, b := range blocks {
		out = p.appendBlockTokens(out, b)
	}
	return out
}

func (p *Printer) appendBlockTokens(out []Token, b *cssast.Block) []Token {
	if b.IsAtRule && b.Simple {
		out = append(out, Token{Kind: AT_START, Text: p.unwrapAtRuleURL(b.Selector) + ";"})
		out = append(out, Token{Kind: AT_END})
		return out
	}

	startKind, endKind := SEL_START, SEL_END
	if b.IsAtRule {
		startKind, endKind = AT_START, AT_END
	}

	out = append(out, Token{Kind: startKind, Text: b.Selector})
	b.Each(func(name string, decl cssast.Declaration) {
		out = append(out, Token{Kind: PROPERTY, Text: name})
		out = append(out, Token{Kind: VALUE, Text: decl.Text()})
	})
	for _, child := range b.Children {
		out = p.appendBlockTokens(out, child)
	}
	out = append(out, Token{Kind: endKind})
	return out
}

// unwrapAtRuleURL implements spec.md §6's "@import/@namespace url(...)
// unwrap": "@import url(\"a.css\")" becomes "@import \"a.css\"", which
// is always equal-or-shorter. The rewrite is logged at INFORMATION
// level (spec.md §6 "Observable side effects"); emitting the log record
// never influences the text that gets returned.
func (p *Printer) unwrapAtRuleURL(prelude string) string {
	m := importOrNamespaceURL.FindStringSubmatch(prelude)
	if m == nil || m[3] != m[5] {
		return prelude
	}
	rewritten := m[1] + m[2] + ` "` + m[4] + `"` + m[6]
	p.log.Info("unwrapped url() in at-rule prelude",
		zap.String("before", prelude),
		zap.String("after", rewritten),
	)
	return rewritten
}

// Print renders blocks to CSS text via Tokens.
func (p *Printer) Print(blocks []*cssast.Block) string {
	return renderTokens(p.Tokens(blocks))
}

// renderTokens turns a token stream into CSS text. A stack of booleans
// tracks, per open SEL_START/AT_START, whether it opened a body (needs
// a matching closing brace) or was a Simple at-rule (its own ";" was
// already part of AT_START's text, so its AT_END writes nothing).
func renderTokens(tokens []Token) string {
	var b strings.Builder
	var hasBody []bool
	pendingProperty := ""

	indent := func() string { return strings.Repeat("  ", len(hasBody)) }

	for _, t := range tokens {
		switch t.Kind {
		case SEL_START, AT_START:
			b.WriteString(indent())
			b.WriteString(t.Text)
			if strings.HasSuffix(t.Text, ";") {
				b.WriteString("\n")
				hasBody = append(hasBody, false)
				continue
			}
			b.WriteString(" {\n")
			hasBody = append(hasBody, true)

		case SEL_END, AT_END:
			open := hasBody[len(hasBody)-1]
			hasBody = hasBody[:len(hasBody)-1]
			if open {
				b.WriteString(indent())
				b.WriteString("}\n")
			}

		case PROPERTY:
			pendingProperty = t.Text

		case VALUE:
			b.WriteString(indent())
			fmt.Fprintf(&b, "%s: %s;\n", pendingProperty, t.Text)
			pendingProperty = ""

		case COMMENT:
			b.WriteString(indent())
			b.WriteString("/*")
			b.WriteString(t.Text)
			b.WriteString("*/\n")
		}
	}
	return b.String()
}

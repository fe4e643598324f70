// CLAUDE:SUMMARY Standalone numeral pass: numeral runs holding a Wolof word become bare digits; run scanning shared by the span normalizers.
package voicenorm

import (
	"math/big"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

type tokenKind uint8

const (
	kindOther tokenKind = iota
	kindNumber
	kindConnector
	kindCount
)

func (p *pass) kind(t Token) tokenKind {
	if t.Frozen {
		return kindOther
	}
	if isDigits(t.Text) {
		return kindNumber
	}
	if _, ok := p.lex.Numeral(t.Key); ok {
		return kindNumber
	}
	if _, ok := p.lex.ClassifyCompound(t.Text); ok {
		return kindNumber
	}
	if _, ok := p.lex.LookupKey(lexicon.Connector, t.Key); ok {
		return kindConnector
	}
	if _, ok := p.lex.LookupKey(lexicon.CountUnit, t.Key); ok {
		return kindCount
	}
	return kindOther
}

// runAt returns the end of the numeral run starting at i, or i when toks[i]
// cannot start one. A run starts with a number, may contain connectors and
// count units, and never ends with a connector.
func (p *pass) runAt(toks []Token, i int) int {
	if i >= len(toks) || p.kind(toks[i]) != kindNumber {
		return i
	}
	j := i + 1
	for j < len(toks) && p.kind(toks[j]) != kindOther {
		j++
	}
	for j > i && p.kind(toks[j-1]) == kindConnector {
		j--
	}
	return j
}

// runBefore returns the start of the longest numeral run ending exactly at
// end, or end when there is none.
func (p *pass) runBefore(toks []Token, end int) int {
	if end == 0 || p.kind(toks[end-1]) == kindConnector {
		return end
	}
	start := end
	for start > 0 && p.kind(toks[start-1]) != kindOther {
		start--
	}
	for start < end && p.kind(toks[start]) != kindNumber {
		start++
	}
	return start
}

// value converts a numeral run. It fails when words are left over.
func (p *pass) value(toks []Token) (*big.Int, bool) {
	r := Combine(p.conv.Convert(toks))
	if !r.OK() || len(r.Words) > 0 {
		return nil, false
	}
	return r.Value, true
}

func (p *pass) hasWolof(toks []Token) bool {
	for _, t := range toks {
		if e, ok := p.lex.Numeral(t.Key); ok && e.Class.IsWolof() {
			return true
		}
	}
	return false
}

// standalone rewrites numeral runs that contain a Wolof numeral word as bare
// digits. French-only runs are left alone: "un", "une" double as articles.
// A lone "benn" is left alone for the same reason.
func (p *pass) standalone(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); {
		end := p.runAt(toks, i)
		if end == i {
			out = append(out, toks[i])
			i++
			continue
		}
		run := toks[i:end]
		v, ok := p.value(run)
		if !ok || !p.hasWolof(run) || (len(run) == 1 && run[0].Key == lexicon.WordBenn) {
			out = append(out, run...)
			i = end
			continue
		}
		text := v.String()
		p.record(KindNumeral, run, text, "")
		out = append(out, frozen(text)...)
		i = end
	}
	return out
}

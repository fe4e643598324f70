// CLAUDE:SUMMARY Service code normalizer: pairs dièse/étoile markers around spoken content and emits #205#, *144*, *144*1#.
package voicenorm

import (
	"strings"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

// codeFamilies is the pairing order: hash codes first, then star codes.
var codeFamilies = []string{lexicon.SymbolHash, lexicon.SymbolStar}

func (p *pass) isCodeMarker(t Token, symbol string) bool {
	if t.Frozen {
		return false
	}
	e, ok := p.lex.LookupKey(lexicon.CodeMarker, t.Fold)
	return ok && e.Symbol == symbol
}

func (p *pass) isFiller(t Token) bool {
	if t.Frozen {
		return false
	}
	_, ok := p.lex.LookupKey(lexicon.CodeFiller, t.Fold)
	return ok
}

func (p *pass) codes(toks []Token) []Token {
	for _, symbol := range codeFamilies {
		toks = p.pairCodes(toks, symbol)
	}
	return toks
}

// pairCodes closes each opening marker on the nearest following marker of
// the same family. Markers with nothing between them are not a code.
func (p *pass) pairCodes(toks []Token, symbol string) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); {
		if !p.isCodeMarker(toks[i], symbol) {
			out = append(out, toks[i])
			i++
			continue
		}
		closing := -1
		for j := i + 1; j < len(toks); j++ {
			if p.isCodeMarker(toks[j], symbol) {
				closing = j
				break
			}
		}
		// Fillers go before any marker, paired or not.
		var start int
		out, start = p.dropFillers(out, i)
		if closing <= i+1 {
			out = append(out, toks[i])
			i++
			continue
		}

		code := symbol + p.codeBody(toks[i+1:closing]) + symbol
		next := closing + 1
		if symbol == lexicon.SymbolStar {
			if end := p.runAt(toks, next); end > next && end < len(toks) && p.isCodeMarker(toks[end], lexicon.SymbolHash) {
				code += p.codeBody(toks[next:end]) + lexicon.SymbolHash
				next = end + 1
			}
		}

		p.record(KindCode, toks[start:next], code, "")
		out = append(out, Token{Text: code, Key: code, Fold: code, Frozen: true})
		i = next
	}
	return out
}

// dropFillers removes the filler run at the end of out, which directly
// precedes the marker at i, and returns where the code span starts.
func (p *pass) dropFillers(out []Token, i int) ([]Token, int) {
	for len(out) > 0 && p.isFiller(out[len(out)-1]) {
		out = out[:len(out)-1]
		i--
	}
	return out, i
}

// codeBody renders the content between two markers: two or more single
// digits are concatenated, numerals are combined, anything else is kept.
func (p *pass) codeBody(content []Token) string {
	if digits, ok := p.singleDigits(content); ok {
		return digits
	}
	r := Combine(p.conv.Convert(content))
	if r.OK() {
		return r.String()
	}
	return joinTokens(content)
}

func (p *pass) singleDigits(content []Token) (string, bool) {
	if len(content) < 2 {
		return "", false
	}
	var b strings.Builder
	for _, t := range content {
		if t.Frozen {
			return "", false
		}
		if len(t.Text) == 1 && isDigits(t.Text) {
			b.WriteString(t.Text)
			continue
		}
		e, ok := p.lex.LookupKey(lexicon.FrenchUnit, t.Key)
		if !ok || e.Value > 9 {
			return "", false
		}
		b.WriteByte(byte('0' + e.Value))
	}
	return b.String(), true
}

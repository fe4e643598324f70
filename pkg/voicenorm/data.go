// CLAUDE:SUMMARY Data quantity normalizer: "<numeral run> giga|mega|go|mo" -> 5Go / 150Mo, plus the /mois merge.
package voicenorm

import (
	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

func (p *pass) dataUnit(t Token) (string, bool) {
	if t.Frozen {
		return "", false
	}
	e, ok := p.lex.Marker(t.Fold)
	if !ok || e.Class != lexicon.DataUnitMarker {
		return "", false
	}
	return e.Symbol, true
}

func (p *pass) data(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		unit, ok := p.dataUnit(toks[i])
		if !ok {
			out = append(out, toks[i])
			continue
		}
		start := p.runBefore(out, len(out))
		if start == len(out) {
			out = append(out, toks[i])
			continue
		}
		v, ok := p.value(out[start:])
		if !ok {
			out = append(out, toks[i])
			continue
		}
		text := v.String() + unit
		p.record(KindData, append(append([]Token(nil), out[start:]...), toks[i]), text, "")
		out = append(out[:start], frozen(text)...)
	}
	return p.perMonth(out)
}

// perMonth merges "<n>Go / mois" and "<n>Go par mois" into "<n>Go/mois".
func (p *pass) perMonth(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if i+2 < len(toks) && canon.is(patternDataAmount, t.Text) && !toks[i+1].Frozen && !toks[i+2].Frozen &&
			(toks[i+1].Key == lexicon.WordSlash || toks[i+1].Key == lexicon.WordPar) && toks[i+2].Key == lexicon.WordMois {
			text := t.Text + lexicon.WordSlash + lexicon.WordMois
			p.record(KindData, toks[i:i+3], text, "")
			out = append(out, frozen(text)...)
			i += 2
			continue
		}
		out = append(out, t)
	}
	return out
}

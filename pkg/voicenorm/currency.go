// CLAUDE:SUMMARY Currency normalizer: "<amount> francs|franc|f|fcfa|francs cfa" -> "20 000 F" / "54 900 FCFA".
package voicenorm

import (
	"strings"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

// currencyWindow is how far ahead of an amount the word scan looks for a
// currency marker.
const currencyWindow = 5

// currencyAt matches the longest currency marker phrase at i, so that
// "francs cfa" wins over "francs".
func (p *pass) currencyAt(toks []Token, i int) (string, int, bool) {
	for n := p.lex.MaxPhraseWords(); n >= 1; n-- {
		if i+n > len(toks) {
			continue
		}
		words := make([]string, n)
		ok := true
		for k, t := range toks[i : i+n] {
			if t.Frozen {
				ok = false
				break
			}
			words[k] = t.Text
		}
		if !ok {
			continue
		}
		if e, found := p.lex.Phrase(words...); found && e.Class == lexicon.CurrencyMarker {
			return e.Symbol, n, true
		}
	}
	return "", 0, false
}

// groupedBefore finds an amount already written in groups ("20 000",
// "1 250 000") ending at end.
func (p *pass) groupedBefore(toks []Token, end int) (int, bool) {
	digitTok := func(t Token, min, max int) bool {
		return !t.Frozen && isDigits(t.Text) && len(t.Text) >= min && len(t.Text) <= max
	}
	k := end
	for k > 0 && digitTok(toks[k-1], 3, 3) {
		k--
	}
	if k > 0 && digitTok(toks[k-1], 1, 2) {
		k--
	}
	if end-k < 2 || !canon.is(patternAmount, joinTokens(toks[k:end])) {
		return end, false
	}
	return k, true
}

// currencySpans rewrites the numeral run directly before each marker.
func (p *pass) currencySpans(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); {
		symbol, width, ok := p.currencyAt(toks, i)
		if !ok {
			out = append(out, toks[i])
			i++
			continue
		}

		var amount string
		start, grouped := p.groupedBefore(out, len(out))
		if grouped {
			amount = joinTokens(out[start:])
		} else {
			start = p.runBefore(out, len(out))
			if start < len(out) {
				if v, ok := p.value(out[start:]); ok {
					amount = groupDigits(v.String())
				}
			}
		}
		if amount == "" {
			out = append(out, toks[i:i+width]...)
			i += width
			continue
		}

		text := amount + " " + symbol
		p.record(KindCurrency, append(append([]Token(nil), out[start:]...), toks[i:i+width]...), text, "")
		out = append(out[:start], frozen(text)...)
		i += width
	}
	return out
}

// currencyScan handles amounts separated from their marker by other words:
// from each numeral, a marker within currencyWindow tokens closes the amount
// and the words in between are kept after the value.
func (p *pass) currencyScan(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); {
		if p.kind(toks[i]) != kindNumber {
			out = append(out, toks[i])
			i++
			continue
		}
		matched := false
		for j := i + 1; j <= i+currencyWindow && j < len(toks) && !toks[j].Frozen; j++ {
			symbol, width, ok := p.currencyAt(toks, j)
			if !ok {
				continue
			}
			r := Combine(p.conv.Convert(toks[i:j]))
			if !r.OK() {
				break
			}
			text := groupDigits(r.Value.String())
			if len(r.Words) > 0 {
				text += " " + strings.Join(r.Words, " ")
			}
			text += " " + symbol
			p.record(KindCurrency, toks[i:j+width], text, "")
			out = append(out, frozen(text)...)
			i = j + width
			matched = true
			break
		}
		if !matched {
			out = append(out, toks[i])
			i++
		}
	}
	return out
}

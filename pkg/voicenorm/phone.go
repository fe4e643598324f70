// CLAUDE:SUMMARY Phone number normalizer: French digit/pair dictation runs of 8 or 9 digits, grouped XX XXX XX XX, E.164 via libphonenumber.
package voicenorm

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

const (
	maxPhoneTokens = 12
	minPhoneTokens = 6
)

// phoneNoise are tokens consumed inside a phone run without adding digits.
var phoneNoise = map[string]bool{lexicon.WordCent: true, lexicon.WordEt: true, lexicon.WordDash: true}

// phoneDigits returns the digits a token contributes to a phone run: digit
// strings of length 1-2 as written, French words below 100 as their value.
func (p *pass) phoneDigits(t Token) (string, bool) {
	if t.Frozen {
		return "", false
	}
	if isDigits(t.Text) {
		return t.Text, len(t.Text) <= 2
	}
	e, ok := p.lex.Numeral(t.Key)
	if !ok {
		e, ok = p.lex.ClassifyCompound(t.Text)
	}
	if !ok || e.Value >= 100 || (e.Class != lexicon.FrenchUnit && e.Class != lexicon.FrenchTen) {
		return "", false
	}
	return strconv.FormatInt(e.Value, 10), true
}

// phoneAt reads a phone run starting at i. It returns the digits and the end
// of the run when the run has enough tokens and exactly 8 or 9 digits.
func (p *pass) phoneAt(toks []Token, i int) (string, int, bool) {
	if _, ok := p.phoneDigits(toks[i]); !ok {
		return "", i, false
	}
	var b strings.Builder
	j := i
	for j < len(toks) && j-i < maxPhoneTokens {
		if d, ok := p.phoneDigits(toks[j]); ok {
			b.WriteString(d)
		} else if toks[j].Frozen || !phoneNoise[toks[j].Key] {
			break
		}
		j++
	}
	for j > i && phoneNoise[toks[j-1].Key] && !toks[j-1].Frozen {
		j--
	}
	if j-i < minPhoneTokens {
		return "", i, false
	}
	digits := b.String()
	if len(digits) != 8 && len(digits) != 9 {
		return "", i, false
	}
	return digits, j, true
}

func formatPhone(d string) string {
	if len(d) == 9 {
		return d[0:2] + " " + d[2:5] + " " + d[5:7] + " " + d[7:9]
	}
	return d[0:2] + " " + d[2:5] + " " + d[5:8]
}

// e164 returns the E.164 form of digits in the pass region, or "" when the
// number is not valid there.
func (p *pass) e164(digits string) string {
	num, err := phonenumbers.Parse(digits, p.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func (p *pass) phones(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); {
		digits, end, ok := p.phoneAt(toks, i)
		if !ok {
			out = append(out, toks[i])
			i++
			continue
		}
		text := formatPhone(digits)
		p.record(KindPhone, toks[i:end], text, p.e164(digits))
		out = append(out, frozen(text)...)
		i = end
	}
	return out
}

// CLAUDE:SUMMARY Whitespace tokenizer: raw text plus NFC lookup key and accent-folded marker key; frozen tokens come from normalizers.
package voicenorm

import (
	"strings"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

// Token is one whitespace-delimited word of the utterance.
// Text is kept byte for byte; Key and Fold are only used for lookups.
// Frozen tokens were emitted by a normalizer and are never reinterpreted.
type Token struct {
	Text   string
	Key    string
	Fold   string
	Frozen bool
}

// Tokenize splits text on whitespace.
func Tokenize(text string) []Token {
	fields := strings.Fields(text)
	toks := make([]Token, len(fields))
	for i, f := range fields {
		toks[i] = newToken(f)
	}
	return toks
}

func newToken(s string) Token {
	return Token{Text: s, Key: lexicon.Key(s), Fold: lexicon.Fold(s)}
}

// frozen returns canonical output as tokens that later passes leave alone.
func frozen(s string) []Token {
	fields := strings.Fields(s)
	toks := make([]Token, len(fields))
	for i, f := range fields {
		toks[i] = Token{Text: f, Key: f, Fold: f, Frozen: true}
	}
	return toks
}

func joinTokens(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CLAUDE:SUMMARY Numeral converter: greedy longest-match over Wolof base-5 patterns, lexicon phrases, French compounds and digits.
package voicenorm

import (
	"math/big"
	"strings"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

// PartKind tags converter output.
type PartKind uint8

const (
	PartNumber PartKind = iota + 1
	PartConnector
	PartCount
	PartWord
)

func (k PartKind) String() string {
	switch k {
	case PartNumber:
		return "number"
	case PartConnector:
		return "connector"
	case PartCount:
		return "count"
	case PartWord:
		return "word"
	}
	return "unknown"
}

// Span is a half-open range of token indices.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Part is one element of a converted token sequence. Value is set for
// numbers and count units; Text holds the raw token text.
type Part struct {
	Kind  PartKind
	Value *big.Int
	Text  string
	Span  Span
}

// slot matches one token: a lexicon entry of one of the classes whose value
// lies in [min, max]. A zero max accepts any value.
type slot struct {
	classes  []lexicon.Class
	min, max int64
}

type pattern struct {
	name  string
	slots []slot
	value func(v []int64) int64
	// suppressAfter disables the pattern when the previous emitted part is
	// a number with one of these values.
	suppressAfter map[int64]bool
}

var (
	slotJuroom   = slot{classes: []lexicon.Class{lexicon.WolofUnit}, min: 5, max: 5}
	slotUnit1to4 = slot{classes: []lexicon.Class{lexicon.WolofUnit}, min: 1, max: 4}
	slotUnit1to5 = slot{classes: []lexicon.Class{lexicon.WolofUnit}, min: 1, max: 5}
	slotTen      = slot{classes: []lexicon.Class{lexicon.WolofTen}}
	slotHundred  = slot{classes: []lexicon.Class{lexicon.WolofHundred}}
	slotThousand = slot{classes: []lexicon.Class{lexicon.WolofThousand}}
)

// junniGuard lists the previous values after which "<unit> junni" is not
// read as a product: "ñaar fukk junni" is 20 x 1000, not 20 + 2000.
var junniGuard = map[int64]bool{20: true}

func fivePlusTimes(v []int64) int64 { return (5 + v[1]) * v[2] }
func fivePlus(v []int64) int64      { return 5 + v[1] }
func times(v []int64) int64         { return v[0] * v[1] }

// patterns is ordered: on equal length the earlier pattern wins.
var patterns = []pattern{
	{name: "juroom-unit-ten", slots: []slot{slotJuroom, slotUnit1to4, slotTen}, value: fivePlusTimes},
	{name: "juroom-unit-hundred", slots: []slot{slotJuroom, slotUnit1to4, slotHundred}, value: fivePlusTimes},
	{name: "juroom-unit-thousand", slots: []slot{slotJuroom, slotUnit1to4, slotThousand}, value: fivePlusTimes},
	{name: "juroom-unit", slots: []slot{slotJuroom, slotUnit1to4}, value: fivePlus},
	{name: "unit-ten", slots: []slot{slotUnit1to5, slotTen}, value: times},
	{name: "unit-hundred", slots: []slot{slotUnit1to5, slotHundred}, value: times},
	{name: "unit-thousand", slots: []slot{slotUnit1to5, slotThousand}, value: times, suppressAfter: junniGuard},
}

// Converter turns tokens into numbers and leftover parts using one lexicon.
type Converter struct {
	lex *lexicon.Lexicon
}

// NewConverter returns a converter over lex.
func NewConverter(lex *lexicon.Lexicon) *Converter {
	return &Converter{lex: lex}
}

// Convert scans toks once, left to right, taking the longest match at each
// position. It never fails: unknown tokens become word parts.
func (c *Converter) Convert(toks []Token) []Part {
	parts := make([]Part, 0, len(toks))
	for i := 0; i < len(toks); {
		t := toks[i]
		span := Span{Start: i, End: i + 1}
		if t.Frozen {
			parts = append(parts, Part{Kind: PartWord, Text: t.Text, Span: span})
			i++
			continue
		}

		if strings.Contains(t.Key, "-") {
			if e, ok := c.lex.ClassifyCompound(t.Text); ok {
				parts = append(parts, numberPart(big.NewInt(e.Value), t.Text, span))
				i++
				continue
			}
		}

		if isDigits(t.Text) {
			n, _ := new(big.Int).SetString(t.Text, 10)
			parts = append(parts, numberPart(n, t.Text, span))
			i++
			continue
		}

		if n, v := c.match(toks, i, parts); n > 0 {
			parts = append(parts, numberPart(big.NewInt(v), joinTokens(toks[i:i+n]), Span{Start: i, End: i + n}))
			i += n
			continue
		}

		parts = append(parts, c.single(t, span))
		i++
	}
	return parts
}

func (c *Converter) single(t Token, span Span) Part {
	if e, ok := c.lex.Numeral(t.Key); ok {
		return numberPart(big.NewInt(e.Value), t.Text, span)
	}
	if _, ok := c.lex.LookupKey(lexicon.Connector, t.Key); ok {
		return Part{Kind: PartConnector, Text: t.Text, Span: span}
	}
	if e, ok := c.lex.LookupKey(lexicon.CountUnit, t.Key); ok {
		return Part{Kind: PartCount, Value: big.NewInt(e.Value), Text: t.Text, Span: span}
	}
	return Part{Kind: PartWord, Text: t.Text, Span: span}
}

func numberPart(v *big.Int, text string, span Span) Part {
	return Part{Kind: PartNumber, Value: v, Text: text, Span: span}
}

// match returns the length and value of the longest multi-word match at i:
// a pattern or a lexicon phrase. Zero length means no match.
func (c *Converter) match(toks []Token, i int, emitted []Part) (int, int64) {
	bestLen, bestVal := 0, int64(0)
	for _, p := range patterns {
		n := len(p.slots)
		if n <= bestLen || i+n > len(toks) || suppressed(p, emitted) {
			continue
		}
		vals, ok := c.fill(p, toks[i:i+n])
		if !ok {
			continue
		}
		bestLen, bestVal = n, p.value(vals)
	}

	for n := c.lex.MaxPhraseWords(); n > bestLen && n >= 2; n-- {
		if i+n > len(toks) {
			continue
		}
		keys := make([]string, n)
		ok := true
		for k, t := range toks[i : i+n] {
			if t.Frozen {
				ok = false
				break
			}
			keys[k] = t.Key
		}
		if !ok {
			continue
		}
		if e, found := c.lex.Numeral(strings.Join(keys, " ")); found {
			return n, e.Value
		}
	}
	return bestLen, bestVal
}

func (c *Converter) fill(p pattern, toks []Token) ([]int64, bool) {
	vals := make([]int64, len(p.slots))
	for k, s := range p.slots {
		v, ok := c.slotValue(s, toks[k])
		if !ok {
			return nil, false
		}
		vals[k] = v
	}
	return vals, true
}

func (c *Converter) slotValue(s slot, t Token) (int64, bool) {
	if t.Frozen {
		return 0, false
	}
	for _, class := range s.classes {
		e, ok := c.lex.LookupKey(class, t.Key)
		if !ok || e.Value < s.min || (s.max > 0 && e.Value > s.max) {
			continue
		}
		return e.Value, true
	}
	return 0, false
}

func suppressed(p pattern, emitted []Part) bool {
	if len(p.suppressAfter) == 0 || len(emitted) == 0 {
		return false
	}
	last := emitted[len(emitted)-1]
	if last.Kind != PartNumber || !last.Value.IsInt64() {
		return false
	}
	return p.suppressAfter[last.Value.Int64()]
}

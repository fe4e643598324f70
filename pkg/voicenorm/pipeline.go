// CLAUDE:SUMMARY Normalizer pipeline: codes, phones, data, currency (span + scan), standalone Wolof numerals, whitespace collapse.
package voicenorm

import (
	"log/slog"
	"strings"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

// Kind names the normalizer that produced a rewrite.
type Kind string

const (
	KindCode     Kind = "code"
	KindPhone    Kind = "phone"
	KindData     Kind = "data"
	KindCurrency Kind = "currency"
	KindNumeral  Kind = "numeral"
)

// DefaultRegion is the phone numbering region used when Options.Region is empty.
const DefaultRegion = "SN"

// Rewrite is one span of the input replaced by canonical text.
type Rewrite struct {
	Kind   Kind   `json:"kind"`
	Input  string `json:"input"`
	Output string `json:"output"`
	E164   string `json:"e164,omitempty"`
}

// Analysis is the result of one normalization with its rewrites in the order
// they were applied.
type Analysis struct {
	Input    string    `json:"input"`
	Output   string    `json:"output"`
	Rewrites []Rewrite `json:"rewrites"`
}

// Source supplies the lexicon for a call. Both *lexicon.Lexicon and
// *lexicon.Registry satisfy it.
type Source interface {
	Current() *lexicon.Lexicon
}

// Options tune a Normalizer.
type Options struct {
	// SkipStandalone leaves Wolof numerals outside codes, phones, data and
	// currency untouched.
	SkipStandalone bool
	// Region is the phone numbering region for E.164 rendering.
	Region string
	Logger *slog.Logger
}

// Normalizer rewrites spoken numerals in utterances. It is safe for
// concurrent use; each call reads the lexicon once.
type Normalizer struct {
	src  Source
	opts Options
}

// New returns a Normalizer over src. A nil src uses the built-in lexicon.
func New(src Source, opts Options) *Normalizer {
	if src == nil {
		src = lexicon.Default()
	}
	if opts.Region == "" {
		opts.Region = DefaultRegion
	}
	return &Normalizer{src: src, opts: opts}
}

// Normalize returns text with every recognized numeral span in canonical form.
// Unrecognized text is kept as is; whitespace runs collapse to one space.
func (n *Normalizer) Normalize(text string) string {
	return n.Analyze(text).Output
}

// stage is one pass of the pipeline.
type stage struct {
	name string
	run  func(*pass, []Token) []Token
}

var stages = []stage{
	{"codes", (*pass).codes},
	{"phones", (*pass).phones},
	{"data", (*pass).data},
	{"currency", (*pass).currencySpans},
	{"currency-scan", (*pass).currencyScan},
	{"numerals", (*pass).standalone},
}

// Analyze normalizes text and reports what was rewritten.
func (n *Normalizer) Analyze(text string) Analysis {
	lex := n.src.Current()
	p := &pass{lex: lex, conv: NewConverter(lex), region: n.opts.Region}

	toks := freezeCanonical(Tokenize(text))
	for _, s := range stages {
		if s.name == "numerals" && n.opts.SkipStandalone {
			continue
		}
		toks = s.run(p, toks)
	}

	out := strings.Join(strings.Fields(joinTokens(toks)), " ")
	if n.opts.Logger != nil {
		for _, r := range p.rewrites {
			n.opts.Logger.Debug("rewrite", "kind", r.Kind, "input", r.Input, "output", r.Output)
		}
	}
	if p.rewrites == nil {
		p.rewrites = []Rewrite{}
	}
	return Analysis{Input: text, Output: out, Rewrites: p.rewrites}
}

// freezeCanonical freezes tokens that already are a canonical form on their
// own ("#205#", "5Go/mois") so no pass reads into them.
func freezeCanonical(toks []Token) []Token {
	for i, t := range toks {
		if _, ok := Canonical(t.Text); ok {
			toks[i] = Token{Text: t.Text, Key: t.Text, Fold: t.Text, Frozen: true}
		}
	}
	return toks
}

// pass holds the state of one Analyze call.
type pass struct {
	lex      *lexicon.Lexicon
	conv     *Converter
	region   string
	rewrites []Rewrite
}

func (p *pass) record(kind Kind, input []Token, output, e164 string) {
	p.rewrites = append(p.rewrites, Rewrite{
		Kind:   kind,
		Input:  joinTokens(input),
		Output: output,
		E164:   e164,
	})
}

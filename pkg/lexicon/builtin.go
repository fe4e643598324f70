// CLAUDE:SUMMARY Built-in Wolof/French numeral tables and telecom marker vocabularies; Default() lexicon.
package lexicon

import "sync"

// Wolof and French words the engine refers to by name.
const (
	WordBenn   = "benn"
	WordJuroom = "juróom"
	WordDerem  = "dërëm"
	WordCent   = "cent"
	WordEt     = "et"
	WordDash   = "-"
	WordPar    = "par"
	WordMois   = "mois"
	WordSlash  = "/"
)

// Canonical marker symbols.
const (
	SymbolHash = "#"
	SymbolStar = "*"
	SymbolGo   = "Go"
	SymbolMo   = "Mo"
	SymbolF    = "F"
	SymbolFCFA = "FCFA"
)

func numerals(c Class, words map[string]int64) []Entry {
	out := make([]Entry, 0, len(words))
	for w, v := range words {
		out = append(out, Entry{Word: w, Value: v, Class: c})
	}
	return out
}

func markers(c Class, symbol string, words ...string) []Entry {
	out := make([]Entry, 0, len(words))
	for _, w := range words {
		out = append(out, Entry{Word: w, Class: c, Symbol: symbol})
	}
	return out
}

// Builtin returns the built-in entries. The slice is freshly allocated.
func Builtin() []Entry {
	var out []Entry

	// Base-5 Wolof: 1-5, with the -i linking forms used before a multiplier.
	out = append(out, numerals(WolofUnit, map[string]int64{
		"tus": 0,
		"benn": 1, "ñaar": 2, "ñett": 3, "ñent": 4, "juróom": 5,
		"benni": 1, "ñaari": 2, "ñetti": 3, "ñenti": 4, "juróomi": 5,
	})...)
	out = append(out, numerals(WolofTen, map[string]int64{"fukk": 10, "fukki": 10})...)
	out = append(out, numerals(WolofHundred, map[string]int64{"téeméer": 100, "téeméeri": 100})...)
	out = append(out, numerals(WolofThousand, map[string]int64{"junni": 1000})...)
	out = append(out, numerals(WolofSpecial, map[string]int64{"fanweer": 30})...)
	out = append(out, numerals(WolofLarge, map[string]int64{
		"fukki junni":    10_000,
		"téeméeri junni": 100_000,
		"tamndareet":     1_000_000,
		"tamñareet":      1_000_000_000,
		"miliyard":       1_000_000_000,
	})...)

	out = append(out, numerals(FrenchUnit, map[string]int64{
		"zéro": 0, "zero": 0, "un": 1, "une": 1, "deux": 2, "trois": 3,
		"quatre": 4, "cinq": 5, "six": 6, "sept": 7, "huit": 8, "neuf": 9,
		"dix": 10, "onze": 11, "douze": 12, "treize": 13, "quatorze": 14,
		"quinze": 15, "seize": 16, "dix-sept": 17, "dix-huit": 18, "dix-neuf": 19,
	})...)
	out = append(out, numerals(FrenchTen, map[string]int64{
		"vingt": 20, "trente": 30, "quarante": 40, "cinquante": 50,
		"soixante": 60, "soixante-dix": 70, "quatre-vingt": 80,
		"quatre-vingts": 80, "quatre-vingt-dix": 90,
	})...)
	out = append(out, numerals(FrenchMultiplier, map[string]int64{
		"cent": 100, "cents": 100, "mille": 1000,
		"million": 1_000_000, "millions": 1_000_000,
		"milliard": 1_000_000_000, "milliards": 1_000_000_000,
	})...)

	out = append(out, markers(Connector, "", "ak", "et", "you", "manqué")...)
	out = append(out, Entry{Word: WordDerem, Value: 5, Class: CountUnit})

	out = append(out, markers(CodeMarker, SymbolHash, "dièse", "hash", "#")...)
	out = append(out, markers(CodeMarker, SymbolStar, "étoile", "star", "*")...)
	out = append(out, markers(CodeFiller, "", "tapez", "composer", "appuyez", "sur")...)

	out = append(out, markers(DataUnitMarker, SymbolGo, "go", "giga", "gigas", "gigaoctet", "gigaoctets")...)
	out = append(out, markers(DataUnitMarker, SymbolMo, "mo", "mega", "megas", "megaoctet", "megaoctets")...)

	out = append(out, markers(CurrencyMarker, SymbolFCFA, "fcfa", "francs cfa", "franc cfa")...)
	out = append(out, markers(CurrencyMarker, SymbolF, "francs", "franc", "f")...)
	return out
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the lexicon built from Builtin. It is built once.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		b := NewBuilder()
		if err := b.AddAll(Builtin()); err != nil {
			panic("lexicon: invalid builtin table: " + err.Error())
		}
		defaultLex = b.Build()
	})
	return defaultLex
}

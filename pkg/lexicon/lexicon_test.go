package lexicon

import (
	"errors"
	"testing"
)

func TestDefaultNumerals(t *testing.T) {
	lex := Default()
	tests := []struct {
		word  string
		value int64
		class Class
	}{
		{"benn", 1, WolofUnit},
		{"ñaari", 2, WolofUnit},
		{"juróom", 5, WolofUnit},
		{"tus", 0, WolofUnit},
		{"fukk", 10, WolofTen},
		{"fukki", 10, WolofTen},
		{"téeméeri", 100, WolofHundred},
		{"junni", 1000, WolofThousand},
		{"fanweer", 30, WolofSpecial},
		{"tamndareet", 1_000_000, WolofLarge},
		{"Deux", 2, FrenchUnit},
		{"dix-sept", 17, FrenchUnit},
		{"quatre-vingts", 80, FrenchTen},
		{"cents", 100, FrenchMultiplier},
		{"MILLE", 1000, FrenchMultiplier},
	}
	for _, tt := range tests {
		e, ok := lex.Classify(tt.word)
		if !ok {
			t.Errorf("Classify(%q) not found", tt.word)
			continue
		}
		if e.Value != tt.value || e.Class != tt.class {
			t.Errorf("Classify(%q) = %d/%s, want %d/%s", tt.word, e.Value, e.Class, tt.value, tt.class)
		}
	}
}

func TestDiacriticsSignificant(t *testing.T) {
	lex := Default()
	if _, ok := lex.Numeral(Key("naar")); ok {
		t.Error("naar should not match ñaar")
	}
	// Decomposed ó (o + U+0301) must match the precomposed entry.
	if e, ok := lex.Numeral(Key("juro\u0301om")); !ok || e.Value != 5 {
		t.Errorf("decomposed juróom = %+v, %v", e, ok)
	}
}

func TestMarkersFolded(t *testing.T) {
	lex := Default()
	tests := []struct {
		word   string
		class  Class
		symbol string
	}{
		{"dièse", CodeMarker, SymbolHash},
		{"DIESE", CodeMarker, SymbolHash},
		{"#", CodeMarker, SymbolHash},
		{"Étoile", CodeMarker, SymbolStar},
		{"méga", DataUnitMarker, SymbolMo},
		{"giga", DataUnitMarker, SymbolGo},
		{"FCFA", CurrencyMarker, SymbolFCFA},
		{"francs", CurrencyMarker, SymbolF},
		{"tapez", CodeFiller, ""},
	}
	for _, tt := range tests {
		e, ok := lex.Marker(Fold(tt.word))
		if !ok {
			t.Errorf("Marker(%q) not found", tt.word)
			continue
		}
		if e.Class != tt.class || e.Symbol != tt.symbol {
			t.Errorf("Marker(%q) = %s %q, want %s %q", tt.word, e.Class, e.Symbol, tt.class, tt.symbol)
		}
	}
}

func TestPhrase(t *testing.T) {
	lex := Default()
	if e, ok := lex.Phrase("francs", "CFA"); !ok || e.Symbol != SymbolFCFA {
		t.Errorf("Phrase(francs CFA) = %+v, %v", e, ok)
	}
	if e, ok := lex.Phrase("téeméeri", "junni"); !ok || e.Value != 100_000 {
		t.Errorf("Phrase(téeméeri junni) = %+v, %v", e, ok)
	}
	if _, ok := lex.Phrase("ñaar", "fukk"); ok {
		t.Error("ñaar fukk is a pattern, not a phrase entry")
	}
	if _, ok := lex.Phrase(); ok {
		t.Error("empty phrase should not match")
	}
	if lex.MaxPhraseWords() != 2 {
		t.Errorf("MaxPhraseWords = %d, want 2", lex.MaxPhraseWords())
	}
}

func TestClassifyCompound(t *testing.T) {
	lex := Default()
	tests := []struct {
		word  string
		value int64
		ok    bool
	}{
		{"quatre-vingt-dix", 90, true},
		{"quatre-vingt-huit", 88, true},
		{"quatre-vingt-dix-sept", 97, true},
		{"cinquante-quatre", 54, true},
		{"vingt-et-un", 21, true},
		{"trente-trois", 33, true},
		{"soixante-dix-neuf", 79, true},
		{"deux-cent-cinq", 205, true},
		{"deux-mille", 2000, true},
		{"cinq-cents", 500, true},
		{"fukk-benn", 0, false},
		{"bonjour-monsieur", 0, false},
		{"et-un", 0, false},
		{"vingt", 0, false},
		{"a-b-c-d-e-f-g-h-i", 0, false},
	}
	for _, tt := range tests {
		e, ok := lex.ClassifyCompound(tt.word)
		if ok != tt.ok {
			t.Errorf("ClassifyCompound(%q) ok = %v, want %v", tt.word, ok, tt.ok)
			continue
		}
		if ok && e.Value != tt.value {
			t.Errorf("ClassifyCompound(%q) = %d, want %d", tt.word, e.Value, tt.value)
		}
	}
}

func TestCompoundClass(t *testing.T) {
	lex := Default()
	e, _ := lex.ClassifyCompound("deux-cent-cinq")
	if e.Class != FrenchMultiplier {
		t.Errorf("deux-cent-cinq class = %s", e.Class)
	}
	e, _ = lex.ClassifyCompound("trente-deux")
	if e.Class != FrenchTen {
		t.Errorf("trente-deux class = %s", e.Class)
	}
}

func TestClassifyAll(t *testing.T) {
	lex := Default()
	// "et" is a connector only; "#" a code marker only.
	all := lex.ClassifyAll("et")
	if len(all) != 1 || all[0].Class != Connector {
		t.Errorf("ClassifyAll(et) = %+v", all)
	}
	if got := lex.ClassifyAll("bonjour"); len(got) != 0 {
		t.Errorf("ClassifyAll(bonjour) = %+v", got)
	}
	if e, ok := lex.Classify("dërëm"); !ok || e.Class != CountUnit || e.Value != 5 {
		t.Errorf("Classify(dërëm) = %+v, %v", e, ok)
	}
}

func TestBuilderOverride(t *testing.T) {
	b := NewBuilder()
	if err := b.Add(Entry{Word: "benn", Value: 1, Class: WolofUnit}); err != nil {
		t.Fatal(err)
	}
	if err := b.Add(Entry{Word: "BENN", Value: 7, Class: WolofUnit}); err != nil {
		t.Fatal(err)
	}
	lex := b.Build()
	if lex.Collisions() != 1 {
		t.Errorf("Collisions = %d, want 1", lex.Collisions())
	}
	if e, _ := lex.Lookup(WolofUnit, "benn"); e.Value != 7 {
		t.Errorf("last entry should win, got %d", e.Value)
	}
	if lex.Len() != 1 {
		t.Errorf("Len = %d, want 1", lex.Len())
	}
}

func TestBuilderSnapshot(t *testing.T) {
	b := NewBuilder()
	b.Add(Entry{Word: "benn", Value: 1, Class: WolofUnit})
	lex := b.Build()
	b.Add(Entry{Word: "ñaar", Value: 2, Class: WolofUnit})
	if lex.Len() != 1 {
		t.Errorf("built lexicon changed after Add: Len = %d", lex.Len())
	}
}

func TestBuilderRejects(t *testing.T) {
	b := NewBuilder()
	if err := b.Add(Entry{Word: "  ", Class: WolofUnit}); err == nil {
		t.Error("empty word should fail")
	}
	if err := b.Add(Entry{Word: "x", Class: Class(99)}); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("unknown class err = %v", err)
	}
	if err := b.Add(Entry{Word: "x", Value: -1, Class: FrenchUnit}); err == nil {
		t.Error("negative value should fail")
	}
}

func TestEntriesSorted(t *testing.T) {
	entries := Default().Entries()
	if len(entries) != Default().Len() {
		t.Fatalf("Entries len = %d, Len = %d", len(entries), Default().Len())
	}
	for i := 1; i < len(entries); i++ {
		a, b := entries[i-1], entries[i]
		if a.Class > b.Class || (a.Class == b.Class && a.Word > b.Word) {
			t.Fatalf("entries not sorted at %d: %+v > %+v", i, a, b)
		}
	}
}

func TestClassNames(t *testing.T) {
	for _, c := range AllClasses() {
		parsed, err := ParseClass(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseClass(%q) = %v, %v", c.String(), parsed, err)
		}
	}
	if _, err := ParseClass("roman_numeral"); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("ParseClass unknown err = %v", err)
	}
	var c Class
	if err := c.UnmarshalText([]byte("wolof_ten")); err != nil || c != WolofTen {
		t.Errorf("UnmarshalText = %v, %v", c, err)
	}
}

func TestClassPredicates(t *testing.T) {
	for _, c := range AllClasses() {
		if c.IsWolof() && c.IsFrench() {
			t.Errorf("%s is both Wolof and French", c)
		}
		if (c.IsWolof() || c.IsFrench()) != c.IsNumeral() {
			t.Errorf("%s: IsNumeral disagrees with language predicates", c)
		}
	}
}

func TestKeyAndFold(t *testing.T) {
	tests := []struct {
		in, key, folded string
	}{
		{"Dièse", "dièse", "diese"},
		{"ÑAAR", "ñaar", "naar"},
		{"téeméer", "téeméer", "teemeer"},
		{"go", "go", "go"},
	}
	for _, tt := range tests {
		if got := Key(tt.in); got != tt.key {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.key)
		}
		if got := Fold(tt.in); got != tt.folded {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.folded)
		}
	}
}

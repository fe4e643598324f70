package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSVPositional(t *testing.T) {
	src := "benn,1,wolof_unit\nfukk,10,wolof_ten\n\ndièse,,code_marker,#\n"
	entries, err := ReadCSV(strings.NewReader(src), FormatSpec{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[1].Word != "fukk" || entries[1].Value != 10 || entries[1].Class != WolofTen {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	if entries[2].Symbol != "#" {
		t.Errorf("symbol = %q, want #", entries[2].Symbol)
	}
}

func TestReadCSVDefaultClass(t *testing.T) {
	src := "mot;valeur\nbeñ;1\nnaar;2\n"
	spec := FormatSpec{
		Delimiter:    ";",
		HasHeader:    true,
		WordColumn:   "mot",
		ValueColumn:  "valeur",
		DefaultClass: "wolof_unit",
	}
	entries, err := ReadCSV(strings.NewReader(src), spec)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Class != WolofUnit {
			t.Errorf("%s class = %s, want wolof_unit", e.Word, e.Class)
		}
	}
}

func TestReadCSVLatin1(t *testing.T) {
	// "dièse" in ISO-8859-1: è = 0xE8.
	src := "word,class,symbol\ndi\xe8se,code_marker,#\n"
	entries, err := ReadCSV(strings.NewReader(src), FormatSpec{HasHeader: true, Encoding: "iso-8859-1"})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(entries) != 1 || entries[0].Word != "dièse" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		spec FormatSpec
	}{
		{"no class", "benn,1\n", FormatSpec{}},
		{"bad class", "benn,1,roman\n", FormatSpec{}},
		{"bad value", "benn,one,wolof_unit\n", FormatSpec{}},
		{"missing word column", "a,b\nx,y\n", FormatSpec{HasHeader: true}},
		{"bad encoding", "benn,1,wolof_unit\n", FormatSpec{Encoding: "klingon"}},
		{"bad default class", "benn,1\n", FormatSpec{DefaultClass: "nope"}},
	}
	for _, tt := range tests {
		if _, err := ReadCSV(strings.NewReader(tt.src), tt.spec); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadPackPrefersGob(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte("id: p\nsource: test\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "data.csv"), []byte("benn,1,wolof_unit\n"), 0o644)
	if err := SaveGob([]Entry{{Word: "ñaar", Value: 2, Class: WolofUnit}}, filepath.Join(dir, "data.gob")); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}

	p, err := LoadPack(dir)
	if err != nil {
		t.Fatalf("LoadPack: %v", err)
	}
	if len(p.Entries) != 1 || p.Entries[0].Word != "ñaar" {
		t.Errorf("entries = %+v, want gob content", p.Entries)
	}
}

func TestLoadPackMissingData(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte("id: p\n"), 0o644)
	if _, err := LoadPack(dir); err == nil {
		t.Error("expected error for missing data.csv")
	}
}

func TestLoadManifestMissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	os.WriteFile(path, []byte("version: \"1\"\n"), 0o644)
	if _, err := LoadManifest(path); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestWriteManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	m := &Manifest{
		ID:       "wolof-extra",
		Version:  "2",
		Language: "wo",
		Source:   "test",
		DataFile: "data.csv",
		Format:   FormatSpec{Delimiter: ";", HasHeader: true, DefaultClass: "wolof_unit"},
		Entries:  []Entry{{Word: "fanweer", Value: 30, Class: WolofSpecial}},
	}
	if err := WriteManifest(path, m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	got, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if got.ID != m.ID || got.Format.Delimiter != ";" || got.Format.DefaultClass != "wolof_unit" {
		t.Errorf("manifest = %+v", got)
	}
	if len(got.Entries) != 1 || got.Entries[0].Class != WolofSpecial {
		t.Errorf("entries = %+v", got.Entries)
	}
}

func TestSaveGobLoadGobRoundTrip(t *testing.T) {
	entries := []Entry{
		{Word: "juróom", Value: 5, Class: WolofUnit},
		{Word: "francs cfa", Class: CurrencyMarker, Symbol: SymbolFCFA},
	}
	path := filepath.Join(t.TempDir(), "data.gob")
	if err := SaveGob(entries, path); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}
	got, err := loadGob(path)
	if err != nil {
		t.Fatalf("loadGob: %v", err)
	}
	if len(got) != 2 || got[1].Symbol != SymbolFCFA || got[0].Value != 5 {
		t.Errorf("entries = %+v", got)
	}
}

func TestLoadGobErrors(t *testing.T) {
	if _, err := loadGob(filepath.Join(t.TempDir(), "absent.gob")); err == nil {
		t.Error("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.gob")
	os.WriteFile(path, []byte("not gob"), 0o644)
	if _, err := loadGob(path); err == nil {
		t.Error("expected error for corrupt file")
	}
}

package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func setupRegistry(t *testing.T) (*Registry, string) {
	t.Helper()
	dir := t.TempDir()

	// Pack 1: Wolof spelling variants, CSV with header.
	p1 := filepath.Join(dir, "wolof-variants")
	os.MkdirAll(p1, 0o755)
	os.WriteFile(filepath.Join(p1, "manifest.yaml"), []byte(`id: wolof-variants
version: "1.0"
language: wo
source: test
data_file: data.csv
format:
  delimiter: ";"
  has_header: true
`), 0o644)
	os.WriteFile(filepath.Join(p1, "data.csv"), []byte("word;value;class\nbeñ;1;wolof_unit\nnaar;2;wolof_unit\nteemeer;100;wolof_hundred\n"), 0o644)

	// Pack 2: inline entries only, overriding a builtin marker.
	p2 := filepath.Join(dir, "orange-markers")
	os.MkdirAll(p2, 0o755)
	os.WriteFile(filepath.Join(p2, "manifest.yaml"), []byte(`id: orange-markers
version: "1.0"
language: fr
source: test
entries:
  - word: gigaoctets
    class: data_unit_marker
    symbol: Go
  - word: pressez
    class: code_filler
`), 0o644)

	// Not a pack: no manifest.
	os.MkdirAll(filepath.Join(dir, "scratch"), 0o755)

	reg := NewRegistry(dir, nil)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg, dir
}

func TestRegistryLoad(t *testing.T) {
	reg, _ := setupRegistry(t)

	if reg.PackCount() != 2 {
		t.Errorf("PackCount = %d, want 2", reg.PackCount())
	}
	if reg.TotalEntries() <= Default().Len() {
		t.Errorf("TotalEntries = %d, want > builtin %d", reg.TotalEntries(), Default().Len())
	}
	if e, ok := reg.Current().Numeral(Key("naar")); !ok || e.Value != 2 {
		t.Errorf("pack variant naar = %+v, %v", e, ok)
	}
}

func TestRegistryBeforeLoad(t *testing.T) {
	reg := NewRegistry("", nil)
	if reg.Current() != Default() {
		t.Error("unloaded registry should serve Default")
	}
	if reg.PackCount() != 0 {
		t.Errorf("PackCount = %d, want 0", reg.PackCount())
	}
}

func TestRegistryMissingDir(t *testing.T) {
	reg := NewRegistry(filepath.Join(t.TempDir(), "absent"), nil)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load on missing dir: %v", err)
	}
	if reg.TotalEntries() != Default().Len() {
		t.Errorf("TotalEntries = %d, want %d", reg.TotalEntries(), Default().Len())
	}
}

func TestRegistryClassify(t *testing.T) {
	reg, _ := setupRegistry(t)

	result := reg.Classify("Naar")
	if result.Key != "naar" {
		t.Errorf("Key = %q, want naar", result.Key)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(result.Matches))
	}
	if result.Matches[0].Source != "wolof-variants" {
		t.Errorf("Source = %q, want wolof-variants", result.Matches[0].Source)
	}

	result = reg.Classify("ñaar")
	if len(result.Matches) != 1 || result.Matches[0].Source != SourceBuiltin {
		t.Errorf("ñaar matches = %+v", result.Matches)
	}

	result = reg.Classify("cinquante-quatre")
	if len(result.Matches) != 1 || result.Matches[0].Source != SourceCompound || result.Matches[0].Value != 54 {
		t.Errorf("cinquante-quatre matches = %+v", result.Matches)
	}

	result = reg.Classify("Dièse")
	if result.Folded != "diese" {
		t.Errorf("Folded = %q, want diese", result.Folded)
	}
	if len(result.Matches) != 1 || result.Matches[0].Symbol != SymbolHash {
		t.Errorf("dièse matches = %+v", result.Matches)
	}
}

func TestRegistryClassifyNoMatch(t *testing.T) {
	reg, _ := setupRegistry(t)

	result := reg.Classify("bonjour")
	if result.Matches == nil || len(result.Matches) != 0 {
		t.Errorf("matches = %v, want empty non-nil", result.Matches)
	}
}

func TestRegistryOverrideSource(t *testing.T) {
	reg, _ := setupRegistry(t)

	result := reg.Classify("gigaoctets")
	if len(result.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(result.Matches))
	}
	if result.Matches[0].Source != "orange-markers" {
		t.Errorf("Source = %q, want orange-markers", result.Matches[0].Source)
	}
}

func TestListPacks(t *testing.T) {
	reg, _ := setupRegistry(t)

	infos := reg.ListPacks()
	if len(infos) != 2 {
		t.Fatalf("ListPacks = %d, want 2", len(infos))
	}
	if infos[0].ID != "orange-markers" || infos[1].ID != "wolof-variants" {
		t.Errorf("order = %s, %s", infos[0].ID, infos[1].ID)
	}
	if infos[1].Entries != 3 {
		t.Errorf("wolof-variants entries = %d, want 3", infos[1].Entries)
	}
	if infos[0].Language != "fr" {
		t.Errorf("Language = %q, want fr", infos[0].Language)
	}
}

func TestClassCounts(t *testing.T) {
	reg, _ := setupRegistry(t)

	counts := reg.ClassCounts()
	if counts["code_filler"] != 5 {
		t.Errorf("code_filler = %d, want 5", counts["code_filler"])
	}
	if _, ok := counts["bogus"]; ok {
		t.Error("unexpected class name")
	}
}

func TestReload(t *testing.T) {
	reg, dir := setupRegistry(t)

	before := reg.Current()

	p3 := filepath.Join(dir, "extra")
	os.MkdirAll(p3, 0o755)
	os.WriteFile(filepath.Join(p3, "manifest.yaml"), []byte(`id: extra
version: "1.0"
source: test
entries:
  - word: tamñareet
    value: 1000000000
    class: wolof_large
  - word: benn-benn
    value: 11
    class: wolof_special
`), 0o644)

	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if reg.PackCount() != 3 {
		t.Errorf("PackCount after reload = %d, want 3", reg.PackCount())
	}
	if e, ok := reg.Current().Numeral(Key("benn-benn")); !ok || e.Value != 11 {
		t.Errorf("new entry = %+v, %v", e, ok)
	}
	// The previous snapshot is untouched.
	if _, ok := before.Numeral(Key("benn-benn")); ok {
		t.Error("old snapshot sees new pack entry")
	}
}

func TestReloadInvalidKeepsCurrent(t *testing.T) {
	reg, dir := setupRegistry(t)
	before := reg.Current()

	bad := filepath.Join(dir, "bad")
	os.MkdirAll(bad, 0o755)
	os.WriteFile(filepath.Join(bad, "manifest.yaml"), []byte(`id: bad
entries:
  - word: x
    class: roman_numeral
`), 0o644)

	if err := reg.Reload(); err == nil {
		t.Fatal("Reload with invalid class should fail")
	}
	if reg.Current() != before {
		t.Error("failed reload replaced the current lexicon")
	}
}

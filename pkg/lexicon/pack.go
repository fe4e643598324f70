package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Pack is one loaded lexicon extension.
type Pack struct {
	Manifest *Manifest
	Entries  []Entry
}

// LoadPack reads dir/manifest.yaml plus its data: data.gob when present,
// otherwise the CSV data file. Inline manifest entries come first.
func LoadPack(dir string) (*Pack, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	p := &Pack{Manifest: manifest}
	p.Entries = append(p.Entries, manifest.Entries...)

	// Gob takes priority over CSV.
	gobPath := filepath.Join(dir, "data.gob")
	if _, err := os.Stat(gobPath); err == nil {
		entries, err := loadGob(gobPath)
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", manifest.ID, err)
		}
		p.Entries = append(p.Entries, entries...)
		return p, nil
	}

	if manifest.DataFile == "" {
		return p, nil
	}
	f, err := os.Open(filepath.Join(dir, manifest.DataFile))
	if err != nil {
		return nil, fmt.Errorf("pack %s: open data file: %w", manifest.ID, err)
	}
	defer f.Close()

	entries, err := ReadCSV(f, manifest.Format)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", manifest.ID, err)
	}
	p.Entries = append(p.Entries, entries...)
	return p, nil
}

// ReadCSV decodes lexicon rows. Columns default to word, value, class,
// symbol by name when the file has a header, by position otherwise.
func ReadCSV(src io.Reader, spec FormatSpec) ([]Entry, error) {
	// Transcode non-UTF-8 encodings declared in the manifest.
	reader := src
	if enc := spec.Encoding; enc != "" && !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", enc, err)
		}
		reader = transform.NewReader(src, e.NewDecoder())
	}

	r := csv.NewReader(reader)
	if delim := spec.Delimiter; delim != "" {
		r.Comma = []rune(delim)[0]
	}
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	cols := map[string]int{"word": 0, "value": 1, "class": 2, "symbol": 3}
	if spec.HasHeader {
		header, err := r.Read()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		cols = map[string]int{}
		for i, h := range header {
			h = strings.TrimSpace(h)
			switch h {
			case orDefault(spec.WordColumn, "word"):
				cols["word"] = i
			case orDefault(spec.ValueColumn, "value"):
				cols["value"] = i
			case orDefault(spec.ClassColumn, "class"):
				cols["class"] = i
			case orDefault(spec.SymbolColumn, "symbol"):
				cols["symbol"] = i
			}
		}
		if _, ok := cols["word"]; !ok {
			return nil, fmt.Errorf("word column %q not found in header %v", orDefault(spec.WordColumn, "word"), header)
		}
	}

	var defaultClass Class
	if spec.DefaultClass != "" {
		c, err := ParseClass(spec.DefaultClass)
		if err != nil {
			return nil, err
		}
		defaultClass = c
	}

	var entries []Entry
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		word := field(record, cols, "word")
		if word == "" {
			continue
		}
		e := Entry{Word: word, Class: defaultClass, Symbol: field(record, cols, "symbol")}
		if name := field(record, cols, "class"); name != "" {
			c, err := ParseClass(name)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
			e.Class = c
		}
		if e.Class == 0 {
			return nil, fmt.Errorf("row %d: no class for %q", line, word)
		}
		if v := field(record, cols, "value"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: value %q: %w", line, v, err)
			}
			e.Value = n
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}

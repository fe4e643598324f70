package lexicon

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry owns the current Lexicon: the built-in tables plus every pack
// found under a directory. Reload builds a new Lexicon and swaps it in;
// callers holding the previous one keep a consistent snapshot.
type Registry struct {
	mu     sync.RWMutex
	lex    *Lexicon
	packs  []*Pack
	origin map[string]string // class/key -> pack ID of the winning entry
	dir    string
	logger *slog.Logger
}

// NewRegistry creates a registry for the given pack directory. An empty dir
// means built-in tables only. The registry serves Default until Load is called.
func NewRegistry(dir string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		lex:    Default(),
		dir:    dir,
		logger: logger,
	}
}

// Load scans the pack directory and rebuilds the lexicon.
// Packs are applied in directory-name order after the built-in tables.
func (r *Registry) Load() error {
	packs, err := r.scan()
	if err != nil {
		return err
	}

	b := NewBuilder()
	if err := b.AddAll(Builtin()); err != nil {
		return fmt.Errorf("builtin lexicon: %w", err)
	}
	origin := make(map[string]string)
	for _, p := range packs {
		if err := b.AddAll(p.Entries); err != nil {
			return fmt.Errorf("pack %s: %w", p.Manifest.ID, err)
		}
		for _, e := range p.Entries {
			origin[originKey(e)] = p.Manifest.ID
		}
	}
	lex := b.Build()
	if n := lex.Collisions(); n > 0 {
		r.logger.Warn("lexicon key overrides", "overrides", n, "packs", len(packs))
	}

	r.mu.Lock()
	r.lex = lex
	r.packs = packs
	r.origin = origin
	r.mu.Unlock()
	return nil
}

// Reload reloads all packs from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

func (r *Registry) scan() ([]*Pack, error) {
	if r.dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Info("no lexicon pack directory, using built-in tables", "dir", r.dir)
			return nil, nil
		}
		return nil, fmt.Errorf("read lexicon dir %s: %w", r.dir, err)
	}

	var packs []*Pack
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.dir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, "manifest.yaml")); err != nil {
			continue
		}
		p, err := LoadPack(dir)
		if err != nil {
			return nil, fmt.Errorf("load pack %s: %w", entry.Name(), err)
		}
		packs = append(packs, p)
	}
	return packs, nil
}

// Current returns the lexicon snapshot in effect.
func (r *Registry) Current() *Lexicon {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lex
}

func originKey(e Entry) string {
	return e.Class.String() + "/" + phraseKey(e.Class, e.Word)
}

// Sources of entries that do not come from a pack.
const (
	SourceBuiltin  = "builtin"
	SourceCompound = "compound"
)

// Match is one lexicon hit for a classified word.
type Match struct {
	Source string `json:"source"`
	Class  Class  `json:"class"`
	Word   string `json:"word"`
	Value  int64  `json:"value"`
	Symbol string `json:"symbol,omitempty"`
}

// ClassifyResult is the response for a single word classification.
type ClassifyResult struct {
	Word    string  `json:"word"`
	Key     string  `json:"key"`
	Folded  string  `json:"folded"`
	Matches []Match `json:"matches"`
}

// Classify looks word up in every class of the current lexicon.
func (r *Registry) Classify(word string) *ClassifyResult {
	r.mu.RLock()
	lex, origin := r.lex, r.origin
	r.mu.RUnlock()

	result := &ClassifyResult{
		Word:    word,
		Key:     Key(word),
		Folded:  Fold(word),
		Matches: []Match{},
	}
	for _, e := range lex.ClassifyAll(word) {
		source := SourceBuiltin
		if id, ok := origin[originKey(e)]; ok {
			source = id
		} else if _, ok := lex.Lookup(e.Class, e.Word); !ok {
			source = SourceCompound
		}
		result.Matches = append(result.Matches, Match{
			Source: source,
			Class:  e.Class,
			Word:   e.Word,
			Value:  e.Value,
			Symbol: e.Symbol,
		})
	}
	return result
}

// PackInfo is the public metadata for a loaded pack.
type PackInfo struct {
	ID          string `json:"id"`
	Version     string `json:"version"`
	Language    string `json:"language"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
	SourceURL   string `json:"source_url,omitempty"`
	License     string `json:"license"`
	Entries     int    `json:"entries"`
}

// ListPacks returns metadata for all loaded packs, sorted by ID.
func (r *Registry) ListPacks() []PackInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]PackInfo, 0, len(r.packs))
	for _, p := range r.packs {
		infos = append(infos, PackInfo{
			ID:          p.Manifest.ID,
			Version:     p.Manifest.Version,
			Language:    p.Manifest.Language,
			Description: p.Manifest.Description,
			Source:      p.Manifest.Source,
			SourceURL:   p.Manifest.SourceURL,
			License:     p.Manifest.License,
			Entries:     len(p.Entries),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// ClassCounts returns the number of entries per class in the current lexicon.
func (r *Registry) ClassCounts() map[string]int {
	lex := r.Current()
	out := make(map[string]int)
	for _, c := range AllClasses() {
		if n := lex.ClassLen(c); n > 0 {
			out[c.String()] = n
		}
	}
	return out
}

// PackCount returns the number of loaded packs.
func (r *Registry) PackCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.packs)
}

// TotalEntries returns the number of entries in the current lexicon.
func (r *Registry) TotalEntries() int {
	return r.Current().Len()
}

// CLAUDE:SUMMARY Immutable numeral lexicon: per-class exact-match tables, phrase entries, French hyphen compounds.
package lexicon

import (
	"fmt"
	"sort"
	"strings"
)

// maxValue bounds compound accumulation, as numtext-style parsers do, so
// adversarial hyphen chains cannot overflow int64.
const maxValue int64 = 1_000_000_000_000_000_000

// maxCompoundParts caps the number of hyphen segments considered.
const maxCompoundParts = 8

// Entry is one word, hyphen compound or space-separated phrase.
// Symbol is the canonical rendering of marker entries ("#", "Go", "FCFA").
type Entry struct {
	Word   string `json:"word" yaml:"word"`
	Value  int64  `json:"value" yaml:"value"`
	Class  Class  `json:"class" yaml:"class"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

// Lexicon is a read-only set of entries partitioned by class.
// A Lexicon never changes after Build; it is safe for concurrent use.
type Lexicon struct {
	byClass    map[Class]map[string]Entry
	maxPhrase  int
	size       int
	collisions int
}

// Builder accumulates entries. Within a class the last entry for a key wins.
type Builder struct {
	byClass    map[Class]map[string]Entry
	collisions int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{byClass: make(map[Class]map[string]Entry)}
}

// Add inserts e. It fails on an unknown class, an empty word, or a numeral
// class entry with a negative value.
func (b *Builder) Add(e Entry) error {
	word := strings.Join(strings.Fields(e.Word), " ")
	if word == "" {
		return fmt.Errorf("lexicon: empty word for class %s", e.Class)
	}
	if !validClass(e.Class) {
		return fmt.Errorf("lexicon: word %q: %w", word, ErrUnknownClass)
	}
	if e.Class.IsNumeral() && e.Value < 0 {
		return fmt.Errorf("lexicon: word %q: negative value %d", word, e.Value)
	}
	e.Word = word

	m := b.byClass[e.Class]
	if m == nil {
		m = make(map[string]Entry)
		b.byClass[e.Class] = m
	}
	key := phraseKey(e.Class, word)
	if _, exists := m[key]; exists {
		b.collisions++
	}
	m[key] = e
	return nil
}

// AddAll inserts entries in order and stops at the first error.
func (b *Builder) AddAll(entries []Entry) error {
	for _, e := range entries {
		if err := b.Add(e); err != nil {
			return err
		}
	}
	return nil
}

// Collisions returns how many Add calls replaced an existing key.
func (b *Builder) Collisions() int {
	return b.collisions
}

// Build freezes the builder contents into a Lexicon. The builder may keep
// being used; later additions do not affect the returned Lexicon.
func (b *Builder) Build() *Lexicon {
	l := &Lexicon{
		byClass:    make(map[Class]map[string]Entry, len(b.byClass)),
		maxPhrase:  1,
		collisions: b.collisions,
	}
	for c, m := range b.byClass {
		cp := make(map[string]Entry, len(m))
		for k, e := range m {
			cp[k] = e
			if n := len(strings.Fields(k)); n > l.maxPhrase {
				l.maxPhrase = n
			}
		}
		l.byClass[c] = cp
		l.size += len(cp)
	}
	return l
}

// Lookup finds word in class c. The word is keyed the way c expects.
func (l *Lexicon) Lookup(c Class, word string) (Entry, bool) {
	return l.LookupKey(c, phraseKey(c, word))
}

// LookupKey finds an already keyed word in class c: Key for numerals,
// connectors and count units, Fold for markers.
func (l *Lexicon) LookupKey(c Class, key string) (Entry, bool) {
	e, ok := l.byClass[c][key]
	return e, ok
}

// Numeral looks a keyed word up in the numeral classes, in priority order.
func (l *Lexicon) Numeral(key string) (Entry, bool) {
	for _, c := range numeralOrder {
		if e, ok := l.byClass[c][key]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// Marker looks a folded word up in the marker classes.
func (l *Lexicon) Marker(folded string) (Entry, bool) {
	for _, c := range markerClasses {
		if e, ok := l.byClass[c][folded]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// Phrase looks up a multi-word entry, numeral classes first, then markers.
func (l *Lexicon) Phrase(words ...string) (Entry, bool) {
	if len(words) == 0 || len(words) > l.maxPhrase {
		return Entry{}, false
	}
	keys := make([]string, len(words))
	folded := make([]string, len(words))
	for i, w := range words {
		keys[i] = Key(w)
		folded[i] = Fold(w)
	}
	if e, ok := l.Numeral(strings.Join(keys, " ")); ok {
		return e, true
	}
	return l.Marker(strings.Join(folded, " "))
}

// Classify returns the first entry matching word: numerals, then connectors
// and count units, then markers. Hyphen compounds are resolved as well.
func (l *Lexicon) Classify(word string) (Entry, bool) {
	all := l.ClassifyAll(word)
	if len(all) == 0 {
		return Entry{}, false
	}
	return all[0], true
}

// ClassifyAll returns every entry matching word, in lookup priority order.
func (l *Lexicon) ClassifyAll(word string) []Entry {
	key := Key(word)
	var out []Entry
	for _, c := range numeralOrder {
		if e, ok := l.byClass[c][key]; ok {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		if e, ok := l.ClassifyCompound(word); ok {
			out = append(out, e)
		}
	}
	for _, c := range []Class{Connector, CountUnit} {
		if e, ok := l.byClass[c][key]; ok {
			out = append(out, e)
		}
	}
	folded := Fold(word)
	for _, c := range markerClasses {
		if e, ok := l.byClass[c][folded]; ok {
			out = append(out, e)
		}
	}
	return out
}

// ClassifyCompound resolves a French hyphen compound: exact entry first
// ("quatre-vingt-dix"), then "quatre-vingt-X" with X a French unit, then
// accumulation of the hyphen segments ("cinquante-quatre", "vingt-et-un",
// "deux-cent-cinq").
func (l *Lexicon) ClassifyCompound(word string) (Entry, bool) {
	key := Key(word)
	if !strings.Contains(key, "-") {
		return Entry{}, false
	}
	if e, ok := l.Numeral(key); ok {
		return e, true
	}

	parts := strings.Split(key, "-")
	if len(parts) == 3 && parts[0] == "quatre" && parts[1] == "vingt" {
		if u, ok := l.byClass[FrenchUnit][parts[2]]; ok {
			return Entry{Word: key, Value: 80 + u.Value, Class: FrenchTen}, true
		}
	}

	v, ok := l.accumulate(parts)
	if !ok {
		return Entry{}, false
	}
	class := FrenchTen
	switch {
	case v >= 100:
		class = FrenchMultiplier
	case v < 20:
		class = FrenchUnit
	}
	return Entry{Word: key, Value: v, Class: class}, true
}

// accumulate sums hyphen segments the way a cardinal parser does: units and
// tens add into the current group, "cent" multiplies the group, larger
// multipliers close it. The longest compound prefix is taken at each step.
func (l *Lexicon) accumulate(parts []string) (int64, bool) {
	if len(parts) < 2 || len(parts) > maxCompoundParts {
		return 0, false
	}

	var current, group int64
	matched := 0
	for i := 0; i < len(parts); {
		if parts[i] == "et" && i > 0 && i < len(parts)-1 {
			i++
			continue
		}
		next := -1
		var e Entry
		for j := len(parts); j > i; j-- {
			cand, ok := l.Numeral(strings.Join(parts[i:j], "-"))
			if ok && cand.Class.IsFrench() {
				e, next = cand, j
				break
			}
		}
		if next < 0 {
			return 0, false
		}

		switch {
		case e.Value < 100:
			group += e.Value
		case e.Value == 100:
			if group == 0 {
				group = 1
			}
			if group > maxValue/100 {
				return 0, false
			}
			group *= 100
		default:
			if group == 0 {
				group = 1
			}
			if group > maxValue/e.Value {
				return 0, false
			}
			product := group * e.Value
			if current > maxValue-product {
				return 0, false
			}
			current += product
			group = 0
		}
		matched++
		i = next
	}
	if matched < 2 {
		return 0, false
	}
	return current + group, true
}

// MaxPhraseWords is the word count of the longest phrase entry.
func (l *Lexicon) MaxPhraseWords() int {
	return l.maxPhrase
}

// Len returns the number of distinct entries.
func (l *Lexicon) Len() int {
	return l.size
}

// ClassLen returns the number of entries in class c.
func (l *Lexicon) ClassLen(c Class) int {
	return len(l.byClass[c])
}

// Collisions returns how many entries were overridden while building.
func (l *Lexicon) Collisions() int {
	return l.collisions
}

// Entries returns all entries sorted by class then word.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, 0, l.size)
	for _, m := range l.byClass {
		for _, e := range m {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Class != out[j].Class {
			return out[i].Class < out[j].Class
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// phraseKey keys every word of a phrase and joins them with single spaces.
func phraseKey(c Class, phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = keyFor(c, w)
	}
	return strings.Join(words, " ")
}

func validClass(c Class) bool {
	for _, k := range AllClasses() {
		if k == c {
			return true
		}
	}
	return false
}

// Current returns l, so a fixed Lexicon can be used wherever a Registry is.
func (l *Lexicon) Current() *Lexicon {
	return l
}

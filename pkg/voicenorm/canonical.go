// CLAUDE:SUMMARY Named regex recognizers with validators for canonical output forms (codes, data, phones, grouped amounts, prices).
package voicenorm

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	patternCode       = "code"
	patternDataAmount = "data_amount"
	patternDataRate   = "data_rate"
	patternPhone      = "phone"
	patternAmount     = "amount"
	patternPrice      = "price"
)

// patternSpec declares one canonical form. Validator names a check run after
// the regex matches.
type patternSpec struct {
	Name      string
	Kind      Kind
	Regex     string
	Validator string
}

var canonicalSpecs = []patternSpec{
	{Name: patternCode, Kind: KindCode, Regex: `^[#*]\S+[#*]$`, Validator: "code"},
	{Name: patternDataRate, Kind: KindData, Regex: `^\d+(Go|Mo)/mois$`},
	{Name: patternDataAmount, Kind: KindData, Regex: `^\d+(Go|Mo)$`},
	{Name: patternPhone, Kind: KindPhone, Regex: `^\d{2} \d{3} (\d{3}|\d{2} \d{2})$`},
	{Name: patternPrice, Kind: KindCurrency, Regex: `^\d{1,3}( \d{3})* (F|FCFA)$`, Validator: "grouping"},
	{Name: patternAmount, Kind: KindCurrency, Regex: `^\d{1,3}( \d{3})+$`, Validator: "grouping"},
}

// compiledPattern is a single named regex with an optional validator.
type compiledPattern struct {
	name      string
	kind      Kind
	re        *regexp.Regexp
	validator func(string) bool
}

// canonicalMatcher recognizes text that is already in canonical form.
type canonicalMatcher struct {
	patterns []compiledPattern
	byName   map[string]int
}

var canon = mustCompileCanonical(canonicalSpecs)

func compileCanonical(specs []patternSpec) (*canonicalMatcher, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("no patterns defined")
	}
	m := &canonicalMatcher{byName: make(map[string]int, len(specs))}
	for _, spec := range specs {
		re, err := regexp.Compile(spec.Regex)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", spec.Name, err)
		}
		cp := compiledPattern{name: spec.Name, kind: spec.Kind, re: re}
		switch spec.Validator {
		case "":
		case "code":
			cp.validator = validateCode
		case "grouping":
			cp.validator = validateGrouping
		default:
			return nil, fmt.Errorf("pattern %q: unknown validator %q", spec.Name, spec.Validator)
		}
		m.byName[spec.Name] = len(m.patterns)
		m.patterns = append(m.patterns, cp)
	}
	return m, nil
}

func mustCompileCanonical(specs []patternSpec) *canonicalMatcher {
	m, err := compileCanonical(specs)
	if err != nil {
		panic("voicenorm: " + err.Error())
	}
	return m
}

func (cp compiledPattern) matches(s string) bool {
	if !cp.re.MatchString(s) {
		return false
	}
	return cp.validator == nil || cp.validator(s)
}

// match returns the first pattern that accepts s.
func (m *canonicalMatcher) match(s string) (compiledPattern, bool) {
	for _, p := range m.patterns {
		if p.matches(s) {
			return p, true
		}
	}
	return compiledPattern{}, false
}

// is reports whether s matches the named pattern.
func (m *canonicalMatcher) is(name, s string) bool {
	i, ok := m.byName[name]
	return ok && m.patterns[i].matches(s)
}

// Canonical reports whether text, once whitespace is collapsed, is exactly
// one canonical output form, and of which kind.
func Canonical(text string) (Kind, bool) {
	p, ok := canon.match(strings.Join(strings.Fields(text), " "))
	if !ok {
		return "", false
	}
	return p.kind, true
}

// validateCode requires something other than marker symbols inside a code.
func validateCode(s string) bool {
	return strings.Trim(s, "#*") != ""
}

// validateGrouping rejects a leading zero in the first digit group.
func validateGrouping(s string) bool {
	first, _, _ := strings.Cut(s, " ")
	return first == "0" || !strings.HasPrefix(first, "0")
}

// groupDigits inserts an ASCII space every three digits from the right when
// the number has four digits or more.
func groupDigits(digits string) string {
	if len(digits) < 4 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

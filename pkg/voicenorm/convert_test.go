package voicenorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

func numbers(parts []Part) []int64 {
	var out []int64
	for _, p := range parts {
		if p.Kind == PartNumber {
			out = append(out, p.Value.Int64())
		}
	}
	return out
}

func TestConvertPatterns(t *testing.T) {
	t.Parallel()

	conv := NewConverter(lexicon.Default())
	tests := []struct {
		input string
		want  []int64
	}{
		{"juróom benn", []int64{6}},
		{"juróom ñent", []int64{9}},
		{"ñaar fukk", []int64{20}},
		{"ñaari fukki", []int64{20}},
		{"juróom ñaar fukk", []int64{70}},
		{"juróom ñenti téeméer", []int64{900}},
		{"juróom ñett junni", []int64{8000}},
		{"ñent junni", []int64{4000}},
		{"juróom téeméer", []int64{500}},
		{"téeméeri junni", []int64{100_000}},
		{"fukki junni", []int64{10_000}},
		{"juróom juróom", []int64{5, 5}},
		{"tus", []int64{0}},
		{"quatre-vingt-huit", []int64{88}},
		{"cinquante-quatre mille", []int64{54, 1000}},
		{"205", []int64{205}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, numbers(conv.Convert(Tokenize(tt.input))))
		})
	}
}

func TestConvertLongestMatch(t *testing.T) {
	t.Parallel()

	conv := NewConverter(lexicon.Default())
	parts := conv.Convert(Tokenize("juróom ñaar fukk ak ñett"))
	require.Len(t, parts, 3)
	assert.Equal(t, PartNumber, parts[0].Kind)
	assert.Equal(t, Span{Start: 0, End: 3}, parts[0].Span)
	assert.Equal(t, "juróom ñaar fukk", parts[0].Text)
	assert.Equal(t, PartConnector, parts[1].Kind)
	assert.Equal(t, int64(3), parts[2].Value.Int64())
}

func TestConvertJunniGuard(t *testing.T) {
	t.Parallel()

	conv := NewConverter(lexicon.Default())
	// After 20, "ñaar junni" is not read as 2000.
	assert.Equal(t, []int64{20, 2, 1000}, numbers(conv.Convert(Tokenize("ñaar fukk ñaar junni"))))
	// Other previous values do not suppress the pattern.
	assert.Equal(t, []int64{30, 2000}, numbers(conv.Convert(Tokenize("ñett fukk ñaar junni"))))
}

func TestConvertPartKinds(t *testing.T) {
	t.Parallel()

	conv := NewConverter(lexicon.Default())
	parts := conv.Convert(Tokenize("Bonjour ñaar dërëm ak"))
	require.Len(t, parts, 4)
	assert.Equal(t, PartWord, parts[0].Kind)
	assert.Equal(t, "Bonjour", parts[0].Text)
	assert.Equal(t, PartNumber, parts[1].Kind)
	assert.Equal(t, PartCount, parts[2].Kind)
	assert.Equal(t, int64(5), parts[2].Value.Int64())
	assert.Equal(t, PartConnector, parts[3].Kind)
}

func TestConvertFrozen(t *testing.T) {
	t.Parallel()

	conv := NewConverter(lexicon.Default())
	toks := append(frozen("20 000 F"), Tokenize("benn")...)
	parts := conv.Convert(toks)
	require.Len(t, parts, 4)
	for _, p := range parts[:3] {
		assert.Equal(t, PartWord, p.Kind)
	}
	assert.Equal(t, PartNumber, parts[3].Kind)
}

func TestConvertDiacriticsPreserved(t *testing.T) {
	t.Parallel()

	conv := NewConverter(lexicon.Default())
	parts := conv.Convert(Tokenize("naar Ñàar"))
	require.Len(t, parts, 2)
	assert.Equal(t, PartWord, parts[0].Kind)
	assert.Equal(t, "Ñàar", parts[1].Text)
}

func TestConvertPackPhrase(t *testing.T) {
	t.Parallel()

	b := lexicon.NewBuilder()
	require.NoError(t, b.AddAll(lexicon.Builtin()))
	require.NoError(t, b.Add(lexicon.Entry{Word: "ñaari junni ak genn", Value: 2001, Class: lexicon.WolofSpecial}))
	conv := NewConverter(b.Build())

	assert.Equal(t, []int64{2001}, numbers(conv.Convert(Tokenize("ñaari junni ak genn"))))
}

func TestPartKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "number", PartNumber.String())
	assert.Equal(t, "count", PartCount.String())
	assert.Equal(t, "unknown", PartKind(0).String())
}

package voicenorm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

func combineText(t *testing.T, input string) Result {
	t.Helper()
	return Combine(NewConverter(lexicon.Default()).Convert(Tokenize(input)))
}

func TestCombine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"fukk ak juróom benn", "16"},
		{"fukk ak benn", "11"},
		{"ñaar fukk ak juróom ñaar", "27"},
		{"fanweer ak juróom", "35"},
		{"téeméer ak juróom ñaar fukk ak ñett", "173"},
		{"junni ak juróom ñenti téeméer ak ñent fukk ak juróom", "1945"},
		{"ñent junni ak juróom ñenti téeméer", "4900"},
		{"téeméeri dërëm", "500"},
		{"ñaar fukk dërëm", "100"},
		{"ñaar fukk junni", "20000"},
		{"deux cent cinq", "205"},
		{"deux cent mille", "200000"},
		{"cent cinquante", "150"},
		{"mille cent", "1100"},
		{"cinquante-quatre mille neuf cents", "54900"},
		{"un million deux cent mille", "1200000"},
		{"huit cent quatre-vingt-huit", "888"},
		{"vingt et un", "21"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			r := combineText(t, tt.input)
			assert.True(t, r.OK())
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestCombineConnectorEdges(t *testing.T) {
	t.Parallel()

	// Leading, trailing and doubled connectors are dropped.
	assert.Equal(t, "3", combineText(t, "ak benn ak ñaar ak").String())
	assert.Equal(t, "3", combineText(t, "benn ak ak ñaar").String())
}

func TestCombineResidualWords(t *testing.T) {
	t.Parallel()

	r := combineText(t, "ñaar fukk rekk")
	assert.Equal(t, int64(20), r.Value.Int64())
	assert.Equal(t, []string{"rekk"}, r.Words)
	assert.Equal(t, "20 rekk", r.String())
}

func TestCombineDeremWithoutNumber(t *testing.T) {
	t.Parallel()

	r := combineText(t, "dërëm")
	assert.False(t, r.OK())
	assert.Equal(t, "dërëm", r.String())
}

func TestCombineNoNumber(t *testing.T) {
	t.Parallel()

	r := combineText(t, "bonjour ak")
	assert.False(t, r.OK())
	assert.Equal(t, []string{"bonjour"}, r.Words)
	assert.False(t, Combine(nil).OK())
}

func TestCombineBigValues(t *testing.T) {
	t.Parallel()

	r := combineText(t, "1000000000000 9223372036854775807")
	assert.Equal(t, "9223372036854775807000000000000", r.String())
}

func TestCombineDoesNotMutateParts(t *testing.T) {
	t.Parallel()

	parts := NewConverter(lexicon.Default()).Convert(Tokenize("ñaar dërëm"))
	Combine(parts)
	Combine(parts)
	assert.Equal(t, int64(2), parts[0].Value.Int64())
	assert.Equal(t, "10", Combine(parts).String())
}

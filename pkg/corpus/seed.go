package corpus

// Defaults is the built-in regression corpus: one phrase per normalizer family
// plus the standalone Wolof numerals.
func Defaults() []Phrase {
	return []Phrase{
		{Input: "tapez dièse deux cent cinq dièse", Expected: "#205#", Note: "code"},
		{Input: "composer étoile huit cent quatre-vingt-huit étoile", Expected: "*888*", Note: "code"},
		{Input: "dièse deux cent cinquante dièse", Expected: "#250#", Note: "code"},
		{Input: "étoile un quatre quatre étoile un dièse", Expected: "*144*1#", Note: "code"},
		{Input: "cent cinquante mega", Expected: "150Mo", Note: "data"},
		{Input: "cinq giga par mois", Expected: "5Go/mois", Note: "data"},
		{Input: "juróom go", Expected: "5Go", Note: "data"},
		{Input: "vingt mille francs", Expected: "20 000 F", Note: "currency"},
		{Input: "ñaar fukk junni francs", Expected: "20 000 F", Note: "currency"},
		{Input: "cinquante-quatre mille neuf cents francs cfa", Expected: "54 900 FCFA", Note: "currency"},
		{Input: "trente-trois huit cent trente-six trente-deux treize", Expected: "33 836 32 13", Note: "phone"},
		{Input: "sept huit sept sept huit trente-deux quarante", Expected: "78 778 32 40", Note: "phone"},
		{Input: "fukk ak juróom benn", Expected: "16", Note: "numeral"},
		{Input: "ñaar fukk ak juróom ñaar", Expected: "27", Note: "numeral"},
		{Input: "fanweer ak juróom", Expected: "35", Note: "numeral"},
		{Input: "téeméer ak juróom ñaar fukk ak ñett", Expected: "173", Note: "numeral"},
		{Input: "junni ak juróom ñenti téeméer ak ñent fukk ak juróom", Expected: "1945", Note: "numeral"},
		{Input: "ñent junni ak juróom ñenti téeméer", Expected: "4900", Note: "numeral"},
		{Input: "téeméeri dërëm", Expected: "500", Note: "numeral"},
		{Input: "ñaar fukk dërëm", Expected: "100", Note: "numeral"},
	}
}

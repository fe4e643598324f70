// CLAUDE:SUMMARY Combiner: connector addition, dërëm multiplication, magnitude products and final sum over converter parts.
package voicenorm

import (
	"math/big"
	"strings"
)

// Result is a combined numeral: a value plus the words that were not part
// of any number, in their original order.
type Result struct {
	Value *big.Int
	Words []string
}

// OK reports whether at least one number was found.
func (r Result) OK() bool {
	return r.Value != nil
}

// String renders the value followed by the residual words.
func (r Result) String() string {
	if r.Value == nil {
		return strings.Join(r.Words, " ")
	}
	if len(r.Words) == 0 {
		return r.Value.String()
	}
	return r.Value.String() + " " + strings.Join(r.Words, " ")
}

// Combine reduces converter parts to a single value. The steps run in order:
//
//  1. A connector between two numbers adds them; the leftmost connector is
//     applied first and the sum can take part in the next addition. Any
//     other connector is dropped.
//  2. A count unit (dërëm) multiplies the most recent number by its value.
//     Without a preceding number it is kept as a word.
//  3. A number followed by a larger number of at least 100 is multiplied by
//     it, and the product keeps absorbing larger magnitudes that follow.
//  4. The remaining numbers are summed.
func Combine(parts []Part) Result {
	added := addConnected(parts)

	var numbers []*big.Int
	var words []string
	for _, p := range added {
		switch p.Kind {
		case PartNumber:
			numbers = append(numbers, new(big.Int).Set(p.Value))
		case PartCount:
			if len(numbers) == 0 {
				words = append(words, p.Text)
				continue
			}
			last := numbers[len(numbers)-1]
			last.Mul(last, p.Value)
		case PartConnector, PartWord:
			words = append(words, p.Text)
		}
	}
	if len(numbers) == 0 {
		return Result{Words: words}
	}

	hundred := big.NewInt(100)
	total := new(big.Int)
	for i := 0; i < len(numbers); {
		cur := new(big.Int).Set(numbers[i])
		i++
		for i < len(numbers) && numbers[i].Cmp(hundred) >= 0 && cur.Cmp(numbers[i]) < 0 {
			cur.Mul(cur, numbers[i])
			i++
		}
		total.Add(total, cur)
	}
	return Result{Value: total, Words: words}
}

// addConnected applies connector addition in a single forward scan.
func addConnected(parts []Part) []Part {
	out := make([]Part, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		p := parts[i]
		if p.Kind != PartConnector {
			out = append(out, p)
			continue
		}
		if len(out) > 0 && out[len(out)-1].Kind == PartNumber &&
			i+1 < len(parts) && parts[i+1].Kind == PartNumber {
			left := out[len(out)-1]
			left.Value = new(big.Int).Add(left.Value, parts[i+1].Value)
			left.Text = left.Text + " " + p.Text + " " + parts[i+1].Text
			left.Span.End = parts[i+1].Span.End
			out[len(out)-1] = left
			i++
		}
	}
	return out
}

package insight

import (
	"fmt"
	"strings"
)

// SystemPrompt frames the model as an analyst that answers in JSON.
const SystemPrompt = "You are a concise equity analyst. You always answer with a single JSON object and nothing else."

// Prompt builds the rationale request for one instrument. Nil price or
// change values are described as unknown.
func Prompt(ticker, name string, price, changePct *float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Instrument: %s (%s)\n", name, ticker)
	if price != nil {
		fmt.Fprintf(&b, "Last price: %.2f\n", *price)
	} else {
		b.WriteString("Last price: unknown\n")
	}
	if changePct != nil {
		fmt.Fprintf(&b, "Change today: %+.2f%%\n", *changePct)
	} else {
		b.WriteString("Change today: unknown\n")
	}
	fmt.Fprintf(&b, `
Return JSON with exactly these keys:
{"companyDescription": string, "buy": string, "buyProbability": number, "sell": string, "sellProbability": number}
- companyDescription: what the company does, at most %d words.
- buy: the strongest case for buying now, at most %d words.
- sell: the strongest case for selling now, at most %d words.
- buyProbability and sellProbability are percentages that sum to 100.
`, DescriptionWordLimit, RationaleWordLimit, RationaleWordLimit)
	return b.String()
}

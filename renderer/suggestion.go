package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/canhoto/carteira"
)

// SuggestionMarkdown renders a contribution suggestion, best candidates
// first.
func SuggestionMarkdown(amount decimal.Decimal, suggestions []carteira.Suggestion) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Contribution Suggestion for " + BRL(amount))
	if len(suggestions) == 0 {
		doc.PlainText("No asset is under-allocated; nothing to suggest.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Code", "Class", "Current", "Ideal", "Avg Cost", "Quote", "Score", "Recommended"},
	}
	for _, s := range suggestions {
		table.Rows = append(table.Rows, []string{
			s.Code,
			s.Class.String(),
			Pct(s.CurrentPct),
			Pct(s.IdealPct),
			BRL(s.AverageCost),
			BRL(s.CurrentQuote),
			fmt.Sprintf("%.3f", s.Score),
			BRL(s.Recommended),
		})
	}
	doc.Table(table)
	return doc.String()
}

package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/canhoto/carteira"
)

// CashMarkdown renders the cash ledger and its per-source balances.
func CashMarkdown(movements []carteira.CashMovement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Movements")
	if len(movements) == 0 {
		doc.PlainText("No cash movements recorded.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Id", "Date", "Kind", "Source", "Value"}}
	for _, m := range movements {
		table.Rows = append(table.Rows, []string{
			m.ID, m.Date.String(), m.Kind.String(), m.Source, BRL(m.Value),
		})
	}
	doc.Table(table)

	doc.H2("Balances by Source")
	balances := md.TableSet{Header: []string{"Source", "Contributed", "Withdrawn", "Balance"}}
	for _, b := range carteira.BalancesBySource(movements) {
		balances.Rows = append(balances.Rows, []string{
			b.Source, BRL(b.Contributed), BRL(b.Withdrawn), BRL(b.Balance),
		})
	}
	doc.Table(balances)

	doc.PlainText("Total balance: " + BRL(carteira.CashBalance(movements)))
	return doc.String()
}

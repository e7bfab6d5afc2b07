package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/canhoto/carteira"
)

// AssetsMarkdown renders the full asset table, one row per position.
func AssetsMarkdown(assets []carteira.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets")
	if len(assets) == 0 {
		doc.PlainText("No assets recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Code", "Class", "Qty", "Avg Cost", "Quote", "Value", "Return", "Yield", "Share", "Target"},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			a.Code,
			a.Class.String(),
			strconv.FormatInt(a.Quantity, 10),
			BRL(a.AverageCost),
			BRL(a.CurrentQuote),
			BRL(a.CurrentValue),
			SignedPct(a.ReturnPct),
			Pct(a.DistributionYieldPct),
			Pct(a.PortfolioPct),
			Pct(a.TargetPct),
		})
	}
	doc.Table(table)
	return doc.String()
}

// AssetMarkdown renders the detail view of one position: its figures and
// its dated transaction and distribution lists.
func AssetMarkdown(a carteira.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", a.Code, a.Class))
	doc.PlainText(fmt.Sprintf("Quantity: %d, average cost %s, invested %s",
		a.Quantity, BRL(a.AverageCost), BRL(a.InvestedCapital)))
	doc.PlainText(fmt.Sprintf("Quote %s, current value %s, return %s, yield %s",
		BRL(a.CurrentQuote), BRL(a.CurrentValue), SignedPct(a.ReturnPct), Pct(a.DistributionYieldPct)))

	doc.H2("Transactions")
	txTable := md.TableSet{Header: []string{"#", "Date", "Kind", "Qty", "Unit Price", "Gross", "Fee"}}
	for i, t := range a.SortedTransactions() {
		txTable.Rows = append(txTable.Rows, []string{
			strconv.Itoa(i),
			t.Date.String(),
			t.Kind.String(),
			strconv.FormatInt(t.Quantity, 10),
			BRL(t.UnitPrice),
			BRL(t.GrossValue),
			BRL(t.Fee),
		})
	}
	doc.Table(txTable)

	if ds := a.SortedDistributions(); len(ds) > 0 {
		doc.H2("Distributions")
		dTable := md.TableSet{Header: []string{"#", "Date", "Kind", "Value"}}
		for i, d := range ds {
			dTable.Rows = append(dTable.Rows, []string{
				strconv.Itoa(i),
				d.Date.String(),
				d.Kind.String(),
				BRL(d.Value),
			})
		}
		doc.Table(dTable)
	}
	return doc.String()
}

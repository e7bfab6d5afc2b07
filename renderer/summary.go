package renderer

import (
	"github.com/canhoto/carteira"
	"github.com/canhoto/carteira/date"
)

type summaryView struct {
	Date          string
	TotalInvested string
	CurrentValue  string
	ReturnPct     string
	Distributions string
	YieldPct      string
	CashBalance   string
	AssetCount    int
	Classes       []classShareView
}

type classShareView struct {
	Class string
	Value string
	Pct   string
}

// SummaryMarkdown renders the portfolio summary report.
func SummaryMarkdown(s carteira.Summary, classes []carteira.ClassShare, on date.Date) string {
	view := summaryView{
		Date:          on.String(),
		TotalInvested: BRL(s.TotalInvested),
		CurrentValue:  BRL(s.TotalCurrentValue),
		ReturnPct:     SignedPct(s.PortfolioReturnPct),
		Distributions: BRL(s.TotalDistributions),
		YieldPct:      Pct(s.PortfolioYieldPct),
		CashBalance:   BRL(s.CashBalance),
		AssetCount:    s.AssetCount,
	}
	for _, c := range classes {
		view.Classes = append(view.Classes, classShareView{
			Class: c.Class.String(),
			Value: BRL(c.CurrentValue),
			Pct:   Pct(c.Pct),
		})
	}
	partials := map[string]string{
		"summary_classes": "summary_classes.md",
	}
	return renderTemplate("summary", "summary.md", partials, view)
}

package carteira

import "github.com/shopspring/decimal"

// Summary aggregates the whole portfolio. Its return figure is price-only;
// per-asset returns include distributions, the two measure different things
// (portfolio capital appreciation vs. total position performance).
type Summary struct {
	TotalInvested      decimal.Decimal
	TotalCurrentValue  decimal.Decimal
	TotalDistributions decimal.Decimal
	PortfolioReturnPct Percent
	PortfolioYieldPct  Percent
	CashBalance        decimal.Decimal
	AssetCount         int
}

// Summarize folds the assets and cash ledger into a portfolio summary.
func Summarize(assets []Asset, movements []CashMovement) Summary {
	s := Summary{AssetCount: len(assets)}
	for _, a := range assets {
		s.TotalInvested = s.TotalInvested.Add(a.InvestedCapital)
		s.TotalCurrentValue = s.TotalCurrentValue.Add(a.CurrentValue)
		s.TotalDistributions = s.TotalDistributions.Add(DistributionsTotal(a.Distributions))
	}
	if s.TotalInvested.IsPositive() {
		s.PortfolioReturnPct = percentOf(s.TotalCurrentValue.Sub(s.TotalInvested), s.TotalInvested)
		s.PortfolioYieldPct = percentOf(s.TotalDistributions, s.TotalInvested)
	}
	s.CashBalance = CashBalance(movements)
	return s
}

// ClassShare is the slice of the portfolio held in one asset class.
type ClassShare struct {
	Class        AssetClass
	CurrentValue decimal.Decimal
	Pct          Percent
}

// ClassDistribution returns each class's share of the portfolio's current
// value, in display order. Classes with no assets still appear, at zero.
func ClassDistribution(assets []Asset) []ClassShare {
	totals := make(map[AssetClass]decimal.Decimal)
	var total decimal.Decimal
	for _, a := range assets {
		totals[a.Class] = totals[a.Class].Add(a.CurrentValue)
		total = total.Add(a.CurrentValue)
	}
	shares := make([]ClassShare, 0, len(AssetClasses()))
	for _, class := range AssetClasses() {
		shares = append(shares, ClassShare{
			Class:        class,
			CurrentValue: totals[class],
			Pct:          percentOf(totals[class], total),
		})
	}
	return shares
}

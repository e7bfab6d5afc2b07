package carteira

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSingleBuyPosition(t *testing.T) {
	// one BUY of 100 units at 10.00, quoted at 12.00
	a := NewAsset("XYZ1", Stock, dec("12.00"), buy("2025-01-10", 100, "10.00"))

	if !a.AverageCost.Equal(dec("10")) {
		t.Errorf("AverageCost = %s, want 10", a.AverageCost)
	}
	if !a.InvestedCapital.Equal(dec("1000")) {
		t.Errorf("InvestedCapital = %s, want 1000", a.InvestedCapital)
	}
	if a.Quantity != 100 {
		t.Errorf("Quantity = %d, want 100", a.Quantity)
	}
	if !a.CurrentValue.Equal(dec("1200")) {
		t.Errorf("CurrentValue = %s, want 1200", a.CurrentValue)
	}
	if !a.ReturnPct.Equal(20) {
		t.Errorf("ReturnPct = %s, want 20.00%%", a.ReturnPct)
	}
}

func TestSellLeavesCostBasisAlone(t *testing.T) {
	txs := []Transaction{
		buy("2025-01-10", 100, "10.00"),
		sell("2025-02-01", 40, "12.00"),
	}

	if got := NetQuantity(txs); got != 60 {
		t.Errorf("NetQuantity = %d, want 60", got)
	}
	if got := AverageCost(txs); !got.Equal(dec("10")) {
		t.Errorf("AverageCost = %s, want 10", got)
	}
	if got := InvestedCapital(txs); !got.Equal(dec("1000")) {
		t.Errorf("InvestedCapital = %s, want 1000", got)
	}
}

func TestZeroInvestedGuards(t *testing.T) {
	// no buys recorded, only a stray sell: every ratio degrades to zero
	txs := []Transaction{sell("2025-01-10", 10, "50.00")}

	if got := AverageCost(txs); !got.IsZero() {
		t.Errorf("AverageCost = %s, want 0", got)
	}
	if got := Return(dec("0"), dec("0"), dec("0")); got != 0 {
		t.Errorf("Return = %v, want 0", got)
	}
	if got := Return(dec("500"), dec("0"), dec("10")); got != 0 {
		t.Errorf("Return with value but no capital = %v, want 0", got)
	}
	if got := DistributionYield([]Distribution{dividend("2025-01-10", "5")}, dec("0")); got != 0 {
		t.Errorf("DistributionYield = %v, want 0", got)
	}
	if got := CurrentValue(0, dec("50")); !got.IsZero() {
		t.Errorf("CurrentValue = %s, want 0", got)
	}
}

func TestPermutationInvariance(t *testing.T) {
	txs := []Transaction{
		buy("2025-01-10", 100, "10.00"),
		sell("2025-02-01", 40, "12.00"),
		buy("2025-02-10", 50, "11.00"),
		sell("2025-03-01", 30, "13.00"),
	}
	permuted := []Transaction{txs[3], txs[1], txs[0], txs[2]}

	if a, b := NetQuantity(txs), NetQuantity(permuted); a != b {
		t.Errorf("NetQuantity order-dependent: %d vs %d", a, b)
	}
	if a, b := AverageCost(txs), AverageCost(permuted); !a.Equal(b) {
		t.Errorf("AverageCost order-dependent: %s vs %s", a, b)
	}
	if a, b := InvestedCapital(txs), InvestedCapital(permuted); !a.Equal(b) {
		t.Errorf("InvestedCapital order-dependent: %s vs %s", a, b)
	}
}

func TestInvestedCapitalGrowsWithBuys(t *testing.T) {
	txs := []Transaction{buy("2025-01-10", 100, "10.00")}
	before := InvestedCapital(txs)

	txs = append(txs, buy("2025-02-10", 10, "9.00"))
	after := InvestedCapital(txs)
	if !after.GreaterThan(before) {
		t.Errorf("InvestedCapital did not grow: %s then %s", before, after)
	}

	// a sell changes nothing
	txs = append(txs, sell("2025-03-01", 50, "20.00"))
	if got := InvestedCapital(txs); !got.Equal(after) {
		t.Errorf("InvestedCapital moved on sell: %s, want %s", got, after)
	}
}

func TestInvestedCapitalIncludesFees(t *testing.T) {
	tx := buy("2025-01-10", 100, "10.00")
	tx.Fee = dec("4.90")
	if got := InvestedCapital([]Transaction{tx}); !got.Equal(dec("1004.90")) {
		t.Errorf("InvestedCapital = %s, want 1004.90", got)
	}
}

func TestReturnIncludesDistributions(t *testing.T) {
	// invested 1000, worth 1100, received 50 in distributions: 15%
	if got := Return(dec("1100"), dec("1000"), dec("50")); !got.Equal(15) {
		t.Errorf("Return = %v, want 15.00%%", got)
	}
	// rounded to two decimals
	if got := Return(dec("1000.10"), dec("300"), dec("0")); !got.Equal(233.37) {
		t.Errorf("Return = %v, want 233.37%%", got)
	}
}

func TestDistributionYield(t *testing.T) {
	ds := []Distribution{
		dividend("2025-01-10", "30"),
		dividend("2025-04-10", "25"),
	}
	if got := DistributionYield(ds, dec("1000")); !got.Equal(5.5) {
		t.Errorf("DistributionYield = %v, want 5.50%%", got)
	}
}

func TestSummarize(t *testing.T) {
	a := NewAsset("AAAA3", Stock, dec("12.00"), buy("2025-01-10", 100, "10.00"))
	b := NewAsset("BBBB11", Fund, dec("9.00"), buy("2025-01-15", 200, "10.00"))
	b.Distributions = []Distribution{dividend("2025-02-10", "60")}
	b.recompute()

	movements := []CashMovement{contribution("2025-01-05", "me", "3000")}
	s := Summarize([]Asset{a, b}, movements)

	if !s.TotalInvested.Equal(dec("3000")) {
		t.Errorf("TotalInvested = %s, want 3000", s.TotalInvested)
	}
	if !s.TotalCurrentValue.Equal(dec("3000")) {
		t.Errorf("TotalCurrentValue = %s, want 3000", s.TotalCurrentValue)
	}
	// price-only portfolio return: (3000-3000)/3000
	if s.PortfolioReturnPct != 0 {
		t.Errorf("PortfolioReturnPct = %v, want 0", s.PortfolioReturnPct)
	}
	if !s.TotalDistributions.Equal(dec("60")) {
		t.Errorf("TotalDistributions = %s, want 60", s.TotalDistributions)
	}
	if !s.PortfolioYieldPct.Equal(2) {
		t.Errorf("PortfolioYieldPct = %v, want 2.00%%", s.PortfolioYieldPct)
	}
	if !s.CashBalance.Equal(dec("3000")) {
		t.Errorf("CashBalance = %s, want 3000", s.CashBalance)
	}
}

func TestClassDistribution(t *testing.T) {
	a := NewAsset("AAAA3", Stock, dec("10.00"), buy("2025-01-10", 30, "10.00"))
	b := NewAsset("BBBB11", Fund, dec("10.00"), buy("2025-01-15", 70, "10.00"))

	shares := ClassDistribution([]Asset{a, b})
	if len(shares) != 2 {
		t.Fatalf("got %d classes, want 2", len(shares))
	}
	if shares[0].Class != Stock || !shares[0].Pct.Equal(30) {
		t.Errorf("stock share = %v, want 30.00%%", shares[0].Pct)
	}
	if shares[1].Class != Fund || !shares[1].Pct.Equal(70) {
		t.Errorf("fund share = %v, want 70.00%%", shares[1].Pct)
	}
}

func TestClassDistributionEmpty(t *testing.T) {
	shares := ClassDistribution(nil)
	for _, s := range shares {
		if s.Pct != 0 || !s.CurrentValue.Equal(decimal.Zero) {
			t.Errorf("empty portfolio class %s not zero: %v %s", s.Class, s.Pct, s.CurrentValue)
		}
	}
}

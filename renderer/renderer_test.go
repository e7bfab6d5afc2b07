package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/canhoto/carteira"
	"github.com/canhoto/carteira/date"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testAsset(t *testing.T) carteira.Asset {
	t.Helper()
	tx := carteira.NewTransaction(date.MustParse("2025-01-10"), carteira.Buy, 100, dec("10.00"), decimal.Zero)
	a := carteira.NewAsset("XYZ1", carteira.Stock, dec("12.00"), tx)
	return a
}

func TestSummaryMarkdown(t *testing.T) {
	a := testAsset(t)
	summary := carteira.Summarize([]carteira.Asset{a}, nil)
	classes := carteira.ClassDistribution([]carteira.Asset{a})

	md := SummaryMarkdown(summary, classes, date.MustParse("2025-06-01"))
	for _, want := range []string{
		"Portfolio Summary on 2025-06-01",
		"Allocation by Class",
		"STOCK",
		"+20.00%",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q:\n%s", want, md)
		}
	}
}

func TestAssetsMarkdown(t *testing.T) {
	md := AssetsMarkdown([]carteira.Asset{testAsset(t)})
	for _, want := range []string{"XYZ1", "STOCK", "100", "+20.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("assets table missing %q:\n%s", want, md)
		}
	}

	if md := AssetsMarkdown(nil); !strings.Contains(md, "No assets recorded.") {
		t.Errorf("empty table:\n%s", md)
	}
}

func TestAssetMarkdownListsHistoryWithIndexes(t *testing.T) {
	a := testAsset(t)
	md := AssetMarkdown(a)
	for _, want := range []string{"XYZ1 (STOCK)", "Transactions", "2025-01-10", "BUY"} {
		if !strings.Contains(md, want) {
			t.Errorf("detail missing %q:\n%s", want, md)
		}
	}
	// no distributions recorded, no section for them
	if strings.Contains(md, "Distributions") {
		t.Errorf("empty distribution section rendered:\n%s", md)
	}
}

func TestSuggestionMarkdownEmpty(t *testing.T) {
	md := SuggestionMarkdown(dec("1000"), nil)
	if !strings.Contains(md, "nothing to suggest") {
		t.Errorf("empty suggestion:\n%s", md)
	}
}

func TestCashMarkdown(t *testing.T) {
	m := carteira.NewCashMovement(date.MustParse("2025-01-05"), carteira.Contribution, "me", dec("1000"))
	md := CashMarkdown([]carteira.CashMovement{m})
	for _, want := range []string{m.ID, "CONTRIBUTION", "me", "Balances by Source", "Total balance"} {
		if !strings.Contains(md, want) {
			t.Errorf("cash report missing %q:\n%s", want, md)
		}
	}
}

func TestClassDistributionChart(t *testing.T) {
	a := testAsset(t)
	classes := carteira.ClassDistribution([]carteira.Asset{a})

	var buf bytes.Buffer
	if err := ClassDistributionChart(&buf, classes); err != nil {
		t.Fatal(err)
	}
	// PNG magic number
	if buf.Len() < 8 || !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output is not a PNG (%d bytes)", buf.Len())
	}
}

func TestClassDistributionChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ClassDistributionChart(&buf, nil); err == nil {
		t.Error("want an error when nothing can be charted")
	}
}

func TestBRL(t *testing.T) {
	if got := BRL(dec("1234.56")); !strings.Contains(got, "R$") {
		t.Errorf("BRL(1234.56) = %q", got)
	}
}

func TestSignedPct(t *testing.T) {
	if got := SignedPct(carteira.Percent(12.5)); got != "+12.50%" {
		t.Errorf("SignedPct = %q", got)
	}
	if got := SignedPct(carteira.Percent(-3)); got != "-3.00%" {
		t.Errorf("SignedPct = %q", got)
	}
}

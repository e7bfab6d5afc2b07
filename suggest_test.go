package carteira

import (
	"math"
	"testing"
)

// fixedValueAsset builds an asset holding quantity units quoted so its
// current value lands exactly where the test needs it.
func fixedValueAsset(code string, class AssetClass, quantity int64, quote string) Asset {
	return NewAsset(code, class, dec(quote), buy("2025-01-10", quantity, quote))
}

func suggestConfig(perAsset map[string]Percent) Configuration {
	cfg := DefaultConfiguration()
	cfg.ClassTargets[Stock] = ClassTarget{TotalPct: 100, PerAssetPct: perAsset}
	return cfg
}

func TestSuggestProportionalSplit(t *testing.T) {
	// two under-allocated stocks with scores 0.6 and 1.4: a 1000 contribution
	// splits 300 / 700
	a := fixedValueAsset("AAAA3", Stock, 120, "1.00") // 40% of the class
	b := fixedValueAsset("BBBB3", Stock, 180, "1.00") // 60% of the class
	cfg := suggestConfig(map[string]Percent{
		"AAAA3": 41,                       // score 0.6*(41-40) = 0.6
		"BBBB3": Percent(60 + 7.0/3.0),    // score 0.6*(7/3)   = 1.4
	})

	got := Suggest(dec("1000"), []Asset{a, b}, cfg)
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	// descending score: BBBB3 first
	if got[0].Code != "BBBB3" || got[1].Code != "AAAA3" {
		t.Fatalf("order = %s, %s; want BBBB3, AAAA3", got[0].Code, got[1].Code)
	}
	if !got[0].Recommended.Equal(dec("700")) {
		t.Errorf("BBBB3 recommended = %s, want 700", got[0].Recommended)
	}
	if !got[1].Recommended.Equal(dec("300")) {
		t.Errorf("AAAA3 recommended = %s, want 300", got[1].Recommended)
	}
}

func TestSuggestEvenSplitOfRemainingPct(t *testing.T) {
	// no pinned shares: both assets get an even 50% ideal; only the one
	// under it qualifies
	a := fixedValueAsset("AAAA3", Stock, 40, "1.00")
	b := fixedValueAsset("BBBB3", Stock, 60, "1.00")
	cfg := suggestConfig(map[string]Percent{})

	got := Suggest(dec("500"), []Asset{a, b}, cfg)
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Code != "AAAA3" {
		t.Errorf("code = %s, want AAAA3", got[0].Code)
	}
	if !got[0].IdealPct.Equal(50) {
		t.Errorf("IdealPct = %v, want 50.00%%", got[0].IdealPct)
	}
	if !got[0].Recommended.Equal(dec("500")) {
		t.Errorf("recommended = %s, want the whole 500", got[0].Recommended)
	}
}

func TestSuggestDiscountBonus(t *testing.T) {
	// both at their ideal share, but one quotes 20% under its average cost
	a := fixedValueAsset("AAAA3", Stock, 50, "1.00")
	b := NewAsset("BBBB3", Stock, dec("0.80"), buy("2025-01-10", 50, "1.00"))
	b.CurrentQuote = dec("0.80")
	b.recompute()
	// equalize values so neither is under-allocated on share alone
	a = NewAsset("AAAA3", Stock, dec("0.80"), buy("2025-01-10", 50, "0.80"))
	cfg := suggestConfig(map[string]Percent{"AAAA3": 50, "BBBB3": 50})

	got := Suggest(dec("100"), []Asset{a, b}, cfg)
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Code != "BBBB3" {
		t.Errorf("code = %s, want the discounted BBBB3", got[0].Code)
	}
	if math.Abs(got[0].Score-0.4*0.2) > 1e-9 {
		t.Errorf("score = %v, want %v", got[0].Score, 0.4*0.2)
	}
}

func TestSuggestNothingQualifies(t *testing.T) {
	// a single asset holds 100% of its class, ideal 50%: over-allocated
	a := fixedValueAsset("AAAA3", Stock, 100, "1.00")
	cfg := suggestConfig(map[string]Percent{"AAAA3": 50})

	if got := Suggest(dec("1000"), []Asset{a}, cfg); got != nil {
		t.Errorf("got %d suggestions, want none", len(got))
	}
}

func TestSuggestRejectsNonPositiveAmount(t *testing.T) {
	a := fixedValueAsset("AAAA3", Stock, 10, "1.00")
	if got := Suggest(dec("0"), []Asset{a}, DefaultConfiguration()); got != nil {
		t.Errorf("zero amount: got %d suggestions, want none", len(got))
	}
	if got := Suggest(dec("-5"), []Asset{a}, DefaultConfiguration()); got != nil {
		t.Errorf("negative amount: got %d suggestions, want none", len(got))
	}
}

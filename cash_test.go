package carteira

import (
	"encoding/json"
	"testing"
)

func TestCashBalance(t *testing.T) {
	movements := []CashMovement{
		contribution("2025-01-05", "me", "1000"),
		contribution("2025-02-05", "spouse", "500"),
		withdrawal("2025-03-05", "me", "200"),
	}
	if got := CashBalance(movements); !got.Equal(dec("1300")) {
		t.Errorf("CashBalance = %s, want 1300", got)
	}
	if got := CashBalance(nil); !got.IsZero() {
		t.Errorf("empty CashBalance = %s, want 0", got)
	}
}

func TestBalancesBySource(t *testing.T) {
	movements := []CashMovement{
		contribution("2025-01-05", "me", "1000"),
		contribution("2025-02-05", "spouse", "500"),
		withdrawal("2025-03-05", "me", "200"),
	}
	balances := BalancesBySource(movements)
	if len(balances) != 2 {
		t.Fatalf("got %d sources, want 2", len(balances))
	}
	// sorted by source name
	if balances[0].Source != "me" || balances[1].Source != "spouse" {
		t.Fatalf("order = %s, %s", balances[0].Source, balances[1].Source)
	}
	if !balances[0].Balance.Equal(dec("800")) {
		t.Errorf("me balance = %s, want 800", balances[0].Balance)
	}
	if !balances[1].Contributed.Equal(dec("500")) || !balances[1].Withdrawn.IsZero() {
		t.Errorf("spouse totals = %s / %s", balances[1].Contributed, balances[1].Withdrawn)
	}
}

func TestNewCashMovementGeneratesUniqueIDs(t *testing.T) {
	a := contribution("2025-01-05", "me", "100")
	b := contribution("2025-01-05", "me", "100")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("ids not unique: %q and %q", a.ID, b.ID)
	}
}

func TestCashMovementJSONRoundTrip(t *testing.T) {
	m := contribution("2025-01-05", "me", "1000")
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	var got CashMovement
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Equal(m) {
		t.Errorf("round trip changed the movement: %+v vs %+v", got, m)
	}
}

func TestParseCashMovementKind(t *testing.T) {
	if k, err := ParseCashMovementKind("withdrawal"); err != nil || k != Withdrawal {
		t.Errorf("got %v, %v", k, err)
	}
	if _, err := ParseCashMovementKind("transfer"); err == nil {
		t.Error("want error for unknown kind")
	}
}

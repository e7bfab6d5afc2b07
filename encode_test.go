package carteira

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := testSnapshot(t)
	s, err := s.AddDistribution("XYZ1", dividend("2025-03-10", "50"))
	if err != nil {
		t.Fatal(err)
	}
	s = s.AddCashMovement(contribution("2025-01-05", "me", "1000"))

	var first bytes.Buffer
	if err := EncodeSnapshot(&first, s); err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeSnapshot(&first)
	if err != nil {
		t.Fatal(err)
	}
	var second bytes.Buffer
	if err := EncodeSnapshot(&second, decoded); err != nil {
		t.Fatal(err)
	}

	var reference bytes.Buffer
	if err := EncodeSnapshot(&reference, s); err != nil {
		t.Fatal(err)
	}
	if second.String() != reference.String() {
		t.Errorf("round trip changed the snapshot:\n%s\nvs\n%s", reference.String(), second.String())
	}
}

func TestPersistedFieldNames(t *testing.T) {
	s := testSnapshot(t)
	s = s.AddCashMovement(contribution("2025-01-05", "me", "1000"))

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		t.Fatal(err)
	}
	blob := buf.String()
	for _, field := range []string{
		`"assets"`, `"cashMovements"`, `"configuration"`,
		`"code"`, `"assetClass"`, `"quantity"`, `"averageCost"`,
		`"investedCapital"`, `"currentQuote"`, `"currentValue"`,
		`"returnPct"`, `"distributionYieldPct"`, `"targetPct"`, `"portfolioPct"`,
		`"transactions"`, `"distributions"`,
		`"date"`, `"kind"`, `"unitPrice"`, `"grossValue"`, `"fee"`,
		`"id"`, `"source"`, `"value"`,
		`"perAssetTargetPct"`, `"annualReturnGoalPct"`, `"classTargets"`,
		`"STOCK"`, `"BUY"`, `"CONTRIBUTION"`,
	} {
		if !strings.Contains(blob, field) {
			t.Errorf("persisted blob missing %s", field)
		}
	}
	// decimals are numbers, not strings
	if !strings.Contains(blob, `"value": 1000`) {
		t.Error("decimal not persisted as a plain number")
	}
}

func TestDecodeLegacyData(t *testing.T) {
	// numeric cash ids, datetime dates and DD/MM/YYYY dates all come from
	// older exports and must still decode
	blob := `{
	  "assets": [
	    {
	      "code": "XYZ1",
	      "assetClass": "STOCK",
	      "currentQuote": 12,
	      "transactions": [
	        {"date": "2025-01-10T14:30:00", "kind": "BUY", "quantity": 100, "unitPrice": 10, "grossValue": 1000, "fee": 0}
	      ],
	      "distributions": [
	        {"date": "10/03/2025", "kind": "DIVIDEND", "value": 50}
	      ]
	    }
	  ],
	  "cashMovements": [
	    {"id": 1736067600000, "date": "2025-01-05", "kind": "CONTRIBUTION", "source": "me", "value": 1000}
	  ],
	  "configuration": {"perAssetTargetPct": 2.99, "annualReturnGoalPct": 10, "classTargets": {}}
	}`

	s, err := DecodeSnapshot(strings.NewReader(blob))
	if err != nil {
		t.Fatal(err)
	}
	a, ok := s.Asset("XYZ1")
	if !ok {
		t.Fatal("asset missing after decode")
	}
	if got := a.Transactions[0].Date.String(); got != "2025-01-10" {
		t.Errorf("datetime not stripped: %s", got)
	}
	if got := a.Distributions[0].Date.String(); got != "2025-03-10" {
		t.Errorf("legacy date not parsed: %s", got)
	}
	if s.CashMovements[0].ID != "1736067600000" {
		t.Errorf("legacy id = %q, want the numeric value as string", s.CashMovements[0].ID)
	}

	// stale derived fields heal on load
	if a.Quantity != 100 || !a.CurrentValue.Equal(dec("1200")) {
		t.Errorf("derived fields not recomputed: quantity %d value %s", a.Quantity, a.CurrentValue)
	}
}

func TestExportEnvelope(t *testing.T) {
	s := testSnapshot(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := ExportSnapshot(&buf, s, at); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"exportedAt": "2025-06-01T12:00:00Z"`) {
		t.Errorf("envelope missing export time:\n%s", buf.String())
	}

	imported, err := ImportSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := imported.Asset("XYZ1"); !ok {
		t.Error("asset missing after import")
	}
}

func TestImportBareSnapshot(t *testing.T) {
	s := testSnapshot(t)
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		t.Fatal(err)
	}
	imported, err := ImportSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := imported.Asset("XYZ1"); !ok {
		t.Error("asset missing after bare import")
	}
}

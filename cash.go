package carteira

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/canhoto/carteira/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashMovementKind discriminates contributions and withdrawals.
type CashMovementKind int

const (
	Contribution CashMovementKind = iota
	Withdrawal
)

func (k CashMovementKind) String() string {
	switch k {
	case Contribution:
		return "CONTRIBUTION"
	case Withdrawal:
		return "WITHDRAWAL"
	default:
		return "unknown"
	}
}

// ParseCashMovementKind parses a string into a CashMovementKind.
func ParseCashMovementKind(s string) (CashMovementKind, error) {
	switch strings.ToUpper(s) {
	case "CONTRIBUTION":
		return Contribution, nil
	case "WITHDRAWAL":
		return Withdrawal, nil
	default:
		return 0, fmt.Errorf("unknown cash movement kind: %q", s)
	}
}

func (k CashMovementKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *CashMovementKind) UnmarshalText(text []byte) error {
	parsed, err := ParseCashMovementKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// CashMovement is one contribution or withdrawal in the cash ledger,
// independent of any asset. The id is generated once at creation and stays
// stable across edits.
type CashMovement struct {
	ID     string           `json:"id"`
	Date   date.Date        `json:"date"`
	Kind   CashMovementKind `json:"kind"`
	Source string           `json:"source"`
	Value  decimal.Decimal  `json:"value"`
}

// NewCashMovement builds a movement with a freshly generated unique id.
func NewCashMovement(day date.Date, kind CashMovementKind, source string, value decimal.Decimal) CashMovement {
	return CashMovement{
		ID:     uuid.NewString(),
		Date:   day,
		Kind:   kind,
		Source: source,
		Value:  value,
	}
}

// MarshalJSON implements the json.Marshaler interface for CashMovement.
func (m CashMovement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", m.ID)
	w.Append("date", m.Date)
	w.Append("kind", m.Kind)
	w.Append("source", m.Source)
	w.Append("value", m.Value)
	return w.MarshalJSON()
}

// UnmarshalJSON accepts both the current string ids and the legacy numeric
// timestamp ids found in older data files.
func (m *CashMovement) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID     jsonID           `json:"id"`
		Date   date.Date        `json:"date"`
		Kind   CashMovementKind `json:"kind"`
		Source string           `json:"source"`
		Value  decimal.Decimal  `json:"value"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	m.ID = string(temp.ID)
	m.Date = temp.Date
	m.Kind = temp.Kind
	m.Source = temp.Source
	m.Value = temp.Value
	return nil
}

func (m CashMovement) Equal(o CashMovement) bool {
	return m.ID == o.ID && m.Date == o.Date && m.Kind == o.Kind &&
		m.Source == o.Source && m.Value.Equal(o.Value)
}

// CashBalance is the net of all contributions minus withdrawals.
func CashBalance(movements []CashMovement) decimal.Decimal {
	var total decimal.Decimal
	for _, m := range movements {
		switch m.Kind {
		case Contribution:
			total = total.Add(m.Value)
		case Withdrawal:
			total = total.Sub(m.Value)
		}
	}
	return total
}

// SourceBalance aggregates the cash ledger for one source party.
type SourceBalance struct {
	Source      string
	Contributed decimal.Decimal
	Withdrawn   decimal.Decimal
	Balance     decimal.Decimal
}

// BalancesBySource returns per-source totals, sorted by source name.
func BalancesBySource(movements []CashMovement) []SourceBalance {
	bySource := make(map[string]*SourceBalance)
	for _, m := range movements {
		b, ok := bySource[m.Source]
		if !ok {
			b = &SourceBalance{Source: m.Source}
			bySource[m.Source] = b
		}
		switch m.Kind {
		case Contribution:
			b.Contributed = b.Contributed.Add(m.Value)
		case Withdrawal:
			b.Withdrawn = b.Withdrawn.Add(m.Value)
		}
	}
	balances := make([]SourceBalance, 0, len(bySource))
	for _, b := range bySource {
		b.Balance = b.Contributed.Sub(b.Withdrawn)
		balances = append(balances, *b)
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].Source < balances[j].Source })
	return balances
}

package carteira

import (
	"fmt"
	"sort"
	"strings"

	"github.com/canhoto/carteira/date"
	"github.com/shopspring/decimal"
)

// AssetClass is the closed set of position classes the tracker knows about.
type AssetClass int

const (
	// Stock is a common share.
	Stock AssetClass = iota
	// Fund is a REIT-like real-estate fund.
	Fund
)

func (c AssetClass) String() string {
	switch c {
	case Stock:
		return "STOCK"
	case Fund:
		return "REIT-LIKE-FUND"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch strings.ToUpper(s) {
	case "STOCK":
		return Stock, nil
	case "REIT-LIKE-FUND", "FUND":
		return Fund, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so the class serializes as
// its wire string, both as a value and as a JSON map key.
func (c AssetClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *AssetClass) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AssetClasses lists all classes in display order.
func AssetClasses() []AssetClass { return []AssetClass{Stock, Fund} }

// TransactionKind discriminates buy and sell events.
type TransactionKind int

const (
	Buy TransactionKind = iota
	Sell
)

func (k TransactionKind) String() string {
	switch k {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseTransactionKind parses a string into a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch strings.ToUpper(s) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

func (k TransactionKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *TransactionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseTransactionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// DistributionKind is the closed set of distribution payment types.
type DistributionKind int

const (
	Dividend DistributionKind = iota
	InterestOnCapital
	Yield
	Amortization
)

func (k DistributionKind) String() string {
	switch k {
	case Dividend:
		return "DIVIDEND"
	case InterestOnCapital:
		return "INTEREST_ON_CAPITAL"
	case Yield:
		return "YIELD"
	case Amortization:
		return "AMORTIZATION"
	default:
		return "unknown"
	}
}

// ParseDistributionKind parses a string into a DistributionKind.
func ParseDistributionKind(s string) (DistributionKind, error) {
	switch strings.ToUpper(s) {
	case "DIVIDEND":
		return Dividend, nil
	case "INTEREST_ON_CAPITAL":
		return InterestOnCapital, nil
	case "YIELD":
		return Yield, nil
	case "AMORTIZATION":
		return Amortization, nil
	default:
		return 0, fmt.Errorf("unknown distribution kind: %q", s)
	}
}

func (k DistributionKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *DistributionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseDistributionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Transaction is one buy or sell event of an asset.
//
// GrossValue is stored, not recomputed at read time; NewTransaction and the
// validation quick-fix are the only places that derive it from quantity and
// unit price.
type Transaction struct {
	Date       date.Date       `json:"date"`
	Kind       TransactionKind `json:"kind"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	GrossValue decimal.Decimal `json:"grossValue"`
	Fee        decimal.Decimal `json:"fee"`
}

// NewTransaction builds a transaction with a consistent gross value.
func NewTransaction(day date.Date, kind TransactionKind, quantity int64, unitPrice, fee decimal.Decimal) Transaction {
	return Transaction{
		Date:       day,
		Kind:       kind,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		GrossValue: unitPrice.Mul(decimal.NewFromInt(quantity)),
		Fee:        fee,
	}
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("kind", t.Kind)
	w.Append("quantity", t.Quantity)
	w.Append("unitPrice", t.UnitPrice)
	w.Append("grossValue", t.GrossValue)
	w.Append("fee", t.Fee)
	return w.MarshalJSON()
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date && t.Kind == o.Kind && t.Quantity == o.Quantity &&
		t.UnitPrice.Equal(o.UnitPrice) && t.GrossValue.Equal(o.GrossValue) && t.Fee.Equal(o.Fee)
}

// Distribution is one dividend/interest/yield/amortization payment.
type Distribution struct {
	Date  date.Date        `json:"date"`
	Kind  DistributionKind `json:"kind"`
	Value decimal.Decimal  `json:"value"`
}

// MarshalJSON implements the json.Marshaler interface for Distribution.
func (d Distribution) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", d.Date)
	w.Append("kind", d.Kind)
	w.Append("value", d.Value)
	return w.MarshalJSON()
}

func (d Distribution) Equal(o Distribution) bool {
	return d.Date == o.Date && d.Kind == o.Kind && d.Value.Equal(o.Value)
}

// Asset represents one held position. The quantity, averageCost,
// investedCapital, currentValue, returnPct and distributionYieldPct fields
// are derived: they are recomputed from the transaction and distribution
// lists and the current quote after every mutation, and are never
// independently authoritative.
type Asset struct {
	Code                 string          `json:"code"`
	Class                AssetClass      `json:"assetClass"`
	Quantity             int64           `json:"quantity"`
	AverageCost          decimal.Decimal `json:"averageCost"`
	InvestedCapital      decimal.Decimal `json:"investedCapital"`
	CurrentQuote         decimal.Decimal `json:"currentQuote"`
	CurrentValue         decimal.Decimal `json:"currentValue"`
	ReturnPct            Percent         `json:"returnPct"`
	DistributionYieldPct Percent         `json:"distributionYieldPct"`
	TargetPct            Percent         `json:"targetPct"`
	PortfolioPct         Percent         `json:"portfolioPct"`
	Transactions         []Transaction   `json:"transactions"`
	Distributions        []Distribution  `json:"distributions"`
}

// NewAsset builds an asset from its first transaction, with all derived
// fields already computed.
func NewAsset(code string, class AssetClass, quote decimal.Decimal, first Transaction) Asset {
	a := Asset{
		Code:          strings.ToUpper(strings.TrimSpace(code)),
		Class:         class,
		CurrentQuote:  quote,
		Transactions:  []Transaction{first},
		Distributions: []Distribution{},
	}
	a.recompute()
	return a
}

// MarshalJSON implements the json.Marshaler interface for Asset, keeping the
// persisted field order stable.
func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("code", a.Code)
	w.Append("assetClass", a.Class)
	w.Append("quantity", a.Quantity)
	w.Append("averageCost", a.AverageCost)
	w.Append("investedCapital", a.InvestedCapital)
	w.Append("currentQuote", a.CurrentQuote)
	w.Append("currentValue", a.CurrentValue)
	w.Append("returnPct", a.ReturnPct)
	w.Append("distributionYieldPct", a.DistributionYieldPct)
	w.Append("targetPct", a.TargetPct)
	w.Append("portfolioPct", a.PortfolioPct)
	w.Append("transactions", a.sortedTransactions())
	w.Append("distributions", a.sortedDistributions())
	return w.MarshalJSON()
}

// recompute refreshes every derived field from the transaction and
// distribution lists and the current quote.
func (a *Asset) recompute() {
	a.Quantity = NetQuantity(a.Transactions)
	a.AverageCost = AverageCost(a.Transactions)
	a.InvestedCapital = InvestedCapital(a.Transactions)
	a.CurrentValue = CurrentValue(a.Quantity, a.CurrentQuote)
	distTotal := DistributionsTotal(a.Distributions)
	a.DistributionYieldPct = DistributionYield(a.Distributions, a.InvestedCapital)
	a.ReturnPct = Return(a.CurrentValue, a.InvestedCapital, distTotal)
}

// clone returns a deep copy of the asset.
func (a Asset) clone() Asset {
	c := a
	c.Transactions = append([]Transaction(nil), a.Transactions...)
	c.Distributions = append([]Distribution(nil), a.Distributions...)
	return c
}

// sortedTransactions returns the transactions ordered by date for display
// and persistence. Insertion order is not semantically significant; the sort
// is stable so same-day entries keep their relative order.
func (a Asset) sortedTransactions() []Transaction {
	txs := append([]Transaction(nil), a.Transactions...)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })
	return txs
}

func (a Asset) sortedDistributions() []Distribution {
	ds := append([]Distribution(nil), a.Distributions...)
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Date.Before(ds[j].Date) })
	return ds
}

// SortedTransactions returns the asset's transactions in date order.
func (a Asset) SortedTransactions() []Transaction { return a.sortedTransactions() }

// SortedDistributions returns the asset's distributions in date order.
func (a Asset) SortedDistributions() []Distribution { return a.sortedDistributions() }

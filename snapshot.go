package carteira

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Snapshot is the complete serializable state of the portfolio: the held
// assets, the cash ledger, and the configuration.
//
// Snapshots are copy-on-write: every mutation method returns a new snapshot
// and leaves its receiver untouched, so a caller holding a snapshot can keep
// reading it while the store moves on.
type Snapshot struct {
	Assets        []Asset        `json:"assets"`
	CashMovements []CashMovement `json:"cashMovements"`
	Configuration Configuration  `json:"configuration"`
}

// NewSnapshot returns an empty snapshot with default configuration.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Assets:        []Asset{},
		CashMovements: []CashMovement{},
		Configuration: DefaultConfiguration(),
	}
}

// MarshalJSON implements the json.Marshaler interface for Snapshot, keeping
// the persisted field order stable.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("assets", s.sortedAssets())
	w.Append("cashMovements", s.CashMovements)
	w.Append("configuration", s.Configuration)
	return w.MarshalJSON()
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Assets:        make([]Asset, len(s.Assets)),
		CashMovements: append([]CashMovement{}, s.CashMovements...),
		Configuration: s.Configuration.clone(),
	}
	for i, a := range s.Assets {
		out.Assets[i] = a.clone()
	}
	return out
}

// Asset returns the asset with the given code, or false.
func (s *Snapshot) Asset(code string) (Asset, bool) {
	code = strings.ToUpper(code)
	for _, a := range s.Assets {
		if a.Code == code {
			return a.clone(), true
		}
	}
	return Asset{}, false
}

func (s *Snapshot) assetIndex(code string) int {
	code = strings.ToUpper(code)
	for i := range s.Assets {
		if s.Assets[i].Code == code {
			return i
		}
	}
	return -1
}

// sortedAssets returns the assets ordered by code.
func (s *Snapshot) sortedAssets() []Asset {
	assets := append([]Asset(nil), s.Assets...)
	sort.Slice(assets, func(i, j int) bool { return assets[i].Code < assets[j].Code })
	return assets
}

// SortedAssets returns deep copies of the assets ordered by code.
func (s *Snapshot) SortedAssets() []Asset {
	assets := s.sortedAssets()
	for i := range assets {
		assets[i] = assets[i].clone()
	}
	return assets
}

// AddAsset appends a new asset. The asset arrives with its derived fields
// already computed from its initial transaction.
func (s *Snapshot) AddAsset(a Asset) (*Snapshot, error) {
	if s.assetIndex(a.Code) >= 0 {
		return nil, fmt.Errorf("adding %q: %w", a.Code, ErrDuplicateAsset)
	}
	out := s.Clone()
	out.Assets = append(out.Assets, a.clone())
	return out.refreshed(), nil
}

// UpdateAsset replaces the asset with the matching code and recomputes its
// derived fields. A code not present is a no-op, not an error.
func (s *Snapshot) UpdateAsset(a Asset) *Snapshot {
	i := s.assetIndex(a.Code)
	if i < 0 {
		return s
	}
	out := s.Clone()
	replacement := a.clone()
	replacement.recompute()
	out.Assets[i] = replacement
	return out.refreshed()
}

// RemoveAsset deletes the asset with the matching code.
func (s *Snapshot) RemoveAsset(code string) (*Snapshot, error) {
	i := s.assetIndex(code)
	if i < 0 {
		return nil, fmt.Errorf("removing %q: %w", code, ErrAssetNotFound)
	}
	out := s.Clone()
	out.Assets = append(out.Assets[:i], out.Assets[i+1:]...)
	return out.refreshed(), nil
}

// AddTransaction appends a transaction to the named asset and recomputes its
// derived fields.
func (s *Snapshot) AddTransaction(code string, t Transaction) (*Snapshot, error) {
	i := s.assetIndex(code)
	if i < 0 {
		return nil, fmt.Errorf("transaction on %q: %w", code, ErrAssetNotFound)
	}
	out := s.Clone()
	a := &out.Assets[i]
	a.Transactions = append(a.Transactions, t)
	a.recompute()
	return out.refreshed(), nil
}

// UpdateTransaction replaces the transaction at the given index of the named
// asset's date-ordered transaction list.
func (s *Snapshot) UpdateTransaction(code string, index int, t Transaction) (*Snapshot, error) {
	i := s.assetIndex(code)
	if i < 0 {
		return nil, fmt.Errorf("transaction on %q: %w", code, ErrAssetNotFound)
	}
	out := s.Clone()
	a := &out.Assets[i]
	txs := a.sortedTransactions()
	if index < 0 || index >= len(txs) {
		return nil, fmt.Errorf("transaction %d of %q: %w", index, code, ErrIndexOutOfRange)
	}
	txs[index] = t
	a.Transactions = txs
	a.recompute()
	return out.refreshed(), nil
}

// RemoveTransaction deletes the transaction at the given index of the named
// asset's date-ordered transaction list. Removing the last transaction
// removes the asset itself, no empty position lingers.
func (s *Snapshot) RemoveTransaction(code string, index int) (*Snapshot, error) {
	i := s.assetIndex(code)
	if i < 0 {
		return nil, fmt.Errorf("transaction on %q: %w", code, ErrAssetNotFound)
	}
	out := s.Clone()
	a := &out.Assets[i]
	txs := a.sortedTransactions()
	if index < 0 || index >= len(txs) {
		return nil, fmt.Errorf("transaction %d of %q: %w", index, code, ErrIndexOutOfRange)
	}
	txs = append(txs[:index], txs[index+1:]...)
	if len(txs) == 0 {
		out.Assets = append(out.Assets[:i], out.Assets[i+1:]...)
		return out.refreshed(), nil
	}
	a.Transactions = txs
	a.recompute()
	return out.refreshed(), nil
}

// AddDistribution appends a distribution to the named asset. Only the yield
// and return figures move; quantity and invested capital are untouched.
func (s *Snapshot) AddDistribution(code string, d Distribution) (*Snapshot, error) {
	i := s.assetIndex(code)
	if i < 0 {
		return nil, fmt.Errorf("distribution on %q: %w", code, ErrAssetNotFound)
	}
	out := s.Clone()
	a := &out.Assets[i]
	a.Distributions = append(a.Distributions, d)
	a.recompute()
	return out.refreshed(), nil
}

// UpdateDistribution replaces the distribution at the given index of the
// named asset's date-ordered distribution list.
func (s *Snapshot) UpdateDistribution(code string, index int, d Distribution) (*Snapshot, error) {
	i := s.assetIndex(code)
	if i < 0 {
		return nil, fmt.Errorf("distribution on %q: %w", code, ErrAssetNotFound)
	}
	out := s.Clone()
	a := &out.Assets[i]
	ds := a.sortedDistributions()
	if index < 0 || index >= len(ds) {
		return nil, fmt.Errorf("distribution %d of %q: %w", index, code, ErrIndexOutOfRange)
	}
	ds[index] = d
	a.Distributions = ds
	a.recompute()
	return out.refreshed(), nil
}

// RemoveDistribution deletes the distribution at the given index of the
// named asset's date-ordered distribution list.
func (s *Snapshot) RemoveDistribution(code string, index int) (*Snapshot, error) {
	i := s.assetIndex(code)
	if i < 0 {
		return nil, fmt.Errorf("distribution on %q: %w", code, ErrAssetNotFound)
	}
	out := s.Clone()
	a := &out.Assets[i]
	ds := a.sortedDistributions()
	if index < 0 || index >= len(ds) {
		return nil, fmt.Errorf("distribution %d of %q: %w", index, code, ErrIndexOutOfRange)
	}
	a.Distributions = append(ds[:index], ds[index+1:]...)
	a.recompute()
	return out.refreshed(), nil
}

// CashMovement returns the movement with the given id, or false.
func (s *Snapshot) CashMovement(id string) (CashMovement, bool) {
	for _, m := range s.CashMovements {
		if m.ID == id {
			return m, true
		}
	}
	return CashMovement{}, false
}

// AddCashMovement appends a movement to the cash ledger.
func (s *Snapshot) AddCashMovement(m CashMovement) *Snapshot {
	out := s.Clone()
	out.CashMovements = append(out.CashMovements, m)
	return out
}

// UpdateCashMovement replaces the movement with the matching id.
func (s *Snapshot) UpdateCashMovement(m CashMovement) (*Snapshot, error) {
	for i := range s.CashMovements {
		if s.CashMovements[i].ID == m.ID {
			out := s.Clone()
			out.CashMovements[i] = m
			return out, nil
		}
	}
	return nil, fmt.Errorf("updating %q: %w", m.ID, ErrCashMovementNotFound)
}

// RemoveCashMovement deletes the movement with the matching id.
func (s *Snapshot) RemoveCashMovement(id string) (*Snapshot, error) {
	for i := range s.CashMovements {
		if s.CashMovements[i].ID == id {
			out := s.Clone()
			out.CashMovements = append(out.CashMovements[:i], out.CashMovements[i+1:]...)
			return out, nil
		}
	}
	return nil, fmt.Errorf("removing %q: %w", id, ErrCashMovementNotFound)
}

// UpdateConfiguration shallow-merges the set fields of the patch into the
// configuration.
func (s *Snapshot) UpdateConfiguration(p ConfigurationPatch) *Snapshot {
	out := s.Clone()
	out.Configuration = out.Configuration.merge(p)
	return out.refreshed()
}

// UpdateQuote sets the current quote of the named asset and recomputes its
// derived fields.
func (s *Snapshot) UpdateQuote(code string, quote decimal.Decimal) (*Snapshot, error) {
	i := s.assetIndex(code)
	if i < 0 {
		return nil, fmt.Errorf("quote for %q: %w", code, ErrAssetNotFound)
	}
	out := s.Clone()
	a := &out.Assets[i]
	a.CurrentQuote = quote
	a.recompute()
	return out.refreshed(), nil
}

// Refresh recomputes every asset's derived fields and its share of the
// portfolio. Running it on a consistent snapshot changes nothing; running it
// after a load heals stale persisted derived fields.
func (s *Snapshot) Refresh() *Snapshot {
	out := s.Clone()
	for i := range out.Assets {
		out.Assets[i].recompute()
	}
	return out.refreshed()
}

// refreshed recomputes the allocation percentages in place: each asset's
// share of the portfolio's current value, and its target share from the
// configuration.
func (s *Snapshot) refreshed() *Snapshot {
	var total decimal.Decimal
	for i := range s.Assets {
		total = total.Add(s.Assets[i].CurrentValue)
	}
	for i := range s.Assets {
		a := &s.Assets[i]
		a.PortfolioPct = percentOf(a.CurrentValue, total)
		a.TargetPct = s.Configuration.PerAssetTargetPct
		if target, ok := s.Configuration.ClassTargets[a.Class]; ok {
			if pct := target.PerAssetPct[a.Code]; pct > 0 {
				a.TargetPct = pct
			}
		}
	}
	return s
}

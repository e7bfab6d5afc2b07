package carteira

import "github.com/shopspring/decimal"

// This file is the derivation engine: pure functions computing every derived
// asset field from the transaction and distribution lists and the current
// quote. None of them fail; empty or zero inputs degrade to zero-valued
// outputs, and every division is guarded.

// AverageCost returns the weighted average purchase price per unit, computed
// from buy transactions only. Sells never change the average cost.
func AverageCost(txs []Transaction) decimal.Decimal {
	var value decimal.Decimal
	var quantity int64
	for _, t := range txs {
		if t.Kind == Buy {
			value = value.Add(t.GrossValue)
			quantity += t.Quantity
		}
	}
	if quantity <= 0 {
		return decimal.Zero
	}
	return value.Div(decimal.NewFromInt(quantity))
}

// NetQuantity folds the transaction list into the current net units held:
// buys add, sells subtract. The result may be negative when sells exceed the
// recorded buys; that state is representable, not rejected.
func NetQuantity(txs []Transaction) int64 {
	var total int64
	for _, t := range txs {
		switch t.Kind {
		case Buy:
			total += t.Quantity
		case Sell:
			total -= t.Quantity
		}
	}
	return total
}

// InvestedCapital sums gross value plus fee over buy transactions.
func InvestedCapital(txs []Transaction) decimal.Decimal {
	var total decimal.Decimal
	for _, t := range txs {
		if t.Kind == Buy {
			total = total.Add(t.GrossValue).Add(t.Fee)
		}
	}
	return total
}

// CurrentValue is the position's market value at the given quote.
func CurrentValue(quantity int64, quote decimal.Decimal) decimal.Decimal {
	return quote.Mul(decimal.NewFromInt(quantity))
}

// DistributionsTotal sums the value of all distributions.
func DistributionsTotal(ds []Distribution) decimal.Decimal {
	var total decimal.Decimal
	for _, d := range ds {
		total = total.Add(d.Value)
	}
	return total
}

// DistributionYield is the cumulative distribution value relative to the
// invested capital, as a percentage. Zero when nothing is invested.
func DistributionYield(ds []Distribution, invested decimal.Decimal) Percent {
	if !invested.IsPositive() {
		return 0
	}
	return percentOf(DistributionsTotal(ds), invested)
}

// Return is the distribution-inclusive return percentage:
// (currentValue + distributions - invested) / invested * 100, rounded to two
// decimal places. Zero when nothing is invested, whatever the current value.
func Return(currentValue, invested, distributionsTotal decimal.Decimal) Percent {
	if !invested.IsPositive() {
		return 0
	}
	result := currentValue.Add(distributionsTotal).Sub(invested)
	pct := result.Div(invested).Mul(decimal.NewFromInt(100)).Round(2)
	return Percent(pct.InexactFloat64())
}

package carteira

import (
	"github.com/canhoto/carteira/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build a decimal from a constant string.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// buy is a helper for tests to build a BUY with a consistent gross value.
func buy(day string, quantity int64, price string) Transaction {
	return NewTransaction(date.MustParse(day), Buy, quantity, dec(price), decimal.Zero)
}

// sell is a helper for tests to build a SELL with a consistent gross value.
func sell(day string, quantity int64, price string) Transaction {
	return NewTransaction(date.MustParse(day), Sell, quantity, dec(price), decimal.Zero)
}

// dividend is a helper for tests to build a DIVIDEND distribution.
func dividend(day string, value string) Distribution {
	return Distribution{Date: date.MustParse(day), Kind: Dividend, Value: dec(value)}
}

// contribution is a helper for tests to build a cash contribution.
func contribution(day, source, value string) CashMovement {
	return NewCashMovement(date.MustParse(day), Contribution, source, dec(value))
}

// withdrawal is a helper for tests to build a cash withdrawal.
func withdrawal(day, source, value string) CashMovement {
	return NewCashMovement(date.MustParse(day), Withdrawal, source, dec(value))
}

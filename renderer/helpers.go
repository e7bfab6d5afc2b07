package renderer

import (
	moneylib "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/canhoto/carteira"
)

// BRL formats a decimal amount as Brazilian reais.
func BRL(d decimal.Decimal) string {
	cur := moneylib.New(0, moneylib.BRL).Currency()
	return cur.Formatter().Format(d.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// Pct formats a percent with two decimals.
func Pct(p carteira.Percent) string { return p.String() }

// SignedPct formats a percent with an explicit sign, for return figures.
func SignedPct(p carteira.Percent) string {
	if p > 0 {
		return "+" + p.String()
	}
	return p.String()
}

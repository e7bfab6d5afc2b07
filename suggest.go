package carteira

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Suggestion recommends part of a fresh contribution for one asset.
type Suggestion struct {
	Code         string
	Class        AssetClass
	CurrentValue decimal.Decimal
	CurrentPct   Percent
	IdealPct     Percent
	AverageCost  decimal.Decimal
	CurrentQuote decimal.Decimal
	Score        float64
	Recommended  decimal.Decimal
}

// Suggest splits a contribution amount across under-allocated assets.
//
// Per class with a configured target, each asset's ideal share within the
// class comes from the explicit per-asset percentages; assets without one
// split the remaining percentage evenly. The score blends under-allocation
// (weight 0.6) with the discount below average cost when the quote is under
// it (weight 0.4). Only strictly positive scores qualify; the amount is
// split proportionally to score and rounded to whole currency units.
//
// An empty result means no asset qualifies, not a failure.
func Suggest(amount decimal.Decimal, assets []Asset, cfg Configuration) []Suggestion {
	if !amount.IsPositive() {
		return nil
	}

	byClass := make(map[AssetClass][]Asset)
	for _, a := range assets {
		byClass[a.Class] = append(byClass[a.Class], a)
	}

	var candidates []Suggestion
	for _, class := range AssetClasses() {
		classAssets := byClass[class]
		target, ok := cfg.ClassTargets[class]
		if !ok || len(classAssets) == 0 {
			continue
		}

		var classValue decimal.Decimal
		for _, a := range classAssets {
			classValue = classValue.Add(a.CurrentValue)
		}

		// Assets without an explicit share split what the explicit
		// ones leave on the table.
		var fixedPct Percent
		unpinned := 0
		for _, a := range classAssets {
			if pct := target.PerAssetPct[a.Code]; pct > 0 {
				fixedPct += pct
			} else {
				unpinned++
			}
		}
		var evenPct Percent
		if unpinned > 0 {
			evenPct = (100 - fixedPct) / Percent(unpinned)
		}

		for _, a := range classAssets {
			idealPct := target.PerAssetPct[a.Code]
			if idealPct <= 0 {
				idealPct = evenPct
			}
			currentPct := percentOf(a.CurrentValue, classValue)

			score := 0.6 * float64(idealPct-currentPct)
			if a.AverageCost.IsPositive() && a.CurrentQuote.LessThan(a.AverageCost) {
				discount := a.AverageCost.Sub(a.CurrentQuote).Div(a.AverageCost)
				score += 0.4 * discount.InexactFloat64()
			}
			if score <= 0 {
				continue
			}

			candidates = append(candidates, Suggestion{
				Code:         a.Code,
				Class:        class,
				CurrentValue: a.CurrentValue,
				CurrentPct:   currentPct,
				IdealPct:     idealPct,
				AverageCost:  a.AverageCost,
				CurrentQuote: a.CurrentQuote,
				Score:        score,
			})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var totalScore float64
	for _, c := range candidates {
		totalScore += c.Score
	}
	for i := range candidates {
		share := decimal.NewFromFloat(candidates[i].Score / totalScore)
		candidates[i].Recommended = amount.Mul(share).Round(0)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

package carteira

// Configuration holds the user-tunable portfolio settings.
type Configuration struct {
	// PerAssetTargetPct is the default ideal share a single asset should
	// represent in the whole portfolio.
	PerAssetTargetPct Percent `json:"perAssetTargetPct"`
	// AnnualReturnGoalPct is the user's yearly return goal.
	AnnualReturnGoalPct Percent `json:"annualReturnGoalPct"`
	// ClassTargets maps each asset class to its ideal allocation.
	ClassTargets map[AssetClass]ClassTarget `json:"classTargets"`
}

// ClassTarget is the ideal allocation of one asset class: its share of the
// whole portfolio, and optional per-asset shares within the class. Assets of
// the class without an entry (or with a zero entry) split the remaining
// percentage evenly.
type ClassTarget struct {
	TotalPct    Percent            `json:"totalPct"`
	PerAssetPct map[string]Percent `json:"perAssetPct"`
}

// DefaultConfiguration returns the initial settings used on first run.
func DefaultConfiguration() Configuration {
	return Configuration{
		PerAssetTargetPct:   2.99,
		AnnualReturnGoalPct: 10.0,
		ClassTargets: map[AssetClass]ClassTarget{
			Stock: {TotalPct: 40, PerAssetPct: map[string]Percent{}},
			Fund:  {TotalPct: 60, PerAssetPct: map[string]Percent{}},
		},
	}
}

// MarshalJSON implements the json.Marshaler interface for Configuration.
func (c Configuration) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("perAssetTargetPct", c.PerAssetTargetPct)
	w.Append("annualReturnGoalPct", c.AnnualReturnGoalPct)
	w.Append("classTargets", c.ClassTargets)
	return w.MarshalJSON()
}

// clone returns a deep copy of the configuration.
func (c Configuration) clone() Configuration {
	out := c
	out.ClassTargets = make(map[AssetClass]ClassTarget, len(c.ClassTargets))
	for class, target := range c.ClassTargets {
		perAsset := make(map[string]Percent, len(target.PerAssetPct))
		for code, pct := range target.PerAssetPct {
			perAsset[code] = pct
		}
		out.ClassTargets[class] = ClassTarget{TotalPct: target.TotalPct, PerAssetPct: perAsset}
	}
	return out
}

// ConfigurationPatch carries the fields of an UpdateConfiguration call. Nil
// fields are left untouched, so a patch only overwrites what it sets.
type ConfigurationPatch struct {
	PerAssetTargetPct   *Percent
	AnnualReturnGoalPct *Percent
	ClassTargets        map[AssetClass]ClassTarget
}

// merge applies the patch onto a copy of the configuration. Class targets
// replace per class, not per asset: setting a class target overwrites that
// class's whole allocation.
func (c Configuration) merge(p ConfigurationPatch) Configuration {
	out := c.clone()
	if p.PerAssetTargetPct != nil {
		out.PerAssetTargetPct = *p.PerAssetTargetPct
	}
	if p.AnnualReturnGoalPct != nil {
		out.AnnualReturnGoalPct = *p.AnnualReturnGoalPct
	}
	for class, target := range p.ClassTargets {
		perAsset := make(map[string]Percent, len(target.PerAssetPct))
		for code, pct := range target.PerAssetPct {
			perAsset[code] = pct
		}
		out.ClassTargets[class] = ClassTarget{TotalPct: target.TotalPct, PerAssetPct: perAsset}
	}
	return out
}

package carteira

// Seed returns the snapshot used when no data has been persisted yet: no
// positions, no cash, and a starter allocation split between stocks and
// real-estate funds with a few common targets pinned.
func Seed() *Snapshot {
	s := NewSnapshot()
	s.Configuration = Configuration{
		PerAssetTargetPct:   2.99,
		AnnualReturnGoalPct: 10.0,
		ClassTargets: map[AssetClass]ClassTarget{
			Stock: {
				TotalPct: 40,
				PerAssetPct: map[string]Percent{
					"PETR4": 5.0,
					"VALE3": 5.0,
					"ITUB4": 3.5,
					"BBDC4": 3.0,
					"WEGE3": 2.5,
				},
			},
			Fund: {
				TotalPct: 60,
				PerAssetPct: map[string]Percent{
					"HGLG11": 4.0,
					"VISC11": 3.5,
					"XPML11": 3.0,
					"BCFF11": 3.0,
					"MXRF11": 2.5,
				},
			},
		},
	}
	return s
}

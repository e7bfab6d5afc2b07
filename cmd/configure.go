package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/canhoto/carteira"
)

// --- Configure Command ---

type configureCmd struct {
	perAsset string
	goal     string
	class    string
	total    string
	code     string
	pct      string
	show     bool
}

func (*configureCmd) Name() string     { return "configure" }
func (*configureCmd) Synopsis() string { return "tune the allocation targets" }
func (*configureCmd) Usage() string {
	return `cart configure [-per-asset <pct>] [-goal <pct>] [-class <class> -total <pct> [-code <code> -pct <pct>]] [-show]

  Updates the configuration: the default per-asset target, the annual
  return goal, a class's total share, or one asset's pinned share within
  its class. Only the given fields change. With -show, prints the current
  configuration instead.
`
}

func (c *configureCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.perAsset, "per-asset", "", "Default ideal share per asset, in percent")
	f.StringVar(&c.goal, "goal", "", "Annual return goal, in percent")
	f.StringVar(&c.class, "class", "", "Asset class to retarget (STOCK or REIT-LIKE-FUND)")
	f.StringVar(&c.total, "total", "", "The class's share of the portfolio, in percent")
	f.StringVar(&c.code, "code", "", "Pin one asset's share within the class")
	f.StringVar(&c.pct, "pct", "", "The pinned share, in percent")
	f.BoolVar(&c.show, "show", false, "Print the current configuration")
}

func (c *configureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	cfg := store.Snapshot().Configuration

	if c.show {
		fmt.Printf("Per-asset target: %s\n", cfg.PerAssetTargetPct)
		fmt.Printf("Annual return goal: %s\n", cfg.AnnualReturnGoalPct)
		for _, class := range carteira.AssetClasses() {
			target := cfg.ClassTargets[class]
			fmt.Printf("%s: %s of the portfolio\n", class, target.TotalPct)
			for code, pct := range target.PerAssetPct {
				fmt.Printf("  %s: %s\n", code, pct)
			}
		}
		return subcommands.ExitSuccess
	}

	var patch carteira.ConfigurationPatch
	if c.perAsset != "" {
		pct, err := parsePercent("per-asset", c.perAsset)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		patch.PerAssetTargetPct = &pct
	}
	if c.goal != "" {
		pct, err := parsePercent("goal", c.goal)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		patch.AnnualReturnGoalPct = &pct
	}
	if c.class != "" {
		class, err := carteira.ParseAssetClass(c.class)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		// start from the current class target and change what was given
		target := cfg.ClassTargets[class]
		if target.PerAssetPct == nil {
			target.PerAssetPct = map[string]carteira.Percent{}
		}
		if c.total != "" {
			pct, err := parsePercent("total", c.total)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitUsageError
			}
			target.TotalPct = pct
		}
		if c.code != "" {
			code, err := carteira.ValidateCode(c.code)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitUsageError
			}
			pct, err := parsePercent("pct", c.pct)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitUsageError
			}
			target.PerAssetPct[code] = pct
		}
		patch.ClassTargets = map[carteira.AssetClass]carteira.ClassTarget{class: target}
	}
	if patch.PerAssetTargetPct == nil && patch.AnnualReturnGoalPct == nil && patch.ClassTargets == nil {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.UpdateConfiguration(patch), nil
	}); err != nil {
		return fail(err)
	}
	fmt.Println("Configuration updated")
	return subcommands.ExitSuccess
}

func parsePercent(name, value string) (carteira.Percent, error) {
	d, err := parseDecimal(name, value)
	if err != nil {
		return 0, err
	}
	return carteira.Percent(d.InexactFloat64()), nil
}

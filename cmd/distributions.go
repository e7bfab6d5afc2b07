package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/canhoto/carteira"
	"github.com/canhoto/carteira/date"
)

// parseDistribution builds a validated distribution from flag values.
func parseDistribution(dateStr, kind, value string) (carteira.Distribution, error) {
	day, err := date.Normalize(dateStr)
	if err != nil {
		return carteira.Distribution{}, err
	}
	k, err := carteira.ParseDistributionKind(kind)
	if err != nil {
		return carteira.Distribution{}, err
	}
	v, err := parseDecimal("value", value)
	if err != nil {
		return carteira.Distribution{}, err
	}
	return carteira.Distribution{Date: day, Kind: k, Value: v}.Validate()
}

// --- Distribution Command ---

type distributionCmd struct {
	code  string
	date  string
	kind  string
	value string
}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "record a distribution payment" }
func (*distributionCmd) Usage() string {
	return `cart distribution -c <code> -k <kind> -v <value> [-d <date>]

  Records a distribution on an asset. The kind is DIVIDEND,
  INTEREST_ON_CAPITAL, YIELD or AMORTIZATION. Only the yield and return
  figures move; quantity and invested capital are untouched.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
	f.StringVar(&c.date, "d", date.Today().String(), "Payment date (YYYY-MM-DD)")
	f.StringVar(&c.kind, "k", "DIVIDEND", "Distribution kind")
	f.StringVar(&c.value, "v", "", "Amount received")
}

func (c *distributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	dist, err := parseDistribution(c.date, c.kind, c.value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.AddDistribution(c.code, dist)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s on %s\n", dist.Kind, dist.Value, c.code)
	return subcommands.ExitSuccess
}

// --- Edit Distribution Command ---

type editDistributionCmd struct {
	code  string
	index int
	date  string
	kind  string
	value string
}

func (*editDistributionCmd) Name() string     { return "edit-distribution" }
func (*editDistributionCmd) Synopsis() string { return "replace a recorded distribution" }
func (*editDistributionCmd) Usage() string {
	return `cart edit-distribution -c <code> -i <index> -k <kind> -v <value> [-d <date>]

  Replaces the distribution at the given index of the asset's dated history
  (see cart tx).
`
}

func (c *editDistributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
	f.IntVar(&c.index, "i", -1, "Distribution index, as listed by cart tx")
	f.StringVar(&c.date, "d", date.Today().String(), "Payment date (YYYY-MM-DD)")
	f.StringVar(&c.kind, "k", "DIVIDEND", "Distribution kind")
	f.StringVar(&c.value, "v", "", "Amount received")
}

func (c *editDistributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.index < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	dist, err := parseDistribution(c.date, c.kind, c.value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.UpdateDistribution(c.code, c.index, dist)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Replaced distribution %d of %s\n", c.index, c.code)
	return subcommands.ExitSuccess
}

// --- Remove Distribution Command ---

type rmDistributionCmd struct {
	code  string
	index int
}

func (*rmDistributionCmd) Name() string     { return "rm-distribution" }
func (*rmDistributionCmd) Synopsis() string { return "remove a recorded distribution" }
func (*rmDistributionCmd) Usage() string {
	return `cart rm-distribution -c <code> -i <index>

  Removes the distribution at the given index of the asset's dated history.
`
}

func (c *rmDistributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
	f.IntVar(&c.index, "i", -1, "Distribution index, as listed by cart tx")
}

func (c *rmDistributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.index < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.RemoveDistribution(c.code, c.index)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed distribution %d of %s\n", c.index, c.code)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/canhoto/carteira"
	"github.com/canhoto/carteira/date"
	"github.com/canhoto/carteira/renderer"
)

// --- Add Command ---

type addCmd struct {
	code     string
	class    string
	date     string
	quantity int64
	price    string
	fee      string
	quote    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "open a new position with its first purchase" }
func (*addCmd) Usage() string {
	return `cart add -c <code> -class <class> -q <quantity> -p <price> [-d <date>] [-fee <fee>] [-quote <quote>]

  Adds a new asset with its initial BUY transaction. The class is STOCK or
  REIT-LIKE-FUND. The quote defaults to the purchase price.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code (ticker)")
	f.StringVar(&c.class, "class", "", "Asset class (STOCK or REIT-LIKE-FUND)")
	f.StringVar(&c.date, "d", date.Today().String(), "Purchase date (YYYY-MM-DD)")
	f.Int64Var(&c.quantity, "q", 0, "Number of units")
	f.StringVar(&c.price, "p", "", "Price per unit")
	f.StringVar(&c.fee, "fee", "0", "Brokerage fee")
	f.StringVar(&c.quote, "quote", "", "Current quote, defaults to the purchase price")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	code, err := carteira.ValidateCode(c.code)
	if err != nil {
		f.Usage()
		return subcommands.ExitUsageError
	}
	class, err := carteira.ParseAssetClass(c.class)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	tx, err := parseTransaction(c.date, carteira.Buy, c.quantity, c.price, c.fee)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	quote := tx.UnitPrice
	if c.quote != "" {
		if quote, err = parseDecimal("quote", c.quote); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	asset := carteira.NewAsset(code, class, quote, tx)
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.AddAsset(asset)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Added %s with %d units at %s\n", code, tx.Quantity, tx.UnitPrice)
	return subcommands.ExitSuccess
}

// --- Assets Command ---

type assetsCmd struct {
	code string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list positions, or detail one" }
func (*assetsCmd) Usage() string {
	return `cart assets [-c <code>]

  Lists all positions sorted by code. With -c, shows the detail of a single
  position including its transactions and distributions.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Show only this asset, in detail")
}

func (c *assetsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	snapshot := store.Snapshot()
	if c.code != "" {
		asset, ok := snapshot.Asset(c.code)
		if !ok {
			return fail(fmt.Errorf("asset %q: %w", c.code, carteira.ErrAssetNotFound))
		}
		printMarkdown(renderer.AssetMarkdown(asset))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.AssetsMarkdown(snapshot.SortedAssets()))
	return subcommands.ExitSuccess
}

// --- Remove Command ---

type rmCmd struct {
	code string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a position and its history" }
func (*rmCmd) Usage() string {
	return `cart rm -c <code>

  Removes the asset and all its transactions and distributions.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.RemoveAsset(c.code)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed %s\n", c.code)
	return subcommands.ExitSuccess
}

// --- Quote Command ---

type quoteCmd struct {
	code  string
	quote string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "set the current quote of an asset" }
func (*quoteCmd) Usage() string {
	return `cart quote -c <code> -p <quote>

  Sets the asset's current quote and recomputes its figures.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
	f.StringVar(&c.quote, "p", "", "Current quote")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.quote == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	quote, err := parseDecimal("quote", c.quote)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if quote, err = carteira.ValidateQuote(quote); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.UpdateQuote(c.code, quote)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Quote of %s set to %s\n", c.code, quote)
	return subcommands.ExitSuccess
}

// --- Refresh Command ---

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "recompute all derived figures" }
func (*refreshCmd) Usage() string {
	return `cart refresh

  Recomputes every asset's derived figures and portfolio shares from its
  transactions, distributions and current quote.
`
}

func (*refreshCmd) SetFlags(*flag.FlagSet) {}

func (*refreshCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.Refresh(), nil
	}); err != nil {
		return fail(err)
	}
	fmt.Println("Refreshed all positions")
	return subcommands.ExitSuccess
}

// parseDecimal parses a flag value into a decimal, naming the flag in the
// error.
func parseDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q", name, value)
	}
	return d, nil
}

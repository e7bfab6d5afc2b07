package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/canhoto/carteira"
	"github.com/canhoto/carteira/date"
	"github.com/canhoto/carteira/renderer"
)

// parseTransaction builds a validated transaction from flag values.
func parseTransaction(dateStr string, kind carteira.TransactionKind, quantity int64, price, fee string) (carteira.Transaction, error) {
	day, err := date.Normalize(dateStr)
	if err != nil {
		return carteira.Transaction{}, err
	}
	unitPrice, err := parseDecimal("price", price)
	if err != nil {
		return carteira.Transaction{}, err
	}
	feeValue, err := parseDecimal("fee", fee)
	if err != nil {
		return carteira.Transaction{}, err
	}
	return carteira.NewTransaction(day, kind, quantity, unitPrice, feeValue).Validate()
}

// --- Buy Command ---

type buyCmd struct {
	code     string
	date     string
	quantity int64
	price    string
	fee      string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase units to add to a position" }
func (*buyCmd) Usage() string {
	return `cart buy -c <code> -q <quantity> -p <price> [-d <date>] [-fee <fee>]

  Records a BUY on an existing asset and recomputes its figures.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.quantity, "q", 0, "Number of units")
	f.StringVar(&c.price, "p", "", "Price per unit")
	f.StringVar(&c.fee, "fee", "0", "Brokerage fee")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(f, c.code, c.date, carteira.Buy, c.quantity, c.price, c.fee)
}

// --- Sell Command ---

type sellCmd struct {
	code     string
	date     string
	quantity int64
	price    string
	fee      string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units to trim or close a position" }
func (*sellCmd) Usage() string {
	return `cart sell -c <code> -q <quantity> -p <price> [-d <date>] [-fee <fee>]

  Records a SELL on an existing asset. Selling never changes the average
  cost or the invested capital.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.quantity, "q", 0, "Number of units")
	f.StringVar(&c.price, "p", "", "Price per unit")
	f.StringVar(&c.fee, "fee", "0", "Brokerage fee")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(f, c.code, c.date, carteira.Sell, c.quantity, c.price, c.fee)
}

func recordTransaction(f *flag.FlagSet, code, dateStr string, kind carteira.TransactionKind, quantity int64, price, fee string) subcommands.ExitStatus {
	if code == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	tx, err := parseTransaction(dateStr, kind, quantity, price, fee)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.AddTransaction(code, tx)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %d units of %s at %s\n", tx.Kind, tx.Quantity, code, tx.UnitPrice)
	return subcommands.ExitSuccess
}

// --- Tx Command ---

type txCmd struct {
	code string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the dated history of one position" }
func (*txCmd) Usage() string {
	return `cart tx -c <code>

  Lists the transactions and distributions of one asset, with the indexes
  edit-tx, rm-tx, edit-distribution and rm-distribution take.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	asset, ok := store.Snapshot().Asset(c.code)
	if !ok {
		return fail(fmt.Errorf("asset %q: %w", c.code, carteira.ErrAssetNotFound))
	}
	printMarkdown(renderer.AssetMarkdown(asset))
	return subcommands.ExitSuccess
}

// --- Edit Tx Command ---

type editTxCmd struct {
	code     string
	index    int
	kind     string
	date     string
	quantity int64
	price    string
	fee      string
}

func (*editTxCmd) Name() string     { return "edit-tx" }
func (*editTxCmd) Synopsis() string { return "replace a recorded transaction" }
func (*editTxCmd) Usage() string {
	return `cart edit-tx -c <code> -i <index> -k <kind> -q <quantity> -p <price> [-d <date>] [-fee <fee>]

  Replaces the transaction at the given index of the asset's dated history
  (see cart tx) and recomputes its figures.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
	f.IntVar(&c.index, "i", -1, "Transaction index, as listed by cart tx")
	f.StringVar(&c.kind, "k", "BUY", "Transaction kind (BUY or SELL)")
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Int64Var(&c.quantity, "q", 0, "Number of units")
	f.StringVar(&c.price, "p", "", "Price per unit")
	f.StringVar(&c.fee, "fee", "0", "Brokerage fee")
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.index < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	kind, err := carteira.ParseTransactionKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	tx, err := parseTransaction(c.date, kind, c.quantity, c.price, c.fee)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.UpdateTransaction(c.code, c.index, tx)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Replaced transaction %d of %s\n", c.index, c.code)
	return subcommands.ExitSuccess
}

// --- Remove Tx Command ---

type rmTxCmd struct {
	code  string
	index int
}

func (*rmTxCmd) Name() string     { return "rm-tx" }
func (*rmTxCmd) Synopsis() string { return "remove a recorded transaction" }
func (*rmTxCmd) Usage() string {
	return `cart rm-tx -c <code> -i <index>

  Removes the transaction at the given index of the asset's dated history.
  Removing the last transaction removes the asset itself.
`
}

func (c *rmTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Asset code")
	f.IntVar(&c.index, "i", -1, "Transaction index, as listed by cart tx")
}

func (c *rmTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.index < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.RemoveTransaction(c.code, c.index)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed transaction %d of %s\n", c.index, c.code)
	return subcommands.ExitSuccess
}

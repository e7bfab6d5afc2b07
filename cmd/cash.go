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

// --- Cash Command ---

type cashCmd struct {
	list   bool
	date   string
	kind   string
	source string
	value  string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "record a cash movement, or list them" }
func (*cashCmd) Usage() string {
	return `cart cash [-list] | cart cash -k <kind> -s <source> -v <value> [-d <date>]

  Records a CONTRIBUTION or WITHDRAWAL in the cash ledger, independent of
  any asset. With -list, shows the ledger and per-source balances instead.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the cash ledger instead of recording")
	f.StringVar(&c.date, "d", date.Today().String(), "Movement date (YYYY-MM-DD)")
	f.StringVar(&c.kind, "k", "CONTRIBUTION", "Movement kind (CONTRIBUTION or WITHDRAWAL)")
	f.StringVar(&c.source, "s", "", "Source party of the movement")
	f.StringVar(&c.value, "v", "", "Amount moved")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if c.list {
		printMarkdown(renderer.CashMarkdown(store.Snapshot().CashMovements))
		return subcommands.ExitSuccess
	}

	movement, status := c.parseMovement(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	movement = carteira.NewCashMovement(movement.Date, movement.Kind, movement.Source, movement.Value)
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.AddCashMovement(movement), nil
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s from %s (id %s)\n", movement.Kind, movement.Value, movement.Source, movement.ID)
	return subcommands.ExitSuccess
}

func (c *cashCmd) parseMovement(f *flag.FlagSet) (carteira.CashMovement, subcommands.ExitStatus) {
	day, err := date.Normalize(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return carteira.CashMovement{}, subcommands.ExitUsageError
	}
	kind, err := carteira.ParseCashMovementKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return carteira.CashMovement{}, subcommands.ExitUsageError
	}
	value, err := parseDecimal("value", c.value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return carteira.CashMovement{}, subcommands.ExitUsageError
	}
	movement, err := carteira.CashMovement{Date: day, Kind: kind, Source: c.source, Value: value}.Validate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		f.Usage()
		return carteira.CashMovement{}, subcommands.ExitUsageError
	}
	return movement, subcommands.ExitSuccess
}

// --- Edit Cash Command ---

type editCashCmd struct {
	cashCmd
	id string
}

func (*editCashCmd) Name() string     { return "edit-cash" }
func (*editCashCmd) Synopsis() string { return "replace a recorded cash movement" }
func (*editCashCmd) Usage() string {
	return `cart edit-cash -id <id> -k <kind> -s <source> -v <value> [-d <date>]

  Replaces the cash movement with the given id, keeping the id stable.
`
}

func (c *editCashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Movement id, as listed by cart cash -list")
	f.StringVar(&c.date, "d", date.Today().String(), "Movement date (YYYY-MM-DD)")
	f.StringVar(&c.kind, "k", "CONTRIBUTION", "Movement kind (CONTRIBUTION or WITHDRAWAL)")
	f.StringVar(&c.source, "s", "", "Source party of the movement")
	f.StringVar(&c.value, "v", "", "Amount moved")
}

func (c *editCashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	movement, status := c.parseMovement(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	movement.ID = c.id
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.UpdateCashMovement(movement)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Replaced cash movement %s\n", c.id)
	return subcommands.ExitSuccess
}

// --- Remove Cash Command ---

type rmCashCmd struct {
	id string
}

func (*rmCashCmd) Name() string     { return "rm-cash" }
func (*rmCashCmd) Synopsis() string { return "remove a recorded cash movement" }
func (*rmCashCmd) Usage() string {
	return `cart rm-cash -id <id>

  Removes the cash movement with the given id.
`
}

func (c *rmCashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Movement id, as listed by cart cash -list")
}

func (c *rmCashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Apply(func(s *carteira.Snapshot) (*carteira.Snapshot, error) {
		return s.RemoveCashMovement(c.id)
	}); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed cash movement %s\n", c.id)
	return subcommands.ExitSuccess
}

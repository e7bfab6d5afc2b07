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

// --- Summary Command ---

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `cart summary

  Shows totals, return, distributions, cash balance and the allocation by
  class.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	snapshot := store.Snapshot()
	summary := carteira.Summarize(snapshot.Assets, snapshot.CashMovements)
	classes := carteira.ClassDistribution(snapshot.Assets)
	printMarkdown(renderer.SummaryMarkdown(summary, classes, date.Today()))
	return subcommands.ExitSuccess
}

// --- Suggest Command ---

type suggestCmd struct {
	amount string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest how to split a contribution" }
func (*suggestCmd) Usage() string {
	return `cart suggest -amount <value>

  Splits a contribution across under-allocated assets, favoring positions
  below their ideal share and quoting under their average cost.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Contribution amount to split")
}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := parseDecimal("amount", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	snapshot := store.Snapshot()
	suggestions := carteira.Suggest(amount, snapshot.Assets, snapshot.Configuration)
	printMarkdown(renderer.SuggestionMarkdown(amount, suggestions))
	return subcommands.ExitSuccess
}

// --- Chart Command ---

type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the class allocation as a PNG chart" }
func (*chartCmd) Usage() string {
	return `cart chart -o <file.png>

  Renders the allocation by class as a donut chart.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "allocation.png", "Output PNG file")
}

func (c *chartCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	classes := carteira.ClassDistribution(store.Snapshot().Assets)

	out, err := os.Create(c.output)
	if err != nil {
		return fail(err)
	}
	defer out.Close()
	if err := renderer.ClassDistributionChart(out, classes); err != nil {
		return fail(err)
	}
	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}

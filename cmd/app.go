// Package cmd implements the CLI application to manage the portfolio.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/canhoto/carteira"
	"github.com/canhoto/carteira/config"
	"github.com/canhoto/carteira/localstore"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "assets")
	c.Register(&assetsCmd{}, "assets")
	c.Register(&rmCmd{}, "assets")
	c.Register(&quoteCmd{}, "assets")
	c.Register(&refreshCmd{}, "assets")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&editTxCmd{}, "transactions")
	c.Register(&rmTxCmd{}, "transactions")

	c.Register(&distributionCmd{}, "distributions")
	c.Register(&editDistributionCmd{}, "distributions")
	c.Register(&rmDistributionCmd{}, "distributions")

	c.Register(&cashCmd{}, "cash")
	c.Register(&editCashCmd{}, "cash")
	c.Register(&rmCashCmd{}, "cash")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&suggestCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&configureCmd{}, "settings")
	c.Register(&exportCmd{}, "settings")
	c.Register(&importCmd{}, "settings")
	c.Register(&resetCmd{}, "settings")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, the lifecycle is one command per process, so the
// composition happens once per Execute.

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// openPersister builds the storage adapter from the process configuration.
func openPersister() (*localstore.Store, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("loading configuration: %w", err)
	}
	log := newLogger(cfg.LogLevel)
	return localstore.New(cfg.DataDir, cfg.StorageKey, log), log, nil
}

// openStore loads the persisted snapshot into a live store, seeding on
// first run.
func openStore() (*carteira.Store, error) {
	p, log, err := openPersister()
	if err != nil {
		return nil, err
	}
	return carteira.Open(p, carteira.Seed(), log), nil
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

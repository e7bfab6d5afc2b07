package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/canhoto/carteira/localstore"
)

// --- Reset Command ---

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase all stored data" }
func (*resetCmd) Usage() string {
	return `cart reset

  Erases the stored snapshot; the next command starts from the seed. The
  erase must be confirmed by running the command a second time within 5
  seconds.
`
}

func (*resetCmd) SetFlags(*flag.FlagSet) {}

func (*resetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	persister, _, err := openPersister()
	if err != nil {
		return fail(err)
	}
	done, err := persister.Reset()
	if err != nil {
		return fail(err)
	}
	if !done {
		fmt.Printf("This erases all stored data. Run cart reset again within %s to confirm.\n", localstore.ResetWindow)
		return subcommands.ExitSuccess
	}
	fmt.Println("Stored data erased")
	return subcommands.ExitSuccess
}

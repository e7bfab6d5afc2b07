package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/canhoto/carteira"
)

// --- Export Command ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the snapshot to a JSON file" }
func (*exportCmd) Usage() string {
	return `cart export [-o <file.json>]

  Writes the whole snapshot, wrapped in an envelope tagged with the export
  time, to the given file or stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout when empty")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer f.Close()
		out = f
	}
	if err := carteira.ExportSnapshot(out, store.Snapshot(), time.Now()); err != nil {
		return fail(err)
	}
	if c.output != "" {
		fmt.Printf("Exported to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}

// --- Import Command ---

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the snapshot from a JSON file" }
func (*importCmd) Usage() string {
	return `cart import -i <file.json>

  Replaces the whole state with the snapshot read from the file. Both the
  export envelope and a bare snapshot are accepted.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input file")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	in, err := os.Open(c.input)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	snapshot, err := carteira.ImportSnapshot(in)
	if err != nil {
		return fail(err)
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	store.Replace(snapshot)
	fmt.Printf("Imported %d assets and %d cash movements from %s\n",
		len(snapshot.Assets), len(snapshot.CashMovements), c.input)
	return subcommands.ExitSuccess
}

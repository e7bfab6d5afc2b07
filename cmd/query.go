package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/canhoto/carteira"
)

// --- Query Command ---

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query over the snapshot" }
func (*queryCmd) Usage() string {
	return `cart query '<jsonpath>'

  Runs a read-only JSONPath query over the snapshot JSON, e.g.
  cart query '$.assets[?(@.assetClass=="STOCK")].code'
`
}

func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	// query the snapshot through its wire form, so paths address the
	// persisted field names.
	var buf bytes.Buffer
	if err := carteira.EncodeSnapshot(&buf, store.Snapshot()); err != nil {
		return fail(err)
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return fail(err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return fail(fmt.Errorf("query %q: %w", path, err))
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jval); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

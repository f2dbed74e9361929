// Command arrdump decodes an ARR file and prints its entries as a
// table, one row per entry.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bsm/arrfile"
)

func main() {
	backup := pflag.Bool("backup", false, "treat the input as an editor backup container")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: arrdump [flags] <file.arr>\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	name := pflag.Arg(0)
	entries, err := dump(name, *backup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arrdump: %s cannot be read: %v\n", name, err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "INDEX\tTYPE\tVALUE\n")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, e.Type(), e.Display())
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "arrdump:", err)
		os.Exit(1)
	}
}

func dump(name string, backup bool) ([]arrfile.Entry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if backup {
		return arrfile.ReadBackup(f)
	}
	return arrfile.Read(f)
}

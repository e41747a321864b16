package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/guardeat/treekit/hashtree"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build and print a sample tree",
		Long: `The demo command builds a small service hierarchy in memory and
prints it, showing the default rendering and the container statistics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	tr := newTree()

	type entry struct{ key, value, parent string }
	for _, e := range []entry{
		{"services", "root", ""},
		{"network", "group", "services"},
		{"dhcp", "running", "network"},
		{"dns", "running", "network"},
		{"storage", "group", "services"},
		{"nfs", "stopped", "storage"},
	} {
		var err error
		if e.parent == "" {
			err = tr.Insert(e.key, e.value)
		} else {
			err = tr.InsertChild(e.key, e.value, e.parent)
		}
		if err != nil {
			return err
		}
	}

	opts := hashtree.DefaultPrintOptions()
	opts.ASCII = asciiOut
	if err := tr.Fprint(os.Stdout, opts); err != nil {
		return err
	}

	printInfo("size=%d table=%d load=%.3f\n", tr.Size(), tr.TableSize(), tr.LoadFactor())
	return nil
}

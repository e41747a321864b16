package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guardeat/treekit/hashtree"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a tree script",
		Long: `The run command executes a line-oriented script against a fresh tree
and writes any "print" or "stats" output to stdout. Use "-" to read the
script from stdin.

Script commands:
  insert <key> <value> [parent]   add a key (optionally under a parent)
  put <key> <value>               update a value, inserting on miss
  erase <key>                     remove a key and its subtree
  parent <key> <newparent> [pos]  reparent, optionally at a sibling slot
  print                           render the tree
  stats                           show size, table size, and load factor

Lines starting with # are comments.

Example:
  treectl run build.tree
  cat build.tree | treectl run -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args[0])
		},
	}
}

func runRun(path string) error {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	tr := newTree()
	printVerbose("Executing script: %s\n", path)

	if err := runScript(tr, in, os.Stdout); err != nil {
		return err
	}

	printVerbose("Done: %d keys, table size %d\n", tr.Size(), tr.TableSize())
	return nil
}

// newTree builds the tree the global flags describe.
func newTree() *hashtree.Tree[string, string] {
	if folded {
		return hashtree.NewFoldedStrings[string]()
	}
	return hashtree.NewStrings[string]()
}

// runScript executes one command per line against tr, writing print/stats
// output to w. It stops at the first failing line.
func runScript(tr *hashtree.Tree[string, string], r io.Reader, w io.Writer) error {
	opts := hashtree.DefaultPrintOptions()
	opts.ASCII = asciiOut

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runLine(tr, strings.Fields(line), w, opts); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

func runLine(tr *hashtree.Tree[string, string], fields []string, w io.Writer, opts hashtree.PrintOptions) error {
	switch cmd := fields[0]; cmd {
	case "insert":
		switch len(fields) {
		case 3:
			return tr.Insert(fields[1], fields[2])
		case 4:
			return tr.InsertChild(fields[1], fields[2], fields[3])
		default:
			return fmt.Errorf("insert wants <key> <value> [parent], got %d args", len(fields)-1)
		}
	case "put":
		if len(fields) != 3 {
			return fmt.Errorf("put wants <key> <value>, got %d args", len(fields)-1)
		}
		tr.Put(fields[1], fields[2])
		return nil
	case "erase":
		if len(fields) != 2 {
			return fmt.Errorf("erase wants <key>, got %d args", len(fields)-1)
		}
		return tr.Erase(fields[1])
	case "parent":
		switch len(fields) {
		case 3:
			return tr.SetParent(fields[1], fields[2])
		case 4:
			pos, err := strconv.Atoi(fields[3])
			if err != nil {
				return fmt.Errorf("bad position %q: %w", fields[3], err)
			}
			return tr.SetParentAt(fields[1], fields[2], pos)
		default:
			return fmt.Errorf("parent wants <key> <newparent> [pos], got %d args", len(fields)-1)
		}
	case "print":
		return tr.Fprint(w, opts)
	case "stats":
		_, err := fmt.Fprintf(w, "size=%d table=%d load=%.3f\n",
			tr.Size(), tr.TableSize(), tr.LoadFactor())
		return err
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

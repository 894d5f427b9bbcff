package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/registry"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [library...]",
		Short: "Show which library implements which operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list(cmd, args)
		},
	}
}

func (a *app) list(cmd *cobra.Command, names []string) error {
	features := a.cfg.Features()
	ops := bench.Ops()

	entries := registry.Global.ListEntries()
	if len(names) > 0 {
		entries = entries[:0:0]
		for _, name := range names {
			e := registry.Global.Lookup(strings.ToLower(name))
			if e == nil {
				return fmt.Errorf("%w: %q", registry.ErrUnknownLibrary, name)
			}
			entries = append(entries, *e)
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	header := []string{"LIBRARY", "SIMD"}
	for _, op := range ops {
		header = append(header, strings.ToUpper(op.String()))
	}
	header = append(header, "RUNNABLE", "MODULE")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, e := range entries {
		row := []string{e.Name, e.SIMDLevel.String()}
		for _, op := range ops {
			row = append(row, mark(e.Case(op) != nil))
		}
		row = append(row, mark(cpu.Supports(features, e.SIMDLevel)), e.Module)
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func mark(ok bool) string {
	if ok {
		return "x"
	}
	return "-"
}

package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-mathbench/internal/cpu"
	"github.com/cwbudde/algo-mathbench/internal/libs/highway"
)

func newEnvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the host CPU features the benchmarks run with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := a.cfg.Features()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "go\t%s\n", runtime.Version())
			fmt.Fprintf(w, "arch\t%s\n", f.Architecture)
			fmt.Fprintf(w, "cpus\t%d\n", runtime.NumCPU())
			fmt.Fprintf(w, "features\t%s\n", f)
			fmt.Fprintf(w, "best level\t%s\n", cpu.BestLevel(f))
			fmt.Fprintf(w, "highway dispatch\t%s\n", highway.DispatchLevel())
			return w.Flush()
		},
	}
}

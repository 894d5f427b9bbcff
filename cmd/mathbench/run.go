package main

import (
	"flag"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/config"
	"github.com/cwbudde/algo-mathbench/internal/registry"
	"github.com/cwbudde/algo-mathbench/matrix4"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "Run benchmarks whose name matches pattern",
		Long: `Runs every benchmark whose full name matches the regular expression
pattern, e.g. "matrix4 mul matrix4/gonum/100". Without a pattern all
benchmarks run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pattern string
			if len(args) == 1 {
				pattern = args[0]
			}
			return a.run(cmd, pattern)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&a.ops, "ops", nil, "comma-separated operations to run, e.g. transpose,inverse (default all)")
	f.StringSlice("libs", nil, "comma-separated libraries to run (default all)")
	f.String("benchtime", config.DefaultBenchtime, "run time per benchmark, duration or Nx")
	f.Int64("seed", config.DefaultSeed, "operand random seed")
	f.Int("pool-size", bench.DefaultPoolSize, "operands cycled through by unbatched benchmarks")
	f.Bool("force-generic", false, "skip libraries that dispatch to SIMD kernels")
	mustBind(a.v, f, map[string]string{
		config.KeyLibraries:    "libs",
		config.KeyBenchtime:    "benchtime",
		config.KeySeed:         "seed",
		config.KeyPoolSize:     "pool-size",
		config.KeyForceGeneric: "force-generic",
	})
	return cmd
}

func (a *app) run(cmd *cobra.Command, pattern string) error {
	if err := setBenchtime(a.cfg.Benchtime); err != nil {
		return err
	}

	features := a.cfg.Features()
	libs, err := registry.Global.Select(features, a.cfg.Libraries)
	if err != nil {
		return err
	}
	logSelection(libs)

	plan, err := a.plan(libs)
	if err != nil {
		return err
	}
	if plan, err = matrix4.Filter(plan, pattern); err != nil {
		return err
	}
	log.Debug().Int("benchmarks", len(plan)).Str("host", features.String()).Msg("starting run")

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BENCHMARK\tITERATIONS\tNS/OP\tALLOCS/OP\tB/OP\tELEMS/S")
	matrix4.Run(plan, func(rec matrix4.Record) {
		log.Debug().Str("benchmark", rec.Name).Int("n", rec.N).Float64("ns_per_op", rec.NsPerOp).Msg("done")
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%d\t%d\t%s\n",
			rec.Name, rec.N, rec.NsPerOp, rec.AllocsPerOp, rec.BytesPerOp, formatRate(rec.ElemsPerSec))
	})
	return w.Flush()
}

// plan builds the plan for libs, restricted to --ops when given.
func (a *app) plan(libs []registry.LibEntry) ([]matrix4.Benchmark, error) {
	if len(a.ops) == 0 {
		return matrix4.Plan(libs, a.cfg.Options()), nil
	}

	var plan []matrix4.Benchmark
	for _, name := range a.ops {
		op, err := bench.ParseOp(name)
		if err != nil {
			return nil, err
		}
		plan = append(plan, matrix4.PlanOp(op, libs, a.cfg.Options())...)
	}
	return plan, nil
}

func logSelection(libs []registry.LibEntry) {
	selected := make(map[string]bool, len(libs))
	for _, e := range libs {
		selected[e.Name] = true
		log.Debug().Str("library", e.Name).Str("simd", e.SIMDLevel.String()).Msg("selected")
	}
	for _, e := range registry.Global.ListEntries() {
		if !selected[e.Name] {
			log.Debug().Str("library", e.Name).Str("simd", e.SIMDLevel.String()).Msg("skipped")
		}
	}
}

func formatRate(perSec float64) string {
	if perSec == 0 {
		return "-"
	}
	return strconv.FormatFloat(perSec, 'e', 3, 64)
}

var initTesting sync.Once

// setBenchtime sets the run length used by testing.Benchmark.
func setBenchtime(v string) error {
	initTesting.Do(testing.Init)
	if err := flag.Set("test.benchtime", v); err != nil {
		return fmt.Errorf("benchtime %q: %w", v, err)
	}
	return nil
}

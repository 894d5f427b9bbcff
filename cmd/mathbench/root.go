package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-mathbench/internal/config"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config

	// ops restricts run to these operation names.
	ops []string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "mathbench",
		Short: "Benchmark 4x4 matrix operations across Go math libraries",
		Long: `mathbench measures return-self, transpose, determinant, inverse,
matrix x matrix and matrix x vector on 4x4 operands for every registered
library and prints one row per benchmark.

Settings come from flags, MATHBENCH_* environment variables, a .env file
and mathbench.yaml, in that order of precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./mathbench.yaml)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	mustBind(a.v, pf, map[string]string{config.KeyVerbose: "verbose"})

	root.AddCommand(newRunCmd(a), newListCmd(a), newEnvCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.File != "" {
		log.Info().Str("file", cfg.File).Msg("using config file")
	}
	log.Debug().
		Strs("libraries", cfg.Libraries).
		Int64("seed", cfg.Seed).
		Int("pool_size", cfg.PoolSize).
		Str("benchtime", cfg.Benchtime).
		Bool("force_generic", cfg.ForceGeneric).
		Msg("configuration loaded")
	return nil
}

func setupLogger(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// mustBind binds config keys to the named flags of fs.
func mustBind(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

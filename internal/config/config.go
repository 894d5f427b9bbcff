// Package config loads benchmark settings from a YAML file, a .env file,
// MATHBENCH_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-mathbench/internal/bench"
	"github.com/cwbudde/algo-mathbench/internal/cpu"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Keys understood by Load. Environment variables are the upper-cased key
// with the MATHBENCH_ prefix, e.g. MATHBENCH_POOL_SIZE.
const (
	KeyLibraries    = "libraries"
	KeySeed         = "seed"
	KeyPoolSize     = "pool_size"
	KeyBenchtime    = "benchtime"
	KeyForceGeneric = "force_generic"
	KeyVerbose      = "verbose"
)

// Defaults.
const (
	DefaultSeed      = 1
	DefaultBenchtime = "1s"
)

// Config is the resolved benchmark configuration.
type Config struct {
	// Libraries restricts the run to these names. Empty means all.
	Libraries []string

	Seed     int64
	PoolSize int

	// Benchtime uses the go test syntax: a duration ("500ms") or an
	// iteration count ("1000x").
	Benchtime string

	ForceGeneric bool
	Verbose      bool

	// File is the config file that was read, if any.
	File string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Seed:      DefaultSeed,
		PoolSize:  bench.DefaultPoolSize,
		Benchtime: DefaultBenchtime,
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var problems []string

	if c.PoolSize <= 0 {
		problems = append(problems, fmt.Sprintf("pool_size must be positive, got: %d", c.PoolSize))
	}
	if err := validateBenchtime(c.Benchtime); err != nil {
		problems = append(problems, err.Error())
	}
	for _, name := range c.Libraries {
		if strings.TrimSpace(name) == "" {
			problems = append(problems, "libraries must not contain empty names")
			break
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func validateBenchtime(s string) error {
	if n, ok := strings.CutSuffix(s, "x"); ok {
		count, err := strconv.Atoi(n)
		if err != nil || count <= 0 {
			return fmt.Errorf("benchtime %q: iteration count must be a positive integer", s)
		}
		return nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("benchtime %q: %v", s, err)
	}
	if d <= 0 {
		return fmt.Errorf("benchtime must be positive, got: %v", d)
	}
	return nil
}

// Options returns the operand settings for benchmark cases.
func (c Config) Options() bench.Options {
	return bench.Options{Seed: c.Seed, PoolSize: c.PoolSize}
}

// Features returns the detected host features with ForceGeneric applied.
func (c Config) Features() cpu.Features {
	f := cpu.DetectFeatures()
	if c.ForceGeneric {
		f.ForceGeneric = true
	}
	return f
}

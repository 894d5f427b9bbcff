package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "MATHBENCH"

// Load reads configuration into v and returns the validated result.
//
// Sources, highest precedence first: flags bound to v, MATHBENCH_*
// environment variables (a .env file in the working directory is loaded
// first), cfgFile or ./mathbench.yaml, defaults. A missing mathbench.yaml
// is not an error; a missing cfgFile is.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("mathbench")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault(KeyLibraries, []string{})
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyPoolSize, def.PoolSize)
	v.SetDefault(KeyBenchtime, def.Benchtime)
	v.SetDefault(KeyForceGeneric, false)
	v.SetDefault(KeyVerbose, false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(cfgFile), err)
		}
	}

	cfg := Config{
		Libraries:    splitList(v.GetStringSlice(KeyLibraries)),
		Seed:         v.GetInt64(KeySeed),
		PoolSize:     v.GetInt(KeyPoolSize),
		Benchtime:    strings.TrimSpace(v.GetString(KeyBenchtime)),
		ForceGeneric: v.GetBool(KeyForceGeneric),
		Verbose:      v.GetBool(KeyVerbose),
		File:         v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// splitList flattens comma-separated elements, so "a,b" from the
// environment and [a, b] from YAML give the same result.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, name := range strings.Split(item, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, strings.ToLower(name))
			}
		}
	}
	return out
}

func describe(cfgFile string) string {
	if cfgFile == "" {
		return "mathbench.yaml"
	}
	return cfgFile
}

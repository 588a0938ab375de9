package config

import (
	"strings"

	"github.com/spf13/viper"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Store

// Configuration is the full daemon configuration.
type Configuration struct {
	Server    Server `debugmap:"visible"`
	Pool      Pool   `debugmap:"visible"`
	Store     Store  `debugmap:"visible"`
	LogLevel  string `default:"info" debugmap:"visible"`
	LogFormat string `default:"console" debugmap:"visible"`
}

// Server holds the HTTP server settings.
type Server struct {
	Mode     string `default:"dev" debugmap:"visible"`
	HTTPPort int    `default:"8000" debugmap:"visible"`
}

// Pool holds the worker-pool sizing.
type Pool struct {
	NumWorkers int `default:"4" debugmap:"visible"`
	QueueSize  int `default:"64" debugmap:"visible"`
}

// Store holds the run-history storage settings. An empty DataFile keeps the
// history in memory for the lifetime of the process.
type Store struct {
	DataFile string `default:"" debugmap:"visible"`
}

// Load builds the configuration from defaults, an optional config file and
// TASKPOOL_* environment variables, in increasing precedence.
func Load(path string) (*Configuration, error) {
	cfg := NewConfigurationWithOptionsAndDefaults()

	v := viper.New()
	v.SetEnvPrefix("TASKPOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Viper only resolves env vars for keys it knows about, so every field
	// is registered as a default. Defaults come from the struct tags.
	v.SetDefault("server.mode", cfg.Server.Mode)
	v.SetDefault("server.httpport", cfg.Server.HTTPPort)
	v.SetDefault("pool.numworkers", cfg.Pool.NumWorkers)
	v.SetDefault("pool.queuesize", cfg.Pool.QueueSize)
	v.SetDefault("store.datafile", cfg.Store.DataFile)
	v.SetDefault("loglevel", cfg.LogLevel)
	v.SetDefault("logformat", cfg.LogFormat)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the materialized configuration for one benchmark run.
type Config struct {
	Iterations  int
	KEMs        []string
	Signatures  []string
	ResultsDir  string
	ResultsFile string
	Message     string
	Verbose     bool
	MetricsAddr string
	LogFile     string
}

// Load initializes viper from an optional config file, a .env file and
// PQCBENCH_* environment variables, and sets the defaults for every knob.
func Load(cfgFile string) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("pqcbench")
	}

	viper.SetEnvPrefix("PQCBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("iterations", 100)
	viper.SetDefault("kems", []string{
		"Kyber768",
		"ML-KEM-512",
		"ML-KEM-768",
		"ML-KEM-1024",
	})
	viper.SetDefault("signatures", []string{
		"Dilithium3",
		"ML-DSA-44",
		"ML-DSA-65",
		"ML-DSA-87",
		"Ed25519",
	})
	viper.SetDefault("results_dir", "results/tables")
	viper.SetDefault("results_file", "pqc_benchmark_results.csv")
	viper.SetDefault("message", "This is a sample message for signing.")
	viper.SetDefault("verbose", false)
	viper.SetDefault("metrics_addr", "")
	viper.SetDefault("log_file", "")

	// A config file is optional; defaults and env cover everything.
	_ = viper.ReadInConfig()
}

// FromViper materializes a Config from the current viper state.
func FromViper() Config {
	return Config{
		Iterations:  viper.GetInt("iterations"),
		KEMs:        viper.GetStringSlice("kems"),
		Signatures:  viper.GetStringSlice("signatures"),
		ResultsDir:  viper.GetString("results_dir"),
		ResultsFile: viper.GetString("results_file"),
		Message:     viper.GetString("message"),
		Verbose:     viper.GetBool("verbose"),
		MetricsAddr: viper.GetString("metrics_addr"),
		LogFile:     viper.GetString("log_file"),
	}
}

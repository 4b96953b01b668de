package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pqcbench/internal/bench"
	"pqcbench/internal/config"
	"pqcbench/internal/mechanism"
	"pqcbench/internal/report"
	"pqcbench/internal/telemetry"
)

// newProviderFunc allows mocking the crypto provider in tests.
var newProviderFunc = func() mechanism.Provider { return mechanism.NewCIRCLProvider() }

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suite and write the results CSV",
		Long: `Benchmarks every configured KEM and signature mechanism: for each one,
runs N timed iterations of the keygen/encapsulate/decapsulate (or
keygen/sign/verify) triple, averages the timings, reads the fixed key,
ciphertext and signature sizes, and writes one CSV row per mechanism.
Mechanisms not enabled in the linked provider build are skipped; any
correctness failure aborts the run without writing a report.`,
		Args: cobra.NoArgs,
		RunE: runBenchmarks,
	}

	cmd.Flags().IntP("iterations", "n", 0, "Iterations per algorithm (overrides config)")
	cmd.Flags().StringSlice("kems", nil, "KEM mechanisms to benchmark (overrides config)")
	cmd.Flags().StringSlice("sigs", nil, "Signature mechanisms to benchmark (overrides config)")
	cmd.Flags().String("out-dir", "", "Directory for the results CSV (overrides config)")
	cmd.Flags().String("out-file", "", "File name for the results CSV (overrides config)")
	cmd.Flags().String("message", "", "Message signed by signature benchmarks (overrides config)")
	cmd.Flags().String("metrics-addr", "", "Expose Prometheus metrics on this address during the run")

	return cmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()
	applyRunFlags(cmd, &cfg)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := telemetry.StartMetricsServer(cfg.MetricsAddr); err != nil {
				slog.Error("Metrics server stopped", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Banner("Starting PQC Algorithm Benchmark"))

	suite := bench.NewSuite(newProviderFunc(), cfg.Iterations, []byte(cfg.Message), out)
	records, err := suite.Run(cfg.KEMs, cfg.Signatures)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No results to save.")
		return nil
	}

	path, err := report.WriteCSV(cfg.ResultsDir, cfg.ResultsFile, records)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBenchmark finished. Results saved to '%s'\n\n", path)

	report.RenderSummary(out, records)
	return nil
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations, _ = cmd.Flags().GetInt("iterations")
	}
	if cmd.Flags().Changed("kems") {
		cfg.KEMs, _ = cmd.Flags().GetStringSlice("kems")
	}
	if cmd.Flags().Changed("sigs") {
		cfg.Signatures, _ = cmd.Flags().GetStringSlice("sigs")
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.ResultsDir, _ = cmd.Flags().GetString("out-dir")
	}
	if cmd.Flags().Changed("out-file") {
		cfg.ResultsFile, _ = cmd.Flags().GetString("out-file")
	}
	if cmd.Flags().Changed("message") {
		cfg.Message, _ = cmd.Flags().GetString("message")
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
	}
}

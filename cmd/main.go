package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/user/cipherbench/internal/benchmark"
	"github.com/user/cipherbench/internal/chart"
	"github.com/user/cipherbench/internal/ciphers"
	"github.com/user/cipherbench/internal/corpus"
	"github.com/user/cipherbench/internal/output"
	"github.com/user/cipherbench/internal/storage"
	"github.com/user/cipherbench/pkg/sysinfo"
)

var rootCmd = &cobra.Command{
	Use:   "cipherbench",
	Short: "CPU encryption benchmark for symmetric block ciphers",
	Long: `CipherBench encrypts the same text corpus with AES, Blowfish, Camellia,
TripleDES, SEED, IDEA and CAST5 in CBC mode under 128, 192 and 256-bit keys,
and compares how long each cipher takes.

Results are written to results.json as a flat algorithm -> seconds object
and the whole run is condensed into a single CPU score.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBenchmark,
}

func init() {
	defaults := benchmark.DefaultConfig()

	rootCmd.Flags().StringP("path", "p", "", "Text file path (required)")
	rootCmd.Flags().StringP("output", "o", defaults.OutputFile, "Results file")
	rootCmd.Flags().StringP("format", "f", defaults.Format, "Report format (table, json, csv)")
	rootCmd.Flags().Bool("chart", defaults.ShowChart, "Render the bar chart")
	rootCmd.Flags().Bool("progress-bar", defaults.ProgressBar, "Show progress bars instead of progress lines")
	rootCmd.Flags().BoolP("verbose", "v", defaults.Verbose, "Verbose output")
}

func loadConfig(cmd *cobra.Command) (benchmark.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CIPHERBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return benchmark.Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	config := benchmark.DefaultConfig()
	if err := v.Unmarshal(&config); err != nil {
		return benchmark.Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	if config.Path == "" {
		return config, fmt.Errorf("a corpus path is required (--path)")
	}
	return config, config.Validate()
}

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return run(config, newLogger(config.Verbose), cmd.OutOrStdout())
}

// run executes one full benchmark. Nothing is written to the results file
// unless every stage before it succeeded.
func run(config benchmark.Config, logger *logrus.Logger, stdout io.Writer) error {
	started := time.Now()
	runID := uuid.New().String()
	log := logger.WithField("run_id", runID)

	sysInfo, err := sysinfo.Collect()
	if err != nil {
		return fmt.Errorf("failed to collect system info: %w", err)
	}
	log.WithFields(logrus.Fields{
		"cpu":    sysInfo.CPUModel,
		"cores":  sysInfo.CPUCores,
		"aes_ni": sysInfo.AESNI,
		"load":   sysInfo.LoadAverage,
	}).Debug("system information")

	c, err := corpus.Load(config.Path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"path":         config.Path,
		"source_lines": c.SourceLines(),
		"records":      c.Len(),
		"bytes":        c.Bytes(),
	}).Info("corpus loaded")

	km, err := ciphers.NewKeyMaterial(rand.Reader)
	if err != nil {
		return err
	}

	var registries []*ciphers.Registry
	for _, class := range ciphers.AllKeyClasses() {
		log.WithField("key_class", class.String()).Info("preparing block ciphers")
		reg, err := ciphers.NewRegistry(class, km)
		if err != nil {
			return fmt.Errorf("failed to prepare %s ciphers: %w", class, err)
		}
		registries = append(registries, reg)
	}

	var progress benchmark.ProgressSink = benchmark.NewLineProgress(stdout)
	if config.ProgressBar {
		progress = benchmark.NewBarProgress(stdout)
	}

	runner := benchmark.NewRunner(progress, logger)
	classes, err := runner.RunAll(c, registries)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	sets := make([]*benchmark.Results, len(classes))
	for i, class := range classes {
		sets[i] = class.Results
	}
	merged := benchmark.Merge(sets...)

	if config.ShowChart {
		title := fmt.Sprintf("Block Cipher Benchmark (%d records)", c.Len())
		if err := chart.New(title).Render(stdout, classes); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
	}

	info, err := storage.WriteFile(config.OutputFile, func(w io.Writer) error {
		return output.WriteResults(w, merged)
	})
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	log.WithFields(logrus.Fields{
		"path":   info.Path,
		"keys":   merged.Len(),
		"sha256": info.Hash,
	}).Info("results saved")

	data := output.Data{
		RunID:      runID,
		SystemInfo: sysInfo,
		Config:     config,
		Corpus: output.CorpusInfo{
			Path:        config.Path,
			SourceLines: c.SourceLines(),
			Records:     c.Len(),
			Bytes:       c.Bytes(),
		},
		Classes: classes,
		Merged:  merged,
	}

	data.TotalTime = time.Since(started)
	data.Score, err = benchmark.Score(data.TotalTime)
	var scoreErr *benchmark.DegenerateScoreError
	if errors.As(err, &scoreErr) {
		log.WithField("total", data.TotalTime).Warn(scoreErr.Error())
		data.ScoreNote = "run too short"
	} else if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(config.Format)
	if err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}
	if err := formatter.Format(stdout, data); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

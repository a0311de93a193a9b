package benchmark

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/user/cipherbench/internal/ciphers"
	"github.com/user/cipherbench/internal/corpus"
)

// ClassResult is the outcome of benchmarking one key-size class.
type ClassResult struct {
	Class        ciphers.KeyClass
	Results      *Results
	Measurements []Measurement
}

type Runner struct {
	progress ProgressSink
	logger   *logrus.Logger
	now      func() time.Time
}

func NewRunner(progress ProgressSink, logger *logrus.Logger) *Runner {
	if progress == nil {
		progress = discardProgress{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Runner{
		progress: progress,
		logger:   logger,
		now:      time.Now,
	}
}

// Run feeds the corpus through every context of the registry, in registry
// order, and records the elapsed time of each pass.
func (r *Runner) Run(c *corpus.Corpus, reg *ciphers.Registry) (ClassResult, error) {
	result := ClassResult{
		Class:        reg.Class(),
		Results:      NewResults(),
		Measurements: make([]Measurement, 0, reg.Len()),
	}

	err := reg.Each(func(name string, ctx ciphers.Context) error {
		m, err := r.runSingleBenchmark(c, name, ctx)
		if err != nil {
			return fmt.Errorf("%s %s: %w", reg.Class(), name, err)
		}
		m.KeyClass = reg.Class().String()
		result.Results.Set(name, m.Elapsed)
		result.Measurements = append(result.Measurements, m)

		r.logger.WithFields(logrus.Fields{
			"algorithm": name,
			"key_class": m.KeyClass,
			"records":   m.Records,
			"elapsed":   m.Elapsed,
			"mb_per_s":  fmt.Sprintf("%.2f", m.MBPerSecond()),
		}).Debug("cipher pass complete")
		return nil
	})
	if err != nil {
		return ClassResult{}, err
	}
	return result, nil
}

// RunAll benchmarks each registry in turn.
func (r *Runner) RunAll(c *corpus.Corpus, regs []*ciphers.Registry) ([]ClassResult, error) {
	results := make([]ClassResult, 0, len(regs))
	for _, reg := range regs {
		r.logger.WithField("key_class", reg.Class().String()).Info("running benchmark")
		res, err := r.Run(c, reg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runSingleBenchmark(c *corpus.Corpus, name string, ctx ciphers.Context) (Measurement, error) {
	records := c.Records()
	n := len(records)
	m := Measurement{
		Algorithm: name,
		Records:   n,
	}

	if n == 0 {
		m.CompletedAt = r.now()
		return m, nil
	}

	// Leftover garbage from corpus loading or an earlier pass should not be
	// collected inside this one.
	runtime.GC()

	r.progress.Start(name, n)

	var elapsed time.Duration
	var out int64
	next := 1
	running := true
	start := r.now()

	for i, rec := range records {
		out += int64(len(ctx.Update(rec)))
		m.BytesIn += int64(len(rec))

		processed := i + 1
		if processed*10 < next*n {
			continue
		}

		// Pause the timer while reporting.
		elapsed += r.now().Sub(start)
		running = false
		for next <= 10 && processed*10 >= next*n {
			r.progress.Decile(name, next*10)
			next++
		}
		if processed < n {
			running = true
			start = r.now()
		}
	}
	if running {
		elapsed += r.now().Sub(start)
	}

	r.progress.Finish(name)

	if elapsed < 0 {
		return m, fmt.Errorf("clock went backwards: %s", elapsed)
	}
	m.Elapsed = elapsed
	m.BytesOut = out
	m.CompletedAt = r.now()
	return m, nil
}

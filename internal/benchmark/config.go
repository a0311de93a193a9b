package benchmark

import (
	"fmt"
	"time"
)

type Config struct {
	Path        string `json:"path" mapstructure:"path"`
	OutputFile  string `json:"output_file" mapstructure:"output"`
	Format      string `json:"format" mapstructure:"format"`
	ShowChart   bool   `json:"show_chart" mapstructure:"chart"`
	ProgressBar bool   `json:"progress_bar" mapstructure:"progress-bar"`
	Verbose     bool   `json:"verbose" mapstructure:"verbose"`
}

// DefaultConfig matches the behavior of a bare `--path` invocation.
func DefaultConfig() Config {
	return Config{
		OutputFile: "results.json",
		Format:     "table",
		ShowChart:  true,
	}
}

func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("a corpus path is required")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("an output file is required")
	}
	switch c.Format {
	case "table", "json", "csv":
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	return nil
}

// Measurement is one timed pass of a corpus through a single cipher context.
type Measurement struct {
	Algorithm   string        `json:"algorithm"`
	KeyClass    string        `json:"key_class"`
	Elapsed     time.Duration `json:"elapsed"`
	Records     int           `json:"records"`
	BytesIn     int64         `json:"bytes_in"`
	BytesOut    int64         `json:"bytes_out"`
	CompletedAt time.Time     `json:"completed_at"`
}

// MBPerSecond is the plaintext throughput of the pass, 0 when nothing was timed.
func (m Measurement) MBPerSecond() float64 {
	if m.Elapsed <= 0 {
		return 0
	}
	return float64(m.BytesIn) / (1024 * 1024) / m.Elapsed.Seconds()
}

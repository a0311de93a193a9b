package output

import (
	"fmt"
	"io"
	"time"

	"github.com/user/cipherbench/internal/benchmark"
	"github.com/user/cipherbench/pkg/sysinfo"
)

type Data struct {
	RunID      string
	SystemInfo *sysinfo.SystemInfo
	Config     benchmark.Config
	Corpus     CorpusInfo
	Classes    []benchmark.ClassResult
	Merged     *benchmark.Results
	TotalTime  time.Duration
	Score      float64
	// ScoreNote explains a missing score; empty when Score is valid.
	ScoreNote string
}

type CorpusInfo struct {
	Path        string `json:"path"`
	SourceLines int    `json:"source_lines"`
	Records     int    `json:"records"`
	Bytes       int64  `json:"bytes"`
}

func (d Data) HasScore() bool {
	return d.ScoreNote == ""
}

type Formatter interface {
	Format(w io.Writer, data Data) error
}

func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "table":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func eachMeasurement(data Data, fn func(benchmark.Measurement)) {
	for _, class := range data.Classes {
		for _, m := range class.Measurements {
			fn(m)
		}
	}
}

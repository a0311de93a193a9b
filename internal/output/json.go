package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/user/cipherbench/internal/benchmark"
)

type JSONFormatter struct{}

type JSONOutput struct {
	RunID      string                  `json:"run_id"`
	Timestamp  time.Time               `json:"timestamp"`
	SystemInfo any                     `json:"system_info"`
	Config     benchmark.Config        `json:"config"`
	Corpus     CorpusInfo              `json:"corpus"`
	Classes    map[string]any          `json:"classes"`
	Results    *benchmark.Results      `json:"results"`
	Passes     []benchmark.Measurement `json:"passes"`
	Summary    struct {
		TotalTime       time.Duration `json:"total_time"`
		TotalTimeString string        `json:"total_time_string"`
		Score           *float64      `json:"cpu_score"`
		ScoreNote       string        `json:"cpu_score_note,omitempty"`
	} `json:"summary"`
}

func (j *JSONFormatter) Format(w io.Writer, data Data) error {
	output := JSONOutput{
		RunID:      data.RunID,
		Timestamp:  time.Now(),
		SystemInfo: data.SystemInfo,
		Config:     data.Config,
		Corpus:     data.Corpus,
		Classes:    make(map[string]any, len(data.Classes)),
		Results:    data.Merged,
		Passes:     []benchmark.Measurement{},
	}
	if output.Results == nil {
		output.Results = benchmark.NewResults()
	}

	for _, class := range data.Classes {
		output.Classes[class.Class.String()] = class.Results
	}
	eachMeasurement(data, func(m benchmark.Measurement) {
		output.Passes = append(output.Passes, m)
	})

	output.Summary.TotalTime = data.TotalTime
	output.Summary.TotalTimeString = data.TotalTime.String()
	if data.HasScore() {
		score := data.Score
		output.Summary.Score = &score
	} else {
		output.Summary.ScoreNote = data.ScoreNote
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// WriteResults writes the flat algorithm -> seconds object persisted as
// results.json.
func WriteResults(w io.Writer, merged *benchmark.Results) error {
	if merged == nil {
		merged = benchmark.NewResults()
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

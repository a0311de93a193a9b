package benchmark

import (
	"fmt"
	"math"
	"time"
)

// DegenerateScoreError is returned when the run was too short for the
// logarithmic score to be meaningful (log10 of the total would be <= 0).
type DegenerateScoreError struct {
	Total time.Duration
}

func (e *DegenerateScoreError) Error() string {
	return fmt.Sprintf("total run time %s is too short for a CPU score (must exceed 1s)", e.Total)
}

// Score condenses the total wall time of a run into 1000 / log10(seconds).
func Score(total time.Duration) (float64, error) {
	secs := total.Seconds()
	if secs <= 1 {
		return 0, &DegenerateScoreError{Total: total}
	}
	return 1000 / math.Log10(secs), nil
}

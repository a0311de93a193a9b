package output

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/user/cipherbench/internal/benchmark"
)

type TableFormatter struct{}

func (t *TableFormatter) Format(w io.Writer, data Data) error {
	fmt.Fprintln(w, "\nBenchmark Results")
	fmt.Fprintln(w, "=================")
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Key Size",
		"Algorithm",
		"Records",
		"Elapsed",
		"MB/s",
		"Relative",
	})

	table.SetBorder(false)
	table.SetCenterSeparator("|")
	table.SetColumnSeparator("|")
	table.SetRowSeparator("-")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, class := range data.Classes {
		fastest := fastestPass(class.Measurements)
		for _, m := range class.Measurements {
			table.Append([]string{
				class.Class.String(),
				m.Algorithm,
				fmt.Sprintf("%d", m.Records),
				formatDuration(m.Elapsed),
				fmt.Sprintf("%.2f", m.MBPerSecond()),
				formatRelative(m.Elapsed, fastest),
			})
		}
	}

	table.Render()

	fmt.Fprintln(w, "\nSummary")
	fmt.Fprintln(w, "-------")

	fmt.Fprintf(w, "Corpus: %d of %d lines (%d bytes)\n", data.Corpus.Records, data.Corpus.SourceLines, data.Corpus.Bytes)
	if data.Merged != nil {
		fmt.Fprintf(w, "Algorithms: %d unique across %d key sizes\n", data.Merged.Len(), len(data.Classes))
	}
	fmt.Fprintf(w, "Total time: %s\n", formatDuration(data.TotalTime))
	if data.HasScore() {
		fmt.Fprintf(w, "CPU Score : %.2f\n", data.Score)
	} else {
		fmt.Fprintf(w, "CPU Score : n/a (%s)\n", data.ScoreNote)
	}

	return nil
}

func fastestPass(ms []benchmark.Measurement) time.Duration {
	if len(ms) == 0 {
		return 0
	}

	min := ms[0].Elapsed
	for _, m := range ms[1:] {
		if m.Elapsed < min {
			min = m.Elapsed
		}
	}
	return min
}

func formatRelative(d, fastest time.Duration) string {
	if fastest <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(d)/float64(fastest))
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000)
	} else if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.2fm", d.Minutes())
}

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/user/cipherbench/internal/benchmark"
)

type CSVFormatter struct{}

func (c *CSVFormatter) Format(w io.Writer, data Data) error {
	writer := csv.NewWriter(w)

	header := []string{
		"RunID",
		"Timestamp",
		"KeySize",
		"Algorithm",
		"Records",
		"BytesIn",
		"BytesOut",
		"Elapsed(s)",
		"MBPerSecond",
		"CPUModel",
		"CPUCores",
		"AESNI",
	}

	if err := writer.Write(header); err != nil {
		return err
	}

	var cpuModel, cores, aesni string
	if data.SystemInfo != nil {
		cpuModel = data.SystemInfo.CPUModel
		cores = fmt.Sprintf("%d", data.SystemInfo.CPUCores)
		aesni = fmt.Sprintf("%t", data.SystemInfo.AESNI)
	}

	var rowErr error
	eachMeasurement(data, func(m benchmark.Measurement) {
		if rowErr != nil {
			return
		}
		rowErr = writer.Write([]string{
			data.RunID,
			m.CompletedAt.Format(time.RFC3339),
			m.KeyClass,
			m.Algorithm,
			fmt.Sprintf("%d", m.Records),
			fmt.Sprintf("%d", m.BytesIn),
			fmt.Sprintf("%d", m.BytesOut),
			fmt.Sprintf("%.6f", m.Elapsed.Seconds()),
			fmt.Sprintf("%.2f", m.MBPerSecond()),
			cpuModel,
			cores,
			aesni,
		})
	})
	if rowErr != nil {
		return rowErr
	}

	writer.Flush()
	return writer.Error()
}

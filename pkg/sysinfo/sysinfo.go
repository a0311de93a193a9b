// Package sysinfo describes the machine a benchmark ran on, so scores from
// different hosts can be told apart.
package sysinfo

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

type SystemInfo struct {
	OS           string  `json:"os"`
	Architecture string  `json:"architecture"`
	CPUModel     string  `json:"cpu_model"`
	CPUMhz       float64 `json:"cpu_mhz"`
	CPUCores     int     `json:"cpu_cores"`
	CPUThreads   int     `json:"cpu_threads"`
	// AESNI is true when the CPU advertises hardware AES instructions.
	AESNI        bool    `json:"aes_ni"`
	TotalMemory  uint64  `json:"total_memory"`
	GoVersion    string  `json:"go_version"`
	Hostname     string  `json:"hostname"`
	Platform     string  `json:"platform"`
	LoadAverage  float64 `json:"load_average"`
}

// Collect gathers what it can; probes that fail leave their fields zero.
func Collect() (*SystemInfo, error) {
	info := &SystemInfo{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		GoVersion:    runtime.Version(),
		CPUCores:     runtime.NumCPU(),
	}

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		info.CPUModel = strings.TrimSpace(cpuInfo[0].ModelName)
		info.CPUMhz = cpuInfo[0].Mhz
		info.AESNI = hasAESFlag(cpuInfo[0].Flags)
	}

	if threads, err := cpu.Counts(true); err == nil {
		info.CPUThreads = threads
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = memInfo.Total
	}

	if hostInfo, err := host.Info(); err == nil {
		info.Hostname = hostInfo.Hostname
		info.Platform = hostInfo.Platform
	}

	// A busy machine skews every pass.
	if loadAvg, err := load.Avg(); err == nil {
		info.LoadAverage = loadAvg.Load1
	}

	return info, nil
}

func hasAESFlag(flags []string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, "aes") {
			return true
		}
	}
	return false
}

// TotalMemoryGB is the installed memory in GiB.
func (s *SystemInfo) TotalMemoryGB() float64 {
	return float64(s.TotalMemory) / (1024 * 1024 * 1024)
}

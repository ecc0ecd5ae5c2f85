// Package sysinfo reports host and process health for the /status command
package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/entities"
)

// Prober collects system snapshots. Implements deps.SystemProber.
type Prober struct{}

// NewProber creates a system prober
func NewProber() *Prober {
	return &Prober{}
}

// Snapshot collects a point-in-time system status
func (p *Prober) Snapshot() (*entities.SystemStatus, error) {
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	cores, err := cpu.Counts(true)
	if err != nil {
		cores = runtime.NumCPU()
	}

	return &entities.SystemStatus{
		GoVersion:         runtime.Version(),
		Goroutines:        runtime.NumGoroutine(),
		CPUCount:          cores,
		MemoryTotal:       vmStat.Total,
		MemoryUsedPercent: vmStat.UsedPercent,
	}, nil
}

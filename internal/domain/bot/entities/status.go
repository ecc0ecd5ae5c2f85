package entities

// SystemStatus is a point-in-time snapshot of the host and process,
// rendered by the /status command.
type SystemStatus struct {
	GoVersion         string
	Goroutines        int
	CPUCount          int
	MemoryTotal       uint64
	MemoryUsedPercent float64
}

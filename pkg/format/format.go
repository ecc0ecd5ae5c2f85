// Package format provides human-readable rendering of byte counts and durations.
package format

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Size converts a byte count to a human readable string.
func Size(bytes int64) string {
	if bytes <= 0 {
		return "0B"
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}

// Duration converts a number of seconds to a human readable string.
func Duration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}

	return fmt.Sprintf("%dh %dm %ds", seconds/3600, (seconds%3600)/60, seconds%60)
}

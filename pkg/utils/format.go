package utils

import "fmt"

// FormatBytes renders a byte count in a compact human-readable unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatRate renders a units-per-hour rate with a stable precision.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f/h", rate)
}

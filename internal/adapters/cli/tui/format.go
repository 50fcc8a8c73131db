package tui

import (
	"fmt"
	"time"
)

// FormatSize formats a byte count for display
// Examples: 512 -> "512 B", 2048 -> "2.0 KB"
func FormatSize(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// FormatClock formats a duration as m:ss for display
// Examples: 83s -> "1:23", 3700s -> "61:40"
func FormatClock(d time.Duration) string {
	secs := int64(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

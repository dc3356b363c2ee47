package domain

import (
	"fmt"
	"math"
)

// FormatInactivity renders minutes of inactivity the way the popup shows them.
func FormatInactivity(minutes float64) string {
	if minutes < 1 {
		return "Just now"
	}

	whole := int(math.Floor(minutes))
	if whole < 60 {
		return fmt.Sprintf("%dm ago", whole)
	}

	return fmt.Sprintf("%dh %dm ago", whole/60, whole%60)
}

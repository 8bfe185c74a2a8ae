package wizard

import (
	"fmt"
	"math"
)

// Currency префикс цены
const Currency = "AED"

// FormatDuration форматирует длительность: 30 -> "30 min", 90 -> "1h 30min", 120 -> "2h"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours, rest := minutes/60, minutes%60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, rest)
}

// FormatPrice форматирует цену: 100 -> "AED 100", 99.5 -> "AED 99.50"
func FormatPrice(price float64) string {
	if price == math.Trunc(price) {
		return fmt.Sprintf("%s %.0f", Currency, price)
	}
	return fmt.Sprintf("%s %.2f", Currency, price)
}

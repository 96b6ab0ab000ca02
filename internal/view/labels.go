package view

import (
	"fmt"

	"github.com/tkoide/supplywatch/internal/domain"
)

// DaysLabel renders an ExpiryInfo as the human-readable form shown per item.
func DaysLabel(info domain.ExpiryInfo) string {
	if info.DaysLeft == nil {
		return "no expiry"
	}
	d := *info.DaysLeft
	switch {
	case d < 0:
		return fmt.Sprintf("expired %s ago", pluralDays(-d))
	case d == 0:
		return "expires today"
	default:
		return fmt.Sprintf("%s remaining", pluralDays(d))
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

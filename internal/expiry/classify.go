// Package expiry derives days-remaining and a status classification from an
// item's expiry-date field.
package expiry

import (
	"strconv"
	"strings"
	"time"

	"github.com/tkoide/supplywatch/internal/domain"
)

// Status thresholds in days remaining. Evaluated in order: expired wins over
// soon, soon over safe. Zero and negative daysLeft fall under expired; there
// is no separate "past" category.
const (
	expiredWithinDays = 30
	soonWithinDays    = 89
)

// Classify computes ExpiryInfo for one expiry-date field value, relative to
// today. Dates are calendar dates in UTC: both the target and today are
// truncated to UTC midnight before taking the whole-day difference, so the
// result never shifts across DST transitions.
//
// An empty value or the literal "-" means the item has no expiry. A value
// that is not exactly three hyphen-separated integers is classified the same
// way, never reported as an error; the second return value flags it so
// callers can count malformed rows as a data-quality signal.
func Classify(value string, today time.Time) (domain.ExpiryInfo, bool) {
	v := strings.TrimSpace(value)
	if v == "" || v == "-" {
		return domain.ExpiryInfo{Status: domain.StatusNoExpiry}, false
	}

	parts := strings.Split(v, "-")
	if len(parts) != 3 {
		return domain.ExpiryInfo{Status: domain.StatusNoExpiry}, true
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return domain.ExpiryInfo{Status: domain.StatusNoExpiry}, true
		}
		nums[i] = n
	}

	target := time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC)
	days := daysBetween(today, target)

	info := domain.ExpiryInfo{DaysLeft: &days}
	switch {
	case days <= expiredWithinDays:
		info.Status = domain.StatusExpired
	case days <= soonWithinDays:
		info.Status = domain.StatusSoon
	default:
		info.Status = domain.StatusSafe
	}
	return info, false
}

// daysBetween returns the whole calendar days from today's UTC date to
// target's UTC date.
func daysBetween(today, target time.Time) int {
	now := today.UTC()
	cur := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(cur).Hours() / 24)
}

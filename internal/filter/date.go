package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxPostingAge = 60 * 24 * time.Hour

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	yearOnlyRegex = regexp.MustCompile(`\b(20\d{2})\b`)
)

// IsRecent reports whether a posting date string is at most 60 days old.
// Date formats across sources are a mess, so parsing is best-effort and
// unknown or empty values count as recent.
func IsRecent(dateStr string) bool {
	if dateStr == "" || dateStr == "N/A" || dateStr == "Recent" {
		return true
	}

	now := time.Now()

	//RFC1123 as published by RSS feeds: "Mon, 02 Jan 2006 15:04:05 +0000"
	if jobDate, err := time.Parse(time.RFC1123Z, dateStr); err == nil {
		return isWithinAge(now, jobDate)
	}
	if jobDate, err := time.Parse(time.RFC1123, dateStr); err == nil {
		return isWithinAge(now, jobDate)
	}

	//ISO prefix: "2026-01-27" or "2026-01-27T..."
	if isoDateRegex.MatchString(dateStr) {
		if jobDate, err := time.Parse("2006-01-02", dateStr[:10]); err == nil {
			return isWithinAge(now, jobDate)
		}
	}

	//dd/mm/yyyy
	if strings.Contains(dateStr, "/") {
		parts := strings.Split(dateStr, "/")
		if len(parts) >= 3 {
			day, _ := strconv.Atoi(parts[0])
			month, _ := strconv.Atoi(parts[1])
			year, _ := strconv.Atoi(parts[2])
			jobDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			return isWithinAge(now, jobDate)
		}
	}

	//bare year fallback
	if match := yearOnlyRegex.FindStringSubmatch(dateStr); match != nil {
		year, _ := strconv.Atoi(match[1])
		return year == now.Year() || year == now.Year()-1
	}

	return true
}

func isWithinAge(now, jobDate time.Time) bool {
	diff := now.Sub(jobDate)
	if diff > maxPostingAge {
		return false
	}
	//future dates beyond a 2-day timezone skew are bogus
	if diff < -2*24*time.Hour {
		return false
	}
	return true
}

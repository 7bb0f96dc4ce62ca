package convert

import (
	"fmt"
	"time"

	"hotel_catalog/internal/domain"
)

// Sentinel the extractor emits for open-ended validity windows.
const untilFurtherNotice = "until_further_notice"

// parseDate accepts the date shapes the extractor produces: plain dates and
// full RFC 3339 instants.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func lastDayOfMonth(year, month int) int {
	// day 0 of the following month
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startOfDay(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02dT00:00:00Z", year, month, day)
}

func endOfDay(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02dT23:59:59Z", year, month, day)
}

// derivePeriods turns a coarse month set plus a validity window into at most
// one concrete period. Without a validity start the current year is assumed,
// which is a documented approximation: genuinely wrapping month sets (e.g.
// [12,1,2]) only resolve across the year boundary when the validity window
// anchors the start year.
func derivePeriods(months []int, validity *domain.RawValidity, now func() time.Time) []domain.Period {
	if len(months) == 0 {
		return nil
	}

	var validityStart, validityEnd string
	if validity != nil {
		validityStart = validity.StartDate
		validityEnd = validity.EndDate
	}

	start, ok := time.Time{}, false
	if validityStart != "" {
		start, ok = parseDate(validityStart)
	}
	if !ok {
		// current-year heuristic
		year := now().UTC().Year()
		first, last := months[0], months[0]
		for _, m := range months[1:] {
			if m < first {
				first = m
			}
			if m > last {
				last = m
			}
		}
		return []domain.Period{{
			StartDate: startOfDay(year, first, 1),
			EndDate:   endOfDay(year, last, lastDayOfMonth(year, last)),
		}}
	}

	startYear := start.Year()

	// The month list is ordered: [12,1,2] declares a December-to-February
	// range. A last month numerically below the first means the range wraps
	// into the following year.
	first := months[0]
	last := months[len(months)-1]
	endYear := startYear
	if last < first && len(months) > 1 {
		endYear = startYear + 1
	}

	endDate := endOfDay(endYear, last, lastDayOfMonth(endYear, last))
	if validityEnd != "" && validityEnd != untilFurtherNotice {
		endDate = validityEnd + "T23:59:59Z"
	}

	return []domain.Period{{
		StartDate: startOfDay(startYear, first, 1),
		EndDate:   endDate,
	}}
}

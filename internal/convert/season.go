package convert

import (
	"fmt"

	"hotel_catalog/internal/domain"
)

// Season labels and descriptions are fixed bilingual business copy; the
// booking platform displays them verbatim.
const (
	labelLowWeekday   = "Mùa thấp điểm - Ngày thường"
	labelLowWeekend   = "Mùa thấp điểm - Cuối tuần"
	labelHighWeekday  = "Mùa cao điểm - Ngày thường"
	labelHighWeekend  = "Mùa cao điểm - Cuối tuần"
	labelPeakWeekday  = "Mùa cao điểm đặc biệt - Ngày thường"
	labelPeakWeekend  = "Mùa cao điểm đặc biệt - Cuối tuần"
	descLowDefault    = "Mùa thấp điểm"
	descHighDefault   = "Mùa cao điểm"
	descPeakDefault   = "Mùa cao điểm đặc biệt"
	surchargePrefix   = "Phụ thu "
	seasonCreator     = "system"
)

// builtSeason pairs a Season with its synthetic identity. Price distribution
// still joins by the human-readable name (same-named holidays deliberately
// collide there); the key keeps each entry distinguishable internally.
type builtSeason struct {
	key    string
	season domain.Season
}

type seasonMeta struct {
	periods []domain.Period
	dayType string
}

// seasonIndex is what the price distributor consumes: season names grouped by
// (tier, day-bucket) plus per-name period/dayType metadata. When several
// seasons share a name the meta of the last one wins, matching the join-by-
// name contract.
type seasonIndex struct {
	names map[string][]string
	meta  map[string]seasonMeta
}

func tierDayKey(tier, dayName string) string {
	if dayName == "" {
		dayName = "ALL"
	}
	return tier + "_" + dayName
}

var (
	allWeekdays = []int{0, 1, 2, 3, 4}
	allWeekends = []int{5, 6}
)

// buildDayInfo partitions a declared day-of-week list into the weekday and
// weekend buckets, weekday first. Absent, empty, or fully out-of-range input
// falls back to the apply-to-all default of both full buckets.
func buildDayInfo(dayOfWeek []int) []domain.DayInfo {
	applyToAll := []domain.DayInfo{
		{Name: domain.DayWeekday, DayOfWeek: allWeekdays},
		{Name: domain.DayWeekend, DayOfWeek: allWeekends},
	}
	if len(dayOfWeek) == 0 {
		return applyToAll
	}

	var weekdays, weekends []int
	for _, d := range dayOfWeek {
		switch {
		case d >= 0 && d <= 4:
			weekdays = append(weekdays, d)
		case d == 5 || d == 6:
			weekends = append(weekends, d)
		}
	}
	if len(weekdays) == 0 && len(weekends) == 0 {
		return applyToAll
	}

	out := make([]domain.DayInfo, 0, 2)
	if len(weekdays) > 0 {
		out = append(out, domain.DayInfo{Name: domain.DayWeekday, DayOfWeek: weekdays})
	}
	if len(weekends) > 0 {
		out = append(out, domain.DayInfo{Name: domain.DayWeekend, DayOfWeek: weekends})
	}
	return out
}

// anchorRoom picks the room whose pricing block drives the season calendar:
// first room carrying a pricing block, else the first room. Divergent season
// definitions on other rooms are ignored for calendar purposes.
func anchorRoom(rooms []domain.RawRoomType) *domain.RawRoomType {
	for i := range rooms {
		if rooms[i].Pricing != nil {
			return &rooms[i]
		}
	}
	if len(rooms) > 0 {
		return &rooms[0]
	}
	return nil
}

type tierSpec struct {
	tier         string
	weekdayLabel string
	weekendLabel string
	defaultDesc  string
	// PEAK additionally requires a non-empty price and month list.
	guarded bool
}

var tierSpecs = []tierSpec{
	{domain.SeasonLow, labelLowWeekday, labelLowWeekend, descLowDefault, false},
	{domain.SeasonHigh, labelHighWeekday, labelHighWeekend, descHighDefault, false},
	{domain.SeasonPeak, labelPeakWeekday, labelPeakWeekend, descPeakDefault, true},
}

func (s tierSpec) label(dayName string) string {
	if dayName == domain.DayWeekend {
		return s.weekendLabel
	}
	return s.weekdayLabel
}

// buildSeasons synthesizes the full season catalog: LOW/HIGH/PEAK tiers split
// by day bucket from the anchor room's pricing, then one EVENT season per
// holiday surcharge date (or up to two per holiday range).
func (c *Converter) buildSeasons(src domain.RawHotel) []builtSeason {
	var out []builtSeason

	anchor := anchorRoom(src.RoomTypes)

	for _, spec := range tierSpecs {
		var block *domain.RawSeasonPricing
		if anchor != nil && anchor.Pricing != nil {
			switch spec.tier {
			case domain.SeasonLow:
				block = anchor.Pricing.LowSeason
			case domain.SeasonHigh:
				block = anchor.Pricing.HighSeason
			case domain.SeasonPeak:
				block = anchor.Pricing.PeakSeason
			}
		}
		if block == nil {
			continue
		}
		if spec.guarded && (!truthy(block.Price) || len(block.Months) == 0) {
			continue
		}

		periods := derivePeriods(block.Months, src.ValidityPeriod, c.now)
		if len(periods) == 0 {
			continue
		}

		description := block.Period
		if description == "" {
			description = spec.defaultDesc
		}

		for _, day := range buildDayInfo(block.DayOfWeek) {
			out = append(out, builtSeason{
				key: tierDayKey(spec.tier, day.Name),
				season: domain.Season{
					Name:        spec.label(day.Name),
					Type:        domain.SeasonTypeSeason,
					Season:      spec.tier,
					Day:         day,
					EventData:   nil,
					Periods:     periods,
					Description: description,
					CreatedBy:   seasonCreator,
				},
			})
		}
	}

	out = append(out, buildHolidaySeasons(src.Surcharges)...)
	return out
}

// buildHolidaySeasons expands holiday surcharges into EVENT seasons. A
// literal date list yields one single-day season per date; a start/end range
// yields up to two seasons (weekday and weekend buckets) sharing one period
// spanning the whole range. All carry season PEAK and the surcharge rate in
// their descriptions.
func buildHolidaySeasons(surcharges *domain.RawSurcharges) []builtSeason {
	if surcharges == nil || surcharges.HolidaySurcharge == nil {
		return nil
	}
	hs := surcharges.HolidaySurcharge
	rate := asString(hs.Rate)

	var out []builtSeason
	for hi, holiday := range hs.ApplicableDates {
		switch {
		case len(holiday.Dates) > 0:
			for di, date := range holiday.Dates {
				day, ok := parseDate(date)
				if !ok {
					continue
				}
				dow := int(day.Weekday()) // 0=Sunday .. 6=Saturday
				dayName := domain.DayWeekday
				if dow == 0 || dow == 6 {
					dayName = domain.DayWeekend
				}
				period := domain.Period{
					StartDate: date + "T00:00:00Z",
					EndDate:   date + "T23:59:59Z",
				}
				out = append(out, builtSeason{
					key: fmt.Sprintf("EVENT_%d_%d_%s", hi, di, dayName),
					season: domain.Season{
						Name:   holiday.Name,
						Type:   domain.SeasonTypeEvent,
						Season: domain.SeasonPeak,
						Day:    domain.DayInfo{Name: dayName, DayOfWeek: []int{dow}},
						EventData: &domain.EventData{
							Name:        holiday.Name,
							StartDate:   period.StartDate,
							EndDate:     period.EndDate,
							Description: surchargePrefix + rate,
						},
						Periods:     []domain.Period{period},
						Description: holiday.Name + " - " + surchargePrefix + rate,
						CreatedBy:   seasonCreator,
					},
				})
			}

		case holiday.StartDate != "" && holiday.EndDate != "":
			start, okS := parseDate(holiday.StartDate)
			end, okE := parseDate(holiday.EndDate)
			if !okS || !okE {
				continue
			}

			var weekdays, weekends []int
			for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
				dow := int(d.Weekday())
				if dow == 0 || dow == 6 {
					if !containsInt(weekends, dow) {
						weekends = append(weekends, dow)
					}
				} else if !containsInt(weekdays, dow) {
					weekdays = append(weekdays, dow)
				}
			}

			period := domain.Period{
				StartDate: holiday.StartDate + "T00:00:00Z",
				EndDate:   holiday.EndDate + "T23:59:59Z",
			}
			event := &domain.EventData{
				Name:        holiday.Name,
				StartDate:   period.StartDate,
				EndDate:     period.EndDate,
				Description: surchargePrefix + rate,
			}

			for _, bucket := range []struct {
				name string
				days []int
			}{
				{domain.DayWeekday, weekdays},
				{domain.DayWeekend, weekends},
			} {
				if len(bucket.days) == 0 {
					continue
				}
				out = append(out, builtSeason{
					key: fmt.Sprintf("EVENT_%d_%s", hi, bucket.name),
					season: domain.Season{
						Name:        holiday.Name,
						Type:        domain.SeasonTypeEvent,
						Season:      domain.SeasonPeak,
						Day:         domain.DayInfo{Name: bucket.name, DayOfWeek: bucket.days},
						EventData:   event,
						Periods:     []domain.Period{period},
						Description: holiday.Name + " - " + surchargePrefix + rate,
						CreatedBy:   seasonCreator,
					},
				})
			}
		}
	}
	return out
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// indexSeasons builds the lookup structures price distribution works from.
func indexSeasons(seasons []builtSeason) *seasonIndex {
	idx := &seasonIndex{
		names: make(map[string][]string, len(seasons)),
		meta:  make(map[string]seasonMeta, len(seasons)),
	}
	for _, b := range seasons {
		key := tierDayKey(b.season.Season, b.season.Day.Name)
		idx.names[key] = append(idx.names[key], b.season.Name)
		idx.meta[b.season.Name] = seasonMeta{
			periods: b.season.Periods,
			dayType: b.season.Day.Name,
		}
	}
	return idx
}

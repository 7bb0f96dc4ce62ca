package convert

import (
	"hotel_catalog/internal/domain"
)

// distributePrices walks every room's side-channel pricing record and attaches
// one resolved RoomPrice per matching season name. Each declared tier is
// pushed against both day buckets; buckets that were never synthesized
// resolve to zero names and therefore produce nothing.
func distributePrices(rooms []domain.Room, pricingData []roomPricing, idx *seasonIndex) {
	byCode := make(map[string]*domain.Room, len(rooms))
	for i := range rooms {
		byCode[rooms[i].Code] = &rooms[i]
	}

	for _, rp := range pricingData {
		if rp.pricing == nil {
			continue
		}
		room := byCode[rp.code]
		if room == nil {
			continue
		}
		for _, tier := range []struct {
			name  string
			block *domain.RawSeasonPricing
		}{
			{domain.SeasonLow, rp.pricing.LowSeason},
			{domain.SeasonHigh, rp.pricing.HighSeason},
			{domain.SeasonPeak, rp.pricing.PeakSeason},
		} {
			if tier.block == nil {
				continue
			}
			pushPrice(room, tierDayKey(tier.name, domain.DayWeekday), tier.block.Price, idx)
			pushPrice(room, tierDayKey(tier.name, domain.DayWeekend), tier.block.Price, idx)
		}
	}
}

// pushPrice resolves the season names behind a tier+bucket key and appends
// one RoomPrice per name. A missing or falsy raw price is silently skipped.
func pushPrice(room *domain.Room, key string, price any, idx *seasonIndex) {
	if !truthy(price) {
		return
	}

	for _, name := range idx.names[key] {
		meta := idx.meta[name]

		priceValue := price
		mealPlan := enumDefaults[enumMealPlan]
		condition := enumDefaults[enumCondition]
		cancelUnit := enumDefaults[enumCancelUnitTime]
		unitType := enumDefaults[enumUnitType]
		cancellationPeriod := 0
		amount := 0.0

		// Price may carry metadata alongside the number.
		if obj, ok := price.(map[string]any); ok {
			priceValue = lookup(obj, "price")
			mealPlan = pickEnum(asString(lookup(obj, "mealPlan")), enumMealPlan)
			condition = pickEnum(asString(lookup(obj, "condition")), enumCondition)
			cancelUnit = pickEnum(asString(lookup(obj, "cancellationPeriodUnitTime")), enumCancelUnitTime)
			unitType = pickEnum(asString(lookup(obj, "unitType")), enumUnitType)
			cancellationPeriod = int(asFloat(lookup(obj, "cancellationPeriod")))
			amount = asFloat(lookup(obj, "amount"))
		}

		room.Prices = append(room.Prices, domain.RoomPrice{
			MealPlan:                   mealPlan,
			Countries:                  []string{},
			Price:                      asFloat(priceValue),
			SeasonName:                 name,
			Periods:                    meta.periods,
			Condition:                  condition,
			CancellationPeriod:         cancellationPeriod,
			CancellationPeriodUnitTime: cancelUnit,
			UnitType:                   unitType,
			Amount:                     amount,
			DayType:                    pickEnum(meta.dayType, enumDayType),
		})
	}
}

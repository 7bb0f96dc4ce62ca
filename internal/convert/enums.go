package convert

import (
	"strings"

	"hotel_catalog/internal/domain"
)

/********** vocabulary registries (single source of truth) **********/

// bedTokenTable maps legacy free-text tokens onto bed-type codes. A single
// legacy string may hit several rows (e.g. "1 DBL + 1 KING").
var bedTokenTable = []struct {
	bed    string
	tokens []string
}{
	{domain.BedDouble, []string{"DBL", "1M8", "DOUBLE"}},
	{domain.BedTwin, []string{"TWN", "1M2", "TWIN"}},
	{domain.BedTriple, []string{"TRIP", "TRIPLE"}},
	{domain.BedQueen, []string{"QUEEN", "QN", "1M6"}},
	{domain.BedKing, []string{"KING", "KG", "2M"}},
}

var knownBedTypes = map[string]struct{}{
	domain.BedDouble: {},
	domain.BedTwin:   {},
	domain.BedTriple: {},
	domain.BedQueen:  {},
	domain.BedKing:   {},
}

type enumKind string

const (
	enumUnitType       enumKind = "unitType"
	enumCancelUnitTime enumKind = "cancellationPeriodUnitTime"
	enumCondition      enumKind = "condition"
	enumMealPlan       enumKind = "mealPlan"
	enumDayType        enumKind = "dayType"
)

var enumSets = map[enumKind][]string{
	enumUnitType:       {"PERCENTAGE", "FIXED_AMOUNT"},
	enumCancelUnitTime: {"DAY", "HOUR"},
	enumCondition:      {"FREE_CANCELLATION", "CANCELLATION_CHARGE", "NO_CANCELLATION"},
	enumMealPlan: {
		"RO", "BB", "HB", "FB", "AI", "UAI", "CP", "MAP", "AP", "EP",
		"BFI", "BFLI", "BFDI", "AMI", "AMD", "FBD", "KEF", "STTI",
	},
	enumDayType: {domain.DayWeekday, domain.DayWeekend},
}

var enumDefaults = map[enumKind]string{
	enumUnitType:       "FIXED_AMOUNT",
	enumCancelUnitTime: "DAY",
	enumCondition:      "FREE_CANCELLATION",
	enumMealPlan:       "RO",
	enumDayType:        domain.DayWeekday,
}

var hotelTypes = map[string]struct{}{
	domain.HotelTypeHotel:    {},
	domain.HotelTypeMotel:    {},
	domain.HotelTypeMotelInn: {},
	domain.HotelTypeResort:   {},
	domain.HotelTypeBoutique: {},
	domain.HotelTypeHomestay: {},
}

/********** normalizers **********/

// normalizeBedTypes reconciles both bed_type schemas. Array input is already
// enum-coded: unknown codes are dropped and an empty array stays empty.
// String input is the legacy path: substring-match every token, default to
// DOUBLE_BED when nothing matches. Never fails.
func normalizeBedTypes(input any) []string {
	switch v := input.(type) {
	case []any:
		out := []string{}
		for _, item := range v {
			if s, ok := item.(string); ok {
				if _, known := knownBedTypes[s]; known {
					out = append(out, s)
				}
			}
		}
		return out
	case []string:
		out := []string{}
		for _, s := range v {
			if _, known := knownBedTypes[s]; known {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return []string{domain.BedDouble}
		}
		upper := strings.ToUpper(v)
		out := []string{}
		for _, row := range bedTokenTable {
			for _, tok := range row.tokens {
				if strings.Contains(upper, tok) {
					out = append(out, row.bed)
					break
				}
			}
		}
		if len(out) == 0 {
			return []string{domain.BedDouble}
		}
		return out
	}
	return []string{domain.BedDouble}
}

// normalizeExtraBed resolves the three extra_bed shapes to "EXTRA_BED" or ""
// (no extra bed). Legacy objects carry either {type: ...} or {available: ...};
// the available key is a presence check with a truthy value deciding.
func normalizeExtraBed(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		if v == domain.ExtraBed {
			return domain.ExtraBed
		}
		return "" // "NONE" and anything unrecognized
	case map[string]any:
		if t := lookup(v, "type"); truthy(t) {
			if s, _ := t.(string); s == domain.ExtraBed {
				return domain.ExtraBed
			}
			return ""
		}
		if avail, ok := v["available"]; ok {
			if truthy(avail) {
				return domain.ExtraBed
			}
			return ""
		}
	}
	return ""
}

// pickEnum returns value when it belongs to the kind's allowed set, else the
// kind's configured default.
func pickEnum(value string, kind enumKind) string {
	for _, allowed := range enumSets[kind] {
		if value == allowed {
			return value
		}
	}
	return enumDefaults[kind]
}

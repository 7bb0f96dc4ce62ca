package convert

import (
	"fmt"
	"regexp"
	"strings"

	"hotel_catalog/internal/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// codeFrom derives an UPPER_SNAKE code from a display name.
func codeFrom(name string) string {
	return strings.ToUpper(whitespaceRun.ReplaceAllString(name, "_"))
}

// breakfast markers searched in the joined inclusions list. The extractor
// emits Vietnamese text for most properties.
var breakfastTokens = []string{"breakfast", "sáng", "ăn sáng"}

func breakfastIncluded(inclusions []string) bool {
	if len(inclusions) == 0 {
		return false
	}
	joined := strings.ToLower(strings.Join(inclusions, " "))
	for _, tok := range breakfastTokens {
		if strings.Contains(joined, tok) {
			return true
		}
	}
	return false
}

// normalizeView drops null-ish views ("", "null", nil) and boxes anything
// else as a single-element list.
func normalizeView(v any) []string {
	if v == nil {
		return []string{}
	}
	s := strings.TrimSpace(asString(v))
	if s == "" || strings.EqualFold(s, "null") {
		return []string{}
	}
	return []string{s}
}

// roomPricing is the side channel between room construction and price
// distribution; codes must stay stable between the two passes.
type roomPricing struct {
	code    string
	pricing *domain.RawPricing
}

// buildRooms maps every raw room description onto a canonical room. Room
// codes are unique within one conversion (name + 1-based ordinal). A room
// without its capacity object or type name violates the input contract.
func buildRooms(src domain.RawHotel) ([]domain.Room, []roomPricing, error) {
	hasBreakfast := breakfastIncluded(src.Inclusions)

	rooms := make([]domain.Room, 0, len(src.RoomTypes))
	pricingData := make([]roomPricing, 0, len(src.RoomTypes))

	for i, raw := range src.RoomTypes {
		if raw.RoomType == "" {
			return nil, nil, fmt.Errorf("%w: room_types[%d] missing room_type", domain.ErrInvalidInput, i)
		}
		if raw.Capacity == nil {
			return nil, nil, fmt.Errorf("%w: room_types[%d] missing capacity", domain.ErrInvalidInput, i)
		}

		extraBedType := normalizeExtraBed(raw.ExtraBed)
		hasExtraBed := extraBedType == domain.ExtraBed
		extraBeds := 0
		if hasExtraBed {
			extraBeds = 1
		}

		bedSize := raw.BedTypeDescription
		if bedSize == "" {
			if s, ok := raw.BedType.(string); ok {
				bedSize = s
			}
		}

		room := domain.Room{
			Code:                fmt.Sprintf("%s_%d", codeFrom(raw.RoomType), i+1),
			GlobalName:          raw.RoomType,
			LocalName:           raw.RoomType,
			BedTypes:            normalizeBedTypes(raw.BedType),
			BedSize:             bedSize,
			Area:                leadingInt(raw.RoomSize),
			View:                normalizeView(raw.View),
			IsSmokingAllowed:    false,
			IsBreakfastIncluded: hasBreakfast,
			MaxExtraBeds:        extraBeds,
			MaxCapacity:         raw.Capacity.Total + extraBeds,
			MaxAdultCapacity:    raw.Capacity.Adults + extraBeds,
			MaxChildrenCapacity: raw.Capacity.Children,
			MaxAdults:           raw.Capacity.Adults,
			MaxChildren:         raw.Capacity.Children,
			Description:         "",
			KeyFeatures:         []string{},
			Prices:              []domain.RoomPrice{},
		}
		if hasExtraBed {
			t := extraBedType
			room.ExtraBedType = &t
		}

		rooms = append(rooms, room)
		pricingData = append(pricingData, roomPricing{code: room.Code, pricing: raw.Pricing})
	}

	return rooms, pricingData, nil
}

// Package convert is the normalization and derivation engine that turns a
// loosely-structured hotel-description record from the extraction pipeline
// into a strictly-shaped catalog record. It reconciles the enum-based and
// legacy free-text input schemas, derives concrete pricing-season calendars
// from coarse month descriptors, expands holiday surcharges into event
// seasons, and fans per-season prices out onto each room.
//
// The engine never fails on malformed field values; it degrades to documented
// defaults. The only error path is a structural violation of the input
// contract (missing hotel name, missing room capacity).
package convert

import (
	"fmt"
	"time"

	"hotel_catalog/internal/domain"
)

const serviceScopeLocal = "LOCAL"

// Converter is a stateless, reusable conversion engine. It is safe for
// concurrent use; every Convert call allocates its own output graph.
type Converter struct {
	now func() time.Time
}

func New() *Converter {
	return &Converter{now: time.Now}
}

// NewWithClock pins the clock driving the current-year calendar fallback.
func NewWithClock(now func() time.Time) *Converter {
	return &Converter{now: now}
}

// Convert builds the canonical catalog record for one raw input record.
func (c *Converter) Convert(src domain.RawHotel) (domain.CanonicalHotel, error) {
	if src.HotelInfo.Name == "" {
		return domain.CanonicalHotel{}, fmt.Errorf("%w: hotel_info.name is required", domain.ErrInvalidInput)
	}

	rooms, pricingData, err := buildRooms(src)
	if err != nil {
		return domain.CanonicalHotel{}, err
	}

	built := c.buildSeasons(src)
	seasons := make([]domain.Season, 0, len(built))
	for _, b := range built {
		seasons = append(seasons, b.season)
	}

	distributePrices(rooms, pricingData, indexSeasons(built))

	keyFeatures := src.Inclusions
	if keyFeatures == nil {
		keyFeatures = []string{}
	}

	return domain.CanonicalHotel{
		LocalName:    src.HotelInfo.Name,
		GlobalName:   src.HotelInfo.Name,
		Type:         hotelType(src.HotelInfo),
		Address:      src.HotelInfo.Address,
		Star:         starRating(src.HotelInfo.Rating),
		ServiceScope: serviceScopeLocal,
		Area:         src.HotelInfo.Location,
		KeyFeatures:  keyFeatures,
		Code:         codeFrom(src.HotelInfo.Name),
		Seasons:      seasons,
		Rooms:        rooms,
	}, nil
}

// hotelType keeps a declared type when it belongs to the classification enum;
// otherwise it infers from the star rating (3 and up reads as a resort).
func hotelType(info domain.RawHotelInfo) string {
	if _, ok := hotelTypes[info.Type]; ok {
		return info.Type
	}
	if leadingInt(info.Rating) >= 3 {
		return domain.HotelTypeResort
	}
	return domain.HotelTypeHotel
}

func starRating(rating any) string {
	if s := asString(rating); s != "" {
		return s
	}
	return "2"
}

package domain

// Raw input records as produced by the upstream extraction pipeline.
// Several fields co-exist in two schemas (enum-based "new" format and the
// legacy free-text format), so they are typed as `any` and resolved by the
// convert package. The whole graph is read-only during a conversion.

type RawHotel struct {
	HotelInfo      RawHotelInfo   `json:"hotel_info"`
	RoomTypes      []RawRoomType  `json:"room_types"`
	Inclusions     []string       `json:"inclusions"`
	Surcharges     *RawSurcharges `json:"surcharges,omitempty"`
	ValidityPeriod *RawValidity   `json:"validity_period,omitempty"`
}

type RawHotelInfo struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Rating   any    `json:"rating"`   // number or string like "4 stars"
	Location string `json:"location"`
	Type     string `json:"type,omitempty"`
}

type RawRoomType struct {
	RoomType           string       `json:"room_type"`
	BedType            any          `json:"bed_type"`             // []enum (new) or free-text string (legacy)
	BedTypeDescription string       `json:"bed_type_description,omitempty"`
	ExtraBed           any          `json:"extra_bed,omitempty"`  // enum string, legacy object, or absent
	View               any          `json:"view,omitempty"`
	RoomSize           any          `json:"room_size"`            // number or string like "32 sqm"
	Capacity           *RawCapacity `json:"capacity"`
	Pricing            *RawPricing  `json:"pricing,omitempty"`
}

type RawCapacity struct {
	Total    int `json:"total"`
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type RawPricing struct {
	LowSeason  *RawSeasonPricing `json:"low_season,omitempty"`
	HighSeason *RawSeasonPricing `json:"high_season,omitempty"`
	PeakSeason *RawSeasonPricing `json:"peak_season,omitempty"`
}

type RawSeasonPricing struct {
	Months    []int  `json:"months,omitempty"`
	DayOfWeek []int  `json:"dayOfWeek,omitempty"`
	Period    string `json:"period,omitempty"`
	Price     any    `json:"price,omitempty"` // number or object with price metadata
}

type RawSurcharges struct {
	HolidaySurcharge *RawHolidaySurcharge `json:"holiday_surcharge,omitempty"`
}

type RawHolidaySurcharge struct {
	Rate            any          `json:"rate"` // "30%" or a number
	ApplicableDates []RawHoliday `json:"applicable_dates"`
}

// RawHoliday carries either a list of literal dates or an inclusive
// start/end range, never both.
type RawHoliday struct {
	Name      string   `json:"name"`
	Dates     []string `json:"dates,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
}

type RawValidity struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"` // may be "until_further_notice"
}

package domain

// Controlled vocabularies for the canonical catalog record. The booking
// platform treats these as closed sets; anything else is normalized away
// before assembly.

const (
	BedDouble = "DOUBLE_BED"
	BedTwin   = "TWIN_BED"
	BedTriple = "TRIPLE_BED"
	BedQueen  = "QUEEN_BED"
	BedKing   = "KING_BED"
)

const ExtraBed = "EXTRA_BED"

const (
	SeasonLow  = "LOW"
	SeasonHigh = "HIGH"
	SeasonPeak = "PEAK"
)

const (
	SeasonTypeSeason = "SEASON"
	SeasonTypeEvent  = "EVENT"
)

const (
	DayWeekday = "WEEKDAY"
	DayWeekend = "WEEKEND"
)

const (
	HotelTypeHotel    = "HOTEL"
	HotelTypeMotel    = "MOTEL"
	HotelTypeMotelInn = "MOTEL_INN"
	HotelTypeResort   = "RESORT"
	HotelTypeBoutique = "BOUTIQUE"
	HotelTypeHomestay = "HOMESTAY"
)

// CanonicalHotel is the strictly-shaped catalog record handed to the booking
// platform. Built fresh per conversion; nothing in it aliases the raw input.
type CanonicalHotel struct {
	LocalName    string   `json:"localName"`
	GlobalName   string   `json:"globalName"`
	Type         string   `json:"type"`
	Address      string   `json:"address"`
	Star         string   `json:"star"`
	ServiceScope string   `json:"serviceScope"`
	Area         string   `json:"area"`
	KeyFeatures  []string `json:"keyFeatures"`
	Code         string   `json:"code"`
	Seasons      []Season `json:"seasons"`
	Rooms        []Room   `json:"rooms"`
}

type Room struct {
	Code                string   `json:"code"`
	GlobalName          string   `json:"globalName"`
	LocalName           string   `json:"localName"`
	BedTypes            []string `json:"bedTypes"`
	BedSize             string   `json:"bedSize"`
	Area                int      `json:"area"`
	View                []string `json:"view"`
	IsSmokingAllowed    bool     `json:"isSmokingAllowed"`
	IsBreakfastIncluded bool     `json:"isBreakfastIncluded"`
	// Absent (not null) on the wire when the room has no extra bed.
	ExtraBedType        *string     `json:"extraBedType,omitempty"`
	MaxExtraBeds        int         `json:"maxExtraBeds"`
	MaxCapacity         int         `json:"maxCapacity"`
	MaxAdultCapacity    int         `json:"maxAdultCapacity"`
	MaxChildrenCapacity int         `json:"maxChildrenCapacity"`
	MaxAdults           int         `json:"maxAdults"`
	MaxChildren         int         `json:"maxChildren"`
	Description         string      `json:"description"`
	KeyFeatures         []string    `json:"keyFeatures"`
	Prices              []RoomPrice `json:"prices"`
}

// Season is one pricing season entry. Name doubles as the join key for price
// distribution; EVENT entries reuse the holiday name (see convert package).
type Season struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`   // SEASON | EVENT
	Season      string     `json:"season"` // LOW | HIGH | PEAK
	Day         DayInfo    `json:"day"`
	EventData   *EventData `json:"eventData"` // null unless Type == EVENT
	Periods     []Period   `json:"periods"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"createdBy"`
}

type DayInfo struct {
	Name      string `json:"name"` // WEEKDAY | WEEKEND
	DayOfWeek []int  `json:"dayOfWeek"`
}

type EventData struct {
	Name        string `json:"name"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Period bounds are ISO-8601 UTC instants: start-of-day for StartDate,
// end-of-day (23:59:59Z) for EndDate.
type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type RoomPrice struct {
	MealPlan                   string   `json:"mealPlan"`
	Countries                  []string `json:"countries"`
	Price                      float64  `json:"price"`
	SeasonName                 string   `json:"seasonName"`
	Periods                    []Period `json:"periods"`
	Condition                  string   `json:"condition"`
	CancellationPeriod         int      `json:"cancellationPeriod"`
	CancellationPeriodUnitTime string   `json:"cancellationPeriodUnitTime"`
	UnitType                   string   `json:"unitType"`
	Amount                     float64  `json:"amount"`
	DayType                    string   `json:"dayType"`
}

package itinerary

import "time"

const (
	RegionFront = "front-mountain"
	RegionBack  = "back-mountain"
)

// POI is a sightseeing stop. Months lists when it is in bloom; Evergreen
// stops are worth visiting any month.
type POI struct {
	Name      string       `json:"name"`
	Region    string       `json:"region"`
	Months    []time.Month `json:"months,omitempty"`
	Evergreen bool         `json:"evergreen"`
	Lat       float64      `json:"lat"`
	Lng       float64      `json:"lng"`
	Note      string       `json:"note"`
}

func (p POI) BloomsIn(m time.Month) bool {
	for _, month := range p.Months {
		if month == m {
			return true
		}
	}
	return false
}

type Day struct {
	Day        int     `json:"day"`
	Date       string  `json:"date"`
	Stops      []POI   `json:"stops"`
	DistanceKm float64 `json:"distance_km"`
}

type Lodging struct {
	Name   string   `json:"name"`
	Region string   `json:"region"`
	Groups []string `json:"groups"`
}

type Plan struct {
	StartDate string    `json:"start_date"`
	Group     string    `json:"group"`
	InSeason  bool      `json:"in_season"`
	Days      []Day     `json:"days"`
	Lodging   []Lodging `json:"lodging"`
}

package itinerary

import (
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/shared/geo"
)

const (
	MinDays         = 1
	MaxDays         = 3
	lodgingsPerPlan = 2
	dateLayout      = "2006-01-02"
)

type Service struct {
	rng *rand.Rand
	mu  sync.Mutex
}

// NewService takes the source for lodging sampling; nil uses the global one.
func NewService(rng *rand.Rand) *Service {
	return &Service{rng: rng}
}

// Plan builds the itinerary for start and samples lodging for the group.
func (s *Service) Plan(start time.Time, days int, group string) Plan {
	schedule, inSeason := Generate(start, days)
	return Plan{
		StartDate: start.Format(dateLayout),
		Group:     group,
		InSeason:  inSeason,
		Days:      schedule,
		Lodging:   s.recommendLodging(group),
	}
}

// Generate picks two stops per day from the stops in bloom during start's
// month, or from the evergreen stops when nothing is in bloom. days is
// clamped to [MinDays, MaxDays]. The result depends only on catalog order.
func Generate(start time.Time, days int) ([]Day, bool) {
	days = clampDays(days)

	pool := inBloom(start.Month())
	inSeason := len(pool) > 0
	if !inSeason {
		pool = evergreen()
	}
	p := &picker{pool: pool, used: map[string]bool{}}

	var schedule []Day
	for d := 1; d <= days; d++ {
		var first, second POI
		switch d {
		case 1:
			var ok bool
			if first, ok = p.byName(dayOnePriority, ""); !ok {
				first = p.next("")
			}
			second = p.next(first.Name)
		case 2:
			var ok bool
			if first, ok = p.byName(dayTwoPriority, RegionBack); !ok {
				if first, ok = p.take(inRegion(RegionBack)); !ok {
					first = p.next("")
				}
			}
			second = p.next(first.Name)
		case 3:
			var ok bool
			if first, ok = p.take(inRegion(RegionFront)); !ok {
				first = p.next("")
			}
			second = ReturnTrip
		}

		schedule = append(schedule, Day{
			Day:        d,
			Date:       start.AddDate(0, 0, d-1).Format(dateLayout),
			Stops:      []POI{first, second},
			DistanceKm: roundKm(geo.HaversineKm(first.Lat, first.Lng, second.Lat, second.Lng)),
		})
	}
	return schedule, inSeason
}

func (s *Service) recommendLodging(group string) []Lodging {
	var matches []Lodging
	for _, l := range Lodgings {
		for _, g := range l.Groups {
			if strings.EqualFold(g, group) {
				matches = append(matches, l)
				break
			}
		}
	}
	if len(matches) == 0 {
		matches = Lodgings
	}

	order := s.perm(len(matches))
	n := min(lodgingsPerPlan, len(matches))
	picked := make([]Lodging, 0, n)
	for _, i := range order[:n] {
		picked = append(picked, matches[i])
	}
	return picked
}

func (s *Service) perm(n int) []int {
	if s.rng == nil {
		return rand.Perm(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(n)
}

type picker struct {
	pool []POI
	used map[string]bool
}

// take returns the first unused stop matching pred and marks it used.
func (p *picker) take(pred func(POI) bool) (POI, bool) {
	for _, poi := range p.pool {
		if !p.used[poi.Name] && pred(poi) {
			p.used[poi.Name] = true
			return poi, true
		}
	}
	return POI{}, false
}

func (p *picker) byName(names []string, region string) (POI, bool) {
	for _, name := range names {
		poi, ok := p.take(func(c POI) bool {
			return c.Name == name && (region == "" || c.Region == region)
		})
		if ok {
			return poi, true
		}
	}
	return POI{}, false
}

// next returns the first unused stop. Once the pool is exhausted it repeats
// stops, avoiding exclude when it can.
func (p *picker) next(exclude string) POI {
	if poi, ok := p.take(func(POI) bool { return true }); ok {
		return poi
	}
	for _, poi := range p.pool {
		if poi.Name != exclude {
			return poi
		}
	}
	return p.pool[0]
}

func inRegion(region string) func(POI) bool {
	return func(p POI) bool { return p.Region == region }
}

func inBloom(m time.Month) []POI {
	var out []POI
	for _, poi := range Catalog {
		if poi.BloomsIn(m) {
			out = append(out, poi)
		}
	}
	return out
}

func evergreen() []POI {
	var out []POI
	for _, poi := range Catalog {
		if poi.Evergreen {
			out = append(out, poi)
		}
	}
	return out
}

func clampDays(days int) int {
	if days < MinDays {
		return MinDays
	}
	if days > MaxDays {
		return MaxDays
	}
	return days
}

func roundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

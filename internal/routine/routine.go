// Package routine picks the checklist for the current part of the day.
package routine

type Phase string

const (
	PhaseMorning Phase = "morning_reset"
	PhaseOffice  Phase = "office_defence"
	PhaseEvening Phase = "evening_defence"
	PhaseNight   Phase = "night_landing"
)

// Actions a routine can offer besides its checklist.
const (
	ActionAddSocial = "add_social"
	ActionEndSocial = "end_social"
)

type Routine struct {
	Phase    Phase    `json:"phase"`
	Title    string   `json:"title"`
	Tasks    []string `json:"tasks"`
	Advisory string   `json:"advisory,omitempty"`
	Warning  bool     `json:"warning"`
	Action   string   `json:"action,omitempty"`
}

// At returns the routine for a local hour in [0,23].
func At(hour int, socialMode, drankLastNight bool) Routine {
	switch {
	case hour >= 5 && hour < 9:
		r := Routine{
			Phase: PhaseMorning,
			Title: "Morning reset",
			Tasks: []string{
				"Drink 500 ml warm salt water",
				"Get 10 minutes of outdoor sunlight",
			},
		}
		if drankLastNight {
			r.Advisory = "Social event last night: skip breakfast and hold a 16 hour fast, black coffee or water only."
			r.Warning = true
		} else {
			r.Advisory = "High-protein breakfast is fine today."
		}
		return r

	case hour >= 9 && hour < 17:
		return Routine{
			Phase: PhaseOffice,
			Title: "Office defence",
			Tasks: []string{
				"15 chair squats between meetings",
				"Lunch order: vegetables, then protein, then rice",
			},
		}

	case hour >= 17 && hour < 21:
		r := Routine{Phase: PhaseEvening, Title: "Evening defence"}
		if socialMode {
			r.Warning = true
			r.Advisory = "Social defence active."
			r.Tasks = []string{
				"Eat two tea eggs before leaving",
				"Skip the final fried rice or noodle course",
				"One glass of water for every drink",
			}
			return r
		}
		r.Advisory = "No event tonight, finish dinner before 19:30."
		r.Tasks = []string{}
		r.Action = ActionAddSocial
		return r

	default:
		r := Routine{
			Phase: PhaseNight,
			Title: "Night landing",
			Tasks: []string{
				"Hot shower to drop core temperature",
				"Four rounds of 4-7-8 breathing in bed",
			},
		}
		if socialMode {
			r.Action = ActionEndSocial
		}
		return r
	}
}

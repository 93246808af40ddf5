// Package session holds the per-dashboard-session wellness state and its
// transitions. Every transition takes a State by value and returns the next
// one; nothing is mutated in place.
package session

import "github.com/shuhsienling1002-oss/Director-Fushing-5/internal/readiness"

// WaterAmounts is the menu of intake increments offered to the user.
var WaterAmounts = []int{250, 500}

type Metrics struct {
	VisceralFat    float64 `json:"visceral_fat"`
	SkeletalMuscle float64 `json:"skeletal_muscle"`
	BMI            float64 `json:"bmi"`
	RestingHR      int     `json:"resting_hr"`
	BPSys          int     `json:"bp_sys"`
	BPDia          int     `json:"bp_dia"`
	ActualAge      int     `json:"actual_age"`
	BodyAge        int     `json:"body_age"`
}

type State struct {
	Metrics        Metrics `json:"metrics"`
	SocialMode     bool    `json:"social_mode"`
	NoAlcohol      bool    `json:"no_alcohol"`
	DrankLastNight bool    `json:"drank_last_night"`
	MicroWorkouts  int     `json:"micro_workouts"`
	WaterML        int     `json:"water_ml"`
}

func DefaultMetrics() Metrics {
	return Metrics{
		VisceralFat:    25,
		SkeletalMuscle: 24.5,
		BMI:            31.2,
		RestingHR:      63,
		BPSys:          119,
		BPDia:          79,
		ActualAge:      54,
		BodyAge:        69,
	}
}

// New returns the state a fresh session starts with.
func New() State {
	return State{Metrics: DefaultMetrics()}
}

// ToggleSocial flips social mode. Switching it on also flags tomorrow
// morning for the post-event fasting routine.
func (s State) ToggleSocial() State {
	s.SocialMode = !s.SocialMode
	if s.SocialMode {
		s.DrankLastNight = true
	}
	return s
}

// EndSocial closes a social event before bed.
func (s State) EndSocial() State {
	s.SocialMode = false
	return s
}

func (s State) ToggleNoAlcohol() State {
	s.NoAlcohol = !s.NoAlcohol
	return s
}

func (s State) LogMicroWorkout() State {
	s.MicroWorkouts++
	return s
}

func (s State) LogWater(amountML int) State {
	s.WaterML += amountML
	return s
}

// UpdateMetrics replaces every metric at once.
func (s State) UpdateMetrics(m Metrics) State {
	s.Metrics = m
	return s
}

func (s State) WaterGoal() int {
	return readiness.WaterGoal(s.SocialMode)
}

func (s State) Inputs() readiness.Inputs {
	return readiness.Inputs{
		VisceralFat:   s.Metrics.VisceralFat,
		RestingHR:     s.Metrics.RestingHR,
		BPSys:         s.Metrics.BPSys,
		BodyAge:       s.Metrics.BodyAge,
		ActualAge:     s.Metrics.ActualAge,
		SocialMode:    s.SocialMode,
		MicroWorkouts: s.MicroWorkouts,
		WaterML:       s.WaterML,
		WaterGoalML:   s.WaterGoal(),
		NoAlcohol:     s.NoAlcohol,
	}
}

func (s State) Score() int {
	return readiness.Score(s.Inputs())
}

func ValidWaterAmount(amountML int) bool {
	for _, a := range WaterAmounts {
		if a == amountML {
			return true
		}
	}
	return false
}

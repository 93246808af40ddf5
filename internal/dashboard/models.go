package dashboard

import (
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/routine"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/session"
)

// Dashboard is everything the page renders for one session.
type Dashboard struct {
	SessionID   string          `json:"session_id"`
	Date        string          `json:"date"`
	State       session.State   `json:"state"`
	Score       int             `json:"readiness_score"`
	WaterGoalML int             `json:"water_goal_ml"`
	Routine     routine.Routine `json:"routine"`
	Status      Status          `json:"status"`
}

// Status shows trends instead of raw numbers.
type Status struct {
	VisceralFat    string `json:"visceral_fat"`
	Cardiovascular string `json:"cardiovascular"`
	BMICategory    string `json:"bmi_category"`
}

func statusOf(m session.Metrics) Status {
	st := Status{
		VisceralFat:    "normal",
		Cardiovascular: "good",
		BMICategory:    bmiCategory(m.BMI),
	}
	if m.VisceralFat > 10 {
		st.VisceralFat = "alert"
	}
	if m.BPSys > 130 || m.RestingHR > 65 {
		st.Cardiovascular = "watch"
	}
	return st
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

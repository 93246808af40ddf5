package healthlog

import "github.com/shuhsienling1002-oss/Director-Fushing-5/internal/session"

// DateLayout is the key format of a record.
const DateLayout = "2006-01-02"

// Record is the saved snapshot of one day.
type Record struct {
	Date           string  `json:"date"`
	VisceralFat    float64 `json:"visceral_fat"`
	SkeletalMuscle float64 `json:"skeletal_muscle"`
	BMI            float64 `json:"bmi"`
	RestingHR      int     `json:"resting_hr"`
	BPSys          int     `json:"bp_sys"`
	BPDia          int     `json:"bp_dia"`
	ActualAge      int     `json:"actual_age"`
	BodyAge        int     `json:"body_age"`
	SocialMode     bool    `json:"social_mode"`
	NoAlcohol      bool    `json:"no_alcohol"`
	MicroWorkouts  int     `json:"micro_workouts"`
	WaterML        int     `json:"water_ml"`
	Score          int     `json:"readiness_score"`
}

// Snapshot flattens a session state into the record for date.
func Snapshot(date string, st session.State, score int) Record {
	m := st.Metrics
	return Record{
		Date:           date,
		VisceralFat:    m.VisceralFat,
		SkeletalMuscle: m.SkeletalMuscle,
		BMI:            m.BMI,
		RestingHR:      m.RestingHR,
		BPSys:          m.BPSys,
		BPDia:          m.BPDia,
		ActualAge:      m.ActualAge,
		BodyAge:        m.BodyAge,
		SocialMode:     st.SocialMode,
		NoAlcohol:      st.NoAlcohol,
		MicroWorkouts:  st.MicroWorkouts,
		WaterML:        st.WaterML,
		Score:          score,
	}
}

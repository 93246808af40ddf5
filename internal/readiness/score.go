// Package readiness computes the 0-100 daily readiness score.
package readiness

const (
	BaseWaterGoalML   = 2000
	SocialWaterGoalML = 3000

	socialPenalty = 20
	abstainBonus  = 10

	maxScore = 100
	minScore = 0
)

// Inputs carries everything the score depends on.
type Inputs struct {
	VisceralFat   float64
	RestingHR     int
	BPSys         int
	BodyAge       int
	ActualAge     int
	SocialMode    bool
	MicroWorkouts int
	WaterML       int
	WaterGoalML   int
	NoAlcohol     bool
}

// WaterGoal returns the daily intake target in millilitres.
func WaterGoal(socialMode bool) int {
	if socialMode {
		return SocialWaterGoalML
	}
	return BaseWaterGoalML
}

// Score starts at 100, applies penalties and rewards, then clamps to [0,100]
// and truncates toward zero.
//
// In social mode, abstaining refunds the penalty and earns the abstain bonus
// a second time, so a social abstaining day ends 10 above a quiet one.
func Score(in Inputs) int {
	score := 100.0

	if in.VisceralFat > 10 {
		score -= (in.VisceralFat - 10) * 1.5
	}
	if in.RestingHR > 65 {
		score -= float64(in.RestingHR-65) * 2
	}
	if in.BPSys > 130 {
		score -= float64(in.BPSys - 130)
	}
	if gap := in.BodyAge - in.ActualAge; gap > 0 {
		score -= float64(gap)
	}
	if in.SocialMode {
		score -= socialPenalty
		if in.NoAlcohol {
			score += socialPenalty + abstainBonus
		}
	}
	if in.NoAlcohol {
		score += abstainBonus
	}
	score += float64(in.MicroWorkouts * 3)
	if in.WaterML >= in.WaterGoalML {
		score += 5
	}

	if score > maxScore {
		return maxScore
	}
	if score < minScore {
		return minScore
	}
	return int(score)
}

package healthlog

import (
	"context"
	"errors"
	"log"

	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/db"
)

var ErrNoStore = errors.New("health log store unavailable")

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Save writes the record for its date, replacing any earlier save that day.
func (s *Service) Save(ctx context.Context, rec Record) error {
	if s.db == nil {
		return ErrNoStore
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO health_logs (
			log_date, visceral_fat, skeletal_muscle, bmi, resting_hr, bp_sys, bp_dia,
			actual_age, body_age, social_mode, no_alcohol, micro_workouts, water_ml, readiness_score
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (log_date) DO UPDATE SET
			visceral_fat=EXCLUDED.visceral_fat, skeletal_muscle=EXCLUDED.skeletal_muscle,
			bmi=EXCLUDED.bmi, resting_hr=EXCLUDED.resting_hr,
			bp_sys=EXCLUDED.bp_sys, bp_dia=EXCLUDED.bp_dia,
			actual_age=EXCLUDED.actual_age, body_age=EXCLUDED.body_age,
			social_mode=EXCLUDED.social_mode, no_alcohol=EXCLUDED.no_alcohol,
			micro_workouts=EXCLUDED.micro_workouts, water_ml=EXCLUDED.water_ml,
			readiness_score=EXCLUDED.readiness_score, updated_at=now()
	`, rec.Date, rec.VisceralFat, rec.SkeletalMuscle, rec.BMI, rec.RestingHR, rec.BPSys, rec.BPDia,
		rec.ActualAge, rec.BodyAge, rec.SocialMode, rec.NoAlcohol, rec.MicroWorkouts, rec.WaterML, rec.Score)
	return err
}

// History returns every record, newest date first. Read failures are logged
// and reported as an empty history.
func (s *Service) History(ctx context.Context) []Record {
	records := []Record{}
	if s.db == nil {
		return records
	}

	rows, err := s.db.Query(ctx, `
		SELECT log_date, visceral_fat, skeletal_muscle, bmi, resting_hr, bp_sys, bp_dia,
		       actual_age, body_age, social_mode, no_alcohol, micro_workouts, water_ml, readiness_score
		FROM health_logs
		ORDER BY log_date DESC
	`)
	if err != nil {
		log.Printf("health log history unavailable: %v", err)
		return records
	}
	defer rows.Close()

	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Date, &r.VisceralFat, &r.SkeletalMuscle, &r.BMI, &r.RestingHR, &r.BPSys, &r.BPDia,
			&r.ActualAge, &r.BodyAge, &r.SocialMode, &r.NoAlcohol, &r.MicroWorkouts, &r.WaterML, &r.Score); err != nil {
			log.Printf("health log row unreadable: %v", err)
			return []Record{}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		log.Printf("health log history unavailable: %v", err)
		return []Record{}
	}
	return records
}

// Delete removes the record for date, if any.
func (s *Service) Delete(ctx context.Context, date string) error {
	if s.db == nil {
		return ErrNoStore
	}
	_, err := s.db.Exec(ctx, `DELETE FROM health_logs WHERE log_date=$1`, date)
	return err
}

package dashboard

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/healthlog"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/routine"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/session"
)

// LogSaver persists a day's snapshot.
type LogSaver interface {
	Save(ctx context.Context, rec healthlog.Record) error
}

// Broadcaster pushes a rendered dashboard to a session's live clients.
type Broadcaster interface {
	Broadcast(sessionID string, payload []byte)
}

// Transition is one user action on the session state.
type Transition func(session.State) session.State

type Service struct {
	store session.Store
	logs  LogSaver
	hub   Broadcaster
	now   func() time.Time
	mu    sync.Mutex
}

func NewService(store session.Store, logs LogSaver, hub Broadcaster, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, logs: logs, hub: hub, now: now}
}

func (s *Service) View(ctx context.Context, sessionID string) (Dashboard, error) {
	st, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Dashboard{}, err
	}
	return s.render(sessionID, st), nil
}

// Apply runs one transition, stores the result and pushes the new view.
// Transitions on the same instance are serialized so concurrent requests
// for a session do not lose updates.
func (s *Service) Apply(ctx context.Context, sessionID string, tr Transition) (Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Dashboard{}, err
	}
	next := tr(st)
	if err := s.store.Save(ctx, sessionID, next); err != nil {
		return Dashboard{}, err
	}

	view := s.render(sessionID, next)
	s.publish(view)
	return view, nil
}

// SaveDay writes the session's current snapshot under date, today when
// date is empty.
func (s *Service) SaveDay(ctx context.Context, sessionID, date string) (healthlog.Record, error) {
	if date == "" {
		date = s.now().Format(healthlog.DateLayout)
	}
	st, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return healthlog.Record{}, err
	}
	rec := healthlog.Snapshot(date, st, st.Score())
	if err := s.logs.Save(ctx, rec); err != nil {
		return healthlog.Record{}, err
	}
	return rec, nil
}

// Snapshot renders the current view as JSON for a newly connected client.
func (s *Service) Snapshot(ctx context.Context, sessionID string) ([]byte, error) {
	view, err := s.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(view)
}

func (s *Service) render(sessionID string, st session.State) Dashboard {
	now := s.now()
	return Dashboard{
		SessionID:   sessionID,
		Date:        now.Format(healthlog.DateLayout),
		State:       st,
		Score:       st.Score(),
		WaterGoalML: st.WaterGoal(),
		Routine:     routine.At(now.Hour(), st.SocialMode, st.DrankLastNight),
		Status:      statusOf(st.Metrics),
	}
}

func (s *Service) publish(view Dashboard) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		log.Printf("dashboard encode for %s: %v", view.SessionID, err)
		return
	}
	s.hub.Broadcast(view.SessionID, payload)
}

package server

import (
	"math/rand/v2"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/auth"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/config"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/dashboard"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/db"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/healthlog"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/itinerary"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/session"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/stream"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, pool *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     pool,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	loc := s.Cfg.Location()

	logs := healthlog.NewService(s.querier())
	dash := dashboard.NewService(s.sessionStore(), logs, s.Stream, func() time.Time {
		return time.Now().In(loc)
	})
	seed := uint64(time.Now().UnixNano())
	trips := itinerary.NewService(rand.New(rand.NewPCG(seed, seed>>1)))

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.Redis, s.Cfg.SessionTTL))
	dashboard.RegisterRoutes(s.App.Group("/dashboard"), dash, jwtMiddleware)
	healthlog.RegisterRoutes(s.App.Group("/logs"), logs, jwtMiddleware)
	itinerary.RegisterRoutes(s.App.Group("/itinerary"), trips, loc)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream, dash.Snapshot)
}

// querier keeps a missing pool as a nil interface so the log service
// reports ErrNoStore instead of dereferencing it.
func (s *Server) querier() db.Querier {
	if s.DB == nil {
		return nil
	}
	return s.DB
}

func (s *Server) sessionStore() session.Store {
	if s.Redis == nil {
		return session.NewMemoryStore()
	}
	return session.NewRedisStore(s.Redis, s.Cfg.SessionTTL)
}

package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/auth"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/healthlog"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/session"
)

// RegisterRoutes mounts the dashboard actions. Every route needs the session
// id that authMiddleware stores in locals.
func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Use(authMiddleware)

	r.Get("/", func(c *fiber.Ctx) error {
		view, err := svc.View(c.Context(), auth.SessionID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(view)
	})

	r.Put("/metrics", func(c *fiber.Ctx) error {
		var m session.Metrics
		if err := c.BodyParser(&m); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return apply(c, svc, func(st session.State) session.State { return st.UpdateMetrics(m) })
	})

	r.Post("/social/toggle", func(c *fiber.Ctx) error {
		return apply(c, svc, session.State.ToggleSocial)
	})

	r.Post("/social/end", func(c *fiber.Ctx) error {
		return apply(c, svc, session.State.EndSocial)
	})

	r.Post("/alcohol/toggle", func(c *fiber.Ctx) error {
		return apply(c, svc, session.State.ToggleNoAlcohol)
	})

	r.Post("/workouts", func(c *fiber.Ctx) error {
		return apply(c, svc, session.State.LogMicroWorkout)
	})

	r.Post("/water", func(c *fiber.Ctx) error {
		var body struct {
			AmountML int `json:"amount_ml"`
		}
		if err := c.BodyParser(&body); err != nil || !session.ValidWaterAmount(body.AmountML) {
			return fiber.NewError(fiber.StatusBadRequest, "amount_ml must be one of 250, 500")
		}
		return apply(c, svc, func(st session.State) session.State { return st.LogWater(body.AmountML) })
	})

	r.Post("/save", func(c *fiber.Ctx) error {
		var body struct {
			Date string `json:"date"`
		}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}
		if body.Date != "" {
			if _, err := time.Parse(healthlog.DateLayout, body.Date); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
			}
		}
		rec, err := svc.SaveDay(c.Context(), auth.SessionID(c), body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	})
}

func apply(c *fiber.Ctx, svc *Service, tr Transition) error {
	view, err := svc.Apply(c.Context(), auth.SessionID(c), tr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(view)
}

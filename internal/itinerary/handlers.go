package itinerary

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes serves GET /?date=YYYY-MM-DD&days=N&group=name. A missing
// date plans from today in loc.
func RegisterRoutes(r fiber.Router, svc *Service, loc *time.Location) {
	r.Get("/", func(c *fiber.Ctx) error {
		start := time.Now().In(loc)
		if raw := c.Query("date"); raw != "" {
			parsed, err := time.ParseInLocation(dateLayout, raw, loc)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
			}
			start = parsed
		}
		days := c.QueryInt("days", 2)
		group := c.Query("group", "family")
		return c.JSON(svc.Plan(start, days, group))
	})
}

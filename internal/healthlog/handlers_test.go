package healthlog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shuhsienling1002-oss/Director-Fushing-5/internal/session"
)

func TestHealthLogHandlers(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	app := fiber.New()
	RegisterRoutes(app.Group("/logs"), NewService(mock), func(c *fiber.Ctx) error { return c.Next() })

	rec := Snapshot("2026-03-01", session.New(), 62)
	mock.ExpectQuery(`FROM health_logs`).
		WillReturnRows(addRecordRow(pgxmock.NewRows(recordColumns), rec))

	req := httptest.NewRequest(http.MethodGet, "/logs/", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("history status: %v", err)
	}
	var got []Record
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0] != rec {
		t.Fatalf("unexpected history: %+v", got)
	}

	mock.ExpectExec(`DELETE FROM health_logs`).
		WithArgs("2026-03-01").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	req = httptest.NewRequest(http.MethodDelete, "/logs/2026-03-01", nil)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHealthLogHandlersNoStore(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/logs"), NewService(nil), func(c *fiber.Ctx) error { return c.Next() })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/logs/", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected empty history to be ok: %v", err)
	}

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/logs/2026-03-01", nil))
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 without a store")
	}
}
